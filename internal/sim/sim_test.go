package sim

import "github.com/pocketduel/pocketduel/internal/game"

// brokenDeck has no basic creature, so initialization hits the mulligan cap.
func brokenDeck() game.DeckConfig {
	return game.DeckConfig{
		{TemplateID: "supporter-001", Count: 10},
		{TemplateID: game.TemplateTrainerWhistle, Count: 10},
	}
}
