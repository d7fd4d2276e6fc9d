package game

import "testing"

// inst stamps a fresh instance, failing the test on an unknown template.
func inst(t *testing.T, templateID string, owner int) *CardInstance {
	t.Helper()
	ci, err := NewInstance(templateID, owner)
	if err != nil {
		t.Fatalf("NewInstance(%q): %v", templateID, err)
	}
	return ci
}

// instPlaced stamps an instance already committed to the board on the given
// turn.
func instPlaced(t *testing.T, templateID string, owner, turnPlaced int) *CardInstance {
	t.Helper()
	ci := inst(t, templateID, owner)
	ci.TurnPlaced = turnPlaced
	return ci
}

// setupGame returns a match still in the setup phase with empty decks and
// hands, ready for tests to arrange directly.
func setupGame() *Game {
	return New(Config{Seed: 1})
}

// playingGame returns a match mid-game: playing phase, player 1 to act on
// turn 2 — the earliest turn where evolution is legal.
func playingGame() *Game {
	g := New(Config{Seed: 1})
	g.State.Phase = PhasePlaying
	g.State.Current = 1
	g.State.Turn = 2
	return g
}

// hand replaces a player's hand.
func hand(g *Game, player int, cards ...*CardInstance) {
	g.State.Player(player).Hand = cards
}

// deckOf replaces a player's deck (top of deck is the last card).
func deckOf(g *Game, player int, cards ...*CardInstance) {
	g.State.Player(player).Deck = cards
}
