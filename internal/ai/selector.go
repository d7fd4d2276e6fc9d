package ai

import "github.com/pocketduel/pocketduel/internal/game"

// Selector is the pluggable "choose best among candidates" rule that
// distinguishes the two policy variants. Pick returns an index into
// candidates, or -1 when the slice is empty.
type Selector interface {
	Name() string
	Pick(candidates []*game.CardInstance) int
}

// NaiveSelector takes the first qualifying candidate in scan order.
type NaiveSelector struct{}

func (NaiveSelector) Name() string { return "naive" }

func (NaiveSelector) Pick(candidates []*game.CardInstance) int {
	if len(candidates) == 0 {
		return -1
	}
	return 0
}

// GreedySelector takes the candidate with the highest current hit points,
// ties broken by first-found.
type GreedySelector struct{}

func (GreedySelector) Name() string { return "greedy" }

func (GreedySelector) Pick(candidates []*game.CardInstance) int {
	best := -1
	for i, c := range candidates {
		if best < 0 || c.HP > candidates[best].HP {
			best = i
		}
	}
	return best
}

// SelectorByName returns the selector for a config/CLI name, defaulting to
// naive for unknown names.
func SelectorByName(name string) Selector {
	if name == "greedy" {
		return GreedySelector{}
	}
	return NaiveSelector{}
}
