package game

import "fmt"

// --- Enums ---

type Phase int

const (
	PhaseSetup Phase = iota
	PhasePlaying
)

func (p Phase) String() string {
	if p == PhaseSetup {
		return "Setup"
	}
	return "Playing"
}

// CardKind tags a template with its rule category. PlayCard dispatches on
// this tag, so every playable card falls into exactly one branch.
type CardKind int

const (
	KindBasic     CardKind = iota // creature playable straight from hand
	KindEvolution                 // creature requiring an in-play parent
	KindSupporter                 // one per turn, draws 2
	KindItem                      // fixed-behavior item (whistle, nugget)
)

func (k CardKind) String() string {
	switch k {
	case KindBasic:
		return "Basic"
	case KindEvolution:
		return "Evolution"
	case KindSupporter:
		return "Supporter"
	case KindItem:
		return "Item"
	default:
		return "Unknown"
	}
}

// BoardActive is the target index denoting the active slot in operations
// that address a board position; 0..BenchSize-1 address bench slots.
const BoardActive = -1

// BenchSize is the fixed bench capacity per player.
const BenchSize = 3

// --- Template (static, catalog-owned) ---

// Template is the immutable blueprint for a card. Creature stats are zero
// for supporter/item cards.
type Template struct {
	ID         string
	Name       string
	Kind       CardKind
	HP         int
	AttackName string
	AttackDmg  int

	// EvolvesFrom is the template ID of the direct pre-evolution, set on
	// KindEvolution cards. EvolvesFromBasic is the basic ancestor ID, set
	// only on stage-2 cards; it is what Chicken Nugget matches against.
	EvolvesFrom      string
	EvolvesFromBasic string

	// EX creatures award 2 points on knockout instead of 1.
	EX bool
}

func (t *Template) String() string {
	return t.Name
}

// IsCreature reports whether the template has a board presence.
func (t *Template) IsCreature() bool {
	return t.Kind == KindBasic || t.Kind == KindEvolution
}

// --- CardInstance (runtime card in deck/hand/active/bench) ---

// CardInstance is a concrete in-play copy of a template. Two copies of the
// same template coexist routinely, so every instance carries a process-unique
// ID distinguishing it across zones and renders.
type CardInstance struct {
	Template *Template
	ID       int64
	Owner    int // player (1 or 2) who owns this card

	HP    int
	MaxHP int // fixed at creation, never changes

	// TurnPlaced is the turn counter value when the card was committed to
	// active/bench. Compared against the current counter to forbid
	// evolve-the-turn-of-entry. -1 while not in play.
	TurnPlaced int
}

func (ci *CardInstance) String() string {
	if ci == nil {
		return "(empty)"
	}
	if ci.Template.IsCreature() {
		return fmt.Sprintf("%s (%d/%d)", ci.Template.Name, ci.HP, ci.MaxHP)
	}
	return ci.Template.Name
}

// Damage returns the damage accumulated on this card. Evolution carries it
// forward onto the replacement card.
func (ci *CardInstance) Damage() int {
	return ci.MaxHP - ci.HP
}
