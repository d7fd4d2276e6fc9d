package game

import "fmt"

// Fixed template identifiers referenced by the rules engine.
const (
	TemplateTrainerWhistle = "item-001"
	TemplateChickenNugget  = "item-002"
)

// UnknownCardError indicates a template identifier that is not in the
// catalog. It is a data error — a corrupt deck list, not a game event.
type UnknownCardError struct {
	ID string
}

func (e *UnknownCardError) Error() string {
	return fmt.Sprintf("unknown card template %q", e.ID)
}

// Catalog maps template IDs to their immutable definitions.
var Catalog = map[string]*Template{
	"base-001": {
		ID:         "base-001",
		Name:       "Cluckling",
		Kind:       KindBasic,
		HP:         60,
		AttackName: "Peck",
		AttackDmg:  20,
	},
	"base-002": {
		ID:          "base-002",
		Name:        "Roostrike",
		Kind:        KindEvolution,
		HP:          90,
		AttackName:  "Talon Jab",
		AttackDmg:   40,
		EvolvesFrom: "base-001",
	},
	"base-003": {
		ID:               "base-003",
		Name:             "Galliant",
		Kind:             KindEvolution,
		HP:               150,
		AttackName:       "Drumstick Slam",
		AttackDmg:        60,
		EvolvesFrom:      "base-002",
		EvolvesFromBasic: "base-001",
	},
	"base-004": {
		ID:         "base-004",
		Name:       "Henzilla ex",
		Kind:       KindBasic,
		HP:         100,
		AttackName: "Egg Barrage",
		AttackDmg:  30,
		EX:         true,
	},
	"base-005": {
		ID:         "base-005",
		Name:       "Peckolo",
		Kind:       KindBasic,
		HP:         70,
		AttackName: "Scratch",
		AttackDmg:  20,
	},
	"supporter-001": {
		ID:   "supporter-001",
		Name: "Coach Cluckins",
		Kind: KindSupporter,
	},
	TemplateTrainerWhistle: {
		ID:   TemplateTrainerWhistle,
		Name: "Trainer Whistle",
		Kind: KindItem,
	},
	TemplateChickenNugget: {
		ID:   TemplateChickenNugget,
		Name: "Chicken Nugget",
		Kind: KindItem,
	},
}

// Lookup returns the template for the given ID, or an UnknownCardError.
func Lookup(id string) (*Template, error) {
	t, ok := Catalog[id]
	if !ok {
		return nil, &UnknownCardError{ID: id}
	}
	return t, nil
}

// DeckEntry is one (template, count) line of a deck list.
type DeckEntry struct {
	TemplateID string `yaml:"id"`
	Count      int    `yaml:"count"`
}

// DeckConfig is an ordered deck list.
type DeckConfig []DeckEntry

// Size returns the total number of cards the list expands to.
func (dc DeckConfig) Size() int {
	n := 0
	for _, e := range dc {
		n += e.Count
	}
	return n
}

// DefaultDeck is the stock 20-card list both players use unless a deck file
// overrides it.
var DefaultDeck = DeckConfig{
	{TemplateID: "base-001", Count: 3},
	{TemplateID: "base-002", Count: 3},
	{TemplateID: "base-003", Count: 2},
	{TemplateID: "base-004", Count: 2},
	{TemplateID: "base-005", Count: 3},
	{TemplateID: "supporter-001", Count: 3},
	{TemplateID: TemplateTrainerWhistle, Count: 2},
	{TemplateID: TemplateChickenNugget, Count: 2},
}
