package game

import (
	"math/rand"
	"sync/atomic"
)

// instanceCounter issues process-unique card instance IDs. It is shared by
// every match in the process so that two concurrent simulations can never
// mint the same identity.
var instanceCounter atomic.Int64

// NewInstance stamps a catalog template into a fresh mutable instance.
func NewInstance(templateID string, owner int) (*CardInstance, error) {
	t, err := Lookup(templateID)
	if err != nil {
		return nil, err
	}
	return &CardInstance{
		Template:   t,
		ID:         instanceCounter.Add(1),
		Owner:      owner,
		HP:         t.HP,
		MaxHP:      t.HP,
		TurnPlaced: -1,
	}, nil
}

// BuildDeck expands a deck list into instances and returns a Fisher–Yates
// shuffled ordering. The top of the deck is the last element.
func BuildDeck(cfg DeckConfig, owner int, rng *rand.Rand) ([]*CardInstance, error) {
	var deck []*CardInstance
	for _, entry := range cfg {
		for i := 0; i < entry.Count; i++ {
			ci, err := NewInstance(entry.TemplateID, owner)
			if err != nil {
				return nil, err
			}
			deck = append(deck, ci)
		}
	}
	Shuffle(deck, rng)
	return deck, nil
}

// Shuffle randomizes a pile of cards in place.
func Shuffle(cards []*CardInstance, rng *rand.Rand) {
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
