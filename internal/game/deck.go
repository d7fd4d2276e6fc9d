package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeckFile represents the top-level YAML structure of a deck list file.
type DeckFile struct {
	Decks []NamedDeck `yaml:"decks"`
}

// NamedDeck is a single deck list in the file.
type NamedDeck struct {
	Name  string     `yaml:"name"`
	Cards DeckConfig `yaml:"cards"`
}

// ParseDeckFile parses a YAML deck file and returns a map of deck name →
// deck list. Every template ID is validated against the catalog.
func ParseDeckFile(path string) (map[string]DeckConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}

	decks := make(map[string]DeckConfig)
	for _, deck := range df.Decks {
		for _, entry := range deck.Cards {
			if _, err := Lookup(entry.TemplateID); err != nil {
				return nil, fmt.Errorf("deck %q: %w", deck.Name, err)
			}
		}
		decks[deck.Name] = deck.Cards
	}

	return decks, nil
}

// DeckByName returns the named deck from the deck file.
func DeckByName(path, name string) (DeckConfig, error) {
	decks, err := ParseDeckFile(path)
	if err != nil {
		return nil, err
	}
	cfg, ok := decks[name]
	if !ok {
		return nil, fmt.Errorf("deck %q not found in %s", name, path)
	}
	return cfg, nil
}
