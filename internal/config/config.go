package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds simulator settings.
type Config struct {
	Games    int    `mapstructure:"games"`
	Seed     int64  `mapstructure:"seed"`
	MaxTurns int    `mapstructure:"max_turns"`
	Policy1  string `mapstructure:"policy1"`
	Policy2  string `mapstructure:"policy2"`

	// DeckFile is an optional YAML deck-list file; Deck1/Deck2 name decks
	// within it. Empty means the built-in default deck.
	DeckFile string `mapstructure:"deck_file"`
	Deck1    string `mapstructure:"deck1"`
	Deck2    string `mapstructure:"deck2"`

	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from the given file (optional) and environment
// variables prefixed POCKETDUEL_, applying defaults for anything unset.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("games", 100)
	v.SetDefault("seed", 0)
	v.SetDefault("max_turns", 200)
	v.SetDefault("policy1", "naive")
	v.SetDefault("policy2", "greedy")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("POCKETDUEL")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
