package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pocketduel/pocketduel/internal/ai"
	"github.com/pocketduel/pocketduel/internal/event"
	"github.com/pocketduel/pocketduel/internal/game"
)

func main() {
	seed := flag.Int64("seed", 0, "RNG seed (0 = random)")
	p1Name := flag.String("p1", "naive", "player 1 policy (naive|greedy)")
	p2Name := flag.String("p2", "greedy", "player 2 policy (naive|greedy)")
	maxTurns := flag.Int("max-turns", 200, "turn cap before the match is called undecided")
	decksFile := flag.String("decks", "", "optional YAML deck file")
	deck1Name := flag.String("deck1", "", "player 1 deck name within the deck file")
	deck2Name := flag.String("deck2", "", "player 2 deck name within the deck file")
	flag.Parse()

	cfg := game.Config{Seed: *seed}
	if *decksFile != "" {
		var err error
		if cfg.Deck1, err = game.DeckByName(*decksFile, *deck1Name); err != nil {
			fatal(err)
		}
		if cfg.Deck2, err = game.DeckByName(*decksFile, *deck2Name); err != nil {
			fatal(err)
		}
	}

	relay := event.NewRelay()
	relay.SubscribeAll(event.TextHandler(os.Stdout))
	cfg.Relay = relay

	g := game.New(cfg)
	if err := g.Initialize(); err != nil {
		fatal(err)
	}

	p1 := ai.New(g, 1, ai.SelectorByName(*p1Name), nil)
	p2 := ai.New(g, 2, ai.SelectorByName(*p2Name), nil)
	sched := ai.NewScheduler(g, p1, p2)

	if err := p1.Setup(); err != nil {
		fatal(err)
	}
	if err := p2.Setup(); err != nil {
		fatal(err)
	}

	winner := sched.Run(*maxTurns)
	if winner == 0 {
		fmt.Printf("undecided after %d turns\n", g.State.Turn)
		return
	}
	fmt.Printf("P%d wins in %d turns (%d–%d points)\n",
		winner, g.State.Turn, g.State.Players[0].Points, g.State.Players[1].Points)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
