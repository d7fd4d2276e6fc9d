package sim

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pocketduel/pocketduel/internal/ai"
	"github.com/pocketduel/pocketduel/internal/event"
	"github.com/pocketduel/pocketduel/internal/game"
)

// DefaultMaxTurns bounds each simulated match. The engine itself never
// forces termination, so the harness caps turn count.
const DefaultMaxTurns = 200

// Options configures a simulation batch.
type Options struct {
	Games    int
	Seed     int64 // 0 for time-based
	MaxTurns int   // 0 for DefaultMaxTurns

	Policy1 string // "naive" or "greedy"
	Policy2 string

	Deck1 game.DeckConfig // nil for the default deck
	Deck2 game.DeckConfig

	Logger *zap.Logger
}

// Runner plays batches of fully isolated AI-vs-AI matches and aggregates
// statistics. Each match gets its own state, relay and RNG stream, so
// batches are safe to run in parallel Runners.
type Runner struct {
	opts   Options
	logger *zap.Logger
	rng    *rand.Rand
}

func NewRunner(opts Options) *Runner {
	if opts.Games <= 0 {
		opts.Games = 1
	}
	if opts.MaxTurns <= 0 {
		opts.MaxTurns = DefaultMaxTurns
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		opts:   opts,
		logger: logger,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Run executes the batch and returns the aggregated report.
func (r *Runner) Run() *Report {
	report := newReport()
	report.Games = r.opts.Games

	for i := 0; i < r.opts.Games; i++ {
		r.runMatch(report)
	}
	return report
}

// runMatch plays a single match into the report.
func (r *Runner) runMatch(report *Report) {
	matchID := uuid.NewString()
	relay := event.NewRelay()
	relay.Subscribe(event.GameStateUpdated, func(e event.Event) {
		if e.Card == "" {
			return
		}
		switch e.Action {
		case "draw":
			report.card(e.Card).Drawn++
		case "playBasic", "playSupporter", "playItem", "evolve":
			report.card(e.Card).Played++
		}
	})

	g := game.New(game.Config{
		Deck1: r.opts.Deck1,
		Deck2: r.opts.Deck2,
		Relay: relay,
		Seed:  r.rng.Int63(),
	})
	if err := g.Initialize(); err != nil {
		r.logger.Error("match initialization failed",
			zap.String("match_id", matchID), zap.Error(err))
		report.Failed++
		return
	}

	p1 := ai.New(g, 1, ai.SelectorByName(r.opts.Policy1), r.logger)
	p2 := ai.New(g, 2, ai.SelectorByName(r.opts.Policy2), r.logger)
	sched := ai.NewScheduler(g, p1, p2)

	if err := p1.Setup(); err != nil {
		r.logger.Error("setup failed", zap.String("match_id", matchID), zap.Error(err))
		report.Failed++
		return
	}
	if err := p2.Setup(); err != nil {
		r.logger.Error("setup failed", zap.String("match_id", matchID), zap.Error(err))
		report.Failed++
		return
	}

	winner := sched.Run(r.opts.MaxTurns)
	report.TotalTurns += g.State.Turn

	switch winner {
	case 1:
		report.P1Wins++
	case 2:
		report.P2Wins++
	default:
		report.Undecided++
	}

	r.logger.Debug("match finished",
		zap.String("match_id", matchID),
		zap.Int("winner", winner),
		zap.Int("turns", g.State.Turn))
}
