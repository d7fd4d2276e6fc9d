package ai

import (
	"github.com/pocketduel/pocketduel/internal/event"
	"github.com/pocketduel/pocketduel/internal/game"
)

// Scheduler wires both policies to the match's turn-start notifications.
// The relay delivers synchronously, so acting inside the handler would
// recurse — a policy's attack starts the opponent's turn, which would start
// another ExecuteTurn mid-call. Instead the handler only queues the player
// and Run drains the queue iteratively.
type Scheduler struct {
	g        *game.Game
	policies map[int]*Policy
	queue    []int
}

// NewScheduler subscribes to the match's turnStarted events. Both policies
// must belong to the same match as g.
func NewScheduler(g *game.Game, p1, p2 *Policy) *Scheduler {
	s := &Scheduler{
		g:        g,
		policies: map[int]*Policy{p1.Player(): p1, p2.Player(): p2},
	}
	g.Relay().Subscribe(event.TurnStarted, func(e event.Event) {
		s.queue = append(s.queue, e.Player)
	})
	return s
}

// Run drains queued turns until the match ends, no turn is pending, or
// maxTurns is exceeded — the cap guards against a stalemate where neither
// side can ever score. Returns the winner, or 0 if undecided.
func (s *Scheduler) Run(maxTurns int) int {
	gs := s.g.State
	for len(s.queue) > 0 && !gs.Over && gs.Turn <= maxTurns {
		player := s.queue[0]
		s.queue = s.queue[1:]
		if policy, ok := s.policies[player]; ok {
			policy.ExecuteTurn()
		}
	}
	return gs.Winner
}
