package sim

import (
	"fmt"
	"sort"
	"strings"
)

// CardStat accumulates per-template counters across a batch.
type CardStat struct {
	Drawn  int // turn-start draws
	Played int // successful plays (placement, supporter, item, evolution)
}

// Report aggregates the outcome of a simulation batch.
type Report struct {
	Games     int
	P1Wins    int
	P2Wins    int
	Undecided int // hit the turn cap
	Failed    int // setup/initialization errors

	TotalTurns int
	Cards      map[string]*CardStat
}

func newReport() *Report {
	return &Report{Cards: make(map[string]*CardStat)}
}

func (r *Report) card(name string) *CardStat {
	cs, ok := r.Cards[name]
	if !ok {
		cs = &CardStat{}
		r.Cards[name] = cs
	}
	return cs
}

// AvgTurns returns the mean match length over decided and undecided games.
func (r *Report) AvgTurns() float64 {
	played := r.Games - r.Failed
	if played == 0 {
		return 0
	}
	return float64(r.TotalTurns) / float64(played)
}

func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "games: %d\n", r.Games)
	fmt.Fprintf(&sb, "P1 wins: %d  P2 wins: %d  undecided: %d  failed: %d\n",
		r.P1Wins, r.P2Wins, r.Undecided, r.Failed)
	fmt.Fprintf(&sb, "avg turns: %.1f\n", r.AvgTurns())

	names := make([]string, 0, len(r.Cards))
	for name := range r.Cards {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > 0 {
		sb.WriteString("card            drawn  played\n")
		for _, name := range names {
			cs := r.Cards[name]
			fmt.Fprintf(&sb, "%-15s %5d  %6d\n", name, cs.Drawn, cs.Played)
		}
	}
	return sb.String()
}
