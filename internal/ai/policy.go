package ai

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pocketduel/pocketduel/internal/game"
)

// Policy drives one side of a match through the engine's public operations —
// the same calls a human interface would make. It never touches game state
// directly; it only reads it to find legal moves.
type Policy struct {
	g      *game.Game
	player int
	sel    Selector
	logger *zap.Logger
}

// New creates a policy for the given player (1 or 2). A nil logger is
// replaced with a no-op.
func New(g *game.Game, player int, sel Selector, logger *zap.Logger) *Policy {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Policy{g: g, player: player, sel: sel, logger: logger}
}

// Player returns the side this policy controls.
func (p *Policy) Player() int {
	return p.player
}

// Setup places an active creature, benches every other basic in hand, and
// signals ready. A hand with no basic creature is a deck-configuration bug,
// not a game event: it is logged loudly and returned as an error.
func (p *Policy) Setup() error {
	me := p.g.State.Player(p.player)

	var cands []*game.CardInstance
	var idxs []int
	for i, c := range me.Hand {
		if c.Template.Kind == game.KindBasic {
			cands = append(cands, c)
			idxs = append(idxs, i)
		}
	}
	pick := p.sel.Pick(cands)
	if pick < 0 {
		p.logger.Error("no basic creature in opening hand; aborting match",
			zap.Int("player", p.player),
			zap.Int("hand_size", len(me.Hand)))
		return fmt.Errorf("player %d: no basic creature in opening hand", p.player)
	}
	p.g.PlayCard(p.player, idxs[pick])

	// Bench the rest. Highest index first so earlier indices stay valid as
	// the hand shrinks.
	for i := len(me.Hand) - 1; i >= 0; i-- {
		if me.Hand[i].Template.Kind == game.KindBasic {
			p.g.PlayCard(p.player, i)
		}
	}

	p.g.SetPlayerReady(p.player)
	return nil
}

// ExecuteTurn plays out one full turn: promote if needed, supporter, items,
// the best evolution available (nugget combo preferred over a direct
// evolution), bench fills, then attack or pass. No-op when it is not this
// policy's turn or the match has ended.
func (p *Policy) ExecuteTurn() {
	gs := p.g.State
	if gs.Over || gs.Current != p.player {
		return
	}
	me := gs.Player(p.player)

	// 1. No active creature: promote from bench, or concede the turn.
	if me.Active == nil {
		if !p.promoteFromBench() {
			p.g.EndTurn()
			return
		}
	}

	// 2. One supporter per turn.
	if !me.SupporterPlayed {
		for i, c := range me.Hand {
			if c.Template.Kind == game.KindSupporter {
				p.g.PlayCard(p.player, i)
				break
			}
		}
	}

	// 3. Non-combo items, scanning backward to tolerate index shifts.
	for i := len(me.Hand) - 1; i >= 0; i-- {
		c := me.Hand[i]
		if c.Template.Kind == game.KindItem && c.Template.ID == game.TemplateTrainerWhistle {
			p.g.PlayCard(p.player, i)
		}
	}

	// 4–5. Nugget combo first, else a direct evolution.
	if !p.tryNuggetCombo() {
		p.tryEvolution()
	}

	// 6. Bench every remaining basic.
	for i := len(me.Hand) - 1; i >= 0; i-- {
		if me.Hand[i].Template.Kind == game.KindBasic {
			p.g.PlayCard(p.player, i)
		}
	}

	// 7. Attack if possible; attacking passes the turn.
	if me.Active != nil {
		if p.g.Attack() {
			return
		}
	}
	p.g.EndTurn()
}

// promoteFromBench promotes the selector's choice of benched creature.
func (p *Policy) promoteFromBench() bool {
	me := p.g.State.Player(p.player)
	var cands []*game.CardInstance
	var slots []int
	for i, c := range me.Bench {
		if c != nil {
			cands = append(cands, c)
			slots = append(slots, i)
		}
	}
	pick := p.sel.Pick(cands)
	if pick < 0 {
		return false
	}
	return p.g.Promote(p.player, slots[pick])
}

// boardIndexes is the scan order for evolution targets: active first, then
// the bench.
var boardIndexes = []int{game.BoardActive, 0, 1, 2}

// nuggetCombo is one executable skip-stage evolution opportunity.
type nuggetCombo struct {
	itemIdx  int
	evoIdx   int
	boardIdx int
}

// tryNuggetCombo searches for a Chicken Nugget double-evolution across all
// board targets and executes the selector's choice. Hand indices already
// claimed by another nugget in the same pass are excluded, so two combos
// never contend for the same evolution card.
func (p *Policy) tryNuggetCombo() bool {
	gs := p.g.State
	me := gs.Player(p.player)

	var cands []*game.CardInstance
	var combos []nuggetCombo
	claimed := make(map[int]bool)

	for itemIdx, c := range me.Hand {
		if c.Template.Kind != game.KindItem || c.Template.ID != game.TemplateChickenNugget {
			continue
		}
		for _, board := range boardIndexes {
			target := me.Board(board)
			if target == nil || target.Template.Kind != game.KindBasic || target.TurnPlaced >= gs.Turn {
				continue
			}
			evoIdx := -1
			for i, h := range me.Hand {
				if i == itemIdx || claimed[i] {
					continue
				}
				if h.Template.EvolvesFromBasic != "" && h.Template.EvolvesFromBasic == target.Template.ID {
					evoIdx = i
					break
				}
			}
			if evoIdx < 0 {
				continue
			}
			claimed[evoIdx] = true
			cands = append(cands, target)
			combos = append(combos, nuggetCombo{itemIdx: itemIdx, evoIdx: evoIdx, boardIdx: board})
			break
		}
	}

	pick := p.sel.Pick(cands)
	if pick < 0 {
		return false
	}
	combo := combos[pick]
	return p.g.PlayChickenNugget(p.player, combo.itemIdx, combo.evoIdx, combo.boardIdx)
}

// tryEvolution executes the selector's choice of direct evolution, if any.
func (p *Policy) tryEvolution() bool {
	gs := p.g.State
	me := gs.Player(p.player)

	var cands []*game.CardInstance
	var handIdxs, boardIdxs []int

	for _, board := range boardIndexes {
		target := me.Board(board)
		if target == nil || target.TurnPlaced >= gs.Turn {
			continue
		}
		for i, h := range me.Hand {
			if h.Template.EvolvesFrom != "" && h.Template.EvolvesFrom == target.Template.ID {
				cands = append(cands, target)
				handIdxs = append(handIdxs, i)
				boardIdxs = append(boardIdxs, board)
				break
			}
		}
	}

	pick := p.sel.Pick(cands)
	if pick < 0 {
		return false
	}
	return p.g.Evolve(p.player, handIdxs[pick], boardIdxs[pick])
}
