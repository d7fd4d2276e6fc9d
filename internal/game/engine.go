package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pocketduel/pocketduel/internal/event"
)

// DefaultMaxMulligans caps the opening-hand redraw loop. A deck list with no
// basic creature would otherwise redraw forever; hitting the cap is reported
// as a configuration error.
const DefaultMaxMulligans = 50

// Config holds the inputs for creating a match.
type Config struct {
	Deck1 DeckConfig   // defaults to DefaultDeck
	Deck2 DeckConfig   // defaults to DefaultDeck
	Relay *event.Relay // defaults to a fresh relay
	Seed  int64        // RNG seed (0 for time-based)

	// MaxMulligans overrides DefaultMaxMulligans when > 0.
	MaxMulligans int
}

// Game is the authoritative rules engine for one match. All mutation goes
// through its methods; every successful mutation publishes to the relay.
// Illegal moves are routine (a stale UI button, an AI probing for options)
// and are rejected silently with a false return. Data errors — unknown
// template IDs, impossible deck lists — are returned as errors.
//
// A Game exclusively owns its GameState. Readers may inspect State but must
// never mutate it. One Game serves one match; concurrent matches each get
// their own.
type Game struct {
	State *GameState

	relay        *event.Relay
	rng          *rand.Rand
	deck1, deck2 DeckConfig
	maxMulligans int
}

// New creates a match in the setup phase. Call Initialize to build decks and
// draw opening hands.
func New(cfg Config) *Game {
	relay := cfg.Relay
	if relay == nil {
		relay = event.NewRelay()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	deck1 := cfg.Deck1
	if deck1 == nil {
		deck1 = DefaultDeck
	}
	deck2 := cfg.Deck2
	if deck2 == nil {
		deck2 = DefaultDeck
	}
	maxMulligans := cfg.MaxMulligans
	if maxMulligans <= 0 {
		maxMulligans = DefaultMaxMulligans
	}

	return &Game{
		State:        NewGameState(),
		relay:        relay,
		rng:          rand.New(rand.NewSource(seed)),
		deck1:        deck1,
		deck2:        deck2,
		maxMulligans: maxMulligans,
	}
}

// Relay returns the notification relay for this match.
func (g *Game) Relay() *event.Relay {
	return g.relay
}

// Initialize builds both decks and draws opening hands. A hand with no basic
// creature is shuffled back and redrawn, so no player starts without a
// playable opening move; the redraw loop is capped by MaxMulligans.
func (g *Game) Initialize() error {
	gs := g.State

	for i, cfg := range []DeckConfig{g.deck1, g.deck2} {
		p := gs.Players[i]
		deck, err := BuildDeck(cfg, p.ID, g.rng)
		if err != nil {
			return fmt.Errorf("build deck for player %d: %w", p.ID, err)
		}
		p.Deck = deck
		if err := g.drawOpeningHand(p); err != nil {
			return err
		}
	}

	g.relay.Publish(event.Event{
		Type:    event.GameInitialized,
		Details: "decks built, opening hands drawn",
	})
	return nil
}

// drawOpeningHand draws InitialHandSize cards, redrawing until the hand
// contains a basic creature.
func (g *Game) drawOpeningHand(p *Player) error {
	for attempt := 0; attempt < g.maxMulligans; attempt++ {
		for i := 0; i < InitialHandSize; i++ {
			p.DrawCard()
		}
		if p.HasBasicInHand() {
			return nil
		}
		// Shuffle the hand back and try again.
		p.Deck = append(p.Deck, p.Hand...)
		p.Hand = nil
		Shuffle(p.Deck, g.rng)
	}
	return fmt.Errorf("player %d: no basic creature after %d redraws; deck list has no playable opener", p.ID, g.maxMulligans)
}

// SetPlayerReady marks a player ready during setup. Valid only once that
// player has an active creature placed. When both players are ready the
// match transitions to the playing phase and turn 1 starts for player 1.
func (g *Game) SetPlayerReady(player int) {
	gs := g.State
	p := gs.Player(player)
	if gs.Phase != PhaseSetup || p == nil || p.Active == nil {
		return
	}
	p.Ready = true
	if gs.Players[0].Ready && gs.Players[1].Ready {
		gs.Phase = PhasePlaying
		g.startTurn(1)
	}
}

// startTurn hands control to the given player. Draws a card on every turn
// except the very first of the match.
func (g *Game) startTurn(player int) {
	gs := g.State
	p := gs.Player(player)
	gs.Current = player
	gs.Turn++
	p.SupporterPlayed = false

	var drawn *CardInstance
	if gs.Turn > 1 {
		drawn = p.DrawCard()
	}

	g.relay.Publish(event.Event{
		Turn:   gs.Turn,
		Player: player,
		Type:   event.TurnStarted,
	})
	if drawn != nil {
		g.publishUpdate(player, "draw", drawn.Template.Name,
			fmt.Sprintf("P%d draws %s", player, drawn.Template.Name))
	} else {
		g.publishUpdate(player, "turnStart", "",
			fmt.Sprintf("P%d begins turn %d", player, gs.Turn))
	}
}

// EndTurn passes the turn to the opponent. Ignored once the game is over.
func (g *Game) EndTurn() {
	gs := g.State
	if gs.Over {
		return
	}
	g.startTurn(gs.Opponent(gs.Current))
}

// PlayCard plays the hand card at handIndex, dispatching on its kind:
// supporter, Trainer Whistle, or basic creature placement. Chicken Nugget is
// deliberately not handled here — it consumes two hand cards at once and
// must go through PlayChickenNugget. Returns false with no state change when
// the play is illegal or has no effect.
func (g *Game) PlayCard(player, handIndex int) bool {
	gs := g.State
	if gs.Over {
		return false
	}
	if gs.Phase != PhaseSetup && player != gs.Current {
		return false
	}
	p := gs.Player(player)
	if p == nil || handIndex < 0 || handIndex >= len(p.Hand) {
		return false
	}
	card := p.Hand[handIndex]

	switch card.Template.Kind {
	case KindSupporter:
		return g.playSupporter(p, handIndex)
	case KindItem:
		if card.Template.ID == TemplateTrainerWhistle {
			return g.playTrainerWhistle(p, handIndex)
		}
		// Chicken Nugget needs a second hand index; see PlayChickenNugget.
		return false
	case KindBasic:
		return g.placeBasic(p, handIndex)
	default:
		return false
	}
}

// playSupporter draws 2 cards and discards the supporter. One per turn,
// never during setup.
func (g *Game) playSupporter(p *Player, handIndex int) bool {
	gs := g.State
	if gs.Phase == PhaseSetup || p.SupporterPlayed {
		return false
	}
	card := p.Hand[handIndex]
	p.DrawCard()
	p.DrawCard()
	p.RemoveFromHand(handIndex)
	p.SupporterPlayed = true
	g.publishUpdate(p.ID, "playSupporter", card.Template.Name,
		fmt.Sprintf("P%d plays %s and draws 2", p.ID, card.Template.Name))
	return true
}

// playTrainerWhistle pulls one random basic creature from the deck into the
// hand, then reshuffles the deck. No effect when the deck holds no basics.
func (g *Game) playTrainerWhistle(p *Player, handIndex int) bool {
	var basics []int
	for i, c := range p.Deck {
		if c.Template.Kind == KindBasic {
			basics = append(basics, i)
		}
	}
	if len(basics) == 0 {
		return false
	}
	card := p.Hand[handIndex]
	pick := basics[g.rng.Intn(len(basics))]
	fetched := p.Deck[pick]
	p.Deck = append(p.Deck[:pick], p.Deck[pick+1:]...)
	p.Hand = append(p.Hand, fetched)
	p.RemoveFromHand(handIndex)
	Shuffle(p.Deck, g.rng)
	g.publishUpdate(p.ID, "playItem", card.Template.Name,
		fmt.Sprintf("P%d plays %s, adding %s to hand", p.ID, card.Template.Name, fetched.Template.Name))
	return true
}

// placeBasic commits a basic creature to the active slot if empty, else the
// first free bench slot. Fails when the board is full.
func (g *Game) placeBasic(p *Player, handIndex int) bool {
	gs := g.State
	card := p.Hand[handIndex]

	if p.Active == nil {
		p.RemoveFromHand(handIndex)
		card.TurnPlaced = gs.Turn
		p.Active = card
		g.publishUpdate(p.ID, "playBasic", card.Template.Name,
			fmt.Sprintf("P%d places %s as active", p.ID, card.Template.Name))
		return true
	}

	slot := p.FreeBenchSlot()
	if slot < 0 {
		return false
	}
	p.RemoveFromHand(handIndex)
	card.TurnPlaced = gs.Turn
	p.Bench[slot] = card
	g.publishUpdate(p.ID, "playBasic", card.Template.Name,
		fmt.Sprintf("P%d places %s on bench %d", p.ID, card.Template.Name, slot))
	return true
}

// Evolve replaces the creature at boardIndex (BoardActive or a bench slot)
// with the hand card at handIndex. The hand card's evolution parent must
// match the target's template, the target must not have been placed this
// turn, and evolutions are closed before turn 2. Damage already taken
// carries forward onto the evolved card.
func (g *Game) Evolve(player, handIndex, boardIndex int) bool {
	gs := g.State
	if gs.Over || gs.Phase != PhasePlaying || player != gs.Current || gs.Turn <= 1 {
		return false
	}
	p := gs.Player(player)
	if p == nil || handIndex < 0 || handIndex >= len(p.Hand) {
		return false
	}
	card := p.Hand[handIndex]
	target := p.Board(boardIndex)
	if target == nil {
		return false
	}
	if card.Template.EvolvesFrom == "" || card.Template.EvolvesFrom != target.Template.ID {
		return false
	}
	if target.TurnPlaced >= gs.Turn {
		return false
	}

	p.RemoveFromHand(handIndex)
	g.evolveInto(p, card, target, boardIndex)
	return true
}

// PlayChickenNugget performs the skip-stage evolution combo: the Chicken
// Nugget item at itemIndex plus the stage-2 card at evoIndex are both
// consumed, evolving the basic creature at boardIndex directly. The stage-2
// card's declared basic ancestor must match the target. This is the one play
// that cannot go through PlayCard, since it commits two hand cards at once.
func (g *Game) PlayChickenNugget(player, itemIndex, evoIndex, boardIndex int) bool {
	gs := g.State
	if gs.Over || gs.Phase != PhasePlaying || player != gs.Current || gs.Turn <= 1 {
		return false
	}
	p := gs.Player(player)
	if p == nil || itemIndex == evoIndex {
		return false
	}
	if itemIndex < 0 || itemIndex >= len(p.Hand) || evoIndex < 0 || evoIndex >= len(p.Hand) {
		return false
	}
	item := p.Hand[itemIndex]
	card := p.Hand[evoIndex]
	if item.Template.ID != TemplateChickenNugget {
		return false
	}
	target := p.Board(boardIndex)
	if target == nil || target.Template.Kind != KindBasic {
		return false
	}
	if card.Template.EvolvesFromBasic == "" || card.Template.EvolvesFromBasic != target.Template.ID {
		return false
	}
	if target.TurnPlaced >= gs.Turn {
		return false
	}

	// Remove the higher index first so the lower one stays valid.
	hi, lo := itemIndex, evoIndex
	if lo > hi {
		hi, lo = lo, hi
	}
	p.RemoveFromHand(hi)
	p.RemoveFromHand(lo)
	g.evolveInto(p, card, target, boardIndex)
	return true
}

// evolveInto commits an evolution: accumulated damage persists, the new card
// is stamped with the current turn, and the slot is replaced.
func (g *Game) evolveInto(p *Player, card, target *CardInstance, boardIndex int) {
	gs := g.State
	card.HP = card.MaxHP - target.Damage()
	card.TurnPlaced = gs.Turn
	p.setBoard(boardIndex, card)
	g.publishUpdate(p.ID, "evolve", card.Template.Name,
		fmt.Sprintf("P%d evolves %s into %s", p.ID, target.Template.Name, card.Template.Name))
}

// Attack resolves the current player's active creature attacking the
// opponent's active creature, then passes the turn. On a knockout the
// attacker scores 1 point (2 for an ex creature); reaching the winning score
// ends the game, and so does leaving the defender with nothing to promote —
// checked in that order.
func (g *Game) Attack() bool {
	gs := g.State
	if gs.Over || gs.Phase != PhasePlaying {
		return false
	}
	attacker := gs.Player(gs.Current)
	defender := gs.Player(gs.Opponent(gs.Current))
	if attacker.Active == nil || defender.Active == nil {
		return false
	}

	dmg := attacker.Active.Template.AttackDmg
	defender.Active.HP -= dmg
	g.publishUpdate(attacker.ID, "attack", attacker.Active.Template.Name,
		fmt.Sprintf("P%d's %s hits %s for %d (%d HP left)",
			attacker.ID, attacker.Active.Template.Name, defender.Active.Template.Name,
			dmg, defender.Active.HP))

	if defender.Active.HP <= 0 {
		knocked := defender.Active
		defender.Active = nil
		points := 1
		if knocked.Template.EX {
			points = 2
		}
		attacker.Points += points
		g.publishUpdate(attacker.ID, "knockout", knocked.Template.Name,
			fmt.Sprintf("%s is knocked out; P%d scores %d (total %d)",
				knocked.Template.Name, attacker.ID, points, attacker.Points))

		// Points threshold wins before the bench check.
		if attacker.Points >= WinningPoints {
			g.endGame(attacker.ID, "reached the winning score")
			return true
		}
		if defender.BenchCount() == 0 {
			g.endGame(attacker.ID, fmt.Sprintf("P%d has no creatures left", defender.ID))
			return true
		}
	}

	g.startTurn(defender.ID)
	return true
}

// Promote moves a benched creature into the player's empty active slot.
func (g *Game) Promote(player, benchIndex int) bool {
	gs := g.State
	if gs.Over {
		return false
	}
	p := gs.Player(player)
	if p == nil || p.Active != nil {
		return false
	}
	if benchIndex < 0 || benchIndex >= BenchSize || p.Bench[benchIndex] == nil {
		return false
	}
	p.Active = p.Bench[benchIndex]
	p.Bench[benchIndex] = nil
	g.publishUpdate(player, "promote", p.Active.Template.Name,
		fmt.Sprintf("P%d promotes %s to active", player, p.Active.Template.Name))
	return true
}

// Retreat swaps the current player's active creature with a benched one.
// Does not end the turn.
func (g *Game) Retreat(player, benchIndex int) bool {
	gs := g.State
	if gs.Over || gs.Phase != PhasePlaying || player != gs.Current {
		return false
	}
	p := gs.Player(player)
	if p == nil || p.Active == nil {
		return false
	}
	if benchIndex < 0 || benchIndex >= BenchSize || p.Bench[benchIndex] == nil {
		return false
	}
	p.Active, p.Bench[benchIndex] = p.Bench[benchIndex], p.Active
	g.publishUpdate(player, "retreat", p.Active.Template.Name,
		fmt.Sprintf("P%d retreats %s for %s", player, p.Bench[benchIndex].Template.Name, p.Active.Template.Name))
	return true
}

// endGame marks the match decided. Terminal: every operation checks Over
// before mutating, so no further board changes are possible.
func (g *Game) endGame(winner int, reason string) {
	gs := g.State
	gs.Over = true
	gs.Winner = winner
	g.relay.Publish(event.Event{
		Turn:    gs.Turn,
		Player:  winner,
		Winner:  winner,
		Type:    event.GameEnded,
		Details: reason,
	})
}

// publishUpdate emits the general state-update notification that follows
// almost every successful mutation.
func (g *Game) publishUpdate(player int, action, card, details string) {
	gs := g.State
	g.relay.Publish(event.Event{
		Turn:    gs.Turn,
		Player:  player,
		Type:    event.GameStateUpdated,
		Action:  action,
		Card:    card,
		Details: details,
	})
}
