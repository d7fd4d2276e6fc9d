package game

import (
	"testing"

	"github.com/pocketduel/pocketduel/internal/event"
)

func TestInitializeOpeningHands(t *testing.T) {
	g := New(Config{Seed: 42})
	if err := g.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	for _, p := range g.State.Players {
		if len(p.Hand) != InitialHandSize {
			t.Errorf("P%d hand size = %d, want %d", p.ID, len(p.Hand), InitialHandSize)
		}
		if !p.HasBasicInHand() {
			t.Errorf("P%d opening hand has no basic creature", p.ID)
		}
		if got := len(p.Hand) + len(p.Deck); got != DefaultDeck.Size() {
			t.Errorf("P%d hand+deck = %d cards, want %d", p.ID, got, DefaultDeck.Size())
		}
	}

	inits := g.Relay().EventsOfType(event.GameInitialized)
	if len(inits) != 1 {
		t.Errorf("expected 1 gameInitialized event, got %d", len(inits))
	}
}

func TestInitializeBasicFreeDeckErrors(t *testing.T) {
	noBasics := DeckConfig{{TemplateID: "supporter-001", Count: 20}}
	g := New(Config{Seed: 1, Deck1: noBasics})
	if err := g.Initialize(); err == nil {
		t.Fatal("expected error for a deck with no basic creatures")
	}
}

func TestSetPlayerReadyRequiresActive(t *testing.T) {
	g := setupGame()
	hand(g, 1, inst(t, "base-001", 1))
	hand(g, 2, inst(t, "base-005", 2))

	g.SetPlayerReady(1)
	if g.State.Players[0].Ready {
		t.Error("player without an active creature must not become ready")
	}

	if !g.PlayCard(1, 0) {
		t.Fatal("placing a basic during setup should succeed")
	}
	g.SetPlayerReady(1)
	if !g.State.Players[0].Ready {
		t.Error("player 1 should be ready after placing an active")
	}
	if g.State.Phase != PhaseSetup {
		t.Error("phase must stay setup until both players are ready")
	}

	g.PlayCard(2, 0)
	g.SetPlayerReady(2)
	if g.State.Phase != PhasePlaying {
		t.Fatal("both players ready should start the match")
	}
	if g.State.Current != 1 || g.State.Turn != 1 {
		t.Errorf("match should open on turn 1 for player 1, got turn %d player %d", g.State.Turn, g.State.Current)
	}
	starts := g.Relay().EventsOfType(event.TurnStarted)
	if len(starts) != 1 || starts[0].Player != 1 {
		t.Errorf("expected one turnStarted for player 1, got %v", starts)
	}
}

func TestFirstTurnSkipsDraw(t *testing.T) {
	g := setupGame()
	hand(g, 1, inst(t, "base-001", 1))
	hand(g, 2, inst(t, "base-005", 2))
	deckOf(g, 1, inst(t, "base-004", 1))
	deckOf(g, 2, inst(t, "base-004", 2))
	g.PlayCard(1, 0)
	g.PlayCard(2, 0)
	g.SetPlayerReady(1)
	g.SetPlayerReady(2)

	if n := len(g.State.Players[0].Hand); n != 0 {
		t.Errorf("no card may be drawn on the very first turn, hand = %d", n)
	}

	g.EndTurn()
	if n := len(g.State.Players[1].Hand); n != 1 {
		t.Errorf("turn 2 should draw one card, hand = %d", n)
	}
	if g.State.Turn != 2 || g.State.Current != 2 {
		t.Errorf("after EndTurn: turn %d player %d", g.State.Turn, g.State.Current)
	}
}

func TestPlayCardWrongTurnRejected(t *testing.T) {
	g := playingGame() // player 1 to act
	hand(g, 2, inst(t, "base-001", 2))

	if g.PlayCard(2, 0) {
		t.Error("playing out of turn must be rejected")
	}
	if len(g.State.Player(2).Hand) != 1 {
		t.Error("rejected play must not touch the hand")
	}
}

func TestSupporterOncePerTurn(t *testing.T) {
	g := playingGame()
	p := g.State.Player(1)
	hand(g, 1, inst(t, "supporter-001", 1), inst(t, "supporter-001", 1))
	deckOf(g, 1,
		inst(t, "base-001", 1), inst(t, "base-001", 1),
		inst(t, "base-001", 1), inst(t, "base-001", 1))

	if !g.PlayCard(1, 0) {
		t.Fatal("first supporter of the turn should resolve")
	}
	if len(p.Hand) != 3 { // -1 supporter, +2 drawn
		t.Errorf("hand after supporter = %d cards, want 3", len(p.Hand))
	}
	if !p.SupporterPlayed {
		t.Error("supporter flag should be set")
	}

	if g.PlayCard(1, 0) {
		t.Error("second supporter in the same turn must be rejected")
	}

	// The flag resets at the player's next turn start.
	g.EndTurn() // to player 2
	g.EndTurn() // back to player 1
	if p.SupporterPlayed {
		t.Error("supporter flag must reset at turn start")
	}
	if !g.PlayCard(1, 0) {
		t.Error("supporter should be playable again on a new turn")
	}
}

func TestSupporterRejectedDuringSetup(t *testing.T) {
	g := setupGame()
	hand(g, 1, inst(t, "supporter-001", 1))
	if g.PlayCard(1, 0) {
		t.Error("supporters are never legal during setup")
	}
}

func TestPlaceBasicActiveThenBench(t *testing.T) {
	g := playingGame()
	p := g.State.Player(1)
	hand(g, 1,
		inst(t, "base-001", 1), inst(t, "base-005", 1),
		inst(t, "base-005", 1), inst(t, "base-005", 1),
		inst(t, "base-004", 1))

	for i := 0; i < 4; i++ {
		if !g.PlayCard(1, 0) {
			t.Fatalf("placement %d should succeed", i)
		}
	}
	if p.Active == nil || p.Active.Template.ID != "base-001" {
		t.Errorf("first placement should become active, got %v", p.Active)
	}
	if p.BenchCount() != BenchSize {
		t.Errorf("bench count = %d, want %d", p.BenchCount(), BenchSize)
	}
	if p.Active.TurnPlaced != g.State.Turn {
		t.Errorf("TurnPlaced = %d, want %d", p.Active.TurnPlaced, g.State.Turn)
	}

	// Board is full: the fifth basic stays in hand.
	if g.PlayCard(1, 0) {
		t.Error("placement with a full bench must fail")
	}
	if len(p.Hand) != 1 {
		t.Errorf("failed placement must leave the card in hand, hand = %d", len(p.Hand))
	}
}

func TestEvolveTurnOfEntryRule(t *testing.T) {
	// base-001 placed turn 1; evolving on turn 1 must fail, turn 2 succeeds.
	g := playingGame()
	g.State.Turn = 1
	p := g.State.Player(1)
	p.Active = instPlaced(t, "base-001", 1, 1)
	hand(g, 1, inst(t, "base-002", 1))

	if g.Evolve(1, 0, BoardActive) {
		t.Error("evolution before turn 2 must fail")
	}
	if p.Active.Template.ID != "base-001" {
		t.Error("failed evolution must leave the active card unchanged")
	}

	g.State.Turn = 2
	if !g.Evolve(1, 0, BoardActive) {
		t.Fatal("evolution on turn 2 should succeed")
	}
	if p.Active.Template.ID != "base-002" {
		t.Errorf("active after evolution = %s, want base-002", p.Active.Template.ID)
	}
	if p.Active.TurnPlaced != 2 {
		t.Errorf("evolved card TurnPlaced = %d, want 2", p.Active.TurnPlaced)
	}
}

func TestEvolveRejectsSameTurnPlacement(t *testing.T) {
	g := playingGame() // turn 2
	p := g.State.Player(1)
	p.Active = instPlaced(t, "base-001", 1, 2) // placed this turn
	hand(g, 1, inst(t, "base-002", 1))

	if g.Evolve(1, 0, BoardActive) {
		t.Error("a target placed this turn must not evolve")
	}
	if len(p.Hand) != 1 {
		t.Error("failed evolution must not consume the hand card")
	}
}

func TestEvolveCarriesDamageForward(t *testing.T) {
	g := playingGame()
	p := g.State.Player(1)
	active := instPlaced(t, "base-001", 1, 1) // maxHp 60
	active.HP = 20                            // 40 damage taken
	p.Active = active
	hand(g, 1, inst(t, "base-002", 1)) // maxHp 90

	if !g.Evolve(1, 0, BoardActive) {
		t.Fatal("evolution should succeed")
	}
	if p.Active.HP != 50 {
		t.Errorf("post-evolution HP = %d, want 50 (90 max − 40 carried damage)", p.Active.HP)
	}
	if p.Active.MaxHP != 90 {
		t.Errorf("post-evolution MaxHP = %d, want 90", p.Active.MaxHP)
	}
}

func TestEvolveWrongParentRejected(t *testing.T) {
	g := playingGame()
	p := g.State.Player(1)
	p.Active = instPlaced(t, "base-005", 1, 1)
	hand(g, 1, inst(t, "base-002", 1)) // evolves from base-001, not base-005

	if g.Evolve(1, 0, BoardActive) {
		t.Error("evolution with a mismatched parent must fail")
	}
}

func TestEvolveBenchTarget(t *testing.T) {
	g := playingGame()
	p := g.State.Player(1)
	p.Active = instPlaced(t, "base-005", 1, 1)
	p.Bench[1] = instPlaced(t, "base-001", 1, 1)
	hand(g, 1, inst(t, "base-002", 1))

	if !g.Evolve(1, 0, 1) {
		t.Fatal("evolving a bench target should succeed")
	}
	if p.Bench[1].Template.ID != "base-002" {
		t.Errorf("bench slot after evolution = %s", p.Bench[1].Template.ID)
	}
}

func TestChickenNuggetCombo(t *testing.T) {
	g := playingGame()
	p := g.State.Player(1)
	active := instPlaced(t, "base-001", 1, 1)
	active.HP = 40 // 20 damage taken
	p.Active = active
	hand(g, 1, inst(t, TemplateChickenNugget, 1), inst(t, "base-003", 1))

	if !g.PlayChickenNugget(1, 0, 1, BoardActive) {
		t.Fatal("nugget combo should succeed")
	}
	if p.Active.Template.ID != "base-003" {
		t.Errorf("active after combo = %s, want base-003", p.Active.Template.ID)
	}
	if p.Active.HP != 130 { // 150 max − 20 carried damage
		t.Errorf("post-combo HP = %d, want 130", p.Active.HP)
	}
	if len(p.Hand) != 0 {
		t.Errorf("both combo cards must leave the hand, %d remain", len(p.Hand))
	}
}

func TestChickenNuggetRejections(t *testing.T) {
	g := playingGame()
	p := g.State.Player(1)

	// Target must be a basic creature.
	p.Active = instPlaced(t, "base-002", 1, 1)
	hand(g, 1, inst(t, TemplateChickenNugget, 1), inst(t, "base-003", 1))
	if g.PlayChickenNugget(1, 0, 1, BoardActive) {
		t.Error("combo onto a non-basic target must fail")
	}

	// Target placed this turn.
	p.Active = instPlaced(t, "base-001", 1, g.State.Turn)
	if g.PlayChickenNugget(1, 0, 1, BoardActive) {
		t.Error("combo onto a target placed this turn must fail")
	}

	// The generic dispatcher never resolves a nugget.
	p.Active = instPlaced(t, "base-001", 1, 1)
	if g.PlayCard(1, 0) {
		t.Error("PlayCard must report no effect for Chicken Nugget")
	}
	if len(p.Hand) != 2 {
		t.Errorf("rejected combos must leave the hand untouched, %d cards", len(p.Hand))
	}
}

func TestAttackKnockoutScoring(t *testing.T) {
	g := playingGame()
	attacker := g.State.Player(1)
	defender := g.State.Player(2)
	attacker.Active = instPlaced(t, "base-001", 1, 1) // dmg 20
	wounded := instPlaced(t, "base-005", 2, 1)
	wounded.HP = 20
	defender.Active = wounded
	defender.Bench[0] = instPlaced(t, "base-005", 2, 1)

	if !g.Attack() {
		t.Fatal("attack should resolve")
	}
	if defender.Active != nil {
		t.Error("knocked-out creature must leave the active slot")
	}
	if attacker.Points != 1 {
		t.Errorf("points = %d, want 1", attacker.Points)
	}
	if g.State.Over {
		t.Error("game must continue while the defender can promote")
	}
	if g.State.Current != 2 {
		t.Error("attack must pass the turn to the defender")
	}
}

func TestAttackKnockoutEXScoresDouble(t *testing.T) {
	g := playingGame()
	attacker := g.State.Player(1)
	defender := g.State.Player(2)
	attacker.Active = instPlaced(t, "base-002", 1, 1) // dmg 40
	ex := instPlaced(t, "base-004", 2, 1)             // ex creature
	ex.HP = 30
	defender.Active = ex
	defender.Bench[0] = instPlaced(t, "base-005", 2, 1)

	g.Attack()
	if attacker.Points != 2 {
		t.Errorf("ex knockout points = %d, want 2", attacker.Points)
	}
}

func TestAttackWinByPoints(t *testing.T) {
	g := playingGame()
	attacker := g.State.Player(1)
	defender := g.State.Player(2)
	attacker.Active = instPlaced(t, "base-002", 1, 1)
	attacker.Points = 2
	target := instPlaced(t, "base-005", 2, 1)
	target.HP = 10
	defender.Active = target
	defender.Bench[0] = instPlaced(t, "base-005", 2, 1) // bench available, points win anyway

	g.Attack()
	if !g.State.Over || g.State.Winner != 1 {
		t.Fatalf("expected player 1 to win on points, over=%v winner=%d", g.State.Over, g.State.Winner)
	}
	ends := g.Relay().EventsOfType(event.GameEnded)
	if len(ends) != 1 || ends[0].Winner != 1 {
		t.Errorf("expected one gameEnded event for player 1, got %v", ends)
	}
}

func TestAttackWinByBenchOut(t *testing.T) {
	g := playingGame()
	attacker := g.State.Player(1)
	defender := g.State.Player(2)
	attacker.Active = instPlaced(t, "base-001", 1, 1)
	target := instPlaced(t, "base-005", 2, 1)
	target.HP = 20
	defender.Active = target // empty bench

	g.Attack()
	if !g.State.Over || g.State.Winner != 1 {
		t.Fatalf("defender with no creatures left should lose, over=%v winner=%d", g.State.Over, g.State.Winner)
	}
	if attacker.Points != 1 {
		t.Errorf("points = %d, want 1", attacker.Points)
	}
}

func TestAttackWithoutKnockoutPassesTurn(t *testing.T) {
	g := playingGame()
	g.State.Player(1).Active = instPlaced(t, "base-001", 1, 1) // dmg 20
	g.State.Player(2).Active = instPlaced(t, "base-004", 2, 1) // hp 100

	turn := g.State.Turn
	g.Attack()
	if g.State.Player(2).Active.HP != 80 {
		t.Errorf("defender HP = %d, want 80", g.State.Player(2).Active.HP)
	}
	if g.State.Current != 2 || g.State.Turn != turn+1 {
		t.Errorf("attack must start the opponent's turn, got turn %d player %d", g.State.Turn, g.State.Current)
	}
}

func TestAttackRequiresBothActives(t *testing.T) {
	g := playingGame()
	g.State.Player(1).Active = instPlaced(t, "base-001", 1, 1)
	if g.Attack() {
		t.Error("attack without a defender must be rejected")
	}
}

func TestPromote(t *testing.T) {
	g := playingGame()
	p := g.State.Player(2)
	benched := instPlaced(t, "base-005", 2, 1)
	p.Bench[1] = benched

	if !g.Promote(2, 1) {
		t.Fatal("promote into an empty active slot should succeed")
	}
	if p.Active != benched || p.Bench[1] != nil {
		t.Error("promote must move the creature and empty the bench slot")
	}

	// Occupied active slot: rejected.
	p.Bench[0] = instPlaced(t, "base-001", 2, 1)
	if g.Promote(2, 0) {
		t.Error("promote with an occupied active slot must fail")
	}
}

func TestRetreatSwapsWithoutEndingTurn(t *testing.T) {
	g := playingGame()
	p := g.State.Player(1)
	active := instPlaced(t, "base-001", 1, 1)
	benched := instPlaced(t, "base-005", 1, 1)
	p.Active = active
	p.Bench[2] = benched

	turn := g.State.Turn
	if !g.Retreat(1, 2) {
		t.Fatal("retreat should succeed")
	}
	if p.Active != benched || p.Bench[2] != active {
		t.Error("retreat must swap active and bench")
	}
	if g.State.Current != 1 || g.State.Turn != turn {
		t.Error("retreat must not end the turn")
	}

	// Only the current player may retreat.
	g.State.Player(2).Active = instPlaced(t, "base-005", 2, 1)
	g.State.Player(2).Bench[0] = instPlaced(t, "base-001", 2, 1)
	if g.Retreat(2, 0) {
		t.Error("retreat out of turn must be rejected")
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	g := playingGame()
	p1 := g.State.Player(1)
	p2 := g.State.Player(2)
	p1.Active = instPlaced(t, "base-001", 1, 1)
	p2.Active = instPlaced(t, "base-005", 2, 1)
	p2.Bench[0] = instPlaced(t, "base-005", 2, 1)
	hand(g, 1, inst(t, "base-004", 1))

	g.State.Over = true
	g.State.Winner = 2

	turn := g.State.Turn
	if g.PlayCard(1, 0) || g.Attack() || g.Retreat(1, 0) || g.Promote(1, 0) {
		t.Error("no operation may mutate a finished match")
	}
	g.EndTurn()
	if g.State.Turn != turn || g.State.Winner != 2 {
		t.Error("finished match state must be immutable")
	}
}

func TestTrainerWhistleFetchesBasic(t *testing.T) {
	// Deck of exactly 2 basic and 2 non-basic cards.
	g := playingGame()
	p := g.State.Player(1)
	hand(g, 1, inst(t, TemplateTrainerWhistle, 1))
	deckOf(g, 1,
		inst(t, "base-001", 1), inst(t, "supporter-001", 1),
		inst(t, "base-005", 1), inst(t, TemplateChickenNugget, 1))

	if !g.PlayCard(1, 0) {
		t.Fatal("whistle with basics in deck should resolve")
	}
	if len(p.Hand) != 1 || p.Hand[0].Template.Kind != KindBasic {
		t.Fatalf("hand should hold exactly the fetched basic, got %v", p.Hand)
	}
	if len(p.Deck) != 3 {
		t.Errorf("deck size = %d, want 3", len(p.Deck))
	}
}

func TestTrainerWhistleNoBasicsNoEffect(t *testing.T) {
	g := playingGame()
	p := g.State.Player(1)
	hand(g, 1, inst(t, TemplateTrainerWhistle, 1))
	deckOf(g, 1, inst(t, "supporter-001", 1), inst(t, "base-002", 1))

	if g.PlayCard(1, 0) {
		t.Error("whistle with no basic in deck must have no effect")
	}
	if len(p.Hand) != 1 || len(p.Deck) != 2 {
		t.Error("failed whistle must not touch hand or deck")
	}
	// No notification for a no-effect attempt.
	if len(g.Relay().EventsOfType(event.GameStateUpdated)) != 0 {
		t.Error("no-effect plays must not publish state updates")
	}
}
