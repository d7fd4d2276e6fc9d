package game

// WinningPoints is the score a player must reach to win.
const WinningPoints = 3

// InitialHandSize is the opening hand drawn during setup.
const InitialHandSize = 5

// Player represents one player's entire state.
type Player struct {
	ID     int             // 1 or 2
	Deck   []*CardInstance // top of deck is last element (pop from end)
	Hand   []*CardInstance
	Active *CardInstance
	Bench  [BenchSize]*CardInstance

	Points int
	Ready  bool // setup-phase flag, unused once the match starts

	// SupporterPlayed gates supporters to one per turn; cleared at turn start.
	SupporterPlayed bool
}

// DrawCard removes the top card from the deck and adds it to the hand.
// Returns the drawn card, or nil if the deck is empty.
func (p *Player) DrawCard() *CardInstance {
	if len(p.Deck) == 0 {
		return nil
	}
	card := p.Deck[len(p.Deck)-1]
	p.Deck = p.Deck[:len(p.Deck)-1]
	p.Hand = append(p.Hand, card)
	return card
}

// RemoveFromHand removes a card from the hand by index and returns it.
// Returns nil if the index is out of range.
func (p *Player) RemoveFromHand(i int) *CardInstance {
	if i < 0 || i >= len(p.Hand) {
		return nil
	}
	card := p.Hand[i]
	p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	return card
}

// FreeBenchSlot returns the index of the first empty bench slot, or -1.
func (p *Player) FreeBenchSlot() int {
	for i, c := range p.Bench {
		if c == nil {
			return i
		}
	}
	return -1
}

// BenchCount returns the number of benched creatures.
func (p *Player) BenchCount() int {
	count := 0
	for _, c := range p.Bench {
		if c != nil {
			count++
		}
	}
	return count
}

// Board returns the creature at a board index (BoardActive or a bench slot),
// or nil if the slot is empty or the index invalid.
func (p *Player) Board(i int) *CardInstance {
	if i == BoardActive {
		return p.Active
	}
	if i < 0 || i >= BenchSize {
		return nil
	}
	return p.Bench[i]
}

// setBoard replaces the creature at a board index. Caller has validated i.
func (p *Player) setBoard(i int, card *CardInstance) {
	if i == BoardActive {
		p.Active = card
	} else {
		p.Bench[i] = card
	}
}

// HasBasicInHand reports whether the hand holds at least one basic creature.
func (p *Player) HasBasicInHand() bool {
	for _, c := range p.Hand {
		if c.Template.Kind == KindBasic {
			return true
		}
	}
	return false
}

// --- GameState ---

// GameState holds the complete authoritative state of one match.
type GameState struct {
	Players [2]*Player
	Phase   Phase
	Current int // whose turn it is (1 or 2)
	Turn    int // incremented at every turn start; first turn = 1

	Over   bool
	Winner int // 1 or 2 once decided, 0 before
}

// NewGameState creates a fresh match state in the setup phase.
func NewGameState() *GameState {
	return &GameState{
		Players: [2]*Player{{ID: 1}, {ID: 2}},
		Phase:   PhaseSetup,
	}
}

// Player returns the state for player 1 or 2, or nil for any other value.
func (gs *GameState) Player(id int) *Player {
	if id != 1 && id != 2 {
		return nil
	}
	return gs.Players[id-1]
}

// Opponent returns the identifier of the other player.
func (gs *GameState) Opponent(id int) int {
	return 3 - id
}
