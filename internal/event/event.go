package event

// Type enumerates the named events the engine publishes.
type Type int

const (
	GameInitialized Type = iota
	GameStateUpdated
	TurnStarted
	GameEnded
)

func (t Type) String() string {
	switch t {
	case GameInitialized:
		return "gameInitialized"
	case GameStateUpdated:
		return "gameStateUpdated"
	case TurnStarted:
		return "turnStarted"
	case GameEnded:
		return "gameEnded"
	default:
		return "unknown"
	}
}

// Event is a single observable notification from the engine.
//
// GameStateUpdated events carry an Action verb and, where one card is the
// subject of the mutation, its name — enough for consumers (renderer, batch
// stats) to follow along without reading private engine state.
type Event struct {
	Seq     int    // monotonic sequence number, assigned by the relay
	Turn    int    // turn counter at publish time
	Player  int    // acting player (1 or 2), 0 if not player-scoped
	Type    Type   // event name
	Action  string // mutation verb for GameStateUpdated ("draw", "playBasic", ...)
	Card    string // display name of the card involved, if any
	Winner  int    // set on GameEnded
	Details string // human-readable description
}
