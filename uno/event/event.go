// Package event carries the domain events a game emits: every emission
// is appended to the game's ordered log and delivered to the handlers
// subscribed to its kind. The log survives independently of delivery,
// so history can be inspected without live observers.
package event

// Kind names a domain event.
type Kind string

const (
	GameStarted         Kind = "game-started"
	GameEnded           Kind = "game-ended"
	PlayerJoinedGame    Kind = "player-joined-game"
	PlayerDrewCard      Kind = "player-drew-card"
	PlayerDrewStartHand Kind = "player-drew-start-hand"
	PlayerPlayedCard    Kind = "player-played-card"
	TurnAdvanced        Kind = "turn-advanced"
	PlayerSkipped       Kind = "player-skipped"
	PlayReversed        Kind = "play-reversed"
	ColorWasSet         Kind = "color-was-set"
	DeckWasShuffled     Kind = "deck-was-shuffled"
)

// Event is one entry of a game's append-only log.
type Event struct {
	Kind    Kind        `json:"kind"`
	Turn    int         `json:"turn"`
	Payload interface{} `json:"payload,omitempty"`
}
