package game

import "errors"

// Caller-misuse errors. Precondition failures on AddPlayer and Start
// report through their boolean results instead.
var (
	ErrCardNotInHand = errors.New("uno: card not in player's hand")
	ErrColorRequired = errors.New("uno: wild card needs a color")
	ErrIllegalPlay   = errors.New("uno: card is not valid against the current card")
	ErrGameEnded     = errors.New("uno: game has ended")
	ErrNotStarted    = errors.New("uno: game has not started")
)
