package event

import (
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
)

// PlayerRef identifies a player inside a payload without dragging the
// player entity (and its hand) into the log.
type PlayerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GameStartedPayload snapshots the table at the moment of the start:
// the seat order and both piles, frozen so later play cannot rewrite
// the logged state.
type GameStartedPayload struct {
	Players     []PlayerRef  `json:"players"`
	DrawPile    []*card.Card `json:"drawPile"`
	DiscardPile []*card.Card `json:"discardPile"`
}

type GameEndedPayload struct {
	Winner PlayerRef `json:"winner"`
}

type PlayerJoinedGamePayload struct {
	Player PlayerRef `json:"player"`
}

type PlayerDrewCardPayload struct {
	Player PlayerRef  `json:"player"`
	Card   *card.Card `json:"card"`
}

type PlayerDrewStartHandPayload struct {
	Player PlayerRef    `json:"player"`
	Hand   []*card.Card `json:"hand"`
}

type PlayerPlayedCardPayload struct {
	Player PlayerRef  `json:"player"`
	Card   *card.Card `json:"card"`
}

type TurnAdvancedPayload struct {
	Player PlayerRef `json:"player"`
}

type PlayerSkippedPayload struct {
	Player     PlayerRef `json:"player"`
	NextPlayer PlayerRef `json:"nextPlayer"`
}

type PlayReversedPayload struct {
	NextPlayer PlayerRef `json:"nextPlayer"`
}

type ColorWasSetPayload struct {
	Player PlayerRef   `json:"player"`
	Color  color.Color `json:"color"`
}

type DeckWasShuffledPayload struct {
	CardsInDeck int `json:"cardsInDeck"`
}
