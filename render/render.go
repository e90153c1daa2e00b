// Package render turns the event feed of a game into console output.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/uno-online/server/uno/event"
	"github.com/uno-online/server/uno/game"
)

var highlight = color.New(color.FgHiWhite, color.Bold).SprintFunc()

// Attach subscribes console formatting for the game's event feed.
// Lines are written to out in emission order.
func Attach(g *game.Game, out io.Writer) {
	g.On(event.PlayerJoinedGame, func(ev event.Event) {
		payload := ev.Payload.(event.PlayerJoinedGamePayload)
		fmt.Fprintf(out, "%s joined the game.\n", highlight(payload.Player.Name))
	})
	g.On(event.GameStarted, func(ev event.Event) {
		payload := ev.Payload.(event.GameStartedPayload)
		fmt.Fprintf(out, "Game started with %d players, %d cards in deck.\n",
			len(payload.Players), len(payload.DrawPile))
	})
	g.On(event.DeckWasShuffled, func(ev event.Event) {
		payload := ev.Payload.(event.DeckWasShuffledPayload)
		fmt.Fprintf(out, "Shuffling... %d cards in deck.\n", payload.CardsInDeck)
	})
	g.On(event.PlayerDrewStartHand, func(ev event.Event) {
		payload := ev.Payload.(event.PlayerDrewStartHandPayload)
		fmt.Fprintf(out, "%s drew a starting hand of %d cards.\n",
			highlight(payload.Player.Name), len(payload.Hand))
	})
	g.On(event.PlayerDrewCard, func(ev event.Event) {
		payload := ev.Payload.(event.PlayerDrewCardPayload)
		fmt.Fprintf(out, "%s drew a card.\n", highlight(payload.Player.Name))
	})
	g.On(event.PlayerPlayedCard, func(ev event.Event) {
		payload := ev.Payload.(event.PlayerPlayedCardPayload)
		fmt.Fprintf(out, "%s played %s!\n", highlight(payload.Player.Name), payload.Card)
	})
	g.On(event.ColorWasSet, func(ev event.Event) {
		payload := ev.Payload.(event.ColorWasSetPayload)
		fmt.Fprintf(out, "%s picked color %s!\n", highlight(payload.Player.Name), payload.Color)
	})
	g.On(event.PlayerSkipped, func(ev event.Event) {
		payload := ev.Payload.(event.PlayerSkippedPayload)
		fmt.Fprintf(out, "%s was skipped!\n", highlight(payload.Player.Name))
	})
	g.On(event.PlayReversed, func(ev event.Event) {
		payload := ev.Payload.(event.PlayReversedPayload)
		fmt.Fprintf(out, "Play reversed, %s is next!\n", highlight(payload.NextPlayer.Name))
	})
	g.On(event.GameEnded, func(ev event.Event) {
		payload := ev.Payload.(event.GameEndedPayload)
		fmt.Fprintf(out, "%s won the game!\n", highlight(payload.Winner.Name))
	})
}

// Summary prints the post-game report: winner, turn count and the
// replayable event stack.
func Summary(out io.Writer, g *game.Game) {
	fmt.Fprintln(out, "----------------------------")
	if winner := g.Winner(); winner != nil {
		fmt.Fprintf(out, "Winner: %s\n", highlight(winner.Name()))
	} else {
		fmt.Fprintln(out, "Game is still in progress.")
	}
	fmt.Fprintf(out, "Game lasted %d turns, %d events.\n", g.Turn(), g.EventCount())
	fmt.Fprintln(out, g.EventStack())
}
