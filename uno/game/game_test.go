package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/event"
)

// bareGame seats the named players and marks the game started without
// dealing, so tests can lay out hands and the discard pile themselves.
func bareGame(t *testing.T, names ...string) *Game {
	t.Helper()
	g := NewWithConfig(Config{Rand: rand.New(rand.NewSource(1))})
	for _, name := range names {
		require.True(t, g.AddPlayer(NewPlayer(name)))
	}
	g.started = true
	return g
}

func give(p *Player, cards ...*card.Card) {
	for _, c := range cards {
		p.AddCardToHand(c)
	}
}

func kindsSince(g *Game, offset int) []event.Kind {
	log := g.Events()[offset:]
	kinds := make([]event.Kind, len(log))
	for i, ev := range log {
		kinds[i] = ev.Kind
	}
	return kinds
}

func TestNextPlayerWraparound(t *testing.T) {
	g := bareGame(t, "a", "b", "c")

	g.turnPosition = 2
	g.turnDirection = 1
	require.Equal(t, g.players[0], g.NextPlayer())

	g.turnPosition = 0
	g.turnDirection = -1
	require.Equal(t, g.players[2], g.NextPlayer())
}

func TestReverseWithTwoPlayersDegradesToSkip(t *testing.T) {
	g := bareGame(t, "a", "b")
	a, b := g.players[0], g.players[1]
	reverse := card.NewReverse(color.Red)
	give(a, reverse, card.NewNumeric(color.Blue, 7))
	give(b, card.NewNumeric(color.Green, 1))
	g.deck.DiscardCard(card.NewNumeric(color.Red, 3))

	require.NoError(t, g.PlayerPlaysACard(a, reverse, color.None))

	require.Equal(t, 1, g.turnDirection, "direction must not flip in a 2-player game")
	require.Equal(t, a, g.CurrentPlayer(), "the opponent is skipped, same player goes again")
	require.Equal(t, 3, g.Turn())
	require.Contains(t, g.emitter.Stack(), event.PlayerSkipped)
}

func TestReverseWithThreePlayersFlipsDirection(t *testing.T) {
	g := bareGame(t, "a", "b", "c")
	a := g.players[0]
	reverse := card.NewReverse(color.Red)
	give(a, reverse, card.NewNumeric(color.Blue, 7))
	g.deck.DiscardCard(card.NewNumeric(color.Red, 3))

	require.NoError(t, g.PlayerPlaysACard(a, reverse, color.None))

	require.Equal(t, -1, g.turnDirection)
	require.Equal(t, g.players[2], g.CurrentPlayer())
	require.Contains(t, g.emitter.Stack(), event.PlayReversed)
	require.NotContains(t, g.emitter.Stack(), event.PlayerSkipped)
}

func TestSkipCard(t *testing.T) {
	g := bareGame(t, "a", "b", "c")
	a := g.players[0]
	skip := card.NewSkip(color.Red)
	give(a, skip, card.NewNumeric(color.Blue, 7))
	g.deck.DiscardCard(card.NewNumeric(color.Red, 3))

	require.NoError(t, g.PlayerPlaysACard(a, skip, color.None))

	require.Equal(t, g.players[2], g.CurrentPlayer())
}

func TestDrawTwoCascadesIntoSkip(t *testing.T) {
	g := bareGame(t, "a", "b", "c")
	a, b := g.players[0], g.players[1]
	drawTwo := card.NewDraw(color.Red)
	give(a, drawTwo, card.NewNumeric(color.Blue, 7))
	give(b, card.NewNumeric(color.Green, 1))
	g.deck.DiscardCard(card.NewNumeric(color.Red, 3))
	mark := g.EventCount()

	require.NoError(t, g.PlayerPlaysACard(a, drawTwo, color.None))

	require.Equal(t, 3, b.CardsInHand(), "skipped player draws exactly two")
	require.Equal(t, g.players[2], g.CurrentPlayer())
	require.Equal(t, []event.Kind{
		event.PlayerPlayedCard,
		event.PlayerDrewCard,
		event.PlayerDrewCard,
		event.TurnAdvanced,
		event.PlayerSkipped,
		event.TurnAdvanced,
	}, kindsSince(g, mark), "draws land on the skipped player before the turn passes them")
}

func TestWildNeedsAColor(t *testing.T) {
	g := bareGame(t, "a", "b")
	a := g.players[0]
	wild := card.NewWild()
	give(a, wild, card.NewNumeric(color.Blue, 7))
	g.deck.DiscardCard(card.NewNumeric(color.Red, 3))

	err := g.PlayerPlaysACard(a, wild, color.None)

	require.ErrorIs(t, err, ErrColorRequired)
	require.Equal(t, 2, a.CardsInHand(), "rejected play must not touch the hand")
	require.Equal(t, a, g.CurrentPlayer())
}

func TestWildDrawQueuesFourAndSetsColor(t *testing.T) {
	g := bareGame(t, "a", "b", "c")
	a, b := g.players[0], g.players[1]
	wildDraw := card.NewWildDraw()
	give(a, wildDraw, card.NewNumeric(color.Blue, 7))
	give(b, card.NewNumeric(color.Green, 1))
	g.deck.DiscardCard(card.NewNumeric(color.Red, 3))

	require.NoError(t, g.PlayerPlaysACard(a, wildDraw, color.Blue))

	require.Equal(t, color.Blue, wildDraw.Color())
	require.Equal(t, color.Blue, g.ActiveColor())
	require.Equal(t, wildDraw, g.CurrentCard())
	require.Equal(t, 5, b.CardsInHand())
	require.Equal(t, g.players[2], g.CurrentPlayer())
	require.Contains(t, g.emitter.Stack(), event.ColorWasSet)
	require.Contains(t, g.emitter.Stack(), event.PlayerSkipped, "the player who drew four is skipped")
}

func TestWinDetection(t *testing.T) {
	g := bareGame(t, "a", "b")
	a := g.players[0]
	last := card.NewNumeric(color.Red, 5)
	give(a, last)
	g.deck.DiscardCard(card.NewNumeric(color.Red, 3)) // legal play, hand empties
	turnBefore := g.Turn()

	require.NoError(t, g.PlayerPlaysACard(a, last, color.None))

	require.True(t, g.HasEnded())
	require.Equal(t, a, g.Winner())
	require.Equal(t, turnBefore, g.Turn(), "no turn advancement after the winning play")
	stack := g.emitter.Stack()
	require.Equal(t, event.GameEnded, stack[len(stack)-1])

	require.ErrorIs(t, g.PlayerPlaysACard(a, card.NewWild(), color.Red), ErrGameEnded)
	_, err := g.PlayerDrawsACard(a, false)
	require.ErrorIs(t, err, ErrGameEnded)
}

func TestPlayingACardNotHeld(t *testing.T) {
	g := bareGame(t, "a", "b")
	a := g.players[0]
	give(a, card.NewNumeric(color.Red, 5))
	g.deck.DiscardCard(card.NewNumeric(color.Red, 3))

	err := g.PlayerPlaysACard(a, card.NewNumeric(color.Red, 5), color.None)
	require.ErrorIs(t, err, ErrCardNotInHand)

	stray := card.NewWild()
	err = g.PlayerPlaysACard(a, stray, color.Red)
	require.ErrorIs(t, err, ErrCardNotInHand)
	require.Equal(t, color.None, stray.Color(), "rejected wild must stay colorless")
}

func TestStrictPlay(t *testing.T) {
	t.Run("rejects_an_illegal_play", func(t *testing.T) {
		g := NewWithConfig(Config{Rand: rand.New(rand.NewSource(1)), StrictPlay: true})
		require.True(t, g.AddPlayer(NewPlayer("a")))
		require.True(t, g.AddPlayer(NewPlayer("b")))
		g.started = true
		a := g.players[0]
		blue5 := card.NewNumeric(color.Blue, 5)
		give(a, blue5)
		g.deck.DiscardCard(card.NewNumeric(color.Red, 9))

		err := g.PlayerPlaysACard(a, blue5, color.None)

		require.ErrorIs(t, err, ErrIllegalPlay)
		require.Equal(t, 1, a.CardsInHand())
	})

	t.Run("permissive_engine_trusts_the_caller", func(t *testing.T) {
		g := bareGame(t, "a", "b")
		a := g.players[0]
		blue5 := card.NewNumeric(color.Blue, 5)
		give(a, blue5, card.NewNumeric(color.Green, 1))
		g.deck.DiscardCard(card.NewNumeric(color.Red, 9))

		require.NoError(t, g.PlayerPlaysACard(a, blue5, color.None))
		require.Equal(t, blue5, g.CurrentCard())
	})
}

func TestLifecycleGuards(t *testing.T) {
	g := NewWithConfig(Config{Rand: rand.New(rand.NewSource(1))})
	require.True(t, g.AddPlayer(NewPlayer("a")))
	require.True(t, g.AddPlayer(NewPlayer("b")))
	a := g.players[0]

	require.ErrorIs(t, g.PlayerPlaysACard(a, card.NewWild(), color.Red), ErrNotStarted)
	_, err := g.PlayerDrawsACard(a, false)
	require.ErrorIs(t, err, ErrNotStarted)
}

func TestAddPlayer(t *testing.T) {
	t.Run("caps_the_table_at_ten", func(t *testing.T) {
		g := NewWithConfig(Config{Rand: rand.New(rand.NewSource(1))})
		for i := 0; i < 10; i++ {
			require.True(t, g.AddPlayer(NewPlayer("player")))
		}
		require.False(t, g.AddPlayer(NewPlayer("eleventh")))
		require.Equal(t, 10, g.PlayerCount())
	})

	t.Run("refuses_joins_after_start", func(t *testing.T) {
		g := NewWithConfig(Config{Rand: rand.New(rand.NewSource(1))})
		require.True(t, g.AddPlayer(NewPlayer("a")))
		require.True(t, g.AddPlayer(NewPlayer("b")))
		require.True(t, g.Start())
		require.False(t, g.AddPlayer(NewPlayer("latecomer")))
	})

	t.Run("emits_a_join_event", func(t *testing.T) {
		g := NewWithConfig(Config{Rand: rand.New(rand.NewSource(1))})
		require.True(t, g.AddPlayer(NewPlayer("a")))
		require.Equal(t, []event.Kind{event.PlayerJoinedGame}, g.emitter.Stack())
	})
}

func TestStartPreconditions(t *testing.T) {
	g := NewWithConfig(Config{Rand: rand.New(rand.NewSource(1))})
	require.False(t, g.Start(), "no players")

	require.True(t, g.AddPlayer(NewPlayer("a")))
	events := g.EventCount()
	require.False(t, g.Start(), "a single player is not enough")
	require.False(t, g.HasStarted())
	require.Equal(t, events, g.EventCount(), "failed start must have no side effects")

	require.True(t, g.AddPlayer(NewPlayer("b")))
	require.True(t, g.Start())
	require.False(t, g.Start(), "a game starts once")
}

func TestStartDealsAndFlips(t *testing.T) {
	g := NewWithConfig(Config{Rand: rand.New(rand.NewSource(21))})
	for _, name := range []string{"a", "b", "c", "d"} {
		require.True(t, g.AddPlayer(NewPlayer(name)))
	}

	require.True(t, g.Start())

	inHands := 0
	for _, p := range g.players {
		require.Equal(t, 7, p.CardsInHand())
		inHands += p.CardsInHand()
	}
	require.Equal(t, 1, g.CardsInDiscard())
	require.Equal(t, 108, g.CardsInDeck()+g.CardsInDiscard()+inHands)

	start := g.CurrentCard()
	require.NotNil(t, start)
	require.NotEqual(t, card.WildDraw, start.Type())
	if start.Type() == card.Wild {
		require.Equal(t, color.None, g.ActiveColor())
	} else {
		require.Equal(t, start.Color(), g.ActiveColor())
	}
	require.Contains(t, g.emitter.Stack(), event.GameStarted)
	require.Contains(t, g.emitter.Stack(), event.DeckWasShuffled)
}

func TestGameStartedSnapshotsThePiles(t *testing.T) {
	g := NewWithConfig(Config{Rand: rand.New(rand.NewSource(7))})
	for _, name := range []string{"a", "b", "c"} {
		require.True(t, g.AddPlayer(NewPlayer(name)))
	}
	require.True(t, g.Start())

	var started event.GameStartedPayload
	for _, ev := range g.Events() {
		if ev.Kind == event.GameStarted {
			started = ev.Payload.(event.GameStartedPayload)
		}
	}
	require.Len(t, started.Players, 3)
	require.Len(t, started.DrawPile, g.CardsInDeck())
	require.Len(t, started.DiscardPile, 1)
	require.Equal(t, g.CurrentCard().ID(), started.DiscardPile[0].ID())

	var liveWild *card.Card
	for _, c := range g.deck.draw {
		if c.IsWild() {
			liveWild = c
			break
		}
	}
	if liveWild == nil {
		t.Skip("no wild left in the draw pile for this seed")
	}
	require.NoError(t, liveWild.SetColor(color.Green))
	for _, frozen := range started.DrawPile {
		if frozen.ID() == liveWild.ID() {
			require.Equal(t, color.None, frozen.Color(), "the logged pile must not track live cards")
		}
	}
}

func TestFlipBuriesAWildDrawStartCard(t *testing.T) {
	g := NewWithConfig(Config{Rand: rand.New(rand.NewSource(1))})
	for _, name := range []string{"a", "b", "c"} {
		require.True(t, g.AddPlayer(NewPlayer(name)))
	}
	// Unshuffled setup leaves the four WildDraw cards on top.
	g.deck = &Deck{rng: g.rng}
	g.deck.Setup()

	require.NoError(t, g.flipTopCardForStart())

	require.Equal(t, 1, g.CardsInDiscard())
	require.Equal(t, 107, g.CardsInDeck())
	require.NotEqual(t, card.WildDraw, g.CurrentCard().Type())
}
