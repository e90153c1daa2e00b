package game

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/uno-online/server/consts"
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/event"
)

// Config carries the two seams the engine exposes: the random source
// behind shuffling and the dealer pick, and the legality policy.
type Config struct {
	// Rand drives every shuffle and the dealer pick. Nil means a
	// time-seeded source.
	Rand *rand.Rand
	// StrictPlay makes PlayerPlaysACard reject cards that are not
	// valid against the current card. The default trusts the caller
	// to only submit legal plays.
	StrictPlay bool
}

// Game is the turn state machine. It owns the deck, the player list,
// the turn/direction/pending-effect state and the event log, and runs
// Created -> Started -> Ended with no way back from Ended.
type Game struct {
	id      uuid.UUID
	rng     *rand.Rand
	strict  bool
	players []*Player
	deck    *Deck
	emitter *event.Emitter

	started       bool
	winner        *Player
	turn          int
	turnPosition  int
	turnDirection int
	activeColor   color.Color
	pendingSkip   bool
	pendingDraws  int
}

func New() *Game {
	return NewWithConfig(Config{})
}

func NewWithConfig(cfg Config) *Game {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{
		id:            uuid.New(),
		rng:           rng,
		strict:        cfg.StrictPlay,
		deck:          NewDeck(rng),
		emitter:       event.NewEmitter(),
		turn:          1,
		turnDirection: 1,
	}
}

// LoadFromEvents is the replay entry point. Reconstruction is not
// implemented yet; the returned game carries only the identity.
// TODO: rebuild piles, hands and turn state by replaying the log.
func LoadFromEvents(id uuid.UUID, events []event.Event) *Game {
	g := New()
	g.id = id
	return g
}

func (g *Game) ID() uuid.UUID {
	return g.id
}

// On subscribes a handler to one event kind.
func (g *Game) On(kind event.Kind, handler event.Handler) *Game {
	g.emitter.On(kind, handler)
	return g
}

func (g *Game) PlayerCount() int {
	return len(g.players)
}

// Players returns the seating order.
func (g *Game) Players() []*Player {
	players := make([]*Player, len(g.players))
	copy(players, g.players)
	return players
}

func (g *Game) HasStarted() bool {
	return g.started
}

func (g *Game) HasEnded() bool {
	return g.winner != nil
}

func (g *Game) Winner() *Player {
	return g.winner
}

func (g *Game) Turn() int {
	return g.turn
}

func (g *Game) CurrentPlayer() *Player {
	return g.players[g.turnPosition]
}

func (g *Game) NextPlayer() *Player {
	return g.players[g.wrap(g.turnPosition+g.turnDirection)]
}

// CurrentCard is the face-up discard the next play is judged against.
func (g *Game) CurrentCard() *card.Card {
	return g.deck.TopDiscard()
}

// ActiveColor is the color in effect for legality: the last non-wild
// card's color, or the color chosen for the last wild. It stays None
// while an unresolved wild start card is face up.
func (g *Game) ActiveColor() color.Color {
	return g.activeColor
}

func (g *Game) CardsInDeck() int {
	return g.deck.CardsInDeck()
}

func (g *Game) CardsInDiscard() int {
	return g.deck.CardsInDiscard()
}

// Events returns a copy of the full event log.
func (g *Game) Events() []event.Event {
	return g.emitter.Log()
}

func (g *Game) EventCount() int {
	return g.emitter.Len()
}

// EventStack renders the kind of every logged event, one per line.
func (g *Game) EventStack() string {
	kinds := g.emitter.Stack()
	lines := make([]string, len(kinds))
	for i, kind := range kinds {
		lines[i] = string(kind)
	}
	return strings.Join(lines, "\n")
}

// MarshalEvents encodes the event log as JSON.
func (g *Game) MarshalEvents() ([]byte, error) {
	return g.emitter.MarshalLog()
}

// AddPlayer seats a player. It reports false once the game has started
// or the table is full.
func (g *Game) AddPlayer(p *Player) bool {
	if g.started || len(g.players) >= consts.MaxPlayers {
		return false
	}
	g.players = append(g.players, p)
	g.emit(event.PlayerJoinedGame, event.PlayerJoinedGamePayload{Player: ref(p)})
	return true
}

// Start deals the game: random dealer, shuffle, seven cards each, then
// the start card is flipped and resolved as if it had been played.
// It reports false, without side effects, unless 2 to 10 players are
// seated and the game is still unstarted.
func (g *Game) Start() bool {
	if g.started || len(g.players) < consts.MinPlayers || len(g.players) > consts.MaxPlayers {
		return false
	}
	g.turnPosition = g.rng.Intn(len(g.players))
	g.shuffleDeck()
	if err := g.dealStartingHands(); err != nil {
		return false
	}
	if err := g.flipTopCardForStart(); err != nil {
		return false
	}
	g.started = true
	g.emit(event.GameStarted, event.GameStartedPayload{
		Players:     g.playerRefs(),
		DrawPile:    g.deck.SnapshotDrawPile(),
		DiscardPile: g.deck.SnapshotDiscardPile(),
	})
	return true
}

// PlayerDrawsACard moves the top card of the draw pile into the
// player's hand. With endsTurn the turn advances afterwards, so a
// player who cannot play can draw and pass in one call.
func (g *Game) PlayerDrawsACard(p *Player, endsTurn bool) (*card.Card, error) {
	if g.HasEnded() {
		return nil, ErrGameEnded
	}
	if !g.started {
		return nil, ErrNotStarted
	}
	c, err := g.deck.DrawCard()
	if err != nil {
		return nil, err
	}
	p.AddCardToHand(c)
	g.emit(event.PlayerDrewCard, event.PlayerDrewCardPayload{Player: ref(p), Card: c})
	if endsTurn {
		if err := g.advanceTurn(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// PlayerPlaysACard is the central transition: the card leaves the
// player's hand, its effect is applied, it becomes the current card,
// and the turn advances unless the play emptied the hand and won the
// game. Wilds must arrive with the chosen color; legality against the
// current card is only enforced under StrictPlay.
func (g *Game) PlayerPlaysACard(p *Player, c *card.Card, newColor color.Color) error {
	if g.HasEnded() {
		return ErrGameEnded
	}
	if !g.started {
		return ErrNotStarted
	}
	if c.IsWild() && newColor == color.None {
		return fmt.Errorf("%w: %s", ErrColorRequired, c)
	}
	if g.strict {
		if current := g.CurrentCard(); current != nil && !c.IsValidAgainst(current) {
			return fmt.Errorf("%w: %s on %s", ErrIllegalPlay, c, current)
		}
	}
	if !p.Holds(c) {
		return fmt.Errorf("%w: %s does not hold %s", ErrCardNotInHand, p.Name(), c)
	}
	if c.IsWild() {
		if err := c.SetColor(newColor); err != nil {
			return err
		}
	}
	if err := p.PlayCardFromHand(c); err != nil {
		return err
	}

	g.emit(event.PlayerPlayedCard, event.PlayerPlayedCardPayload{Player: ref(p), Card: c})

	switch c.Type() {
	case card.Reverse:
		if len(g.players) == 2 {
			g.pendingSkip = true
		} else {
			g.reverseDirection()
		}
	case card.Skip:
		g.pendingSkip = true
	case card.Draw:
		g.pendingDraws = 2
		g.pendingSkip = true
	case card.Wild, card.WildDraw:
		g.emit(event.ColorWasSet, event.ColorWasSetPayload{Player: ref(p), Color: newColor})
		if c.Type() == card.WildDraw {
			g.pendingDraws = 4
			g.pendingSkip = true
		}
	}

	g.activeColor = c.Color()
	g.deck.DiscardCard(c)

	if p.CardsInHand() == 0 {
		g.winner = p
		g.emit(event.GameEnded, event.GameEndedPayload{Winner: ref(p)})
		return nil
	}
	return g.advanceTurn()
}

// advanceTurn moves play to the next seat, applying queued forced
// draws to the arriving player and then skipping them if a skip is
// pending. Skips resolve in a loop rather than recursively.
func (g *Game) advanceTurn() error {
	for {
		g.turn++
		g.turnPosition = g.wrap(g.turnPosition + g.turnDirection)

		if g.pendingDraws > 0 {
			quantity := g.pendingDraws
			g.pendingDraws = 0
			for i := 0; i < quantity; i++ {
				if _, err := g.PlayerDrawsACard(g.CurrentPlayer(), false); err != nil {
					return err
				}
			}
		}

		g.emit(event.TurnAdvanced, event.TurnAdvancedPayload{Player: ref(g.CurrentPlayer())})

		if !g.pendingSkip {
			return nil
		}
		g.pendingSkip = false
		g.emit(event.PlayerSkipped, event.PlayerSkippedPayload{
			Player:     ref(g.CurrentPlayer()),
			NextPlayer: ref(g.NextPlayer()),
		})
	}
}

// flipTopCardForStart resolves the start card as if it had been played
// against the opening player. A WildDraw may not open, so it is buried
// and the flip retried.
func (g *Game) flipTopCardForStart() error {
	for {
		startCard, err := g.deck.DrawCard()
		if err != nil {
			return err
		}

		switch startCard.Type() {
		case card.WildDraw:
			g.deck.ReturnCard(startCard)
			g.shuffleDeck()
			continue
		case card.Reverse:
			if len(g.players) == 2 {
				g.pendingSkip = true
			} else {
				g.reverseDirection()
			}
		case card.Skip:
			if err := g.advanceTurn(); err != nil {
				return err
			}
			if err := g.advanceTurn(); err != nil {
				return err
			}
		case card.Draw:
			g.pendingDraws = 2
			g.pendingSkip = true
		case card.Wild:
			// Color stays unset until the first play resolves it.
		}

		if startCard.Type() != card.Wild {
			g.activeColor = startCard.Color()
		}
		g.deck.DiscardCard(startCard)
		return nil
	}
}

func (g *Game) dealStartingHands() error {
	for _, p := range g.players {
		for i := 0; i < consts.StartingHandSize; i++ {
			c, err := g.deck.DrawCard()
			if err != nil {
				return err
			}
			p.AddCardToHand(c)
		}
		g.emit(event.PlayerDrewStartHand, event.PlayerDrewStartHandPayload{
			Player: ref(p),
			Hand:   snapshotPile(p.Hand()),
		})
	}
	return nil
}

func (g *Game) shuffleDeck() {
	g.deck.Shuffle()
	g.emit(event.DeckWasShuffled, event.DeckWasShuffledPayload{CardsInDeck: g.deck.CardsInDeck()})
}

func (g *Game) reverseDirection() {
	g.turnDirection *= -1
	g.emit(event.PlayReversed, event.PlayReversedPayload{NextPlayer: ref(g.NextPlayer())})
}

func (g *Game) wrap(position int) int {
	count := len(g.players)
	return ((position % count) + count) % count
}

func (g *Game) emit(kind event.Kind, payload interface{}) {
	g.emitter.Emit(event.Event{Kind: kind, Turn: g.turn, Payload: payload})
}

func (g *Game) playerRefs() []event.PlayerRef {
	refs := make([]event.PlayerRef, len(g.players))
	for i, p := range g.players {
		refs[i] = ref(p)
	}
	return refs
}

func ref(p *Player) event.PlayerRef {
	return event.PlayerRef{ID: p.ID().String(), Name: p.Name()}
}
