package game

import (
	"errors"
	"math/rand"

	"github.com/uno-online/server/consts"
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
)

// ErrNoCards reports a draw attempted with both piles empty. With 108
// cards conserved across piles and hands this is unreachable; seeing it
// means the conservation invariant was broken elsewhere.
var ErrNoCards = errors.New("uno: no cards left in draw or discard pile")

// Deck owns the draw and discard piles. Together with the players'
// hands they hold the full 108-card set for the lifetime of a game.
type Deck struct {
	rng     *rand.Rand
	draw    []*card.Card
	discard []*card.Card
}

// NewDeck builds a shuffled full deck. Every shuffle consumes from rng,
// so a fixed seed reproduces the whole game.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.Setup()
	d.Shuffle()
	return d
}

// Setup resets both piles and populates the draw pile with the
// standard 108-card multiset, color-major.
func (d *Deck) Setup() {
	d.draw = make([]*card.Card, 0, consts.DeckSize)
	d.discard = nil

	for _, c := range color.All() {
		d.draw = append(d.draw, card.NewNumeric(c, 0))
		for value := 1; value <= 9; value++ {
			d.draw = append(d.draw, card.NewNumeric(c, value), card.NewNumeric(c, value))
		}
		d.draw = append(d.draw, card.NewSkip(c), card.NewSkip(c))
		d.draw = append(d.draw, card.NewDraw(c), card.NewDraw(c))
		d.draw = append(d.draw, card.NewReverse(c), card.NewReverse(c))
	}
	for i := 0; i < 4; i++ {
		d.draw = append(d.draw, card.NewWild())
	}
	for i := 0; i < 4; i++ {
		d.draw = append(d.draw, card.NewWildDraw())
	}
}

// Shuffle permutes the draw pile in place.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.draw), func(i, j int) {
		d.draw[i], d.draw[j] = d.draw[j], d.draw[i]
	})
}

// DrawCard removes and returns the top card of the draw pile,
// recycling the discard pile first if the draw pile is exhausted.
func (d *Deck) DrawCard() (*card.Card, error) {
	if len(d.draw) == 0 {
		d.ShuffleDiscardIntoDeck()
	}
	if len(d.draw) == 0 {
		return nil, ErrNoCards
	}
	top := d.draw[len(d.draw)-1]
	d.draw = d.draw[:len(d.draw)-1]
	return top, nil
}

// ReturnCard pushes a card back onto the draw pile. Used when the
// flipped start card turns out to be a WildDraw and must be withdrawn.
func (d *Deck) ReturnCard(c *card.Card) {
	d.draw = append(d.draw, c)
}

// DiscardCard pushes a card onto the discard pile, making it the new
// current card.
func (d *Deck) DiscardCard(c *card.Card) {
	d.discard = append(d.discard, c)
}

// TopDiscard returns the face-up card without touching the pile.
func (d *Deck) TopDiscard() *card.Card {
	if len(d.discard) == 0 {
		return nil
	}
	return d.discard[len(d.discard)-1]
}

// ShuffleDiscardIntoDeck folds every discard except the face-up card
// back into the draw pile and shuffles twice. Wilds go back colorless.
func (d *Deck) ShuffleDiscardIntoDeck() {
	if len(d.discard) == 0 {
		return
	}
	inPlay := d.discard[len(d.discard)-1]
	for _, c := range d.discard[:len(d.discard)-1] {
		c.ResetColor()
		d.draw = append(d.draw, c)
	}
	d.Shuffle()
	d.Shuffle()
	d.discard = []*card.Card{inPlay}
}

// SnapshotDrawPile copies the draw pile, bottom to top, as frozen
// cards.
func (d *Deck) SnapshotDrawPile() []*card.Card {
	return snapshotPile(d.draw)
}

// SnapshotDiscardPile copies the discard pile, bottom to face-up card,
// as frozen cards.
func (d *Deck) SnapshotDiscardPile() []*card.Card {
	return snapshotPile(d.discard)
}

func snapshotPile(pile []*card.Card) []*card.Card {
	frozen := make([]*card.Card, len(pile))
	for i, c := range pile {
		frozen[i] = c.Snapshot()
	}
	return frozen
}

func (d *Deck) CardsInDeck() int {
	return len(d.draw)
}

func (d *Deck) CardsInDiscard() int {
	return len(d.discard)
}
