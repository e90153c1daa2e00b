package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/uno-online/server/uno/card"
)

// Player owns a hand of cards. The hand keeps insertion order so a
// caller's "first legal card" choice is stable.
type Player struct {
	id   uuid.UUID
	name string
	hand []*card.Card
}

func NewPlayer(name string) *Player {
	return &Player{id: uuid.New(), name: name}
}

// LoadPlayer rebuilds a player with a known identity, for replaying
// games.
func LoadPlayer(id uuid.UUID, name string, hand []*card.Card) *Player {
	return &Player{id: id, name: name, hand: hand}
}

func (p *Player) ID() uuid.UUID {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

// Hand returns a copy of the hand in insertion order.
func (p *Player) Hand() []*card.Card {
	hand := make([]*card.Card, len(p.hand))
	copy(hand, p.hand)
	return hand
}

func (p *Player) CardsInHand() int {
	return len(p.hand)
}

// AddCardToHand appends a card. The caller hands out each physical
// card once, so no duplicate check happens here.
func (p *Player) AddCardToHand(c *card.Card) {
	p.hand = append(p.hand, c)
}

// Holds reports whether the card (by identity) is in the hand.
func (p *Player) Holds(c *card.Card) bool {
	for _, held := range p.hand {
		if held.ID() == c.ID() {
			return true
		}
	}
	return false
}

// PlayCardFromHand removes the hand entry matching the card's
// identity. An absent card is a caller bug and reported as such.
func (p *Player) PlayCardFromHand(c *card.Card) error {
	for i, held := range p.hand {
		if held.ID() == c.ID() {
			p.hand = append(p.hand[:i], p.hand[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s does not hold %s", ErrCardNotInHand, p.name, c)
}

// ValidCards returns the subset of the hand playable against the given
// card, preserving hand order.
func (p *Player) ValidCards(against *card.Card) []*card.Card {
	var valid []*card.Card
	for _, held := range p.hand {
		if held.IsValidAgainst(against) {
			valid = append(valid, held)
		}
	}
	return valid
}

func (p *Player) String() string {
	return p.name
}
