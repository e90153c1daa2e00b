package card

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/uno-online/server/uno/card/color"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Type classifies a card. Numeric cards additionally carry a value,
// wild cards start without a color.
type Type string

const (
	Numeric  Type = "numeric"
	Skip     Type = "skip"
	Draw     Type = "draw"
	Reverse  Type = "reverse"
	Wild     Type = "wild"
	WildDraw Type = "wild-draw"
)

// ErrColorAlreadySet reports a second color assignment to a wild card
// that is still colored from being played.
var ErrColorAlreadySet = errors.New("card color already set")

// Card is a single physical card. Cards are created once at deck setup
// and keep their identity for the whole game; only a wild card's color
// ever changes, once, when it is played.
type Card struct {
	id    uuid.UUID
	typ   Type
	color color.Color
	value int
}

func NewNumeric(c color.Color, value int) *Card {
	return &Card{id: uuid.New(), typ: Numeric, color: c, value: value}
}

func NewSkip(c color.Color) *Card {
	return &Card{id: uuid.New(), typ: Skip, color: c}
}

func NewDraw(c color.Color) *Card {
	return &Card{id: uuid.New(), typ: Draw, color: c}
}

func NewReverse(c color.Color) *Card {
	return &Card{id: uuid.New(), typ: Reverse, color: c}
}

func NewWild() *Card {
	return &Card{id: uuid.New(), typ: Wild}
}

func NewWildDraw() *Card {
	return &Card{id: uuid.New(), typ: WildDraw}
}

// Load rebuilds a card with a known identity, for replaying games.
func Load(id uuid.UUID, typ Type, c color.Color, value int) *Card {
	return &Card{id: id, typ: typ, color: c, value: value}
}

// Snapshot returns a frozen copy of the card. Later color changes to
// the live card do not reach the copy.
func (c *Card) Snapshot() *Card {
	frozen := *c
	return &frozen
}

func (c *Card) ID() uuid.UUID {
	return c.id
}

func (c *Card) Type() Type {
	return c.typ
}

func (c *Card) Color() color.Color {
	return c.color
}

// Value returns the numeric value; the second result is false for
// every non-numeric card.
func (c *Card) Value() (int, bool) {
	if c.typ != Numeric {
		return 0, false
	}
	return c.value, true
}

// IsWild reports whether the card needs a color chosen when played.
func (c *Card) IsWild() bool {
	return c.typ == Wild || c.typ == WildDraw
}

// SetColor assigns the chosen color to a wild card. The assignment
// happens exactly once per play; a colored wild must pass through the
// draw pile (which clears it) before it can be colored again.
func (c *Card) SetColor(chosen color.Color) error {
	if !c.IsWild() {
		return fmt.Errorf("cannot recolor a %s card", c.typ)
	}
	if c.color != color.None {
		return ErrColorAlreadySet
	}
	if !chosen.Valid() {
		return fmt.Errorf("invalid color '%s'", string(chosen))
	}
	c.color = chosen
	return nil
}

// ResetColor clears a wild card's chosen color when it re-enters the
// draw pile. Non-wild cards keep their printed color.
func (c *Card) ResetColor() {
	if c.IsWild() {
		c.color = color.None
	}
}

// IsValidAgainst reports whether the card may be played on top of the
// currently face-up card: wilds always match, otherwise the colors
// match, the non-numeric types match, or the numeric values match.
func (c *Card) IsValidAgainst(other *Card) bool {
	if c.IsWild() {
		return true
	}
	if c.color != color.None && c.color == other.color {
		return true
	}
	if c.typ == other.typ && c.typ != Numeric {
		return true
	}
	return c.typ == Numeric && other.typ == Numeric && c.value == other.value
}

func (c *Card) String() string {
	switch c.typ {
	case Numeric:
		return c.color.Paintf("[%s|%d]", string(c.color), c.value)
	case Wild, WildDraw:
		if c.color == color.None {
			return fmt.Sprintf("[%s]", c.typ)
		}
		return c.color.Paintf("[%s|%s]", string(c.typ), string(c.color))
	default:
		return c.color.Paintf("[%s|%s]", string(c.color), string(c.typ))
	}
}

func (c *Card) MarshalJSON() ([]byte, error) {
	type wire struct {
		ID    string      `json:"id"`
		Type  Type        `json:"type"`
		Color color.Color `json:"color,omitempty"`
		Value *int        `json:"value,omitempty"`
	}
	w := wire{ID: c.id.String(), Type: c.typ, Color: c.color}
	if c.typ == Numeric {
		value := c.value
		w.Value = &value
	}
	return json.Marshal(w)
}
