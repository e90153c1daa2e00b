package color

import (
	"fmt"
	"math/rand"

	"github.com/fatih/color"
)

// Color is one of the four playable card colors. Wild cards carry no
// color until one is chosen for them at play time.
type Color string

const (
	None   Color = ""
	Red    Color = "red"
	Blue   Color = "blue"
	Green  Color = "green"
	Yellow Color = "yellow"
)

var paints = map[Color]func(string, ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
}

// All lists the playable colors in deck-construction order.
func All() []Color {
	return []Color{Red, Blue, Green, Yellow}
}

func (c Color) Valid() bool {
	_, ok := paints[c]
	return ok
}

// Paintf formats text wrapped in the color's console escape codes.
// A colorless receiver formats without painting.
func (c Color) Paintf(format string, args ...interface{}) string {
	paint, ok := paints[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return paint(format, args...)
}

func (c Color) String() string {
	if c == None {
		return "none"
	}
	return c.Paintf(string(c))
}

// ByName resolves a color from its lowercase name.
func ByName(name string) (Color, error) {
	c := Color(name)
	if !c.Valid() {
		return None, fmt.Errorf("invalid color '%s'", name)
	}
	return c, nil
}

// Random picks one of the four colors from the supplied source.
func Random(rng *rand.Rand) Color {
	all := All()
	return all[rng.Intn(len(all))]
}
