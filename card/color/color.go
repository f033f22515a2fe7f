package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Color int

const (
	Wild Color = iota
	Red
	Green
	Blue
	Yellow
)

type paint struct {
	name          string
	initial       string
	colorFunction func(string, ...interface{}) string
}

var paints = map[Color]paint{
	Red: {
		name:          "Red",
		initial:       "r",
		colorFunction: color.New(color.FgHiRed).SprintfFunc(),
	},
	Green: {
		name:          "Green",
		initial:       "g",
		colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
	},
	Blue: {
		name:          "Blue",
		initial:       "b",
		colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
	},
	Yellow: {
		name:          "Yellow",
		initial:       "y",
		colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
	},
}

func init() {
	paints[Wild] = paint{name: "Wild", colorFunction: rainbow}
}

var Stdout io.Writer = color.Output

// Declarable lists the colors a player may name when playing a wild card.
func Declarable() []Color {
	return []Color{Red, Green, Blue, Yellow}
}

func (c Color) Name() string {
	p, ok := paints[c]
	if !ok {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return p.name
}

func (c Color) Initial() string {
	return paints[c].initial
}

func (c Color) IsDeclarable() bool {
	return c != Wild && paints[c].initial != ""
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	p, ok := paints[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return p.colorFunction(format, args...)
}

func (c Color) String() string {
	return c.Name()
}

// rainbow paints each rune of the text in turn with the four declarable colors.
func rainbow(format string, args ...interface{}) string {
	var b strings.Builder
	i := 0
	for _, r := range fmt.Sprintf(format, args...) {
		if r == ' ' {
			b.WriteRune(r)
			continue
		}
		b.WriteString(paints[Declarable()[i%4]].colorFunction("%c", r))
		i++
	}
	return b.String()
}

// ByName resolves a full color name, ignoring case.
func ByName(name string) (Color, error) {
	name = strings.TrimSpace(name)
	for c, p := range paints {
		if strings.EqualFold(p.name, name) {
			return c, nil
		}
	}
	return Wild, fmt.Errorf("invalid color '%s'", name)
}

// ByInitial resolves the single letter shorthand r, g, b or y.
func ByInitial(initial string) (Color, error) {
	initial = strings.ToLower(strings.TrimSpace(initial))
	for _, c := range Declarable() {
		if paints[c].initial == initial {
			return c, nil
		}
	}
	return Wild, fmt.Errorf("invalid color '%s'", initial)
}

// SetEnabled switches terminal coloring on or off for every Paint call.
func SetEnabled(enabled bool) {
	color.NoColor = !enabled
}
