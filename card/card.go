package card

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/madans2984/uno/card/action"
	"github.com/madans2984/uno/card/color"
)

type Symbol string

const (
	Skip        Symbol = "Skip"
	Reverse     Symbol = "Reverse"
	DrawTwo     Symbol = "+2"
	DrawFour    Symbol = "+4"
	ChooseColor Symbol = ""
)

// IsAction reports whether the symbol is anything other than a plain number.
func (s Symbol) IsAction() bool {
	switch s {
	case Skip, Reverse, DrawTwo, DrawFour, ChooseColor:
		return true
	}
	return false
}

// Card is a single physical card. A *Card is the card instance: it must live in exactly
// one pile or hand at a time, so cards are moved between containers, never copied.
type Card struct {
	id          uuid.UUID
	baseColor   color.Color
	symbol      Symbol
	chosenColor color.Color
}

func New(baseColor color.Color, symbol Symbol) *Card {
	return &Card{
		id:        uuid.New(),
		baseColor: baseColor,
		symbol:    symbol,
	}
}

func (c *Card) ID() uuid.UUID {
	return c.id
}

func (c *Card) BaseColor() color.Color {
	return c.baseColor
}

func (c *Card) Symbol() Symbol {
	return c.symbol
}

// ChosenColor is the color declared for a wild card, Wild when none is declared.
func (c *Card) ChosenColor() color.Color {
	return c.chosenColor
}

// Color is the effective color used by the rules.
func (c *Card) Color() color.Color {
	if c.IsWild() && c.chosenColor != color.Wild {
		return c.chosenColor
	}
	return c.baseColor
}

func (c *Card) IsWild() bool {
	return c.baseColor == color.Wild
}

func (c *Card) IsAction() bool {
	return c.symbol.IsAction()
}

// Action is what playing the card leaves pending for the turn order.
func (c *Card) Action() action.Action {
	switch c.symbol {
	case Skip:
		return action.Skip
	case Reverse:
		return action.Reverse
	case DrawTwo:
		return action.DrawTwo
	case DrawFour:
		return action.DrawFour
	default:
		return action.None
	}
}

// Clone copies the card for read-only snapshots. The copy shares the id.
func (c *Card) Clone() *Card {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (c *Card) String() string {
	face := c.baseColor.Name()
	if c.symbol != ChooseColor {
		face = fmt.Sprintf("%s %s", face, c.symbol)
	}
	if c.IsWild() && c.chosenColor != color.Wild {
		face = fmt.Sprintf("%s (%s)", face, c.chosenColor.Name())
	}
	return face
}

// Paint renders the card in its effective color.
func (c *Card) Paint() string {
	return c.Color().Paint(c.String())
}
