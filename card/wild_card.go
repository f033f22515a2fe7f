package card

import "github.com/madans2984/uno/card/color"

func NewWildCard() *Card {
	return New(color.Wild, ChooseColor)
}
