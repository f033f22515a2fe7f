package card

import "github.com/madans2984/uno/card/color"

func NewWildDrawFourCard() *Card {
	return New(color.Wild, DrawFour)
}
