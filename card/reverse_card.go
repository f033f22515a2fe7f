package card

import "github.com/madans2984/uno/card/color"

func NewReverseCard(cardColor color.Color) *Card {
	return New(cardColor, Reverse)
}
