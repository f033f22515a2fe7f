package card

import "github.com/madans2984/uno/card/color"

func NewDrawTwoCard(cardColor color.Color) *Card {
	return New(cardColor, DrawTwo)
}
