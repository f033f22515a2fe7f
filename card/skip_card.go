package card

import "github.com/madans2984/uno/card/color"

func NewSkipCard(cardColor color.Color) *Card {
	return New(cardColor, Skip)
}
