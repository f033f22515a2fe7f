package card

import (
	"strconv"

	"github.com/madans2984/uno/card/color"
)

func NewNumberCard(cardColor color.Color, number int) *Card {
	return New(cardColor, Symbol(strconv.Itoa(number)))
}
