package card

import (
	"github.com/madans2984/uno/card/color"
)

// NewColoredCard declares chosen on a wild card and returns it.
func NewColoredCard(wild *Card, chosen color.Color) *Card {
	wild.SetChosenColor(chosen)
	return wild
}

// SetChosenColor declares the color a wild card plays as. It does nothing for colored
// cards or for a color that cannot be declared.
func (c *Card) SetChosenColor(chosen color.Color) {
	if !c.IsWild() || !chosen.IsDeclarable() {
		return
	}
	c.chosenColor = chosen
}

// StripChosenColor forgets any declared color.
func (c *Card) StripChosenColor() {
	c.chosenColor = color.Wild
}
