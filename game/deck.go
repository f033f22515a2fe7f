package game

import (
	"github.com/madans2984/uno/card"
	"github.com/madans2984/uno/card/color"
	"github.com/madans2984/uno/consts"
)

type deckOptions struct {
	wildCount int
}

type DeckOption func(*deckOptions)

// WithWildCount sets how many plain wilds and how many wild draw fours the deck holds.
func WithWildCount(count int) DeckOption {
	return func(o *deckOptions) {
		if count >= 0 {
			o.wildCount = count
		}
	}
}

// NewDeck builds an unshuffled deck: the colored cards of Red, Blue, Green and Yellow
// followed by the wild cards.
func NewDeck(opts ...DeckOption) []*card.Card {
	options := deckOptions{wildCount: consts.WildCount}
	for _, opt := range opts {
		opt(&options)
	}

	cards := make([]*card.Card, 0, 100+2*options.wildCount)
	cards = append(cards, createColorCards(color.Red)...)
	cards = append(cards, createColorCards(color.Blue)...)
	cards = append(cards, createColorCards(color.Green)...)
	cards = append(cards, createColorCards(color.Yellow)...)
	cards = append(cards, createBlackCards(options.wildCount)...)
	return cards
}

func DeckSize(opts ...DeckOption) int {
	options := deckOptions{wildCount: consts.WildCount}
	for _, opt := range opts {
		opt(&options)
	}
	return 100 + 2*options.wildCount
}

func createColorCards(cardColor color.Color) []*card.Card {
	cards := []*card.Card{card.NewNumberCard(cardColor, 0)}
	for copies := 0; copies < 2; copies++ {
		for number := 1; number <= 9; number++ {
			cards = append(cards, card.NewNumberCard(cardColor, number))
		}
		cards = append(cards,
			card.NewReverseCard(cardColor),
			card.NewSkipCard(cardColor),
			card.NewDrawTwoCard(cardColor),
		)
	}
	return cards
}

func createBlackCards(count int) []*card.Card {
	cards := make([]*card.Card, 0, 2*count)
	for i := 0; i < count; i++ {
		cards = append(cards, card.NewWildCard(), card.NewWildDrawFourCard())
	}
	return cards
}
