package game

import (
	"fmt"

	"github.com/madans2984/uno/card"
	"github.com/madans2984/uno/consts"
)

type Hand struct {
	cards []*card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]*card.Card, 0, consts.HandSize)}
}

func (h *Hand) AddCards(cards []*card.Card) {
	h.cards = append(h.cards, cards...)
}

// Cards returns read-only clones of the hand in display order.
func (h *Hand) Cards() []*card.Card {
	cards := make([]*card.Card, len(h.cards))
	for i, c := range h.cards {
		cards[i] = c.Clone()
	}
	return cards
}

func (h *Hand) Card(index int) (*card.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return nil, fmt.Errorf("card %d of %d: %w", index, len(h.cards), consts.ErrorsInvalidSelection)
	}
	return h.cards[index], nil
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// PlayableIndices lists the positions of the cards that may be played on lastPlayedCard.
func (h *Hand) PlayableIndices(lastPlayedCard *card.Card) []int {
	var indices []int
	for index, candidateCard := range h.cards {
		if Playable(candidateCard, lastPlayedCard) {
			indices = append(indices, index)
		}
	}
	return indices
}

// Remove takes the card at index out of the hand, keeping the order of the rest.
func (h *Hand) Remove(index int) (*card.Card, error) {
	c, err := h.Card(index)
	if err != nil {
		return nil, err
	}
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return c, nil
}

func (h *Hand) Size() int {
	return len(h.cards)
}
