package player

import (
	"github.com/madans2984/uno/card/color"
	"github.com/madans2984/uno/game"
)

// goodPlayer plays the card that leaves the most follow-up plays in its hand and declares
// the color it holds most of.
type goodPlayer struct {
	basicPlayer
}

func NewGoodPlayer(name string) game.Player {
	return goodPlayer{basicPlayer: basicPlayer{name: name, role: game.Automated}}
}

func (p goodPlayer) PickColor(gameState game.Snapshot) (color.Color, error) {
	if len(gameState.CurrentPlayerHand) == 0 {
		return color.Blue, nil
	}

	colorCounts := make(map[color.Color]int)
	for _, card := range gameState.CurrentPlayerHand {
		if card.IsWild() {
			for _, declarable := range color.Declarable() {
				colorCounts[declarable]++
			}
		} else {
			colorCounts[card.Color()]++
		}
	}

	var (
		mostFrequentColor       = color.Blue
		mostFrequentColorAmount int
	)
	for _, availableColor := range color.Declarable() {
		if amount := colorCounts[availableColor]; amount > mostFrequentColorAmount {
			mostFrequentColorAmount = amount
			mostFrequentColor = availableColor
		}
	}

	return mostFrequentColor, nil
}

func (p goodPlayer) Play(legalMoves []int, gameState game.Snapshot) (int, error) {
	mostDiscardableCardIndex := legalMoves[0]
	maxSpareCards := 0

	for _, cardIndex := range legalMoves {
		playableCard := gameState.CurrentPlayerHand[cardIndex]
		spareCards := 0
		for handIndex, handCard := range gameState.CurrentPlayerHand {
			if handIndex != cardIndex && game.Playable(handCard, playableCard) {
				spareCards++
			}
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}

	return mostDiscardableCardIndex, nil
}
