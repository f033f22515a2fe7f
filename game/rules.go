package game

import (
	"github.com/madans2984/uno/card"
)

// Playable reports whether candidateCard may be played on lastPlayedCard: same effective
// color, same symbol, or a wild card.
func Playable(candidateCard *card.Card, lastPlayedCard *card.Card) bool {
	if candidateCard.IsWild() {
		return true
	}
	if lastPlayedCard == nil {
		return false
	}
	return candidateCard.Color() == lastPlayedCard.Color() ||
		candidateCard.Symbol() == lastPlayedCard.Symbol()
}
