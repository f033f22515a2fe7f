package game_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/madans2984/uno/card"
	"github.com/madans2984/uno/card/color"
	"github.com/madans2984/uno/game"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	t.Run("holds_112_cards", func(t *testing.T) {
		require.Len(t, game.NewDeck(), 112)
		require.Equal(t, 112, game.DeckSize())
	})

	t.Run("holds_25_cards_of_each_color", func(t *testing.T) {
		counts := map[color.Color]int{}
		for _, c := range game.NewDeck() {
			counts[c.BaseColor()]++
		}
		require.Equal(t, map[color.Color]int{
			color.Red:    25,
			color.Blue:   25,
			color.Green:  25,
			color.Yellow: 25,
			color.Wild:   12,
		}, counts)
	})

	t.Run("holds_the_faces_of_a_color_set", func(t *testing.T) {
		counts := map[card.Symbol]int{}
		for _, c := range game.NewDeck() {
			if c.BaseColor() == color.Green {
				counts[c.Symbol()]++
			}
		}
		require.Equal(t, 1, counts["0"])
		for _, symbol := range []card.Symbol{"1", "5", "9", card.Skip, card.Reverse, card.DrawTwo} {
			require.Equal(t, 2, counts[symbol], symbol)
		}
	})

	t.Run("holds_six_of_each_wild", func(t *testing.T) {
		var wilds, drawFours int
		for _, c := range game.NewDeck() {
			switch {
			case c.IsWild() && c.Symbol() == card.DrawFour:
				drawFours++
			case c.IsWild():
				wilds++
			}
		}
		require.Equal(t, 6, wilds)
		require.Equal(t, 6, drawFours)
	})

	t.Run("starts_with_red_zero", func(t *testing.T) {
		deck := game.NewDeck()
		require.Equal(t, "Red 0", deck[0].String())
		require.Equal(t, "Blue 0", deck[25].String())
		require.Equal(t, "Wild", deck[100].String())
		require.Equal(t, "Wild +4", deck[111].String())
	})

	t.Run("gives_every_card_its_own_id", func(t *testing.T) {
		ids := map[uuid.UUID]bool{}
		for _, c := range game.NewDeck() {
			ids[c.ID()] = true
		}
		require.Len(t, ids, 112)
	})

	t.Run("accepts_a_wild_count", func(t *testing.T) {
		require.Len(t, game.NewDeck(game.WithWildCount(4)), 108)
		require.Equal(t, 108, game.DeckSize(game.WithWildCount(4)))
		require.Len(t, game.NewDeck(game.WithWildCount(-1)), 112)
	})
}
