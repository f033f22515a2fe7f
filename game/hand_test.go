package game_test

import (
	"errors"
	"testing"

	"github.com/madans2984/uno/card"
	"github.com/madans2984/uno/card/color"
	"github.com/madans2984/uno/consts"
	"github.com/madans2984/uno/game"
	"github.com/stretchr/testify/require"
)

func TestAddCards(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]*card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	})
	require.Equal(t, []string{"Blue 7", "Wild"}, faces(hand.Cards()))
}

func TestEmpty(t *testing.T) {
	hand := game.NewHand()
	require.True(t, hand.Empty())
	hand.AddCards([]*card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	})
	require.False(t, hand.Empty())
}

func TestPlayableIndices(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]*card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 8),
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewReverseCard(color.Yellow),
		card.NewDrawTwoCard(color.Blue),
	})
	lastPlayedCard := card.NewNumberCard(color.Blue, 7)
	require.Equal(t, []int{0, 2, 3, 5}, hand.PlayableIndices(lastPlayedCard))
}

func TestRemoveCard(t *testing.T) {
	t.Run("removes_the_card_at_index", func(t *testing.T) {
		hand := game.NewHand()
		reverse := card.NewReverseCard(color.Yellow)
		hand.AddCards([]*card.Card{
			card.NewWildCard(),
			reverse,
			card.NewDrawTwoCard(color.Blue),
		})

		removed, err := hand.Remove(1)
		require.NoError(t, err)
		require.Same(t, reverse, removed)
		require.Equal(t, []string{"Wild", "Blue +2"}, faces(hand.Cards()))
	})

	t.Run("does_nothing_for_an_index_out_of_range", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]*card.Card{
			card.NewWildCard(),
			card.NewReverseCard(color.Yellow),
		})
		_, err := hand.Remove(2)
		require.True(t, errors.Is(err, consts.ErrorsInvalidSelection))
		_, err = hand.Remove(-1)
		require.True(t, errors.Is(err, consts.ErrorsInvalidSelection))
		require.Equal(t, 2, hand.Size())
	})

	t.Run("removes_a_single_copy", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]*card.Card{
			card.NewWildCard(),
			card.NewNumberCard(color.Red, 6),
			card.NewNumberCard(color.Red, 6),
		})
		_, err := hand.Remove(1)
		require.NoError(t, err)
		require.Equal(t, []string{"Wild", "Red 6"}, faces(hand.Cards()))
	})
}

func TestHandCardsAreClones(t *testing.T) {
	hand := game.NewHand()
	wild := card.NewWildCard()
	hand.AddCards([]*card.Card{wild})

	cards := hand.Cards()
	cards[0].SetChosenColor(color.Blue)
	require.Equal(t, color.Wild, wild.ChosenColor())
	require.Equal(t, wild.ID(), cards[0].ID())
}

func TestSize(t *testing.T) {
	hand := game.NewHand()
	require.Equal(t, 0, hand.Size())
	hand.AddCards([]*card.Card{
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewReverseCard(color.Yellow),
	})
	require.Equal(t, 3, hand.Size())
}
