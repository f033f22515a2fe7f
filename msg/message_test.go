package msg_test

import (
	"testing"

	"github.com/madans2984/uno/card"
	"github.com/madans2984/uno/card/color"
	"github.com/madans2984/uno/msg"
	"github.com/stretchr/testify/require"
)

func init() {
	color.SetEnabled(false)
}

func TestMessages(t *testing.T) {
	scenarios := []struct {
		description string
		message     string
		expected    string
	}{
		{
			description: "first_card",
			message:     msg.Message.FirstCardPlayed(card.NewNumberCard(color.Red, 5)),
			expected:    "First card is Red 5\n",
		},
		{
			description: "one_card_drawn",
			message:     msg.Message.PlayerDrewCards("Ann", []*card.Card{card.NewWildCard()}),
			expected:    "Ann drew a card!\n",
		},
		{
			description: "many_cards_drawn",
			message:     msg.Message.PlayerDrewCards("Ann", []*card.Card{card.NewWildCard(), card.NewWildCard()}),
			expected:    "Ann drew 2 cards!\n",
		},
		{
			description: "cards_drawn_by_human",
			message:     msg.Message.HumanPlayerDrewCards([]*card.Card{card.NewSkipCard(color.Blue), card.NewWildCard()}),
			expected:    "You drew [Blue Skip, Wild]!\n",
		},
		{
			description: "no_matching_cards",
			message: msg.Message.HumanPlayerHasNoMatchingCardsInHand("Ann", card.NewNumberCard(color.Red, 5),
				[]*card.Card{card.NewNumberCard(color.Blue, 1)}),
			expected: "Ann, none of your cards match Red 5!\nYour hand is [Blue 1]\n",
		},
		{
			description: "color_picked",
			message:     msg.Message.PlayerPickedColor("Ann", color.Green),
			expected:    "Ann picked color Green!\n",
		},
		{
			description: "card_played",
			message:     msg.Message.PlayerPlayedCard("Ann", card.NewColoredCard(card.NewWildDrawFourCard(), color.Yellow)),
			expected:    "Ann played Wild +4 (Yellow)!\n",
		},
		{
			description: "reversed_backward",
			message:     msg.Message.TurnOrderReversed(-1),
			expected:    "Turn order has been reversed, play goes backward!\n",
		},
		{
			description: "discard_reused",
			message:     msg.Message.DiscardPileReused(20, 23),
			expected:    "20 discarded cards were shuffled back, 23 cards left to draw.\n",
		},
		{
			description: "winner",
			message:     msg.Message.WinnerFound("Ann"),
			expected:    "Ann wins!\n",
		},
		{
			description: "turn_order",
			message:     msg.Message.TurnOrder([]string{"Ann", "Bob", "Cid"}, []int{7, 3, 1}, 1, -1),
			expected:    "Turn order <-  Ann (7) *Bob (3)  Cid (1)\n",
		},
		{
			description: "color_selection",
			message:     msg.Message.ColorSelection(),
			expected:    "Select a color: 'r', 'g', 'b', 'y'\n",
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, scenario.message)
		})
	}
}

func TestCardSelection(t *testing.T) {
	hand := []*card.Card{
		card.NewNumberCard(color.Blue, 1),
		card.NewNumberCard(color.Red, 2),
		card.NewWildCard(),
	}
	require.Equal(t, "Your hand:\n  1: Blue 1\n  2: Red 2\n  3: Wild\n", msg.Message.Hand(hand))
	require.Equal(t, "Select a card to play:\n  Red 2 (enter 2)\n  Wild (enter 3)\n", msg.Message.CardSelection(hand, []int{1, 2}))
}
