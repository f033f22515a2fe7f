package game_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/madans2984/uno/event"
	"github.com/madans2984/uno/game"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("needs_two_players", func(t *testing.T) {
		_, err := game.New([]game.Player{newStubPlayer("alone")})
		require.Error(t, err)
	})

	t.Run("deals_in_seat_order_after_the_first_card", func(t *testing.T) {
		deck := game.NewDeck()
		players := []game.Player{newStubPlayer("a"), newStubPlayer("b"), newStubPlayer("c"), newStubPlayer("d")}
		g, err := game.New(players, game.WithDrawPile(game.NewPile(deck...)))
		require.NoError(t, err)

		require.Same(t, deck[0], g.State().CurrentCard())
		for seat := 0; seat < 4; seat++ {
			hand := g.GetPlayerCards(seat)
			require.Len(t, hand, 7)
			for i, c := range hand {
				require.Equal(t, deck[1+7*seat+i].ID(), c.ID())
			}
		}
		require.Equal(t, 112-29, g.State().DrawPile().Len())
		require.Equal(t, 4, g.Players())

		ledger, err := g.Director().Census()
		require.NoError(t, err)
		require.Equal(t, 112, ledger.Total())
	})

	t.Run("announces_the_deal", func(t *testing.T) {
		listener := event.NewDummyListener()
		bus := event.NewBus()
		bus.Subscribe(listener)
		players := []game.Player{newStubPlayer("a"), newStubPlayer("b")}
		g, err := game.New(players, game.WithBus(bus), game.WithSeed(9), game.WithHandSize(3))
		require.NoError(t, err)

		require.Same(t, bus, g.Bus())
		require.Len(t, payloadsOf[event.FirstCardPlayedPayload](listener), 1)
		drawn := payloadsOf[event.CardsDrawnPayload](listener)
		require.Len(t, drawn, 2)
		require.Equal(t, "a", drawn[0].PlayerName)
		require.Len(t, drawn[1].Cards, 3)
		require.Equal(t, 3, g.NumCards(1))
	})
}

func TestFullGame(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			var pauses int
			players := []game.Player{newStubPlayer("a"), newStubPlayer("b"), newStubPlayer("c"), newStubPlayer("d")}
			g, err := game.New(players,
				game.WithSeed(seed),
				game.WithAudit(),
				game.WithDelay(time.Second),
				game.WithSleeper(func(time.Duration) { pauses++ }),
			)
			require.NoError(t, err)

			for turn := 0; turn < 10000 && !g.State().Won(); turn++ {
				require.NoError(t, g.Director().Step())
			}
			require.True(t, g.State().Won())

			winner, err := g.Run()
			require.NoError(t, err)
			require.NotEmpty(t, winner)
			require.Greater(t, pauses, 0)

			var emptyHands int
			for seat := 0; seat < g.Players(); seat++ {
				if g.NumCards(seat) == 0 {
					emptyHands++
					require.Equal(t, players[seat].Name(), winner)
				}
			}
			require.Equal(t, 1, emptyHands)

			_, err = g.Director().Census()
			require.NoError(t, err)
		})
	}
}
