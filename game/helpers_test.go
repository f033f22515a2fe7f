package game_test

import (
	"fmt"
	"testing"

	"github.com/madans2984/uno/card"
	"github.com/madans2984/uno/card/color"
	"github.com/madans2984/uno/event"
	"github.com/madans2984/uno/game"
	"github.com/stretchr/testify/require"
)

// stubPlayer replays queued answers and falls back to the first legal move and Red.
type stubPlayer struct {
	name   string
	role   game.Role
	moves  []int
	colors []color.Color
	err    error
	plays  int
	picks  int
	seen   []game.Snapshot
}

func newStubPlayer(name string) *stubPlayer {
	return &stubPlayer{name: name}
}

func (p *stubPlayer) Name() string {
	return p.name
}

func (p *stubPlayer) Role() game.Role {
	return p.role
}

func (p *stubPlayer) Play(legalMoves []int, gameState game.Snapshot) (int, error) {
	p.plays++
	p.seen = append(p.seen, gameState)
	if p.err != nil {
		return 0, p.err
	}
	if len(p.moves) > 0 {
		move := p.moves[0]
		p.moves = p.moves[1:]
		return move, nil
	}
	return legalMoves[0], nil
}

func (p *stubPlayer) PickColor(game.Snapshot) (color.Color, error) {
	p.picks++
	if len(p.colors) > 0 {
		chosen := p.colors[0]
		p.colors = p.colors[1:]
		return chosen, nil
	}
	return color.Red, nil
}

// table is a game with fixed hands, a fixed discard pile and no shuffling.
type table struct {
	game     *game.Game
	players  []*stubPlayer
	listener *event.DummyListener
}

func newTable(t *testing.T, top *card.Card, drawPile []*card.Card, hands ...[]*card.Card) *table {
	t.Helper()
	tbl := &table{listener: event.NewDummyListener()}
	players := make([]game.Player, len(hands))
	for seat := range hands {
		tbl.players = append(tbl.players, newStubPlayer(fmt.Sprintf("p%d", seat)))
		players[seat] = tbl.players[seat]
	}

	bus := event.NewBus()
	bus.Subscribe(tbl.listener)
	g, err := game.New(players,
		game.WithBus(bus),
		game.WithHandSize(0),
		game.WithDrawPile(game.NewPile(drawPile...)),
		game.WithDiscardPile(game.NewPile(top)),
	)
	require.NoError(t, err)
	for seat, hand := range hands {
		g.Director().Player(seat).AddCards(hand)
	}
	tbl.game = g
	return tbl
}

func (tbl *table) step(t *testing.T) {
	t.Helper()
	require.NoError(t, tbl.game.Director().Step())
}

func faces(cards []*card.Card) []string {
	result := make([]string, len(cards))
	for i, c := range cards {
		result[i] = c.String()
	}
	return result
}

func numbers(cardColor color.Color, values ...int) []*card.Card {
	cards := make([]*card.Card, len(values))
	for i, value := range values {
		cards[i] = card.NewNumberCard(cardColor, value)
	}
	return cards
}

func payloadsOf[T any](listener *event.DummyListener) []T {
	var result []T
	for _, payload := range listener.ReceivedPayloads() {
		if typed, ok := payload.(T); ok {
			result = append(result, typed)
		}
	}
	return result
}
