package game

import (
	"errors"
	"fmt"

	"github.com/madans2984/uno/card"
	"github.com/madans2984/uno/event"
	"github.com/ratel-online/core/log"
)

type Game struct {
	state    *State
	director *Director
}

// New sets up a game: the draw pile is shuffled, the first number card is turned onto the
// discard pile and every player is dealt a hand in seat order.
func New(players []Player, opts ...Option) (*Game, error) {
	if len(players) < 2 {
		return nil, errors.New("a game needs at least 2 players")
	}
	o := newOptions(opts)
	state, err := newState(o)
	if err != nil {
		return nil, err
	}

	controllers := make([]*playerController, len(players))
	for seat, player := range players {
		controllers[seat] = newPlayerController(seat, player, o)
	}
	g := &Game{
		state:    state,
		director: newDirector(state, controllers, o.audit),
	}
	if err := g.DealStartingCards(o.handSize); err != nil {
		return nil, err
	}
	log.Infof("dealt %d cards to %d players, first card is %s\n", o.handSize, len(players), state.CurrentCard())
	return g, nil
}

func (g *Game) DealStartingCards(handSize int) error {
	var err error
	g.director.ForEach(func(player *playerController) {
		if err != nil || handSize == 0 {
			return
		}
		if _, drawErr := player.Draw(g.state, handSize); drawErr != nil {
			err = fmt.Errorf("deal: %w", drawErr)
		}
	})
	return err
}

// Run plays the game to the end and returns the winner's name.
func (g *Game) Run() (string, error) {
	return g.director.Run()
}

func (g *Game) State() *State {
	return g.state
}

func (g *Game) Director() *Director {
	return g.director
}

func (g *Game) Bus() *event.Bus {
	return g.state.bus
}

func (g *Game) Players() int {
	return len(g.director.players)
}

// GetPlayerCards returns clones of the cards in the hand at seat.
func (g *Game) GetPlayerCards(seat int) []*card.Card {
	return g.director.Player(seat).Hand()
}

func (g *Game) NumCards(seat int) int {
	return g.director.Player(seat).NumCards()
}

func (g *Game) Snapshot(seat int) Snapshot {
	return g.director.Snapshot(seat)
}
