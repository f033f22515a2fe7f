package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/madans2984/uno/card"
	"github.com/madans2984/uno/card/action"
	"github.com/madans2984/uno/card/color"
	"github.com/madans2984/uno/consts"
	"github.com/madans2984/uno/event"
	"github.com/ratel-online/core/log"
)

const (
	left  = -1
	right = 1
)

// State holds the parts of a game players act on: the two piles, the direction of play,
// the action left pending by the last card played, and whether someone has won.
//
// At most one action is pending at a time. It is set by the player who played an action
// card and consumed before the next card is played: by the next player for Skip, +2 and
// +4, by the Director for Reverse.
type State struct {
	drawPile    *Pile
	discardPile *Pile
	direction   int
	pending     action.Action
	won         bool
	total       int
	bus         *event.Bus
}

func NewState(opts ...Option) (*State, error) {
	return newState(newOptions(opts))
}

func newState(o options) (*State, error) {
	seed := o.seed
	if !o.seeded {
		seed = time.Now().UnixNano()
	}

	s := &State{
		drawPile:    o.drawPile,
		discardPile: o.discardPile,
		direction:   right,
		bus:         o.bus,
	}
	if s.drawPile == nil {
		s.drawPile = NewPileWithRand(rand.New(rand.NewSource(seed)), NewDeck(o.deck...)...)
		s.drawPile.Shuffle()
	}
	if s.discardPile != nil {
		s.total = s.drawPile.Len() + s.discardPile.Len()
		return s, nil
	}

	s.discardPile = NewPileWithRand(rand.New(rand.NewSource(seed + 1)))
	s.total = s.drawPile.Len()
	if err := s.seedDiscardPile(); err != nil {
		return nil, err
	}
	return s, nil
}

// seedDiscardPile turns the first number card of the draw pile into the discard pile.
// Action cards drawn on the way are put back under the draw pile, which is then shuffled.
func (s *State) seedDiscardPile() error {
	var skipped []*card.Card
	for {
		c, err := s.drawPile.DrawOne()
		if err != nil {
			return fmt.Errorf("seed discard pile: %w", err)
		}
		if !c.IsAction() {
			s.discardPile.PushTop(c)
			break
		}
		skipped = append(skipped, c)
	}
	if len(skipped) > 0 {
		s.drawPile.PushBottom(skipped...)
		s.drawPile.Shuffle()
	}
	s.bus.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: s.CurrentCard().Clone()})
	return nil
}

// CurrentCard is the top of the discard pile, the card the next play must match.
func (s *State) CurrentCard() *card.Card {
	top, err := s.discardPile.PeekTop()
	if err != nil {
		return nil
	}
	return top
}

// Color is the effective color of the current card.
func (s *State) Color() color.Color {
	if current := s.CurrentCard(); current != nil {
		return current.Color()
	}
	return color.Wild
}

func (s *State) Symbol() card.Symbol {
	if current := s.CurrentCard(); current != nil {
		return current.Symbol()
	}
	return card.ChooseColor
}

// Play puts c on top of the discard pile. Legality is the caller's concern.
func (s *State) Play(c *card.Card) {
	s.discardPile.PushTop(c)
}

// Draw takes amount cards from the draw pile, reusing the discard pile first when fewer
// than consts.RecycleThreshold cards are left.
func (s *State) Draw(amount int) ([]*card.Card, error) {
	if s.drawPile.Len() < consts.RecycleThreshold {
		if err := s.ReuseDiscardPile(); err != nil {
			return nil, err
		}
	}
	return s.drawPile.Draw(amount)
}

// ReuseDiscardPile moves every discarded card except the current one, shuffled and with
// declared colors stripped, under the draw pile.
func (s *State) ReuseDiscardPile() error {
	if s.discardPile.Len() == 0 {
		return fmt.Errorf("reuse discard pile: %w", consts.ErrorsEmptyPile)
	}
	top, _ := s.discardPile.DrawOne()

	s.discardPile.Shuffle()
	reusable, _ := s.discardPile.Draw(s.discardPile.Len())
	for _, c := range reusable {
		c.StripChosenColor()
	}
	s.drawPile.PushBottom(reusable...)
	s.discardPile.PushTop(top)

	if len(reusable) > 0 {
		log.Infof("reused %d discarded cards, draw pile has %d\n", len(reusable), s.drawPile.Len())
		s.bus.DiscardRecycled.Emit(event.DiscardRecycledPayload{
			Recycled:     len(reusable),
			DrawPileSize: s.drawPile.Len(),
		})
	}
	return nil
}

// Direction is 1 while play moves forward through the seats and -1 after an odd number
// of reverses.
func (s *State) Direction() int {
	return s.direction
}

func (s *State) ReverseDirection() {
	switch s.direction {
	case right:
		s.direction = left
	case left:
		s.direction = right
	}
}

func (s *State) Pending() action.Action {
	return s.pending
}

func (s *State) SetPending(a action.Action) {
	s.pending = a
}

func (s *State) ClearPending() {
	s.pending = action.None
}

func (s *State) Won() bool {
	return s.won
}

// DeclareWin latches the game as won. There is no way back.
func (s *State) DeclareWin() {
	s.won = true
}

func (s *State) DrawPile() *Pile {
	return s.drawPile
}

func (s *State) DiscardPile() *Pile {
	return s.discardPile
}

// Total is the number of cards the game was created with.
func (s *State) Total() int {
	return s.total
}

func (s *State) Bus() *event.Bus {
	return s.bus
}
