package game

import (
	"fmt"
	"time"

	"github.com/madans2984/uno/card"
	"github.com/madans2984/uno/card/action"
	"github.com/madans2984/uno/card/color"
	"github.com/madans2984/uno/consts"
	"github.com/madans2984/uno/event"
	"github.com/ratel-online/core/log"
)

type playerController struct {
	seat   int
	player Player
	hand   *Hand
	delay  time.Duration
	sleep  func(time.Duration)
}

func newPlayerController(seat int, player Player, o options) *playerController {
	return &playerController{
		seat:   seat,
		player: player,
		hand:   NewHand(),
		delay:  o.delay,
		sleep:  o.sleep,
	}
}

func (c *playerController) AddCards(cards []*card.Card) {
	c.hand.AddCards(cards)
}

// Hand returns clones of the cards in hand.
func (c *playerController) Hand() []*card.Card {
	return c.hand.Cards()
}

func (c *playerController) Name() string {
	return c.player.Name()
}

func (c *playerController) Seat() int {
	return c.seat
}

func (c *playerController) Role() Role {
	return c.player.Role()
}

func (c *playerController) NumCards() int {
	return c.hand.Size()
}

func (c *playerController) NoCards() bool {
	return c.hand.Empty()
}

// TakeTurn runs one turn: settle the pending action, or draw when nothing is playable,
// or play a card chosen by the player.
func (c *playerController) TakeTurn(state *State, gameState Snapshot) error {
	handled, err := c.HandleAction(state)
	if err != nil || handled {
		return err
	}

	playable := c.hand.PlayableIndices(state.CurrentCard())
	if len(playable) == 0 {
		state.bus.PlayerPassed.Emit(event.PlayerPassedPayload{
			PlayerName:     c.Name(),
			LastPlayedCard: state.CurrentCard().Clone(),
			Hand:           c.hand.Cards(),
		})
		_, err := c.Draw(state, 1)
		return err
	}

	index, err := c.selectCard(state, playable, gameState)
	if err != nil {
		return err
	}
	chosen := color.Wild
	if selected, _ := c.hand.Card(index); selected.IsWild() {
		if chosen, err = c.selectColor(gameState); err != nil {
			return err
		}
	}
	if err := c.PlayCard(state, index, chosen); err != nil {
		return err
	}
	if c.Role() == Automated && c.delay > 0 {
		c.sleep(c.delay)
	}
	return nil
}

// HandleAction settles a pending Skip, +2 or +4 against this player. It reports whether
// one was settled, which ends the turn.
func (c *playerController) HandleAction(state *State) (bool, error) {
	switch pending := state.Pending(); pending {
	case action.Skip:
		state.ClearPending()
		state.bus.PlayerSkipped.Emit(event.PlayerSkippedPayload{PlayerName: c.Name()})
		return true, nil
	case action.DrawTwo, action.DrawFour:
		state.ClearPending()
		_, err := c.Draw(state, pending.Amount())
		return true, err
	default:
		return false, nil
	}
}

func (c *playerController) Draw(state *State, amount int) ([]*card.Card, error) {
	cards, err := state.Draw(amount)
	if err != nil {
		return nil, fmt.Errorf("%s draws %d: %w", c.Name(), amount, err)
	}
	c.hand.AddCards(cards)

	drawn := make([]*card.Card, len(cards))
	for i, drawnCard := range cards {
		drawn[i] = drawnCard.Clone()
	}
	state.bus.CardsDrawn.Emit(event.CardsDrawnPayload{PlayerName: c.Name(), Cards: drawn})
	return cards, nil
}

// PlayCard moves the card at index from the hand to the discard pile. chosen is the
// declared color and only matters for wild cards. Nothing changes when the move is
// rejected.
func (c *playerController) PlayCard(state *State, index int, chosen color.Color) error {
	selected, err := c.hand.Card(index)
	if err != nil {
		return err
	}
	if !Playable(selected, state.CurrentCard()) {
		return fmt.Errorf("%s cannot be played on %s: %w", selected, state.CurrentCard(), consts.ErrorsIllegalMove)
	}
	if selected.IsWild() && !chosen.IsDeclarable() {
		return fmt.Errorf("%s declared for %s: %w", chosen, selected, consts.ErrorsInvalidSelection)
	}

	played, _ := c.hand.Remove(index)
	if played.IsWild() {
		played.SetChosenColor(chosen)
	}
	if pending := played.Action(); pending != action.None {
		state.SetPending(pending)
	}
	state.Play(played)

	state.bus.CardPlayed.Emit(event.CardPlayedPayload{PlayerName: c.Name(), Card: played.Clone()})
	if played.IsWild() {
		state.bus.ColorPicked.Emit(event.ColorPickedPayload{PlayerName: c.Name(), Color: chosen})
	}

	if c.hand.Empty() {
		state.DeclareWin()
		log.Infof("%s played the last card %s\n", c.Name(), played)
		state.bus.GameWon.Emit(event.GameWonPayload{PlayerName: c.Name()})
	}
	return nil
}

// selectCard asks the player until it names a legal index. Automated players get
// consts.MaxBotAttempts tries before their first legal card is played for them.
func (c *playerController) selectCard(state *State, playable []int, gameState Snapshot) (int, error) {
	for attempts := 1; ; attempts++ {
		index, err := c.player.Play(playable, gameState)
		if err != nil {
			return 0, err
		}
		if contains(playable, index) {
			return index, nil
		}
		log.Errorf("Cheat detected! %s chose card %d, legal moves are %v on %s\n", c.Name(), index, playable, state.CurrentCard())
		if c.Role() == Automated && attempts >= consts.MaxBotAttempts {
			return playable[0], nil
		}
	}
}

func (c *playerController) selectColor(gameState Snapshot) (color.Color, error) {
	for attempts := 1; ; attempts++ {
		chosen, err := c.player.PickColor(gameState)
		if err != nil {
			return color.Wild, err
		}
		if chosen.IsDeclarable() {
			return chosen, nil
		}
		log.Errorf("Cheat detected! %s declared %s\n", c.Name(), chosen)
		if c.Role() == Automated && attempts >= consts.MaxBotAttempts {
			return color.Red, nil
		}
	}
}

func contains(indices []int, searched int) bool {
	for _, index := range indices {
		if index == searched {
			return true
		}
	}
	return false
}
