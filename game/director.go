package game

import (
	"fmt"

	"github.com/madans2984/uno/audit"
	"github.com/madans2984/uno/card"
	"github.com/madans2984/uno/card/action"
	"github.com/madans2984/uno/event"
	"github.com/ratel-online/core/log"
)

// Director tells players when to act and keeps the turn order.
type Director struct {
	state   *State
	players []*playerController
	cycler  *Cycler
	audit   bool
	winner  *playerController
}

func newDirector(state *State, players []*playerController, withAudit bool) *Director {
	return &Director{
		state:   state,
		players: players,
		cycler:  NewCycler(len(players)),
		audit:   withAudit,
	}
}

func (d *Director) CurrentIndex() int {
	return d.cycler.Current()
}

func (d *Director) CurrentPlayer() *playerController {
	return d.players[d.cycler.Current()]
}

// NextIndex is the seat Advance would move to.
func (d *Director) NextIndex() int {
	return d.cycler.Peek(d.state.Direction())
}

func (d *Director) Player(seat int) *playerController {
	return d.players[seat]
}

func (d *Director) ForEach(function func(player *playerController)) {
	d.cycler.ForEach(func(seat int) {
		function(d.players[seat])
	})
}

// CallCurrentPlayer runs the current player's turn to completion.
func (d *Director) CallCurrentPlayer() error {
	current := d.CurrentPlayer()
	if err := current.TakeTurn(d.state, d.Snapshot(current.seat)); err != nil {
		return err
	}
	if d.state.Won() && d.winner == nil {
		d.winner = current
	}
	return nil
}

// ResolveReverse flips the direction of play if the card just played was a Reverse.
func (d *Director) ResolveReverse() {
	if d.state.Pending() != action.Reverse {
		return
	}
	d.state.ReverseDirection()
	d.state.ClearPending()
	d.state.bus.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{Direction: d.state.Direction()})
}

func (d *Director) Advance() {
	d.cycler.Next(d.state.Direction())
}

// Step plays one turn. Nothing changes after the turn that wins the game.
func (d *Director) Step() error {
	if d.state.Won() {
		return nil
	}
	if err := d.CallCurrentPlayer(); err != nil {
		return err
	}
	if d.audit {
		if _, err := d.Census(); err != nil {
			return err
		}
	}
	if d.state.Won() {
		return nil
	}
	d.ResolveReverse()
	d.Advance()
	return nil
}

// Run plays turns until a player wins and returns the winner's name.
func (d *Director) Run() (string, error) {
	for turn := 1; !d.state.Won(); turn++ {
		if err := d.Step(); err != nil {
			log.Errorf("game aborted on turn %d: %v\n", turn, err)
			return "", err
		}
	}
	log.Infof("%s won\n", d.Winner())
	return d.Winner(), nil
}

// Winner is the name of the player who emptied their hand, empty while nobody has.
func (d *Director) Winner() string {
	if d.winner == nil {
		return ""
	}
	return d.winner.Name()
}

// Census checks that every card of the game is in exactly one pile or hand.
func (d *Director) Census() (*audit.Ledger, error) {
	hands := make([][]*card.Card, len(d.players))
	for seat, player := range d.players {
		hands[seat] = player.hand.Cards()
	}
	ledger, err := audit.Census(d.state.Total(), d.state.drawPile.Cards(), d.state.discardPile.Cards(), hands)
	if err != nil {
		return ledger, fmt.Errorf("census: %w", err)
	}
	return ledger, nil
}

func (d *Director) Snapshot(seat int) Snapshot {
	sequence := make([]string, len(d.players))
	counts := make([]int, len(d.players))
	for i, player := range d.players {
		sequence[i] = player.Name()
		counts[i] = player.NumCards()
	}

	var lastPlayedCard *card.Card
	if current := d.state.CurrentCard(); current != nil {
		lastPlayedCard = current.Clone()
	}
	return Snapshot{
		LastPlayedCard:    lastPlayedCard,
		Direction:         d.state.Direction(),
		Pending:           d.state.Pending(),
		CurrentSeat:       d.cycler.Current(),
		CurrentPlayerHand: d.players[seat].Hand(),
		PlayerSequence:    sequence,
		PlayerHandCounts:  counts,
		DrawPileSize:      d.state.drawPile.Len(),
		DiscardPileSize:   d.state.discardPile.Len(),
	}
}
