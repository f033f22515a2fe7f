package game

import (
	"fmt"
	"strings"

	"github.com/madans2984/uno/card"
	"github.com/madans2984/uno/card/action"
)

// Snapshot is the read-only view of a game handed to a player deciding a move. Cards in a
// snapshot are clones; changing them has no effect on the game.
type Snapshot struct {
	LastPlayedCard    *card.Card
	Direction         int
	Pending           action.Action
	CurrentSeat       int
	CurrentPlayerHand []*card.Card
	PlayerSequence    []string
	PlayerHandCounts  []int
	DrawPileSize      int
	DiscardPileSize   int
}

func (s Snapshot) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))

	var playerStatuses []string
	for seat, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[seat])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	order := "forward"
	if s.Direction < 0 {
		order = "backward"
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", order, strings.Join(playerStatuses, ", ")))

	lines = append(lines, fmt.Sprintf("Your hand: %s", s.CurrentPlayerHand))

	return strings.Join(lines, "\n")
}
