package msg

import (
	"fmt"
	"strings"

	"github.com/madans2984/uno/card"
	"github.com/madans2984/uno/card/color"
)

var Message = MessageWriter{}

// MessageWriter formats everything the text interface prints. Every method returns the
// complete lines, newline included.
type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(c *card.Card) string {
	return Sprintfln("First card is %s", c.Paint())
}

func (m MessageWriter) HumanPlayerDrewCards(cards []*card.Card) string {
	return Sprintfln("You drew %s!", paintAll(cards))
}

func (m MessageWriter) HumanPlayerHasNoMatchingCardsInHand(playerName string, lastPlayedCard *card.Card, hand []*card.Card) string {
	return Sprintlns([]string{
		fmt.Sprintf("%s, none of your cards match %s!", playerName, lastPlayedCard.Paint()),
		fmt.Sprintf("Your hand is %s", paintAll(hand)),
	})
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []*card.Card) string {
	if len(cards) == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, len(cards))
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, chosen color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, chosen.Paint(chosen.Name()))
}

func (m MessageWriter) PlayerPlayedCard(playerName string, c *card.Card) string {
	return Sprintfln("%s played %s!", playerName, c.Paint())
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) TurnOrderReversed(direction int) string {
	if direction < 0 {
		return Sprintln("Turn order has been reversed, play goes backward!")
	}
	return Sprintln("Turn order has been reversed, play goes forward!")
}

func (m MessageWriter) DiscardPileReused(recycled int, drawPileSize int) string {
	return Sprintfln("%d discarded cards were shuffled back, %d cards left to draw.", recycled, drawPileSize)
}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return Sprintfln("%s wins!", playerName)
}

// TurnOrder lists every seat with its card count, marking the seat to play.
func (m MessageWriter) TurnOrder(names []string, handCounts []int, current int, direction int) string {
	arrow := "->"
	if direction < 0 {
		arrow = "<-"
	}
	statuses := make([]string, len(names))
	for seat, name := range names {
		marker := " "
		if seat == current {
			marker = "*"
		}
		statuses[seat] = fmt.Sprintf("%s%s (%d)", marker, name, handCounts[seat])
	}
	return Sprintfln("Turn order %s %s", arrow, strings.Join(statuses, " "))
}

// Hand numbers the cards from 1, the way players select them.
func (m MessageWriter) Hand(cards []*card.Card) string {
	lines := make([]string, len(cards))
	for i, c := range cards {
		lines[i] = fmt.Sprintf("  %d: %s", i+1, c.Paint())
	}
	return Sprintlns(append([]string{"Your hand:"}, lines...))
}

// CardSelection lists the playable cards of hand by their 1-based positions.
func (m MessageWriter) CardSelection(hand []*card.Card, legalMoves []int) string {
	lines := []string{"Select a card to play:"}
	for _, index := range legalMoves {
		lines = append(lines, fmt.Sprintf("  %s (enter %d)", hand[index].Paint(), index+1))
	}
	return Sprintlns(lines)
}

func (m MessageWriter) ColorSelection() string {
	options := make([]string, 0, 4)
	for _, c := range color.Declarable() {
		options = append(options, fmt.Sprintf("'%s'", c.Paint(c.Initial())))
	}
	return Sprintfln("Select a color: %s", strings.Join(options, ", "))
}

func (m MessageWriter) NoCardAssigned(input string) string {
	return Sprintfln("No card assigned to '%s'", input)
}

func (m MessageWriter) UnknownColor(input string) string {
	return Sprintfln("Unknown color '%s'", input)
}

func paintAll(cards []*card.Card) string {
	painted := make([]string, len(cards))
	for i, c := range cards {
		painted[i] = c.Paint()
	}
	return "[" + strings.Join(painted, ", ") + "]"
}
