package ui

import (
	"github.com/madans2984/uno/event"
	"github.com/madans2984/uno/game"
	"github.com/madans2984/uno/msg"
)

// View prints what happens at the table. It listens to every event of a game bus;
// cards drawn by the human player are shown face up, everyone else's only as a count.
type View struct {
	printer   *Printer
	humanName string
}

func NewView(printer *Printer, humanName string) *View {
	return &View{printer: printer, humanName: humanName}
}

// Attach subscribes the view to bus.
func (v *View) Attach(bus *event.Bus) *View {
	bus.Subscribe(v)
	return v
}

func (v *View) Welcome() {
	v.printer.Print(msg.Message.Welcome())
}

// ShowTurn prints the table as seen by the player about to choose a card.
func (v *View) ShowTurn(playerName string, gameState game.Snapshot) {
	v.printer.Print(msg.Message.HumanPlayerTurnStarted(playerName))
	v.printer.Print(msg.Message.TurnOrder(gameState.PlayerSequence, gameState.PlayerHandCounts, gameState.CurrentSeat, gameState.Direction))
	v.printer.Printfln("Current card: %s", gameState.LastPlayedCard.Paint())
	v.printer.Print(msg.Message.Hand(gameState.CurrentPlayerHand))
}

func (v *View) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	v.printer.Print(msg.Message.FirstCardPlayed(payload.Card))
}

func (v *View) OnCardPlayed(payload event.CardPlayedPayload) {
	v.printer.Print(msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (v *View) OnColorPicked(payload event.ColorPickedPayload) {
	v.printer.Print(msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (v *View) OnPlayerPassed(payload event.PlayerPassedPayload) {
	if payload.PlayerName == v.humanName && payload.LastPlayedCard != nil {
		v.printer.Print(msg.Message.HumanPlayerHasNoMatchingCardsInHand(payload.PlayerName, payload.LastPlayedCard, payload.Hand))
		return
	}
	v.printer.Print(msg.Message.PlayerPassed(payload.PlayerName))
}

func (v *View) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if payload.PlayerName == v.humanName {
		v.printer.Print(msg.Message.HumanPlayerDrewCards(payload.Cards))
		return
	}
	v.printer.Print(msg.Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
}

func (v *View) OnPlayerSkipped(payload event.PlayerSkippedPayload) {
	v.printer.Print(msg.Message.PlayerTurnSkipped(payload.PlayerName))
}

func (v *View) OnTurnOrderReversed(payload event.TurnOrderReversedPayload) {
	v.printer.Print(msg.Message.TurnOrderReversed(payload.Direction))
}

func (v *View) OnDiscardRecycled(payload event.DiscardRecycledPayload) {
	v.printer.Print(msg.Message.DiscardPileReused(payload.Recycled, payload.DrawPileSize))
}

func (v *View) OnGameWon(payload event.GameWonPayload) {
	v.printer.Print(msg.Message.WinnerFound(payload.PlayerName))
}
