package player

import (
	"github.com/madans2984/uno/card/color"
	"github.com/madans2984/uno/game"
	"github.com/madans2984/uno/ui"
)

type humanPlayer struct {
	basicPlayer
	prompter *ui.Prompter
	view     *ui.View
}

// NewHumanPlayer asks the person at the terminal for every decision.
func NewHumanPlayer(name string, prompter *ui.Prompter, view *ui.View) game.Player {
	return humanPlayer{
		basicPlayer: basicPlayer{name: name, role: game.Human},
		prompter:    prompter,
		view:        view,
	}
}

func (p humanPlayer) PickColor(gameState game.Snapshot) (color.Color, error) {
	return p.prompter.PromptColor()
}

func (p humanPlayer) Play(legalMoves []int, gameState game.Snapshot) (int, error) {
	if p.view != nil {
		p.view.ShowTurn(p.name, gameState)
	}
	return p.prompter.PromptCardSelection(gameState.CurrentPlayerHand, legalMoves)
}
