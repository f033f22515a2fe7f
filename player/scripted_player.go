package player

import (
	"github.com/madans2984/uno/card/color"
	"github.com/madans2984/uno/game"
)

// scriptedPlayer answers from fixed lists of moves and colors. Once a list runs out it
// plays the first legal card and declares Red.
type scriptedPlayer struct {
	basicPlayer
	moves  []int
	colors []color.Color
}

func NewScriptedPlayer(name string, role game.Role, moves []int, colors []color.Color) game.Player {
	return &scriptedPlayer{
		basicPlayer: basicPlayer{name: name, role: role},
		moves:       moves,
		colors:      colors,
	}
}

func (p *scriptedPlayer) Play(legalMoves []int, gameState game.Snapshot) (int, error) {
	if len(p.moves) == 0 {
		return legalMoves[0], nil
	}
	move := p.moves[0]
	p.moves = p.moves[1:]
	return move, nil
}

func (p *scriptedPlayer) PickColor(gameState game.Snapshot) (color.Color, error) {
	if len(p.colors) == 0 {
		return color.Red, nil
	}
	chosen := p.colors[0]
	p.colors = p.colors[1:]
	return chosen, nil
}
