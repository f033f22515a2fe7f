package game

import (
	"github.com/madans2984/uno/card/color"
)

type Role int

const (
	Automated Role = iota
	Human
)

func (r Role) String() string {
	if r == Human {
		return "Human"
	}
	return "Automated"
}

// Player decides moves for one seat. Play receives the hand indices that are legal and
// returns one of them; PickColor names the color of a wild card being played. An error
// means the player can no longer answer and ends the game.
type Player interface {
	Name() string
	Role() Role
	Play(legalMoves []int, gameState Snapshot) (int, error)
	PickColor(gameState Snapshot) (color.Color, error)
}
