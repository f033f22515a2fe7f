package player

import (
	"math/rand"

	"github.com/madans2984/uno/card/color"
	"github.com/madans2984/uno/game"
)

// naivePlayer plays its first legal card and declares a random color.
type naivePlayer struct {
	basicPlayer
	rand *rand.Rand
}

func NewNaivePlayer(name string, seed int64) game.Player {
	return &naivePlayer{
		basicPlayer: basicPlayer{name: name, role: game.Automated},
		rand:        rand.New(rand.NewSource(seed)),
	}
}

func (p *naivePlayer) PickColor(gameState game.Snapshot) (color.Color, error) {
	colors := color.Declarable()
	return colors[p.rand.Intn(len(colors))], nil
}

func (p *naivePlayer) Play(legalMoves []int, gameState game.Snapshot) (int, error) {
	return legalMoves[0], nil
}
