package player

import (
	"github.com/madans2984/uno/game"
)

type basicPlayer struct {
	name string
	role game.Role
}

func (p basicPlayer) Name() string {
	return p.name
}

func (p basicPlayer) Role() game.Role {
	return p.role
}
