package event

import "github.com/madans2984/uno/card"

// PlayerPassedPayload is emitted when a player had no legal card and drew one instead.
// LastPlayedCard and Hand are clones taken before the draw.
type PlayerPassedPayload struct {
	PlayerName     string
	LastPlayedCard *card.Card
	Hand           []*card.Card
}

type PlayerPassedListener interface {
	OnPlayerPassed(PlayerPassedPayload)
}

type playerPassedEmitter struct {
	listeners []PlayerPassedListener
}

func (e *playerPassedEmitter) AddListener(listener PlayerPassedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *playerPassedEmitter) Emit(payload PlayerPassedPayload) {
	for _, listener := range e.listeners {
		listener.OnPlayerPassed(payload)
	}
}
