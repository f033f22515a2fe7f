package event

type DiscardRecycledPayload struct {
	Recycled     int
	DrawPileSize int
}

type DiscardRecycledListener interface {
	OnDiscardRecycled(DiscardRecycledPayload)
}

type discardRecycledEmitter struct {
	listeners []DiscardRecycledListener
}

func (e *discardRecycledEmitter) AddListener(listener DiscardRecycledListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *discardRecycledEmitter) Emit(payload DiscardRecycledPayload) {
	for _, listener := range e.listeners {
		listener.OnDiscardRecycled(payload)
	}
}
