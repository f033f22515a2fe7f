package event

// Bus groups the emitters of one game so that listeners of different games never mix.
type Bus struct {
	FirstCardPlayed   *firstCardPlayedEmitter
	CardPlayed        *cardPlayedEmitter
	ColorPicked       *colorPickedEmitter
	PlayerPassed      *playerPassedEmitter
	CardsDrawn        *cardsDrawnEmitter
	PlayerSkipped     *playerSkippedEmitter
	TurnOrderReversed *turnOrderReversedEmitter
	DiscardRecycled   *discardRecycledEmitter
	GameWon           *gameWonEmitter
}

func NewBus() *Bus {
	return &Bus{
		FirstCardPlayed:   &firstCardPlayedEmitter{},
		CardPlayed:        &cardPlayedEmitter{},
		ColorPicked:       &colorPickedEmitter{},
		PlayerPassed:      &playerPassedEmitter{},
		CardsDrawn:        &cardsDrawnEmitter{},
		PlayerSkipped:     &playerSkippedEmitter{},
		TurnOrderReversed: &turnOrderReversedEmitter{},
		DiscardRecycled:   &discardRecycledEmitter{},
		GameWon:           &gameWonEmitter{},
	}
}

// Subscribe registers listener with every emitter whose listener interface it implements.
func (b *Bus) Subscribe(listener interface{}) {
	if l, ok := listener.(FirstCardPlayedListener); ok {
		b.FirstCardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(ColorPickedListener); ok {
		b.ColorPicked.AddListener(l)
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		b.PlayerPassed.AddListener(l)
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		b.CardsDrawn.AddListener(l)
	}
	if l, ok := listener.(PlayerSkippedListener); ok {
		b.PlayerSkipped.AddListener(l)
	}
	if l, ok := listener.(TurnOrderReversedListener); ok {
		b.TurnOrderReversed.AddListener(l)
	}
	if l, ok := listener.(DiscardRecycledListener); ok {
		b.DiscardRecycled.AddListener(l)
	}
	if l, ok := listener.(GameWonListener); ok {
		b.GameWon.AddListener(l)
	}
}
