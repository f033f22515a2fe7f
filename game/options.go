package game

import (
	"time"

	"github.com/madans2984/uno/consts"
	"github.com/madans2984/uno/event"
)

type options struct {
	drawPile    *Pile
	discardPile *Pile
	bus         *event.Bus
	seed        int64
	seeded      bool
	deck        []DeckOption
	handSize    int
	delay       time.Duration
	sleep       func(time.Duration)
	audit       bool
}

type Option func(*options)

func newOptions(opts []Option) options {
	o := options{
		handSize: consts.HandSize,
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.bus == nil {
		o.bus = event.NewBus()
	}
	return o
}

// WithDrawPile plays with pile as the draw pile, without shuffling it first.
func WithDrawPile(pile *Pile) Option {
	return func(o *options) {
		o.drawPile = pile
	}
}

// WithDiscardPile starts from the given discard pile instead of seeding one from the
// draw pile.
func WithDiscardPile(pile *Pile) Option {
	return func(o *options) {
		o.discardPile = pile
	}
}

func WithBus(bus *event.Bus) Option {
	return func(o *options) {
		o.bus = bus
	}
}

// WithSeed makes every shuffle of the game reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

func WithDeckOptions(opts ...DeckOption) Option {
	return func(o *options) {
		o.deck = append(o.deck, opts...)
	}
}

func WithHandSize(size int) Option {
	return func(o *options) {
		if size >= 0 {
			o.handSize = size
		}
	}
}

// WithDelay sets the pause automated players take after playing a card.
func WithDelay(delay time.Duration) Option {
	return func(o *options) {
		o.delay = delay
	}
}

func WithSleeper(sleep func(time.Duration)) Option {
	return func(o *options) {
		if sleep != nil {
			o.sleep = sleep
		}
	}
}

// WithAudit verifies card conservation after every turn.
func WithAudit() Option {
	return func(o *options) {
		o.audit = true
	}
}
