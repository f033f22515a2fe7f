// Package audit checks that every card of a game sits in exactly one place.
package audit

import (
	"fmt"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/madans2984/uno/card"
	"github.com/madans2984/uno/consts"
)

type Kind int

const (
	InDraw Kind = iota
	InDiscard
	InHand
)

type Location struct {
	Kind Kind
	Seat int
}

func (l Location) String() string {
	switch l.Kind {
	case InDraw:
		return "draw pile"
	case InDiscard:
		return "discard pile"
	default:
		return fmt.Sprintf("hand %d", l.Seat)
	}
}

type entry struct {
	id       uuid.UUID
	card     string
	location Location
}

// Ledger is the result of one census: where each card id was found.
type Ledger struct {
	Locations map[uuid.UUID]Location
	DrawPile  int
	Discard   int
	Hands     []int
}

func (l *Ledger) Total() int {
	total := l.DrawPile + l.Discard
	for _, size := range l.Hands {
		total += size
	}
	return total
}

func (l *Ledger) Locate(id uuid.UUID) (Location, bool) {
	location, ok := l.Locations[id]
	return location, ok
}

// Census records the location of every card and fails when a card is found twice or
// when the number of cards differs from expected.
func Census(expected int, drawPile, discardPile []*card.Card, hands [][]*card.Card) (*Ledger, error) {
	seen := hashmap.New()
	record := func(cards []*card.Card, location Location) error {
		for _, c := range cards {
			key := c.ID().String()
			if previous, ok := seen.Get(key); ok {
				return fmt.Errorf("%s found in %s and %s: %w",
					c, previous.(entry).location, location, consts.ErrorsCardsLost)
			}
			seen.Set(key, entry{id: c.ID(), card: c.String(), location: location})
		}
		return nil
	}

	if err := record(drawPile, Location{Kind: InDraw}); err != nil {
		return nil, err
	}
	if err := record(discardPile, Location{Kind: InDiscard}); err != nil {
		return nil, err
	}
	ledger := &Ledger{
		Locations: make(map[uuid.UUID]Location, expected),
		DrawPile:  len(drawPile),
		Discard:   len(discardPile),
		Hands:     make([]int, len(hands)),
	}
	for seat, hand := range hands {
		if err := record(hand, Location{Kind: InHand, Seat: seat}); err != nil {
			return nil, err
		}
		ledger.Hands[seat] = len(hand)
	}

	seen.Foreach(func(e *hashmap.Entry) {
		found := e.Value().(entry)
		ledger.Locations[found.id] = found.location
	})

	if total := ledger.Total(); total != expected {
		return ledger, fmt.Errorf("counted %d cards, expected %d: %w", total, expected, consts.ErrorsCardsLost)
	}
	return ledger, nil
}
