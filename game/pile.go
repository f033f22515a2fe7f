package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/madans2984/uno/card"
	"github.com/madans2984/uno/consts"
)

// Pile is an ordered stack of cards with its top at index 0.
type Pile struct {
	sync.Mutex
	cards []*card.Card
	rand  *rand.Rand
}

func NewPile(cards ...*card.Card) *Pile {
	return NewPileWithRand(rand.New(rand.NewSource(time.Now().UnixNano())), cards...)
}

func NewPileWithRand(r *rand.Rand, cards ...*card.Card) *Pile {
	pile := &Pile{cards: make([]*card.Card, 0, 112), rand: r}
	pile.cards = append(pile.cards, cards...)
	return pile
}

func (p *Pile) Shuffle() {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	p.rand.Shuffle(len(p.cards), func(i, j int) { p.cards[i], p.cards[j] = p.cards[j], p.cards[i] })
}

// Draw removes the first amount cards, in order.
func (p *Pile) Draw(amount int) ([]*card.Card, error) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	if amount < 0 || amount > len(p.cards) {
		return nil, fmt.Errorf("draw %d from pile of %d: %w", amount, len(p.cards), consts.ErrorsInsufficientCards)
	}
	cards := make([]*card.Card, amount)
	copy(cards, p.cards[:amount])
	p.cards = p.cards[amount:]
	return cards, nil
}

func (p *Pile) DrawOne() (*card.Card, error) {
	cards, err := p.Draw(1)
	if err != nil {
		return nil, err
	}
	return cards[0], nil
}

func (p *Pile) PeekTop() (*card.Card, error) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	if len(p.cards) == 0 {
		return nil, fmt.Errorf("peek: %w", consts.ErrorsEmptyPile)
	}
	return p.cards[0], nil
}

func (p *Pile) PushTop(c *card.Card) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	p.cards = append([]*card.Card{c}, p.cards...)
}

// PushBottom appends cards below the current bottom, keeping their order.
func (p *Pile) PushBottom(cards ...*card.Card) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	p.cards = append(p.cards, cards...)
}

// Cards returns the pile contents top first. The slice is a copy; the cards are not.
func (p *Pile) Cards() []*card.Card {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	cards := make([]*card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Len() int {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	return len(p.cards)
}
