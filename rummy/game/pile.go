package game

import (
	"github.com/ratel-online/rummy/rummy/card"
)

// Pile is the discard pile, bottom first.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(c card.Card) {
	p.cards = append(p.cards, c)
}

func (p *Pile) Pop() (card.Card, bool) {
	top, ok := p.Top()
	if ok {
		p.cards = p.cards[:len(p.cards)-1]
	}
	return top, ok
}

func (p *Pile) Top() (card.Card, bool) {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, false
	}
	return p.cards[pileSize-1], true
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Len() int {
	return len(p.cards)
}

func (p *Pile) Clear() {
	p.cards = p.cards[:0]
}
