package game

import (
	"math/rand"

	"github.com/ratel-online/rummy/rummy/card"
)

// Shuffler reorders cards in place.
type Shuffler func(cards []card.Card)

func RandomShuffler(rng *rand.Rand) Shuffler {
	return func(cards []card.Card) {
		rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	}
}

func shuffleCards(cards []card.Card) {
	rand.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

// Deck is a stack: cards are drawn from the end of the slice.
type Deck struct {
	cards   []card.Card
	shuffle Shuffler
}

func NewDeck() *Deck {
	return NewDeckWithShuffler(shuffleCards)
}

func NewDeckWithShuffler(shuffle Shuffler) *Deck {
	deck := &Deck{shuffle: shuffle}
	deck.Reset()
	return deck
}

func restoreDeck(cards []card.Card, shuffle Shuffler) *Deck {
	return &Deck{cards: append([]card.Card{}, cards...), shuffle: shuffle}
}

// StandardCards returns the 52 regular cards followed by the red and black jokers.
func StandardCards() []card.Card {
	cards := make([]card.Card, 0, 54)
	for _, suit := range card.Suits {
		for rank := card.Ace; rank <= card.King; rank++ {
			cards = append(cards, card.New(suit, rank))
		}
	}
	return append(cards, card.NewJoker(card.JokerRed), card.NewJoker(card.JokerBlack))
}

// Reset rebuilds the full deck and shuffles it.
func (d *Deck) Reset() {
	d.cards = StandardCards()
	d.shuffle(d.cards)
}

func (d *Deck) Draw() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, true
}

func (d *Deck) Peek() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	return d.cards[len(d.cards)-1], true
}

func (d *Deck) HasCards() bool {
	return len(d.cards) > 0
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy in stack order; the last card is drawn first.
func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}
