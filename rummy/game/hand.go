package game

import (
	"github.com/ratel-online/rummy/consts"
	"github.com/ratel-online/rummy/rummy/card"
)

// Hand keeps cards in the order the player arranged them.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 16)}
}

func (h *Hand) AddCard(c card.Card) {
	h.cards = append(h.cards, c)
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// SetCards replaces the hand, e.g. after the player reorders it.
func (h *Hand) SetCards(cards []card.Card) {
	h.cards = append(h.cards[:0:0], cards...)
}

func (h *Hand) RemoveAt(index int) (card.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, consts.ErrorsInvalidIndex
	}
	removed := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed, nil
}

// Move takes the card at from and inserts it at to, shifting the rest.
func (h *Hand) Move(from, to int) error {
	if from < 0 || from >= len(h.cards) || to < 0 || to >= len(h.cards) {
		return consts.ErrorsInvalidIndex
	}
	moved := h.cards[from]
	h.cards = append(h.cards[:from], h.cards[from+1:]...)
	h.cards = append(h.cards[:to], append([]card.Card{moved}, h.cards[to:]...)...)
	return nil
}

func (h *Hand) IndexOf(c card.Card) int {
	for index, cardInHand := range h.cards {
		if cardInHand == c {
			return index
		}
	}
	return -1
}

func (h *Hand) Contains(c card.Card) bool {
	return h.IndexOf(c) >= 0
}

func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Size() int {
	return len(h.cards)
}
