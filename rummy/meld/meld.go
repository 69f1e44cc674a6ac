package meld

import (
	"fmt"

	"github.com/ratel-online/rummy/rummy/card"
)

type Type int

const (
	Set Type = iota
	Run
)

var typeNames = map[Type]string{
	Set: "set",
	Run: "run",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func (t Type) MarshalText() ([]byte, error) {
	name, ok := typeNames[t]
	if !ok {
		return nil, fmt.Errorf("invalid meld type %d", int(t))
	}
	return []byte(name), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	for candidate, name := range typeNames {
		if name == string(text) {
			*t = candidate
			return nil
		}
	}
	return fmt.Errorf("invalid meld type '%s'", text)
}

// Meld is a group of cards claimed to form a set or a run.
type Meld struct {
	Type  Type        `json:"type"`
	Cards []card.Card `json:"cards"`
}

func NewSet(cards ...card.Card) Meld {
	return Meld{Type: Set, Cards: cards}
}

func NewRun(cards ...card.Card) Meld {
	return Meld{Type: Run, Cards: cards}
}

func (m Meld) String() string {
	return fmt.Sprintf("%s%v", m.Type, m.Cards)
}

// Flatten concatenates the cards of every meld.
func Flatten(melds []Meld) []card.Card {
	var cards []card.Card
	for _, m := range melds {
		cards = append(cards, m.Cards...)
	}
	return cards
}
