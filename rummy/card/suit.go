package card

import (
	"fmt"

	"github.com/fatih/color"
)

type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
	JokerRed
	JokerBlack
)

// Suits lists the four regular suits in deck order.
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

var suitSymbols = map[Suit]string{
	Spades:     "♠",
	Hearts:     "♥",
	Diamonds:   "♦",
	Clubs:      "♣",
	JokerRed:   "JR",
	JokerBlack: "JB",
}

var (
	redPainter   = color.New(color.FgHiRed).SprintfFunc()
	blackPainter = color.New(color.FgHiWhite).SprintfFunc()
	jokerPainter = color.New(color.FgHiMagenta).SprintfFunc()
)

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds || s == JokerRed
}

func (s Suit) paint(text string) string {
	switch s {
	case JokerRed, JokerBlack:
		return jokerPainter(text)
	case Hearts, Diamonds:
		return redPainter(text)
	default:
		return blackPainter(text)
	}
}

func (s Suit) MarshalText() ([]byte, error) {
	symbol, ok := suitSymbols[s]
	if !ok {
		return nil, fmt.Errorf("invalid suit %d", int(s))
	}
	return []byte(symbol), nil
}

func (s *Suit) UnmarshalText(text []byte) error {
	suit, err := SuitBySymbol(string(text))
	if err != nil {
		return err
	}
	*s = suit
	return nil
}

func SuitBySymbol(symbol string) (Suit, error) {
	for suit, candidate := range suitSymbols {
		if candidate == symbol {
			return suit, nil
		}
	}
	return 0, fmt.Errorf("invalid suit '%s'", symbol)
}
