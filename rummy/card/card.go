package card

import (
	"fmt"
	"strings"
)

const (
	JokerPoints = 50
	AcePoints   = 15
	FacePoints  = 10
)

// Card is a comparable value; two cards are equal iff suit and rank match.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func New(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

func NewJoker(suit Suit) Card {
	return Card{Suit: suit, Rank: Joker}
}

func (c Card) IsJoker() bool {
	return c.Rank == Joker
}

func (c Card) IsWild(wildRank Rank) bool {
	return c.IsJoker() || c.Rank == wildRank
}

func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

func (c Card) IsBlack() bool {
	return !c.IsRed()
}

// Points is the penalty a card scores when left out of every meld.
// Wild-rank cards score their face value.
func (c Card) Points() int {
	switch {
	case c.IsJoker():
		return JokerPoints
	case c.Rank == Ace:
		return AcePoints
	case c.Rank >= Jack:
		return FacePoints
	default:
		return int(c.Rank)
	}
}

func (c Card) String() string {
	if c.IsJoker() {
		return Joker.String()
	}
	return c.Rank.String() + c.Suit.String()
}

// Paint renders the card with its suit colour for terminal output.
func (c Card) Paint() string {
	return c.Suit.paint(c.String())
}

func Points(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Points()
	}
	return total
}

func Paint(cards []Card) string {
	painted := make([]string, 0, len(cards))
	for _, c := range cards {
		painted = append(painted, c.Paint())
	}
	return "[" + strings.Join(painted, " ") + "]"
}

// Parse reads the String form back, e.g. "10♥", "A♠" or "JOKER".
// A bare JOKER is the red joker.
func Parse(text string) (Card, error) {
	switch text {
	case Joker.String(), "JR":
		return NewJoker(JokerRed), nil
	case "JB":
		return NewJoker(JokerBlack), nil
	}
	for _, suit := range Suits {
		symbol := suit.String()
		if !strings.HasSuffix(text, symbol) {
			continue
		}
		rankText := strings.TrimSuffix(text, symbol)
		for rank := Ace; rank <= King; rank++ {
			if rank.String() == rankText {
				return New(suit, rank), nil
			}
		}
	}
	return Card{}, fmt.Errorf("invalid card '%s'", text)
}

func MustParse(text string) Card {
	c, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return c
}

// MustParseAll is a convenience for tests and fixtures.
func MustParseAll(texts ...string) []Card {
	cards := make([]Card, 0, len(texts))
	for _, text := range texts {
		cards = append(cards, MustParse(text))
	}
	return cards
}
