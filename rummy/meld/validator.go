package meld

import (
	"sort"

	"github.com/ratel-online/rummy/rummy/card"
)

const (
	MinSize = 3
	// MaxRunLength is the number of ranks a run can span (Ace low, no wrap).
	MaxRunLength = int(card.King)
)

func IsWildCard(c card.Card, wildRank card.Rank) bool {
	return c.IsWild(wildRank)
}

// Wilds returns the jokers and wild-rank cards of cards, in order.
func Wilds(cards []card.Card, wildRank card.Rank) []card.Card {
	wilds, _ := partition(cards, wildRank)
	return wilds
}

func partition(cards []card.Card, wildRank card.Rank) (wilds, regular []card.Card) {
	for _, c := range cards {
		if IsWildCard(c, wildRank) {
			wilds = append(wilds, c)
		} else {
			regular = append(regular, c)
		}
	}
	return
}

// IsValidSet reports whether cards are three or more of one rank, wilds standing in freely.
// Three or more wilds with no regular card also form a set.
func IsValidSet(cards []card.Card, wildRank card.Rank) bool {
	if len(cards) < MinSize {
		return false
	}
	wilds, regular := partition(cards, wildRank)
	if len(regular) == 0 {
		return len(wilds) >= MinSize
	}
	for _, c := range regular[1:] {
		if c.Rank != regular[0].Rank {
			return false
		}
	}
	return true
}

// IsValidRun reports whether the regular cards share a suit, have distinct ranks,
// and the internal rank gaps between them can be filled by the wilds.
// It does not check that the run fits inside Ace..King.
func IsValidRun(cards []card.Card, wildRank card.Rank) bool {
	if len(cards) < MinSize {
		return false
	}
	wilds, regular := partition(cards, wildRank)
	if len(regular) == 0 {
		return false
	}
	for _, c := range regular[1:] {
		if c.Suit != regular[0].Suit {
			return false
		}
	}

	sort.Slice(regular, func(i, j int) bool { return regular[i].Rank < regular[j].Rank })
	gaps := 0
	for i := 1; i < len(regular); i++ {
		if regular[i].Rank == regular[i-1].Rank {
			return false
		}
		gaps += int(regular[i].Rank-regular[i-1].Rank) - 1
	}
	return gaps <= len(wilds)
}

func IsValid(m Meld, wildRank card.Rank) bool {
	switch m.Type {
	case Set:
		return IsValidSet(m.Cards, wildRank)
	case Run:
		return IsValidRun(m.Cards, wildRank)
	default:
		return false
	}
}

func ValidateAll(melds []Meld, wildRank card.Rank) bool {
	for _, m := range melds {
		if !IsValid(m, wildRank) {
			return false
		}
	}
	return true
}

// NoDuplicateCards reports whether no card value appears in more than one place across melds.
func NoDuplicateCards(melds []Meld) bool {
	seen := make(map[card.Card]bool)
	for _, m := range melds {
		for _, c := range m.Cards {
			if seen[c] {
				return false
			}
			seen[c] = true
		}
	}
	return true
}
