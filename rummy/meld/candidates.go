package meld

import (
	"sort"

	"github.com/ratel-online/rummy/rummy/card"
)

// Candidates lists every valid set and run that can be cut from hand.
// Candidates may overlap and may repeat; the optimizer resolves exclusivity.
func Candidates(hand []card.Card, wildRank card.Rank) []Meld {
	return append(Sets(hand, wildRank), Runs(hand, wildRank)...)
}

// Sets combines, for every non-wild rank present in hand, each subset of that rank's
// cards with each contiguous window of the hand's wilds.
func Sets(hand []card.Card, wildRank card.Rank) []Meld {
	wilds := rankedWilds(hand, wildRank)
	var sets []Meld
	for rank := card.Ace; rank <= card.King; rank++ {
		if rank == wildRank {
			continue
		}
		regular := regularOfRank(hand, rank, wildRank)
		if len(regular) == 0 {
			continue
		}
		for mask := 0; mask < 1<<len(regular); mask++ {
			chosen := subset(regular, mask)
			for numWilds := 0; numWilds <= len(wilds); numWilds++ {
				if len(chosen)+numWilds < MinSize {
					continue
				}
				for wildStart := 0; wildStart+numWilds <= len(wilds); wildStart++ {
					cards := make([]card.Card, 0, len(chosen)+numWilds)
					cards = append(cards, chosen...)
					cards = append(cards, wilds[wildStart:wildStart+numWilds]...)
					if IsValidSet(cards, wildRank) {
						sets = append(sets, NewSet(cards...))
					}
				}
			}
		}
	}
	return sets
}

func subset(cards []card.Card, mask int) []card.Card {
	chosen := make([]card.Card, 0, len(cards))
	for i, c := range cards {
		if mask&(1<<i) != 0 {
			chosen = append(chosen, c)
		}
	}
	return chosen
}

// rankedWilds orders the hand's wilds most valuable first, so the windows
// melds draw from do not depend on hand order.
func rankedWilds(hand []card.Card, wildRank card.Rank) []card.Card {
	wilds := Wilds(hand, wildRank)
	sort.SliceStable(wilds, func(i, j int) bool {
		if wilds[i].Points() != wilds[j].Points() {
			return wilds[i].Points() > wilds[j].Points()
		}
		if wilds[i].Suit != wilds[j].Suit {
			return wilds[i].Suit < wilds[j].Suit
		}
		return wilds[i].Rank < wilds[j].Rank
	})
	return wilds
}

// Runs combines, for every suit, each contiguous span of that suit's sorted
// non-wild cards with each contiguous window of the hand's wilds.
func Runs(hand []card.Card, wildRank card.Rank) []Meld {
	wilds := rankedWilds(hand, wildRank)
	var runs []Meld
	for _, suit := range card.Suits {
		sorted := regularOfSuit(hand, suit, wildRank)
		for start := 0; start < len(sorted); start++ {
			for end := start; end < len(sorted); end++ {
				span := sorted[start : end+1]
				for numWilds := 0; numWilds <= len(wilds); numWilds++ {
					size := len(span) + numWilds
					if size < MinSize || size > MaxRunLength {
						continue
					}
					for wildStart := 0; wildStart+numWilds <= len(wilds); wildStart++ {
						cards := make([]card.Card, 0, size)
						cards = append(cards, span...)
						cards = append(cards, wilds[wildStart:wildStart+numWilds]...)
						if IsValidRun(cards, wildRank) {
							runs = append(runs, NewRun(cards...))
						}
					}
				}
			}
		}
	}
	return runs
}

func regularOfRank(hand []card.Card, rank, wildRank card.Rank) []card.Card {
	var cards []card.Card
	for _, c := range hand {
		if c.Rank == rank && !IsWildCard(c, wildRank) {
			cards = append(cards, c)
		}
	}
	sort.SliceStable(cards, func(i, j int) bool { return cards[i].Suit < cards[j].Suit })
	return cards
}

func regularOfSuit(hand []card.Card, suit card.Suit, wildRank card.Rank) []card.Card {
	var cards []card.Card
	for _, c := range hand {
		if c.Suit == suit && !IsWildCard(c, wildRank) {
			cards = append(cards, c)
		}
	}
	sort.SliceStable(cards, func(i, j int) bool { return cards[i].Rank < cards[j].Rank })
	return cards
}
