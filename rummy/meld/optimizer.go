package meld

import (
	"math"

	"github.com/ratel-online/rummy/rummy/card"
)

const keySpace = int(card.JokerBlack+1) * int(card.King+1)

// usage counts card instances per (suit, rank) identity. It is comparable so it
// can key the visited table.
type usage [keySpace]uint8

func identity(c card.Card) int {
	return int(c.Suit)*int(card.King+1) + int(c.Rank)
}

type need struct {
	key   int
	count uint8
}

// Partition splits a hand into chosen melds and the cards left over.
type Partition struct {
	Melds     []Meld
	Remaining []card.Card
}

type search struct {
	hand       []card.Card
	candidates []Meld
	needs      [][]need
	inHand     usage
	visited    map[usage]int

	bestScore     int
	bestMelds     []Meld
	bestRemaining []card.Card
}

// Optimize selects the non-overlapping subset of candidates that leaves the
// lowest point total. Candidates are only combined with later candidates, and
// the first minimum found wins. A used-count vector already explored from an
// earlier or equal start index is not searched again.
func Optimize(hand []card.Card, candidates []Meld) Partition {
	s := &search{
		hand:       hand,
		candidates: candidates,
		needs:      make([][]need, len(candidates)),
		visited:    make(map[usage]int),
		bestScore:  math.MaxInt,
	}
	for _, c := range hand {
		s.inHand[identity(c)]++
	}
	for i, candidate := range candidates {
		s.needs[i] = needsOf(candidate)
	}

	s.try(usage{}, nil, 0)

	return Partition{Melds: s.bestMelds, Remaining: s.bestRemaining}
}

func needsOf(m Meld) []need {
	counts := make(map[int]uint8)
	order := make([]int, 0, len(m.Cards))
	for _, c := range m.Cards {
		key := identity(c)
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}
	needs := make([]need, 0, len(order))
	for _, key := range order {
		needs = append(needs, need{key: key, count: counts[key]})
	}
	return needs
}

func (s *search) try(used usage, chosen []Meld, start int) {
	if s.bestScore == 0 {
		return
	}
	if previous, ok := s.visited[used]; ok && previous <= start {
		return
	}
	s.visited[used] = start

	remaining := s.remaining(used)
	if score := card.Points(remaining); score < s.bestScore {
		s.bestScore = score
		s.bestMelds = append([]Meld{}, chosen...)
		s.bestRemaining = remaining
	}

	for i := start; i < len(s.candidates); i++ {
		if !s.fits(used, s.needs[i]) {
			continue
		}
		next := used
		for _, n := range s.needs[i] {
			next[n.key] += n.count
		}
		s.try(next, append(chosen, s.candidates[i]), i+1)
	}
}

func (s *search) fits(used usage, needs []need) bool {
	for _, n := range needs {
		if used[n.key]+n.count > s.inHand[n.key] {
			return false
		}
	}
	return true
}

// remaining keeps, per identity, the first instances in hand order beyond those used.
func (s *search) remaining(used usage) []card.Card {
	remaining := make([]card.Card, 0, len(s.hand))
	var kept usage
	for _, c := range s.hand {
		key := identity(c)
		if kept[key]+used[key] < s.inHand[key] {
			remaining = append(remaining, c)
			kept[key]++
		}
	}
	return remaining
}
