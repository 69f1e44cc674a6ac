// Package score turns a hand into its round score: the point value of the
// cards left over after the best arrangement of melds.
package score

import (
	"github.com/ratel-online/rummy/rummy/card"
	"github.com/ratel-online/rummy/rummy/meld"
)

type Result struct {
	Score        int         `json:"score"`
	Combinations []meld.Meld `json:"combinations"`
	Remaining    []card.Card `json:"remaining"`
}

// FindBestCombination generates every candidate meld and picks the
// non-overlapping selection with the lowest leftover value.
func FindBestCombination(hand []card.Card, wildRank card.Rank) meld.Partition {
	return meld.Optimize(hand, meld.Candidates(hand, wildRank))
}

func Calculate(hand []card.Card, wildRank card.Rank) Result {
	best := FindBestCombination(hand, wildRank)
	combinations := best.Melds
	if combinations == nil {
		combinations = []meld.Meld{}
	}
	return Result{
		Score:        RemainingScore(best.Remaining),
		Combinations: combinations,
		Remaining:    best.Remaining,
	}
}

// RemainingScore sums leftover cards. Unused wilds score their face value.
func RemainingScore(remaining []card.Card) int {
	return card.Points(remaining)
}

// HandValue sums point values regardless of melds or wilds.
func HandValue(cards []card.Card) int {
	return card.Points(cards)
}

// EstimateValueOfCard is how much adding c would lower the hand's score.
// Negative means the card would cost points.
func EstimateValueOfCard(c card.Card, hand []card.Card, wildRank card.Rank) int {
	with := make([]card.Card, 0, len(hand)+1)
	with = append(with, hand...)
	with = append(with, c)
	return Calculate(hand, wildRank).Score - Calculate(with, wildRank).Score
}
