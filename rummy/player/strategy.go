package player

import (
	"math"

	"github.com/ratel-online/rummy/consts"
	"github.com/ratel-online/rummy/rummy/card"
	"github.com/ratel-online/rummy/rummy/game"
	"github.com/ratel-online/rummy/rummy/score"
)

// Strategy decides a computer player's moves.
type Strategy interface {
	DrawFromDiscard(view game.View) bool
	Discard(view game.View) int
	Knock(view game.View) bool
}

type Tuning struct {
	// MinUsefulnessToDrawDiscard is the usefulness the top discard must exceed to be taken.
	MinUsefulnessToDrawDiscard float64
	// KnockThreshold is the highest hand score a computer knocks with.
	KnockThreshold int
}

var DefaultTuning = Tuning{
	MinUsefulnessToDrawDiscard: consts.MinUsefulnessToDrawDiscard,
	KnockThreshold:             0,
}

func NewStrategy(difficulty consts.Difficulty, tuning Tuning) (Strategy, error) {
	switch difficulty {
	case consts.DifficultyEasy:
		return &easyStrategy{tuning: tuning}, nil
	case consts.DifficultyHard:
		return &hardStrategy{tuning: tuning}, nil
	default:
		return nil, consts.ErrorsUnknownDifficulty
	}
}

// easyStrategy plays on how well each card fits the rest of the hand.
type easyStrategy struct {
	tuning Tuning
}

func (s *easyStrategy) DrawFromDiscard(view game.View) bool {
	if view.DiscardTop == nil {
		return false
	}
	return Usefulness(*view.DiscardTop, view.Hand, view.WildRank) > s.tuning.MinUsefulnessToDrawDiscard
}

func (s *easyStrategy) Discard(view game.View) int {
	return LeastUseful(view.Hand, view.WildRank)
}

func (s *easyStrategy) Knock(view game.View) bool {
	return score.Calculate(view.Hand, view.WildRank).Score <= s.tuning.KnockThreshold
}

// hardStrategy searches the scorer directly.
type hardStrategy struct {
	tuning Tuning
}

// DrawFromDiscard takes the discard only if keeping it can leave a lower score.
func (s *hardStrategy) DrawFromDiscard(view game.View) bool {
	if view.DiscardTop == nil {
		return false
	}
	current := score.Calculate(view.Hand, view.WildRank).Score
	withDiscard := append(append(make([]card.Card, 0, len(view.Hand)+1), view.Hand...), *view.DiscardTop)
	_, best := BestDiscard(withDiscard, view.WildRank)
	return best < current
}

func (s *hardStrategy) Discard(view game.View) int {
	index, _ := BestDiscard(view.Hand, view.WildRank)
	return index
}

func (s *hardStrategy) Knock(view game.View) bool {
	return score.Calculate(view.Hand, view.WildRank).Score <= s.tuning.KnockThreshold
}

// Usefulness rates how well c fits with hand: wilds are worth 10, partners
// of the same rank or nearby cards of the same suit add to it, and cheaper
// cards are slightly preferred.
func Usefulness(c card.Card, hand []card.Card, wildRank card.Rank) float64 {
	if c.IsWild(wildRank) {
		return 10
	}
	usefulness := 0.0

	sameRank := 0
	for _, other := range hand {
		if other.Rank == c.Rank || other.IsWild(wildRank) {
			sameRank++
		}
	}
	if sameRank >= 2 {
		usefulness += float64(sameRank * 2)
	}

	for _, other := range hand {
		if other.Suit != c.Suit {
			continue
		}
		diff := int(other.Rank) - int(c.Rank)
		if diff < 0 {
			diff = -diff
		}
		if diff > 0 && diff <= 2 {
			usefulness += float64(3 - diff)
		}
	}

	return usefulness + float64(15-c.Points())/10
}

// LeastUseful returns the index of the card that fits the rest of the hand worst.
// Ties go to the first such card.
func LeastUseful(hand []card.Card, wildRank card.Rank) int {
	worstIndex, worstValue := 0, math.Inf(1)
	rest := make([]card.Card, 0, len(hand))
	for index, c := range hand {
		rest = append(rest[:0], hand[:index]...)
		rest = append(rest, hand[index+1:]...)
		if usefulness := Usefulness(c, rest, wildRank); usefulness < worstValue {
			worstIndex, worstValue = index, usefulness
		}
	}
	return worstIndex
}

// BestDiscard returns the index whose removal leaves the lowest score, and that score.
// Ties go to the first such card.
func BestDiscard(hand []card.Card, wildRank card.Rank) (int, int) {
	bestIndex, bestScore := 0, math.MaxInt
	rest := make([]card.Card, 0, len(hand))
	for index := range hand {
		rest = append(rest[:0], hand[:index]...)
		rest = append(rest, hand[index+1:]...)
		if result := score.Calculate(rest, wildRank).Score; result < bestScore {
			bestIndex, bestScore = index, result
		}
	}
	if bestScore == math.MaxInt {
		bestScore = 0
	}
	return bestIndex, bestScore
}
