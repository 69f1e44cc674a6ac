package card

import "strconv"

type Rank int

const (
	Joker Rank = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// NoWildRank makes only real jokers wild.
const NoWildRank = Joker

func (r Rank) Valid() bool {
	return r >= Joker && r <= King
}

func (r Rank) String() string {
	switch r {
	case Joker:
		return "JOKER"
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(int(r))
	}
}

// WildRankForRound maps a 1-based round number onto the wild rank:
// round 1 is 3, round 11 is King, round 12 wraps to Ace.
func WildRankForRound(round int) Rank {
	wildRank := round + 2
	for wildRank > int(King) {
		wildRank -= int(King)
	}
	return Rank(wildRank)
}
