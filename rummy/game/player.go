package game

import "github.com/ratel-online/rummy/rummy/card"

// Player is a seat at the table: identity, hand and score history.
type Player struct {
	Name    string
	Avatar  string
	IsHuman bool

	hand        *Hand
	roundScores []int
	totalScore  int
}

func NewPlayer(name, avatar string, isHuman bool) *Player {
	return &Player{
		Name:    name,
		Avatar:  avatar,
		IsHuman: isHuman,
		hand:    NewHand(),
	}
}

func (p *Player) Hand() *Hand {
	return p.hand
}

func (p *Player) Cards() []card.Card {
	return p.hand.Cards()
}

func (p *Player) AddRoundScore(score int) {
	p.roundScores = append(p.roundScores, score)
	p.totalScore += score
}

func (p *Player) TotalScore() int {
	return p.totalScore
}

func (p *Player) RoundScores() []int {
	return append([]int{}, p.roundScores...)
}

func (p *Player) Reset() {
	p.hand.Clear()
	p.roundScores = nil
	p.totalScore = 0
}
