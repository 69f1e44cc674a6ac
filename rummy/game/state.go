package game

import (
	"fmt"

	"github.com/ratel-online/rummy/consts"
	"github.com/ratel-online/rummy/rummy/card"
)

type PlayerState struct {
	Name        string      `json:"name"`
	Avatar      string      `json:"avatar"`
	Hand        []card.Card `json:"hand"`
	RoundScores []int       `json:"roundScores"`
	IsHuman     bool        `json:"isHuman"`
	TotalScore  int         `json:"totalScore"`
}

// EngineState is the plain-data form of an Engine used by snapshots.
// Deck is in stack order (last card drawn first); DiscardPile is bottom to top.
type EngineState struct {
	Player1            PlayerState `json:"player1"`
	Player2            PlayerState `json:"player2"`
	Deck               []card.Card `json:"deck"`
	DiscardPile        []card.Card `json:"discardPile"`
	CurrentRound       int         `json:"currentRound"`
	CurrentPlayerIndex int         `json:"currentPlayerIndex"`
	KnockedPlayerIndex *int        `json:"knockedPlayerIndex"`
	WildRank           card.Rank   `json:"wildRank"`
	GameOver           bool        `json:"gameOver,omitempty"`
}

func (e *Engine) State() EngineState {
	state := EngineState{
		Player1:            playerState(e.players[0]),
		Player2:            playerState(e.players[1]),
		Deck:               e.deck.Cards(),
		DiscardPile:        e.discardPile.Cards(),
		CurrentRound:       e.currentRound,
		CurrentPlayerIndex: e.currentPlayerIndex,
		WildRank:           e.WildRank(),
		GameOver:           e.gameOver,
	}
	if knocked, ok := e.KnockedPlayerIndex(); ok {
		state.KnockedPlayerIndex = &knocked
	}
	return state
}

func playerState(p *Player) PlayerState {
	return PlayerState{
		Name:        p.Name,
		Avatar:      p.Avatar,
		Hand:        p.Cards(),
		RoundScores: p.RoundScores(),
		IsHuman:     p.IsHuman,
		TotalScore:  p.TotalScore(),
	}
}

// RestoreEngine rebuilds an engine from saved state. Totals are recomputed from
// the round history and the wild rank from the round number.
func RestoreEngine(state EngineState, opts ...Option) (*Engine, error) {
	if state.CurrentRound < 1 {
		return nil, fmt.Errorf("%w: round %d", consts.ErrorsSaveMalformed, state.CurrentRound)
	}
	if state.CurrentPlayerIndex < 0 || state.CurrentPlayerIndex >= consts.Players {
		return nil, fmt.Errorf("%w: current player %d", consts.ErrorsSaveMalformed, state.CurrentPlayerIndex)
	}
	if knocked := state.KnockedPlayerIndex; knocked != nil && (*knocked < 0 || *knocked >= consts.Players) {
		return nil, fmt.Errorf("%w: knocked player %d", consts.ErrorsSaveMalformed, *knocked)
	}
	for _, cards := range [][]card.Card{state.Player1.Hand, state.Player2.Hand, state.Deck, state.DiscardPile} {
		for _, c := range cards {
			if !c.Rank.Valid() {
				return nil, fmt.Errorf("%w: card rank %d", consts.ErrorsSaveMalformed, int(c.Rank))
			}
		}
	}

	e := NewEngine(restorePlayer(state.Player1), restorePlayer(state.Player2), opts...)
	e.deck = restoreDeck(state.Deck, e.shuffle)
	for _, c := range state.DiscardPile {
		e.discardPile.Add(c)
	}
	e.currentRound = state.CurrentRound
	e.currentPlayerIndex = state.CurrentPlayerIndex
	if state.KnockedPlayerIndex != nil {
		e.knockedPlayerIndex = *state.KnockedPlayerIndex
	}
	e.gameOver = state.GameOver
	return e, nil
}

func restorePlayer(state PlayerState) *Player {
	player := NewPlayer(state.Name, state.Avatar, state.IsHuman)
	player.Hand().AddCards(state.Hand)
	for _, roundScore := range state.RoundScores {
		player.AddRoundScore(roundScore)
	}
	return player
}
