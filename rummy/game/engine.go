package game

import (
	"github.com/ratel-online/rummy/consts"
	"github.com/ratel-online/rummy/rummy/card"
	"github.com/ratel-online/rummy/rummy/score"
)

const noKnock = -1

// Engine owns the deck, discard pile and both hands for a two-player match.
// It is not safe for concurrent use.
type Engine struct {
	players            [consts.Players]*Player
	deck               *Deck
	discardPile        *Pile
	currentRound       int
	currentPlayerIndex int
	knockedPlayerIndex int
	gameOver           bool

	maxRounds     int
	startingCards int
	shuffle       Shuffler
}

type Option func(*Engine)

func WithShuffler(shuffle Shuffler) Option {
	return func(e *Engine) {
		e.shuffle = shuffle
	}
}

func WithMaxRounds(maxRounds int) Option {
	return func(e *Engine) {
		if maxRounds > 0 {
			e.maxRounds = maxRounds
		}
	}
}

func WithStartingCards(startingCards int) Option {
	return func(e *Engine) {
		if startingCards > 0 {
			e.startingCards = startingCards
		}
	}
}

func NewEngine(player1, player2 *Player, opts ...Option) *Engine {
	e := &Engine{
		players:            [consts.Players]*Player{player1, player2},
		discardPile:        NewPile(),
		currentRound:       1,
		knockedPlayerIndex: noKnock,
		maxRounds:          consts.MaxRounds,
		startingCards:      consts.StartingCards,
		shuffle:            shuffleCards,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.deck = NewDeckWithShuffler(e.shuffle)
	return e
}

func (e *Engine) Player(index int) *Player {
	return e.players[index]
}

func (e *Engine) CurrentPlayer() *Player {
	return e.players[e.currentPlayerIndex]
}

func (e *Engine) OtherPlayer() *Player {
	return e.players[1-e.currentPlayerIndex]
}

func (e *Engine) CurrentPlayerIndex() int {
	return e.currentPlayerIndex
}

func (e *Engine) CurrentRound() int {
	return e.currentRound
}

func (e *Engine) MaxRounds() int {
	return e.maxRounds
}

func (e *Engine) WildRank() card.Rank {
	return card.WildRankForRound(e.currentRound)
}

func (e *Engine) CardsPerPlayer() int {
	return e.startingCards + (e.currentRound - 1)
}

// StartRound reshuffles a fresh deck, deals both hands alternately and flips
// the first discard. Odd rounds open with player 0, even rounds with player 1.
func (e *Engine) StartRound() {
	e.deck.Reset()
	for _, player := range e.players {
		player.Hand().Clear()
	}
	e.discardPile.Clear()
	e.knockedPlayerIndex = noKnock
	e.currentPlayerIndex = (e.currentRound - 1) % consts.Players

	for i := 0; i < e.CardsPerPlayer(); i++ {
		for _, player := range e.players {
			if dealt, ok := e.deck.Draw(); ok {
				player.Hand().AddCard(dealt)
			}
		}
	}

	if flipped, ok := e.deck.Draw(); ok {
		e.discardPile.Add(flipped)
	}
}

// DrawCard takes the top discard when asked and available, otherwise the top
// of the deck. It reports false when neither has a card; the round should end.
func (e *Engine) DrawCard(fromDiscard bool) (card.Card, bool) {
	if fromDiscard {
		if top, ok := e.discardPile.Pop(); ok {
			return top, true
		}
	}
	return e.deck.Draw()
}

func (e *Engine) DiscardCard(c card.Card) {
	e.discardPile.Add(c)
}

func (e *Engine) PeekDiscard() (card.Card, bool) {
	return e.discardPile.Top()
}

// Knock records the knocking player. The knocker's score is not checked.
func (e *Engine) Knock(playerIndex int) error {
	if e.knockedPlayerIndex != noKnock {
		return consts.ErrorsAlreadyKnocked
	}
	if playerIndex < 0 || playerIndex >= consts.Players {
		return consts.ErrorsInvalidIndex
	}
	e.knockedPlayerIndex = playerIndex
	return nil
}

func (e *Engine) KnockedPlayerIndex() (int, bool) {
	return e.knockedPlayerIndex, e.knockedPlayerIndex != noKnock
}

func (e *Engine) SwitchPlayer() {
	e.currentPlayerIndex = 1 - e.currentPlayerIndex
}

// IsRoundOver is true once play has come back around to the knocker.
func (e *Engine) IsRoundOver() bool {
	return e.knockedPlayerIndex != noKnock && e.currentPlayerIndex == e.knockedPlayerIndex
}

type PlayerResult struct {
	score.Result
	Name       string `json:"name"`
	TotalScore int    `json:"totalScore"`
}

type RoundResult struct {
	Round    int          `json:"round"`
	WildRank card.Rank    `json:"wildRank"`
	Player1  PlayerResult `json:"player1"`
	Player2  PlayerResult `json:"player2"`
}

func (r RoundResult) Players() []PlayerResult {
	return []PlayerResult{r.Player1, r.Player2}
}

// EndRound scores both hands and records the scores. The round counter is left
// alone; call NextRound before starting the next round.
func (e *Engine) EndRound() RoundResult {
	wildRank := e.WildRank()
	results := make([]PlayerResult, 0, consts.Players)
	for _, player := range e.players {
		result := score.Calculate(player.Cards(), wildRank)
		player.AddRoundScore(result.Score)
		results = append(results, PlayerResult{
			Result:     result,
			Name:       player.Name,
			TotalScore: player.TotalScore(),
		})
	}
	if e.currentRound >= e.maxRounds {
		e.gameOver = true
	}
	return RoundResult{
		Round:    e.currentRound,
		WildRank: wildRank,
		Player1:  results[0],
		Player2:  results[1],
	}
}

func (e *Engine) NextRound() {
	e.currentRound++
}

func (e *Engine) IsGameOver() bool {
	return e.gameOver
}

// Winner returns the player with the lower total once the game is over.
// It returns nil before the end and on a tie.
func (e *Engine) Winner() *Player {
	if !e.gameOver {
		return nil
	}
	first, second := e.players[0].TotalScore(), e.players[1].TotalScore()
	switch {
	case first < second:
		return e.players[0]
	case second < first:
		return e.players[1]
	default:
		return nil
	}
}

// Reset starts a new match with the same players.
func (e *Engine) Reset() {
	for _, player := range e.players {
		player.Reset()
	}
	e.currentRound = 1
	e.currentPlayerIndex = 0
	e.knockedPlayerIndex = noKnock
	e.gameOver = false
	e.discardPile.Clear()
	e.deck.Reset()
}

func (e *Engine) Deck() []card.Card {
	return e.deck.Cards()
}

func (e *Engine) DeckSize() int {
	return e.deck.Len()
}

func (e *Engine) DiscardPile() []card.Card {
	return e.discardPile.Cards()
}

type Summary struct {
	CurrentRound   int
	CurrentPlayer  string
	WildRank       card.Rank
	DiscardPileTop *card.Card
	DeckSize       int
	KnockedPlayer  string
	GameOver       bool
	Player1Score   int
	Player2Score   int
}

func (e *Engine) Summary() Summary {
	summary := Summary{
		CurrentRound:  e.currentRound,
		CurrentPlayer: e.CurrentPlayer().Name,
		WildRank:      e.WildRank(),
		DeckSize:      e.deck.Len(),
		GameOver:      e.gameOver,
		Player1Score:  e.players[0].TotalScore(),
		Player2Score:  e.players[1].TotalScore(),
	}
	if top, ok := e.PeekDiscard(); ok {
		summary.DiscardPileTop = &top
	}
	if knocked, ok := e.KnockedPlayerIndex(); ok {
		summary.KnockedPlayer = e.players[knocked].Name
	}
	return summary
}
