package player

import (
	"sync"
	"time"

	"github.com/ratel-online/rummy/consts"
	"github.com/ratel-online/rummy/rummy/event"
	"github.com/ratel-online/rummy/rummy/game"
	"github.com/ratel-online/rummy/rummy/score"
	"github.com/ratel-online/rummy/rummy/ui"
)

// Only the first human announces table events, so hot-seat games print them once.
var announceOnce sync.Once

type humanPlayer struct {
	name        string
	knockWindow time.Duration
	hotSeat     bool
}

func NewHumanPlayer(name string, knockWindow time.Duration, hotSeat bool) game.Controller {
	player := &humanPlayer{name: name, knockWindow: knockWindow, hotSeat: hotSeat}
	announceOnce.Do(func() {
		event.RoundStarted.AddListener(player)
		event.CardDrawn.AddListener(player)
		event.CardDiscarded.AddListener(player)
		event.PlayerKnocked.AddListener(player)
		event.RoundEnded.AddListener(player)
	})
	return player
}

func (p *humanPlayer) Name() string {
	return p.name
}

func (p *humanPlayer) ChooseDraw(view game.View) (bool, error) {
	if p.hotSeat {
		ui.Message.PassDevice(p.name)
	}
	ui.Message.HumanPlayerTurnStarted(p.name)
	ui.Println(view)
	if view.DiscardTop != nil {
		ui.Message.DiscardHint(*view.DiscardTop, score.EstimateValueOfCard(*view.DiscardTop, view.Hand, view.WildRank))
	}
	return ui.PromptDrawSource(view.DiscardTop)
}

func (p *humanPlayer) ChooseDiscard(view game.View) (game.Action, error) {
	index, command, err := ui.PromptCardSelection("Select a card to discard:", view.Hand, ui.CommandMove, ui.CommandQuit)
	if err != nil {
		return nil, err
	}
	switch command {
	case ui.CommandQuit:
		return nil, consts.ErrorsExit
	case ui.CommandMove:
		return p.promptMove(len(view.Hand))
	}
	return game.DiscardAction{Index: index}, nil
}

func (p *humanPlayer) promptMove(handSize int) (game.Action, error) {
	from, err := ui.PromptIntegerInRange(1, handSize, "Move which position?")
	if err != nil {
		return nil, err
	}
	to, err := ui.PromptIntegerInRange(1, handSize, "To which position?")
	if err != nil {
		return nil, err
	}
	return game.ReorderAction{From: from - 1, To: to - 1}, nil
}

func (p *humanPlayer) ChooseKnock(view game.View) (bool, error) {
	ui.Message.HandScore(score.Calculate(view.Hand, view.WildRank).Score)
	return ui.PromptYesNoWithin("Knock?", p.knockWindow)
}

func (p *humanPlayer) OnRoundStarted(payload event.RoundStartedPayload) {
	ui.Message.RoundStarted(payload)
}

func (p *humanPlayer) OnCardDrawn(payload event.CardDrawnPayload) {
	ui.Message.PlayerDrewCard(payload)
}

func (p *humanPlayer) OnCardDiscarded(payload event.CardDiscardedPayload) {
	ui.Message.PlayerDiscardedCard(payload.PlayerName, payload.Card)
}

func (p *humanPlayer) OnPlayerKnocked(payload event.PlayerKnockedPayload) {
	ui.Message.PlayerKnocked(payload.PlayerName)
}

func (p *humanPlayer) OnRoundEnded(payload event.RoundEndedPayload) {
	ui.Message.RoundEnded(payload)
}
