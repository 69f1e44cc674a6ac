package player

import (
	"time"

	"github.com/ratel-online/rummy/rummy/game"
)

type computerPlayer struct {
	name     string
	strategy Strategy
	delay    time.Duration
}

func NewComputerPlayer(name string, strategy Strategy, delay time.Duration) game.Controller {
	return &computerPlayer{name: name, strategy: strategy, delay: delay}
}

func (p *computerPlayer) Name() string {
	return p.name
}

func (p *computerPlayer) think() {
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
}

func (p *computerPlayer) ChooseDraw(view game.View) (bool, error) {
	p.think()
	return p.strategy.DrawFromDiscard(view), nil
}

func (p *computerPlayer) ChooseDiscard(view game.View) (game.Action, error) {
	p.think()
	return game.DiscardAction{Index: p.strategy.Discard(view)}, nil
}

func (p *computerPlayer) ChooseKnock(view game.View) (bool, error) {
	return p.strategy.Knock(view), nil
}
