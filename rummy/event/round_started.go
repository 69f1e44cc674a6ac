package event

import "github.com/ratel-online/rummy/rummy/card"

var RoundStarted = &roundStartedEmitter{}

type RoundStartedPayload struct {
	Round          int
	WildRank       card.Rank
	CardsPerPlayer int
	StartingPlayer string
	FirstDiscard   *card.Card
}

type RoundStartedListener interface {
	OnRoundStarted(RoundStartedPayload)
}

type roundStartedEmitter struct {
	listeners []RoundStartedListener
}

func (e *roundStartedEmitter) AddListener(listener RoundStartedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *roundStartedEmitter) RemoveListener(listener RoundStartedListener) {
	for i, registered := range e.listeners {
		if registered == listener {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

func (e *roundStartedEmitter) Emit(payload RoundStartedPayload) {
	for _, listener := range e.listeners {
		listener.OnRoundStarted(payload)
	}
}
