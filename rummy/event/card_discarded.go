package event

import "github.com/ratel-online/rummy/rummy/card"

var CardDiscarded = &cardDiscardedEmitter{}

type CardDiscardedPayload struct {
	PlayerName string
	Card       card.Card
}

type CardDiscardedListener interface {
	OnCardDiscarded(CardDiscardedPayload)
}

type cardDiscardedEmitter struct {
	listeners []CardDiscardedListener
}

func (e *cardDiscardedEmitter) AddListener(listener CardDiscardedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardDiscardedEmitter) RemoveListener(listener CardDiscardedListener) {
	for i, registered := range e.listeners {
		if registered == listener {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

func (e *cardDiscardedEmitter) Emit(payload CardDiscardedPayload) {
	for _, listener := range e.listeners {
		listener.OnCardDiscarded(payload)
	}
}
