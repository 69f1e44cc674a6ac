package event

import "github.com/ratel-online/rummy/rummy/card"

var CardDrawn = &cardDrawnEmitter{}

type CardDrawnPayload struct {
	PlayerName  string
	Card        card.Card
	FromDiscard bool
}

type CardDrawnListener interface {
	OnCardDrawn(CardDrawnPayload)
}

type cardDrawnEmitter struct {
	listeners []CardDrawnListener
}

func (e *cardDrawnEmitter) AddListener(listener CardDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardDrawnEmitter) RemoveListener(listener CardDrawnListener) {
	for i, registered := range e.listeners {
		if registered == listener {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

func (e *cardDrawnEmitter) Emit(payload CardDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnCardDrawn(payload)
	}
}
