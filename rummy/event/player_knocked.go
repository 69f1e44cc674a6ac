package event

var PlayerKnocked = &playerKnockedEmitter{}

type PlayerKnockedPayload struct {
	PlayerName string
	Round      int
}

type PlayerKnockedListener interface {
	OnPlayerKnocked(PlayerKnockedPayload)
}

type playerKnockedEmitter struct {
	listeners []PlayerKnockedListener
}

func (e *playerKnockedEmitter) AddListener(listener PlayerKnockedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *playerKnockedEmitter) RemoveListener(listener PlayerKnockedListener) {
	for i, registered := range e.listeners {
		if registered == listener {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

func (e *playerKnockedEmitter) Emit(payload PlayerKnockedPayload) {
	for _, listener := range e.listeners {
		listener.OnPlayerKnocked(payload)
	}
}
