package event

import (
	"github.com/ratel-online/rummy/rummy/card"
	"github.com/ratel-online/rummy/rummy/meld"
)

var RoundEnded = &roundEndedEmitter{}

type PlayerScore struct {
	PlayerName   string
	Score        int
	TotalScore   int
	Combinations []meld.Meld
	Remaining    []card.Card
}

type RoundEndedPayload struct {
	Round    int
	WildRank card.Rank
	Scores   []PlayerScore
	GameOver bool
}

type RoundEndedListener interface {
	OnRoundEnded(RoundEndedPayload)
}

type roundEndedEmitter struct {
	listeners []RoundEndedListener
}

func (e *roundEndedEmitter) AddListener(listener RoundEndedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *roundEndedEmitter) RemoveListener(listener RoundEndedListener) {
	for i, registered := range e.listeners {
		if registered == listener {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

func (e *roundEndedEmitter) Emit(payload RoundEndedPayload) {
	for _, listener := range e.listeners {
		listener.OnRoundEnded(payload)
	}
}
