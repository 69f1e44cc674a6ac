package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/rummy/rummy/card"
)

// View is what a controller sees when it has to make a decision.
type View struct {
	Round         int
	MaxRounds     int
	WildRank      card.Rank
	PlayerName    string
	Hand          []card.Card
	DiscardTop    *card.Card
	DeckSize      int
	OpponentName  string
	OpponentCards int
	KnockedBy     string
	TotalScore    int
	OpponentScore int
}

func (s *Session) View() View {
	engine := s.Engine
	current, other := engine.CurrentPlayer(), engine.OtherPlayer()
	view := View{
		Round:         engine.CurrentRound(),
		MaxRounds:     engine.MaxRounds(),
		WildRank:      engine.WildRank(),
		PlayerName:    current.Name,
		Hand:          current.Cards(),
		DeckSize:      engine.DeckSize(),
		OpponentName:  other.Name,
		OpponentCards: other.Hand().Size(),
		TotalScore:    current.TotalScore(),
		OpponentScore: other.TotalScore(),
	}
	if top, ok := engine.PeekDiscard(); ok {
		view.DiscardTop = &top
	}
	if knocked, ok := engine.KnockedPlayerIndex(); ok {
		view.KnockedBy = engine.Player(knocked).Name
	}
	return view
}

func (v View) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Round %d/%d, wild rank %s", v.Round, v.MaxRounds, v.WildRank))
	if v.DiscardTop != nil {
		lines = append(lines, fmt.Sprintf("Discard pile: %s, deck: %d card(s)", v.DiscardTop.Paint(), v.DeckSize))
	} else {
		lines = append(lines, fmt.Sprintf("Discard pile: empty, deck: %d card(s)", v.DeckSize))
	}
	lines = append(lines, fmt.Sprintf("%s holds %d card(s), total %d", v.OpponentName, v.OpponentCards, v.OpponentScore))
	if v.KnockedBy != "" {
		lines = append(lines, fmt.Sprintf("%s has knocked, this is your last turn!", v.KnockedBy))
	}
	lines = append(lines, fmt.Sprintf("Your hand (total %d): %s", v.TotalScore, card.Paint(v.Hand)))
	return strings.Join(lines, "\n")
}
