package game

import (
	"fmt"

	"github.com/ratel-online/rummy/consts"
	"github.com/ratel-online/rummy/rummy/card"
	"github.com/ratel-online/rummy/rummy/event"
)

type Phase string

const (
	PhaseSetup    Phase = "setup"
	PhasePlaying  Phase = "playing"
	PhaseRoundEnd Phase = "round-end"
	PhaseGameOver Phase = "game-over"
)

func (p Phase) Valid() bool {
	switch p {
	case PhaseSetup, PhasePlaying, PhaseRoundEnd, PhaseGameOver:
		return true
	}
	return false
}

// Session is the application-level state around an Engine: the phase, where
// the current player is within their turn, and the last round result.
// A turn is draw, then discard, then knock or pass.
type Session struct {
	Mode         consts.GameMode
	Difficulty   consts.Difficulty
	PlayerName   string
	PlayerAvatar string

	Phase             Phase
	Engine            *Engine
	SelectedCardIndex *int
	HasDrawn          bool
	HasDiscarded      bool
	RoundResult       *RoundResult
}

// Outcome reports what an applied action produced.
type Outcome struct {
	Card        *card.Card
	RoundResult *RoundResult
}

func NewSession(mode consts.GameMode, difficulty consts.Difficulty, engine *Engine) *Session {
	human := engine.Player(0)
	return &Session{
		Mode:         mode,
		Difficulty:   difficulty,
		PlayerName:   human.Name,
		PlayerAvatar: human.Avatar,
		Phase:        PhaseSetup,
		Engine:       engine,
	}
}

func (s *Session) Apply(action Action) (Outcome, error) {
	switch action := action.(type) {
	case StartAction:
		return s.start()
	case NextRoundAction:
		return s.nextRound()
	case DrawAction:
		return s.draw(action.FromDiscard)
	case DiscardAction:
		return s.discard(action.Index)
	case KnockAction:
		return s.knock()
	case PassAction:
		return s.pass()
	case ReorderAction:
		return Outcome{}, s.reorder(action.From, action.To)
	case SelectAction:
		return Outcome{}, s.selectCard(action.Index)
	default:
		return Outcome{}, consts.ErrorsUnknownAction
	}
}

func (s *Session) start() (Outcome, error) {
	if s.Phase != PhaseSetup {
		return Outcome{}, fmt.Errorf("%w: start in %s", consts.ErrorsNotPlaying, s.Phase)
	}
	s.beginRound()
	return Outcome{}, nil
}

func (s *Session) nextRound() (Outcome, error) {
	if s.Phase != PhaseRoundEnd {
		return Outcome{}, consts.ErrorsRoundNotOver
	}
	s.Engine.NextRound()
	s.beginRound()
	return Outcome{}, nil
}

func (s *Session) beginRound() {
	s.Engine.StartRound()
	s.Phase = PhasePlaying
	s.resetTurn()
	s.RoundResult = nil

	payload := event.RoundStartedPayload{
		Round:          s.Engine.CurrentRound(),
		WildRank:       s.Engine.WildRank(),
		CardsPerPlayer: s.Engine.CardsPerPlayer(),
		StartingPlayer: s.Engine.CurrentPlayer().Name,
	}
	if top, ok := s.Engine.PeekDiscard(); ok {
		payload.FirstDiscard = &top
	}
	event.RoundStarted.Emit(payload)
}

func (s *Session) resetTurn() {
	s.SelectedCardIndex = nil
	s.HasDrawn = false
	s.HasDiscarded = false
}

// draw ends the round at once when neither the deck nor the discard pile has a card.
func (s *Session) draw(fromDiscard bool) (Outcome, error) {
	if s.Phase != PhasePlaying {
		return Outcome{}, consts.ErrorsNotPlaying
	}
	if s.HasDrawn || s.HasDiscarded {
		return Outcome{}, consts.ErrorsAlreadyDrawn
	}
	fromDiscard = fromDiscard && s.Engine.discardPile.Len() > 0
	drawn, ok := s.Engine.DrawCard(fromDiscard)
	if !ok {
		return s.endRound(), nil
	}
	player := s.Engine.CurrentPlayer()
	player.Hand().AddCard(drawn)
	s.HasDrawn = true
	event.CardDrawn.Emit(event.CardDrawnPayload{
		PlayerName:  player.Name,
		Card:        drawn,
		FromDiscard: fromDiscard,
	})
	return Outcome{Card: &drawn}, nil
}

func (s *Session) discard(index int) (Outcome, error) {
	if s.Phase != PhasePlaying {
		return Outcome{}, consts.ErrorsNotPlaying
	}
	if !s.HasDrawn {
		return Outcome{}, consts.ErrorsMustDrawFirst
	}
	player := s.Engine.CurrentPlayer()
	discarded, err := player.Hand().RemoveAt(index)
	if err != nil {
		return Outcome{}, err
	}
	s.Engine.DiscardCard(discarded)
	s.SelectedCardIndex = nil
	s.HasDrawn = false
	s.HasDiscarded = true
	event.CardDiscarded.Emit(event.CardDiscardedPayload{
		PlayerName: player.Name,
		Card:       discarded,
	})
	return Outcome{Card: &discarded}, nil
}

func (s *Session) knock() (Outcome, error) {
	if s.Phase != PhasePlaying {
		return Outcome{}, consts.ErrorsNotPlaying
	}
	if !s.HasDiscarded {
		return Outcome{}, consts.ErrorsMustDiscardFirst
	}
	if err := s.Engine.Knock(s.Engine.CurrentPlayerIndex()); err != nil {
		return Outcome{}, err
	}
	event.PlayerKnocked.Emit(event.PlayerKnockedPayload{
		PlayerName: s.Engine.CurrentPlayer().Name,
		Round:      s.Engine.CurrentRound(),
	})
	return s.finishTurn(), nil
}

func (s *Session) pass() (Outcome, error) {
	if s.Phase != PhasePlaying {
		return Outcome{}, consts.ErrorsNotPlaying
	}
	if !s.HasDiscarded {
		return Outcome{}, consts.ErrorsMustDiscardFirst
	}
	return s.finishTurn(), nil
}

func (s *Session) finishTurn() Outcome {
	s.resetTurn()
	s.Engine.SwitchPlayer()
	if s.Engine.IsRoundOver() {
		return s.endRound()
	}
	return Outcome{}
}

func (s *Session) endRound() Outcome {
	result := s.Engine.EndRound()
	s.RoundResult = &result
	s.resetTurn()
	s.Phase = PhaseRoundEnd
	if s.Engine.IsGameOver() {
		s.Phase = PhaseGameOver
	}

	payload := event.RoundEndedPayload{
		Round:    result.Round,
		WildRank: result.WildRank,
		GameOver: s.Phase == PhaseGameOver,
	}
	for _, player := range result.Players() {
		payload.Scores = append(payload.Scores, event.PlayerScore{
			PlayerName:   player.Name,
			Score:        player.Score,
			TotalScore:   player.TotalScore,
			Combinations: player.Combinations,
			Remaining:    player.Remaining,
		})
	}
	event.RoundEnded.Emit(payload)
	return Outcome{RoundResult: &result}
}

// reorder keeps the selected index pointing at the same card.
func (s *Session) reorder(from, to int) error {
	if s.Phase != PhasePlaying {
		return consts.ErrorsNotPlaying
	}
	if err := s.Engine.CurrentPlayer().Hand().Move(from, to); err != nil {
		return err
	}
	if s.SelectedCardIndex == nil {
		return nil
	}
	selected := *s.SelectedCardIndex
	switch {
	case selected == from:
		selected = to
	case from < selected && to >= selected:
		selected--
	case from > selected && to <= selected:
		selected++
	}
	s.SelectedCardIndex = &selected
	return nil
}

func (s *Session) selectCard(index int) error {
	if index < 0 {
		s.SelectedCardIndex = nil
		return nil
	}
	if index >= s.Engine.CurrentPlayer().Hand().Size() {
		return consts.ErrorsInvalidIndex
	}
	s.SelectedCardIndex = &index
	return nil
}

// Winner is nil until the game is over, and on a tie.
func (s *Session) Winner() (*Player, error) {
	if s.Phase != PhaseGameOver {
		return nil, consts.ErrorsGameNotOver
	}
	return s.Engine.Winner(), nil
}
