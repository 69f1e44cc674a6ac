package game

import (
	"context"
	"errors"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/rummy/consts"
)

// Game drives a Session with one controller per seat until the match is over.
type Game struct {
	session     *Session
	controllers [consts.Players]Controller

	// OnChange runs after every applied action, e.g. to autosave.
	OnChange func(session *Session)
	// OnRoundEnd runs once per finished round; returning false pauses the game.
	OnRoundEnd func(result RoundResult) bool
}

func New(session *Session, player1, player2 Controller) *Game {
	return &Game{
		session:     session,
		controllers: [consts.Players]Controller{player1, player2},
	}
}

func (g *Game) Session() *Session {
	return g.session
}

func (g *Game) apply(action Action) (Outcome, error) {
	outcome, err := g.session.Apply(action)
	if err != nil {
		return outcome, err
	}
	if g.OnChange != nil {
		g.OnChange(g.session)
	}
	return outcome, nil
}

// Play runs rounds until the game is over, the context is cancelled,
// OnRoundEnd pauses, or a controller fails.
func (g *Game) Play(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch g.session.Phase {
		case PhaseSetup:
			if _, err := g.apply(StartAction{}); err != nil {
				return err
			}
		case PhaseRoundEnd:
			if g.session.RoundResult != nil && g.OnRoundEnd != nil && !g.OnRoundEnd(*g.session.RoundResult) {
				return nil
			}
			if _, err := g.apply(NextRoundAction{}); err != nil {
				return err
			}
		case PhaseGameOver:
			return nil
		case PhasePlaying:
			if err := g.playTurn(ctx); err != nil {
				return err
			}
		}
	}
}

// playTurn resumes the current turn from wherever the session left it.
func (g *Game) playTurn(ctx context.Context) error {
	controller := g.controllers[g.session.Engine.CurrentPlayerIndex()]

	if !g.session.HasDrawn && !g.session.HasDiscarded {
		fromDiscard, err := controller.ChooseDraw(g.session.View())
		if err != nil {
			return err
		}
		outcome, err := g.apply(DrawAction{FromDiscard: fromDiscard})
		if err != nil {
			return err
		}
		if outcome.RoundResult != nil {
			g.logRound(*outcome.RoundResult)
			return nil
		}
	}

	for g.session.HasDrawn {
		if err := ctx.Err(); err != nil {
			return err
		}
		action, err := controller.ChooseDiscard(g.session.View())
		if err != nil {
			return err
		}
		if _, err = g.apply(action); err != nil {
			if errors.Is(err, consts.ErrorsInvalidIndex) {
				log.Errorf("%s chose an invalid card: %v\n", controller.Name(), err)
				continue
			}
			return err
		}
	}

	knock := false
	if _, already := g.session.Engine.KnockedPlayerIndex(); !already {
		var err error
		if knock, err = controller.ChooseKnock(g.session.View()); err != nil {
			return err
		}
	}
	var outcome Outcome
	var err error
	if knock {
		outcome, err = g.apply(KnockAction{})
	} else {
		outcome, err = g.apply(PassAction{})
	}
	if err != nil {
		return err
	}
	if outcome.RoundResult != nil {
		g.logRound(*outcome.RoundResult)
	}
	return nil
}

func (g *Game) logRound(result RoundResult) {
	log.Infof("round %d (wild %s): %s scored %d (total %d), %s scored %d (total %d)\n",
		result.Round, result.WildRank,
		result.Player1.Name, result.Player1.Score, result.Player1.TotalScore,
		result.Player2.Name, result.Player2.Score, result.Player2.TotalScore)
}
