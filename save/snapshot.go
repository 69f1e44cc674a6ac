package save

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/ratel-online/rummy/consts"
	"github.com/ratel-online/rummy/rummy/game"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Snapshot is everything needed to resume a session. Timestamp is in unix milliseconds.
type Snapshot struct {
	GameMode          consts.GameMode   `json:"gameMode"`
	Difficulty        consts.Difficulty `json:"difficulty"`
	PlayerName        string            `json:"playerName"`
	PlayerAvatar      string            `json:"playerAvatar"`
	GamePhase         game.Phase        `json:"gamePhase"`
	GameEngine        *game.EngineState `json:"gameEngine"`
	SelectedCardIndex *int              `json:"selectedCardIndex"`
	HasDrawn          bool              `json:"hasDrawn"`
	HasDiscarded      bool              `json:"hasDiscarded"`
	RoundResult       *game.RoundResult `json:"roundResult"`
	Timestamp         int64             `json:"timestamp"`
}

func FromSession(session *game.Session, now time.Time) Snapshot {
	engineState := session.Engine.State()
	snapshot := Snapshot{
		GameMode:     session.Mode,
		Difficulty:   session.Difficulty,
		PlayerName:   session.PlayerName,
		PlayerAvatar: session.PlayerAvatar,
		GamePhase:    session.Phase,
		GameEngine:   &engineState,
		HasDrawn:     session.HasDrawn,
		HasDiscarded: session.HasDiscarded,
		RoundResult:  session.RoundResult,
		Timestamp:    now.UnixMilli(),
	}
	if session.SelectedCardIndex != nil {
		selected := *session.SelectedCardIndex
		snapshot.SelectedCardIndex = &selected
	}
	return snapshot
}

func (s Snapshot) SavedAt() time.Time {
	return time.UnixMilli(s.Timestamp)
}

// Restore rebuilds the session. Any inconsistency is reported as consts.ErrorsSaveMalformed.
func (s Snapshot) Restore(opts ...game.Option) (*game.Session, error) {
	if _, ok := consts.GameModes[s.GameMode]; !ok {
		return nil, fmt.Errorf("%w: game mode '%s'", consts.ErrorsSaveMalformed, s.GameMode)
	}
	if _, ok := consts.Difficulties[s.Difficulty]; !ok {
		return nil, fmt.Errorf("%w: difficulty '%s'", consts.ErrorsSaveMalformed, s.Difficulty)
	}
	if !s.GamePhase.Valid() {
		return nil, fmt.Errorf("%w: phase '%s'", consts.ErrorsSaveMalformed, s.GamePhase)
	}
	if s.GameEngine == nil {
		return nil, fmt.Errorf("%w: missing engine", consts.ErrorsSaveMalformed)
	}
	if s.HasDrawn && s.HasDiscarded {
		return nil, fmt.Errorf("%w: drawn and discarded in one turn", consts.ErrorsSaveMalformed)
	}

	engine, err := game.RestoreEngine(*s.GameEngine, opts...)
	if err != nil {
		return nil, err
	}
	session := game.NewSession(s.GameMode, s.Difficulty, engine)
	session.PlayerName = s.PlayerName
	session.PlayerAvatar = s.PlayerAvatar
	session.Phase = s.GamePhase
	session.HasDrawn = s.HasDrawn
	session.HasDiscarded = s.HasDiscarded
	session.RoundResult = s.RoundResult
	if selected := s.SelectedCardIndex; selected != nil && *selected >= 0 && *selected < engine.CurrentPlayer().Hand().Size() {
		index := *selected
		session.SelectedCardIndex = &index
	}
	return session, nil
}

func Encode(snapshot Snapshot) ([]byte, error) {
	return json.Marshal(snapshot)
}

func Decode(data []byte) (Snapshot, error) {
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", consts.ErrorsSaveMalformed, err)
	}
	return snapshot, nil
}
