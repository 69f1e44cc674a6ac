package player

import (
	"time"

	"github.com/ratel-online/core/util/rand"
	"github.com/ratel-online/rummy/consts"
	"github.com/ratel-online/rummy/rummy/game"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

type Settings struct {
	// KnockWindow defaults to the difficulty's window when zero.
	KnockWindow   time.Duration
	ThinkingDelay time.Duration
	Tuning        Tuning
}

// NewMatch sets up a session in the setup phase. Against the computer the
// second seat gets a random bot name.
func NewMatch(mode consts.GameMode, difficulty consts.Difficulty, name, avatar string, opts ...game.Option) (*game.Session, error) {
	if _, ok := consts.GameModes[mode]; !ok {
		return nil, consts.ErrorsUnknownMode
	}
	if _, ok := consts.Difficulties[difficulty]; !ok {
		return nil, consts.ErrorsUnknownDifficulty
	}
	if name == "" {
		name = consts.DefaultPlayerName
	}
	if avatar == "" {
		avatar = consts.DefaultPlayerAvatar
	}

	opponent := game.NewPlayer(consts.Player2Name, consts.Player2Avatar, true)
	if mode == consts.ModePlayerVsComputer {
		opponent = game.NewPlayer(botNames[rand.Intn(len(botNames))], consts.ComputerAvatar, false)
	}
	engine := game.NewEngine(game.NewPlayer(name, avatar, true), opponent, opts...)
	return game.NewSession(mode, difficulty, engine), nil
}

// CreateControllers seats a controller for each player of the session,
// which may have been restored from a save.
func CreateControllers(session *game.Session, settings Settings) (game.Controller, game.Controller, error) {
	knockWindow := settings.KnockWindow
	if knockWindow <= 0 {
		knockWindow = session.Difficulty.KnockWindow()
	}
	hotSeat := session.Mode == consts.ModePlayerVsPlayer

	controllers := make([]game.Controller, 0, consts.Players)
	for index := 0; index < consts.Players; index++ {
		seat := session.Engine.Player(index)
		if seat.IsHuman {
			controllers = append(controllers, NewHumanPlayer(seat.Name, knockWindow, hotSeat))
			continue
		}
		strategy, err := NewStrategy(session.Difficulty, settings.Tuning)
		if err != nil {
			return nil, nil, err
		}
		controllers = append(controllers, NewComputerPlayer(seat.Name, strategy, settings.ThinkingDelay))
	}
	return controllers[0], controllers[1], nil
}
