package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/rummy/config"
	"github.com/ratel-online/rummy/consts"
	"github.com/ratel-online/rummy/rummy/game"
	"github.com/ratel-online/rummy/rummy/player"
	"github.com/ratel-online/rummy/rummy/ui"
	"github.com/ratel-online/rummy/save"
)

var (
	configPath string
	initConfig bool
	newGame    bool
	mode       string
	difficulty string
	name       string
)

func init() {
	flag.StringVar(&configPath, "config", "rummy.yaml", "Path to the YAML config file")
	flag.BoolVar(&initConfig, "init-config", false, "Write the default config to -config and exit")
	flag.BoolVar(&newGame, "new", false, "Ignore any saved game")
	flag.StringVar(&mode, "mode", "", "Game mode (pvc, pvp); asked when empty")
	flag.StringVar(&difficulty, "difficulty", "", "Computer difficulty (easy, hard); asked when empty")
	flag.StringVar(&name, "name", "", "Your player name; asked when empty")
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	flag.Parse()

	if initConfig {
		if err := config.Write(configPath, config.Default()); err != nil {
			log.Error(err)
			os.Exit(1)
		}
		log.Infof("default config written to %s\n", configPath)
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	ui.Delay = cfg.UI.Delay

	ctx := context.Background()
	store, closeStore, err := save.Open(ctx, *cfg)
	if err != nil {
		log.Errorf("open %s save store err: %v, saving in memory instead\n", cfg.Save.Backend, err)
		store = save.NewMemoryStore(cfg.Save.Key)
	}
	defer closeStore()

	if err = run(ctx, *cfg, save.NewManager(store, cfg.Save.Key)); err != nil {
		log.Error(err)
	}
}

func run(ctx context.Context, cfg config.Config, manager *save.Manager) error {
	ui.Message.Welcome()
	opts := []game.Option{
		game.WithMaxRounds(cfg.Rules.MaxRounds),
		game.WithStartingCards(cfg.Rules.StartingCards),
	}

	session, err := resume(ctx, manager, opts)
	if errors.Is(err, consts.ErrorsExit) {
		return nil
	}
	if err != nil {
		return err
	}
	if session == nil {
		if session, err = setup(cfg, opts); err != nil {
			if errors.Is(err, consts.ErrorsExit) {
				return nil
			}
			return err
		}
	}

	first, second, err := player.CreateControllers(session, player.Settings{
		KnockWindow:   cfg.KnockWindowFor(session.Difficulty),
		ThinkingDelay: cfg.AI.ThinkingDelay,
		Tuning: player.Tuning{
			MinUsefulnessToDrawDiscard: cfg.AI.MinUsefulnessToDrawDiscard,
			KnockThreshold:             cfg.AI.KnockThreshold,
		},
	})
	if err != nil {
		return err
	}

	g := game.New(session, first, second)
	g.OnChange = func(session *game.Session) {
		if err := manager.SaveGame(ctx, session); err != nil {
			log.Errorf("autosave err: %v\n", err)
		}
	}
	g.OnRoundEnd = func(result game.RoundResult) bool {
		next, err := ui.PromptYesNo(fmt.Sprintf("Continue to round %d?", result.Round+1))
		return err == nil && next
	}

	err = g.Play(ctx)
	if err != nil && !errors.Is(err, consts.ErrorsExit) {
		return err
	}
	if session.Phase != game.PhaseGameOver {
		if err = manager.SaveGame(ctx, session); err != nil {
			return err
		}
		ui.Message.GameSaved()
		return nil
	}

	announceWinner(session)
	return manager.ClearSave(ctx)
}

// resume offers the saved game, if any. It returns a nil session to start fresh.
func resume(ctx context.Context, manager *save.Manager, opts []game.Option) (*game.Session, error) {
	if newGame || !manager.HasSavedGame(ctx) {
		return nil, nil
	}
	session, savedAt, err := manager.LoadGame(ctx, opts...)
	if errors.Is(err, consts.ErrorsSaveNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if session.Phase == game.PhaseGameOver {
		return nil, manager.ClearSave(ctx)
	}

	ui.Message.SavedGameFound(savedAt, session.Engine.CurrentRound())
	resumed, err := ui.PromptYesNo("Resume it?")
	if err != nil {
		return nil, err
	}
	if !resumed {
		return nil, manager.ClearSave(ctx)
	}
	return session, nil
}

func setup(cfg config.Config, opts []game.Option) (*game.Session, error) {
	gameMode, err := consts.ParseGameMode(mode)
	if err != nil {
		if gameMode, err = ui.PromptGameMode(); err != nil {
			return nil, err
		}
	}

	gameDifficulty := consts.DifficultyEasy
	if gameMode == consts.ModePlayerVsComputer {
		if gameDifficulty, err = consts.ParseDifficulty(difficulty); err != nil {
			if gameDifficulty, err = ui.PromptDifficulty(); err != nil {
				return nil, err
			}
		}
	}

	playerName := name
	if playerName == "" {
		playerName = cfg.UI.PlayerName
	}
	if playerName == "" {
		if playerName, err = ui.PromptStringOr("What's your name?", consts.DefaultPlayerName); err != nil {
			return nil, err
		}
	}
	return player.NewMatch(gameMode, gameDifficulty, playerName, cfg.UI.PlayerAvatar, opts...)
}

func announceWinner(session *game.Session) {
	winner, err := session.Winner()
	if err != nil {
		log.Error(err)
		return
	}
	if winner == nil {
		ui.Message.Tie(session.Engine.Player(0).TotalScore())
		return
	}
	ui.Message.WinnerFound(winner.Name, winner.TotalScore())
}
