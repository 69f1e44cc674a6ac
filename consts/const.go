package consts

import "time"

const (
	Players = 2

	MaxRounds     = 13
	StartingCards = 3
	CardsInDeck   = 54

	KnockWindowEasy = 3 * time.Second
	KnockWindowHard = 1 * time.Second

	MinUsefulnessToDrawDiscard = 3
	ThinkingDelay              = 500 * time.Millisecond

	DefaultPlayerName   = "Player 1"
	DefaultPlayerAvatar = "👤"
	ComputerAvatar      = "🤖"
	Player2Name         = "Player 2"
	Player2Avatar       = "👥"

	SaveKey     = "card_game_save"
	SaveBackend = "file"
	SaveDir     = ".rummy"
)

type GameMode string

const (
	ModePlayerVsComputer GameMode = "pvc"
	ModePlayerVsPlayer   GameMode = "pvp"
)

type Difficulty string

const (
	DifficultyEasy Difficulty = "easy"
	DifficultyHard Difficulty = "hard"
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsInvalidIndex      = NewErr(1, false, "Invalid card index. ")
	ErrorsAlreadyKnocked    = NewErr(1, false, "Someone has already knocked. ")
	ErrorsNotPlaying        = NewErr(1, false, "Round is not in play. ")
	ErrorsAlreadyDrawn      = NewErr(1, false, "Card already drawn this turn. ")
	ErrorsMustDrawFirst     = NewErr(1, false, "Draw a card first. ")
	ErrorsMustDiscardFirst  = NewErr(1, false, "Discard a card first. ")
	ErrorsGameNotOver       = NewErr(1, false, "Game is not over. ")
	ErrorsRoundNotOver      = NewErr(1, false, "Round is not over. ")
	ErrorsInputInvalid      = NewErr(1, false, "Input invalid. ")
	ErrorsUnknownAction     = NewErr(1, false, "Unknown action. ")
	ErrorsUnknownDifficulty = NewErr(1, false, "Unknown difficulty. ")
	ErrorsUnknownMode       = NewErr(1, false, "Unknown game mode. ")
	ErrorsSaveNotFound      = NewErr(2, false, "No saved game. ")
	ErrorsSaveMalformed     = NewErr(2, false, "Saved game is malformed. ")
	ErrorsConfigInvalid     = NewErr(3, true, "Config invalid. ")
	ErrorsExit              = NewErr(1, true, "Exit. ")
)

var (
	GameModes = map[GameMode]string{
		ModePlayerVsComputer: "Player vs Computer",
		ModePlayerVsPlayer:   "Player vs Player",
	}
	Difficulties = map[Difficulty]string{
		DifficultyEasy: "Easy",
		DifficultyHard: "Hard",
	}
)

func ParseGameMode(text string) (GameMode, error) {
	mode := GameMode(text)
	if _, ok := GameModes[mode]; !ok {
		return "", ErrorsUnknownMode
	}
	return mode, nil
}

func ParseDifficulty(text string) (Difficulty, error) {
	difficulty := Difficulty(text)
	if _, ok := Difficulties[difficulty]; !ok {
		return "", ErrorsUnknownDifficulty
	}
	return difficulty, nil
}

// KnockWindow is how long a player may knock after discarding.
func (d Difficulty) KnockWindow() time.Duration {
	if d == DifficultyHard {
		return KnockWindowHard
	}
	return KnockWindowEasy
}
