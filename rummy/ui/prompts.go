package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ratel-online/rummy/consts"
	"github.com/ratel-online/rummy/rummy/card"
	"github.com/spf13/cast"
)

// Input is read one line at a time; replace it to script the prompts.
var Input io.Reader = os.Stdin

var (
	scanner      *bufio.Scanner
	scannedInput io.Reader
)

const (
	CommandMove = "MOVE"
	CommandQuit = "QUIT"
)

// readLine returns consts.ErrorsExit once input is exhausted.
func readLine() (string, error) {
	if scanner == nil || scannedInput != Input {
		scanner = bufio.NewScanner(Input)
		scannedInput = Input
	}
	if !scanner.Scan() {
		return "", consts.ErrorsExit
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func PromptString(message string) (string, error) {
	for {
		Println(message)
		input, err := readLine()
		if err != nil {
			return "", err
		}
		if input == "" {
			Println("Invalid text input")
			continue
		}
		return input, nil
	}
}

// PromptStringOr falls back to def when the line is left empty.
func PromptStringOr(message, def string) (string, error) {
	Println(message)
	input, err := readLine()
	if err != nil {
		return "", err
	}
	if input == "" {
		return def, nil
	}
	return input, nil
}

func promptUppercaseString(message string) (string, error) {
	input, err := PromptString(message)
	return strings.ToUpper(input), err
}

func promptInteger(message string) (int, error) {
	for {
		input, err := PromptString(message)
		if err != nil {
			return 0, err
		}
		number, err := cast.ToIntE(input)
		if err != nil {
			Println("Invalid number input")
			continue
		}
		return number, nil
	}
}

func PromptIntegerInRange(minimum int, maximum int, message string) (int, error) {
	for {
		input, err := promptInteger(message)
		if err != nil {
			return 0, err
		}
		if input < minimum || input > maximum {
			Printfln("Input out of range (minimum: %d, maximum: %d)", minimum, maximum)
			continue
		}
		return input, nil
	}
}

func PromptYesNo(message string) (bool, error) {
	for {
		input, err := promptUppercaseString(message + " (Y/N)")
		if err != nil {
			return false, err
		}
		switch input {
		case "Y", "YES":
			return true, nil
		case "N", "NO":
			return false, nil
		}
		Printfln("Please answer Y or N")
	}
}

// PromptYesNoWithin treats a yes given after the window has closed as a no.
func PromptYesNoWithin(message string, window time.Duration) (bool, error) {
	started := time.Now()
	yes, err := PromptYesNo(fmt.Sprintf("%s You have %s.", message, window))
	if err != nil || !yes {
		return false, err
	}
	if window > 0 && time.Since(started) > window {
		Println("Too late!")
		return false, nil
	}
	return true, nil
}

// PromptDrawSource reports true for the discard pile.
func PromptDrawSource(discardTop *card.Card) (bool, error) {
	if discardTop == nil {
		Println("The discard pile is empty, drawing from the deck.")
		return false, nil
	}
	message := fmt.Sprintf("Draw from the (D)eck or take %s from the (P)ile? (%s to save and leave)", discardTop.Paint(), CommandQuit)
	for {
		input, err := promptUppercaseString(message)
		if err != nil {
			return false, err
		}
		switch input {
		case "D":
			return false, nil
		case "P":
			return true, nil
		case CommandQuit:
			return false, consts.ErrorsExit
		}
		Printfln("Unknown choice '%s'", input)
	}
}

// cardLabel names hand positions A, B, C. A full hand in the last round stays within the alphabet.
func cardLabel(index int) string {
	return string(rune('A' + index))
}

// PromptCardSelection returns the chosen index, or -1 with the command typed instead.
func PromptCardSelection(message string, cards []card.Card, commands ...string) (int, string, error) {
	labels := make(map[string]int, len(cards))
	options := make([]string, 0, len(cards))
	for index, c := range cards {
		label := cardLabel(index)
		labels[label] = index
		options = append(options, fmt.Sprintf("%s:%s", label, c.Paint()))
	}

	lines := []string{message, strings.Join(options, "  ")}
	if len(commands) > 0 {
		lines = append(lines, fmt.Sprintf("or enter %s", strings.Join(commands, ", ")))
	}
	selectionMessage := strings.Join(lines, "\n")

	for {
		selected, err := promptUppercaseString(selectionMessage)
		if err != nil {
			return 0, "", err
		}
		for _, command := range commands {
			if selected == command {
				return -1, command, nil
			}
		}
		index, found := labels[selected]
		if !found {
			Printfln("No card assigned to '%s'", selected)
			continue
		}
		return index, "", nil
	}
}

func PromptGameMode() (consts.GameMode, error) {
	message := fmt.Sprintf("Select a mode: 1 (%s) or 2 (%s)",
		consts.GameModes[consts.ModePlayerVsComputer], consts.GameModes[consts.ModePlayerVsPlayer])
	choice, err := PromptIntegerInRange(1, 2, message)
	if err != nil {
		return "", err
	}
	if choice == 2 {
		return consts.ModePlayerVsPlayer, nil
	}
	return consts.ModePlayerVsComputer, nil
}

func PromptDifficulty() (consts.Difficulty, error) {
	message := fmt.Sprintf("Select a difficulty: 1 (%s) or 2 (%s)",
		consts.Difficulties[consts.DifficultyEasy], consts.Difficulties[consts.DifficultyHard])
	choice, err := PromptIntegerInRange(1, 2, message)
	if err != nil {
		return "", err
	}
	if choice == 2 {
		return consts.DifficultyHard, nil
	}
	return consts.DifficultyEasy, nil
}
