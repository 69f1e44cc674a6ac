package ui_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/ratel-online/rummy/consts"
	"github.com/ratel-online/rummy/rummy/card"
	"github.com/ratel-online/rummy/rummy/ui"
	"github.com/stretchr/testify/require"
)

func script(t *testing.T, lines ...string) *bytes.Buffer {
	color.NoColor = true
	ui.Delay = 0
	output := &bytes.Buffer{}
	ui.Output = output
	ui.Input = strings.NewReader(strings.Join(lines, "\n") + "\n")
	return output
}

func TestPromptIntegerInRange(t *testing.T) {
	t.Run("retries_until_valid", func(t *testing.T) {
		output := script(t, "abc", "9", "2")
		number, err := ui.PromptIntegerInRange(1, 3, "Pick")
		require.NoError(t, err)
		require.Equal(t, 2, number)
		require.Contains(t, output.String(), "Invalid number input")
		require.Contains(t, output.String(), "Input out of range (minimum: 1, maximum: 3)")
	})

	t.Run("exits_when_input_runs_out", func(t *testing.T) {
		script(t, "abc")
		_, err := ui.PromptIntegerInRange(1, 3, "Pick")
		require.ErrorIs(t, err, consts.ErrorsExit)
	})
}

func TestPromptString(t *testing.T) {
	t.Run("keeps_spaces_and_skips_blank_lines", func(t *testing.T) {
		script(t, "", "  Ada Lovelace ")
		name, err := ui.PromptString("Name?")
		require.NoError(t, err)
		require.Equal(t, "Ada Lovelace", name)
	})

	t.Run("falls_back_on_blank", func(t *testing.T) {
		script(t, "")
		name, err := ui.PromptStringOr("Name?", "Player 1")
		require.NoError(t, err)
		require.Equal(t, "Player 1", name)
	})
}

func TestPromptYesNo(t *testing.T) {
	script(t, "maybe", "y", "NO")
	yes, err := ui.PromptYesNo("Knock?")
	require.NoError(t, err)
	require.True(t, yes)

	yes, err = ui.PromptYesNo("Knock?")
	require.NoError(t, err)
	require.False(t, yes)
}

func TestPromptYesNoWithin(t *testing.T) {
	output := script(t, "y")
	yes, err := ui.PromptYesNoWithin("Knock?", time.Minute)
	require.NoError(t, err)
	require.True(t, yes)
	require.Contains(t, output.String(), "You have 1m0s.")
}

func TestPromptDrawSource(t *testing.T) {
	top := card.MustParse("7♦")

	t.Run("deck_or_pile", func(t *testing.T) {
		script(t, "x", "p", "d")
		fromDiscard, err := ui.PromptDrawSource(&top)
		require.NoError(t, err)
		require.True(t, fromDiscard)

		fromDiscard, err = ui.PromptDrawSource(&top)
		require.NoError(t, err)
		require.False(t, fromDiscard)
	})

	t.Run("empty_pile_uses_the_deck", func(t *testing.T) {
		script(t)
		fromDiscard, err := ui.PromptDrawSource(nil)
		require.NoError(t, err)
		require.False(t, fromDiscard)
	})

	t.Run("quit_leaves_the_game", func(t *testing.T) {
		script(t, "quit")
		_, err := ui.PromptDrawSource(&top)
		require.ErrorIs(t, err, consts.ErrorsExit)
	})
}

func TestPromptCardSelection(t *testing.T) {
	cards := card.MustParseAll("A♠", "5♥", "JOKER")

	t.Run("labels_cards_with_letters", func(t *testing.T) {
		output := script(t, "z", "c")
		index, command, err := ui.PromptCardSelection("Discard:", cards, ui.CommandMove)
		require.NoError(t, err)
		require.Equal(t, 2, index)
		require.Empty(t, command)
		require.Contains(t, output.String(), "A:A♠  B:5♥  C:JOKER")
		require.Contains(t, output.String(), "No card assigned to 'Z'")
	})

	t.Run("returns_commands", func(t *testing.T) {
		script(t, "move")
		index, command, err := ui.PromptCardSelection("Discard:", cards, ui.CommandMove, ui.CommandQuit)
		require.NoError(t, err)
		require.Equal(t, -1, index)
		require.Equal(t, ui.CommandMove, command)
	})
}

func TestPromptSetup(t *testing.T) {
	script(t, "2", "1")
	mode, err := ui.PromptGameMode()
	require.NoError(t, err)
	require.Equal(t, consts.ModePlayerVsPlayer, mode)

	difficulty, err := ui.PromptDifficulty()
	require.NoError(t, err)
	require.Equal(t, consts.DifficultyEasy, difficulty)
}
