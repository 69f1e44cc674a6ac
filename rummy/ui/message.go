package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/ratel-online/rummy/rummy/card"
	"github.com/ratel-online/rummy/rummy/event"
	"github.com/ratel-online/rummy/rummy/meld"
)

var Message = MessageWriter{}

var (
	titlePainter  = color.New(color.FgHiCyan, color.Bold).SprintfFunc()
	winnerPainter = color.New(color.FgHiGreen, color.Bold).SprintfFunc()
	alertPainter  = color.New(color.FgHiYellow).SprintfFunc()
)

type MessageWriter struct{}

func (m MessageWriter) Welcome() {
	Printfln("WELCOME TO %s", titlePainter("RUMMY"))
	Println("Meld sets and runs, wild cards change every round, lowest total after 13 rounds wins.")
}

func (m MessageWriter) RoundStarted(payload event.RoundStartedPayload) {
	Printlns([]string{
		titlePainter("=== Round %d ===", payload.Round),
		fmt.Sprintf("Wild rank: %s, %d card(s) each, %s starts", payload.WildRank, payload.CardsPerPlayer, payload.StartingPlayer),
	})
	if payload.FirstDiscard != nil {
		Printfln("First discard is %s", payload.FirstDiscard.Paint())
	}
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) {
	Printfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerDrewCard(payload event.CardDrawnPayload) {
	if payload.FromDiscard {
		Printfln("%s took %s from the discard pile!", payload.PlayerName, payload.Card.Paint())
		return
	}
	Printfln("%s drew a card from the deck!", payload.PlayerName)
}

func (m MessageWriter) PlayerDiscardedCard(playerName string, c card.Card) {
	Printfln("%s discarded %s!", playerName, c.Paint())
}

func (m MessageWriter) PlayerKnocked(playerName string) {
	Println(alertPainter("%s knocked! Everyone else gets one last turn.", playerName))
}

func (m MessageWriter) HandScore(score int) {
	Printfln("Your hand currently scores %d", score)
}

func (m MessageWriter) DiscardHint(c card.Card, value int) {
	switch {
	case value > 0:
		Printfln("Taking %s would lower your score by %d", c.Paint(), value)
	case value < 0:
		Printfln("Taking %s would raise your score by %d", c.Paint(), -value)
	}
}

func (m MessageWriter) RoundEnded(payload event.RoundEndedPayload) {
	lines := []string{titlePainter("=== Round %d results (wild %s) ===", payload.Round, payload.WildRank)}
	for _, playerScore := range payload.Scores {
		lines = append(lines, fmt.Sprintf("%s: %d point(s) this round, %d in total",
			playerScore.PlayerName, playerScore.Score, playerScore.TotalScore))
		lines = append(lines, fmt.Sprintf("  melds: %s", formatMelds(playerScore.Combinations)))
		lines = append(lines, fmt.Sprintf("  left over: %s", card.Paint(playerScore.Remaining)))
	}
	Printlns(lines)
}

func formatMelds(melds []meld.Meld) string {
	if len(melds) == 0 {
		return "none"
	}
	formatted := make([]string, 0, len(melds))
	for _, m := range melds {
		formatted = append(formatted, fmt.Sprintf("%s %s", m.Type, card.Paint(m.Cards)))
	}
	return strings.Join(formatted, ", ")
}

func (m MessageWriter) WinnerFound(playerName string, totalScore int) {
	Println(winnerPainter("%s wins with %d point(s)!", playerName, totalScore))
}

func (m MessageWriter) Tie(totalScore int) {
	Println(winnerPainter("It's a tie at %d point(s)!", totalScore))
}

func (m MessageWriter) PassDevice(playerName string) {
	Println(alertPainter("Pass the device to %s.", playerName))
}

func (m MessageWriter) SavedGameFound(savedAt time.Time, round int) {
	Printfln("Found a saved game from %s (round %d).", savedAt.Local().Format("2006-01-02 15:04"), round)
}

func (m MessageWriter) GameSaved() {
	Println("Game saved. See you next time!")
}
