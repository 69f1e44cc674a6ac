package meld_test

import (
	"testing"

	"github.com/ratel-online/rummy/rummy/card"
	"github.com/ratel-online/rummy/rummy/meld"
	"github.com/stretchr/testify/require"
)

func TestIsValidSet(t *testing.T) {
	scenarios := []struct {
		description string
		cards       []card.Card
		wildRank    card.Rank
		expected    bool
	}{
		{"three_of_a_kind", card.MustParseAll("7♠", "7♥", "7♦"), card.NoWildRank, true},
		{"two_cards_are_too_few", card.MustParseAll("7♠", "7♥"), card.NoWildRank, false},
		{"wild_rank_substitutes", card.MustParseAll("7♠", "7♥", "3♠"), card.Three, true},
		{"four_of_a_kind", card.MustParseAll("J♠", "J♥", "J♦", "J♣"), card.NoWildRank, true},
		{"mixed_ranks", card.MustParseAll("7♠", "7♥", "8♦"), card.NoWildRank, false},
		{"mixed_ranks_with_wild", card.MustParseAll("7♠", "8♥", "JR"), card.NoWildRank, false},
		{"all_wild", card.MustParseAll("JR", "JB", "3♠"), card.Three, true},
		{"two_wilds_only", card.MustParseAll("JR", "JB"), card.Three, false},
		{"joker_fills_set", card.MustParseAll("9♠", "9♥", "JB"), card.NoWildRank, true},
		{"unbounded_wild_count", card.MustParseAll("9♠", "JR", "JB", "3♠", "3♥"), card.Three, true},
		{"wild_rank_card_is_regular_without_wild_rank", card.MustParseAll("7♠", "7♥", "3♠"), card.NoWildRank, false},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, meld.IsValidSet(scenario.cards, scenario.wildRank))
		})
	}
}

func TestIsValidRun(t *testing.T) {
	scenarios := []struct {
		description string
		cards       []card.Card
		wildRank    card.Rank
		expected    bool
	}{
		{"three_consecutive_same_suit", card.MustParseAll("4♥", "5♥", "6♥"), card.NoWildRank, true},
		{"unordered_input", card.MustParseAll("6♥", "4♥", "5♥"), card.NoWildRank, true},
		{"wild_rank_card_fills_gap", card.MustParseAll("4♥", "6♥", "7♥", "5♣"), card.Five, true},
		{"one_wild_for_two_gaps", card.MustParseAll("4♥", "6♥", "8♥", "5♣"), card.Five, false},
		{"mixed_suits", card.MustParseAll("4♥", "5♠", "6♥"), card.NoWildRank, false},
		{"duplicate_rank", card.MustParseAll("4♥", "4♥", "5♥"), card.NoWildRank, false},
		{"gap_without_wild", card.MustParseAll("4♥", "6♥", "7♥"), card.NoWildRank, false},
		{"all_wild_is_not_a_run", card.MustParseAll("JR", "JB", "3♠"), card.Three, false},
		{"wilds_extend_single_regular", card.MustParseAll("3♠", "3♥", "5♦"), card.Three, true},
		{"too_short", card.MustParseAll("4♥", "5♥"), card.NoWildRank, false},
		{"ace_does_not_follow_king", card.MustParseAll("Q♠", "K♠", "A♠"), card.NoWildRank, false},
		{"ace_low_run", card.MustParseAll("A♠", "2♠", "3♠"), card.NoWildRank, true},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, meld.IsValidRun(scenario.cards, scenario.wildRank))
		})
	}
}

func TestIsWildCard(t *testing.T) {
	require.True(t, meld.IsWildCard(card.NewJoker(card.JokerRed), card.Nine))
	require.True(t, meld.IsWildCard(card.New(card.Clubs, card.Nine), card.Nine))
	require.False(t, meld.IsWildCard(card.New(card.Clubs, card.Eight), card.Nine))
}

func TestValidateAll(t *testing.T) {
	melds := []meld.Meld{
		meld.NewSet(card.MustParseAll("7♠", "7♥", "7♦")...),
		meld.NewRun(card.MustParseAll("4♥", "5♥", "6♥")...),
	}
	require.True(t, meld.ValidateAll(melds, card.NoWildRank))

	melds = append(melds, meld.NewRun(card.MustParseAll("7♠", "7♥", "7♦")...))
	require.False(t, meld.ValidateAll(melds, card.NoWildRank))
}

func TestNoDuplicateCards(t *testing.T) {
	require.True(t, meld.NoDuplicateCards([]meld.Meld{
		meld.NewSet(card.MustParseAll("7♠", "7♥", "7♦")...),
		meld.NewRun(card.MustParseAll("4♥", "5♥", "6♥")...),
	}))
	require.False(t, meld.NoDuplicateCards([]meld.Meld{
		meld.NewSet(card.MustParseAll("6♠", "6♥", "6♦")...),
		meld.NewRun(card.MustParseAll("4♥", "5♥", "6♥")...),
	}))
}

// Gap filling and edge extension accept the same candidates: wilds are fungible.
func TestRunWildPlacementIsFungible(t *testing.T) {
	wildRank := card.Five
	gap := card.MustParseAll("4♥", "6♥", "5♣")
	edge := card.MustParseAll("6♥", "7♥", "5♣")
	require.True(t, meld.IsValidRun(gap, wildRank))
	require.True(t, meld.IsValidRun(edge, wildRank))

	withJoker := card.MustParseAll("4♥", "6♥", "JR")
	require.Equal(t, meld.IsValidRun(gap, wildRank), meld.IsValidRun(withJoker, wildRank))
}
