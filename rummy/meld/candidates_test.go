package meld_test

import (
	"testing"

	"github.com/ratel-online/rummy/rummy/card"
	"github.com/ratel-online/rummy/rummy/meld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidates(t *testing.T) {
	t.Run("three_of_a_kind_yields_one_set", func(t *testing.T) {
		candidates := meld.Candidates(card.MustParseAll("7♠", "7♥", "7♦"), card.NoWildRank)
		require.Equal(t, []meld.Meld{meld.NewSet(card.MustParseAll("7♠", "7♥", "7♦")...)}, candidates)
	})

	t.Run("four_card_run_yields_every_span_of_three_or_more", func(t *testing.T) {
		candidates := meld.Candidates(card.MustParseAll("6♥", "4♥", "7♥", "5♥"), card.NoWildRank)
		require.ElementsMatch(t, []meld.Meld{
			meld.NewRun(card.MustParseAll("4♥", "5♥", "6♥")...),
			meld.NewRun(card.MustParseAll("4♥", "5♥", "6♥", "7♥")...),
			meld.NewRun(card.MustParseAll("5♥", "6♥", "7♥")...),
		}, candidates)
	})

	t.Run("joker_completes_pair", func(t *testing.T) {
		candidates := meld.Candidates(card.MustParseAll("7♠", "7♥", "JR"), card.Three)
		require.Equal(t, []meld.Meld{meld.NewSet(card.MustParseAll("7♠", "7♥", "JR")...)}, candidates)
	})

	t.Run("wild_windows_are_enumerated", func(t *testing.T) {
		hand := card.MustParseAll("JR", "JB", "3♠", "8♦")
		sets := meld.Sets(hand, card.Three)
		runs := meld.Runs(hand, card.Three)
		require.Len(t, sets, 4)
		require.Len(t, runs, 3)
		require.Contains(t, sets, meld.NewSet(card.MustParseAll("JR", "JB", "3♠")...))
		require.Contains(t, runs, meld.NewRun(card.MustParseAll("8♦", "JB", "3♠")...))
	})

	t.Run("every_subset_of_a_rank_is_a_set", func(t *testing.T) {
		sets := meld.Sets(card.MustParseAll("7♥", "7♦", "7♣", "7♠"), card.NoWildRank)
		require.Len(t, sets, 5)
		require.Contains(t, sets, meld.NewSet(card.MustParseAll("7♥", "7♦", "7♣")...))
		require.Contains(t, sets, meld.NewSet(card.MustParseAll("7♠", "7♦", "7♣")...))
		require.Contains(t, sets, meld.NewSet(card.MustParseAll("7♠", "7♥", "7♦", "7♣")...))
	})

	t.Run("no_candidates_from_scattered_cards", func(t *testing.T) {
		require.Empty(t, meld.Candidates(card.MustParseAll("K♠", "2♣", "4♦"), card.King))
	})

	t.Run("empty_hand", func(t *testing.T) {
		require.Empty(t, meld.Candidates(nil, card.Three))
	})
}

func TestCandidatesAreValid(t *testing.T) {
	hand := card.MustParseAll("3♠", "3♥", "5♦", "6♦", "8♦", "JR", "Q♣", "Q♥", "K♣", "J♣")
	wildRank := card.Three
	candidates := meld.Candidates(hand, wildRank)
	require.NotEmpty(t, candidates)
	for _, candidate := range candidates {
		assert.True(t, meld.IsValid(candidate, wildRank), "%s", candidate)
		assert.GreaterOrEqual(t, len(candidate.Cards), meld.MinSize)
		assert.Subset(t, hand, candidate.Cards)
	}
}

func TestRunsFitRankRange(t *testing.T) {
	var hand []card.Card
	for rank := card.Ace; rank <= card.King; rank++ {
		hand = append(hand, card.New(card.Hearts, rank))
	}
	hand = append(hand, card.NewJoker(card.JokerRed))

	runs := meld.Runs(hand, card.NoWildRank)
	require.NotEmpty(t, runs)
	for _, run := range runs {
		require.LessOrEqual(t, len(run.Cards), meld.MaxRunLength)
	}
}
