package card_test

import (
	"encoding/json"
	"testing"

	"github.com/ratel-online/rummy/rummy/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoints(t *testing.T) {
	scenarios := []struct {
		description string
		card        card.Card
		expected    int
	}{
		{"joker_scores_fifty", card.NewJoker(card.JokerBlack), 50},
		{"ace_scores_fifteen", card.New(card.Spades, card.Ace), 15},
		{"jack_scores_ten", card.New(card.Hearts, card.Jack), 10},
		{"queen_scores_ten", card.New(card.Clubs, card.Queen), 10},
		{"king_scores_ten", card.New(card.Diamonds, card.King), 10},
		{"two_scores_face_value", card.New(card.Clubs, card.Two), 2},
		{"ten_scores_face_value", card.New(card.Hearts, card.Ten), 10},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, scenario.card.Points())
		})
	}
}

func TestIsWild(t *testing.T) {
	assert.True(t, card.NewJoker(card.JokerRed).IsWild(card.Three))
	assert.True(t, card.New(card.Spades, card.Three).IsWild(card.Three))
	assert.False(t, card.New(card.Spades, card.Four).IsWild(card.Three))
	assert.False(t, card.New(card.Spades, card.Three).IsWild(card.NoWildRank))
	assert.True(t, card.NewJoker(card.JokerBlack).IsWild(card.NoWildRank))
}

func TestWildRankForRound(t *testing.T) {
	expected := map[int]card.Rank{
		1:  card.Three,
		2:  card.Four,
		11: card.King,
		12: card.Ace,
		13: card.Two,
	}
	for round, rank := range expected {
		assert.Equal(t, rank, card.WildRankForRound(round), "round %d", round)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "A♠", card.New(card.Spades, card.Ace).String())
	assert.Equal(t, "10♥", card.New(card.Hearts, card.Ten).String())
	assert.Equal(t, "Q♣", card.New(card.Clubs, card.Queen).String())
	assert.Equal(t, "JOKER", card.NewJoker(card.JokerBlack).String())
}

func TestParse(t *testing.T) {
	t.Run("round_trips_every_regular_card", func(t *testing.T) {
		for _, suit := range card.Suits {
			for rank := card.Ace; rank <= card.King; rank++ {
				original := card.New(suit, rank)
				parsed, err := card.Parse(original.String())
				require.NoError(t, err)
				require.Equal(t, original, parsed)
			}
		}
	})

	t.Run("distinguishes_jokers", func(t *testing.T) {
		cards := card.MustParseAll("JR", "JB")
		require.Equal(t, []card.Card{card.NewJoker(card.JokerRed), card.NewJoker(card.JokerBlack)}, cards)
	})

	t.Run("rejects_unknown_text", func(t *testing.T) {
		_, err := card.Parse("14♠")
		require.Error(t, err)
	})
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal([]card.Card{card.New(card.Diamonds, card.Seven), card.NewJoker(card.JokerRed)})
	require.NoError(t, err)
	require.JSONEq(t, `[{"suit":"♦","rank":7},{"suit":"JR","rank":0}]`, string(data))

	var cards []card.Card
	require.NoError(t, json.Unmarshal([]byte(`[{"suit":"♣","rank":13},{"suit":"JB","rank":0}]`), &cards))
	require.Equal(t, []card.Card{card.New(card.Clubs, card.King), card.NewJoker(card.JokerBlack)}, cards)

	require.Error(t, json.Unmarshal([]byte(`[{"suit":"?","rank":1}]`), &cards))
}

func TestColours(t *testing.T) {
	assert.True(t, card.New(card.Hearts, card.Two).IsRed())
	assert.True(t, card.New(card.Diamonds, card.Two).IsRed())
	assert.True(t, card.New(card.Spades, card.Two).IsBlack())
	assert.True(t, card.New(card.Clubs, card.Two).IsBlack())
}
