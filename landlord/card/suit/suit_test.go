package suit_test

import (
	"testing"

	"github.com/fatih/color"
	"github.com/ratel-online/landlord/landlord/card/suit"
	"github.com/stretchr/testify/require"
)

func TestByPrefix(t *testing.T) {
	scenarios := []struct {
		description  string
		input        string
		expected     suit.Suit
		expectedRest string
	}{
		{description: "spade", input: "♠10", expected: suit.Spade, expectedRest: "10"},
		{description: "heart", input: "♥A", expected: suit.Heart, expectedRest: "A"},
		{description: "club", input: "♣", expected: suit.Club, expectedRest: ""},
		{description: "diamond", input: "♦2 ♠3", expected: suit.Diamond, expectedRest: "2 ♠3"},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			s, rest, err := suit.ByPrefix(scenario.input)
			require.NoError(t, err)
			require.Equal(t, scenario.expected, s)
			require.Equal(t, scenario.expectedRest, rest)
		})
	}
}

func TestByPrefixRejectsUnknownGlyphs(t *testing.T) {
	for _, input := range []string{"", "10", "大王", "X5"} {
		s, rest, err := suit.ByPrefix(input)
		require.Error(t, err, input)
		require.Nil(t, s)
		require.Equal(t, input, rest)
	}
}

func TestPaint(t *testing.T) {
	color.NoColor = true
	require.Equal(t, "♥K", suit.Heart.Paint("♥K"))
	require.Equal(t, "spade", suit.Spade.String())
	require.Equal(t, "", suit.Joker.Glyph())
}
