package card_test

import (
	"testing"

	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/landlord/card/suit"
	"github.com/stretchr/testify/require"
)

func TestPriority(t *testing.T) {
	order := []card.Rank{
		card.Rank3, card.Rank4, card.Rank5, card.Rank6, card.Rank7, card.Rank8, card.Rank9,
		card.Rank10, card.RankJ, card.RankQ, card.RankK, card.RankA, card.Rank2,
		card.RankSmallJoker, card.RankBigJoker,
	}
	for i := 1; i < len(order); i++ {
		require.True(t, order[i].Higher(order[i-1]), "%s above %s", order[i], order[i-1])
		require.False(t, order[i-1].Higher(order[i]))
	}
	require.Equal(t, 0, card.RankNone.Priority())
}

func TestCardValid(t *testing.T) {
	scenarios := []struct {
		description string
		card        card.Card
		expected    bool
	}{
		{description: "suited_card", card: card.New(suit.Club, card.Rank10), expected: true},
		{description: "small_joker", card: card.SmallJoker, expected: true},
		{description: "big_joker", card: card.BigJoker, expected: true},
		{description: "zero_value", card: card.Card{}, expected: false},
		{description: "joker_with_suit", card: card.New(suit.Heart, card.RankBigJoker), expected: false},
		{description: "rank_without_suit", card: card.New(suit.Joker, card.Rank5), expected: false},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, scenario.card.Valid())
		})
	}
}

func TestCounts(t *testing.T) {
	cards := card.MustParse("♠7", "♥7", "♣8", "大王", "♦7")
	require.Equal(t, map[card.Rank]int{
		card.Rank7:        3,
		card.Rank8:        1,
		card.RankBigJoker: 1,
	}, cards.Counts())
	require.Equal(t, []card.Rank{card.Rank7, card.Rank8, card.RankBigJoker}, cards.Ranks())
}

func TestSorted(t *testing.T) {
	cards := card.MustParse("大王", "♦2", "♠3", "♥A", "♠2")
	sorted := cards.Sorted()
	require.Equal(t, card.MustParse("♠3", "♥A", "♠2", "♦2", "大王"), sorted)
	require.Equal(t, card.MustParse("大王", "♦2", "♠3", "♥A", "♠2"), cards)
}

func TestIncludesAndWithout(t *testing.T) {
	hand := card.MustParse("♠3", "♥3", "♣4", "小王")
	require.True(t, hand.Includes(card.MustParse("♥3", "小王")))
	require.False(t, hand.Includes(card.MustParse("♦3")))
	require.False(t, hand.Includes(card.MustParse("♠3", "♠3")))
	require.Equal(t, card.MustParse("♠3", "♣4"), hand.Without(card.MustParse("小王", "♥3")))
}

func TestIsContinuous(t *testing.T) {
	scenarios := []struct {
		description string
		ranks       []card.Rank
		restricted  bool
		expected    bool
	}{
		{description: "empty", ranks: nil, restricted: true, expected: false},
		{description: "single_rank", ranks: []card.Rank{card.Rank9}, restricted: true, expected: true},
		{description: "unordered_run", ranks: []card.Rank{card.Rank6, card.Rank4, card.Rank5}, restricted: true, expected: true},
		{description: "gap", ranks: []card.Rank{card.Rank4, card.Rank6}, restricted: true, expected: false},
		{description: "ten_to_ace", ranks: []card.Rank{card.Rank10, card.RankJ, card.RankQ, card.RankK, card.RankA}, restricted: true, expected: true},
		{description: "only_restricted_ranks", ranks: []card.Rank{card.Rank2, card.RankSmallJoker}, restricted: true, expected: false},
		{description: "restricted_ranks_are_dropped", ranks: []card.Rank{card.RankK, card.RankA, card.Rank2}, restricted: true, expected: true},
		{description: "ace_two_unrestricted", ranks: []card.Rank{card.RankA, card.Rank2}, restricted: false, expected: true},
		{description: "jokers_unrestricted", ranks: []card.Rank{card.RankSmallJoker, card.RankBigJoker}, restricted: false, expected: true},
		{description: "unknown_rank", ranks: []card.Rank{card.Rank3, card.RankNone}, restricted: true, expected: false},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, card.IsContinuous(scenario.ranks, scenario.restricted))
		})
	}
}
