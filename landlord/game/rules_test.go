package game_test

import (
	"testing"

	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/landlord/game"
	"github.com/stretchr/testify/require"
)

func last(tokens ...string) game.LastPlay {
	return game.NewLastPlay(1, card.MustParse(tokens...))
}

func play(tokens ...string) game.Play {
	return game.NewPlay(card.MustParse(tokens...))
}

var (
	rocket    = []string{"小王", "大王"}
	bombOf9   = []string{"♠9", "♥9", "♣9", "♦9"}
	bombOf5   = []string{"♠5", "♥5", "♣5", "♦5"}
	bombOfK   = []string{"♠K", "♥K", "♣K", "♦K"}
	run3To7   = []string{"♠3", "♥4", "♣5", "♦6", "♠7"}
	run4To8   = []string{"♥4", "♣5", "♦6", "♠7", "♥8"}
	run4To9   = []string{"♥4", "♣5", "♦6", "♠7", "♥8", "♣9"}
	run3To8   = []string{"♠3", "♥4", "♣5", "♦6", "♠7", "♣8"}
	pairs3To5 = []string{"♠3", "♥3", "♠4", "♥4", "♠5", "♥5"}
)

func TestPlayable(t *testing.T) {
	scenarios := []struct {
		description    string
		candidate      game.Play
		last           game.LastPlay
		expectedResult bool
	}{
		{
			description:    "higher_single",
			candidate:      play("♠8"),
			last:           last("♣5"),
			expectedResult: true,
		},
		{
			description:    "equal_single_never_wins",
			candidate:      play("♠5"),
			last:           last("♣5"),
			expectedResult: false,
		},
		{
			description:    "two_beats_ace",
			candidate:      play("♠2"),
			last:           last("♣A"),
			expectedResult: true,
		},
		{
			description:    "joker_beats_two",
			candidate:      play("小王"),
			last:           last("♣2"),
			expectedResult: true,
		},
		{
			description:    "bomb_beats_run",
			candidate:      play(bombOf9...),
			last:           last(run3To7...),
			expectedResult: true,
		},
		{
			description:    "run_does_not_beat_bomb",
			candidate:      play(run4To8...),
			last:           last(bombOf9...),
			expectedResult: false,
		},
		{
			description:    "higher_bomb",
			candidate:      play(bombOfK...),
			last:           last(bombOf9...),
			expectedResult: true,
		},
		{
			description:    "lower_bomb",
			candidate:      play(bombOf5...),
			last:           last(bombOf9...),
			expectedResult: false,
		},
		{
			description:    "rocket_beats_bomb",
			candidate:      play(rocket...),
			last:           last(bombOfK...),
			expectedResult: true,
		},
		{
			description:    "bomb_does_not_beat_rocket",
			candidate:      play(bombOfK...),
			last:           last(rocket...),
			expectedResult: false,
		},
		{
			description:    "single_does_not_beat_rocket",
			candidate:      play("大王"),
			last:           last(rocket...),
			expectedResult: false,
		},
		{
			description:    "higher_run_of_same_length",
			candidate:      play(run4To8...),
			last:           last(run3To7...),
			expectedResult: true,
		},
		{
			description:    "longer_run_loses",
			candidate:      play(run4To9...),
			last:           last(run3To7...),
			expectedResult: false,
		},
		{
			description:    "shorter_run_loses",
			candidate:      play(run4To8...),
			last:           last(run3To8...),
			expectedResult: false,
		},
		{
			description:    "run_does_not_beat_pair_run",
			candidate:      play(run4To9...),
			last:           last(pairs3To5...),
			expectedResult: false,
		},
		{
			description:    "pair_does_not_beat_single",
			candidate:      play("♠K", "♥K"),
			last:           last("♣5"),
			expectedResult: false,
		},
		{
			description:    "higher_triple_with_single",
			candidate:      play("♠Q", "♥Q", "♣Q", "♦3"),
			last:           last("♠J", "♥J", "♣J", "♦A"),
			expectedResult: true,
		},
		{
			description:    "invalid_shape_on_empty_trick",
			candidate:      play("♠3", "♥4"),
			last:           game.LastPlay{},
			expectedResult: false,
		},
		{
			description:    "anything_valid_opens",
			candidate:      play(run3To7...),
			last:           game.LastPlay{},
			expectedResult: true,
		},
		{
			description:    "pass_is_always_accepted",
			candidate:      game.PassPlay,
			last:           last(rocket...),
			expectedResult: true,
		},
		{
			description:    "invalid_previous_is_an_empty_trick",
			candidate:      play("♠3"),
			last:           last("♠3", "♥4"),
			expectedResult: true,
		},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			ok, reason := game.Playable(scenario.candidate, scenario.last)
			require.Equal(t, scenario.expectedResult, ok)
			if ok {
				require.Empty(t, reason)
			} else {
				require.NotEmpty(t, reason)
			}
		})
	}
}

func TestPlayableRocketAlwaysWins(t *testing.T) {
	for _, candidate := range game.Enumerate(card.NewDeck()[:20]) {
		ok, _ := game.Playable(play(rocket...), game.NewLastPlay(1, candidate))
		require.True(t, ok, candidate.String())
	}
}

func TestPlayableReasons(t *testing.T) {
	scenarios := []struct {
		description    string
		candidate      game.Play
		last           game.LastPlay
		expectedReason string
	}{
		{
			description:    "not_a_shape",
			candidate:      play("♠3", "♥4"),
			last:           last("♣5"),
			expectedReason: "not a legal shape",
		},
		{
			description:    "wrong_shape",
			candidate:      play("♠K", "♥K"),
			last:           last("♣5"),
			expectedReason: "last play is a single, play a single or a bomb or a rocket",
		},
		{
			description:    "wrong_magnitude",
			candidate:      play(run4To9...),
			last:           last(run3To7...),
			expectedReason: "last run has 5 cards, play the same number or a bomb or a rocket",
		},
		{
			description:    "rank_too_low",
			candidate:      play("♠5"),
			last:           last("♣5"),
			expectedReason: "single too small, need higher than 5",
		},
		{
			description:    "bomb_too_low",
			candidate:      play(bombOf5...),
			last:           last(bombOf9...),
			expectedReason: "bomb too small, need higher than 9",
		},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			ok, reason := game.Playable(scenario.candidate, scenario.last)
			require.False(t, ok)
			require.Equal(t, scenario.expectedReason, reason)
		})
	}
}

func TestPlayableIsRepeatable(t *testing.T) {
	candidate, previous := play(run4To8...), last(run3To7...)
	first, firstReason := game.Playable(candidate, previous)
	second, secondReason := game.Playable(candidate, previous)
	require.Equal(t, first, second)
	require.Equal(t, firstReason, secondReason)
}
