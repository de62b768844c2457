package service_test

import (
	"fmt"
	"testing"

	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCyclerNext(t *testing.T) {
	cycler := service.NewCycler(service.Seats(3))
	assert.Equal(t, "seat 1", cycler.Current())
	assert.Equal(t, "seat 2", cycler.Next())
	assert.Equal(t, "seat 3", cycler.Next())
	assert.Equal(t, "seat 1", cycler.Next())
	assert.Equal(t, 0, cycler.Index())
}

func TestCyclerJump(t *testing.T) {
	cycler := service.NewCycler(service.Seats(3))
	cycler.Jump(2)
	assert.Equal(t, "seat 3", cycler.Current())
	cycler.Jump(4)
	assert.Equal(t, "seat 2", cycler.Current())
	cycler.Jump(-1)
	assert.Equal(t, "seat 3", cycler.Current())
}

func TestSeats(t *testing.T) {
	cycler := service.NewCycler(service.Seats(2))
	require.Equal(t, 2, cycler.Len())

	var results []string
	for i := 0; i < cycler.Len(); i++ {
		results = append(results, fmt.Sprintf("called for %s", cycler.Current()))
		cycler.Next()
	}
	require.Equal(t, []string{
		"called for seat 1",
		"called for seat 2",
	}, results)
}

func TestPile(t *testing.T) {
	pile := service.NewPile()
	_, ok := pile.Top()
	require.False(t, ok)

	played := card.MustParse("♠3")
	pile.Add(0, "seat 1", played)
	pile.Add(1, "seat 2", nil)
	played[0] = card.BigJoker

	top, ok := pile.Top()
	require.True(t, ok)
	require.Equal(t, "seat 1", top.Seat)
	require.Equal(t, 0, top.Index)
	require.Equal(t, card.MustParse("♠3"), top.Cards)

	entries := pile.Entries()
	require.Len(t, entries, 2)
	require.True(t, entries[1].Pass())

	pile.Clear()
	require.Empty(t, pile.Entries())
}
