package game

import (
	"sort"

	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/landlord/faces"
)

// Choose picks the cheapest play from hand that may follow last. Bombs and the rocket
// are spent only when nothing ordinary works. With nothing playable over a real play it
// passes. An empty hand is an error: the caller should already have declared the win.
func Choose(hand card.Cards, last LastPlay) (Play, error) {
	if len(hand) == 0 {
		return Play{}, consts.ErrorsNoCards
	}
	type scored struct {
		cards  card.Cards
		weight int
		top    int
	}
	var playable []scored
	for _, candidate := range Enumerate(hand) {
		if ok, _ := Playable(NewPlay(candidate), last); ok {
			playable = append(playable, scored{
				cards:  candidate,
				weight: faces.Classify(candidate).Weight(),
				top:    candidate.MaxPriority(),
			})
		}
	}
	if len(playable) > 0 {
		sort.SliceStable(playable, func(i, j int) bool {
			if playable[i].weight != playable[j].weight {
				return playable[i].weight < playable[j].weight
			}
			return playable[i].top < playable[j].top
		})
		return NewPlay(playable[0].cards), nil
	}
	if !last.Empty() {
		return PassPlay, nil
	}
	return NewPlay(card.Cards{hand.Sorted()[0]}), nil
}
