package player

import (
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/landlord/game"
)

type naivePlayer struct {
	basicPlayer
}

func NewNaivePlayer(name string) game.Player {
	return naivePlayer{basicPlayer: basicPlayer{name: name}}
}

func (p naivePlayer) Play(hand card.Cards, last game.LastPlay) (game.Play, error) {
	h := game.NewHand(hand)
	if h.Empty() {
		return game.Play{}, consts.ErrorsNoCards
	}
	playable := h.PlayableCandidates(last)
	if len(playable) == 0 {
		return game.Choose(hand, last)
	}
	return game.NewPlay(playable[0]), nil
}
