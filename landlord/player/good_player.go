package player

import (
	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/landlord/game"
)

// goodPlayer keeps its high cards: it plays the cheapest suppressing play and holds
// bombs back until nothing else works.
type goodPlayer struct {
	basicPlayer
}

func NewGoodPlayer(name string) game.Player {
	return goodPlayer{basicPlayer: basicPlayer{name: name}}
}

func (p goodPlayer) Play(hand card.Cards, last game.LastPlay) (game.Play, error) {
	return game.Choose(hand, last)
}
