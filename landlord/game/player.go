package game

import (
	"github.com/ratel-online/landlord/landlord/card"
)

type Player interface {
	Name() string
	Play(hand card.Cards, last LastPlay) (Play, error)
}
