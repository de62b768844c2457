package player

import (
	"strings"

	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/landlord/game"
)

const (
	PolicyGood  = "good"
	PolicyNaive = "naive"
)

func New(policy, name string) (game.Player, error) {
	switch strings.ToLower(policy) {
	case PolicyGood, "":
		return NewGoodPlayer(name), nil
	case PolicyNaive:
		return NewNaivePlayer(name), nil
	}
	return nil, consts.ErrorsPolicyInvalid
}
