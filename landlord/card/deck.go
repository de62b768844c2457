package card

import (
	"github.com/ratel-online/core/util/rand"
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/landlord/card/suit"
)

const DeckSize = 54

// NewDeck returns the 54 cards in canonical order: suit-major, rank-minor, jokers last.
func NewDeck() Cards {
	deck := make(Cards, 0, DeckSize)
	for _, s := range suit.All {
		for _, rank := range Ranks {
			deck = append(deck, Card{Suit: s, Rank: rank})
		}
	}
	return append(deck, SmallJoker, BigJoker)
}

// Shuffle returns a shuffled copy of cards.
func Shuffle(cards Cards) Cards {
	shuffled := make(Cards, len(cards))
	copy(shuffled, cards)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Deal splits a full deck into three sorted hands and the landlord's extra cards.
func Deal(deck Cards) ([]Cards, Cards, error) {
	if len(deck) != DeckSize {
		return nil, nil, consts.ErrorsDeckInvalid
	}
	hands := make([]Cards, consts.MaxPlayers)
	for i := range hands {
		hands[i] = deck[i*consts.HandSize : (i+1)*consts.HandSize].Sorted()
	}
	extras := deck[len(deck)-consts.LandlordExtras:].Sorted()
	return hands, extras, nil
}
