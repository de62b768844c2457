package game

import (
	"github.com/ratel-online/landlord/landlord/card"
)

// Hand is a read-only view over a participant's cards.
type Hand struct {
	cards card.Cards
}

func NewHand(cards card.Cards) *Hand {
	return &Hand{cards: cards.Sorted()}
}

func (h *Hand) Cards() card.Cards {
	cards := make(card.Cards, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) Candidates() []card.Cards {
	return Enumerate(h.cards)
}

func (h *Hand) PlayableCandidates(last LastPlay) []card.Cards {
	var playable []card.Cards
	for _, candidate := range h.Candidates() {
		if ok, _ := Playable(NewPlay(candidate), last); ok {
			playable = append(playable, candidate)
		}
	}
	return playable
}
