package game

import (
	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/landlord/faces"
)

// Play is what a participant puts down on a turn: some cards, or a pass.
type Play struct {
	Cards card.Cards
	Pass  bool
}

var PassPlay = Play{Pass: true}

func NewPlay(cards card.Cards) Play {
	return Play{Cards: cards}
}

func (p Play) Faces() faces.Faces {
	if p.Pass {
		return faces.Faces{Type: faces.Pass}
	}
	return faces.Classify(p.Cards)
}

func (p Play) String() string {
	if p.Pass {
		return "pass"
	}
	return p.Cards.String()
}

// LastPlay is the most recent accepted non-pass play of the current trick.
// The zero value is an empty trick.
type LastPlay struct {
	PlayerID int64
	Cards    card.Cards
}

func NewLastPlay(playerID int64, cards card.Cards) LastPlay {
	return LastPlay{PlayerID: playerID, Cards: cards}
}

// Faces classifies the cards afresh on every call.
func (l LastPlay) Faces() faces.Faces {
	if len(l.Cards) == 0 {
		return faces.Faces{Type: faces.Pass}
	}
	return faces.Classify(l.Cards)
}

// Empty reports whether there is nothing to suppress, as at the start of a trick.
func (l LastPlay) Empty() bool {
	f := l.Faces()
	return !f.Valid() || f.Type == faces.Pass
}
