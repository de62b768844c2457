package card

import (
	"github.com/ratel-online/landlord/landlord/card/suit"
)

type Rank int

const (
	RankNone Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
	RankA
	RankSmallJoker
	RankBigJoker
)

const (
	SmallJokerToken = "小王"
	BigJokerToken   = "大王"
)

// Ranks lists the thirteen suited ranks in deck order.
var Ranks = []Rank{Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8, Rank9, Rank10, RankJ, RankQ, RankK, RankA}

// priorities is the total order over ranks: 3 lowest, then up to A, 2, small joker, big joker.
var priorities = map[Rank]int{
	Rank3:          3,
	Rank4:          4,
	Rank5:          5,
	Rank6:          6,
	Rank7:          7,
	Rank8:          8,
	Rank9:          9,
	Rank10:         10,
	RankJ:          11,
	RankQ:          12,
	RankK:          13,
	RankA:          14,
	Rank2:          15,
	RankSmallJoker: 16,
	RankBigJoker:   17,
}

var tokens = map[Rank]string{
	Rank2:          "2",
	Rank3:          "3",
	Rank4:          "4",
	Rank5:          "5",
	Rank6:          "6",
	Rank7:          "7",
	Rank8:          "8",
	Rank9:          "9",
	Rank10:         "10",
	RankJ:          "J",
	RankQ:          "Q",
	RankK:          "K",
	RankA:          "A",
	RankSmallJoker: SmallJokerToken,
	RankBigJoker:   BigJokerToken,
}

// Priority returns the rank's position in the total order, 0 for an unknown rank.
func (r Rank) Priority() int {
	return priorities[r]
}

func (r Rank) Higher(other Rank) bool {
	return r.Priority() > other.Priority()
}

func (r Rank) IsJoker() bool {
	return r == RankSmallJoker || r == RankBigJoker
}

// Restricted reports whether the rank can never appear in a sequence.
func (r Rank) Restricted() bool {
	return r == Rank2 || r.IsJoker()
}

func (r Rank) Valid() bool {
	return r.Priority() > 0
}

func (r Rank) String() string {
	if token, ok := tokens[r]; ok {
		return token
	}
	return "?"
}

type Card struct {
	Suit suit.Suit
	Rank Rank
}

var (
	SmallJoker = Card{Suit: suit.Joker, Rank: RankSmallJoker}
	BigJoker   = Card{Suit: suit.Joker, Rank: RankBigJoker}
)

func New(s suit.Suit, rank Rank) Card {
	return Card{Suit: s, Rank: rank}
}

// Valid reports whether the card is one of the 54 real cards.
func (c Card) Valid() bool {
	if c.Rank.IsJoker() {
		return c.Suit == suit.Joker
	}
	return c.Rank.Valid() && c.Suit != nil && c.Suit != suit.Joker
}

func (c Card) Priority() int {
	return c.Rank.Priority()
}

func (c Card) Equal(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

func (c Card) String() string {
	if !c.Valid() {
		return "?"
	}
	if c.Rank.IsJoker() {
		return c.Rank.String()
	}
	return c.Suit.Glyph() + c.Rank.String()
}

func (c Card) Paint() string {
	if !c.Valid() {
		return "?"
	}
	return c.Suit.Paint(c.String())
}

func suitIndex(s suit.Suit) int {
	for i, candidate := range suit.All {
		if candidate == s {
			return i
		}
	}
	return len(suit.All)
}
