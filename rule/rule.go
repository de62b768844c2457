package rule

import "github.com/ratel-online/landlord/landlord/card"

// LandlordRules 斗地主規則
var LandlordRules = _rules{minStraight: 5, minPairStraight: 3, minPlane: 2}

type _rules struct {
	minStraight     int
	minPairStraight int
	minPlane        int
}

// MinLength is the minimum number of groups for a sequence of count-of-a-kind groups.
func (r _rules) MinLength(count int) int {
	switch count {
	case 1:
		return r.minStraight
	case 2:
		return r.minPairStraight
	case 3:
		return r.minPlane
	}
	return 0
}

// IsStraight reports whether ranks can build a sequence of count-of-a-kind groups:
// every rank inside the boundary, gapless, and long enough.
func (r _rules) IsStraight(ranks []card.Rank, count int) bool {
	min := r.MinLength(count)
	if min == 0 || len(ranks) < min {
		return false
	}
	lo, hi := r.StraightBoundary()
	for _, rank := range ranks {
		if rank.Priority() < lo.Priority() || rank.Priority() > hi.Priority() {
			return false
		}
	}
	return card.IsContinuous(ranks, true)
}

func (r _rules) StraightBoundary() (card.Rank, card.Rank) {
	return card.Rank3, card.RankA
}
