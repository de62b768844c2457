package game

import (
	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/landlord/faces"
	"github.com/ratel-online/landlord/rule"
)

type rankGroup struct {
	rank  card.Rank
	cards card.Cards
}

type enumerator struct {
	plays []card.Cards
	seen  map[string]bool
}

// Enumerate lists sub-multisets of hand that form a legal shape, each once.
// Singles, pairs, triples, bombs and the rocket are exhaustive; compound shapes are
// built from the lowest cards of each rank and filtered through the classifier.
func Enumerate(hand card.Cards) []card.Cards {
	sorted := hand.Sorted()
	e := &enumerator{seen: map[string]bool{}}
	e.rocket(sorted)
	for size := 1; size <= 4; size++ {
		e.sameRank(sorted, size)
	}
	groups := groupByRank(sorted)
	e.runs(groups)
	e.pairRuns(groups)
	e.airplanes(groups)
	e.triplesWithKickers(groups)
	e.quadsWithKickers(groups)
	return e.plays
}

func (e *enumerator) add(cards card.Cards) bool {
	if !faces.Classify(cards).Valid() {
		return false
	}
	key := cards.Key()
	if e.seen[key] {
		return true
	}
	e.seen[key] = true
	play := make(card.Cards, len(cards))
	copy(play, cards)
	e.plays = append(e.plays, play)
	return true
}

func (e *enumerator) rocket(sorted card.Cards) {
	var jokers card.Cards
	for _, c := range sorted {
		if c.Rank.IsJoker() {
			jokers = append(jokers, c)
		}
	}
	if len(jokers) == 2 {
		e.add(jokers)
	}
}

// sameRank adds every window of size adjacent cards sharing one rank.
func (e *enumerator) sameRank(sorted card.Cards, size int) {
	for i := 0; i+size <= len(sorted); i++ {
		window := sorted[i : i+size]
		if window[0].Rank == window[size-1].Rank {
			e.add(window)
		}
	}
}

func groupByRank(sorted card.Cards) []rankGroup {
	var groups []rankGroup
	for _, c := range sorted {
		if n := len(groups); n > 0 && groups[n-1].rank == c.Rank {
			groups[n-1].cards = append(groups[n-1].cards, c)
			continue
		}
		groups = append(groups, rankGroup{rank: c.Rank, cards: card.Cards{c}})
	}
	return groups
}

// units takes the lowest count cards of every rank holding at least count of them.
func units(groups []rankGroup, count int) []rankGroup {
	var result []rankGroup
	for _, g := range groups {
		if len(g.cards) >= count {
			result = append(result, rankGroup{rank: g.rank, cards: g.cards[:count]})
		}
	}
	return result
}

// chains slides a window over the units and returns every window of at least min units.
// Windows are not checked for continuity here; the classifier is the filter.
func chains(us []rankGroup, min int) [][]rankGroup {
	var result [][]rankGroup
	for start := 0; start < len(us); start++ {
		for end := start + min; end <= len(us); end++ {
			result = append(result, us[start:end])
		}
	}
	return result
}

func flatten(chain []rankGroup) card.Cards {
	var cards card.Cards
	for _, g := range chain {
		cards = append(cards, g.cards...)
	}
	return cards
}

func (e *enumerator) runs(groups []rankGroup) {
	for _, chain := range chains(units(groups, 1), rule.LandlordRules.MinLength(1)) {
		e.add(flatten(chain))
	}
}

func (e *enumerator) pairRuns(groups []rankGroup) {
	for _, chain := range chains(units(groups, 2), rule.LandlordRules.MinLength(2)) {
		e.add(flatten(chain))
	}
}

// airplanes adds each bare airplane, then the same body with the lowest free wings.
func (e *enumerator) airplanes(groups []rankGroup) {
	for _, chain := range chains(units(groups, 3), rule.LandlordRules.MinLength(3)) {
		body := flatten(chain)
		if !e.add(body) {
			continue
		}
		for _, wing := range []int{1, 2} {
			wings := lowestOthers(groups, chain, wing, len(chain))
			if len(wings) == len(chain) {
				e.add(append(append(card.Cards{}, body...), flatten(wings)...))
			}
		}
	}
}

func (e *enumerator) triplesWithKickers(groups []rankGroup) {
	for _, triple := range units(groups, 3) {
		for _, wing := range []int{1, 2} {
			for _, kicker := range others(groups, []rankGroup{triple}, wing) {
				e.add(append(append(card.Cards{}, triple.cards...), kicker.cards...))
			}
		}
	}
}

func (e *enumerator) quadsWithKickers(groups []rankGroup) {
	for _, quad := range units(groups, 4) {
		for _, wing := range []int{1, 2} {
			kickers := others(groups, []rankGroup{quad}, wing)
			for i := 0; i < len(kickers); i++ {
				for j := i + 1; j < len(kickers); j++ {
					play := append(append(card.Cards{}, quad.cards...), kickers[i].cards...)
					e.add(append(play, kickers[j].cards...))
				}
			}
		}
	}
}

// others returns units of size wing from every rank outside exclude.
func others(groups []rankGroup, exclude []rankGroup, wing int) []rankGroup {
	excluded := map[card.Rank]bool{}
	for _, g := range exclude {
		excluded[g.rank] = true
	}
	var result []rankGroup
	for _, u := range units(groups, wing) {
		if !excluded[u.rank] {
			result = append(result, u)
		}
	}
	return result
}

func lowestOthers(groups []rankGroup, exclude []rankGroup, wing, n int) []rankGroup {
	candidates := others(groups, exclude, wing)
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}
