package card

import (
	"sort"
	"strings"
)

// Cards is a borrowed view of a hand or a play. Methods never mutate the receiver.
type Cards []Card

// Counts maps each rank to its number of occurrences.
func (cs Cards) Counts() map[Rank]int {
	counts := make(map[Rank]int, len(cs))
	for _, c := range cs {
		counts[c.Rank]++
	}
	return counts
}

// Ranks returns the distinct ranks ordered by priority.
func (cs Cards) Ranks() []Rank {
	counts := cs.Counts()
	ranks := make([]Rank, 0, len(counts))
	for rank := range counts {
		ranks = append(ranks, rank)
	}
	SortRanks(ranks)
	return ranks
}

// Sorted returns a copy ordered by priority, then by suit.
func (cs Cards) Sorted() Cards {
	sorted := make(Cards, len(cs))
	copy(sorted, cs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority() != sorted[j].Priority() {
			return sorted[i].Priority() < sorted[j].Priority()
		}
		return suitIndex(sorted[i].Suit) < suitIndex(sorted[j].Suit)
	})
	return sorted
}

func (cs Cards) MaxPriority() int {
	max := 0
	for _, c := range cs {
		if c.Priority() > max {
			max = c.Priority()
		}
	}
	return max
}

// Includes reports whether sub is a sub-multiset of cs.
func (cs Cards) Includes(sub Cards) bool {
	remaining := make(map[Card]int, len(cs))
	for _, c := range cs {
		remaining[c]++
	}
	for _, c := range sub {
		if remaining[c] == 0 {
			return false
		}
		remaining[c]--
	}
	return true
}

// Without returns a copy of cs with one occurrence of every card in played removed.
func (cs Cards) Without(played Cards) Cards {
	pending := make(map[Card]int, len(played))
	for _, c := range played {
		pending[c]++
	}
	rest := make(Cards, 0, len(cs))
	for _, c := range cs {
		if pending[c] > 0 {
			pending[c]--
			continue
		}
		rest = append(rest, c)
	}
	return rest
}

// Key identifies the multiset regardless of order.
func (cs Cards) Key() string {
	return cs.Sorted().String()
}

func (cs Cards) String() string {
	parts := make([]string, 0, len(cs))
	for _, c := range cs {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}

func (cs Cards) Paint() string {
	parts := make([]string, 0, len(cs))
	for _, c := range cs {
		parts = append(parts, c.Paint())
	}
	return strings.Join(parts, " ")
}

func SortRanks(ranks []Rank) {
	sort.Slice(ranks, func(i, j int) bool {
		return ranks[i].Priority() < ranks[j].Priority()
	})
}

// IsContinuous reports whether the ranks form a gapless run of priorities.
// With restricted set, 2 and both jokers are dropped before the check.
// An empty remainder is not continuous; a single rank is.
func IsContinuous(ranks []Rank, restricted bool) bool {
	valid := make([]Rank, 0, len(ranks))
	for _, r := range ranks {
		if restricted && r.Restricted() {
			continue
		}
		if !r.Valid() {
			return false
		}
		valid = append(valid, r)
	}
	if len(valid) < 2 {
		return len(valid) == 1
	}
	SortRanks(valid)
	for i := 1; i < len(valid); i++ {
		if valid[i].Priority()-valid[i-1].Priority() != 1 {
			return false
		}
	}
	return true
}
