package faces

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/rule"
)

const (
	rocketWeight = 1000
	bombWeight   = 100
)

// Faces is the classification of one multiset of cards.
// Rank is the defining rank: the grouped rank of triples and quads, the highest rank of sequences.
type Faces struct {
	Type      Type
	Rank      card.Rank
	Priority  int
	Magnitude int
}

func (f Faces) Valid() bool {
	return f.Type != Invalid
}

// Weight orders plays across types: rockets above bombs above everything else.
func (f Faces) Weight() int {
	switch f.Type {
	case Rocket:
		return rocketWeight + f.Priority
	case Bomb:
		return bombWeight + f.Priority
	}
	return f.Priority
}

func (f Faces) String() string {
	switch f.Type {
	case Invalid, Pass:
		return f.Type.String()
	}
	if f.Type.Sequence() {
		return fmt.Sprintf("%s of %d %s up to %s", f.Type, f.Magnitude, f.Type.Unit(), f.Rank)
	}
	return fmt.Sprintf("%s of %s", f.Type, f.Rank)
}

type analysis struct {
	total  int
	counts map[card.Rank]int
	// groups maps an occurrence count to the ranks occurring that often, sorted by priority.
	groups map[int][]card.Rank
}

func analyze(cards card.Cards) analysis {
	a := analysis{
		total:  len(cards),
		counts: cards.Counts(),
		groups: map[int][]card.Rank{},
	}
	for rank, count := range a.counts {
		a.groups[count] = append(a.groups[count], rank)
	}
	for _, ranks := range a.groups {
		card.SortRanks(ranks)
	}
	return a
}

func (a analysis) distinct() int {
	return len(a.counts)
}

func (a analysis) only(count int) bool {
	return len(a.groups[count]) == a.distinct()
}

func (a analysis) signature() []int {
	signature := make([]int, 0, len(a.counts))
	for _, count := range a.counts {
		signature = append(signature, count)
	}
	sort.Ints(signature)
	return signature
}

func (a analysis) matches(signature ...int) bool {
	actual := a.signature()
	if len(actual) != len(signature) {
		return false
	}
	for i := range actual {
		if actual[i] != signature[i] {
			return false
		}
	}
	return true
}

func (a analysis) sequence(count int) (card.Rank, bool) {
	ranks := a.groups[count]
	if !rule.LandlordRules.IsStraight(ranks, count) {
		return card.RankNone, false
	}
	return ranks[len(ranks)-1], true
}

func faces(t Type, rank card.Rank, magnitude int) (Faces, bool) {
	return Faces{Type: t, Rank: rank, Priority: rank.Priority(), Magnitude: magnitude}, true
}

// checks run in order. Each predicate pins the card count and the occurrence signature, so
// at most one can match; the order only matters for two-card rocket before pair, and
// four-card bomb before any other four-card shape.
var checks = []func(analysis) (Faces, bool){
	isRocket,
	isBomb,
	isSingle,
	isPair,
	isRun,
	isPairRun,
	isTriple,
	isTripleWithSingle,
	isTripleWithPair,
	isAirplane,
	isAirplaneWithSingles,
	isAirplaneWithPairs,
	isQuadWithTwoSingles,
	isQuadWithTwoPairs,
}

// Classify determines the shape of cards. It never fails: unknown cards, an empty
// input and unmatched multisets all yield Invalid.
func Classify(cards card.Cards) Faces {
	if len(cards) == 0 {
		return Faces{}
	}
	for _, c := range cards {
		if !c.Valid() {
			return Faces{}
		}
	}
	a := analyze(cards)
	// only one physical card of each joker exists
	if a.counts[card.RankSmallJoker] > 1 || a.counts[card.RankBigJoker] > 1 {
		return Faces{}
	}
	for _, check := range checks {
		if f, ok := check(a); ok {
			return f
		}
	}
	return Faces{}
}

// ClassifyTokens classifies the textual encoding. A lone pass token is Pass; any
// malformed token makes the whole input Invalid.
func ClassifyTokens(tokens []string) Faces {
	if len(tokens) == 1 && IsPassToken(tokens[0]) {
		return Faces{Type: Pass}
	}
	cards, err := card.ParseCards(tokens)
	if err != nil {
		return Faces{}
	}
	return Classify(cards)
}

func IsPassToken(token string) bool {
	token = strings.ToLower(strings.TrimSpace(token))
	return token == consts.PassToken || token == consts.PassTokenShort
}

func isRocket(a analysis) (Faces, bool) {
	if a.total == 2 && a.counts[card.RankSmallJoker] == 1 && a.counts[card.RankBigJoker] == 1 {
		return faces(Rocket, card.RankBigJoker, 1)
	}
	return Faces{}, false
}

func isBomb(a analysis) (Faces, bool) {
	if a.total == 4 && a.distinct() == 1 {
		rank := a.groups[4][0]
		if !rank.IsJoker() {
			return faces(Bomb, rank, 1)
		}
	}
	return Faces{}, false
}

func isSingle(a analysis) (Faces, bool) {
	if a.total == 1 {
		return faces(Single, a.groups[1][0], 1)
	}
	return Faces{}, false
}

func isPair(a analysis) (Faces, bool) {
	if a.total == 2 && a.distinct() == 1 {
		rank := a.groups[2][0]
		if !rank.IsJoker() {
			return faces(Pair, rank, 1)
		}
	}
	return Faces{}, false
}

func isRun(a analysis) (Faces, bool) {
	if a.total >= rule.LandlordRules.MinLength(1) && a.only(1) {
		if top, ok := a.sequence(1); ok {
			return faces(Run, top, a.total)
		}
	}
	return Faces{}, false
}

func isPairRun(a analysis) (Faces, bool) {
	if a.total >= 2*rule.LandlordRules.MinLength(2) && a.total%2 == 0 && a.only(2) {
		if top, ok := a.sequence(2); ok {
			return faces(PairRun, top, a.total/2)
		}
	}
	return Faces{}, false
}

func isTriple(a analysis) (Faces, bool) {
	if a.total == 3 && a.distinct() == 1 {
		rank := a.groups[3][0]
		if !rank.IsJoker() {
			return faces(Triple, rank, 1)
		}
	}
	return Faces{}, false
}

// isTripleWithSingle leaves the kicker unrestricted, so a joker may ride along.
func isTripleWithSingle(a analysis) (Faces, bool) {
	if a.total == 4 && a.matches(1, 3) {
		rank := a.groups[3][0]
		if !rank.IsJoker() {
			return faces(TripleWithSingle, rank, 1)
		}
	}
	return Faces{}, false
}

func isTripleWithPair(a analysis) (Faces, bool) {
	if a.total == 5 && a.matches(2, 3) {
		rank, kicker := a.groups[3][0], a.groups[2][0]
		if !rank.IsJoker() && !kicker.IsJoker() {
			return faces(TripleWithPair, rank, 1)
		}
	}
	return Faces{}, false
}

func isAirplane(a analysis) (Faces, bool) {
	min := rule.LandlordRules.MinLength(3)
	if a.total >= 3*min && a.total%3 == 0 && a.only(3) && a.distinct() == a.total/3 {
		if top, ok := a.sequence(3); ok {
			return faces(Airplane, top, a.total/3)
		}
	}
	return Faces{}, false
}

func isAirplaneWithSingles(a analysis) (Faces, bool) {
	return airplaneWithWings(a, 1, AirplaneWithSingles)
}

func isAirplaneWithPairs(a analysis) (Faces, bool) {
	return airplaneWithWings(a, 2, AirplaneWithPairs)
}

// airplaneWithWings matches n consecutive triples carrying exactly n wings of wing cards each.
// Only the triple ranks take part in the continuity check.
func airplaneWithWings(a analysis, wing int, t Type) (Faces, bool) {
	groups := len(a.groups[3])
	if groups < rule.LandlordRules.MinLength(3) || len(a.groups[wing]) != groups {
		return Faces{}, false
	}
	if a.total != (3+wing)*groups {
		return Faces{}, false
	}
	if top, ok := a.sequence(3); ok {
		return faces(t, top, groups)
	}
	return Faces{}, false
}

func isQuadWithTwoSingles(a analysis) (Faces, bool) {
	if a.total == 6 && a.matches(1, 1, 4) {
		rank := a.groups[4][0]
		if !rank.IsJoker() {
			return faces(QuadWithTwoSingles, rank, 1)
		}
	}
	return Faces{}, false
}

func isQuadWithTwoPairs(a analysis) (Faces, bool) {
	if a.total == 8 && a.matches(2, 2, 4) {
		rank := a.groups[4][0]
		if !rank.IsJoker() {
			return faces(QuadWithTwoPairs, rank, 1)
		}
	}
	return Faces{}, false
}
