package card

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/landlord/card/suit"
)

// rankTokens is ordered longest first so "10" is never read as "1" followed by "0".
var rankTokens = []struct {
	token string
	rank  Rank
}{
	{"10", Rank10},
	{"2", Rank2},
	{"3", Rank3},
	{"4", Rank4},
	{"5", Rank5},
	{"6", Rank6},
	{"7", Rank7},
	{"8", Rank8},
	{"9", Rank9},
	{"J", RankJ},
	{"Q", RankQ},
	{"K", RankK},
	{"A", RankA},
}

var jokerTokens = []struct {
	token string
	card  Card
}{
	{SmallJokerToken, SmallJoker},
	{BigJokerToken, BigJoker},
}

func matchRank(s string) (Rank, int) {
	upper := strings.ToUpper(s)
	for _, candidate := range rankTokens {
		if strings.HasPrefix(upper, candidate.token) {
			return candidate.rank, len(candidate.token)
		}
	}
	return RankNone, 0
}

// next reads one card from the head of s and returns the number of bytes consumed.
func next(s string) (Card, int, error) {
	for _, joker := range jokerTokens {
		if strings.HasPrefix(s, joker.token) {
			return joker.card, len(joker.token), nil
		}
	}
	if candidate, rest, err := suit.ByPrefix(s); err == nil {
		if rank, n := matchRank(rest); rank != RankNone {
			return Card{Suit: candidate, Rank: rank}, len(s) - len(rest) + n, nil
		}
	}
	end := strings.IndexFunc(s, isSeparator)
	if end < 0 {
		end = len(s)
	}
	return Card{}, 0, fmt.Errorf("%w%q", consts.ErrorsCardInvalid, s[:end])
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ',' || r == ';'
}

// Parse reads exactly one card token such as "♠10" or "大王".
func Parse(token string) (Card, error) {
	token = strings.TrimSpace(token)
	c, n, err := next(token)
	if err != nil {
		return Card{}, err
	}
	if n != len(token) {
		return Card{}, fmt.Errorf("%w%q", consts.ErrorsCardInvalid, token)
	}
	return c, nil
}

// ParseCards parses every token and fails on the first malformed one.
func ParseCards(tokens []string) (Cards, error) {
	cards := make(Cards, 0, len(tokens))
	for _, token := range tokens {
		c, err := Parse(token)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// ParseLine reads cards from free text. Tokens may be separated by spaces or commas,
// or written back to back ("♠10♥J").
func ParseLine(line string) (Cards, error) {
	cards := make(Cards, 0)
	rest := strings.TrimLeftFunc(line, isSeparator)
	for rest != "" {
		c, n, err := next(rest)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
		rest = strings.TrimLeftFunc(rest[n:], isSeparator)
	}
	return cards, nil
}

// MustParse is for fixed card lists known at compile time.
func MustParse(tokens ...string) Cards {
	cards, err := ParseCards(tokens)
	if err != nil {
		panic(err)
	}
	return cards
}
