package suit

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type Suit interface {
	Glyph() string
	Paint(string) string
	String() string
}

type suitStruct struct {
	glyph         string
	name          string
	colorFunction func(string, ...interface{}) string
}

func (s *suitStruct) Glyph() string {
	return s.glyph
}

func (s *suitStruct) Paint(text string) string {
	return s.colorFunction("%s", text)
}

func (s *suitStruct) String() string {
	return s.name
}

var Spade = &suitStruct{
	glyph:         "♠",
	name:          "spade",
	colorFunction: color.New(color.FgHiWhite).SprintfFunc(),
}

var Heart = &suitStruct{
	glyph:         "♥",
	name:          "heart",
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Club = &suitStruct{
	glyph:         "♣",
	name:          "club",
	colorFunction: color.New(color.FgHiWhite).SprintfFunc(),
}

var Diamond = &suitStruct{
	glyph:         "♦",
	name:          "diamond",
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

// Joker has no glyph; joker cards are written by their own token.
var Joker = &suitStruct{
	glyph:         "",
	name:          "joker",
	colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
}

// All lists the four ranked suits in deck order.
var All = []Suit{Spade, Heart, Club, Diamond}

// ByPrefix reads the suit glyph at the head of s and returns the suit with the rest of s.
func ByPrefix(s string) (Suit, string, error) {
	for _, suit := range All {
		if strings.HasPrefix(s, suit.Glyph()) {
			return suit, s[len(suit.Glyph()):], nil
		}
	}
	return nil, s, fmt.Errorf("invalid suit '%s'", s)
}
