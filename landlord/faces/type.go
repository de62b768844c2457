package faces

type Type int

const (
	Invalid Type = iota
	Pass
	Single
	Pair
	Triple
	Bomb
	Rocket
	Run
	PairRun
	TripleWithSingle
	TripleWithPair
	Airplane
	AirplaneWithSingles
	AirplaneWithPairs
	QuadWithTwoSingles
	QuadWithTwoPairs
)

var typeNames = map[Type]string{
	Invalid:             "invalid",
	Pass:                "pass",
	Single:              "single",
	Pair:                "pair",
	Triple:              "triple",
	Bomb:                "bomb",
	Rocket:              "rocket",
	Run:                 "run",
	PairRun:             "pair run",
	TripleWithSingle:    "triple with single",
	TripleWithPair:      "triple with pair",
	Airplane:            "airplane",
	AirplaneWithSingles: "airplane with singles",
	AirplaneWithPairs:   "airplane with pairs",
	QuadWithTwoSingles:  "four with two singles",
	QuadWithTwoPairs:    "four with two pairs",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Escalation reports whether the type may suppress any ordinary play.
func (t Type) Escalation() bool {
	return t == Bomb || t == Rocket
}

// Sequence reports whether plays of this type must also agree on magnitude.
func (t Type) Sequence() bool {
	switch t {
	case Run, PairRun, Airplane, AirplaneWithSingles, AirplaneWithPairs:
		return true
	}
	return false
}

// Unit names what the magnitude counts.
func (t Type) Unit() string {
	switch t {
	case Run:
		return "cards"
	case PairRun:
		return "pairs"
	case Airplane, AirplaneWithSingles, AirplaneWithPairs:
		return "groups"
	}
	return "cards"
}
