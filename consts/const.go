package consts

import "time"

const (
	MinPlayers = 2
	// MaxPlayers one landlord and two farmers.
	MaxPlayers = 3

	HandSize       = 17
	LandlordExtras = 3

	PassToken      = "pass"
	PassTokenShort = "p"

	IdleTimeout = 10 * time.Minute
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist         = NewErr(1, true, "Exist. ")
	ErrorsChanClosed    = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout       = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid  = NewErr(1, false, "Input invalid. ")
	ErrorsCardInvalid   = NewErr(2, false, "Card invalid. ")
	ErrorsNoCards       = NewErr(2, false, "No cards to play. ")
	ErrorsNotInHand     = NewErr(2, false, "Cards are not in hand. ")
	ErrorsHaveToPlay    = NewErr(2, false, "Have to play. ")
	ErrorsDeckInvalid   = NewErr(2, false, "Deck invalid. ")
	ErrorsPolicyInvalid = NewErr(3, true, "Bot policy invalid. ")
)
