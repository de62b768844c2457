package render

import (
	"bytes"
	"fmt"

	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/landlord/faces"
	"github.com/ratel-online/landlord/landlord/game"
)

const (
	CodeWelcome = iota + 1
	CodeDeck
	CodeFaces
	CodeAccepted
	CodeRejected
	CodePassed
	CodeTrickOver
	CodeHint
	CodeReset
	CodeHistory
	CodeDealt
	CodeHand
	CodeWon
)

// Reply is the structured form of every referee answer.
type Reply struct {
	Code      int      `json:"code"`
	Msg       string   `json:"msg"`
	Seat      string   `json:"seat,omitempty"`
	Cards     []string `json:"cards,omitempty"`
	Type      string   `json:"type,omitempty"`
	Priority  int      `json:"priority,omitempty"`
	Magnitude int      `json:"magnitude,omitempty"`
	Reason    string   `json:"reason,omitempty"`
}

func (r Reply) Text() string {
	return r.Msg
}

func (r Reply) JSON() string {
	return string(json.Marshal(r)) + "\n"
}

func tokens(cards card.Cards) []string {
	list := make([]string, 0, len(cards))
	for _, c := range cards {
		list = append(list, c.String())
	}
	return list
}

func withFaces(r Reply, f faces.Faces) Reply {
	r.Type = f.Type.String()
	r.Priority = f.Priority
	r.Magnitude = f.Magnitude
	return r
}

func Welcome(sessionID string) Reply {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Welcome to the landlord referee! session %s\n", sessionID))
	buf.WriteString("Play cards like: ♠3 ♥4 ♣5 ♦6 ♠7, or 小王 大王\n")
	buf.WriteString("Commands: p(ass), hint [cards], type <cards>, history, deal, hand, deck, reset, json, exit\n")
	return Reply{Code: CodeWelcome, Msg: buf.String()}
}

func Deck(deck card.Cards) Reply {
	return Reply{
		Code:  CodeDeck,
		Msg:   fmt.Sprintf("Deck (%d): %s\n", len(deck), deck.Paint()),
		Cards: tokens(deck),
	}
}

func Faces(cards card.Cards, f faces.Faces) Reply {
	return withFaces(Reply{
		Code:  CodeFaces,
		Msg:   fmt.Sprintf("%s is %s\n", cards.Paint(), f),
		Cards: tokens(cards),
	}, f)
}

func Accepted(seat string, cards card.Cards, f faces.Faces) Reply {
	return withFaces(Reply{
		Code:  CodeAccepted,
		Msg:   fmt.Sprintf("%s played %s (%s)\n", seat, cards.Paint(), f),
		Seat:  seat,
		Cards: tokens(cards),
	}, f)
}

func Rejected(cards card.Cards, reason string) Reply {
	return Reply{
		Code:   CodeRejected,
		Msg:    fmt.Sprintf("Cannot play %s: %s\n", cards.Paint(), reason),
		Cards:  tokens(cards),
		Reason: reason,
	}
}

func Passed(seat string, last game.LastPlay, passes int) Reply {
	return Reply{
		Code:  CodePassed,
		Msg:   fmt.Sprintf("%s passed (%d), still to beat: %s\n", seat, passes, last.Cards.Paint()),
		Seat:  seat,
		Cards: tokens(last.Cards),
	}
}

// TrickOver names the seat that won the trick and leads the next one.
func TrickOver(leader string) Reply {
	return Reply{Code: CodeTrickOver, Msg: fmt.Sprintf("Everyone passed, %s leads a new trick\n", leader), Seat: leader}
}

func Hint(play game.Play) Reply {
	if play.Pass {
		return Reply{Code: CodeHint, Msg: "Hint: pass\n", Type: faces.Pass.String()}
	}
	return withFaces(Reply{
		Code:  CodeHint,
		Msg:   fmt.Sprintf("Hint: %s\n", play.Cards.Paint()),
		Cards: tokens(play.Cards),
	}, play.Faces())
}

func Reset() Reply {
	return Reply{Code: CodeReset, Msg: "Trick cleared\n"}
}

// History lists the current trick, one line per seat action.
func History(seats []string, plays []card.Cards) Reply {
	buf := bytes.Buffer{}
	if len(seats) == 0 {
		buf.WriteString("No plays in this trick\n")
	}
	for i, seat := range seats {
		if len(plays[i]) == 0 {
			buf.WriteString(fmt.Sprintf("%s: pass\n", seat))
			continue
		}
		buf.WriteString(fmt.Sprintf("%s: %s\n", seat, plays[i].Paint()))
	}
	return Reply{Code: CodeHistory, Msg: buf.String()}
}

func Dealt(landlord string, size int) Reply {
	return Reply{
		Code: CodeDealt,
		Msg:  fmt.Sprintf("Cards dealt, %s is the landlord with %d cards and leads\n", landlord, size),
		Seat: landlord,
	}
}

func Hand(seat string, hand card.Cards) Reply {
	return Reply{
		Code:  CodeHand,
		Msg:   fmt.Sprintf("%s holds %d: %s\n", seat, len(hand), hand.Paint()),
		Seat:  seat,
		Cards: tokens(hand),
	}
}

func Won(seat string, cards card.Cards) Reply {
	return Reply{
		Code:  CodeWon,
		Msg:   fmt.Sprintf("%s played %s and won the game!\n", seat, cards.Paint()),
		Seat:  seat,
		Cards: tokens(cards),
	}
}
