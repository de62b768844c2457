package service

import (
	"strings"
	"sync"

	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/landlord/faces"
	"github.com/ratel-online/landlord/landlord/game"
	"github.com/ratel-online/landlord/landlord/player"
	"github.com/ratel-online/landlord/render"
)

type command func(session *Session, args string) (render.Reply, error)

var commands = map[string]command{
	"deck":    deck,
	"deal":    deal,
	"hand":    showHand,
	"reset":   reset,
	"history": history,
	"json":    toggleJSON,
	"hint":    hint,
	"h":       hint,
	"type":    classify,
	"t":       classify,
	"pass":    pass,
	"p":       pass,
}

var (
	mu           sync.RWMutex
	tablePlayers = consts.MaxPlayers
	bot          = player.NewGoodPlayer("ratel")
)

// Setup configures the table size and the automated player answering hints.
// Sessions opened earlier keep their seat count.
func Setup(players int, policy, name string) error {
	if players < consts.MinPlayers || players > consts.MaxPlayers {
		return consts.ErrorsInputInvalid
	}
	p, err := player.New(policy, name)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	tablePlayers = players
	bot = p
	return nil
}

func table() (int, game.Player) {
	mu.RLock()
	defer mu.RUnlock()
	return tablePlayers, bot
}

func split(input string) (string, string) {
	input = strings.TrimSpace(input)
	fields := strings.SplitN(input, " ", 2)
	name := strings.ToLower(fields[0])
	if len(fields) == 1 {
		return name, ""
	}
	return name, strings.TrimSpace(fields[1])
}

func deck(session *Session, _ string) (render.Reply, error) {
	return render.Deck(card.NewDeck()), nil
}

// deal shuffles a fresh deck; seat 1 is the landlord and takes the extra cards.
func deal(session *Session, _ string) (render.Reply, error) {
	hands, extras, err := card.Deal(card.Shuffle(card.NewDeck()))
	if err != nil {
		return render.Reply{}, err
	}
	hands[0] = append(hands[0], extras...).Sorted()
	session.hands = hands[:session.seats.Len()]
	session.resetTrick()
	session.seats.Jump(0)
	return render.Dealt(session.seats.Current(), len(hands[0])), nil
}

func showHand(session *Session, _ string) (render.Reply, error) {
	if session.hands == nil {
		return render.Reply{}, consts.ErrorsNoCards
	}
	return render.Hand(session.seats.Current(), session.hands[session.seats.Index()]), nil
}

func reset(session *Session, _ string) (render.Reply, error) {
	session.resetTrick()
	return render.Reset(), nil
}

func history(session *Session, _ string) (render.Reply, error) {
	entries := session.pile.Entries()
	seats := make([]string, 0, len(entries))
	plays := make([]card.Cards, 0, len(entries))
	for _, entry := range entries {
		seats = append(seats, entry.Seat)
		plays = append(plays, entry.Cards)
	}
	return render.History(seats, plays), nil
}

func toggleJSON(session *Session, _ string) (render.Reply, error) {
	session.json = !session.json
	if session.json {
		return render.Reply{Msg: "JSON replies on\n"}, nil
	}
	return render.Reply{Msg: "JSON replies off\n"}, nil
}

func hint(session *Session, args string) (render.Reply, error) {
	hand, err := card.ParseLine(args)
	if err != nil {
		return render.Reply{}, err
	}
	if len(hand) == 0 && session.hands != nil {
		hand = session.hands[session.seats.Index()]
	}
	_, advisor := table()
	play, err := advisor.Play(hand, session.lastPlay())
	if err != nil {
		return render.Reply{}, err
	}
	return render.Hint(play), nil
}

func classify(session *Session, args string) (render.Reply, error) {
	cards, err := card.ParseLine(args)
	if err != nil {
		return render.Reply{}, err
	}
	return render.Faces(cards, faces.Classify(cards)), nil
}

func pass(session *Session, _ string) (render.Reply, error) {
	last := session.lastPlay()
	if last.Empty() {
		return render.Reply{}, consts.ErrorsHaveToPlay
	}
	seat := session.seats.Current()
	session.pile.Add(session.seats.Index(), seat, nil)
	session.passes++
	if session.passes >= session.seats.Len()-1 {
		session.seats.Jump(int(last.PlayerID))
		session.resetTrick()
		return render.TrickOver(session.seats.Current()), nil
	}
	session.seats.Next()
	return render.Passed(seat, last, session.passes), nil
}

func play(session *Session, input string) (render.Reply, error) {
	cards, err := card.ParseLine(input)
	if err != nil {
		return render.Reply{}, err
	}
	if len(cards) == 0 {
		return render.Reply{}, consts.ErrorsInputInvalid
	}
	index := session.seats.Index()
	if session.hands != nil && !session.hands[index].Includes(cards) {
		return render.Reply{}, consts.ErrorsNotInHand
	}
	candidate := game.NewPlay(cards)
	if ok, reason := game.Playable(candidate, session.lastPlay()); !ok {
		return render.Rejected(cards, reason), nil
	}
	seat := session.seats.Current()
	if session.hands != nil {
		session.hands[index] = session.hands[index].Without(cards)
		if len(session.hands[index]) == 0 {
			session.hands = nil
			session.resetTrick()
			return render.Won(seat, cards), nil
		}
	}
	session.passes = 0
	session.pile.Add(index, seat, cards)
	session.seats.Next()
	return render.Accepted(seat, cards, candidate.Faces()), nil
}
