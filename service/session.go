package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/landlord/game"
	"github.com/ratel-online/landlord/render"
)

// Session referees one connection: it remembers the play to beat in the current trick.
type Session struct {
	sync.Mutex
	ID     string
	ConnID int64

	seats      *Cycler
	pile       *Pile
	hands      []card.Cards
	passes     int
	json       bool
	lastActive time.Time
}

func newSession(connID int64) *Session {
	players, _ := table()
	return &Session{
		ID:         uuid.NewString(),
		ConnID:     connID,
		seats:      NewCycler(Seats(players)),
		pile:       NewPile(),
		lastActive: time.Now(),
	}
}

func (s *Session) Last() game.LastPlay {
	s.Lock()
	defer s.Unlock()
	return s.lastPlay()
}

// lastPlay is the play to beat: the top of the trick pile.
func (s *Session) lastPlay() game.LastPlay {
	top, ok := s.pile.Top()
	if !ok {
		return game.LastPlay{}
	}
	return game.NewLastPlay(int64(top.Index), top.Cards)
}

// Seat names the seat expected to act next.
func (s *Session) Seat() string {
	s.Lock()
	defer s.Unlock()
	return s.seats.Current()
}

// Hand returns the cards dealt to the seat expected to act next, nil before a deal.
func (s *Session) Hand() card.Cards {
	s.Lock()
	defer s.Unlock()
	if s.hands == nil {
		return nil
	}
	hand := make(card.Cards, len(s.hands[s.seats.Index()]))
	copy(hand, s.hands[s.seats.Index()])
	return hand
}

func (s *Session) Welcome() string {
	s.Lock()
	defer s.Unlock()
	return s.format(render.Welcome(s.ID))
}

// Handle answers one line of input. Rejected plays are answers, not errors; errors
// are reserved for input that could not be understood.
func (s *Session) Handle(input string) (string, error) {
	s.Lock()
	defer s.Unlock()
	s.lastActive = time.Now()

	name, args := split(input)
	if name == "" {
		return "", consts.ErrorsInputInvalid
	}
	if name == "exit" {
		return "", consts.ErrorsExist
	}
	var (
		reply render.Reply
		err   error
	)
	if cmd, ok := commands[name]; ok {
		reply, err = cmd(s, args)
	} else {
		reply, err = play(s, input)
	}
	if err != nil {
		return "", err
	}
	if reply.Code == render.CodeRejected {
		log.Infof("session %s rejected %v: %s\n", s.ID, reply.Cards, reply.Reason)
	}
	return s.format(reply), nil
}

func (s *Session) format(reply render.Reply) string {
	if s.json {
		return reply.JSON()
	}
	return reply.Text()
}

func (s *Session) resetTrick() {
	s.passes = 0
	s.pile.Clear()
}

func (s *Session) idle(now time.Time) bool {
	s.Lock()
	defer s.Unlock()
	return now.Sub(s.lastActive) > consts.IdleTimeout
}
