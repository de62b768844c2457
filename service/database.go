package service

import (
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

var sessions = hashmap.New()

func init() {
	async.Async(func() {
		for {
			time.Sleep(1 * time.Minute)
			sweep(time.Now())
		}
	})
}

func sweep(now time.Time) {
	idle := make([]*Session, 0)
	sessions.Foreach(func(e *hashmap.Entry) {
		if session := e.Value().(*Session); session.idle(now) {
			idle = append(idle, session)
		}
	})
	for _, session := range idle {
		log.Infof("session %s is idle, removed.\n", session.ID)
		sessions.Del(session.ConnID)
	}
}

func Connected(connID int64) *Session {
	session := newSession(connID)
	sessions.Set(connID, session)
	return session
}

func Disconnected(connID int64) {
	sessions.Del(connID)
}

func GetSession(connID int64) *Session {
	if v, ok := sessions.Get(connID); ok {
		return v.(*Session)
	}
	return nil
}

func GetSessions() []*Session {
	list := make([]*Session, 0)
	sessions.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Session))
	})
	return list
}
