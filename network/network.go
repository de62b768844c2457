package network

import (
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/service"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

var idleTimeout = consts.IdleTimeout

// handle referees one connection until it exits, goes idle or drops.
func handle(rwc protocol.ReadWriteCloser) error {
	c := newClient(network.Wrapper(rwc))
	defer c.close()
	async.Async(c.listening)

	session := service.Connected(c.conn.ID())
	defer service.Disconnected(c.conn.ID())
	log.Infof("session %s opened for connection %d\n", session.ID, c.conn.ID())
	if err := c.writeString(session.Welcome()); err != nil {
		return err
	}
	for {
		packet, err := c.askForPacket(idleTimeout)
		switch err {
		case nil:
		case consts.ErrorsExist, consts.ErrorsChanClosed:
			log.Infof("session %s closed\n", session.ID)
			return nil
		case consts.ErrorsTimeout:
			log.Infof("session %s idle for %s, closed\n", session.ID, idleTimeout.Round(time.Second))
			return c.writeError(err)
		default:
			return err
		}
		reply, err := session.Handle(packet.String())
		if err == consts.ErrorsExist {
			return nil
		}
		if err != nil {
			if err := c.writeError(err); err != nil {
				return err
			}
			continue
		}
		if err := c.writeString(reply); err != nil {
			return err
		}
	}
}
