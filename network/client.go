package network

import (
	"strings"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/landlord/consts"
)

// client pumps packets from one connection into a channel so reads can time out.
type client struct {
	conn *network.Conn
	data chan *protocol.Packet
	done chan struct{}
}

func newClient(conn *network.Conn) *client {
	return &client{
		conn: conn,
		data: make(chan *protocol.Packet, 8),
		done: make(chan struct{}),
	}
}

func (c *client) listening() {
	defer close(c.data)
	for {
		pack, err := c.conn.Read()
		if err != nil {
			log.Infof("connection %d read err %v\n", c.conn.ID(), err)
			return
		}
		select {
		case c.data <- pack:
		case <-c.done:
			return
		}
	}
}

func (c *client) askForPacket(timeout time.Duration) (*protocol.Packet, error) {
	var packet *protocol.Packet
	select {
	case packet = <-c.data:
	case <-time.After(timeout):
		return nil, consts.ErrorsTimeout
	}
	if packet == nil {
		return nil, consts.ErrorsChanClosed
	}
	if strings.ToLower(strings.TrimSpace(packet.String())) == "exit" {
		return nil, consts.ErrorsExist
	}
	return packet, nil
}

func (c *client) writeString(data string) error {
	return c.conn.Write(protocol.Packet{
		Body: []byte(data),
	})
}

func (c *client) writeError(err error) error {
	if err == consts.ErrorsExist {
		return err
	}
	return c.conn.Write(protocol.Packet{
		Body: []byte(err.Error() + "\n"),
	})
}

func (c *client) close() {
	close(c.done)
	if err := c.conn.Close(); err != nil {
		log.Error(err)
	}
}
