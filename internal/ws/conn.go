package ws

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var (
	ErrConnClosed   = errors.New("ws: connection closed")
	ErrWriteTimeout = errors.New("ws: write timed out")
)

const (
	sendBuffer   = 64
	writeTimeout = 5 * time.Second
)

// Conn wraps a websocket connection behind a single writer goroutine, so the
// registry can push frames from any goroutine without racing on the socket.
type Conn struct {
	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func NewConn(conn *websocket.Conn) *Conn {
	c := &Conn{
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
	go c.writeLoop()
	return c
}

func (c *Conn) writeLoop() {
	for {
		select {
		case data := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}

// WriteJSON queues a JSON frame for the writer goroutine. It fails instead
// of blocking when the connection is closed or the buffer stays full.
func (c *Conn) WriteJSON(v any) error {
	select {
	case <-c.done:
		return ErrConnClosed
	default:
	}

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	select {
	case c.send <- data:
		return nil
	case <-c.done:
		return ErrConnClosed
	case <-time.After(writeTimeout):
		return ErrWriteTimeout
	}
}

func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		err = c.conn.Close()
	})
	return err
}

// ReadUntilClose drains inbound frames until the peer disconnects or errors.
// Inbound frames carry no application semantics on this channel; message
// sending goes over the HTTP API.
func (c *Conn) ReadUntilClose() {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
