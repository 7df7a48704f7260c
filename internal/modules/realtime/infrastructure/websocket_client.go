package infrastructure

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"vantraResto/internal/modules/realtime/domain"
)

const (
	readLimit    = 1 << 16
	readDeadline = 60 * time.Second
	pingInterval = 30 * time.Second
)

var clientSequence atomic.Int64

// Client is one connected dashboard surface (list view, kanban, dashboard
// widgets). Outbound messages go through a buffered send channel drained by
// WritePump; inbound frames are decoded as commands by ReadPump.
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	id         string
	commands   *CommandProcessor
	subscribed map[string]struct{}
	receiveAll bool
	closeOnce  sync.Once
}

// NewClient creates a websocket client with the given send buffer size.
func NewClient(hub *Hub, conn *websocket.Conn, buf int, commands *CommandProcessor) *Client {
	if buf <= 0 {
		buf = 8
	}
	return &Client{
		hub:        hub,
		conn:       conn,
		send:       make(chan []byte, buf),
		id:         fmt.Sprintf("surface-%d", clientSequence.Add(1)),
		commands:   commands,
		subscribed: make(map[string]struct{}),
	}
}

// ID returns the hub-assigned identifier used in logs.
func (c *Client) ID() string { return c.id }

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.send)
		_ = c.conn.Close()
	})
}

// SendDomainMessage marshals and queues a message for this client only.
func (c *Client) SendDomainMessage(msg *domain.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("websocket marshal error", slog.Any("error", err))
		return
	}
	select {
	case c.send <- data:
	default:
		slog.Warn("websocket send buffer full", slog.String("clientId", c.id))
		go c.hub.detachClient(c)
	}
}

// WritePump drains the send channel onto the wire and keeps the connection
// alive with periodic pings. It returns when the channel closes or a write
// fails.
func (c *Client) WritePump() {
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				slog.Warn("websocket write error", slog.String("clientId", c.id), slog.Any("error", err))
				return
			}
		case <-ping.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				slog.Warn("websocket ping error", slog.String("clientId", c.id), slog.Any("error", err))
				return
			}
		}
	}
}

// ReadPump decodes inbound frames as commands until the connection drops,
// then detaches the client from the hub.
func (c *Client) ReadPump() {
	c.conn.SetReadLimit(readLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(readDeadline))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(readDeadline))
	})
	defer c.hub.detachClient(c)
	for {
		var cmd Command
		_ = c.conn.SetReadDeadline(time.Now().Add(readDeadline))
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("websocket read error", slog.String("clientId", c.id), slog.Any("error", err))
			}
			return
		}
		if c.commands != nil {
			c.commands.Process(c, cmd)
		}
	}
}
