package live

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/preston-bernstein/rivalry-service/internal/ack"
	"github.com/preston-bernstein/rivalry-service/internal/countup"
	"github.com/preston-bernstein/rivalry-service/internal/excuses"
	"github.com/preston-bernstein/rivalry-service/internal/logging"
	"github.com/preston-bernstein/rivalry-service/internal/metrics"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4 * 1024

	// Three counters tick every 16ms, so the buffer covers a few frames of backlog.
	sendBuffer = 256
)

// client is one page's live connection. Everything it starts is torn down by close.
type client struct {
	conn     *websocket.Conn
	send     chan Message
	done     chan struct{}
	once     sync.Once
	sel      *excuses.Selector
	counters *countup.Group
	ack      *ack.Acknowledger
	logger   *slog.Logger
	recorder *metrics.Recorder
}

func newClient(conn *websocket.Conn, sel *excuses.Selector, ackWindow time.Duration, logger *slog.Logger, recorder *metrics.Recorder) *client {
	c := &client{
		conn:     conn,
		send:     make(chan Message, sendBuffer),
		done:     make(chan struct{}),
		sel:      sel,
		counters: countup.NewGroup(),
		logger:   logger,
		recorder: recorder,
	}
	c.ack = ack.New(ackWindow, func(copied bool) {
		c.sendJSONWait(copiedMessage(copied))
	})
	return c
}

// startCounters runs the three hero animations independently.
func (c *client) startCounters(targets map[string]int, duration time.Duration) {
	for _, name := range []string{CounterPackers, CounterTies, CounterBears} {
		name, target := name, targets[name]
		err := c.counters.Start(name, target, duration, func(v int) {
			// The final value is what the page keeps showing, so it must not be dropped.
			if v == target {
				c.sendJSONWait(tickMessage(name, v))
				return
			}
			c.sendJSON(tickMessage(name, v))
		})
		if err != nil {
			logging.Warn(c.logger, "counter not started",
				slog.String(logging.FieldCounter, name),
				slog.Any("err", err),
			)
		}
	}
}

// readPump handles client messages until the connection fails or closes.
func (c *client) readPump() {
	defer c.close()
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				logging.Warn(c.logger, "live read failed", slog.Any("err", err))
			}
			return
		}
		c.handle(msg)
	}
}

func (c *client) handle(msg Message) {
	switch msg.Type {
	case MsgNextExcuse:
		text := c.sel.Next()
		c.recorder.RecordExcuseDraw(metrics.SourceLive)
		c.sendJSON(Message{Type: MsgExcuse, Text: text})
	case MsgCopy:
		c.sendJSON(Message{Type: MsgShare, Text: excuses.ShareText(c.sel.Current())})
		c.ack.Trigger()
		c.recorder.RecordShareCopy(metrics.SourceLive, nil)
	case MsgCopyFailed:
		reason := msg.Reason
		if reason == "" {
			reason = "clipboard write failed"
		}
		c.ack.Clear()
		c.recorder.RecordShareCopy(metrics.SourceLive, errors.New(reason))
		logging.Warn(c.logger, "share copy failed", slog.String("reason", reason))
		c.sendJSON(Message{Type: MsgCopyError})
	default:
		c.sendJSON(Message{Type: MsgError, Error: "unknown message type"})
	}
}

// writePump is the only writer on the connection.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				c.close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()
				return
			}
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

// sendJSON queues msg without blocking; frames are dropped once the client is gone or too slow.
func (c *client) sendJSON(msg Message) {
	select {
	case <-c.done:
		return
	default:
	}
	select {
	case c.send <- msg:
	case <-c.done:
	default:
	}
}

// sendJSONWait queues msg, waiting for buffer space until the client is gone.
func (c *client) sendJSONWait(msg Message) {
	select {
	case <-c.done:
		return
	default:
	}
	select {
	case c.send <- msg:
	case <-c.done:
	}
}

// close cancels the counters and the acknowledgement timer, then releases the connection.
func (c *client) close() {
	c.once.Do(func() {
		close(c.done)
		c.counters.Close()
		c.ack.Stop()
	})
}
