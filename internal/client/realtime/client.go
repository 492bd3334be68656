// Package realtime subscribes to realtime server channels over websocket using
// the Centrifugo JSON protocol.
package realtime

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/s21platform/doodle-sync/internal/config"
	"github.com/s21platform/doodle-sync/internal/model"
)

const (
	clientName       = "doodle-sync"
	handshakeTimeout = 10 * time.Second
	eventBuffer      = 64

	connectCommandID   uint32 = 1
	subscribeCommandID uint32 = 2
)

type Client struct {
	url    string
	userID string
	tokens TokenIssuer
	dialer *websocket.Dialer
}

func New(cfg *config.Config, tokens TokenIssuer) *Client {
	return &Client{
		url:    cfg.Centrifuge.WebsocketURL,
		userID: cfg.Session.UserID,
		tokens: tokens,
		dialer: &websocket.Dialer{HandshakeTimeout: handshakeTimeout},
	}
}

// Subscription delivers the publications of one channel. Events is closed
// when the connection ends, after Close or on a drop.
type Subscription struct {
	channel string
	conn    *websocket.Conn
	events  chan model.RowEvent

	done      chan struct{}
	closeOnce sync.Once
	stopped   chan struct{}

	errMu sync.Mutex
	err   error
}

// Subscribe opens a dedicated connection for channel and returns once the
// server confirmed the subscription.
func (c *Client) Subscribe(ctx context.Context, channel string) (*Subscription, error) {
	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial realtime server: %w", err)
	}

	if err := c.handshake(ctx, conn, channel); err != nil {
		_ = conn.Close()
		return nil, err
	}

	sub := &Subscription{
		channel: channel,
		conn:    conn,
		events:  make(chan model.RowEvent, eventBuffer),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go sub.read()

	return sub, nil
}

func (c *Client) handshake(ctx context.Context, conn *websocket.Conn, channel string) error {
	deadline := time.Now().Add(handshakeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetReadDeadline(deadline)
	defer conn.SetReadDeadline(time.Time{}) //nolint:errcheck // .

	connectToken, _, err := c.tokens.GenerateConnectToken(c.userID)
	if err != nil {
		return err
	}
	connect := model.CentrifugoCommand{
		ID:      connectCommandID,
		Connect: &model.CentrifugoConnectRequest{Token: connectToken, Name: clientName},
	}
	if err := roundTrip(conn, connect); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	subscribeToken, _, err := c.tokens.GenerateSubscribeToken(c.userID, channel)
	if err != nil {
		return err
	}
	subscribe := model.CentrifugoCommand{
		ID:        subscribeCommandID,
		Subscribe: &model.CentrifugoSubscribeRequest{Channel: channel, Token: subscribeToken},
	}
	if err := roundTrip(conn, subscribe); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	return nil
}

// roundTrip sends cmd and waits for the reply carrying its id, answering
// pings on the way.
func roundTrip(conn *websocket.Conn, cmd model.CentrifugoCommand) error {
	if err := conn.WriteJSON(cmd); err != nil {
		return err
	}

	for {
		replies, err := readReplies(conn)
		if err != nil {
			return err
		}
		for _, reply := range replies {
			switch {
			case reply.IsPing():
				if err := pong(conn); err != nil {
					return err
				}
			case reply.ID != cmd.ID:
			case reply.Error != nil:
				return fmt.Errorf("server error %d: %s", reply.Error.Code, reply.Error.Message)
			default:
				return nil
			}
		}
	}
}

// readReplies reads one frame. The server may batch several replies into a
// frame, one JSON object per line.
func readReplies(conn *websocket.Conn) ([]model.CentrifugoReply, error) {
	_, data, err := conn.ReadMessage()
	if err != nil {
		return nil, err
	}

	var replies []model.CentrifugoReply
	dec := json.NewDecoder(bytes.NewReader(data))
	for {
		var reply model.CentrifugoReply
		err := dec.Decode(&reply)
		if errors.Is(err, io.EOF) {
			return replies, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode reply: %w", err)
		}
		replies = append(replies, reply)
	}
}

func pong(conn *websocket.Conn) error {
	return conn.WriteMessage(websocket.TextMessage, []byte("{}"))
}

func (s *Subscription) Channel() string {
	return s.channel
}

func (s *Subscription) Events() <-chan model.RowEvent {
	return s.events
}

// Err reports why the subscription ended. It is nil while running and after
// a Close.
func (s *Subscription) Err() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()

	return s.err
}

// Close ends the subscription and waits for the reader to exit. It is safe
// to call more than once.
func (s *Subscription) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		err = s.conn.Close()
	})
	<-s.stopped
	return err
}

func (s *Subscription) read() {
	defer close(s.stopped)
	defer close(s.events)

	for {
		replies, err := readReplies(s.conn)
		if err != nil {
			s.fail(err)
			return
		}

		for _, reply := range replies {
			if reply.IsPing() {
				if err := pong(s.conn); err != nil {
					s.fail(err)
					return
				}
				continue
			}

			push := reply.Push
			if push == nil {
				continue
			}
			if push.Disconnect != nil {
				s.fail(fmt.Errorf("disconnected by server: %d %s", push.Disconnect.Code, push.Disconnect.Message))
				return
			}
			if push.Pub == nil || push.Channel != s.channel {
				continue
			}

			var event model.RowEvent
			if err := json.Unmarshal(push.Pub.Data, &event); err != nil {
				// undecodable publications are skipped, the stream stays up
				continue
			}

			select {
			case s.events <- event:
			case <-s.done:
				return
			}
		}
	}
}

func (s *Subscription) fail(err error) {
	select {
	case <-s.done:
		return
	default:
	}

	s.errMu.Lock()
	s.err = err
	s.errMu.Unlock()
}
