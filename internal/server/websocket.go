package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
	"github.com/flowstate-live/flowstate/internal/biz/repo"
	"github.com/flowstate-live/flowstate/internal/biz/usecase"
	"github.com/flowstate-live/flowstate/internal/service"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxControlSize = 4096
	sendQueueSize  = 64
	replyTimeout   = 5 * time.Second

	greeting = "Connected to FlowState backend"
)

// ErrConnClosed is returned when sending to a connection that has gone away
var ErrConnClosed = errors.New("connection closed")

// SessionHub is the session registry as seen by the transport
type SessionHub interface {
	Subscribe(ctx context.Context, input string, sub repo.Subscriber) (service.SubscribeResult, error)
	Unsubscribe(sub repo.Subscriber) (string, bool)
	OnSubscriberDisconnect(sub repo.Subscriber)
}

// WebSocketServer accepts subscriber connections and speaks the
// SUBSCRIBE/UNSUBSCRIBE control protocol
type WebSocketServer struct {
	hub      SessionHub
	upgrader websocket.Upgrader
	logger   *slog.Logger

	mu    sync.Mutex
	conns map[string]*Conn
}

// NewWebSocketServer creates a new websocket server
func NewWebSocketServer(hub SessionHub) *WebSocketServer {
	return &WebSocketServer{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Browser extensions connect from their own origin
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: slog.With("component", "websocket"),
		conns:  make(map[string]*Conn),
	}
}

// ServeHTTP upgrades the request and serves the connection until it closes
func (s *WebSocketServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	conn := newConn(ws)
	s.track(conn)
	s.logger.Info("client connected", "subscriber", conn.id, "remote", r.RemoteAddr, "total", s.Connections())

	go conn.writeLoop()
	_ = conn.Send(r.Context(), domain.NewConnectedEvent(greeting))

	s.readLoop(conn)

	s.hub.OnSubscriberDisconnect(conn)
	conn.close()
	s.untrack(conn)
	s.logger.Info("client disconnected", "subscriber", conn.id, "total", s.Connections())
}

// Connections returns the number of open connections
func (s *WebSocketServer) Connections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// CloseAll closes every open connection
func (s *WebSocketServer) CloseAll() {
	s.mu.Lock()
	conns := make([]*Conn, 0, len(s.conns))
	for _, c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		c.close()
	}
}

func (s *WebSocketServer) track(c *Conn) {
	s.mu.Lock()
	s.conns[c.id] = c
	s.mu.Unlock()
}

func (s *WebSocketServer) untrack(c *Conn) {
	s.mu.Lock()
	delete(s.conns, c.id)
	s.mu.Unlock()
}

// readLoop handles inbound control messages until the connection fails
func (s *WebSocketServer) readLoop(c *Conn) {
	c.ws.SetReadLimit(maxControlSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				s.logger.Debug("read failed", "subscriber", c.id, "error", err)
			}
			return
		}
		_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
		s.handleControl(c, data)
	}
}

// handleControl applies one control message. Malformed input is answered with
// an error event and never closes the connection.
func (s *WebSocketServer) handleControl(c *Conn, data []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
	defer cancel()

	var msg domain.ControlMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		s.logger.Warn("invalid control message", "subscriber", c.id, "error", err)
		_ = c.Send(ctx, domain.NewErrorEvent("Invalid JSON"))
		return
	}

	switch msg.Normalized() {
	case domain.ControlSubscribe:
		res, err := s.hub.Subscribe(ctx, msg.Target(), c)
		if err != nil {
			text := err.Error()
			if errors.Is(err, usecase.ErrInvalidSessionID) {
				text = "Invalid video ID or URL"
			}
			s.logger.Warn("subscribe rejected", "subscriber", c.id, "target", msg.Target(), "error", err)
			_ = c.Send(ctx, domain.NewErrorEvent(text))
			return
		}
		_ = c.Send(ctx, domain.NewSubscribedEvent(res.SessionID))

	case domain.ControlUnsubscribe:
		if _, ok := s.hub.Unsubscribe(c); ok {
			_ = c.Send(ctx, domain.NewUnsubscribedEvent())
		}

	default:
		s.logger.Warn("unknown control message", "subscriber", c.id, "type", msg.Type)
		_ = c.Send(ctx, domain.NewErrorEvent(fmt.Sprintf("Unknown message type: %s", msg.Type)))
	}
}

// Conn is one websocket subscriber. Events are queued and written by a
// dedicated goroutine so concurrent broadcasts never interleave frames.
type Conn struct {
	id    string
	ws    *websocket.Conn
	queue chan *domain.Event
	done  chan struct{}
	once  sync.Once
}

func newConn(ws *websocket.Conn) *Conn {
	return &Conn{
		id:    uuid.NewString(),
		ws:    ws,
		queue: make(chan *domain.Event, sendQueueSize),
		done:  make(chan struct{}),
	}
}

// ID implements repo.Subscriber
func (c *Conn) ID() string {
	return c.id
}

// Send implements repo.Subscriber. It waits for queue space until ctx expires.
func (c *Conn) Send(ctx context.Context, event *domain.Event) error {
	select {
	case <-c.done:
		return ErrConnClosed
	default:
	}

	select {
	case c.queue <- event:
		return nil
	case <-c.done:
		return ErrConnClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Conn) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case event := <-c.queue:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteJSON(event); err != nil {
				c.close()
				return
			}
		case <-ticker.C:
			if err := c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				c.close()
				return
			}
		}
	}
}

func (c *Conn) close() {
	c.once.Do(func() {
		close(c.done)
		_ = c.ws.Close()
	})
}
