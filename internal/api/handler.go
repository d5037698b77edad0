package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/flowstate-live/flowstate/internal/biz/repo"
	"github.com/flowstate-live/flowstate/internal/service"
)

const (
	defaultLimit = 20
	maxLimit     = 200
)

// SessionLister exposes the live registry view
type SessionLister interface {
	Sessions() []service.SessionInfo
}

// Server provides the HTTP surface: health, the websocket upgrade route and
// read-only views over live sessions and the archive
type Server struct {
	sessions SessionLister
	archive  repo.ArchiveRepo // nil when archiving is disabled
	ws       http.Handler
	engine   *gin.Engine

	server *http.Server
	addr   string
}

// NewServer creates a new API server
func NewServer(addr string, sessions SessionLister, archive repo.ArchiveRepo, ws http.Handler) *Server {
	s := &Server{
		sessions: sessions,
		archive:  archive,
		ws:       ws,
		addr:     addr,
	}
	s.engine = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// Clients connect on the root path; /ws is an alias
	if s.ws != nil {
		r.GET("/", gin.WrapH(s.ws))
		r.GET("/ws", gin.WrapH(s.ws))
	}

	api := r.Group("/api")
	{
		api.GET("/sessions", s.handleSessions)
		api.GET("/sessions/:id/pulses", s.handlePulses)
		api.GET("/runs", s.handleRuns)
	}
	return r
}

// Handler returns the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("listening", "component", "api", "addr", s.addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) handleSessions(c *gin.Context) {
	sessions := s.sessions.Sessions()
	c.JSON(http.StatusOK, gin.H{"sessions": sessions, "count": len(sessions)})
}

func (s *Server) handlePulses(c *gin.Context) {
	if s.archive == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "archive disabled"})
		return
	}

	pulses, err := s.archive.ListPulses(c.Request.Context(), c.Param("id"), parseLimit(c))
	if err != nil {
		slog.Error("list pulses failed", "component", "api", "session", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": c.Param("id"), "pulses": pulses})
}

func (s *Server) handleRuns(c *gin.Context) {
	if s.archive == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "archive disabled"})
		return
	}

	runs, err := s.archive.ListRuns(c.Request.Context(), parseLimit(c))
	if err != nil {
		slog.Error("list runs failed", "component", "api", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

func parseLimit(c *gin.Context) int {
	limit := defaultLimit
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit
}
