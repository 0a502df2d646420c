// Package browser serves a minimal web interface for issuing ad-hoc
// Cypher queries against FalkorDB. It is a local debugging tool, not a
// production query path: every request opens and closes its own driver
// connection.
package browser

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/cognitivecopilot/graphkit/internal/config"
	"github.com/cognitivecopilot/graphkit/internal/graph"
	"github.com/cognitivecopilot/graphkit/internal/history"
	"github.com/cognitivecopilot/graphkit/internal/logging"
)

// DriverFactory produces a fresh driver for one request.
type DriverFactory func() graph.Driver

// Server is the query browser HTTP server.
type Server struct {
	cfg        config.Config
	log        *logging.Logger
	newDriver  DriverFactory
	history    history.Store
	startedAt  time.Time
	httpServer *http.Server
}

// ServerOption configures the browser server.
type ServerOption func(*Server)

// WithDriverFactory overrides how per-request drivers are created.
func WithDriverFactory(f DriverFactory) ServerOption {
	return func(s *Server) {
		s.newDriver = f
	}
}

// WithHistory sets the query history store.
func WithHistory(h history.Store) ServerOption {
	return func(s *Server) {
		s.history = h
	}
}

// New creates a browser server.
func New(cfg config.Config, log *logging.Logger, opts ...ServerOption) *Server {
	s := &Server{
		cfg: cfg,
		log: log.Sub("browser"),
		newDriver: func() graph.Driver {
			return graph.NewFalkorDriver(cfg.Database)
		},
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// resolveBindAddr computes the listen address from config.
func resolveBindAddr(cfg config.BrowserConfig) string {
	switch cfg.Bind {
	case "loopback":
		return fmt.Sprintf("127.0.0.1:%d", cfg.Port)
	case "custom":
		host := cfg.CustomBindHost
		if host == "" {
			host = "0.0.0.0"
		}
		return fmt.Sprintf("%s:%d", host, cfg.Port)
	default:
		return fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	}
}

// Start begins listening for HTTP connections. It blocks until the
// context is cancelled or an error occurs.
func (s *Server) Start(ctx context.Context) error {
	addr := resolveBindAddr(s.cfg.Browser)

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	handler := withMiddleware(mux, s.log)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		BaseContext:  func(l net.Listener) context.Context { return ctx },
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.startedAt = time.Now()

	s.log.Info().
		Str("addr", ln.Addr().String()).
		Str("database", fmt.Sprintf("%s:%d", s.cfg.Database.Host, s.cfg.Database.Port)).
		Str("graph", s.cfg.Database.Graph).
		Msg("query browser ready")

	// Shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		s.log.Info().Msg("shutting down query browser")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx)
	}()

	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Addr returns the server's listen address, or empty string if not started.
func (s *Server) Addr() string {
	if s.httpServer != nil {
		return s.httpServer.Addr
	}
	return ""
}

// registerRoutes sets up all HTTP routes on the server mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /execute", s.handleExecute)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/history", s.handleHistory)

	// Catch-all for unknown routes
	mux.HandleFunc("/", handleNotFound)
}
