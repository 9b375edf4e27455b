// Package server exposes translation over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/leapstack-labs/js2py/internal/state"
	"github.com/leapstack-labs/js2py/pkg/translate"
	"golang.org/x/sync/errgroup"
)

// Defaults used when Config leaves a field zero.
const (
	DefaultAddr        = ":8011"
	DefaultReadTimeout = 10 * time.Second
	DefaultMaxBody     = 1 << 20
)

// Server is the translation HTTP service.
type Server struct {
	translator  translate.Translator
	store       state.Store
	events      *RunEvents
	addr        string
	readTimeout time.Duration
	maxBody     int64
	logger      *slog.Logger
}

// Config holds configuration for the server.
type Config struct {
	// Indent is the default indent width; requests may override it.
	Indent int
	// Store is optional; when set, build runs are served under /runs.
	Store state.Store
	// Events enables GET /runs/events; it requires Store.
	Events      *RunEvents
	Addr        string
	ReadTimeout time.Duration
	MaxBody     int64
	Logger      *slog.Logger
}

// NewServer creates a new server instance.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	addr := cfg.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	readTimeout := cfg.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = DefaultReadTimeout
	}
	maxBody := cfg.MaxBody
	if maxBody <= 0 {
		maxBody = DefaultMaxBody
	}

	return &Server{
		translator:  translate.New().WithIndent(cfg.Indent),
		store:       cfg.Store,
		events:      cfg.Events,
		addr:        addr,
		readTimeout: readTimeout,
		maxBody:     maxBody,
		logger:      logger,
	}
}

// Addr returns the listen address.
func (s *Server) Addr() string { return s.addr }

// Handler returns the router with all routes and middleware installed.
func (s *Server) Handler() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)
	SetupRoutes(r, NewHandlers(s.translator, s.store, s.events, s.maxBody, s.logger))
	return r
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener serves on ln until the context is cancelled.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	s.logger.Info("starting translation server", "addr", ln.Addr().String())

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: s.readTimeout,
	}

	eg.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down translation server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
