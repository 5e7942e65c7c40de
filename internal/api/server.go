// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires the ops HTTP surface: probes plus a JSON preview of the
comic pipeline.

Architecture:

  - The router is chi with the shared middleware chain.
  - Preview routes call the same resolve/render pair as the chat commands,
    so operators can check the archive without going through Discord.
*/
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/xkcdbot/internal/core/comic"
	"github.com/taibuivan/xkcdbot/internal/platform/constants"
	"github.com/taibuivan/xkcdbot/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// Handlers groups the handler sets mounted on the router.
type Handlers struct {
	// Liveness is the /health handler; always 200 while the process runs.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler; 200 once the gateway session is up.
	Readiness http.HandlerFunc

	// Comic serves the preview routes under /api/v1/comics.
	Comic *comic.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the middleware chain and
// registers all route groups. port is the TCP port to bind.
func NewServer(port string, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.PanicRecovery(log))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Preview API
	if h.Comic != nil {
		r.Route("/api/v1", func(api chi.Router) {
			api.Mount("/comics", h.Comic.Routes())
		})
	}

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server. It blocks until the server is shut
// down, in which case it returns nil.
func (s *Server) ListenAndServe() error {
	s.log.Info("ops_server_starting", slog.String("addr", s.httpServer.Addr))

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
