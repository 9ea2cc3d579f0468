// Package server exposes expression resolution over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/DrSkyle/timeslash/internal/config"
	"go.uber.org/zap"
)

// Server is the timeslash HTTP API.
type Server struct {
	log      *zap.Logger
	settings config.Settings
	handler  http.Handler

	// now is the clock; swapped out in tests.
	now func() time.Time
}

func New(log *zap.Logger, settings config.Settings) *Server {
	s := &Server{
		log:      log,
		settings: settings,
		now:      time.Now,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /v1/resolve", s.handleResolve)
	mux.HandleFunc("POST /v1/resolve", s.handleResolveBatch)
	mux.HandleFunc("GET /v1/range", s.handleRange)
	mux.HandleFunc("GET /v1/parse", s.handleParse)

	s.handler = requestID(recovery(log, logging(log, traced(mux))))
	return s
}

// Handler returns the full middleware stack, mostly for tests.
func (s *Server) Handler() http.Handler { return s.handler }

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.settings.Listen,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", s.settings.Listen))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
