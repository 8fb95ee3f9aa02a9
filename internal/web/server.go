// Package web provides the HTTP server and handlers for the hbnb API.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/evcraddock/hbnb/internal/facade"
	"github.com/evcraddock/hbnb/internal/logging"
)

const apiPrefix = "/api/v1"

// Options tunes the server's middleware.
type Options struct {
	// RateLimitRPS is the per-client request rate. Zero disables limiting.
	RateLimitRPS   float64
	RateLimitBurst int
}

// Server is the hbnb HTTP API server.
type Server struct {
	facade  *facade.Facade
	limiter *RateLimiter
	mux     *http.ServeMux
	handler http.Handler
}

// NewServer creates a server backed by the given facade.
func NewServer(f *facade.Facade, opts Options) *Server {
	s := &Server{
		facade:  f,
		limiter: NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst),
		mux:     http.NewServeMux(),
	}

	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc(apiPrefix+"/users", s.handleAPIUsers)
	s.mux.HandleFunc(apiPrefix+"/users/", s.handleAPIUsers)
	s.mux.HandleFunc(apiPrefix+"/amenities", s.handleAPIAmenities)
	s.mux.HandleFunc(apiPrefix+"/amenities/", s.handleAPIAmenities)
	s.mux.HandleFunc(apiPrefix+"/places", s.handleAPIPlaces)
	s.mux.HandleFunc(apiPrefix+"/places/", s.handleAPIPlaces)
	s.mux.HandleFunc(apiPrefix+"/reviews", s.handleAPIReviews)
	s.mux.HandleFunc(apiPrefix+"/reviews/", s.handleAPIReviews)

	s.handler = logging.RequestLogger(s.limiter.Middleware(s.mux))
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listening on %s: %w", addr, err)
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// splitPath trims the resource prefix and returns the remaining segments.
func splitPath(path, prefix string) []string {
	rest := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if rest == "" {
		return nil
	}
	return strings.Split(rest, "/")
}
