// Package server exposes the dashboard API over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"mindfulme/internal/cache"
	"mindfulme/internal/service"
)

const Version = "1.0.0"

// Services are the handlers' collaborators.
type Services struct {
	Quotes  *service.QuoteService
	Weather *service.WeatherService
	News    *service.NewsService
	Mood    *service.MoodService
}

// Options describe the running instance for /health and /api.
type Options struct {
	ServerID          string
	WeatherConfigured bool
	NewsConfigured    bool
}

type Server struct {
	services Services
	cache    *cache.Cache
	opts     Options
	started  time.Time
	logger   *slog.Logger
}

func New(services Services, c *cache.Cache, opts Options, logger *slog.Logger) *Server {
	return &Server{
		services: services,
		cache:    c,
		opts:     opts,
		started:  time.Now(),
		logger:   logger.With("component", "server"),
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api", s.handleDocs)
	mux.HandleFunc("GET /api/quotes", s.cached(s.quotes))
	mux.HandleFunc("GET /api/weather/{lat}/{lon}", s.cached(s.weather))
	mux.HandleFunc("GET /api/news", s.cached(s.news))
	mux.HandleFunc("GET /api/news/{category}", s.cached(s.news))
	mux.HandleFunc("POST /api/mood", s.handleMood)
	mux.HandleFunc("/", s.handleNotFound)

	return s.logging(s.recoverer(cors(mux)))
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests
// for at most shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr, "server", s.serverName())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down", "timeout", shutdownTimeout)
	if err := srv.Shutdown(shCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) serverName() string {
	return "MindfulMe-" + s.opts.ServerID
}
