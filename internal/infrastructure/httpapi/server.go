// Package httpapi serves the release listing and detail lookups over HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ersonp/vgame-horizon/internal/application/handlers"
)

// shutdownTimeout bounds the graceful shutdown once the context is cancelled.
const shutdownTimeout = 10 * time.Second

// Services reports which upstream services are configured.
type Services struct {
	Catalog bool `json:"catalog"`
	LLM     bool `json:"llm"`
	History bool `json:"history"`
}

// Deps holds the application handlers served by the API. Nil handlers are
// replaced by ones that report their service as unavailable.
type Deps struct {
	Releases *handlers.ReleasesHandler
	Details  *handlers.DetailsHandler
	History  *handlers.HistoryHandler
	Services Services
}

// Server is the HTTP API server.
type Server struct {
	addr     string
	releases *handlers.ReleasesHandler
	details  *handlers.DetailsHandler
	history  *handlers.HistoryHandler
	services Services
	logger   *zap.Logger
}

// NewServer creates a server listening on addr.
func NewServer(addr string, deps Deps, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		addr:     addr,
		releases: deps.Releases,
		details:  deps.Details,
		history:  deps.History,
		services: deps.Services,
		logger:   logger,
	}
	if s.releases == nil {
		s.releases = handlers.NewReleasesHandler(nil, 0)
	}
	if s.details == nil {
		s.details = handlers.NewDetailsHandler(nil, nil, logger)
	}
	if s.history == nil {
		s.history = handlers.NewHistoryHandler(nil)
	}
	return s
}

// Handler returns the routed handler with middleware applied.
//
//	GET /health
//	GET /api/games?year=&month=&limit=&translate=&platform=
//	GET /api/games/{name}/detail?fallback_name=
//	GET /api/search?q=&limit=&translate=&platform=
//	GET /api/history?limit=
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/games", s.handleGames)
	mux.HandleFunc("GET /api/games/{name}/detail", s.handleDetail)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path))
	})

	return WithLogging(s.logger, CORS(mux))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}
