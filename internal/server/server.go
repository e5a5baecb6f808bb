// Package server exposes the generation engine as an HTTP JSON API.
//
// The server is transport glue only: it normalizes seeds, calls the pure
// generators and serializes the returned records. All content decisions
// live in the world package and the catalog.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/samdwyer/pixelsaga/internal/catalog"
)

// Server is the HTTP server for the PixelSaga API.
type Server struct {
	cfg     Config
	catalog *catalog.Catalog
	logger  *Logger
	router  chi.Router
}

// New creates a server and mounts its routes.
func New(cfg Config, cat *catalog.Catalog, logger *Logger) *Server {
	s := &Server{
		cfg:     cfg,
		catalog: cat,
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/api/status", s.handleStatus)
	r.Post("/api/generate-map", s.handleGenerateMap)
	r.Post("/api/generate-quest", s.handleGenerateQuest)
	r.Post("/api/generate-asset", s.handleGenerateAsset)

	s.router = r
	return s
}

// Handler returns the root HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves HTTP until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("listening on %s", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// requestLogger assigns each request an ID and logs its outcome.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		w.Header().Set("X-Request-Id", reqID)

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Infof("%s %s %d %s request_id=%s",
			r.Method, r.URL.Path, ww.Status(), time.Since(start), reqID)
	})
}
