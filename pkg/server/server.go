// Package server exposes formatting, validation, and minification over an
// HTTP JSON API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/sqlkit/sqlformat/pkg/config"
	"github.com/sqlkit/sqlformat/pkg/formatter"
	"github.com/sqlkit/sqlformat/pkg/mysqltokens"
	"github.com/sqlkit/sqlformat/pkg/validator"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Server is the HTTP API server.
type Server struct {
	cfg            *config.Config
	logger         *slog.Logger
	formatter      *formatter.Formatter
	validator      *validator.Validator
	mysqlValidator *validator.Validator
}

// New creates a Server from the given configuration.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:            cfg,
		logger:         logger,
		formatter:      formatter.New(),
		validator:      validator.New(),
		mysqlValidator: validator.New(validator.WithTokenizer(mysqltokens.New())),
	}
}

// Router builds the chi router with all API routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
		corsMiddleware(s.cfg.Server.CORSOrigins),
		limitBody(config.MaxSQLLength+4096), // JSON envelope overhead
	)

	r.Route("/api", func(r chi.Router) {
		r.Post("/format", s.handleFormat)
		r.Post("/validate", s.handleValidate)
		r.Post("/minify", s.handleMinify)
		r.Get("/options", s.handleOptions)
		r.Get("/health", s.handleHealth)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}

// Serve starts the HTTP server and blocks until the context is cancelled or
// the listener fails. Shutdown is graceful with a five second budget.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info("starting API server", "addr", fmt.Sprintf("http://%s", addr))

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: s.Router(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down API server")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
