// Package api exposes the projection engine over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/fipath/fi-calculator/internal/calculation"
)

// Options configures a Server.
type Options struct {
	Addr           string
	Projector      calculation.Projector
	Metrics        *Metrics
	Logger         *zap.Logger
	AllowedOrigins []string
	Version        string
}

// Server wires the gin router, CORS and the http.Server together.
type Server struct {
	opts    Options
	handler http.Handler
}

// NewServer builds the router. A nil Metrics or Logger gets a private default.
func NewServer(opts Options) (*Server, error) {
	if opts.Projector == nil {
		return nil, errors.New("api: projector is required")
	}
	if opts.Metrics == nil {
		opts.Metrics = NewMetrics()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	router := gin.New()
	router.Use(RequestID())
	router.Use(RequestLogger(opts.Logger, "/health", "/metrics"))
	router.Use(Instrument(opts.Metrics))
	router.Use(ErrorHandler(opts.Logger))

	projections := NewProjectionHandler(opts.Projector, opts.Metrics, opts.Logger)

	router.GET("/health", Health(opts.Version))
	router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/projections", projections.Project)
		v1.POST("/sensitivity", projections.Sensitivity)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})

	return &Server{opts: opts, handler: corsHandler.Handler(router)}, nil
}

// Handler returns the root handler including CORS.
func (s *Server) Handler() http.Handler { return s.handler }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.opts.Logger.Info("api server listening", zap.String("addr", s.opts.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("api server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.opts.Logger.Info("api server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("api server shutdown: %w", err)
	}
	return nil
}
