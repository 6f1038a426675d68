package controllers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	defaultReadTimeout  = 15 * time.Second
	defaultWriteTimeout = 60 * time.Second
	defaultIdleTimeout  = 60 * time.Second
)

type HTTPServer struct {
	httpServer  *http.Server
	mu          *sync.RWMutex
	isRunning   bool
	config      serverConfig
	logger      *slog.Logger
	controllers *controllersRegistry
}

type serverConfig struct {
	address string
	port    int
}

type controllersRegistry struct {
	dashboard  *DashboardController
	statistics *StatisticsController
}

// NewHTTPServer takes the bind address as-is; defaulting happens in
// config.Load, which owns env parsing.
func NewHTTPServer(logger *slog.Logger, service DashboardService, address string, port int) *HTTPServer {
	config := serverConfig{
		address: address,
		port:    port,
	}

	ctrls := &controllersRegistry{
		dashboard:  NewDashboardController(service, logger),
		statistics: NewStatisticsController(service, logger),
	}

	return &HTTPServer{
		config:      config,
		logger:      logger,
		mu:          &sync.RWMutex{},
		controllers: ctrls,
	}
}

// Start blocks until the server fails or ctx is cancelled. The mutex
// only guards the running flag and server setup; holding it across the
// blocking select would deadlock Stop.
func (s *HTTPServer) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}

	router := s.createRouter()
	s.httpServer = s.createHTTPServer(router)
	s.isRunning = true
	s.mu.Unlock()

	s.logger.Info("Starting HTTP server", "address", s.config.address, "port", s.config.port)

	errCh := make(chan error, 1)
	go s.runServer(errCh)

	select {
	case err := <-errCh:
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
		return s.Stop(context.Background(), 10*time.Second)
	}
}

func (s *HTTPServer) Stop(ctx context.Context, timeout time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.httpServer == nil || !s.isRunning {
		return nil
	}

	s.logger.Info("Initiating server shutdown...")

	shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Failed to shutdown server gracefully", "error", err)
		return err
	}

	s.isRunning = false
	s.logger.Info("Server stopped successfully")
	return nil
}

func (s *HTTPServer) createRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(s.requestLoggingMiddleware)
	s.registerAllRoutes(router)
	return router
}

func (s *HTTPServer) createHTTPServer(handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.address, s.config.port),
		Handler:      handler,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}
}

func (s *HTTPServer) runServer(errCh chan<- error) {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errCh <- err
	}
}

func (s *HTTPServer) registerAllRoutes(router *chi.Mux) {
	router.Get("/", s.controllers.dashboard.RenderDashboard)
	router.Get("/health", s.controllers.dashboard.Health)

	router.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", s.controllers.statistics.GetDashboard)
		r.Get("/progress", s.controllers.statistics.GetProgress)
		r.Get("/annotators", s.controllers.statistics.GetAnnotators)
		r.Get("/leaderboard", s.controllers.statistics.GetLeaderboard)
	})

	s.logger.Info("All HTTP routes registered successfully")
}

func (s *HTTPServer) requestLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		s.logger.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", duration,
			"remoteAddr", r.RemoteAddr,
		)
	})
}
