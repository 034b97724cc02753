package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gateway-delegation/lookup-services/internal/config"
	"github.com/gateway-delegation/lookup-services/internal/logger"
	"github.com/gateway-delegation/lookup-services/internal/lookup"
	"github.com/gateway-delegation/lookup-services/internal/respond"
	"github.com/gateway-delegation/lookup-services/internal/server/handlers"
	lookupmiddleware "github.com/gateway-delegation/lookup-services/internal/server/middleware"
	"github.com/gateway-delegation/lookup-services/internal/version"
)

type Server struct {
	service   lookup.Endpoint
	config    *config.ServerEnvironment
	logger    *slog.Logger
	router    *chi.Mux
	endpoints []string
}

// NewServer wires svc into a router. The service's catalog must be fully loaded:
// the server only ever reads it.
func NewServer(
	svc lookup.Endpoint,
	cfg *config.ServerEnvironment,
	logger *slog.Logger,
) *Server {
	server := &Server{
		service: svc,
		config:  cfg,
		logger:  logger,
		router:  chi.NewRouter(),
	}

	server.setupMiddleware()
	server.registerRoutes()

	return server
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Endpoints returns the route templates reported by the health endpoint.
func (s *Server) Endpoints() []string {
	return append([]string(nil), s.endpoints...)
}

func (s *Server) setupMiddleware() {
	s.router.Use(lookupmiddleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(logger.RequestLogging(s.logger))
	s.router.Use(lookupmiddleware.Recoverer)
	s.router.Use(middleware.Timeout(s.config.RequestTimeout))
	s.router.Use(lookupmiddleware.SecurityHeaders(s.config.Environment))
	s.router.Use(lookupmiddleware.RequestSizeLimit(s.config.MaxRequestBytes))
}

func (s *Server) registerRoutes() {
	info := s.service.Info()

	collection := s.config.RoutePrefix + "/" + info.Resource
	item := collection + "/{" + info.Param + "}"

	s.endpoints = []string{"/", item, "/health"}

	identityHeaders := lookup.IdentityHeaders{
		CallerID:    s.config.CallerIDHeader,
		CallerEmail: s.config.CallerEmailHeader,
	}
	lookupHandler := handlers.HandleLookup(s.service, identityHeaders)

	s.router.Get("/", handlers.HandleRoot(s.service, version.Get().Version))
	s.router.Get("/health", handlers.HandleHealth(s.service, s.endpoints))

	s.router.Get(item, lookupHandler)
	// an empty key is an ordinary miss, not an unknown route
	s.router.Get(collection+"/", lookupHandler)

	s.router.NotFound(respond.NotFound)
	s.router.MethodNotAllowed(respond.MethodNotAllowed)
}

// Addr returns the listen address, falling back to the service's default port.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.PortOrDefault(s.service.Info().DefaultPort))
}

// Start serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	serverAddr := s.Addr()

	httpServer := &http.Server{
		Addr:         serverAddr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("service listening",
			slog.String("service", s.service.Info().Name),
			slog.String("environment", s.config.Environment),
			slog.String("address", serverAddr),
			slog.Int("db_records", s.service.Size()),
			slog.Any("endpoints", s.endpoints))

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.config.ServerShutdownTimeout)
	defer shutdownCancel()

	s.logger.Info("shutting down HTTP server")

	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		s.logger.Warn("HTTP server shutdown error",
			slog.String("error", err.Error()))
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}
