package web

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/saltyorg/duckapi/internal/config"
	"github.com/saltyorg/duckapi/internal/database"
	"github.com/saltyorg/duckapi/internal/maintenance"
	"github.com/saltyorg/duckapi/internal/web/handlers"
	"github.com/saltyorg/duckapi/internal/web/middleware"
)

// Server represents the web server
type Server struct {
	store      database.Store
	port       int
	bind       string
	allowedNet *net.IPNet
	router     *chi.Mux
	handlers   *handlers.Handlers
}

// NewServer creates a new web server
func NewServer(store database.Store, port int, bind string, allowedNet *net.IPNet) *Server {
	s := &Server{
		store:      store,
		port:       port,
		bind:       bind,
		allowedNet: allowedNet,
		router:     chi.NewRouter(),
		handlers:   handlers.New(store),
	}

	s.setupRoutes()
	return s
}

// SetVersionInfo forwards build information to the handlers
func (s *Server) SetVersionInfo(version, commit, date string) {
	s.handlers.SetVersionInfo(version, commit, date)
}

// SetScheduler attaches the checkpoint scheduler for health reporting
func (s *Server) SetScheduler(scheduler *maintenance.Scheduler) {
	s.handlers.SetScheduler(scheduler)
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	r := s.router
	h := s.handlers

	r.Use(chimiddleware.RequestID)
	// AllowSubnet must come BEFORE RealIP so we check the actual connection source
	r.Use(middleware.AllowSubnet(s.allowedNet))
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	// CORS answers OPTIONS for every path before routing
	r.Use(middleware.CORS)
	r.Use(middleware.EscapedPath)
	if timeout := config.GetTimeouts().Request; timeout > 0 {
		r.Use(chimiddleware.Timeout(timeout))
	}

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)

	r.Get("/", h.Root)
	r.Get("/health", h.Health)
	r.Get("/stats", h.Stats)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)
		r.Post("/", h.CreateUser)
		r.Get("/{id}", h.GetUser)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Post("/", h.CreateProduct)
		r.Get("/category/", h.ProductsByCategory)
		r.Get("/category/{category}", h.ProductsByCategory)
	})
}

// Start starts the web server and blocks until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	var addr string
	if s.bind != "" {
		addr = fmt.Sprintf("%s:%d", s.bind, s.port)
	} else {
		addr = fmt.Sprintf(":%d", s.port)
	}

	timeouts := config.GetTimeouts()
	server := &http.Server{
		Addr:        addr,
		Handler:     s.router,
		ReadTimeout: timeouts.Read,
		IdleTimeout: timeouts.Idle,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errChan:
		return err
	}
}
