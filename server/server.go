// Package server exposes the learner to the host application over a
// device-local HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/agenticsorg/tvbrain/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/learner.go -pkg mocks -skip-ensure -fmt goimports . Learner
//go:generate moq -out mocks/content_store.go -pkg mocks -skip-ensure -fmt goimports . ContentStore
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	learner   Learner
	contents  ContentStore
	scheduler Scheduler
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Learner interface for server operations
type Learner interface {
	AddContent(item domain.ContentItem) (*domain.ContentItem, error)
	AddContents(items []domain.ContentItem) ([]*domain.ContentItem, error)
	RecordSession(session domain.ViewingSession, actionTaken domain.Action) error
	GetRecommendations(count int) []domain.Recommendation
	ProcessFeedback(fb domain.Feedback) error
	GetStats() domain.LearningStats
	GetPreferences() domain.UserPreference
	ExportModel() *domain.ModelSnapshot
	ImportModel(snap *domain.ModelSnapshot) error
}

// ContentStore interface for catalog persistence
type ContentStore interface {
	Upsert(ctx context.Context, item *domain.ContentItem) error
}

// Scheduler interface for on-demand operations
type Scheduler interface {
	TriggerSnapshot()
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, learner Learner, contents ContentStore, scheduler Scheduler, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		learner:   learner,
		contents:  contents,
		scheduler: scheduler,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("tvbrain", "agenticsorg", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /recommendations", s.recommendationsHandler)
		r.HandleFunc("POST /content", s.addContentHandler)
		r.HandleFunc("POST /sessions", s.recordSessionHandler)
		r.HandleFunc("POST /feedback", s.feedbackHandler)
		r.HandleFunc("GET /stats", s.statsHandler)
		r.HandleFunc("GET /preferences", s.preferencesHandler)
		r.HandleFunc("GET /model", s.exportModelHandler)
		r.HandleFunc("POST /model", s.importModelHandler)
	})
}
