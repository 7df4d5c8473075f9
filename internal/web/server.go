// Package web is the page shell of the course UI: a chi server with three
// mutually exclusive views (landing, loading, course), transient toast
// notifications, and a websocket push channel.
package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/coursetrail/coursetrail/internal/api"
	"github.com/coursetrail/coursetrail/internal/course"
	"github.com/coursetrail/coursetrail/internal/disclosure"
	"github.com/coursetrail/coursetrail/internal/render"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool          // allow all CORS origins (dev mode)
	ToastTTL time.Duration // auto-dismiss delay for notifications
}

// View identifies one of the top-level page views. Exactly one is active
// at any time.
type View string

const (
	ViewLanding View = "landing"
	ViewLoading View = "loading"
	ViewCourse  View = "course"
)

// Server wires the API client, course store, disclosure controller and
// renderer behind the HTTP surface.
type Server struct {
	cfg      Config
	backend  *api.Client
	store    *course.Store
	ctrl     *disclosure.Controller
	renderer *render.Renderer
	toasts   *ToastCenter
	hub      *Hub

	viewMu sync.Mutex
	view   View

	router     chi.Router
	httpServer *http.Server
}

// New creates the UI server with all dependencies.
func New(cfg Config, backend *api.Client, store *course.Store, ctrl *disclosure.Controller, renderer *render.Renderer) *Server {
	if cfg.ToastTTL <= 0 {
		cfg.ToastTTL = 4 * time.Second
	}
	s := &Server{
		cfg:      cfg,
		backend:  backend,
		store:    store,
		ctrl:     ctrl,
		renderer: renderer,
		toasts:   NewToastCenter(cfg.ToastTTL),
		hub:      NewHub(),
		view:     ViewLanding,
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", s.ServeIndex)
	r.Get("/api/status", s.handleStatus)
	r.Get("/api/view", s.handleView)
	r.Post("/api/course", s.handleStartCourse)
	r.Delete("/api/course", s.handleResetCourse)
	r.Post("/api/course/weeks/{week}/toggle", s.handleToggleWeek)
	r.Post("/api/course/weeks/{week}/days/{day}", s.handleLoadDay)
	r.Get("/ws", s.handleWebSocket)

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// CurrentView returns the active top-level view.
func (s *Server) CurrentView() View {
	s.viewMu.Lock()
	defer s.viewMu.Unlock()
	return s.view
}

func (s *Server) setView(v View) {
	s.viewMu.Lock()
	s.view = v
	s.viewMu.Unlock()
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		// Generation requests stay open for the duration of a model
		// call, which can run into minutes on local hardware.
		WriteTimeout: 15 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("web: coursetrail listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
