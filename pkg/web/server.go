// Package web serves the journal editor to a browser.
//
// All requests which read or change the editor state are serialized, so the
// shell and its store are only ever used from one request at a time.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/akeil/journal"
	"github.com/akeil/journal/internal/logging"
	"github.com/akeil/journal/pkg/render"
)

//go:embed templates/*.html
var templates embed.FS

var indexTemplate = template.Must(template.ParseFS(templates, "templates/index.html"))

// Server holds the editor state and the HTTP routes.
type Server struct {
	mx     sync.Mutex
	shell  *journal.Shell
	canvas *render.Canvas
	rc     *render.Context
	hub    *hub
	router *chi.Mux
}

// NewServer creates a server for the given shell.
//
// The server subscribes to config changes of the shell: the paper is
// repainted and connected browsers are notified.
func NewServer(sh *journal.Shell, rc *render.Context) *Server {
	s := &Server{
		shell:  sh,
		canvas: render.NewCanvas(render.DefaultWidth, render.DefaultHeight),
		rc:     rc,
		hub:    newHub(),
		router: chi.NewRouter(),
	}

	// the canvas subscribes first so that clients are notified
	// after the paper is repainted
	sh.Subscribe(s.canvas)
	sh.Subscribe(journal.ObserverFunc(s.configChanged))

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close disconnects all websocket clients.
func (s *Server) Close() {
	s.hub.closeAll()
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(logRequests)
}

func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleIndex)
	s.router.Get("/paper.png", s.handlePaper)
	s.router.Get("/page.png", s.handlePage)
	s.router.Get("/ws", s.handleWebsocket)

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/draft", func(r chi.Router) {
			r.Get("/", s.handleGetDraft)
			r.Put("/", s.handleUpdateDraft)
			r.Patch("/config", s.handleUpdateConfig)
			r.Post("/save", s.handleSave)
			r.Post("/new", s.handleNew)
		})
		r.Route("/entries", func(r chi.Router) {
			r.Get("/", s.handleListEntries)
			r.Post("/{id}/load", s.handleLoadEntry)
			r.Delete("/{id}", s.handleDeleteEntry)
			r.Get("/{id}/thumbnail.png", s.handleThumbnail)
		})
	})
}

func (s *Server) configChanged(c journal.PaperConfig) {
	s.hub.broadcast(event{
		Type:    "config",
		Config:  c,
		Metrics: render.Metrics(c),
	})
}

// logRequests logs method, path, status and duration of each request.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logging.Debug("%s %s %d %v [%s]", r.Method, r.URL.Path, ww.Status(), time.Since(start),
			middleware.GetReqID(r.Context()))
	})
}
