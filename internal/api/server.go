// Package api provides the CedarBible REST and WebSocket server over the
// corpus manager's read API. The manager itself is network-free; this
// package is an optional outer surface started by "cedar serve".
package api

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/FocuswithJustin/CedarBible/core/daily"
	"github.com/FocuswithJustin/CedarBible/internal/bible"
	"github.com/FocuswithJustin/CedarBible/internal/logging"
)

// Server serves the read API over HTTP.
type Server struct {
	cfg   Config
	mgr   *bible.Manager
	daily *daily.Selector
}

// NewServer creates a Server over the given manager and daily selector.
func NewServer(cfg Config, mgr *bible.Manager, selector *daily.Selector) *Server {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	return &Server{cfg: cfg, mgr: mgr, daily: selector}
}

// Start runs the HTTP server; it blocks until the listener fails.
func (s *Server) Start() error {
	mux := s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	logging.ServerStartup("rest_api", "http", s.cfg.Port,
		"websocket_protocol", "ws",
		"addr", addr)

	return http.ListenAndServe(addr, logRequests(mux))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/books", s.handleBooks)
	mux.HandleFunc("/api/books/", s.handleBookByName)
	mux.HandleFunc("/api/verse", s.handleVerse)
	mux.HandleFunc("/api/search", s.handleSearch)
	mux.HandleFunc("/api/daily", s.handleDaily)
	mux.HandleFunc("/ws/search", s.handleSearchSocket)

	return mux
}

// logRequests wraps a handler with structured request logging.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.HTTPRequest(r.Method, r.URL.Path, r.RemoteAddr, rec.status, time.Since(start))
	})
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack lets the WebSocket upgrade pass through the logging wrapper.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	return hj.Hijack()
}
