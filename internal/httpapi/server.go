// Package httpapi maps the monitor engine onto HTTP routes. It holds
// no state of its own; everything interesting happens in the injected
// service.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"uptimemonitor/internal/domain"
	apimw "uptimemonitor/internal/httpapi/middleware"
	"uptimemonitor/internal/monitor"
)

const apiVersion = "1.0.0"

type Server struct {
	Logger   *zap.Logger
	Monitors *monitor.Service
}

func NewServer(l *zap.Logger, svc *monitor.Service) *Server {
	return &Server{Logger: l, Monitors: svc}
}

// Router wires the route table. Everything under /api/uptime requires
// the shared key except /api/uptime/stats, which is open by design.
func (s *Server) Router(key apimw.Verifier, allowedOrigins []string, rpm, burst int) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	if len(allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "POST", "DELETE"},
			AllowedHeaders: []string{"Authorization", "X-API-Key", "Content-Type"},
		}))
	} else {
		r.Use(cors.AllowAll().Handler)
	}
	r.Use(apimw.RateLimit(rpm, burst))

	r.Get("/", s.handleRoot)
	r.Get("/api/all", s.handleListEndpoints)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// stats stays unauthenticated; every other monitor route mutates or
	// exposes per-monitor detail and is gated on the shared key
	r.Get("/api/uptime/stats", s.handleStats)

	r.Group(func(r chi.Router) {
		r.Use(apimw.RequireKey(key))
		r.Get("/api/uptime/monitors", s.handleGetMonitors)
		r.Get("/api/uptime/monitors/add", s.handleAddMonitor)
		r.Post("/api/uptime/monitors/add", s.handleAddMonitor)
		r.Get("/api/uptime/monitors/remove", s.handleRemoveMonitor)
		r.Delete("/api/uptime/monitors/remove", s.handleRemoveMonitor)
		r.Get("/api/uptime/monitors/history", s.handleHistory)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the domain taxonomy onto status codes. Anything
// unrecognized is a 500, which should not happen in steady state.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidURL), errors.Is(err, domain.ErrDuplicateURL):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"detail": err.Error()})
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Uptime Monitor API",
		"version": apiVersion,
	})
}

type endpointInfo struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

func (s *Server) handleListEndpoints(w http.ResponseWriter, _ *http.Request) {
	endpoints := []endpointInfo{
		{"/", "GET", "API root - returns basic info about the API"},
		{"/api/all", "GET", "List all available API endpoints"},
		{"/api/uptime/monitors", "GET", "Get all monitors or check a specific URL (use ?url= parameter)"},
		{"/api/uptime/monitors/add", "GET", "Add a new URL to monitor (use ?url= parameter)"},
		{"/api/uptime/monitors/add", "POST", "Add a new URL to monitor via POST request"},
		{"/api/uptime/monitors/remove", "DELETE", "Remove a URL from monitoring (use ?url= parameter)"},
		{"/api/uptime/monitors/history", "GET", "Get check history for a specific monitor (use ?url= parameter)"},
		{"/api/uptime/stats", "GET", "Get overall statistics including up/down URLs"},
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total_endpoints": len(endpoints),
		"endpoints":       endpoints,
	})
}

// handleGetMonitors lists every monitor, or — with ?url= — probes that
// URL right now and returns the recorded snapshot.
func (s *Server) handleGetMonitors(w http.ResponseWriter, r *http.Request) {
	if url := r.URL.Query().Get("url"); url != "" {
		snap, err := s.Monitors.Probe(r.Context(), url)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, snap)
		return
	}

	list, err := s.Monitors.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"monitors": list,
		"total":    len(list),
	})
}

type addPayload struct {
	URL string `json:"url"`
}

// targetURL reads the URL from the query string or, for POSTs, a JSON
// body as a fallback.
func targetURL(r *http.Request) string {
	if u := r.URL.Query().Get("url"); u != "" {
		return u
	}
	if r.Method == http.MethodPost && r.Body != nil {
		var p addPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err == nil {
			return p.URL
		}
	}
	return ""
}

func (s *Server) handleAddMonitor(w http.ResponseWriter, r *http.Request) {
	url := targetURL(r)
	receipt, err := s.Monitors.Add(r.Context(), url)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		*monitor.AddReceipt
		Message string `json:"message"`
	}{receipt, fmt.Sprintf("Monitor added for %s", url)})
}

func (s *Server) handleRemoveMonitor(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if err := s.Monitors.Remove(r.Context(), url); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Monitor removed for %s", url),
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	h, err := s.Monitors.History(r.Context(), r.URL.Query().Get("url"), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.Monitors.Fleet(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
