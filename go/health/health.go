// Package health provides the /health/ping and /health/ready HTTP endpoints
// that every service exposes and that the monitoring service probes.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/OlegKovalenko00/webmetrics/go/wmlog"
)

// ReadyCheck reports whether the service's backing store (database, message
// broker) is currently reachable.
type ReadyCheck func(ctx context.Context) bool

// PingResponse is the body of a /health/ping response.
type PingResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// ReadyResponse is the body of a /health/ready response.
type ReadyResponse struct {
	Status            string `json:"status"`
	DatabaseConnected bool   `json:"database_connected"`
	Timestamp         string `json:"timestamp"`
}

// Handlers serves the health endpoints for a single service.
type Handlers struct {
	service string
	ready   ReadyCheck
}

// New returns Handlers for the given service name. ready may be nil, in which
// case /health/ready always reports ready.
func New(service string, ready ReadyCheck) *Handlers {
	return &Handlers{
		service: service,
		ready:   ready,
	}
}

// Register registers the health endpoints on the given router.
func (h *Handlers) Register(r chi.Router) {
	r.Get("/health/ping", h.Ping)
	r.Get("/health/ready", h.Ready)
}

// Ping handles GET /health/ping. Always responds 200 when the process is up.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, PingResponse{
		Status:    "ok",
		Service:   h.service,
		Timestamp: timestamp(),
	})
}

// Ready handles GET /health/ready. Responds 200 when the backing store is
// reachable and 503 otherwise.
func (h *Handlers) Ready(w http.ResponseWriter, r *http.Request) {
	connected := true
	if h.ready != nil {
		connected = h.ready(r.Context())
	}
	status := "ready"
	code := http.StatusOK
	if !connected {
		status = "not_ready"
		code = http.StatusServiceUnavailable
	}
	sendJSON(w, code, ReadyResponse{
		Status:            status,
		DatabaseConnected: connected,
		Timestamp:         timestamp(),
	})
}

func timestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05Z")
}

func sendJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		wmlog.Errorf("Failed to write health response: %s", err)
	}
}
