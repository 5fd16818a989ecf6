// Package server implements the monitoring service's HTTP read surface:
// rolling uptime reports computed from the probe log.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/OlegKovalenko00/webmetrics/go/httputils"
	"github.com/OlegKovalenko00/webmetrics/go/wmlog"
	"github.com/OlegKovalenko00/webmetrics/monitor/go/logstore"
	"github.com/OlegKovalenko00/webmetrics/monitor/go/uptime"
)

// errorBody is the shape of every uptime error response.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Server serves the uptime endpoints.
type Server struct {
	store logstore.Store
}

// New returns a new *Server reading from store.
func New(store logstore.Store) *Server {
	return &Server{
		store: store,
	}
}

// Register registers the uptime endpoints on the given router.
func (s *Server) Register(r chi.Router) {
	r.Get("/uptime", httputils.CorsHandler(s.Uptime))
	r.Get("/uptime/{period}", httputils.CorsHandler(s.PeriodUptime))
}

// Uptime handles GET /uptime?service=NAME[&period=...]. Without a period it
// reports every window.
func (s *Server) Uptime(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, r.URL.Query().Get("period"))
}

// PeriodUptime handles GET /uptime/{period}?service=NAME.
func (s *Server) PeriodUptime(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, chi.URLParam(r, "period"))
}

// respond renders the uptime report for the service named in the query,
// limited to one window when period is non-empty.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, period string) {
	service := r.URL.Query().Get("service")
	if service == "" {
		sendJSON(w, http.StatusBadRequest, errorBody{Error: "missing query param: service"})
		return
	}
	if period != "" && !uptime.ValidPeriod(period) {
		sendJSON(w, http.StatusBadRequest, errorBody{Error: "invalid period. expected day|week|month|year"})
		return
	}
	stats, err := s.store.UptimeStats(r.Context(), service)
	if err != nil {
		wmlog.Errorf("Failed to read uptime stats for %s: %s", service, err)
		sendJSON(w, http.StatusInternalServerError, errorBody{Error: "failed to read stats", Details: err.Error()})
		return
	}
	resp := &uptime.Response{
		Service: service,
		Period:  uptime.All,
		Periods: stats,
	}
	if period != "" {
		resp.Period = period
		resp.Periods = map[string]uptime.Stats{period: stats[period]}
	}
	sendJSON(w, http.StatusOK, resp)
}

func sendJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		wmlog.Errorf("Failed to write uptime response: %s", err)
	}
}
