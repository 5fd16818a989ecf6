// Package handlers implements the gateway's public HTTP API: the five event
// ingestion endpoints plus read-only proxies for aggregate and uptime
// queries. Ingestion never waits on broker I/O, and the proxies never expose
// the backing services directly.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gogo/protobuf/jsonpb"
	"github.com/gogo/protobuf/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/OlegKovalenko00/webmetrics/aggregator/go/aggregationpb"
	"github.com/OlegKovalenko00/webmetrics/gateway/go/publisher"
	"github.com/OlegKovalenko00/webmetrics/go/events"
	"github.com/OlegKovalenko00/webmetrics/go/httputils"
	"github.com/OlegKovalenko00/webmetrics/go/stats"
	"github.com/OlegKovalenko00/webmetrics/go/wmlog"
	"github.com/OlegKovalenko00/webmetrics/monitor/go/uptime"
)

// DefaultProxyTimeout bounds proxied aggregation queries when no timeout was
// configured.
const DefaultProxyTimeout = 2 * time.Second

// The error codes reported in ErrorResponse bodies.
const (
	CodeInvalidPageView         = "INVALID_PAGE_VIEW"
	CodeInvalidClickEvent       = "INVALID_CLICK_EVENT"
	CodeInvalidPerformanceEvent = "INVALID_PERFORMANCE_EVENT"
	CodeInvalidErrorEvent       = "INVALID_ERROR_EVENT"
	CodeInvalidCustomEvent      = "INVALID_CUSTOM_EVENT"
	CodeValidationError         = "VALIDATION_ERROR"
	CodeInternalError           = "INTERNAL_ERROR"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// EventPublisher is the part of the publisher the handlers use.
type EventPublisher interface {
	// Publish enqueues e for delivery to the broker.
	Publish(e events.Event) error

	// Connected reports whether the broker connection is up.
	Connected() bool
}

// UptimeClient fetches uptime reports from the monitoring service.
type UptimeClient interface {
	Uptime(ctx context.Context, service, period string) (*uptime.Response, error)
	PeriodUptime(ctx context.Context, period, service string) (*uptime.Response, error)
}

// aggJSON renders proxied aggregation responses with the proto field names
// and with zero-valued counts included.
var aggJSON = jsonpb.Marshaler{OrigName: true, EmitDefaults: true}

// Handlers holds the gateway's HTTP handlers and their dependencies.
type Handlers struct {
	publisher  EventPublisher
	agg        aggregationpb.AggregationServiceClient
	aggTimeout time.Duration
	monitor    UptimeClient

	accepted map[events.Kind]stats.Counter
}

// New returns a new *Handlers. aggTimeout <= 0 selects DefaultProxyTimeout.
func New(pub EventPublisher, agg aggregationpb.AggregationServiceClient, aggTimeout time.Duration, monitor UptimeClient) *Handlers {
	if aggTimeout <= 0 {
		aggTimeout = DefaultProxyTimeout
	}
	accepted := map[events.Kind]stats.Counter{}
	for _, kind := range events.AllKinds {
		accepted[kind] = stats.GetCounter("gateway_events_accepted", map[string]string{"queue": kind.QueueName()})
	}
	return &Handlers{
		publisher:  pub,
		agg:        agg,
		aggTimeout: aggTimeout,
		monitor:    monitor,
		accepted:   accepted,
	}
}

// Ready reports whether the gateway can currently deliver accepted events,
// which is what the readiness endpoint reports.
func (h *Handlers) Ready(ctx context.Context) bool {
	return h.publisher.Connected()
}

// Register registers every gateway endpoint on the given router.
func (h *Handlers) Register(r chi.Router) {
	r.Post("/page-views", httputils.CorsHandler(h.PageView))
	r.Post("/clicks", httputils.CorsHandler(h.Click))
	r.Post("/performance", httputils.CorsHandler(h.Performance))
	r.Post("/errors", httputils.CorsHandler(h.ErrorEvent))
	r.Post("/custom-events", httputils.CorsHandler(h.CustomEvent))

	r.Get("/aggregation/watermark", httputils.CorsHandler(h.Watermark))
	r.Post("/aggregation/page-views", httputils.CorsHandler(h.PageViewsAgg))
	r.Post("/aggregation/clicks", httputils.CorsHandler(h.ClicksAgg))
	r.Post("/aggregation/performance", httputils.CorsHandler(h.PerformanceAgg))
	r.Post("/aggregation/errors", httputils.CorsHandler(h.ErrorsAgg))
	r.Post("/aggregation/custom-events", httputils.CorsHandler(h.CustomEventsAgg))

	r.Get("/uptime", httputils.CorsHandler(h.Uptime))
	r.Get("/uptime/{period}", httputils.CorsHandler(h.PeriodUptime))
}

// PageView handles POST /page-views.
func (h *Handlers) PageView(w http.ResponseWriter, r *http.Request) {
	h.ingest(w, r, &events.PageView{}, CodeInvalidPageView)
}

// Click handles POST /clicks.
func (h *Handlers) Click(w http.ResponseWriter, r *http.Request) {
	h.ingest(w, r, &events.Click{}, CodeInvalidClickEvent)
}

// Performance handles POST /performance.
func (h *Handlers) Performance(w http.ResponseWriter, r *http.Request) {
	h.ingest(w, r, &events.Performance{}, CodeInvalidPerformanceEvent)
}

// ErrorEvent handles POST /errors.
func (h *Handlers) ErrorEvent(w http.ResponseWriter, r *http.Request) {
	h.ingest(w, r, &events.Error{}, CodeInvalidErrorEvent)
}

// CustomEvent handles POST /custom-events.
func (h *Handlers) CustomEvent(w http.ResponseWriter, r *http.Request) {
	h.ingest(w, r, &events.Custom{}, CodeInvalidCustomEvent)
}

// ingest decodes the request body into e, validates it, and enqueues it for
// publishing. A malformed or invalid body reports invalidCode; an accepted
// event gets a bare 202.
func (h *Handlers) ingest(w http.ResponseWriter, r *http.Request, e events.Event, invalidCode string) {
	if err := json.NewDecoder(r.Body).Decode(e); err != nil {
		sendError(w, http.StatusBadRequest, invalidCode, "Invalid JSON: "+err.Error(), nil)
		return
	}
	if verr := e.Validate(); verr != nil {
		sendError(w, http.StatusBadRequest, invalidCode, verr.Message, verr.Details())
		return
	}
	if err := h.publisher.Publish(e); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, publisher.ErrQueueFull) {
			code = http.StatusServiceUnavailable
		}
		wmlog.Errorf("Failed to enqueue %s event: %s", e.Kind(), err)
		sendError(w, code, CodeInternalError, "Failed to publish event", nil)
		return
	}
	h.accepted[e.Kind()].Inc(1)
	w.WriteHeader(http.StatusAccepted)
}

// Watermark handles GET /aggregation/watermark.
func (h *Handlers) Watermark(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.aggTimeout)
	defer cancel()
	resp, err := h.agg.GetWatermark(ctx, &aggregationpb.GetWatermarkRequest{})
	h.sendAgg(w, resp, err)
}

// PageViewsAgg handles POST /aggregation/page-views.
func (h *Handlers) PageViewsAgg(w http.ResponseWriter, r *http.Request) {
	var req aggregationpb.GetPageViewsAggRequest
	if !h.decodeAggQuery(w, r, &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), h.aggTimeout)
	defer cancel()
	resp, err := h.agg.GetPageViewsAgg(ctx, &req)
	h.sendAgg(w, resp, err)
}

// ClicksAgg handles POST /aggregation/clicks.
func (h *Handlers) ClicksAgg(w http.ResponseWriter, r *http.Request) {
	var req aggregationpb.GetClicksAggRequest
	if !h.decodeAggQuery(w, r, &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), h.aggTimeout)
	defer cancel()
	resp, err := h.agg.GetClicksAgg(ctx, &req)
	h.sendAgg(w, resp, err)
}

// PerformanceAgg handles POST /aggregation/performance.
func (h *Handlers) PerformanceAgg(w http.ResponseWriter, r *http.Request) {
	var req aggregationpb.GetPerformanceAggRequest
	if !h.decodeAggQuery(w, r, &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), h.aggTimeout)
	defer cancel()
	resp, err := h.agg.GetPerformanceAgg(ctx, &req)
	h.sendAgg(w, resp, err)
}

// ErrorsAgg handles POST /aggregation/errors.
func (h *Handlers) ErrorsAgg(w http.ResponseWriter, r *http.Request) {
	var req aggregationpb.GetErrorsAggRequest
	if !h.decodeAggQuery(w, r, &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), h.aggTimeout)
	defer cancel()
	resp, err := h.agg.GetErrorsAgg(ctx, &req)
	h.sendAgg(w, resp, err)
}

// CustomEventsAgg handles POST /aggregation/custom-events.
func (h *Handlers) CustomEventsAgg(w http.ResponseWriter, r *http.Request) {
	var req aggregationpb.GetCustomEventsAggRequest
	if !h.decodeAggQuery(w, r, &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), h.aggTimeout)
	defer cancel()
	resp, err := h.agg.GetCustomEventsAgg(ctx, &req)
	h.sendAgg(w, resp, err)
}

// decodeAggQuery parses the request body into the given aggregation request
// message. Timestamps arrive as RFC 3339 strings and field names match the
// proto definitions.
func (h *Handlers) decodeAggQuery(w http.ResponseWriter, r *http.Request, req proto.Message) bool {
	if err := jsonpb.Unmarshal(r.Body, req); err != nil {
		sendError(w, http.StatusBadRequest, CodeValidationError, "Invalid JSON: "+err.Error(), nil)
		return false
	}
	return true
}

// sendAgg writes a proxied aggregation response. The aggregation service's
// own argument validation passes through as a 400; everything else it
// reports is a dependency failure.
func (h *Handlers) sendAgg(w http.ResponseWriter, resp proto.Message, err error) {
	if err != nil {
		if status.Code(err) == codes.InvalidArgument {
			sendError(w, http.StatusBadRequest, CodeValidationError, status.Convert(err).Message(), nil)
			return
		}
		wmlog.Errorf("Aggregation query failed: %s", err)
		sendError(w, http.StatusBadGateway, CodeInternalError, "Aggregation service unavailable", nil)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := aggJSON.Marshal(w, resp); err != nil {
		wmlog.Errorf("Failed to write aggregation response: %s", err)
	}
}

// Uptime handles GET /uptime?service=NAME[&period=...].
func (h *Handlers) Uptime(w http.ResponseWriter, r *http.Request) {
	service := r.URL.Query().Get("service")
	if service == "" {
		sendError(w, http.StatusBadRequest, CodeValidationError, "missing query param: service", nil)
		return
	}
	period := r.URL.Query().Get("period")
	if period != "" && !uptime.ValidPeriod(period) {
		sendError(w, http.StatusBadRequest, CodeValidationError, "invalid period. expected day|week|month|year", nil)
		return
	}
	resp, err := h.monitor.Uptime(r.Context(), service, period)
	h.sendUptime(w, resp, err)
}

// PeriodUptime handles GET /uptime/{period}?service=NAME.
func (h *Handlers) PeriodUptime(w http.ResponseWriter, r *http.Request) {
	period := chi.URLParam(r, "period")
	if !uptime.ValidPeriod(period) {
		sendError(w, http.StatusBadRequest, CodeValidationError, "invalid period. expected day|week|month|year", nil)
		return
	}
	service := r.URL.Query().Get("service")
	if service == "" {
		sendError(w, http.StatusBadRequest, CodeValidationError, "missing query param: service", nil)
		return
	}
	resp, err := h.monitor.PeriodUptime(r.Context(), period, service)
	h.sendUptime(w, resp, err)
}

// sendUptime writes a proxied uptime response.
func (h *Handlers) sendUptime(w http.ResponseWriter, resp *uptime.Response, err error) {
	if err != nil {
		wmlog.Errorf("Uptime query failed: %s", err)
		sendError(w, http.StatusBadGateway, CodeInternalError, "Monitoring service unavailable", nil)
		return
	}
	sendJSON(w, http.StatusOK, resp)
}

func sendJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		wmlog.Errorf("Failed to write response: %s", err)
	}
}

func sendError(w http.ResponseWriter, status int, code, message string, details map[string]string) {
	sendJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	})
}
