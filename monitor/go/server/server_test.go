package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/OlegKovalenko00/webmetrics/go/wmerr"
	"github.com/OlegKovalenko00/webmetrics/monitor/go/logstore"
	"github.com/OlegKovalenko00/webmetrics/monitor/go/uptime"
)

// fakeStore implements logstore.Store with canned uptime stats.
type fakeStore struct {
	err         error
	stats       map[string]uptime.Stats
	lastService string
}

func (f *fakeStore) WriteSample(context.Context, string, bool) error {
	return nil
}

func (f *fakeStore) UptimeStats(_ context.Context, service string) (map[string]uptime.Stats, error) {
	f.lastService = service
	if f.err != nil {
		return nil, f.err
	}
	return f.stats, nil
}

var _ logstore.Store = (*fakeStore)(nil)

// stat builds one Stats entry the way the store does.
func stat(ok, total int64) uptime.Stats {
	return uptime.Stats{OK: ok, Total: total, Percent: uptime.Percent(ok, total)}
}

func allStats() map[string]uptime.Stats {
	return map[string]uptime.Stats{
		uptime.Day:   stat(2, 3),
		uptime.Week:  stat(9, 10),
		uptime.Month: stat(99, 100),
		uptime.Year:  stat(365, 365),
	}
}

func newRouter(store logstore.Store) *chi.Mux {
	r := chi.NewRouter()
	New(store).Register(r)
	return r
}

func do(r http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUptime_ReportsEveryWindow(t *testing.T) {
	store := &fakeStore{stats: allStats()}
	w := do(newRouter(store), "/uptime?service=api-service")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "api-service", store.lastService)
	require.JSONEq(t, `{
		"service": "api-service",
		"period": "all",
		"periods": {
			"day":   {"ok": 2,   "total": 3,   "percent": 66.66666666666667},
			"week":  {"ok": 9,   "total": 10,  "percent": 90},
			"month": {"ok": 99,  "total": 100, "percent": 99},
			"year":  {"ok": 365, "total": 365, "percent": 100}
		}
	}`, w.Body.String())
}

func TestUptime_PeriodQueryReportsOneWindow(t *testing.T) {
	store := &fakeStore{stats: allStats()}
	w := do(newRouter(store), "/uptime?service=api-service&period=week")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{
		"service": "api-service",
		"period": "week",
		"periods": {
			"week": {"ok": 9, "total": 10, "percent": 90}
		}
	}`, w.Body.String())
}

func TestPeriodUptime_PathPeriod(t *testing.T) {
	store := &fakeStore{stats: allStats()}
	w := do(newRouter(store), "/uptime/day?service=service-X")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "service-X", store.lastService)
	require.JSONEq(t, `{
		"service": "service-X",
		"period": "day",
		"periods": {
			"day": {"ok": 2, "total": 3, "percent": 66.66666666666667}
		}
	}`, w.Body.String())
}

func TestUptime_MissingService(t *testing.T) {
	w := do(newRouter(&fakeStore{stats: allStats()}), "/uptime")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error": "missing query param: service"}`, w.Body.String())

	w = do(newRouter(&fakeStore{stats: allStats()}), "/uptime/day")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error": "missing query param: service"}`, w.Body.String())
}

func TestUptime_InvalidPeriod(t *testing.T) {
	w := do(newRouter(&fakeStore{stats: allStats()}), "/uptime?service=api-service&period=fortnight")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error": "invalid period. expected day|week|month|year"}`, w.Body.String())

	w = do(newRouter(&fakeStore{stats: allStats()}), "/uptime/decade?service=api-service")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error": "invalid period. expected day|week|month|year"}`, w.Body.String())
}

func TestUptime_StoreFailure(t *testing.T) {
	store := &fakeStore{err: wmerr.Fmt("probe log unavailable")}
	w := do(newRouter(store), "/uptime?service=api-service")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "failed to read stats", body.Error)
	require.Contains(t, body.Details, "probe log unavailable")
}
