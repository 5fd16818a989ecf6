package prober

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/OlegKovalenko00/webmetrics/go/now"
	"github.com/OlegKovalenko00/webmetrics/go/testutils"
	"github.com/OlegKovalenko00/webmetrics/go/wmerr"
	"github.com/OlegKovalenko00/webmetrics/monitor/go/logstore"
	"github.com/OlegKovalenko00/webmetrics/monitor/go/uptime"
)

// sample is one recorded probe outcome.
type sample struct {
	service string
	ok      bool
}

// captureStore implements logstore.Store, recording samples in memory.
type captureStore struct {
	mtx      sync.Mutex
	writeErr error
	samples  []sample
}

func (s *captureStore) WriteSample(_ context.Context, service string, ok bool) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.samples = append(s.samples, sample{service: service, ok: ok})
	return nil
}

func (s *captureStore) UptimeStats(context.Context, string) (map[string]uptime.Stats, error) {
	return nil, nil
}

func (s *captureStore) recorded() []sample {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return append([]sample{}, s.samples...)
}

var _ logstore.Store = (*captureStore)(nil)

// newTarget serves h from a test server and returns it as a probe target.
func newTarget(t *testing.T, name string, h http.Handler) Target {
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	u, err := url.Parse(ts.URL)
	require.NoError(t, err)
	return Target{Name: name, Host: u.Hostname(), Port: u.Port()}
}

// healthHandler answers the health endpoints with fixed statuses and a fixed
// readiness body.
func healthHandler(pingStatus, readyStatus int, readyBody string) http.Handler {
	r := chi.NewRouter()
	r.Get("/health/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(pingStatus)
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(readyStatus)
		_, _ = w.Write([]byte(readyBody))
	})
	return r
}

func healthy(t *testing.T, name string) Target {
	return healthyWithBody(t, name, `{"status":"ready","database_connected":true}`)
}

func healthyWithBody(t *testing.T, name string, readyBody string) Target {
	return newTarget(t, name, healthHandler(http.StatusOK, http.StatusOK, readyBody))
}

// unreachable returns a target whose server has already been shut down.
func unreachable(t *testing.T, name string) Target {
	ts := httptest.NewServer(http.NotFoundHandler())
	u, err := url.Parse(ts.URL)
	require.NoError(t, err)
	ts.Close()
	return Target{Name: name, Host: u.Hostname(), Port: u.Port()}
}

func TestProbeDue_FirstRoundProbesEverything(t *testing.T) {
	testutils.SkipIfShort(t)
	store := &captureStore{}
	p := New(store, []Target{healthy(t, "api-service")}, nil)
	p.ProbeDue(now.TimeTravelingContext(time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)))
	require.Equal(t, []sample{
		{service: "api-service", ok: true},
		{service: "api-service", ok: true},
	}, store.recorded())
}

func TestProbeDue_SchedulesPingAndReadySeparately(t *testing.T) {
	testutils.SkipIfShort(t)
	store := &captureStore{}
	p := New(store, []Target{healthy(t, "api-service")}, nil)
	start := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	ctx := now.TimeTravelingContext(start)

	// First round fires both probes.
	p.ProbeDue(ctx)
	require.Len(t, store.recorded(), 2)

	// One second later nothing is due.
	ctx.SetTime(start.Add(time.Second))
	p.ProbeDue(ctx)
	require.Len(t, store.recorded(), 2)

	// At +15s only the liveness probe is due again.
	ctx.SetTime(start.Add(15 * time.Second))
	p.ProbeDue(ctx)
	require.Len(t, store.recorded(), 3)

	// At +45s the liveness probe (rescheduled for +30s) and the readiness
	// probe are both due.
	ctx.SetTime(start.Add(45 * time.Second))
	p.ProbeDue(ctx)
	require.Len(t, store.recorded(), 5)
}

func TestProbeDue_RecordsFailures(t *testing.T) {
	testutils.SkipIfShort(t)
	store := &captureStore{}
	down := newTarget(t, "metrics-service", healthHandler(http.StatusInternalServerError, http.StatusServiceUnavailable, `{"status":"not_ready","database_connected":false}`))
	p := New(store, []Target{down}, nil)
	p.ProbeDue(now.TimeTravelingContext(time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)))
	require.Equal(t, []sample{
		{service: "metrics-service", ok: false},
		{service: "metrics-service", ok: false},
	}, store.recorded())
}

func TestCheckPing(t *testing.T) {
	testutils.SkipIfShort(t)
	p := New(&captureStore{}, nil, nil)
	ctx := context.Background()
	require.True(t, p.checkPing(ctx, healthy(t, "up")))
	require.False(t, p.checkPing(ctx, newTarget(t, "erroring", healthHandler(http.StatusInternalServerError, http.StatusOK, `{}`))))
	require.False(t, p.checkPing(ctx, unreachable(t, "gone")))
}

func TestCheckReady(t *testing.T) {
	testutils.SkipIfShort(t)
	p := New(&captureStore{}, nil, nil)
	ctx := context.Background()

	// The only passing answer is a 200 with database_connected true.
	require.True(t, p.checkReady(ctx, healthy(t, "up")))
	require.False(t, p.checkReady(ctx, healthyWithBody(t, "db-down", `{"status":"ready","database_connected":false}`)))
	require.False(t, p.checkReady(ctx, newTarget(t, "not-ready", healthHandler(http.StatusOK, http.StatusServiceUnavailable, `{"status":"not_ready","database_connected":false}`))))
	require.False(t, p.checkReady(ctx, healthyWithBody(t, "garbled", `{"database_connected":`)))
	require.False(t, p.checkReady(ctx, unreachable(t, "gone")))
}

func TestProbeDue_StoreFailureKeepsProbing(t *testing.T) {
	testutils.SkipIfShort(t)
	store := &captureStore{writeErr: wmerr.Fmt("db is down")}
	p := New(store, []Target{healthy(t, "api-service")}, nil)
	start := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	ctx := now.TimeTravelingContext(start)

	p.ProbeDue(ctx)
	require.Empty(t, store.recorded())

	// Once the store recovers the next due probe is recorded again.
	store.mtx.Lock()
	store.writeErr = nil
	store.mtx.Unlock()
	ctx.SetTime(start.Add(15 * time.Second))
	p.ProbeDue(ctx)
	require.Equal(t, []sample{{service: "api-service", ok: true}}, store.recorded())
}
