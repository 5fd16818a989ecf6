package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	h := New("aggregation-service", nil)
	r := chi.NewRouter()
	h.Register(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp PingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "ok", resp.Status)
	require.Equal(t, "aggregation-service", resp.Service)
	ts, err := time.Parse("2006-01-02T15:04:05Z", resp.Timestamp)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}

func TestReady(t *testing.T) {
	connected := true
	h := New("metrics-service", func(ctx context.Context) bool {
		return connected
	})
	r := chi.NewRouter()
	h.Register(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health/ready", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var resp ReadyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "ready", resp.Status)
	require.True(t, resp.DatabaseConnected)

	connected = false
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health/ready", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp = ReadyResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "not_ready", resp.Status)
	require.False(t, resp.DatabaseConnected)
}

func TestReadyNilCheckAlwaysReady(t *testing.T) {
	h := New("api-service", nil)
	w := httptest.NewRecorder()
	h.Ready(w, httptest.NewRequest("GET", "/health/ready", nil))
	require.Equal(t, http.StatusOK, w.Code)
}
