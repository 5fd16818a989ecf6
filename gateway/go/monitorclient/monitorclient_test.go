package monitorclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/OlegKovalenko00/webmetrics/monitor/go/uptime"
)

func TestUptime_DecodesResponse(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"service": "api-service",
			"period": "all",
			"periods": {
				"day": {"ok": 95, "total": 100, "percent": 95},
				"week": {"ok": 600, "total": 700, "percent": 85.71428571428571}
			}
		}`))
	}))
	defer ts.Close()

	c := New(ts.URL, time.Second)
	got, err := c.Uptime(context.Background(), "api-service", "")
	require.NoError(t, err)
	require.Equal(t, "/uptime?service=api-service", gotPath)
	require.Equal(t, "api-service", got.Service)
	require.Equal(t, uptime.All, got.Period)
	require.Equal(t, uptime.Stats{OK: 95, Total: 100, Percent: 95}, got.Periods[uptime.Day])
}

func TestUptime_PeriodGoesInTheQuery(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		_, _ = w.Write([]byte(`{"service": "api-service", "period": "day", "periods": {}}`))
	}))
	defer ts.Close()

	_, err := New(ts.URL, time.Second).Uptime(context.Background(), "api-service", uptime.Day)
	require.NoError(t, err)
	require.Equal(t, "/uptime?period=day&service=api-service", gotPath)
}

func TestPeriodUptime_UsesThePathForm(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		_, _ = w.Write([]byte(`{"service": "metrics-service", "period": "week", "periods": {}}`))
	}))
	defer ts.Close()

	got, err := New(ts.URL, time.Second).PeriodUptime(context.Background(), uptime.Week, "metrics-service")
	require.NoError(t, err)
	require.Equal(t, "/uptime/week?service=metrics-service", gotPath)
	require.Equal(t, uptime.Week, got.Period)
}

func TestFetch_NonOKStatusIsAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "failed to read stats"}`, http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := New(ts.URL, time.Second).Uptime(context.Background(), "api-service", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 500")
}

func TestFetch_MalformedBodyIsAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":`))
	}))
	defer ts.Close()

	_, err := New(ts.URL, time.Second).Uptime(context.Background(), "api-service", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "decoding uptime response")
}
