package stats

import (
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/require"

	"github.com/OlegKovalenko00/webmetrics/go/util"
)

func TestClean(t *testing.T) {
	require.Equal(t, "a_b_c", clean("a.b-c"))
}

// getPromClient returns a fresh promClient backed by a fresh global registry,
// so that tests don't collide on registered collectors.
func getPromClient() *promClient {
	prometheus.DefaultRegisterer = prometheus.NewRegistry()
	return newPromClient()
}

// get scrapes the registry and returns the value of the metric with the given
// name and label set, or "" if absent.
func get(t *testing.T, metric string) string {
	req := httptest.NewRequest("GET", "/metrics", nil)
	rw := httptest.NewRecorder()
	promhttp.HandlerFor(prometheus.DefaultRegisterer.(*prometheus.Registry), promhttp.HandlerOpts{
		ErrorLog:           nil,
		ErrorHandling:      promhttp.PanicOnError,
		DisableCompression: true,
	}).ServeHTTP(rw, req)
	resp := rw.Result()
	defer util.Close(resp.Body)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	for _, s := range strings.Split(string(b), "\n") {
		if strings.HasPrefix(s, metric) {
			return strings.Split(s, " ")[1]
		}
	}
	return ""
}

func TestInt64(t *testing.T) {
	c := getPromClient()
	check := func(m Int64Metric, metric string, expect int64) {
		actual, err := strconv.ParseInt(get(t, metric), 10, 64)
		require.NoError(t, err)
		require.Equal(t, expect, actual)
		require.Equal(t, expect, m.Get())
	}
	g := c.GetInt64Metric("a.b", map[string]string{"some_key": "some-value"})
	require.NotNil(t, g)
	require.NotNil(t, c.int64GaugeVecs["a_b [some_key]"])
	require.NotNil(t, c.int64Gauges["a_b-some_key-some-value"])
	require.Nil(t, c.int64GaugeVecs["a.b"])
	check(g, "a_b{some_key=\"some-value\"}", 0)

	g.Update(3)
	check(g, "a_b{some_key=\"some-value\"}", 3)

	g2 := c.GetInt64Metric("a.b", map[string]string{"some_key": "some-new-value"})
	require.NotNil(t, g2)
	g2.Update(4)

	check(g, "a_b{some_key=\"some-value\"}", 3)
	check(g2, "a_b{some_key=\"some-new-value\"}", 4)

	// Getting the same metric again returns the shared instance.
	g2 = c.GetInt64Metric("a.b", map[string]string{"some_key": "some-new-value"})
	check(g2, "a_b{some_key=\"some-new-value\"}", 4)

	// Metric with two tags.
	g = c.GetInt64Metric("metric_name", map[string]string{"a": "2", "b": "1"})
	require.NotNil(t, g)
	require.NotNil(t, c.int64GaugeVecs["metric_name [a b]"])
	require.NotNil(t, c.int64Gauges["metric_name-a-2-b-1"])
	check(g, "metric_name{a=\"2\",b=\"1\"}", 0)

	// Test delete.
	require.NoError(t, g.Delete())
	require.Equal(t, "", get(t, "metric_name{a=\"2\",b=\"1\"}"))
	require.Nil(t, c.int64Gauges["metric_name-a-2-b-1"])
}

func TestFloat64(t *testing.T) {
	c := getPromClient()
	check := func(m Float64Metric, metric string, expect float64) {
		actual, err := strconv.ParseFloat(get(t, metric), 64)
		require.NoError(t, err)
		require.Equal(t, expect, actual)
		require.Equal(t, expect, m.Get())
	}
	g := c.GetFloat64Metric("a.c", map[string]string{"some_key": "some-value"})
	require.NotNil(t, g)
	require.NotNil(t, c.float64GaugeVecs["a_c [some_key]"])
	require.NotNil(t, c.float64Gauges["a_c-some_key-some-value"])
	require.Nil(t, c.float64GaugeVecs["a.c"])
	check(g, "a_c{some_key=\"some-value\"}", 0.0)

	g.Update(3)
	check(g, "a_c{some_key=\"some-value\"}", 3.0)

	g2 := c.GetFloat64Metric("a.c", map[string]string{"some_key": "some-new-value"})
	require.NotNil(t, g2)
	g2.Update(4)

	check(g, "a_c{some_key=\"some-value\"}", 3.0)
	check(g2, "a_c{some_key=\"some-new-value\"}", 4.0)

	// Metric with two tags.
	g = c.GetFloat64Metric("float_metric_name", map[string]string{"a": "2", "b": "1"})
	require.NotNil(t, g)
	require.NotNil(t, c.float64GaugeVecs["float_metric_name [a b]"])
	require.NotNil(t, c.float64Gauges["float_metric_name-a-2-b-1"])
	check(g, "float_metric_name{a=\"2\",b=\"1\"}", 0.0)

	// Test delete.
	require.NoError(t, g.Delete())
	require.Equal(t, "", get(t, "float_metric_name{a=\"2\",b=\"1\"}"))
}

func TestCounter(t *testing.T) {
	c := getPromClient()
	check := func(m Counter, metric string, expect int64) {
		actual, err := strconv.ParseInt(get(t, metric), 10, 64)
		require.NoError(t, err)
		require.Equal(t, expect, actual)
		require.Equal(t, expect, m.Get())
	}
	g := c.GetCounter("c", map[string]string{"some_key": "some-value"})
	require.NotNil(t, g)

	g.Inc(3)
	// Counters with the same name and tags share state.
	g = c.GetCounter("c", map[string]string{"some_key": "some-value"})
	check(g, "c{some_key=\"some-value\"}", 3)

	g.Dec(2)
	check(g, "c{some_key=\"some-value\"}", 1)

	g.Reset()
	check(g, "c{some_key=\"some-value\"}", 0)

	// Test delete.
	require.NoError(t, g.Delete())
	require.Equal(t, "", get(t, "c{some_key=\"some-value\"}"))
}

func TestSummary(t *testing.T) {
	c := getPromClient()
	s := c.GetFloat64SummaryMetric("latency.load", map[string]string{"page": "home"})
	require.NotNil(t, s)
	s.Observe(0.25)
	s.Observe(0.75)

	count, err := strconv.ParseInt(get(t, "latency_load_count{page=\"home\"}"), 10, 64)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	sum, err := strconv.ParseFloat(get(t, "latency_load_sum{page=\"home\"}"), 64)
	require.NoError(t, err)
	require.Equal(t, 1.0, sum)

	// Getting the same summary again returns the shared instance.
	s2 := c.GetFloat64SummaryMetric("latency.load", map[string]string{"page": "home"})
	require.Equal(t, s, s2)
}
