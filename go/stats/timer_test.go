package stats

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimer(t *testing.T) {
	c := getPromClient()
	timer := newTimer(c, "tick", true, map[string]string{"app": "aggregator"})
	elapsed := timer.Stop()
	require.GreaterOrEqual(t, elapsed, time.Duration(0))

	// One observation is recorded per Stop().
	count, err := strconv.ParseInt(get(t, "timer_count{app=\"aggregator\",name=\"tick\"}"), 10, 64)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	timer.Start()
	timer.Stop()
	count, err = strconv.ParseInt(get(t, "timer_count{app=\"aggregator\",name=\"tick\"}"), 10, 64)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}
