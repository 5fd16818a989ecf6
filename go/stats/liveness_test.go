package stats

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLiveness(t *testing.T) {
	c := getPromClient()
	l := newLiveness(c, "periodic-task", false, map[string]string{"instance": "a"})

	// A fresh liveness reports close to zero.
	require.Less(t, l.Get(), int64(2))

	l.ManualReset(time.Now().Add(-10 * time.Second))
	require.GreaterOrEqual(t, l.Get(), int64(10))
	v, err := strconv.ParseInt(get(t, "liveness{instance=\"a\",name=\"periodic-task\"}"), 10, 64)
	require.NoError(t, err)
	require.GreaterOrEqual(t, v, int64(10))

	l.Reset()
	require.Less(t, l.Get(), int64(2))
}
