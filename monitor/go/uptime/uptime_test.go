package uptime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPercent(t *testing.T) {
	require.Equal(t, 0.0, Percent(0, 0))
	require.Equal(t, 100.0, Percent(10, 10))
	require.Equal(t, 50.0, Percent(1, 2))
	require.Equal(t, 70.0, Percent(7, 10))
}

func TestValidPeriod(t *testing.T) {
	for _, period := range Periods {
		require.True(t, ValidPeriod(period), period)
	}
	require.False(t, ValidPeriod(""))
	require.False(t, ValidPeriod(All))
	require.False(t, ValidPeriod("fortnight"))
}
