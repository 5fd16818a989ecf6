package sqlutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValuesPlaceholders(t *testing.T) {
	require.Equal(t, "($1)", ValuesPlaceholders(1, 1))
	require.Equal(t, "($1,$2),($3,$4),($5,$6)", ValuesPlaceholders(2, 3))
	require.Equal(t, "($1,$2,$3),($4,$5,$6)", ValuesPlaceholders(3, 2))
	require.Panics(t, func() {
		ValuesPlaceholders(0, 1)
	})
	require.Panics(t, func() {
		ValuesPlaceholders(1, 0)
	})
}
