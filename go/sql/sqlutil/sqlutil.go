// Package sqlutil provides helpers for building batched SQL statements.
package sqlutil

import (
	"strconv"
	"strings"
)

// ValuesPlaceholders returns numbered SQL placeholders grouped for use in a
// batched INSERT. For example, ValuesPlaceholders(2, 3) returns
// ($1,$2),($3,$4),($5,$6). It panics if either param is <= 0.
func ValuesPlaceholders(valuesPerRow, numRows int) string {
	if valuesPerRow <= 0 || numRows <= 0 {
		panic("Cannot make ValuesPlaceholders with 0 rows or 0 values per row")
	}
	var values strings.Builder
	// At most 5 bytes per value need to be written.
	values.Grow(5 * valuesPerRow * numRows)
	n := 1
	for row := 0; row < numRows; row++ {
		if row > 0 {
			values.WriteString(",")
		}
		values.WriteString("(")
		for col := 0; col < valuesPerRow; col++ {
			if col > 0 {
				values.WriteString(",")
			}
			values.WriteString("$")
			values.WriteString(strconv.Itoa(n))
			n++
		}
		values.WriteString(")")
	}
	return values.String()
}
