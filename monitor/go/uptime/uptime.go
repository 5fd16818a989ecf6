// Package uptime defines the wire format of the monitoring service's uptime
// reports. The gateway proxies these verbatim, so both sides share the types.
package uptime

// The reporting windows. Each is measured backwards from the time of the
// query.
const (
	Day   = "day"
	Week  = "week"
	Month = "month"
	Year  = "year"

	// All is the period reported when no specific window was requested.
	All = "all"
)

// Periods lists the valid reporting windows, largest last.
var Periods = []string{Day, Week, Month, Year}

// ValidPeriod reports whether p names a reporting window.
func ValidPeriod(p string) bool {
	for _, period := range Periods {
		if p == period {
			return true
		}
	}
	return false
}

// Stats summarizes the probe results for one service over one window.
type Stats struct {
	// OK is the number of successful probes in the window.
	OK int64 `json:"ok"`

	// Total is the number of probes in the window.
	Total int64 `json:"total"`

	// Percent is OK as a percentage of Total, or 0 when Total is 0.
	Percent float64 `json:"percent"`
}

// Percent returns ok as a percentage of total, the way Stats.Percent is
// computed.
func Percent(ok, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(ok) * 100.0 / float64(total)
}

// Response is the body of an uptime query. Periods holds one entry per
// reported window, keyed by the window name.
type Response struct {
	Service string           `json:"service"`
	Period  string           `json:"period"`
	Periods map[string]Stats `json:"periods"`
}
