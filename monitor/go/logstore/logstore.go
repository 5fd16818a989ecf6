// Package logstore defines the storage interface for the probe log. The
// prober appends one row per probe; the uptime endpoints read the rows back
// as per-window tallies.
package logstore

import (
	"context"

	"github.com/OlegKovalenko00/webmetrics/monitor/go/uptime"
)

// Store is the interface used to persist probe results and compute uptime.
type Store interface {
	// WriteSample appends one probe result for the named service.
	WriteSample(ctx context.Context, service string, ok bool) error

	// UptimeStats tallies the named service's probe results over every
	// reporting window, measured backwards from now. The returned map has
	// one entry per uptime.Periods element.
	UptimeStats(ctx context.Context, service string) (map[string]uptime.Stats, error)
}
