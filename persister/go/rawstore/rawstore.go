// Package rawstore defines the storage interface for raw telemetry events.
// The write half is fed by the broker consumer, the read half backs the
// MetricsService gRPC endpoints.
package rawstore

import (
	"context"

	"github.com/OlegKovalenko00/webmetrics/go/events"
	"github.com/OlegKovalenko00/webmetrics/persister/go/metricspb"
)

// TimeRange bounds a read to [Start, End), both in seconds since the UNIX
// epoch.
type TimeRange struct {
	Start int64
	End   int64
}

// Filter narrows a read. Fields that do not apply to the queried kind are
// ignored, as are zero-valued fields. Page and ElementID match as
// substrings, the remaining fields match exactly. MinSeverity keeps rows at
// or above the given severity.
type Filter struct {
	TimeRange   *TimeRange
	Page        string
	UserID      string
	ElementID   string
	ErrorType   string
	MinSeverity events.Severity
	Name        string
	Limit       int32
	Offset      int32
}

// Store is the interface used to persist and read back raw events.
type Store interface {
	// InsertPageView writes a single page view row.
	InsertPageView(ctx context.Context, e events.PageView) error

	// InsertClick writes a single click row.
	InsertClick(ctx context.Context, e events.Click) error

	// InsertPerformance writes a single performance row.
	InsertPerformance(ctx context.Context, e events.Performance) error

	// InsertError writes a single error row.
	InsertError(ctx context.Context, e events.Error) error

	// InsertCustom writes a single custom event row.
	InsertCustom(ctx context.Context, e events.Custom) error

	// GetPageViews returns page view rows matching the filter.
	GetPageViews(ctx context.Context, f Filter) ([]*metricspb.PageViewEvent, error)

	// GetClicks returns click rows matching the filter.
	GetClicks(ctx context.Context, f Filter) ([]*metricspb.ClickEvent, error)

	// GetPerformance returns performance rows matching the filter.
	GetPerformance(ctx context.Context, f Filter) ([]*metricspb.PerformanceEvent, error)

	// GetErrors returns error rows matching the filter.
	GetErrors(ctx context.Context, f Filter) ([]*metricspb.ErrorEvent, error)

	// GetCustomEvents returns custom event rows matching the filter.
	GetCustomEvents(ctx context.Context, f Filter) ([]*metricspb.CustomEvent, error)
}
