// Package aggstore defines the storage interface for aggregated telemetry.
// The write half is fed by the aggregation loop, the read half backs the
// AggregationService gRPC endpoints. The watermark records the end of the
// last fully aggregated window so that restarts resume where they left off.
package aggstore

import (
	"context"
	"time"

	"github.com/OlegKovalenko00/webmetrics/aggregator/go/aggregate"
)

// ReadFilter narrows a rollup read. ProjectID is always applied. The
// [From, To) bucket range bounds are each applied only when non-zero. The
// remaining string fields are optional exact-match filters and apply only
// to the kinds that have them. A Limit of zero or less falls back to the
// store default.
type ReadFilter struct {
	ProjectID string
	From      time.Time
	To        time.Time
	Page      string
	ElementID string
	ErrorType string
	EventName string
	Limit     int32
	Offset    int32
}

// Store is the interface used to persist and read back aggregated rollups.
// Each Upsert applies a whole batch in one statement: counts accumulate
// into existing rows while the remaining columns are replaced, so
// re-aggregating a window the pipeline already covered refreshes rather
// than duplicates it.
type Store interface {
	// GetWatermark returns the end of the last aggregated window.
	GetWatermark(ctx context.Context) (time.Time, error)

	// SetWatermark records the end of the last aggregated window.
	SetWatermark(ctx context.Context, t time.Time) error

	// UpsertPageViews writes a batch of page view rollups.
	UpsertPageViews(ctx context.Context, rows []aggregate.PageViewsRow) error

	// UpsertClicks writes a batch of click rollups.
	UpsertClicks(ctx context.Context, rows []aggregate.ClicksRow) error

	// UpsertPerformance writes a batch of performance rollups.
	UpsertPerformance(ctx context.Context, rows []aggregate.PerformanceRow) error

	// UpsertErrors writes a batch of error rollups.
	UpsertErrors(ctx context.Context, rows []aggregate.ErrorsRow) error

	// UpsertCustomEvents writes a batch of custom event rollups.
	UpsertCustomEvents(ctx context.Context, rows []aggregate.CustomEventsRow) error

	// ReadPageViews returns page view rollups matching the filter, newest
	// bucket first.
	ReadPageViews(ctx context.Context, f ReadFilter) ([]aggregate.PageViewsRow, error)

	// ReadClicks returns click rollups matching the filter, newest bucket
	// first.
	ReadClicks(ctx context.Context, f ReadFilter) ([]aggregate.ClicksRow, error)

	// ReadPerformance returns performance rollups matching the filter,
	// newest bucket first.
	ReadPerformance(ctx context.Context, f ReadFilter) ([]aggregate.PerformanceRow, error)

	// ReadErrors returns error rollups matching the filter, newest bucket
	// first.
	ReadErrors(ctx context.Context, f ReadFilter) ([]aggregate.ErrorsRow, error)

	// ReadCustomEvents returns custom event rollups matching the filter,
	// newest bucket first.
	ReadCustomEvents(ctx context.Context, f ReadFilter) ([]aggregate.CustomEventsRow, error)
}
