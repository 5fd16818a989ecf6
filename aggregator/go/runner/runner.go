// Package runner drives the periodic aggregation pass. Each pass rolls the
// raw events recorded since the watermark up into bucketed rows and then
// advances the watermark, so restarts resume where the last successful
// pass ended.
package runner

import (
	"context"
	"time"

	"github.com/OlegKovalenko00/webmetrics/aggregator/go/aggregate"
	"github.com/OlegKovalenko00/webmetrics/aggregator/go/aggstore"
	"github.com/OlegKovalenko00/webmetrics/aggregator/go/rawclient"
	"github.com/OlegKovalenko00/webmetrics/go/cleanup"
	"github.com/OlegKovalenko00/webmetrics/go/now"
	"github.com/OlegKovalenko00/webmetrics/go/stats"
	"github.com/OlegKovalenko00/webmetrics/go/timer"
	"github.com/OlegKovalenko00/webmetrics/go/wmlog"
)

// DefaultProject is stamped on every rollup row. Raw events do not reliably
// carry a project id, so all traffic currently rolls up under one project.
const DefaultProject = "default-project"

// DefaultInterval is how often a pass runs when none is configured.
const DefaultInterval = time.Minute

// Fetcher returns the raw events in one aggregation window.
type Fetcher interface {
	FetchAll(ctx context.Context, w rawclient.Window) (*rawclient.Batch, error)
}

// Runner aggregates one window per Tick.
type Runner struct {
	store      aggstore.Store
	fetcher    Fetcher
	projectID  string
	bucketSize time.Duration

	failures stats.Counter
	liveness stats.Liveness
}

// New returns a new *Runner. An empty projectID or non-positive bucketSize
// falls back to the defaults.
func New(store aggstore.Store, fetcher Fetcher, projectID string, bucketSize time.Duration) *Runner {
	if projectID == "" {
		projectID = DefaultProject
	}
	if bucketSize <= 0 {
		bucketSize = aggregate.DefaultBucketSize
	}
	return &Runner{
		store:      store,
		fetcher:    fetcher,
		projectID:  projectID,
		bucketSize: bucketSize,
		failures:   stats.GetCounter("aggregator_tick_failures"),
		liveness:   stats.NewLiveness("aggregation_pass"),
	}
}

// Start runs a pass immediately and then on every interval until the
// process shuts down.
func (r *Runner) Start(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	cleanup.Repeat(interval, func(ctx context.Context) {
		if err := r.Tick(ctx); err != nil {
			r.failures.Inc(1)
			wmlog.Errorf("Aggregation pass failed: %s", err)
		}
	}, nil)
}

// Tick aggregates every raw event in [watermark, now) and advances the
// watermark to now. The watermark only moves once every upsert has
// succeeded, so a failed pass is retried over the same window on the next
// tick. A window with no events still advances the watermark.
func (r *Runner) Tick(ctx context.Context) error {
	defer timer.New("aggregation pass").Stop()
	wm, err := r.store.GetWatermark(ctx)
	if err != nil {
		return err
	}
	end := now.Now(ctx).UTC().Truncate(time.Second)
	if !end.After(wm) {
		return nil
	}
	batch, err := r.fetcher.FetchAll(ctx, rawclient.Window{Start: wm.Unix(), End: end.Unix()})
	if err != nil {
		return err
	}
	if err := r.store.UpsertPageViews(ctx, aggregate.PageViews(r.projectID, r.bucketSize, batch.PageViews)); err != nil {
		return err
	}
	if err := r.store.UpsertClicks(ctx, aggregate.Clicks(r.projectID, r.bucketSize, batch.Clicks)); err != nil {
		return err
	}
	if err := r.store.UpsertPerformance(ctx, aggregate.Performance(r.projectID, r.bucketSize, batch.Performance)); err != nil {
		return err
	}
	if err := r.store.UpsertErrors(ctx, aggregate.Errors(r.projectID, r.bucketSize, batch.Errors)); err != nil {
		return err
	}
	if err := r.store.UpsertCustomEvents(ctx, aggregate.CustomEvents(r.projectID, r.bucketSize, batch.CustomEvents)); err != nil {
		return err
	}
	if err := r.store.SetWatermark(ctx, end); err != nil {
		return err
	}
	r.liveness.Reset()
	wmlog.Infof("Aggregated %d page views, %d clicks, %d performance, %d error, %d custom events in [%s, %s)",
		len(batch.PageViews), len(batch.Clicks), len(batch.Performance), len(batch.Errors), len(batch.CustomEvents),
		wm.Format(time.RFC3339), end.Format(time.RFC3339))
	return nil
}
