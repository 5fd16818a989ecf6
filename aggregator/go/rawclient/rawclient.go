// Package rawclient fetches raw telemetry events from the metrics service,
// one aggregation window at a time.
package rawclient

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/OlegKovalenko00/webmetrics/go/wmerr"
	"github.com/OlegKovalenko00/webmetrics/persister/go/metricspb"
)

// pageSize is how many rows each request asks for. Windows holding more
// events than one page are drained with repeated offset reads.
const pageSize = 1000

// Window bounds one aggregation pass, [Start, End) in seconds since the
// UNIX epoch.
type Window struct {
	Start int64
	End   int64
}

// Batch holds every raw event fetched for one aggregation window.
type Batch struct {
	PageViews    []*metricspb.PageViewEvent
	Clicks       []*metricspb.ClickEvent
	Performance  []*metricspb.PerformanceEvent
	Errors       []*metricspb.ErrorEvent
	CustomEvents []*metricspb.CustomEvent
}

// Client reads raw events back from the metrics service.
type Client struct {
	metrics metricspb.MetricsServiceClient
}

// New returns a new *Client wrapping the given stub.
func New(metrics metricspb.MetricsServiceClient) *Client {
	return &Client{
		metrics: metrics,
	}
}

func timeRange(w Window) *metricspb.TimeRange {
	return &metricspb.TimeRange{
		StartTimestamp: w.Start,
		EndTimestamp:   w.End,
	}
}

// FetchAll returns every raw event with a timestamp in the window. The five
// kinds are fetched concurrently; the first failure aborts the rest.
func (c *Client) FetchAll(ctx context.Context, w Window) (*Batch, error) {
	b := &Batch{}
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		b.PageViews, err = c.fetchPageViews(ctx, w)
		return err
	})
	eg.Go(func() error {
		var err error
		b.Clicks, err = c.fetchClicks(ctx, w)
		return err
	})
	eg.Go(func() error {
		var err error
		b.Performance, err = c.fetchPerformance(ctx, w)
		return err
	})
	eg.Go(func() error {
		var err error
		b.Errors, err = c.fetchErrors(ctx, w)
		return err
	})
	eg.Go(func() error {
		var err error
		b.CustomEvents, err = c.fetchCustomEvents(ctx, w)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return b, nil
}

func (c *Client) fetchPageViews(ctx context.Context, w Window) ([]*metricspb.PageViewEvent, error) {
	var ret []*metricspb.PageViewEvent
	for offset := int32(0); ; offset += pageSize {
		resp, err := c.metrics.GetPageViews(ctx, &metricspb.GetPageViewsRequest{
			TimeRange:  timeRange(w),
			Pagination: &metricspb.Pagination{Limit: pageSize, Offset: offset},
		})
		if err != nil {
			return nil, wmerr.Wrapf(err, "fetching page views")
		}
		ret = append(ret, resp.Events...)
		if len(resp.Events) < pageSize {
			return ret, nil
		}
	}
}

func (c *Client) fetchClicks(ctx context.Context, w Window) ([]*metricspb.ClickEvent, error) {
	var ret []*metricspb.ClickEvent
	for offset := int32(0); ; offset += pageSize {
		resp, err := c.metrics.GetClicks(ctx, &metricspb.GetClicksRequest{
			TimeRange:  timeRange(w),
			Pagination: &metricspb.Pagination{Limit: pageSize, Offset: offset},
		})
		if err != nil {
			return nil, wmerr.Wrapf(err, "fetching clicks")
		}
		ret = append(ret, resp.Events...)
		if len(resp.Events) < pageSize {
			return ret, nil
		}
	}
}

func (c *Client) fetchPerformance(ctx context.Context, w Window) ([]*metricspb.PerformanceEvent, error) {
	var ret []*metricspb.PerformanceEvent
	for offset := int32(0); ; offset += pageSize {
		resp, err := c.metrics.GetPerformance(ctx, &metricspb.GetPerformanceRequest{
			TimeRange:  timeRange(w),
			Pagination: &metricspb.Pagination{Limit: pageSize, Offset: offset},
		})
		if err != nil {
			return nil, wmerr.Wrapf(err, "fetching performance events")
		}
		ret = append(ret, resp.Events...)
		if len(resp.Events) < pageSize {
			return ret, nil
		}
	}
}

func (c *Client) fetchErrors(ctx context.Context, w Window) ([]*metricspb.ErrorEvent, error) {
	var ret []*metricspb.ErrorEvent
	for offset := int32(0); ; offset += pageSize {
		resp, err := c.metrics.GetErrors(ctx, &metricspb.GetErrorsRequest{
			TimeRange:  timeRange(w),
			Pagination: &metricspb.Pagination{Limit: pageSize, Offset: offset},
		})
		if err != nil {
			return nil, wmerr.Wrapf(err, "fetching error events")
		}
		ret = append(ret, resp.Events...)
		if len(resp.Events) < pageSize {
			return ret, nil
		}
	}
}

func (c *Client) fetchCustomEvents(ctx context.Context, w Window) ([]*metricspb.CustomEvent, error) {
	var ret []*metricspb.CustomEvent
	for offset := int32(0); ; offset += pageSize {
		resp, err := c.metrics.GetCustomEvents(ctx, &metricspb.GetCustomEventsRequest{
			TimeRange:  timeRange(w),
			Pagination: &metricspb.Pagination{Limit: pageSize, Offset: offset},
		})
		if err != nil {
			return nil, wmerr.Wrapf(err, "fetching custom events")
		}
		ret = append(ret, resp.Events...)
		if len(resp.Events) < pageSize {
			return ret, nil
		}
	}
}
