package runner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/OlegKovalenko00/webmetrics/aggregator/go/aggregate"
	"github.com/OlegKovalenko00/webmetrics/aggregator/go/aggstore"
	"github.com/OlegKovalenko00/webmetrics/aggregator/go/rawclient"
	"github.com/OlegKovalenko00/webmetrics/go/now"
	"github.com/OlegKovalenko00/webmetrics/go/testutils"
	"github.com/OlegKovalenko00/webmetrics/go/wmerr"
	"github.com/OlegKovalenko00/webmetrics/persister/go/metricspb"
)

// fakeStore records upserted batches and watermark writes.
type fakeStore struct {
	watermark    time.Time
	watermarkErr error

	pageViews    [][]aggregate.PageViewsRow
	clicks       [][]aggregate.ClicksRow
	performance  [][]aggregate.PerformanceRow
	errorRows    [][]aggregate.ErrorsRow
	customEvents [][]aggregate.CustomEventsRow

	errorsUpsertErr error
	setCalls        []time.Time
}

func (s *fakeStore) GetWatermark(ctx context.Context) (time.Time, error) {
	return s.watermark, s.watermarkErr
}

func (s *fakeStore) SetWatermark(ctx context.Context, t time.Time) error {
	s.setCalls = append(s.setCalls, t)
	return nil
}

func (s *fakeStore) UpsertPageViews(ctx context.Context, rows []aggregate.PageViewsRow) error {
	s.pageViews = append(s.pageViews, rows)
	return nil
}

func (s *fakeStore) UpsertClicks(ctx context.Context, rows []aggregate.ClicksRow) error {
	s.clicks = append(s.clicks, rows)
	return nil
}

func (s *fakeStore) UpsertPerformance(ctx context.Context, rows []aggregate.PerformanceRow) error {
	s.performance = append(s.performance, rows)
	return nil
}

func (s *fakeStore) UpsertErrors(ctx context.Context, rows []aggregate.ErrorsRow) error {
	if s.errorsUpsertErr != nil {
		return s.errorsUpsertErr
	}
	s.errorRows = append(s.errorRows, rows)
	return nil
}

func (s *fakeStore) UpsertCustomEvents(ctx context.Context, rows []aggregate.CustomEventsRow) error {
	s.customEvents = append(s.customEvents, rows)
	return nil
}

func (s *fakeStore) ReadPageViews(ctx context.Context, f aggstore.ReadFilter) ([]aggregate.PageViewsRow, error) {
	return nil, nil
}

func (s *fakeStore) ReadClicks(ctx context.Context, f aggstore.ReadFilter) ([]aggregate.ClicksRow, error) {
	return nil, nil
}

func (s *fakeStore) ReadPerformance(ctx context.Context, f aggstore.ReadFilter) ([]aggregate.PerformanceRow, error) {
	return nil, nil
}

func (s *fakeStore) ReadErrors(ctx context.Context, f aggstore.ReadFilter) ([]aggregate.ErrorsRow, error) {
	return nil, nil
}

func (s *fakeStore) ReadCustomEvents(ctx context.Context, f aggstore.ReadFilter) ([]aggregate.CustomEventsRow, error) {
	return nil, nil
}

var _ aggstore.Store = (*fakeStore)(nil)

type fakeFetcher struct {
	windows []rawclient.Window
	batch   *rawclient.Batch
	err     error
}

func (f *fakeFetcher) FetchAll(ctx context.Context, w rawclient.Window) (*rawclient.Batch, error) {
	f.windows = append(f.windows, w)
	if f.err != nil {
		return nil, f.err
	}
	return f.batch, nil
}

var (
	watermark = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	nowTime   = time.Date(2025, 7, 1, 12, 7, 30, 0, time.UTC)
)

func TestTick_AggregatesWindowAndAdvancesWatermark(t *testing.T) {
	store := &fakeStore{watermark: watermark}
	fetcher := &fakeFetcher{
		batch: &rawclient.Batch{
			PageViews: []*metricspb.PageViewEvent{
				{Page: "/home", UserId: "u1", Timestamp: watermark.Add(time.Minute).Unix()},
				{Page: "/home", UserId: "u2", Timestamp: watermark.Add(2 * time.Minute).Unix()},
			},
		},
	}
	r := New(store, fetcher, "", 0)
	ctx := now.TimeTravelingContext(nowTime)

	require.NoError(t, r.Tick(ctx))

	// The fetch covers [watermark, now) in seconds.
	require.Equal(t, []rawclient.Window{{Start: watermark.Unix(), End: nowTime.Unix()}}, fetcher.windows)

	require.Len(t, store.pageViews, 1)
	testutils.AssertDeepEqual(t, []aggregate.PageViewsRow{
		{
			TimeBucket:  watermark,
			ProjectID:   DefaultProject,
			Page:        "/home",
			ViewsCount:  2,
			UniqueUsers: 2,
		},
	}, store.pageViews[0])

	require.Equal(t, []time.Time{nowTime}, store.setCalls)
}

func TestTick_EmptyWindowStillAdvancesWatermark(t *testing.T) {
	store := &fakeStore{watermark: watermark}
	fetcher := &fakeFetcher{batch: &rawclient.Batch{}}
	r := New(store, fetcher, "", 0)

	require.NoError(t, r.Tick(now.TimeTravelingContext(nowTime)))
	require.Len(t, store.pageViews, 1)
	require.Empty(t, store.pageViews[0])
	require.Equal(t, []time.Time{nowTime}, store.setCalls)
}

func TestTick_NothingToDoWhenClockBehindWatermark(t *testing.T) {
	store := &fakeStore{watermark: nowTime.Add(time.Hour)}
	fetcher := &fakeFetcher{batch: &rawclient.Batch{}}
	r := New(store, fetcher, "", 0)

	require.NoError(t, r.Tick(now.TimeTravelingContext(nowTime)))
	require.Empty(t, fetcher.windows)
	require.Empty(t, store.setCalls)
}

func TestTick_FetchFailureLeavesWatermark(t *testing.T) {
	store := &fakeStore{watermark: watermark}
	fetcher := &fakeFetcher{err: wmerr.Fmt("metrics service unavailable")}
	r := New(store, fetcher, "", 0)

	err := r.Tick(now.TimeTravelingContext(nowTime))
	require.Error(t, err)
	require.Contains(t, err.Error(), "metrics service unavailable")
	require.Empty(t, store.pageViews)
	require.Empty(t, store.setCalls)
}

func TestTick_UpsertFailureLeavesWatermark(t *testing.T) {
	store := &fakeStore{
		watermark:       watermark,
		errorsUpsertErr: wmerr.Fmt("db write failed"),
	}
	fetcher := &fakeFetcher{
		batch: &rawclient.Batch{
			Errors: []*metricspb.ErrorEvent{
				{Page: "/home", ErrorType: "TypeError", Timestamp: watermark.Add(time.Minute).Unix()},
			},
		},
	}
	r := New(store, fetcher, "", 0)

	err := r.Tick(now.TimeTravelingContext(nowTime))
	require.Error(t, err)
	require.Contains(t, err.Error(), "db write failed")
	// Earlier kinds were written, but the watermark did not move, so the
	// next pass retries the same window.
	require.Len(t, store.pageViews, 1)
	require.Empty(t, store.setCalls)
}
