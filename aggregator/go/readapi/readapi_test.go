package readapi

import (
	"context"
	"testing"
	"time"

	"github.com/gogo/protobuf/types"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/OlegKovalenko00/webmetrics/aggregator/go/aggregate"
	"github.com/OlegKovalenko00/webmetrics/aggregator/go/aggregationpb"
	"github.com/OlegKovalenko00/webmetrics/aggregator/go/aggstore"
	"github.com/OlegKovalenko00/webmetrics/go/now"
	"github.com/OlegKovalenko00/webmetrics/go/wmerr"
)

var (
	bucket    = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	serveTime = time.Date(2025, 7, 1, 12, 30, 0, 0, time.UTC)
)

// fakeStore returns canned rows and captures the last filter it saw.
type fakeStore struct {
	lastFilter aggstore.ReadFilter
	watermark  time.Time

	pageViews    []aggregate.PageViewsRow
	clicks       []aggregate.ClicksRow
	performance  []aggregate.PerformanceRow
	errorRows    []aggregate.ErrorsRow
	customEvents []aggregate.CustomEventsRow

	err error
}

func (s *fakeStore) GetWatermark(ctx context.Context) (time.Time, error) {
	return s.watermark, s.err
}

func (s *fakeStore) SetWatermark(ctx context.Context, t time.Time) error { return nil }

func (s *fakeStore) UpsertPageViews(ctx context.Context, rows []aggregate.PageViewsRow) error {
	return nil
}

func (s *fakeStore) UpsertClicks(ctx context.Context, rows []aggregate.ClicksRow) error { return nil }

func (s *fakeStore) UpsertPerformance(ctx context.Context, rows []aggregate.PerformanceRow) error {
	return nil
}

func (s *fakeStore) UpsertErrors(ctx context.Context, rows []aggregate.ErrorsRow) error { return nil }

func (s *fakeStore) UpsertCustomEvents(ctx context.Context, rows []aggregate.CustomEventsRow) error {
	return nil
}

func (s *fakeStore) ReadPageViews(ctx context.Context, f aggstore.ReadFilter) ([]aggregate.PageViewsRow, error) {
	s.lastFilter = f
	return s.pageViews, s.err
}

func (s *fakeStore) ReadClicks(ctx context.Context, f aggstore.ReadFilter) ([]aggregate.ClicksRow, error) {
	s.lastFilter = f
	return s.clicks, s.err
}

func (s *fakeStore) ReadPerformance(ctx context.Context, f aggstore.ReadFilter) ([]aggregate.PerformanceRow, error) {
	s.lastFilter = f
	return s.performance, s.err
}

func (s *fakeStore) ReadErrors(ctx context.Context, f aggstore.ReadFilter) ([]aggregate.ErrorsRow, error) {
	s.lastFilter = f
	return s.errorRows, s.err
}

func (s *fakeStore) ReadCustomEvents(ctx context.Context, f aggstore.ReadFilter) ([]aggregate.CustomEventsRow, error) {
	s.lastFilter = f
	return s.customEvents, s.err
}

var _ aggstore.Store = (*fakeStore)(nil)

func pbTime(t *testing.T, tm time.Time) *types.Timestamp {
	ret, err := types.TimestampProto(tm)
	require.NoError(t, err)
	return ret
}

func TestGetPageViewsAgg_MapsRequestToFilter(t *testing.T) {
	store := &fakeStore{
		pageViews: []aggregate.PageViewsRow{
			{
				TimeBucket:     bucket,
				ProjectID:      "p1",
				Page:           "/home",
				ViewsCount:     10,
				UniqueUsers:    4,
				UniqueSessions: 5,
			},
		},
	}
	s := New(store)
	ctx := now.TimeTravelingContext(serveTime)

	from := bucket.Add(-time.Hour)
	resp, err := s.GetPageViewsAgg(ctx, &aggregationpb.GetPageViewsAggRequest{
		ProjectId: "p1",
		Page:      "/home",
		TimeRange: &aggregationpb.TimeRange{
			From: pbTime(t, from),
			To:   pbTime(t, serveTime),
		},
		Pagination: &aggregationpb.Pagination{Limit: 25, Offset: 50},
	})
	require.NoError(t, err)

	require.Equal(t, aggstore.ReadFilter{
		ProjectID: "p1",
		From:      from,
		To:        serveTime,
		Page:      "/home",
		Limit:     25,
		Offset:    50,
	}, store.lastFilter)

	require.Len(t, resp.Rows, 1)
	row := resp.Rows[0]
	require.Equal(t, bucket.Unix(), row.TimeBucket.Seconds)
	require.Equal(t, "p1", row.ProjectId)
	require.Equal(t, int64(10), row.ViewsCount)
	// CreatedAt is the serve time, not anything stored.
	require.Equal(t, serveTime.Unix(), row.CreatedAt.Seconds)
}

func TestGetPageViewsAgg_MissingProjectIsInvalid(t *testing.T) {
	s := New(&fakeStore{})
	_, err := s.GetPageViewsAgg(context.Background(), &aggregationpb.GetPageViewsAggRequest{})
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.InvalidArgument, st.Code())
	require.Equal(t, "project_id is required", st.Message())
}

func TestGetPageViewsAgg_InvalidTimeRange(t *testing.T) {
	s := New(&fakeStore{})
	_, err := s.GetPageViewsAgg(context.Background(), &aggregationpb.GetPageViewsAggRequest{
		ProjectId: "p1",
		TimeRange: &aggregationpb.TimeRange{
			// One second past the largest representable timestamp.
			From: &types.Timestamp{Seconds: 253402300800},
		},
	})
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.InvalidArgument, st.Code())
	require.Contains(t, st.Message(), "invalid time_range")
}

func TestGetClicksAgg_ElementFilter(t *testing.T) {
	store := &fakeStore{}
	s := New(store)
	_, err := s.GetClicksAgg(context.Background(), &aggregationpb.GetClicksAggRequest{
		ProjectId: "p1",
		ElementId: "buy-button",
	})
	require.NoError(t, err)
	require.Equal(t, "p1", store.lastFilter.ProjectID)
	require.Equal(t, "buy-button", store.lastFilter.ElementID)
}

func TestGetErrorsAgg_ErrorTypeFilter(t *testing.T) {
	store := &fakeStore{
		errorRows: []aggregate.ErrorsRow{
			{
				TimeBucket:    bucket,
				ProjectID:     "p1",
				Page:          "/checkout",
				ErrorType:     "TypeError",
				ErrorsCount:   6,
				WarningCount:  2,
				CriticalCount: 1,
				UniqueUsers:   3,
			},
		},
	}
	s := New(store)
	resp, err := s.GetErrorsAgg(now.TimeTravelingContext(serveTime), &aggregationpb.GetErrorsAggRequest{
		ProjectId: "p1",
		ErrorType: "TypeError",
	})
	require.NoError(t, err)
	require.Equal(t, "TypeError", store.lastFilter.ErrorType)
	require.Len(t, resp.Rows, 1)
	require.Equal(t, int64(6), resp.Rows[0].ErrorsCount)
	require.Equal(t, int64(2), resp.Rows[0].WarningCount)
	require.Equal(t, int64(1), resp.Rows[0].CriticalCount)
}

func TestGetCustomEventsAgg_RequiresEventName(t *testing.T) {
	s := New(&fakeStore{})
	_, err := s.GetCustomEventsAgg(context.Background(), &aggregationpb.GetCustomEventsAggRequest{
		ProjectId: "p1",
	})
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.InvalidArgument, st.Code())
	require.Equal(t, "event_name is required", st.Message())
}

func TestGetCustomEventsAgg_NameFilter(t *testing.T) {
	store := &fakeStore{}
	s := New(store)
	_, err := s.GetCustomEventsAgg(now.TimeTravelingContext(serveTime), &aggregationpb.GetCustomEventsAggRequest{
		ProjectId: "p1",
		EventName: "signup",
	})
	require.NoError(t, err)
	require.Equal(t, "signup", store.lastFilter.EventName)
}

func TestGetWatermark_ReturnsStoreTime(t *testing.T) {
	store := &fakeStore{watermark: serveTime}
	s := New(store)
	resp, err := s.GetWatermark(context.Background(), &aggregationpb.GetWatermarkRequest{})
	require.NoError(t, err)
	require.Equal(t, serveTime.Unix(), resp.LastAggregatedAt.Seconds)
}

func TestStoreFailure_ReturnsInternal(t *testing.T) {
	store := &fakeStore{err: wmerr.Fmt("connection refused")}
	s := New(store)
	_, err := s.GetPageViewsAgg(context.Background(), &aggregationpb.GetPageViewsAggRequest{ProjectId: "p1"})
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.Internal, st.Code())
	require.Contains(t, st.Message(), "connection refused")
}
