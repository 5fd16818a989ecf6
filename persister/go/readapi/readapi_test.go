package readapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/OlegKovalenko00/webmetrics/go/events"
	"github.com/OlegKovalenko00/webmetrics/go/wmerr"
	"github.com/OlegKovalenko00/webmetrics/persister/go/metricspb"
	"github.com/OlegKovalenko00/webmetrics/persister/go/rawstore"
)

// fakeStore implements rawstore.Store, recording the filter of the last
// read and returning canned rows.
type fakeStore struct {
	lastFilter rawstore.Filter
	err        error

	pageViews []*metricspb.PageViewEvent
	clicks    []*metricspb.ClickEvent
	errors    []*metricspb.ErrorEvent
	customs   []*metricspb.CustomEvent
}

func (s *fakeStore) InsertPageView(context.Context, events.PageView) error       { return nil }
func (s *fakeStore) InsertClick(context.Context, events.Click) error             { return nil }
func (s *fakeStore) InsertPerformance(context.Context, events.Performance) error { return nil }
func (s *fakeStore) InsertError(context.Context, events.Error) error             { return nil }
func (s *fakeStore) InsertCustom(context.Context, events.Custom) error           { return nil }

func (s *fakeStore) GetPageViews(_ context.Context, f rawstore.Filter) ([]*metricspb.PageViewEvent, error) {
	s.lastFilter = f
	return s.pageViews, s.err
}

func (s *fakeStore) GetClicks(_ context.Context, f rawstore.Filter) ([]*metricspb.ClickEvent, error) {
	s.lastFilter = f
	return s.clicks, s.err
}

func (s *fakeStore) GetPerformance(_ context.Context, f rawstore.Filter) ([]*metricspb.PerformanceEvent, error) {
	s.lastFilter = f
	return nil, s.err
}

func (s *fakeStore) GetErrors(_ context.Context, f rawstore.Filter) ([]*metricspb.ErrorEvent, error) {
	s.lastFilter = f
	return s.errors, s.err
}

func (s *fakeStore) GetCustomEvents(_ context.Context, f rawstore.Filter) ([]*metricspb.CustomEvent, error) {
	s.lastFilter = f
	return s.customs, s.err
}

var _ rawstore.Store = (*fakeStore)(nil)

func TestGetPageViews_MapsRequestToFilter(t *testing.T) {
	store := &fakeStore{
		pageViews: []*metricspb.PageViewEvent{
			{Id: "a", Page: "/home", Timestamp: 1700000000},
			{Id: "b", Page: "/home", Timestamp: 1700000100},
		},
	}
	s := New(store)

	resp, err := s.GetPageViews(context.Background(), &metricspb.GetPageViewsRequest{
		TimeRange:    &metricspb.TimeRange{StartTimestamp: 1700000000, EndTimestamp: 1700003600},
		PageFilter:   "/home",
		UserIdFilter: "u1",
		Pagination:   &metricspb.Pagination{Limit: 50, Offset: 100},
	})
	require.NoError(t, err)

	require.Equal(t, rawstore.Filter{
		TimeRange: &rawstore.TimeRange{Start: 1700000000, End: 1700003600},
		Page:      "/home",
		UserID:    "u1",
		Limit:     50,
		Offset:    100,
	}, store.lastFilter)
	require.Len(t, resp.Events, 2)
	require.Equal(t, int32(2), resp.TotalCount)
}

func TestGetPageViews_NoOptionalFields(t *testing.T) {
	store := &fakeStore{}
	s := New(store)

	resp, err := s.GetPageViews(context.Background(), &metricspb.GetPageViewsRequest{})
	require.NoError(t, err)
	require.Equal(t, rawstore.Filter{}, store.lastFilter)
	require.Empty(t, resp.Events)
	require.Equal(t, int32(0), resp.TotalCount)
}

func TestGetClicks_ElementFilter(t *testing.T) {
	store := &fakeStore{clicks: []*metricspb.ClickEvent{{Id: "c", ElementId: "buy-button"}}}
	s := New(store)

	resp, err := s.GetClicks(context.Background(), &metricspb.GetClicksRequest{
		ElementIdFilter: "buy",
	})
	require.NoError(t, err)
	require.Equal(t, "buy", store.lastFilter.ElementID)
	require.Equal(t, int32(1), resp.TotalCount)
}

func TestGetErrors_SeverityFilter(t *testing.T) {
	store := &fakeStore{}
	s := New(store)

	_, err := s.GetErrors(context.Background(), &metricspb.GetErrorsRequest{
		ErrorTypeFilter: "TypeError",
		SeverityFilter:  metricspb.Severity_SEVERITY_WARNING,
	})
	require.NoError(t, err)
	require.Equal(t, "TypeError", store.lastFilter.ErrorType)
	require.Equal(t, events.SeverityWarning, store.lastFilter.MinSeverity)
}

func TestGetCustomEvents_NameFilter(t *testing.T) {
	store := &fakeStore{customs: []*metricspb.CustomEvent{{Id: "x", Name: "signup"}}}
	s := New(store)

	resp, err := s.GetCustomEvents(context.Background(), &metricspb.GetCustomEventsRequest{
		NameFilter: "signup",
	})
	require.NoError(t, err)
	require.Equal(t, "signup", store.lastFilter.Name)
	require.Equal(t, int32(1), resp.TotalCount)
}

func TestStoreFailure_ReturnsInternal(t *testing.T) {
	store := &fakeStore{err: wmerr.Fmt("connection refused")}
	s := New(store)

	_, err := s.GetPerformance(context.Background(), &metricspb.GetPerformanceRequest{})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.Internal, st.Code())
	require.Contains(t, st.Message(), "connection refused")
}
