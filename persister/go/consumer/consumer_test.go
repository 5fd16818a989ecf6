package consumer

import (
	"context"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"

	"github.com/OlegKovalenko00/webmetrics/go/amqputils"
	"github.com/OlegKovalenko00/webmetrics/go/events"
	"github.com/OlegKovalenko00/webmetrics/go/wmerr"
	"github.com/OlegKovalenko00/webmetrics/persister/go/metricspb"
	"github.com/OlegKovalenko00/webmetrics/persister/go/rawstore"
)

// captureStore implements rawstore.Store, recording inserts in memory.
type captureStore struct {
	insertErr error

	pageViews    []events.PageView
	clicks       []events.Click
	performances []events.Performance
	errors       []events.Error
	customs      []events.Custom
}

func (s *captureStore) InsertPageView(_ context.Context, e events.PageView) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.pageViews = append(s.pageViews, e)
	return nil
}

func (s *captureStore) InsertClick(_ context.Context, e events.Click) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.clicks = append(s.clicks, e)
	return nil
}

func (s *captureStore) InsertPerformance(_ context.Context, e events.Performance) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.performances = append(s.performances, e)
	return nil
}

func (s *captureStore) InsertError(_ context.Context, e events.Error) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.errors = append(s.errors, e)
	return nil
}

func (s *captureStore) InsertCustom(_ context.Context, e events.Custom) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.customs = append(s.customs, e)
	return nil
}

func (s *captureStore) GetPageViews(context.Context, rawstore.Filter) ([]*metricspb.PageViewEvent, error) {
	return nil, nil
}

func (s *captureStore) GetClicks(context.Context, rawstore.Filter) ([]*metricspb.ClickEvent, error) {
	return nil, nil
}

func (s *captureStore) GetPerformance(context.Context, rawstore.Filter) ([]*metricspb.PerformanceEvent, error) {
	return nil, nil
}

func (s *captureStore) GetErrors(context.Context, rawstore.Filter) ([]*metricspb.ErrorEvent, error) {
	return nil, nil
}

func (s *captureStore) GetCustomEvents(context.Context, rawstore.Filter) ([]*metricspb.CustomEvent, error) {
	return nil, nil
}

var _ rawstore.Store = (*captureStore)(nil)

// captureAck implements amqp.Acknowledger, recording the outcome of each
// delivery.
type captureAck struct {
	acks     []uint64
	nacks    []uint64
	requeued bool
}

func (a *captureAck) Ack(tag uint64, multiple bool) error {
	a.acks = append(a.acks, tag)
	return nil
}

func (a *captureAck) Nack(tag uint64, multiple bool, requeue bool) error {
	a.nacks = append(a.nacks, tag)
	a.requeued = requeue
	return nil
}

func (a *captureAck) Reject(tag uint64, requeue bool) error {
	return wmerr.Fmt("unexpected Reject")
}

var _ amqp.Acknowledger = (*captureAck)(nil)

func newForTest(store rawstore.Store) *Consumer {
	return New(amqputils.ConfigFromEnv(), store)
}

func TestProcess_StoresEachKind(t *testing.T) {
	ctx := context.Background()
	store := &captureStore{}
	c := newForTest(store)

	require.NoError(t, c.process(ctx, events.PageViews, []byte(`{"page":"/home","timestamp":1700000000123,"user_id":"u1"}`)))
	require.NoError(t, c.process(ctx, events.Clicks, []byte(`{"page":"/pricing","element_id":"buy-button","timestamp":1700000000124}`)))
	require.NoError(t, c.process(ctx, events.Performances, []byte(`{"page":"/home","timestamp":1700000000125,"lcp_ms":2500.5}`)))
	require.NoError(t, c.process(ctx, events.Errors, []byte(`{"page":"/checkout","error_type":"TypeError","message":"x is undefined","timestamp":1700000000126}`)))
	require.NoError(t, c.process(ctx, events.Customs, []byte(`{"name":"signup","timestamp":1700000000127,"properties":{"plan":"pro"}}`)))

	require.Len(t, store.pageViews, 1)
	require.Equal(t, "/home", store.pageViews[0].Page)
	require.Equal(t, int64(1700000000123), store.pageViews[0].Timestamp)
	require.NotNil(t, store.pageViews[0].UserID)
	require.Equal(t, "u1", *store.pageViews[0].UserID)

	require.Len(t, store.clicks, 1)
	require.Equal(t, "buy-button", store.clicks[0].ElementID)

	require.Len(t, store.performances, 1)
	require.NotNil(t, store.performances[0].LCPMs)
	require.Equal(t, 2500.5, *store.performances[0].LCPMs)
	require.Nil(t, store.performances[0].TTFBMs)

	require.Len(t, store.errors, 1)
	// An event that arrives without a severity is stored as an error.
	require.Equal(t, events.SeverityError, store.errors[0].Severity)

	require.Len(t, store.customs, 1)
	require.Equal(t, "signup", store.customs[0].Name)
}

func TestProcess_InvalidJSONReturnsError(t *testing.T) {
	store := &captureStore{}
	c := newForTest(store)
	err := c.process(context.Background(), events.PageViews, []byte(`{"page":`))
	require.Error(t, err)
	require.Empty(t, store.pageViews)
}

func TestProcess_StoreFailurePropagates(t *testing.T) {
	store := &captureStore{insertErr: wmerr.Fmt("db is down")}
	c := newForTest(store)
	err := c.process(context.Background(), events.Clicks, []byte(`{"page":"/p","element_id":"e","timestamp":1}`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "db is down")
}

func TestProcess_UnknownQueueIsDropped(t *testing.T) {
	store := &captureStore{}
	c := newForTest(store)
	require.NoError(t, c.process(context.Background(), events.Kind("mystery_queue"), []byte(`{}`)))
	require.Empty(t, store.pageViews)
	require.Empty(t, store.clicks)
	require.Empty(t, store.performances)
	require.Empty(t, store.errors)
	require.Empty(t, store.customs)
}

func TestHandle_AcksStoredEvent(t *testing.T) {
	store := &captureStore{}
	c := newForTest(store)
	ack := &captureAck{}
	c.handle(context.Background(), events.PageViews, amqp.Delivery{
		Acknowledger: ack,
		DeliveryTag:  7,
		Body:         []byte(`{"page":"/home","timestamp":1700000000123}`),
	})
	require.Len(t, store.pageViews, 1)
	require.Equal(t, []uint64{7}, ack.acks)
	require.Empty(t, ack.nacks)
}

func TestHandle_RequeuesFailedEvent(t *testing.T) {
	store := &captureStore{insertErr: wmerr.Fmt("db is down")}
	c := newForTest(store)
	ack := &captureAck{}
	c.handle(context.Background(), events.PageViews, amqp.Delivery{
		Acknowledger: ack,
		DeliveryTag:  9,
		Body:         []byte(`{"page":"/home","timestamp":1700000000123}`),
	})
	require.Empty(t, store.pageViews)
	require.Equal(t, []uint64{9}, ack.nacks)
	require.True(t, ack.requeued)
	require.Empty(t, ack.acks)
}

func TestWorkerCount(t *testing.T) {
	require.GreaterOrEqual(t, workerCount(), 1)
}
