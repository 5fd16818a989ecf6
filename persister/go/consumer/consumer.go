// Package consumer drains the five event queues into the raw event store.
// One goroutine per queue feeds deliveries into a shared channel that a
// fixed pool of workers drains, so a burst on one queue or a slow store
// write cannot starve the other queues. Workers write independently;
// deliveries are acked only after the store accepts them.
package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/OlegKovalenko00/webmetrics/go/amqputils"
	"github.com/OlegKovalenko00/webmetrics/go/events"
	"github.com/OlegKovalenko00/webmetrics/go/stats"
	"github.com/OlegKovalenko00/webmetrics/go/util"
	"github.com/OlegKovalenko00/webmetrics/go/wmerr"
	"github.com/OlegKovalenko00/webmetrics/go/wmlog"
	"github.com/OlegKovalenko00/webmetrics/persister/go/rawstore"
)

const (
	// prefetchCount bounds the number of deliveries the broker pushes to the
	// channel before any of them are acked.
	prefetchCount = 64

	// dialRetryDelay is how long to wait before retrying a broker connection
	// that could not be established.
	dialRetryDelay = 2 * time.Second

	// reconnectDelay is how long to wait before reconnecting after an
	// established subscription died.
	reconnectDelay = 3 * time.Second
)

// delivery pairs one broker message with the queue it arrived on.
type delivery struct {
	kind events.Kind
	msg  amqp.Delivery
}

// Consumer subscribes to every event queue and writes each message to the
// store. Messages are acked only after the store accepts them; any parse or
// store failure requeues the message for redelivery.
type Consumer struct {
	cfg     amqputils.Config
	store   rawstore.Store
	workers int

	acked    map[events.Kind]stats.Counter
	nacked   map[events.Kind]stats.Counter
	liveness stats.Liveness
}

// New returns a new *Consumer that will write into store.
func New(cfg amqputils.Config, store rawstore.Store) *Consumer {
	acked := map[events.Kind]stats.Counter{}
	nacked := map[events.Kind]stats.Counter{}
	for _, kind := range events.AllKinds {
		tags := map[string]string{"queue": kind.QueueName()}
		acked[kind] = stats.GetCounter("persister_events_acked", tags)
		nacked[kind] = stats.GetCounter("persister_events_nacked", tags)
	}
	return &Consumer{
		cfg:      cfg,
		store:    store,
		workers:  workerCount(),
		acked:    acked,
		nacked:   nacked,
		liveness: stats.NewLiveness("persister_event_stored", nil),
	}
}

// Run consumes until ctx is canceled. Broker outages are retried forever,
// so this only returns once ctx ends.
func (c *Consumer) Run(ctx context.Context) {
	for {
		conn, ch, err := amqputils.Dial(c.cfg)
		if err != nil {
			wmlog.Errorf("Failed to connect to broker, will retry: %s", err)
			if !sleepCtx(ctx, dialRetryDelay) {
				return
			}
			continue
		}
		err = c.consumeAll(ctx, conn, ch)
		util.LogErr(amqputils.Close(ch, conn))
		if ctx.Err() != nil {
			return
		}
		wmlog.Errorf("Lost the broker connection, reconnecting: %s", err)
		if !sleepCtx(ctx, reconnectDelay) {
			return
		}
	}
}

// consumeAll subscribes to every queue on ch and processes deliveries until
// the connection dies or ctx is canceled. Workers start before the feeders
// so a feeder can never block on a full work channel during teardown.
func (c *Consumer) consumeAll(ctx context.Context, conn *amqp.Connection, ch *amqp.Channel) error {
	if err := ch.Qos(prefetchCount, 0, false); err != nil {
		return wmerr.Wrapf(err, "setting channel prefetch")
	}

	work := make(chan delivery)
	var workers sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		workers.Add(1)
		go func() {
			defer workers.Done()
			for d := range work {
				c.handle(ctx, d.kind, d.msg)
			}
		}()
	}

	var feeders sync.WaitGroup
	var subscribeErr error
	for _, kind := range events.AllKinds {
		msgs, err := ch.Consume(kind.QueueName(), consumerTag(kind), false, false, false, false, nil)
		if err != nil {
			subscribeErr = wmerr.Wrapf(err, "subscribing to queue %q", kind.QueueName())
			break
		}
		feeders.Add(1)
		go func(kind events.Kind, msgs <-chan amqp.Delivery) {
			defer feeders.Done()
			for d := range msgs {
				work <- delivery{kind: kind, msg: d}
			}
		}(kind, msgs)
	}

	// Tear the connection down when ctx ends (or a subscription failed) so
	// the delivery channels close and the feeder goroutines exit.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()
	if subscribeErr != nil {
		_ = conn.Close()
	}

	feeders.Wait()
	close(work)
	workers.Wait()
	if subscribeErr != nil {
		return subscribeErr
	}
	return wmerr.Fmt("all delivery channels closed")
}

// handle processes a single delivery, acking it once stored and requeueing
// it on any failure so the broker redelivers.
func (c *Consumer) handle(ctx context.Context, kind events.Kind, d amqp.Delivery) {
	defer stats.NewTimer("persister_process", map[string]string{"queue": kind.QueueName()}).Stop()
	if err := c.process(ctx, kind, d.Body); err != nil {
		wmlog.Errorf("Failed to process %s message, requeueing: %s", kind, err)
		c.nacked[kind].Inc(1)
		util.LogErr(d.Nack(false, true))
		return
	}
	c.acked[kind].Inc(1)
	c.liveness.Reset()
	util.LogErr(d.Ack(false))
}

// process parses body as the given kind of event and writes it to the
// store. Messages from a queue we don't recognize are dropped, not
// requeued, since redelivery can never fix them.
func (c *Consumer) process(ctx context.Context, kind events.Kind, body []byte) error {
	switch kind {
	case events.PageViews:
		var e events.PageView
		if err := json.Unmarshal(body, &e); err != nil {
			return wmerr.Wrapf(err, "parsing page view")
		}
		return c.store.InsertPageView(ctx, e)
	case events.Clicks:
		var e events.Click
		if err := json.Unmarshal(body, &e); err != nil {
			return wmerr.Wrapf(err, "parsing click")
		}
		return c.store.InsertClick(ctx, e)
	case events.Performances:
		var e events.Performance
		if err := json.Unmarshal(body, &e); err != nil {
			return wmerr.Wrapf(err, "parsing performance event")
		}
		return c.store.InsertPerformance(ctx, e)
	case events.Errors:
		var e events.Error
		if err := json.Unmarshal(body, &e); err != nil {
			return wmerr.Wrapf(err, "parsing error event")
		}
		return c.store.InsertError(ctx, e)
	case events.Customs:
		var e events.Custom
		if err := json.Unmarshal(body, &e); err != nil {
			return wmerr.Wrapf(err, "parsing custom event")
		}
		return c.store.InsertCustom(ctx, e)
	default:
		wmlog.Errorf("Dropping message from unknown queue %q", kind)
		return nil
	}
}

// workerCount is the size of the write pool, one worker per core.
func workerCount() int {
	if n := runtime.NumCPU(); n > 1 {
		return n
	}
	return 1
}

// consumerTag returns a unique consumer tag so individual subscribers are
// distinguishable in the broker's management UI.
func consumerTag(kind events.Kind) string {
	return fmt.Sprintf("persister-%s-%s", kind.QueueName(), uuid.NewString())
}

// sleepCtx sleeps for d, returning false if ctx was canceled first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
