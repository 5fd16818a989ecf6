// Package publisher delivers accepted events to the broker. HTTP handlers
// only ever block on enqueueing into a bounded in-process queue; a single
// background goroutine owns the broker connection and drains the queue, since
// the connection is not safe for concurrent use.
package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/OlegKovalenko00/webmetrics/go/amqputils"
	"github.com/OlegKovalenko00/webmetrics/go/events"
	"github.com/OlegKovalenko00/webmetrics/go/stats"
	"github.com/OlegKovalenko00/webmetrics/go/util"
	"github.com/OlegKovalenko00/webmetrics/go/wmerr"
	"github.com/OlegKovalenko00/webmetrics/go/wmlog"
)

const (
	// DefaultQueueDepth bounds the in-process publish queue. The queue only
	// grows while the broker is unreachable, so the depth is the number of
	// accepted events an outage can buffer before Publish starts failing.
	DefaultQueueDepth = 1024

	// dialRetryDelay is how long to wait before retrying a broker connection
	// that could not be established.
	dialRetryDelay = 2 * time.Second

	// reconnectDelay is how long to wait before reconnecting after an
	// established connection died.
	reconnectDelay = 3 * time.Second
)

// ErrQueueFull is returned by Publish when the in-process queue is at
// capacity.
var ErrQueueFull = errors.New("publish queue is full")

// message is one event waiting to be published, already serialized.
type message struct {
	queue string
	body  []byte
}

// channel is the part of *amqp.Channel the drain loop uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Publisher accepts events Publish side and ships them to the broker Run
// side. Create one with New, start Run in a goroutine, and share the
// Publisher between handlers.
type Publisher struct {
	cfg   amqputils.Config
	queue chan message

	connected atomic.Bool

	published map[string]stats.Counter
	requeued  stats.Counter
	rejected  stats.Counter
}

// New returns a new *Publisher. queueDepth <= 0 selects DefaultQueueDepth.
func New(cfg amqputils.Config, queueDepth int) *Publisher {
	if queueDepth <= 0 {
		queueDepth = DefaultQueueDepth
	}
	published := map[string]stats.Counter{}
	for _, kind := range events.AllKinds {
		published[kind.QueueName()] = stats.GetCounter("gateway_events_published", map[string]string{"queue": kind.QueueName()})
	}
	return &Publisher{
		cfg:       cfg,
		queue:     make(chan message, queueDepth),
		published: published,
		requeued:  stats.GetCounter("gateway_events_requeued", nil),
		rejected:  stats.GetCounter("gateway_events_rejected", nil),
	}
}

// Publish serializes e and enqueues it for delivery to e's queue. It never
// blocks on broker I/O; if the in-process queue is full the event is dropped
// and ErrQueueFull is returned.
func (p *Publisher) Publish(e events.Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return wmerr.Wrapf(err, "serializing %s event", e.Kind())
	}
	select {
	case p.queue <- message{queue: e.Kind().QueueName(), body: body}:
		return nil
	default:
		p.rejected.Inc(1)
		return ErrQueueFull
	}
}

// Connected reports whether the broker connection is currently up, which is
// what the gateway's readiness endpoint reports.
func (p *Publisher) Connected() bool {
	return p.connected.Load()
}

// Run drains the publish queue until ctx is canceled. Broker outages are
// retried forever, so this only returns once ctx ends. Events accepted during
// an outage wait in the queue.
func (p *Publisher) Run(ctx context.Context) {
	for {
		conn, ch, err := amqputils.Dial(p.cfg)
		if err != nil {
			wmlog.Errorf("Failed to connect to broker, will retry: %s", err)
			if !sleepCtx(ctx, dialRetryDelay) {
				return
			}
			continue
		}
		p.connected.Store(true)
		err = p.drain(ctx, ch)
		p.connected.Store(false)
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

// drain publishes queued messages one at a time until ctx ends or a publish
// fails. A message whose publish failed goes back on the queue so the next
// connection retries it, at the cost of its position in line.
func (p *Publisher) drain(ctx context.Context, ch channel) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m := <-p.queue:
			if err := ch.PublishWithContext(ctx, "", m.queue, false, false, amqputils.JSONMessage(m.body)); err != nil {
				p.requeue(m)
				return wmerr.Wrapf(err, "publishing to %q", m.queue)
			}
			p.published[m.queue].Inc(1)
		}
	}
}

// requeue puts m back on the queue after a failed publish. If the queue
// filled up in the meantime the message is dropped, the same outcome a full
// queue has on Publish.
func (p *Publisher) requeue(m message) {
	select {
	case p.queue <- m:
		p.requeued.Inc(1)
	default:
		p.rejected.Inc(1)
		wmlog.Errorf("Dropping undeliverable message for %q, queue is full", m.queue)
	}
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
