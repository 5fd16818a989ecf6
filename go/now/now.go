// Package now supplies the current time through a context.Context so that
// code under test can run against a controlled clock. All code that needs
// the wall clock should call now.Now(ctx) instead of time.Now().
package now

import (
	"context"
	"sync"
	"time"
)

type contextKeyType string

// ContextKey is the key under which an override for the current time is
// stored in a context. The stored value may be a fixed time.Time:
//
//	ctx = context.WithValue(ctx, now.ContextKey, time.Unix(0, 12).UTC())
//
// or a NowProvider, which is consulted on every call to Now:
//
//	ctx = context.WithValue(ctx, now.ContextKey, now.NowProvider(myClock))
const ContextKey contextKeyType = "overwriteNow"

// NowProvider returns the apparent current time. A provider stored in a
// context must be safe for concurrent use if the context crosses goroutines.
type NowProvider func() time.Time

// Now returns the time stored in ctx, or time.Now() if none is stored.
func Now(ctx context.Context) time.Time {
	switch v := ctx.Value(ContextKey).(type) {
	case NowProvider:
		return v()
	case time.Time:
		return v
	}
	return time.Now()
}

// TimeTravelCtx is a context.Context whose apparent time is under the
// caller's control. Create one with TimeTravelingContext and move the clock
// with SetTime:
//
//	ctx := now.TimeTravelingContext(start)
//	first := tick(ctx)
//	ctx.SetTime(start.Add(time.Minute))
//	second := tick(ctx)
type TimeTravelCtx struct {
	context.Context

	mu sync.Mutex
	ts time.Time
}

// TimeTravelingContext returns a *TimeTravelCtx anchored at start, derived
// from context.Background().
func TimeTravelingContext(start time.Time) *TimeTravelCtx {
	t := &TimeTravelCtx{ts: start}
	t.Context = context.WithValue(context.Background(), ContextKey, NowProvider(t.now))
	return t
}

func (t *TimeTravelCtx) now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ts
}

// SetTime moves the apparent time to newTime. Safe for concurrent use.
func (t *TimeTravelCtx) SetTime(newTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ts = newTime
}
