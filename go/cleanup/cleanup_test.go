package cleanup

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRepeat_TickRunsThenCleanupOnShutdown(t *testing.T) {
	resetContext()
	var ticks, cleanups int64
	Repeat(time.Hour, func(ctx context.Context) {
		atomic.AddInt64(&ticks, 1)
	}, func() {
		atomic.AddInt64(&cleanups, 1)
	})

	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&ticks) == 1
	}, 5*time.Second, time.Millisecond)

	Cleanup()
	assert.EqualValues(t, 1, atomic.LoadInt64(&ticks))
	assert.EqualValues(t, 1, atomic.LoadInt64(&cleanups))
}

func TestRepeat_ContextCanceledAfterCleanup(t *testing.T) {
	resetContext()
	var seen atomic.Value
	Repeat(time.Hour, func(ctx context.Context) {
		seen.Store(ctx)
	}, nil)

	assert.Eventually(t, func() bool {
		return seen.Load() != nil
	}, 5*time.Second, time.Millisecond)
	Cleanup()

	tickCtx := seen.Load().(context.Context)
	assert.Error(t, tickCtx.Err())
}
