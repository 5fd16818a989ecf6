// Package util holds small helpers shared across the services.
package util

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/OlegKovalenko00/webmetrics/go/wmlog"
)

// EnvOr returns the value of the environment variable named by key, or
// fallback if the variable is unset or empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// AddParams adds the second instance of map[string]string to the first and
// returns the first map.
func AddParams(a map[string]string, b ...map[string]string) map[string]string {
	if a == nil {
		a = make(map[string]string, len(b))
	}
	for _, oneMap := range b {
		for k, v := range oneMap {
			a[k] = v
		}
	}
	return a
}

// Close closes the Closer and logs any error. Use with defer where the error
// does not change the outcome.
func Close(c io.Closer) {
	if err := c.Close(); err != nil {
		// Don't start the stacktrace here, but at the caller's location.
		wmlog.ErrorfWithDepth(1, "Failed to Close(): %v", err)
	}
}

// LogErr logs err if it's not nil. Meant to be used for calls where failure is
// not fatal for the running process.
func LogErr(err error) {
	if err != nil {
		wmlog.ErrorfWithDepth(1, "Unexpected error: %s", err)
	}
}

// RepeatCtx calls the provided function 'fn' immediately and then in intervals
// defined by 'interval'. If the given context is canceled, the iteration stops.
func RepeatCtx(interval time.Duration, ctx context.Context, fn func()) {
	ticker := time.NewTicker(interval)
	done := ctx.Done()
	defer ticker.Stop()
	fn()
MainLoop:
	for {
		select {
		case <-done:
			break MainLoop
		case <-ticker.C:
			fn()
		}
	}
}
