// Package cleanup runs repeated background tasks and coordinates the clean
// shutdown of a process.
package cleanup

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/OlegKovalenko00/webmetrics/go/util"
	"github.com/OlegKovalenko00/webmetrics/go/wmlog"
)

var (
	cancel context.CancelFunc
	ctx    context.Context
	wg     sync.WaitGroup

	atExit    []func()
	atExitMtx sync.Mutex
)

// Initialize the package.
func init() {
	resetContext()
}

// Reset the context. This is in a non-init function for testing purposes.
func resetContext() {
	// The below should be unnecessary but makes "go vet" happy.
	newContext, newCancel := context.WithCancel(context.Background())
	ctx = newContext
	cancel = newCancel
}

// Repeat runs the tick function immediately and on the given timer. When
// Cleanup() is called, the optional cleanup function is run after waiting for
// the tick function to finish.
func Repeat(tickFrequency time.Duration, tick func(ctx context.Context), cleanup func()) {
	wg.Add(1)
	go func() {
		// Returns after the package context is canceled AND tick is finished.
		util.RepeatCtx(tickFrequency, ctx, func() {
			tick(ctx)
		})
		if cleanup != nil {
			cleanup()
		}
		wg.Done()
	}()
}

// AtExit registers a function to run when the process is shutting down via
// Enable()'s signal handler, after all Repeat() tick functions have stopped.
func AtExit(fn func()) {
	atExitMtx.Lock()
	defer atExitMtx.Unlock()
	atExit = append(atExit, fn)
}

// Enable initiates the signal handler which triggers a clean shutdown on
// SIGINT or SIGTERM. Should be called by main() packages, typically via
// common.InitWith().
func Enable() {
	interruptChan := make(chan os.Signal, 1)
	signal.Notify(interruptChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-interruptChan
		wmlog.Infof("Caught %s", sig)
		Cleanup()
		atExitMtx.Lock()
		defer atExitMtx.Unlock()
		for _, fn := range atExit {
			fn()
		}
		wmlog.Flush()
		os.Exit(0)
	}()
}

// Cleanup cancels all tick functions registered via Repeat(), then waits for
// them to fully stop running and for their cleanup functions to run.
func Cleanup() {
	wmlog.Warningf("Shutdown request received")
	cancel()
	wg.Wait()
	wmlog.Warningf("Finished clean shutdown procedure.")
}
