// Package timer logs the wall-clock duration of an operation.
package timer

import (
	"time"

	"github.com/OlegKovalenko00/webmetrics/go/wmlog"
)

// Timer reports how long an operation took via wmlog. Start one with New at
// the top of the function being measured:
//
//	defer timer.New("aggregation pass").Stop()
type Timer struct {
	name  string
	begin time.Time
}

// New returns a started Timer named name.
func New(name string) Timer {
	return Timer{
		name:  name,
		begin: time.Now(),
	}
}

// Stop logs the time elapsed since New.
func (t Timer) Stop() {
	wmlog.Infof("%s %v", t.name, time.Since(t.begin))
}
