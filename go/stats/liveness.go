package stats

import (
	"sync"
	"time"

	"github.com/OlegKovalenko00/webmetrics/go/util"
)

const (
	MEASUREMENT_LIVENESS   = "liveness"
	livenessReportInterval = time.Minute
)

// liveness implements Liveness.
type liveness struct {
	lastSuccessfulUpdate time.Time
	m                    Int64Metric
	mtx                  sync.Mutex
}

// newLiveness creates a new liveness. If reportRegularly is true, the current
// value is reported on a timer even when Reset is never called.
func newLiveness(c Client, name string, reportRegularly bool, tagsList ...map[string]string) Liveness {
	// Add the name to the tags.
	tags := util.AddParams(map[string]string{}, tagsList...)
	tags["name"] = name
	l := &liveness{
		lastSuccessfulUpdate: time.Now(),
		m:                    c.GetInt64Metric(MEASUREMENT_LIVENESS, tags),
		mtx:                  sync.Mutex{},
	}
	if reportRegularly {
		go func() {
			for range time.Tick(livenessReportInterval) {
				l.update()
			}
		}()
	}
	return l
}

// getLocked returns the current value of the liveness in seconds. Assumes the
// caller holds l.mtx.
func (l *liveness) getLocked() int64 {
	return int64(time.Since(l.lastSuccessfulUpdate).Seconds())
}

// updateLocked sets the value of the metric. Assumes the caller holds l.mtx.
func (l *liveness) updateLocked() {
	l.m.Update(l.getLocked())
}

// update sets the value of the metric.
func (l *liveness) update() {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.updateLocked()
}

// Get implements Liveness.
func (l *liveness) Get() int64 {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.getLocked()
}

// Reset implements Liveness.
func (l *liveness) Reset() {
	l.ManualReset(time.Now())
}

// ManualReset implements Liveness.
func (l *liveness) ManualReset(lastSuccessfulUpdate time.Time) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.lastSuccessfulUpdate = lastSuccessfulUpdate
	l.updateLocked()
}

var _ Liveness = (*liveness)(nil)
