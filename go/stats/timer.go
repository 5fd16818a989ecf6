package stats

import (
	"runtime"
	"strings"
	"time"

	"github.com/OlegKovalenko00/webmetrics/go/util"
)

const (
	MEASUREMENT_TIMER = "timer"
	NAME_FUNC_TIMER   = "func-timer"
)

// timer implements Timer.
type timer struct {
	begin time.Time
	m     Float64SummaryMetric
}

// newTimer creates and returns a new timer, which is started if start is true.
func newTimer(c Client, name string, start bool, tagsList ...map[string]string) Timer {
	// Add the name to the tags.
	tags := util.AddParams(map[string]string{}, tagsList...)
	tags["name"] = name
	t := &timer{
		m: c.GetFloat64SummaryMetric(MEASUREMENT_TIMER, tags),
	}
	if start {
		t.Start()
	}
	return t
}

// Start implements Timer.
func (t *timer) Start() {
	t.begin = time.Now()
}

// Stop implements Timer. The elapsed time is reported in seconds.
func (t *timer) Stop() time.Duration {
	elapsed := time.Since(t.begin)
	t.m.Observe(elapsed.Seconds())
	return elapsed
}

// FuncTimer is specifically intended for measuring the duration of functions.
// It uses the default client.
//
// The standard way to use FuncTimer is at the top of the func you want to
// measure:
//
//	func myfunc() {
//		defer stats.FuncTimer().Stop()
//		...
//	}
func FuncTimer() Timer {
	pc, _, _, _ := runtime.Caller(1)
	f := runtime.FuncForPC(pc)
	split := strings.Split(f.Name(), ".")
	fn := "unknown"
	pkg := "unknown"
	if len(split) >= 2 {
		fn = split[len(split)-1]
		pkg = strings.Join(split[:len(split)-1], ".")
	}
	return NewTimer(NAME_FUNC_TIMER, map[string]string{"package": pkg, "func": fn})
}

var _ Timer = (*timer)(nil)
