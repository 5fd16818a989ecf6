// Package wmlogimpl holds the logging implementation interface. It exists so
// that wmlog and logger implementations can avoid a circular dependency.
package wmlogimpl

import (
	"sync/atomic"
)

// Severity of a log line.
type Severity int

const (
	Debug Severity = iota
	Info
	Warning
	Error
	Fatal
)

// Logger is implemented by logging backends.
type Logger interface {
	// Log at the given severity. depth is the number of stack frames between
	// the log statement being reported and the call into the Logger. If format
	// is the empty string the args are formatted as fmt.Sprint would.
	Log(depth int, severity Severity, format string, args ...interface{})

	// Flush any buffered log lines.
	Flush()
}

var logger atomic.Value

// SetLogger installs the Logger all wmlog calls are routed to.
func SetLogger(l Logger) {
	logger.Store(l)
}

// Log routes one log call to the installed Logger.
func Log(depth int, severity Severity, format string, args ...interface{}) {
	logger.Load().(Logger).Log(depth+1, severity, format, args...)
}

// Flush flushes the installed Logger.
func Flush() {
	logger.Load().(Logger).Flush()
}
