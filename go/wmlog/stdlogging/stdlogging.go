// Package stdlogging implements wmlogimpl.Logger on top of the jcgregorio
// logger, writing to stderr or stdout.
package stdlogging

import (
	logger "github.com/jcgregorio/logger"

	"github.com/OlegKovalenko00/webmetrics/go/wmlog/wmlogimpl"
)

type stdlog struct {
	logger *logger.Logger
}

// New returns a wmlogimpl.Logger that writes to a SyncWriter, such as
// os.Stdout or os.Stderr.
func New(dst logger.SyncWriter) wmlogimpl.Logger {
	return &stdlog{
		logger: logger.NewFromOptions(&logger.Options{
			SyncWriter:   dst,
			DepthDelta:   3,
			IncludeDebug: true,
		}),
	}
}

// Log implements wmlogimpl.Logger. Unknown severities log as errors rather
// than dropping the message.
func (s stdlog) Log(_ int, severity wmlogimpl.Severity, format string, args ...interface{}) {
	plain, formatted := s.logger.Error, s.logger.Errorf
	switch severity {
	case wmlogimpl.Debug:
		plain, formatted = s.logger.Debug, s.logger.Debugf
	case wmlogimpl.Info:
		plain, formatted = s.logger.Info, s.logger.Infof
	case wmlogimpl.Warning:
		plain, formatted = s.logger.Warning, s.logger.Warningf
	case wmlogimpl.Fatal:
		plain, formatted = s.logger.Fatal, s.logger.Fatalf
	}
	if format == "" {
		plain(args...)
		return
	}
	formatted(format, args...)
}

// Flush implements wmlogimpl.Logger.
func (s stdlog) Flush() {
	// noop
}
