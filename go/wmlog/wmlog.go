// Package wmlog defines the logging functions (e.g. Info, Errorf, etc.) used
// across all services.
package wmlog

import (
	"os"

	"github.com/OlegKovalenko00/webmetrics/go/wmlog/stdlogging"
	"github.com/OlegKovalenko00/webmetrics/go/wmlog/wmlogimpl"
)

// A logger must be installed before the first log call; otherwise there's a
// very good chance of getting a nil pointer panic.
func init() {
	wmlogimpl.SetLogger(stdlogging.New(os.Stderr))
}

// Functions to log at various levels.
// Debug, Info, Warning, Error, and Fatal use fmt.Sprint to format the
// arguments.
// Functions ending in f use fmt.Sprintf to format the arguments.
// Functions ending in WithDepth allow the caller to change where the reported
// call site starts. 0 (the default in all other calls) means to report
// starting at the caller. 1 would mean one level above, the caller's caller.
func Debug(msg ...interface{}) {
	wmlogimpl.Log(1, wmlogimpl.Debug, "", msg...)
}

func Debugf(format string, v ...interface{}) {
	wmlogimpl.Log(1, wmlogimpl.Debug, format, v...)
}

func Info(msg ...interface{}) {
	wmlogimpl.Log(1, wmlogimpl.Info, "", msg...)
}

func Infof(format string, v ...interface{}) {
	wmlogimpl.Log(1, wmlogimpl.Info, format, v...)
}

func InfofWithDepth(depth int, format string, v ...interface{}) {
	wmlogimpl.Log(1+depth, wmlogimpl.Info, format, v...)
}

func Warning(msg ...interface{}) {
	wmlogimpl.Log(1, wmlogimpl.Warning, "", msg...)
}

func Warningf(format string, v ...interface{}) {
	wmlogimpl.Log(1, wmlogimpl.Warning, format, v...)
}

func Error(msg ...interface{}) {
	wmlogimpl.Log(1, wmlogimpl.Error, "", msg...)
}

func Errorf(format string, v ...interface{}) {
	wmlogimpl.Log(1, wmlogimpl.Error, format, v...)
}

func ErrorfWithDepth(depth int, format string, v ...interface{}) {
	wmlogimpl.Log(1+depth, wmlogimpl.Error, format, v...)
}

// Fatal* exits the program after logging.
func Fatal(msg ...interface{}) {
	wmlogimpl.Log(1, wmlogimpl.Fatal, "", msg...)
}

func Fatalf(format string, v ...interface{}) {
	wmlogimpl.Log(1, wmlogimpl.Fatal, format, v...)
}

func Flush() {
	wmlogimpl.Flush()
}
