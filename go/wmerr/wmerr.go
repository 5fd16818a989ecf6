// Package wmerr augments errors with call-stack context. Use Wrap or Wrapf at
// every point an error crosses a package boundary so that a logged error names
// the path it travelled, not just its origin.
package wmerr

import (
	"fmt"
	"runtime"
	"strings"
)

// StackTrace identifies one frame of a call stack.
type StackTrace struct {
	File string
	Line int
}

func (st StackTrace) String() string {
	return fmt.Sprintf("%s:%d", st.File, st.Line)
}

// CallStack returns up to height frames, starting startAt frames above the
// caller of CallStack itself.
func CallStack(height, startAt int) []StackTrace {
	stack := make([]StackTrace, 0, height)
	for i := 0; i < height; i++ {
		_, file, line, ok := runtime.Caller(i + startAt)
		if !ok {
			break
		}
		// Keep the last two path segments; full paths are noise in logs.
		parts := strings.Split(file, "/")
		if len(parts) > 2 {
			file = strings.Join(parts[len(parts)-2:], "/")
		}
		stack = append(stack, StackTrace{File: file, Line: line})
	}
	return stack
}

// ErrorWithContext is an error plus the call stack at the point it was wrapped
// and an optional contextual message.
type ErrorWithContext struct {
	Wrapped   error
	CallStack []StackTrace
	Message   string
}

func (err *ErrorWithContext) Error() string {
	var sb strings.Builder
	if err.Message != "" {
		sb.WriteString(err.Message)
		if err.Wrapped != nil {
			sb.WriteString(": ")
		}
	}
	if err.Wrapped != nil {
		sb.WriteString(err.Wrapped.Error())
	}
	if len(err.CallStack) > 0 {
		sb.WriteString(" At")
		for _, st := range err.CallStack {
			sb.WriteString(" ")
			sb.WriteString(st.String())
		}
	}
	return sb.String()
}

// Unwrap supports errors.Is and errors.As.
func (err *ErrorWithContext) Unwrap() error {
	return err.Wrapped
}

const callStackHeight = 8

// Wrap adds call-stack context to err. Returns nil if err is nil, so it is
// safe to use on any return.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return &ErrorWithContext{
		Wrapped:   err,
		CallStack: CallStack(callStackHeight, 2),
	}
}

// Unwrap returns the innermost error if err is one or more ErrorWithContext
// layers, or err itself otherwise.
func Unwrap(err error) error {
	for {
		wrapper, ok := err.(*ErrorWithContext)
		if !ok {
			return err
		}
		err = wrapper.Wrapped
	}
}

// Wrapf adds call-stack context and a formatted message to err. Returns nil if
// err is nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ErrorWithContext{
		Wrapped:   err,
		CallStack: CallStack(callStackHeight, 2),
		Message:   fmt.Sprintf(format, args...),
	}
}

// Fmt creates a new error with call-stack context, as fmt.Errorf would.
func Fmt(format string, args ...interface{}) error {
	return &ErrorWithContext{
		Wrapped:   fmt.Errorf(format, args...),
		CallStack: CallStack(callStackHeight, 2),
	}
}
