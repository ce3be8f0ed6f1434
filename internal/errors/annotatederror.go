// Package errors provides error annotation with slog attributes and stack traces.
//
// It re-exports the standard library helpers so that callers only need one
// errors import.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// framesToSkip skips the runtime.Callers, newAnnotatedError, and Wrap/NewSentinel frames
// so that the recorded source location points at the caller.
const framesToSkip = 3

// annotatedError carries a message, an optional wrapped error, slog attributes,
// and the source location where it was created.
type annotatedError struct {
	msg     string
	wrapped error
	attrs   []slog.Attr
	source  string
}

// Error implements the error interface.
func (e *annotatedError) Error() string {
	if e.wrapped == nil {
		return e.msg
	}
	return e.msg + ": " + e.wrapped.Error()
}

// Unwrap supports errors.Is and errors.As traversal.
func (e *annotatedError) Unwrap() error {
	return e.wrapped
}

func newAnnotatedError(wrapped error, msg string, attrs ...slog.Attr) *annotatedError {
	pc := make([]uintptr, 1)
	source := "unknown"
	if n := runtime.Callers(framesToSkip, pc); n > 0 {
		frames := runtime.CallersFrames(pc)
		frame, _ := frames.Next()
		if frame.File != "" {
			file := frame.File
			if idx := strings.LastIndexByte(file, '/'); idx != -1 {
				file = file[idx+1:]
			}
			source = fmt.Sprintf("%s:%d", file, frame.Line)
		}
	}
	return &annotatedError{
		msg:     msg,
		wrapped: wrapped,
		attrs:   attrs,
		source:  source,
	}
}

// NewSentinel creates a sentinel error that can be wrapped with context later.
func NewSentinel(msg string) error {
	return newAnnotatedError(nil, msg)
}

// Wrap annotates err with a message and optional slog attributes.
//
// A nil err is allowed so that callers don't have to guard against it; the
// resulting error then only carries the message.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return newAnnotatedError(err, msg, attrs...)
}

// DecoratePanic converts a recovered panic value into an annotated error.
func DecoratePanic(recovered any) error {
	return newAnnotatedError(nil, fmt.Sprintf("panic: %v", recovered))
}

// SlogError renders err into a slog.Attr with the error message, collected
// annotations, and the source location of the outermost annotated error.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}

	var (
		annotations []slog.Attr
		source      string
	)
	for unwrapped := err; unwrapped != nil; unwrapped = errors.Unwrap(unwrapped) {
		if annotated, ok := unwrapped.(*annotatedError); ok { //nolint:errorlint // deliberate per-link inspection.
			annotations = append(annotations, annotated.attrs...)
			if source == "" {
				source = annotated.source
			}
		}
	}

	attrs := []any{slog.String("message", err.Error())}
	if source != "" {
		attrs = append(attrs, slog.String("source", source))
	}
	if len(annotations) > 0 {
		groupArgs := make([]any, len(annotations))
		for i, attr := range annotations {
			groupArgs[i] = attr
		}
		attrs = append(attrs, slog.Group("annotations", groupArgs...))
	}
	return slog.Group("error", attrs...)
}

// New re-exports errors.New.
func New(msg string) error {
	//nolint:err113 // this is a re-export of the standard library function.
	return errors.New(msg)
}

// Is re-exports errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As re-exports errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap re-exports errors.Unwrap.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join re-exports errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
