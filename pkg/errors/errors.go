// Package errors provides structured error handling for the fixer engine.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindResolution indicates a selector or handle that did not resolve.
	KindResolution
	// KindConfig indicates invalid registration configuration.
	KindConfig
	// KindSurface indicates a document surface failure.
	KindSurface
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindResolution:
		return "resolution"
	case KindConfig:
		return "config"
	case KindSurface:
		return "surface"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// FixError represents a structured error in the fixer engine.
type FixError struct {
	// Op is the operation that failed (e.g., "fixer.AddElement").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FixError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FixError) Unwrap() error {
	return e.Err
}

// PanicError represents a panic recovered inside an event callback.
type PanicError struct {
	// Op is the operation that panicked (e.g., "fixer.Session.evaluate").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the fixer engine's event
// machinery. Registration errors are returned to the caller directly and
// never routed here.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *FixError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
