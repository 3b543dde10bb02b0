package errors

import (
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Recover is a helper for deferred panic recovery inside event callbacks.
// The recovered panic is reported to the handler; a nil handler drops it.
//
// Usage: defer errors.Recover(handler, "fixer.Session.evaluate")
func Recover(h ErrorHandler, op string) {
	r := recover()
	if r == nil {
		return
	}
	if h == nil {
		return
	}
	h.HandlePanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// CaptureStack returns the current call stack as a string.
// It skips the first few frames to exclude the CaptureStack call itself.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
