package fixer

import (
	"fmt"

	"github.com/alexspark86/Fixer/pkg/dom"
)

// MissingSelectorError reports a registration call with no selector or
// handle supplied. It is fatal at the call site and never retried.
type MissingSelectorError struct{}

func (e *MissingSelectorError) Error() string {
	return "no selector or handle supplied"
}

// ResolutionError reports a selector or handle that did not resolve to a
// real element. It is fatal at the call site and never retried.
type ResolutionError struct {
	// Handle is the selector or node handle that failed to resolve.
	Handle dom.Handle
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("handle %v did not resolve to an element", e.Handle)
}
