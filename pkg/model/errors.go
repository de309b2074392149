package model

import (
	"errors"
	"fmt"
)

// UnknownBreakpointError reports a bounds name that is not in the configured list.
type UnknownBreakpointError struct {
	Name       string
	Suggestion string // closest known name, if any
}

func (e *UnknownBreakpointError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown breakpoint %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown breakpoint %q", e.Name)
}

// InvalidBreakpointListError reports a malformed breakpoint list. Index is -1
// when the problem is not tied to a single entry.
type InvalidBreakpointListError struct {
	Index  int
	Reason string
}

func (e *InvalidBreakpointListError) Error() string {
	if e.Index < 0 {
		return "invalid breakpoint list: " + e.Reason
	}
	return fmt.Sprintf("invalid breakpoint list at index %d: %s", e.Index, e.Reason)
}

// ErrConflictingBounds is returned when a bound and its legacy alias name
// different breakpoints.
var ErrConflictingBounds = errors.New("conflicting bounds: alias names a different breakpoint")
