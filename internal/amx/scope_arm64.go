//go:build darwin && arm64

package amx

import (
	"errors"
	"runtime"
)

// ErrUnavailable is returned by Open when the AMX coprocessor is not
// present; this is a capability query, not a fault (spec §7.3).
var ErrUnavailable = errors.New("amx: coprocessor unavailable")

// Scope represents an open AMX enable/disable interval. It is
// thread-local: the goroutine that calls Open must be the same one
// that calls Close, and must not hand the Scope to another goroutine
// (spec §4.3, §9 "thread-local enable scope"). Re-entrant Open calls
// on an already-open Scope nest; only the outermost Close issues CLR.
// The goroutine is pinned to its OS thread for the scope's lifetime
// with runtime.LockOSThread: without it, Go's async preemption can
// migrate the goroutine to a core where SET was never issued between
// any two AMX instructions.
type Scope struct {
	depth int
}

// Open verifies AMX availability once, pins the calling goroutine to
// its OS thread, and issues SET. Passing a non-nil parent nests
// inside it — a no-op that increments the nesting depth instead of
// re-issuing SET or re-locking the thread; CLR and the unlock are
// deferred to the matching outermost Close.
func Open(parent *Scope) (*Scope, error) {
	if parent != nil {
		parent.depth++
		return parent, nil
	}
	if !Available() {
		return nil, ErrUnavailable
	}
	runtime.LockOSThread()
	Set()
	return &Scope{depth: 1}, nil
}

// MustOpen is Open without the availability check's error return; it
// panics if AMX is unavailable. It is for callers that have already
// verified availability and want the Rust AmxGuard::new ergonomics
// rather than AmxGuard::try_new's fallible form; the scheduler and the
// tests in this package use Open.
func MustOpen() *Scope {
	s, err := Open(nil)
	if err != nil {
		panic(err)
	}
	return s
}

// Close ends one level of nesting. CLR is issued, and the OS thread
// lock released, only when the outermost Scope closes.
func (s *Scope) Close() {
	if s == nil {
		return
	}
	s.depth--
	if s.depth <= 0 {
		Clr()
		runtime.UnlockOSThread()
	}
}
