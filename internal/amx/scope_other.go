//go:build !(darwin && arm64)

package amx

import "errors"

// ErrUnavailable is returned by Open on platforms with no AMX
// coprocessor at all.
var ErrUnavailable = errors.New("amx: coprocessor unavailable")

// Scope is never actually opened on this platform; it exists so
// callers that hold a *Scope across build targets still compile.
type Scope struct{}

// Open always fails outside darwin/arm64.
func Open(parent *Scope) (*Scope, error) {
	return nil, ErrUnavailable
}

// MustOpen always panics outside darwin/arm64.
func MustOpen() *Scope {
	panic(ErrUnavailable)
}

// Close is a no-op; no Scope is ever successfully opened here.
func (s *Scope) Close() {}
