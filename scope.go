// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lend

import (
	"strconv"
	"sync/atomic"
)

// Scope states. Transitions are one-way: open → closed or open → kept.
const (
	scopeOpen uint32 = iota
	scopeClosed
	scopeKept
)

var scopeSeq atomic.Uint64

// Scope is a reference-validity token.
//
// Every alias carries the scope it was lent under. A scope is open while the
// lend block runs, closed when the invocation continues (the handle went back
// to its owner, so aliases retained past the call are stale), and kept when
// the invocation breaks (the break value owns the aliases for good).
//
// The nil *Scope is the static scope: it is always valid and never changes.
type Scope struct {
	id      uint64
	state   atomic.Uint32
	parents []*Scope
}

// NewScope creates an open scope that stays valid only while every parent
// does. Nil parents are ignored.
func NewScope(parents ...*Scope) *Scope {
	s := &Scope{id: scopeSeq.Add(1)}
	for _, p := range parents {
		if p != nil {
			s.parents = append(s.parents, p)
		}
	}
	return s
}

// ID returns the scope's process-unique identifier, or 0 for the static scope.
func (s *Scope) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Valid reports whether aliases bound to s may be used.
// A scope is valid until it or any of its transitive parents is closed.
func (s *Scope) Valid() bool {
	if s == nil {
		return true
	}
	if s.state.Load() == scopeClosed {
		return false
	}
	for _, p := range s.parents {
		if !p.Valid() {
			return false
		}
	}
	return true
}

// Kept reports whether s was promoted by a breaking invocation.
func (s *Scope) Kept() bool {
	return s != nil && s.state.Load() == scopeKept
}

// Closed reports whether s ended with a continuing invocation.
func (s *Scope) Closed() bool {
	return s != nil && s.state.Load() == scopeClosed
}

// Close ends s. Aliases bound to s or to any scope depending on it become
// invalid. Closing a closed scope is a no-op; closing a kept scope panics.
func (s *Scope) Close() {
	if s == nil {
		return
	}
	if !s.state.CompareAndSwap(scopeOpen, scopeClosed) && s.state.Load() == scopeKept {
		scopePanic("close", s)
	}
}

// Keep promotes s so that aliases bound to it stay valid for as long as its
// parents do. Keeping a kept scope is a no-op; keeping a closed scope panics.
func (s *Scope) Keep() {
	if s == nil {
		return
	}
	if !s.state.CompareAndSwap(scopeOpen, scopeKept) && s.state.Load() == scopeClosed {
		scopePanic("keep", s)
	}
}

// String implements fmt.Stringer.
func (s *Scope) String() string {
	if s == nil {
		return "scope(static)"
	}
	var state string
	switch s.state.Load() {
	case scopeOpen:
		state = "open"
	case scopeClosed:
		state = "closed"
	default:
		state = "kept"
	}
	return "scope(" + strconv.FormatUint(s.id, 10) + ", " + state + ")"
}

// Family is the scope-parameterized view of an alias type.
//
// Rescope applied at two different scopes yields values of the same type P
// that differ only in the embedded scope. The self-referencing constraint
// keeps the family coherent: the alias of P at any scope is again a P.
type Family[P Family[P]] interface {
	// Scope returns the scope the value is bound to.
	Scope() *Scope

	// Rescope returns the same alias bound to s.
	Rescope(s *Scope) P
}

// At instantiates p at scope s.
func At[P Family[P]](p P, s *Scope) P {
	return p.Rescope(s)
}

//go:noinline
func scopePanic(op string, s *Scope) {
	panic("lend: cannot " + op + " " + s.String())
}
