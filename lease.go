// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lend

import (
	"sync/atomic"
)

// Lease suspends the ownership of a handle for the duration of one lend
// invocation. The handle can be released back at most once; subsequent
// attempts panic (Release) or return false (TryRelease).
//
// A lease ends in exactly one of two ways: Release on the continue path,
// or Discard on the break path, after which the handle is owned by the break
// value and is never surfaced again.
type Lease[P any] struct {
	used   atomic.Uintptr
	handle P
}

// Hold suspends p in a new lease.
func Hold[P any](p P) *Lease[P] {
	return &Lease[P]{handle: p}
}

// Release ends the lease and returns the handle.
// Panics if the lease has already been released or discarded.
func (l *Lease[P]) Release() P {
	if l.used.Add(1) != 1 {
		panic("lend: lease released twice")
	}
	p := l.handle
	var zero P
	l.handle = zero
	return p
}

// TryRelease attempts to end the lease.
// Returns (handle, true) on success, or (zero, false) if already ended.
func (l *Lease[P]) TryRelease() (P, bool) {
	if l.used.Add(1) != 1 {
		var zero P
		return zero, false
	}
	p := l.handle
	var zero P
	l.handle = zero
	return p, true
}

// Discard ends the lease without returning the handle.
func (l *Lease[P]) Discard() {
	l.used.Store(1)
	var zero P
	l.handle = zero
}

// Held reports whether the lease still holds its handle.
func (l *Lease[P]) Held() bool {
	return l.used.Load() == 0
}
