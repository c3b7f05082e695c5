// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lend

// Poll is the readiness of a value produced by cooperative polling:
// either Ready with a value, or Pending.
//
// Poll is a value, not a scheduling primitive. A poller that sees Pending
// returns it upward and is expected to be polled again later; nothing is
// remembered between two polls except the state the poller itself carries.
type Poll[T any] struct {
	ready bool
	value T
}

// Ready creates a ready Poll.
func Ready[T any](v T) Poll[T] {
	return Poll[T]{ready: true, value: v}
}

// Pending creates a not-ready Poll.
func Pending[T any]() Poll[T] {
	return Poll[T]{}
}

// IsReady reports whether p holds a value.
func (p Poll[T]) IsReady() bool { return p.ready }

// IsPending reports whether p is not ready.
func (p Poll[T]) IsPending() bool { return !p.ready }

// Get returns the ready value and true, or zero and false when pending.
func (p Poll[T]) Get() (T, bool) {
	return p.value, p.ready
}

// MapPoll applies f to a ready value.
func MapPoll[T, U any](p Poll[T], f func(T) U) Poll[U] {
	if p.ready {
		return Ready(f(p.value))
	}
	return Poll[U]{}
}
