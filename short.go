// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lend

// Short-circuit algebra.
//
// Every early-exit container shape decomposes into three cases: a value to
// continue with, an empty continuation that carries no value (a pending
// poll), or a residual that short-circuits (an absent option, a failure, a
// break). Short is that common currency; [Shape] adapters convert each
// container to and from it. The residual type R does not depend on the
// value type C, so mapping the value case keeps the residual intact.

type shortKind uint8

const (
	shortValue shortKind = iota
	shortEmpty
	shortResidual
)

// Short is the three-case short-circuit value.
type Short[C, R any] struct {
	kind     shortKind
	value    C
	residual R
}

// Value creates a continue-with-value Short.
func Value[C, R any](c C) Short[C, R] {
	return Short[C, R]{kind: shortValue, value: c}
}

// Empty creates a continue-with-nothing Short.
func Empty[C, R any]() Short[C, R] {
	return Short[C, R]{kind: shortEmpty}
}

// Residual creates a break-with-residual Short.
func Residual[C, R any](r R) Short[C, R] {
	return Short[C, R]{kind: shortResidual, residual: r}
}

// IsValue reports whether s continues with a value.
func (s Short[C, R]) IsValue() bool { return s.kind == shortValue }

// IsEmpty reports whether s continues with nothing.
func (s Short[C, R]) IsEmpty() bool { return s.kind == shortEmpty }

// IsResidual reports whether s breaks with a residual.
func (s Short[C, R]) IsResidual() bool { return s.kind == shortResidual }

// GetValue returns the value and true, or zero and false.
func (s Short[C, R]) GetValue() (C, bool) {
	if s.kind == shortValue {
		return s.value, true
	}
	var zero C
	return zero, false
}

// GetResidual returns the residual and true, or zero and false.
func (s Short[C, R]) GetResidual() (R, bool) {
	if s.kind == shortResidual {
		return s.residual, true
	}
	var zero R
	return zero, false
}

// Split separates the value case from the rest.
// Returns (value, zero, true), or (zero, stop, false) when s carries no value.
func (s Short[C, R]) Split() (C, Stop[R], bool) {
	switch s.kind {
	case shortValue:
		return s.value, Stop[R]{}, true
	case shortEmpty:
		var zero C
		return zero, Stop[R]{empty: true}, false
	default:
		var zero C
		return zero, Stop[R]{residual: s.residual}, false
	}
}

// MapShort applies f to the value case; empty and residual pass through.
func MapShort[C, D, R any](s Short[C, R], f func(C) D) Short[D, R] {
	switch s.kind {
	case shortValue:
		return Short[D, R]{kind: shortValue, value: f(s.value)}
	case shortEmpty:
		return Short[D, R]{kind: shortEmpty}
	default:
		return Short[D, R]{kind: shortResidual, residual: s.residual}
	}
}

// Stop is the part of a [Short] that does not carry a value:
// either empty or a residual. It is what a propagation forwards unchanged.
type Stop[R any] struct {
	empty    bool
	residual R
}

// IsEmpty reports whether the stop is an empty continuation.
func (s Stop[R]) IsEmpty() bool { return s.empty }

// Residual returns the residual and true, or zero and false when empty.
func (s Stop[R]) Residual() (R, bool) {
	if s.empty {
		var zero R
		return zero, false
	}
	return s.residual, true
}

// Stopped lifts a stop back into a [Short] of any value type.
func Stopped[C, R any](s Stop[R]) Short[C, R] {
	if s.empty {
		return Short[C, R]{kind: shortEmpty}
	}
	return Short[C, R]{kind: shortResidual, residual: s.residual}
}
