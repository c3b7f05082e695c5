// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lend

// Flow is the two-case outcome of a lend block: Continue carries a plain
// value and gives the handle back, Break carries the final value and keeps
// the handle for good.
type Flow[B, C any] struct {
	isBreak bool
	brk     B
	cont    C
}

// Continue creates a continuing Flow.
func Continue[B, C any](c C) Flow[B, C] {
	return Flow[B, C]{cont: c}
}

// Break creates a breaking Flow.
func Break[B, C any](b B) Flow[B, C] {
	return Flow[B, C]{isBreak: true, brk: b}
}

// IsBreak reports whether f breaks.
func (f Flow[B, C]) IsBreak() bool { return f.isBreak }

// IsContinue reports whether f continues.
func (f Flow[B, C]) IsContinue() bool { return !f.isBreak }

// Break returns the break value and true, or zero and false.
//
// This is the early-return half of the call-site protocol:
//
//	if r, ok := lend.Run(site, &h, block).Break(); ok {
//	    return r
//	}
func (f Flow[B, C]) Break() (B, bool) {
	if f.isBreak {
		return f.brk, true
	}
	var zero B
	return zero, false
}

// Continue returns the continue value and true, or zero and false.
func (f Flow[B, C]) Continue() (C, bool) {
	if !f.isBreak {
		return f.cont, true
	}
	var zero C
	return zero, false
}

// MatchFlow pattern matches on the Flow, calling onBreak or onContinue.
func MatchFlow[B, C, T any](f Flow[B, C], onBreak func(B) T, onContinue func(C) T) T {
	if f.isBreak {
		return onBreak(f.brk)
	}
	return onContinue(f.cont)
}

// MapContinue applies a function to the continue value.
func MapContinue[B, C, D any](f Flow[B, C], g func(C) D) Flow[B, D] {
	if f.isBreak {
		return Break[B, D](f.brk)
	}
	return Continue[B](g(f.cont))
}

// MapBreak applies a function to the break value.
func MapBreak[B, C, D any](f Flow[B, C], g func(B) D) Flow[D, C] {
	if f.isBreak {
		return Break[D, C](g(f.brk))
	}
	return Continue[D](f.cont)
}
