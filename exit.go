// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lend

// Exit carries the in-block primitives of a plain lend block.
// It is a zero-size value whose only purpose is to fix R and C so that
// the primitives need no explicit type arguments.
type Exit[R, C any] struct{}

// Return exits the enclosing lend with the break value r.
// The handle is not restored; it now belongs to r.
func (Exit[R, C]) Return(r R) Flow[R, C] {
	return Break[R, C](r)
}

// Continue ends the block with the plain value c; the handle is restored.
func (Exit[R, C]) Continue(c C) Flow[R, C] {
	return Continue[R](c)
}

// Skip continues with the zero value of C.
func (Exit[R, C]) Skip() Flow[R, C] {
	return Flow[R, C]{}
}

// UnwrapReady returns the ready payload of p.
// When p is pending it returns ok == false together with a Flow breaking
// with Pending, which the block must return:
//
//	item, pending, ok := lend.UnwrapReady(e, s.PollNext(scope))
//	if !ok {
//	    return pending
//	}
func UnwrapReady[T, U, C any](_ Exit[Poll[U], C], p Poll[T]) (T, Flow[Poll[U], C], bool) {
	if p.ready {
		return p.value, Flow[Poll[U], C]{}, true
	}
	var zero T
	return zero, Break[Poll[U], C](Pending[U]()), false
}

// TryExit carries the in-block primitives of a try lend block, whose
// outcome is a [Short] over a Flow in the residual type of the result shape.
type TryExit[Ret, T, R, X any] struct {
	shape Shape[Ret, T, R]
}

// Shape returns the result shape of the enclosing lend.
func (e TryExit[Ret, T, R, X]) Shape() Shape[Ret, T, R] { return e.shape }

// Return exits the enclosing lend with ret.
// A ret that itself short-circuits is returned as is.
func (e TryExit[Ret, T, R, X]) Return(ret Ret) Short[Flow[T, X], R] {
	return MapShort(e.shape.Split(ret), Break[T, X])
}

// Continue ends the block with x; the handle is restored.
func (TryExit[Ret, T, R, X]) Continue(x X) Short[Flow[T, X], R] {
	return Value[Flow[T, X], R](Continue[T](x))
}

// Skip continues with the zero value of X.
func (TryExit[Ret, T, R, X]) Skip() Short[Flow[T, X], R] {
	return Value[Flow[T, X], R](Flow[T, X]{})
}

// Propagate forwards a stop obtained from [Try] or [TryExit.Unwrap].
func (TryExit[Ret, T, R, X]) Propagate(s Stop[R]) Short[Flow[T, X], R] {
	return Stopped[Flow[T, X]](s)
}

// Unwrap is the propagation operator for values of the result type itself:
// it returns (value, zero, true), or (zero, stop, false) when v short-circuits.
func (e TryExit[Ret, T, R, X]) Unwrap(v Ret) (T, Stop[R], bool) {
	return e.shape.Split(v).Split()
}

// Try is the propagation operator: it splits v with shape and returns
// (value, zero, true), or (zero, stop, false) when v short-circuits. The
// block forwards the stop with [TryExit.Propagate]:
//
//	item, stop, ok := lend.Try(lend.OptionOf[int](), next())
//	if !ok {
//	    return e.Propagate(stop)
//	}
func Try[V, C, R any](shape Shape[V, C, R], v V) (C, Stop[R], bool) {
	return shape.Split(v).Split()
}

// TryUnwrapReady is [UnwrapReady] for try blocks. When p is pending the
// returned Short is empty; the result shape must have an empty case, as
// [PollEitherOf] and [PollOptionEitherOf] do.
func TryUnwrapReady[V, Ret, T, R, X any](_ TryExit[Ret, T, R, X], p Poll[V]) (V, Short[Flow[T, X], R], bool) {
	if p.ready {
		return p.value, Short[Flow[T, X], R]{}, true
	}
	var zero V
	return zero, Empty[Flow[T, X], R](), false
}
