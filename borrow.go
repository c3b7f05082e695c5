// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lend

// Single-resource invocation engine.
// Borrow follows the bracket pattern with a conditional release: suspend
// the handle, lend an alias to the block, then either give the handle back
// (continue) or hand it over to the break value for good (break).

// Lent is a continue value paired with the handle given back.
type Lent[C, P any] struct {
	Value  C
	Handle P
}

// Borrow lends p to block under a fresh output scope.
//
// The block decides, after inspecting the alias, whether to break with a
// value that may embed the alias, or to continue with a plain value. On
// break the output scope is kept and the handle is never surfaced again. On
// continue the output scope is closed, so an alias retained past the call
// can no longer be used, and the original handle is returned intact.
//
// Example:
//
//	f := lend.Borrow(lend.Own(&m), func(m lend.Mut[map[string]*int]) lend.Flow[*int, struct{}] {
//	    if v, ok := (*m.Get())["b"]; ok {
//	        return lend.Break[*int, struct{}](v)
//	    }
//	    return lend.Continue[*int](struct{}{})
//	})
//
// A broken alias stays valid for as long as the scope of p does. A copy of
// p taken before the call can still reach the same target, so lending that
// copy again lets the kept alias observe its mutations. Give each lend that
// may break its own handle with [OwnAt] and close that scope before lending
// the target again; lendcheck reports reuse of a consumed handle, including
// through functions that lend their parameters.
func Borrow[P Reborrow[P], R, C any](p P, block func(P) Flow[R, C]) Flow[R, Lent[C, P]] {
	return BorrowIn(NewScope(p.Scope()), p, block)
}

// BorrowIn is [Borrow] with a caller-supplied output scope.
// Several invocations may share one output scope; it must still be open.
// A nil scope is static: aliases lent under it are never invalidated.
func BorrowIn[P Reborrow[P], R, C any](out *Scope, p P, block func(P) Flow[R, C]) Flow[R, Lent[C, P]] {
	lease := Hold(p)

	inner := NewScope(p.Scope())
	alias := Extend(lease.handle.Reborrow(inner), out)
	inner.Close()

	ctrl := block(alias)
	if ctrl.isBreak {
		out.Keep()
		lease.Discard()
		return Break[R, Lent[C, P]](ctrl.brk)
	}
	out.Close()
	return Continue[R](Lent[C, P]{Value: ctrl.cont, Handle: lease.Release()})
}

// TryBorrow is the try flavour of [Borrow].
//
// The block's own outcome is a [Short] over a Flow, which lets the block
// propagate an unrelated short-circuit of the result shape (an absent
// option, a failure, a pending poll) while still deciding continue or break
// for the lend itself:
//
//   - residual: break with shape.Join of the residual
//   - empty: break with shape.Join of the empty case
//   - value Break(t): break with shape.Join of t
//   - value Continue(x): continue with x and the handle
func TryBorrow[P Reborrow[P], Ret, T, R, X any](
	p P,
	shape Shape[Ret, T, R],
	block func(P, TryExit[Ret, T, R, X]) Short[Flow[T, X], R],
) Flow[Ret, Lent[X, P]] {
	e := TryExit[Ret, T, R, X]{shape: shape}
	return Borrow(p, func(a P) Flow[Ret, X] {
		return tryFlow(shape, block(a, e))
	})
}

// tryFlow folds a try block's outcome into the engine's Flow.
func tryFlow[Ret, T, R, X any](shape Shape[Ret, T, R], s Short[Flow[T, X], R]) Flow[Ret, X] {
	switch s.kind {
	case shortResidual:
		return Break[Ret, X](shape.Join(Residual[T](s.residual)))
	case shortEmpty:
		return Break[Ret, X](shape.Join(Empty[T, R]()))
	}
	if s.value.isBreak {
		return Break[Ret, X](shape.Join(Value[T, R](s.value.brk)))
	}
	return Continue[Ret](s.value.cont)
}
