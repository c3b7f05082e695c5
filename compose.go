// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lend

// Multi-resource composition.
// A lend over several handles is a right-nested chain of single lends: the
// first handle's block lends the second, and so on; the innermost block
// runs the caller's block. A break anywhere short-circuits the whole chain.
// Handles are restored innermost first and reassembled in call order.

// Lent2 is a continue value paired with two handles given back.
type Lent2[C, P1, P2 any] struct {
	Value C
	Fst   P1
	Snd   P2
}

// Lent3 is a continue value paired with three handles given back.
type Lent3[C, P1, P2, P3 any] struct {
	Value C
	Fst   P1
	Snd   P2
	Thd   P3
}

// Borrow2 lends two handles at once, one output scope per handle.
func Borrow2[P1 Reborrow[P1], P2 Reborrow[P2], R, C any](
	p1 P1, p2 P2,
	block func(P1, P2) Flow[R, C],
) Flow[R, Lent2[C, P1, P2]] {
	return borrow2(NewScope(p1.Scope()), NewScope(p2.Scope()), p1, p2, block)
}

func borrow2[P1 Reborrow[P1], P2 Reborrow[P2], R, C any](
	s1, s2 *Scope,
	p1 P1, p2 P2,
	block func(P1, P2) Flow[R, C],
) Flow[R, Lent2[C, P1, P2]] {
	f := BorrowIn(s1, p1, func(a1 P1) Flow[R, Lent[C, P2]] {
		return BorrowIn(s2, p2, func(a2 P2) Flow[R, C] {
			return block(a1, a2)
		})
	})
	return MapContinue(f, func(l Lent[Lent[C, P2], P1]) Lent2[C, P1, P2] {
		return Lent2[C, P1, P2]{Value: l.Value.Value, Fst: l.Handle, Snd: l.Value.Handle}
	})
}

// Borrow3 lends three handles at once, one output scope per handle.
func Borrow3[P1 Reborrow[P1], P2 Reborrow[P2], P3 Reborrow[P3], R, C any](
	p1 P1, p2 P2, p3 P3,
	block func(P1, P2, P3) Flow[R, C],
) Flow[R, Lent3[C, P1, P2, P3]] {
	return borrow3(NewScope(p1.Scope()), NewScope(p2.Scope()), NewScope(p3.Scope()), p1, p2, p3, block)
}

func borrow3[P1 Reborrow[P1], P2 Reborrow[P2], P3 Reborrow[P3], R, C any](
	s1, s2, s3 *Scope,
	p1 P1, p2 P2, p3 P3,
	block func(P1, P2, P3) Flow[R, C],
) Flow[R, Lent3[C, P1, P2, P3]] {
	f := BorrowIn(s1, p1, func(a1 P1) Flow[R, Lent2[C, P2, P3]] {
		return borrow2(s2, s3, p2, p3, func(a2 P2, a3 P3) Flow[R, C] {
			return block(a1, a2, a3)
		})
	})
	return MapContinue(f, func(l Lent[Lent2[C, P2, P3], P1]) Lent3[C, P1, P2, P3] {
		return Lent3[C, P1, P2, P3]{Value: l.Value.Value, Fst: l.Handle, Snd: l.Value.Fst, Thd: l.Value.Snd}
	})
}

// BorrowAll lends an ordered list of handles of one kind, one output scope
// per handle. The block receives the aliases in the order of ps; on continue
// the handles come back in the same order.
func BorrowAll[P Reborrow[P], R, C any](ps []P, block func([]P) Flow[R, C]) Flow[R, Lent[C, []P]] {
	scopes := make([]*Scope, len(ps))
	for i, p := range ps {
		scopes[i] = NewScope(p.Scope())
	}
	return borrowAll(scopes, ps, block)
}

func borrowAll[P Reborrow[P], R, C any](scopes []*Scope, ps []P, block func([]P) Flow[R, C]) Flow[R, Lent[C, []P]] {
	aliases := make([]P, len(ps))
	back := make([]P, len(ps))

	var lendFrom func(i int) Flow[R, C]
	lendFrom = func(i int) Flow[R, C] {
		if i == len(ps) {
			return block(aliases)
		}
		f := BorrowIn(scopes[i], ps[i], func(a P) Flow[R, C] {
			aliases[i] = a
			return lendFrom(i + 1)
		})
		if f.isBreak {
			return Break[R, C](f.brk)
		}
		back[i] = f.cont.Handle
		return Continue[R](f.cont.Value)
	}

	return MapContinue(lendFrom(0), func(c C) Lent[C, []P] {
		return Lent[C, []P]{Value: c, Handle: back}
	})
}

// TryBorrow2 is the try flavour of [Borrow2].
func TryBorrow2[P1 Reborrow[P1], P2 Reborrow[P2], Ret, T, R, X any](
	p1 P1, p2 P2,
	shape Shape[Ret, T, R],
	block func(P1, P2, TryExit[Ret, T, R, X]) Short[Flow[T, X], R],
) Flow[Ret, Lent2[X, P1, P2]] {
	return tryBorrow2(NewScope(p1.Scope()), NewScope(p2.Scope()), p1, p2, shape, block)
}

func tryBorrow2[P1 Reborrow[P1], P2 Reborrow[P2], Ret, T, R, X any](
	s1, s2 *Scope,
	p1 P1, p2 P2,
	shape Shape[Ret, T, R],
	block func(P1, P2, TryExit[Ret, T, R, X]) Short[Flow[T, X], R],
) Flow[Ret, Lent2[X, P1, P2]] {
	e := TryExit[Ret, T, R, X]{shape: shape}
	return borrow2(s1, s2, p1, p2, func(a1 P1, a2 P2) Flow[Ret, X] {
		return tryFlow(shape, block(a1, a2, e))
	})
}
