// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lend_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/lend"
)

// TestBorrowContinueThenBreak runs N-1 continuing invocations on the same
// handle and a final breaking one.
func TestBorrowContinueThenBreak(t *testing.T) {
	x := 0
	h := lend.Own(&x)

	const n = 5
	for i := range n - 1 {
		f := lend.Borrow(h, func(m lend.Mut[int]) lend.Flow[lend.Mut[int], int] {
			m.Set(*m.Get() + 1)
			return lend.Continue[lend.Mut[int]](i)
		})
		l, ok := f.Continue()
		if !ok {
			t.Fatalf("invocation %d: expected continue", i)
		}
		if l.Value != i {
			t.Fatalf("got %d, want %d", l.Value, i)
		}
		h = l.Handle
	}

	f := lend.Borrow(h, func(m lend.Mut[int]) lend.Flow[lend.Mut[int], int] {
		return lend.Break[lend.Mut[int], int](m)
	})
	alias, ok := f.Break()
	if !ok {
		t.Fatal("expected break")
	}
	if got := *alias.Get(); got != n-1 {
		t.Fatalf("got %d, want %d", got, n-1)
	}
	if !alias.Scope().Kept() {
		t.Fatal("break must keep the output scope")
	}
}

// The alias is kept past its lend on purpose.
//
//nolint:lendcheck
func TestBorrowStaleAliasAfterContinue(t *testing.T) {
	x := 1
	var leaked lend.Mut[int]
	f := lend.Borrow(lend.Own(&x), func(m lend.Mut[int]) lend.Flow[struct{}, struct{}] {
		leaked = m
		return lend.Continue[struct{}](struct{}{})
	})
	l, ok := f.Continue()
	if !ok {
		t.Fatal("expected continue")
	}
	if _, ok := leaked.TryGet(); ok {
		t.Fatal("alias retained past a continuing invocation must be stale")
	}
	if got := *l.Handle.Get(); got != 1 {
		t.Fatalf("restored handle: got %d, want 1", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic using a stale alias")
		}
	}()
	leaked.Set(2)
}

func TestBorrowAliasLivesWithHandleScope(t *testing.T) {
	x := 1
	outer := lend.NewScope()
	f := lend.Borrow(lend.OwnAt(&x, outer), func(m lend.Mut[int]) lend.Flow[lend.Mut[int], struct{}] {
		return lend.Break[lend.Mut[int], struct{}](m)
	})
	alias, _ := f.Break()
	if _, ok := alias.TryGet(); !ok {
		t.Fatal("kept alias must be valid")
	}
	outer.Close()
	if _, ok := alias.TryGet(); ok {
		t.Fatal("kept alias must end with the handle's own scope")
	}
}

func TestBorrowAliasValidInsideBlock(t *testing.T) {
	x := 3
	lend.Borrow(lend.Share(&x), func(r lend.Ref[int]) lend.Flow[int, int] {
		if !r.Scope().Valid() {
			t.Fatal("alias scope must be open inside the block")
		}
		if r.Scope() == nil {
			t.Fatal("alias must be bound to the output scope")
		}
		return lend.Continue[int](r.Load())
	})
}

func TestBorrowInSharedScope(t *testing.T) {
	x, y := 1, 2
	out := lend.NewScope()
	f1 := lend.BorrowIn(out, lend.Share(&x), func(r lend.Ref[int]) lend.Flow[lend.Ref[int], int] {
		return lend.Break[lend.Ref[int], int](r)
	})
	r1, _ := f1.Break()
	f2 := lend.BorrowIn(out, lend.Share(&y), func(r lend.Ref[int]) lend.Flow[lend.Ref[int], int] {
		return lend.Break[lend.Ref[int], int](r)
	})
	r2, _ := f2.Break()
	if r1.Scope() != out || r2.Scope() != out {
		t.Fatal("aliases must be bound to the supplied scope")
	}
	if r1.Load()+r2.Load() != 3 {
		t.Fatalf("got %d, want 3", r1.Load()+r2.Load())
	}
}

//nolint:lendcheck
func TestBorrowInStatic(t *testing.T) {
	x := 4
	var leaked lend.Ref[int]
	lend.BorrowIn(nil, lend.Share(&x), func(r lend.Ref[int]) lend.Flow[int, int] {
		leaked = r
		return lend.Continue[int](0)
	})
	if got := leaked.Load(); got != 4 {
		t.Fatalf("static alias: got %d, want 4", got)
	}
}

func TestBorrowPair(t *testing.T) {
	a, b := 1, 2
	h := lend.PairOf(lend.Own(&a), lend.Own(&b))
	f := lend.Borrow(h, func(p lend.Pair[lend.Mut[int], lend.Mut[int]]) lend.Flow[int, int] {
		m1, m2 := p.Split()
		m1.Set(m2.Swap(*m1.Get()))
		return lend.Continue[int](a + b)
	})
	l, _ := f.Continue()
	if a != 2 || b != 1 || l.Value != 3 {
		t.Fatalf("got a=%d b=%d sum=%d, want 2 1 3", a, b, l.Value)
	}
	if l.Handle.Fst.Scope() != nil {
		t.Fatal("restored pair must keep its original scope")
	}
}

func TestTryBorrowCases(t *testing.T) {
	x := 10
	shape := lend.EitherOf[error, lend.Mut[int]]()
	errBad := errors.New("bad")

	type ret = lend.Either[error, lend.Mut[int]]
	type exit = lend.TryExit[ret, lend.Mut[int], error, int]
	type blockOut = lend.Short[lend.Flow[lend.Mut[int], int], error]

	// residual: break with Join(residual)
	f := lend.TryBorrow(lend.Own(&x), shape, func(m lend.Mut[int], e exit) blockOut {
		_, stop, ok := lend.Try(shape, lend.Left[error, lend.Mut[int]](errBad))
		if !ok {
			return e.Propagate(stop)
		}
		return e.Skip()
	})
	got, ok := f.Break()
	if !ok {
		t.Fatal("residual must break")
	}
	if err, _ := got.GetLeft(); !errors.Is(err, errBad) {
		t.Fatalf("got %v, want %v", err, errBad)
	}

	// value Break(t): break with Join(value t)
	f = lend.TryBorrow(lend.Own(&x), shape, func(m lend.Mut[int], e exit) blockOut {
		return e.Return(lend.Right[error](m))
	})
	got, ok = f.Break()
	if !ok {
		t.Fatal("Return must break")
	}
	if m, ok := got.GetRight(); !ok || *m.Get() != 10 {
		t.Fatal("Return must carry the alias")
	}

	// Return of a failing result short-circuits with it.
	f = lend.TryBorrow(lend.Own(&x), shape, func(m lend.Mut[int], e exit) blockOut {
		return e.Return(lend.Left[error, lend.Mut[int]](errBad))
	})
	if got, _ := f.Break(); !got.IsLeft() {
		t.Fatal("Return of Left must break with Left")
	}

	// value Continue(x): continue with x and the handle
	f = lend.TryBorrow(lend.Own(&x), shape, func(m lend.Mut[int], e exit) blockOut {
		return e.Continue(*m.Get() + 1)
	})
	l, ok := f.Continue()
	if !ok || l.Value != 11 || *l.Handle.Get() != 10 {
		t.Fatal("Continue must restore the handle")
	}
}

func TestTryExitUnwrap(t *testing.T) {
	x := 2
	shape := lend.OptionOf[int]()
	type exit = lend.TryExit[lend.Option[int], int, lend.None, int]
	run := func(o lend.Option[int]) lend.Flow[lend.Option[int], lend.Lent[int, lend.Ref[int]]] {
		return lend.TryBorrow(lend.Share(&x), shape, func(r lend.Ref[int], e exit) lend.Short[lend.Flow[int, int], lend.None] {
			v, stop, ok := e.Unwrap(o)
			if !ok {
				return e.Propagate(stop)
			}
			return e.Continue(v * r.Load())
		})
	}
	if l, ok := run(lend.Some(4)).Continue(); !ok || l.Value != 8 {
		t.Fatalf("got (%d, %v), want (8, true)", l.Value, ok)
	}
	got, ok := run(lend.Nothing[int]()).Break()
	if !ok || got.IsSome() {
		t.Fatal("Nothing must propagate as Nothing")
	}
}

func TestTryBorrowEmptyBreaksPending(t *testing.T) {
	x := 1
	shape := lend.PollEitherOf[error, int]()
	type ret = lend.Poll[lend.Either[error, int]]
	f := lend.TryBorrow(lend.Own(&x), shape, func(m lend.Mut[int], e lend.TryExit[ret, int, error, struct{}]) lend.Short[lend.Flow[int, struct{}], error] {
		_, pending, ok := lend.TryUnwrapReady(e, lend.Pending[int]())
		if !ok {
			return pending
		}
		return e.Skip()
	})
	got, ok := f.Break()
	if !ok || !got.IsPending() {
		t.Fatal("empty must break with Pending")
	}
}
