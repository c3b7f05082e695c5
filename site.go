// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lend

// Call-site protocol.
//
// The Run family binds the engine to the caller's variables: handles are
// captured by pointer, moved into the engine, and written back positionally
// when the block continues. When the block breaks, the handles are zeroed
// (a consumed handle is never surfaced again) and the caller returns the
// break value from its own function:
//
//	site := lend.Returning[lend.Option[lend.Mut[int]]]()
//	for _, key := range keys {
//	    if r, ok := lend.Run(site, &m, block).Break(); ok {
//	        return r
//	    }
//	}

// Site fixes the result type of a lend and its output-scope binder.
// The zero Site lends every handle under its own output scope.
type Site[R any] struct {
	shared bool
}

// Returning starts a call site whose break values have type R.
// The result type is mandatory: it is the one type every block of the site
// breaks with.
func Returning[R any]() Site[R] {
	return Site[R]{}
}

// Shared returns a copy of s that lends all handles of one call under a
// single explicit output scope. Handles lent together under a shared scope
// must come from the same scope; lendcheck reports violations at build time.
func (s Site[R]) Shared() Site[R] {
	s.shared = true
	return s
}

// IsShared reports whether s uses a single explicit output scope.
func (s Site[R]) IsShared() bool { return s.shared }

// Run lends *p to block.
// On continue *p holds the restored handle; on break *p is zeroed.
// A shared site lends a single handle exactly like the default site.
func Run[P Reborrow[P], R, C any](site Site[R], p *P, block func(P, Exit[R, C]) Flow[R, C]) Flow[R, C] {
	var e Exit[R, C]
	f := Borrow(*p, func(a P) Flow[R, C] {
		return block(a, e)
	})
	if f.isBreak {
		var zero P
		*p = zero
		return Break[R, C](f.brk)
	}
	*p = f.cont.Handle
	return Continue[R](f.cont.Value)
}

// Run2 lends *p1 and *p2 to block.
func Run2[P1 Reborrow[P1], P2 Reborrow[P2], R, C any](
	site Site[R],
	p1 *P1, p2 *P2,
	block func(P1, P2, Exit[R, C]) Flow[R, C],
) Flow[R, C] {
	var e Exit[R, C]
	s1, s2 := site.scopes2((*p1).Scope(), (*p2).Scope())
	f := borrow2(s1, s2, *p1, *p2, func(a1 P1, a2 P2) Flow[R, C] {
		return block(a1, a2, e)
	})
	if f.isBreak {
		var zero1 P1
		var zero2 P2
		*p1, *p2 = zero1, zero2
		return Break[R, C](f.brk)
	}
	*p1, *p2 = f.cont.Fst, f.cont.Snd
	return Continue[R](f.cont.Value)
}

// Run3 lends *p1, *p2 and *p3 to block.
func Run3[P1 Reborrow[P1], P2 Reborrow[P2], P3 Reborrow[P3], R, C any](
	site Site[R],
	p1 *P1, p2 *P2, p3 *P3,
	block func(P1, P2, P3, Exit[R, C]) Flow[R, C],
) Flow[R, C] {
	var e Exit[R, C]
	var s1, s2, s3 *Scope
	if site.shared {
		s := NewScope((*p1).Scope(), (*p2).Scope(), (*p3).Scope())
		s1, s2, s3 = s, s, s
	} else {
		s1, s2, s3 = NewScope((*p1).Scope()), NewScope((*p2).Scope()), NewScope((*p3).Scope())
	}
	f := borrow3(s1, s2, s3, *p1, *p2, *p3, func(a1 P1, a2 P2, a3 P3) Flow[R, C] {
		return block(a1, a2, a3, e)
	})
	if f.isBreak {
		var zero1 P1
		var zero2 P2
		var zero3 P3
		*p1, *p2, *p3 = zero1, zero2, zero3
		return Break[R, C](f.brk)
	}
	*p1, *p2, *p3 = f.cont.Fst, f.cont.Snd, f.cont.Thd
	return Continue[R](f.cont.Value)
}

// RunAll lends every handle of ps to block, in order.
// On continue the elements of ps hold the restored handles; on break they
// are zeroed.
func RunAll[P Reborrow[P], R, C any](site Site[R], ps []P, block func([]P, Exit[R, C]) Flow[R, C]) Flow[R, C] {
	var e Exit[R, C]
	scopes := make([]*Scope, len(ps))
	if site.shared {
		parents := make([]*Scope, len(ps))
		for i, p := range ps {
			parents[i] = p.Scope()
		}
		s := NewScope(parents...)
		for i := range scopes {
			scopes[i] = s
		}
	} else {
		for i, p := range ps {
			scopes[i] = NewScope(p.Scope())
		}
	}
	f := borrowAll(scopes, ps, func(as []P) Flow[R, C] {
		return block(as, e)
	})
	if f.isBreak {
		clear(ps)
		return Break[R, C](f.brk)
	}
	copy(ps, f.cont.Handle)
	return Continue[R](f.cont.Value)
}

// TryRun is the try flavour of [Run]. shape describes the result type Ret.
// As with Run, a shared site changes nothing for a single handle.
func TryRun[P Reborrow[P], Ret, T, R, X any](
	site Site[Ret],
	p *P,
	shape Shape[Ret, T, R],
	block func(P, TryExit[Ret, T, R, X]) Short[Flow[T, X], R],
) Flow[Ret, X] {
	f := TryBorrow(*p, shape, block)
	if f.isBreak {
		var zero P
		*p = zero
		return Break[Ret, X](f.brk)
	}
	*p = f.cont.Handle
	return Continue[Ret](f.cont.Value)
}

// TryRun2 is the try flavour of [Run2].
func TryRun2[P1 Reborrow[P1], P2 Reborrow[P2], Ret, T, R, X any](
	site Site[Ret],
	p1 *P1, p2 *P2,
	shape Shape[Ret, T, R],
	block func(P1, P2, TryExit[Ret, T, R, X]) Short[Flow[T, X], R],
) Flow[Ret, X] {
	s1, s2 := site.scopes2((*p1).Scope(), (*p2).Scope())
	f := tryBorrow2(s1, s2, *p1, *p2, shape, block)
	if f.isBreak {
		var zero1 P1
		var zero2 P2
		*p1, *p2 = zero1, zero2
		return Break[Ret, X](f.brk)
	}
	*p1, *p2 = f.cont.Fst, f.cont.Snd
	return Continue[Ret](f.cont.Value)
}

// scopes2 returns the output scopes for a two-handle lend.
func (s Site[R]) scopes2(a, b *Scope) (*Scope, *Scope) {
	if s.shared {
		shared := NewScope(a, b)
		return shared, shared
	}
	return NewScope(a), NewScope(b)
}
