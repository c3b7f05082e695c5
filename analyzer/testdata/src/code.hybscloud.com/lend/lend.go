// Package lend is a signature-only fixture of the lend engine.
package lend

type Scope struct{ parents []*Scope }

func NewScope(parents ...*Scope) *Scope { return &Scope{parents: parents} }

type Reborrow[P Reborrow[P]] interface {
	Scope() *Scope
	Rescope(s *Scope) P
	Reborrow(s *Scope) P
}

type Mut[T any] struct {
	ptr   *T
	scope *Scope
}

func Own[T any](p *T) Mut[T] { return Mut[T]{ptr: p} }

func OwnAt[T any](p *T, s *Scope) Mut[T] { return Mut[T]{ptr: p, scope: s} }

func (m Mut[T]) Scope() *Scope            { return m.scope }
func (m Mut[T]) Rescope(s *Scope) Mut[T]  { return Mut[T]{m.ptr, s} }
func (m Mut[T]) Reborrow(s *Scope) Mut[T] { return Mut[T]{m.ptr, s} }
func (m Mut[T]) Get() *T                  { return m.ptr }

type Flow[B, C any] struct {
	isBreak bool
	brk     B
	cont    C
}

func Continue[B, C any](c C) Flow[B, C] { return Flow[B, C]{cont: c} }
func Break[B, C any](b B) Flow[B, C]    { return Flow[B, C]{isBreak: true, brk: b} }

func (f Flow[B, C]) Break() (B, bool)    { return f.brk, f.isBreak }
func (f Flow[B, C]) Continue() (C, bool) { return f.cont, !f.isBreak }

type Lent[C, P any] struct {
	Value  C
	Handle P
}

type Lent2[C, P1, P2 any] struct {
	Value C
	Fst   P1
	Snd   P2
}

type Lent3[C, P1, P2, P3 any] struct {
	Value C
	Fst   P1
	Snd   P2
	Thd   P3
}

type Short[C, R any] struct {
	value C
}

type Shape[T, C, R any] interface {
	Split(t T) Short[C, R]
	Join(s Short[C, R]) T
}

type Exit[R, C any] struct{}

func (Exit[R, C]) Return(r R) Flow[R, C]   { return Break[R, C](r) }
func (Exit[R, C]) Continue(c C) Flow[R, C] { return Continue[R](c) }

type TryExit[Ret, T, R, X any] struct{}

func (TryExit[Ret, T, R, X]) Continue(x X) Short[Flow[T, X], R] {
	return Short[Flow[T, X], R]{value: Continue[T](x)}
}

type Site[R any] struct{ shared bool }

func Returning[R any]() Site[R]   { return Site[R]{} }
func (s Site[R]) Shared() Site[R] { return Site[R]{shared: true} }

func Borrow[P Reborrow[P], R, C any](p P, block func(P) Flow[R, C]) Flow[R, Lent[C, P]] {
	panic("fixture")
}

func BorrowIn[P Reborrow[P], R, C any](out *Scope, p P, block func(P) Flow[R, C]) Flow[R, Lent[C, P]] {
	panic("fixture")
}

func Borrow2[P1 Reborrow[P1], P2 Reborrow[P2], R, C any](p1 P1, p2 P2, block func(P1, P2) Flow[R, C]) Flow[R, Lent2[C, P1, P2]] {
	panic("fixture")
}

func Borrow3[P1 Reborrow[P1], P2 Reborrow[P2], P3 Reborrow[P3], R, C any](p1 P1, p2 P2, p3 P3, block func(P1, P2, P3) Flow[R, C]) Flow[R, Lent3[C, P1, P2, P3]] {
	panic("fixture")
}

func BorrowAll[P Reborrow[P], R, C any](ps []P, block func([]P) Flow[R, C]) Flow[R, Lent[C, []P]] {
	panic("fixture")
}

func TryBorrow[P Reborrow[P], Ret, T, R, X any](p P, shape Shape[Ret, T, R], block func(P, TryExit[Ret, T, R, X]) Short[Flow[T, X], R]) Flow[Ret, Lent[X, P]] {
	panic("fixture")
}

func Run[P Reborrow[P], R, C any](site Site[R], p *P, block func(P, Exit[R, C]) Flow[R, C]) Flow[R, C] {
	panic("fixture")
}

func Run2[P1 Reborrow[P1], P2 Reborrow[P2], R, C any](site Site[R], p1 *P1, p2 *P2, block func(P1, P2, Exit[R, C]) Flow[R, C]) Flow[R, C] {
	panic("fixture")
}

func Run3[P1 Reborrow[P1], P2 Reborrow[P2], P3 Reborrow[P3], R, C any](site Site[R], p1 *P1, p2 *P2, p3 *P3, block func(P1, P2, P3, Exit[R, C]) Flow[R, C]) Flow[R, C] {
	panic("fixture")
}

func RunAll[P Reborrow[P], R, C any](site Site[R], ps []P, block func([]P, Exit[R, C]) Flow[R, C]) Flow[R, C] {
	panic("fixture")
}
