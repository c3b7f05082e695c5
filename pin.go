// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lend

// Deref is the constraint for reborrowable handles that dereference
// directly to a single pointee of type T.
type Deref[T, P any] interface {
	Scope() *Scope
	Rescope(s *Scope) P
	Reborrow(s *Scope) P
	Get() *T
}

// Pin is a pinned pointer: a handle whose pointee must stay where it is
// for as long as any alias of the handle is live.
//
// A Pin only gives in-place access. Code holding a Pin must not replace or
// copy the pointee out, which lets the pointee hold pointers into itself.
type Pin[T any, P Deref[T, P]] struct {
	inner P
}

// PinOf pins the handle p.
func PinOf[T any, P Deref[T, P]](p P) Pin[T, P] {
	return Pin[T, P]{inner: p}
}

// PinMut pins an exclusive reference.
func PinMut[T any](m Mut[T]) Pin[T, Mut[T]] {
	return Pin[T, Mut[T]]{inner: m}
}

// Scope implements [Family].
func (p Pin[T, P]) Scope() *Scope { return p.inner.Scope() }

// Rescope implements [Family]. The pointee is not moved.
func (p Pin[T, P]) Rescope(s *Scope) Pin[T, P] {
	return Pin[T, P]{inner: p.inner.Rescope(s)}
}

// Reborrow implements [Reborrow] by reborrowing the inner handle.
func (p Pin[T, P]) Reborrow(s *Scope) Pin[T, P] {
	return Pin[T, P]{inner: p.inner.Reborrow(s)}
}

// Get returns the pinned pointee for in-place access.
// Panics if the scope of p has ended.
func (p Pin[T, P]) Get() *T { return p.inner.Get() }

// Inner returns the pinned handle.
// The caller takes over the obligation not to move the pointee.
func (p Pin[T, P]) Inner() P { return p.inner }
