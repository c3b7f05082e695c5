// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lend

// Ref is an immutable reference handle.
// The pointee must not be modified through a Ref; any number of Ref aliases
// may coexist.
type Ref[T any] struct {
	ptr   *T
	scope *Scope
}

// Share creates a Ref to p bound to the static scope.
func Share[T any](p *T) Ref[T] {
	return Ref[T]{ptr: p}
}

// ShareAt creates a Ref to p bound to s.
func ShareAt[T any](p *T, s *Scope) Ref[T] {
	return Ref[T]{ptr: p, scope: s}
}

// Scope implements [Family].
func (r Ref[T]) Scope() *Scope { return r.scope }

// Rescope implements [Family].
func (r Ref[T]) Rescope(s *Scope) Ref[T] { return Ref[T]{ptr: r.ptr, scope: s} }

// Reborrow implements [Reborrow].
func (r Ref[T]) Reborrow(s *Scope) Ref[T] { return Ref[T]{ptr: r.ptr, scope: s} }

// Get returns the referenced pointer for reading.
// Panics if the scope of r has ended.
func (r Ref[T]) Get() *T {
	if !r.scope.Valid() {
		aliasPanic(r.scope)
	}
	return r.ptr
}

// TryGet returns (pointer, true), or (nil, false) if the scope of r has ended.
func (r Ref[T]) TryGet() (*T, bool) {
	if !r.scope.Valid() {
		return nil, false
	}
	return r.ptr, true
}

// Load returns a copy of the referenced value.
// Panics if the scope of r has ended.
func (r Ref[T]) Load() T {
	return *r.Get()
}

// IsNil reports whether r references nothing, as a consumed handle does.
func (r Ref[T]) IsNil() bool { return r.ptr == nil }

// Mut is an exclusive mutable reference handle.
// At most one usable Mut to a given pointee exists at a time: lending a Mut
// moves it into the engine, which hands it back only on continue.
type Mut[T any] struct {
	ptr   *T
	scope *Scope
}

// Own creates a Mut to p bound to the static scope.
func Own[T any](p *T) Mut[T] {
	return Mut[T]{ptr: p}
}

// OwnAt creates a Mut to p bound to s.
func OwnAt[T any](p *T, s *Scope) Mut[T] {
	return Mut[T]{ptr: p, scope: s}
}

// Scope implements [Family].
func (m Mut[T]) Scope() *Scope { return m.scope }

// Rescope implements [Family].
func (m Mut[T]) Rescope(s *Scope) Mut[T] { return Mut[T]{ptr: m.ptr, scope: s} }

// Reborrow implements [Reborrow].
func (m Mut[T]) Reborrow(s *Scope) Mut[T] { return Mut[T]{ptr: m.ptr, scope: s} }

// Get returns the referenced pointer.
// Panics if the scope of m has ended.
func (m Mut[T]) Get() *T {
	if !m.scope.Valid() {
		aliasPanic(m.scope)
	}
	return m.ptr
}

// TryGet returns (pointer, true), or (nil, false) if the scope of m has ended.
func (m Mut[T]) TryGet() (*T, bool) {
	if !m.scope.Valid() {
		return nil, false
	}
	return m.ptr, true
}

// Set stores v in the referenced location.
func (m Mut[T]) Set(v T) {
	*m.Get() = v
}

// Swap stores v and returns the previous value.
func (m Mut[T]) Swap(v T) T {
	p := m.Get()
	old := *p
	*p = v
	return old
}

// IsNil reports whether m references nothing, as a consumed handle does.
func (m Mut[T]) IsNil() bool { return m.ptr == nil }

// Downgrade returns an immutable alias of m under the same scope.
func (m Mut[T]) Downgrade() Ref[T] {
	return Ref[T]{ptr: m.ptr, scope: m.scope}
}

// Project re-borrows the part of m selected by f under the scope of m.
// f receives the pointee and must return a pointer into it.
func Project[T, U any](m Mut[T], f func(*T) *U) Mut[U] {
	return Mut[U]{ptr: f(m.Get()), scope: m.scope}
}

// ProjectRef is the immutable counterpart of [Project].
func ProjectRef[T, U any](r Ref[T], f func(*T) *U) Ref[U] {
	return Ref[U]{ptr: f(r.Get()), scope: r.scope}
}
