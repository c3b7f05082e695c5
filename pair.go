// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lend

// Pair holds two reborrowable handles lent as one.
// The alias of a pair is the pair of the aliases of its components.
type Pair[P1 Reborrow[P1], P2 Reborrow[P2]] struct {
	Fst P1
	Snd P2
}

// PairOf creates a Pair from two handles.
func PairOf[P1 Reborrow[P1], P2 Reborrow[P2]](a P1, b P2) Pair[P1, P2] {
	return Pair[P1, P2]{Fst: a, Snd: b}
}

// Scope implements [Family].
// When the components are bound to different scopes, the result is a fresh
// scope that is valid exactly while both are.
func (p Pair[P1, P2]) Scope() *Scope {
	a, b := p.Fst.Scope(), p.Snd.Scope()
	switch {
	case a == b:
		return a
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return NewScope(a, b)
}

// Rescope implements [Family].
func (p Pair[P1, P2]) Rescope(s *Scope) Pair[P1, P2] {
	return Pair[P1, P2]{Fst: p.Fst.Rescope(s), Snd: p.Snd.Rescope(s)}
}

// Reborrow implements [Reborrow] component-wise.
func (p Pair[P1, P2]) Reborrow(s *Scope) Pair[P1, P2] {
	return Pair[P1, P2]{Fst: p.Fst.Reborrow(s), Snd: p.Snd.Reborrow(s)}
}

// Split returns both components.
func (p Pair[P1, P2]) Split() (P1, P2) {
	return p.Fst, p.Snd
}
