// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lend

// Reborrow is the F-bounded capability of a resource handle to lend aliases
// of itself. A handle kind is its own alias family: the alias of P at any
// scope is again a P, bound to that scope.
//
// Implementations:
//
//   - [Ref]: immutable reference
//   - [Mut]: exclusive mutable reference
//   - [Pin]: pinned pointer over a dereferenceable handle
//   - [Pair]: two reborrowable handles lent together
//
// Every Reborrow[P] is also a [Family][P].
type Reborrow[P Reborrow[P]] interface {
	// Scope returns the scope the handle is bound to.
	Scope() *Scope

	// Rescope returns the same alias bound to s.
	Rescope(s *Scope) P

	// Reborrow returns an alias valid for exactly s.
	// It must neither move nor invalidate the receiver.
	Reborrow(s *Scope) P
}

// Extend claims that alias p is valid for scope s.
//
// Extend is unchecked: the caller guarantees that the handle p was lent from
// is neither released nor reused while the extended alias is live. The
// engine upholds this by holding the handle in a [Lease] for the whole
// invocation and by closing s when the handle is handed back.
func Extend[P Reborrow[P]](p P, s *Scope) P {
	return p.Rescope(s)
}

// aliasPanic reports use of an alias whose scope has ended.
// Extracted as a noinline function so that accessors remain inlineable.
//
//go:noinline
func aliasPanic(s *Scope) {
	panic("lend: alias used outside its scope: " + s.String())
}
