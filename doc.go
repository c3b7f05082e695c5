// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lend provides conditional lending of resource handles in Go.
//
// A lend invocation hands an alias of a handle to a block. After inspecting
// the alias, the block either breaks with a value that may embed the alias,
// in which case the handle is consumed and the break value owns the alias
// for good, or it continues with a plain value, in which case the original
// handle comes back to the caller intact and reusable. This is the control
// shape of "look something up through a handle; return it if found, else
// keep using the handle": a lookup loop, a filtered lending iterator, a
// polled stream that must forward Pending without losing its handle.
//
// # Design Philosophy
//
// lend provides:
//   - One-shot ownership of the suspended handle, enforced at run time by a [Lease]
//   - Reference validity tracked by [Scope] tokens: aliases of a continued
//     invocation go stale, aliases of a broken invocation are kept
//   - F-bounded handle kinds, so that the alias of a handle is again a handle
//     of the same concrete type and the engine devirtualizes
//   - A zero-allocation short-circuit algebra shared by every early-exit container
//
// The companion analyzer in code.hybscloud.com/lend/analyzer reports the
// misuse that the type system cannot: using a handle after it was lent,
// leaking an alias into an outer variable, and lending handles from
// different scopes under one shared output scope.
//
// # Scopes
//
// A [Scope] is open while a block runs, closed when the invocation
// continues, and kept when it breaks. Validity is transitive: a scope is
// valid only while all its parents are. The nil *Scope is the static scope.
//
//   - [NewScope]: Create a scope depending on parents
//   - [Scope.Valid], [Scope.Kept], [Scope.Closed]: Predicates
//   - [Scope.Close], [Scope.Keep]: One-way transitions
//   - [Family]: type Family[P Family[P]], a scope-parameterized alias type
//   - [At]: Instantiate a family member at a scope
//
// # Handles
//
// [Reborrow] is the F-bounded capability type Reborrow[P Reborrow[P]]:
// the handle can produce an alias of itself valid for exactly a given scope.
//
//   - [Ref], [Share], [ShareAt]: Immutable reference
//   - [Mut], [Own], [OwnAt]: Exclusive mutable reference
//   - [Project], [ProjectRef]: Reborrow a field of a reference
//   - [Pin], [PinOf], [PinMut]: Pinned pointer over a dereferenceable handle
//   - [Pair], [PairOf]: Two handles lent as one
//   - [Extend]: Unchecked scope extension used by the engine
//
// # Short-Circuit Algebra
//
// [Short] is the three-case value every early-exit container decomposes
// into: a value to continue with, an empty continuation, or a residual.
// [Shape] adapters convert containers to and from it; Join(Split(t)) == t.
//
//   - [Value], [Empty], [Residual]: Constructors
//   - [Short.Split], [Stop], [Stopped]: Propagation
//   - [MapShort], [MapShape]: Map the value case, keep the residual
//   - [OptionOf], [EitherOf], [FlowOf]: Synchronous shapes
//   - [PollEitherOf], [PollOptionEitherOf]: Readiness shapes, empty when pending
//
// Containers:
//
//   - [Option]: [Some], [Nothing]; residual [None]
//   - [Either]: [Left], [Right], [FromResult]
//   - [Flow]: [Continue], [Break]
//   - [Poll]: [Ready], [Pending]
//
// # Engine
//
//   - [Borrow]: Lend one handle under a fresh output scope
//   - [BorrowIn]: Lend one handle under a caller-supplied output scope
//   - [TryBorrow]: Lend one handle to a block that may short-circuit through a [Shape]
//   - [Borrow2], [Borrow3], [BorrowAll], [TryBorrow2]: Lend several handles;
//     a break anywhere short-circuits the whole chain
//   - [Lent], [Lent2], [Lent3]: Continue value with the handles given back
//
// # Call-Site Protocol
//
// The Run family binds the engine to the caller's variables. Handles are
// passed by pointer: restored on continue, zeroed on break. The caller
// returns the break value from its own function.
//
//   - [Returning]: Fix the result type of a call site
//   - [Site.Shared]: Lend all handles of a call under one output scope
//   - [Run], [Run2], [Run3], [RunAll]: Plain blocks, primitives in [Exit]
//   - [TryRun], [TryRun2]: Try blocks, primitives in [TryExit]
//   - [Exit.Return], [Exit.Continue], [Exit.Skip]: Plain primitives
//   - [UnwrapReady]: Unwrap a [Poll], forwarding Pending
//   - [TryExit.Return], [TryExit.Continue], [TryExit.Propagate], [TryExit.Unwrap]: Try primitives
//   - [Try]: The propagation operator over any [Shape]
//   - [TryUnwrapReady]: Unwrap a [Poll] inside a try block
//
// # Example
//
//	func firstAvailable(m lend.Mut[map[string]*int], keys []string) lend.Option[*int] {
//		site := lend.Returning[lend.Option[*int]]()
//		for _, k := range keys {
//			f := lend.Run(site, &m, func(m lend.Mut[map[string]*int], e lend.Exit[lend.Option[*int], struct{}]) lend.Flow[lend.Option[*int], struct{}] {
//				if v, ok := (*m.Get())[k]; ok {
//					return e.Return(lend.Some(v))
//				}
//				return e.Skip()
//			})
//			if r, ok := f.Break(); ok {
//				return r
//			}
//		}
//		return lend.Nothing[*int]()
//	}
package lend
