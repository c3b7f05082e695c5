// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package analyzer implements the lendcheck static analysis pass.
//
// # Overview
//
// The lend engine checks aliases at run time: an alias used after its
// scope closed panics. lendcheck rejects the common misuses before the
// program runs.
//
// # Checks
//
//   - moved: a handle passed by value to [lend.Borrow] and its relatives is
//     consumed. Using it again before assigning the handle returned on
//     continue is reported, as is using it inside its own block or lending
//     it in a loop that never reassigns it. A function that lends one of its
//     parameters consumes the caller's handle the same way; this is tracked
//     across packages with an object fact.
//   - escape: a block parameter stored in a variable declared outside the
//     block literal outlives the lend. That covers plain assignment, its
//     address, a composite literal or closure holding it, appending it to a
//     slice and sending it on a channel.
//   - shared: a call site made with Site.Shared lends every handle under one
//     output scope. Only handles stored in the same variable, or in local
//     variables of the same block, are accepted. Parameters always have
//     independent scopes, and a handle reached through a pointer, slice or
//     map cannot be verified.
//
// # Example
//
// Before:
//
//	f := lend.Borrow(h, block)
//	use(h) // h was lent
//
// After:
//
//	f := lend.Borrow(h, block)
//	if r, ok := f.Break(); ok {
//	    return r
//	}
//	l, _ := f.Continue()
//	h = l.Handle
//	use(h)
//
// Functions whose doc comment ends in //nolint:lendcheck are skipped, and a
// trailing //nolint:lendcheck silences the diagnostic on its line.
//
// [lend.Borrow]: https://pkg.go.dev/code.hybscloud.com/lend#Borrow
package analyzer
