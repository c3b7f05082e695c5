// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package analyzer

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"
)

// checkMoved reports a handle used after a by-value engine consumed it.
//
// The handle is reported when it is referenced inside its own block, when
// the next reference after the call is not an assignment, or when the call
// sits in a loop that never reassigns the handle.
func (c *checker) checkMoved(cur inspector.Cursor, call engineCall) {
	for _, arg := range call.handleArgs() {
		v := handleVar(c.pass.TypesInfo, arg)
		if v == nil || !isLocal(v) {
			continue
		}

		if c.usedInBlock(v, call) {
			continue
		}

		if returned(cur) {
			continue
		}

		if c.usedAfter(v, call) {
			continue
		}

		c.reassignedInLoop(cur, v, arg, call)
	}
}

func (c *checker) usedInBlock(v *types.Var, call engineCall) bool {
	block := call.block()
	if block == nil {
		return false
	}

	for _, ref := range c.index.refs[v] {
		if block.Pos() <= ref.Pos() && ref.End() <= block.End() {
			c.reportf(ref, "handle %s is used inside its own %s block; use the block parameter", v.Name(), call.name)

			return true
		}
	}

	return false
}

func (c *checker) usedAfter(v *types.Var, call engineCall) bool {
	for _, ref := range c.index.refs[v] {
		if ref.Pos() < call.call.End() {
			continue
		}

		if c.index.assigned[ref] {
			return false
		}

		c.reportf(ref, "handle %s is used after being lent to %s; assign the handle returned on continue first", v.Name(), call.name)

		return true
	}

	return false
}

// reassignedInLoop reports a handle declared outside the innermost loop
// around call that the loop lends but never reassigns after the call.
func (c *checker) reassignedInLoop(cur inspector.Cursor, v *types.Var, arg ast.Expr, call engineCall) {
	loop := enclosingLoop(cur)
	if loop == nil || v.Pos() >= loop.Pos() {
		return
	}

	for _, ref := range c.index.refs[v] {
		if call.call.End() <= ref.Pos() && ref.End() <= loop.End() && c.index.assigned[ref] {
			return
		}
	}

	c.reportf(arg, "handle %s is lent to %s in a loop without being reassigned", v.Name(), call.name)
}

// returned reports whether the call is part of a return statement of its
// innermost function.
func returned(cur inspector.Cursor) bool {
	for e := range cur.Enclosing((*ast.ReturnStmt)(nil), (*ast.FuncLit)(nil), (*ast.FuncDecl)(nil)) {
		_, ok := e.Node().(*ast.ReturnStmt)

		return ok
	}

	return false
}

func enclosingLoop(cur inspector.Cursor) ast.Node {
	for e := range cur.Enclosing((*ast.ForStmt)(nil), (*ast.RangeStmt)(nil), (*ast.FuncLit)(nil), (*ast.FuncDecl)(nil)) {
		switch n := e.Node().(type) {
		case *ast.ForStmt, *ast.RangeStmt:
			return n

		default:
			return nil
		}
	}

	return nil
}
