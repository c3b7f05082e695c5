// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package analyzer

import (
	"go/ast"
	"go/token"
	"go/types"
	"slices"

	"golang.org/x/tools/go/types/typeutil"
)

const lendPath = "code.hybscloud.com/lend"

// lendKind tells how an engine entry point receives its handles.
type lendKind uint8

const (
	// byValue engines consume their handles and hand them back on continue.
	byValue lendKind = iota

	// byPointer engines take *P and write the handles back themselves.
	byPointer
)

type engine struct {
	kind    lendKind
	handles []int // argument positions of the handles
	slice   bool  // the single handle argument is a slice of handles
}

var engines = map[string]engine{
	"Borrow":     {kind: byValue, handles: []int{0}},
	"BorrowIn":   {kind: byValue, handles: []int{1}},
	"Borrow2":    {kind: byValue, handles: []int{0, 1}},
	"Borrow3":    {kind: byValue, handles: []int{0, 1, 2}},
	"BorrowAll":  {kind: byValue, handles: []int{0}, slice: true},
	"TryBorrow":  {kind: byValue, handles: []int{0}},
	"TryBorrow2": {kind: byValue, handles: []int{0, 1}},

	"Run":     {kind: byPointer, handles: []int{1}},
	"Run2":    {kind: byPointer, handles: []int{1, 2}},
	"Run3":    {kind: byPointer, handles: []int{1, 2, 3}},
	"RunAll":  {kind: byPointer, handles: []int{1}, slice: true},
	"TryRun":  {kind: byPointer, handles: []int{1}},
	"TryRun2": {kind: byPointer, handles: []int{1, 2}},
}

// engineCall is a call of one of the lend engine entry points.
type engineCall struct {
	engine
	call *ast.CallExpr
	name string

	// consumer is set for functions that lend their parameters onward.
	consumer bool
}

// classify reports whether call invokes a lend engine entry point.
func classify(info *types.Info, call *ast.CallExpr) (engineCall, bool) {
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || !inLend(fn) || fn.Signature().Recv() != nil {
		return engineCall{}, false
	}

	e, ok := engines[fn.Name()]
	if !ok || len(call.Args) <= slices.Max(e.handles)+1 {
		return engineCall{}, false
	}

	return engineCall{engine: e, call: call, name: fn.Name()}, true
}

// site returns the call site argument of a byPointer engine.
func (c engineCall) site() ast.Expr {
	if c.kind != byPointer {
		return nil
	}

	return c.call.Args[0]
}

// block returns the block argument when it is a function literal.
func (c engineCall) block() *ast.FuncLit {
	if c.consumer {
		return nil
	}

	lit, _ := ast.Unparen(c.call.Args[len(c.call.Args)-1]).(*ast.FuncLit)

	return lit
}

// handleArgs returns the expressions naming the lent handles, with address
// operators removed and slice literals expanded.
func (c engineCall) handleArgs() []ast.Expr {
	var args []ast.Expr

	for _, i := range c.handles {
		arg := ast.Unparen(c.call.Args[i])

		if c.slice {
			if lit, ok := arg.(*ast.CompositeLit); ok {
				for _, elt := range lit.Elts {
					args = append(args, ast.Unparen(elt))
				}
			}

			continue
		}

		if c.kind == byPointer {
			u, ok := arg.(*ast.UnaryExpr)
			if !ok || u.Op != token.AND {
				continue
			}

			arg = ast.Unparen(u.X)
		}

		args = append(args, arg)
	}

	return args
}

// handleVar returns the variable expr denotes, or nil.
func handleVar(info *types.Info, expr ast.Expr) *types.Var {
	id, ok := expr.(*ast.Ident)
	if !ok {
		return nil
	}

	v, ok := info.Uses[id].(*types.Var)
	if !ok || v.IsField() {
		return nil
	}

	return v
}

// isLocal reports whether v is declared inside a function.
func isLocal(v *types.Var) bool {
	return v.Parent() != nil && v.Pkg() != nil && v.Parent() != v.Pkg().Scope()
}

// isSharedCall reports whether expr is a call of Site.Shared.
func isSharedCall(info *types.Info, expr ast.Expr) bool {
	call, ok := ast.Unparen(expr).(*ast.CallExpr)
	if !ok {
		return false
	}

	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || !inLend(fn) || fn.Name() != "Shared" {
		return false
	}

	recv := fn.Signature().Recv()

	return recv != nil && isLendType(recv.Type(), "Site")
}

// isLendType reports whether t is one of the named lend types.
func isLendType(t types.Type, names ...string) bool {
	if p, ok := types.Unalias(t).(*types.Pointer); ok {
		t = p.Elem()
	}

	n, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	obj := n.Obj()

	return obj.Pkg() != nil && obj.Pkg().Path() == lendPath && slices.Contains(names, obj.Name())
}

func inLend(fn *types.Func) bool {
	return fn.Pkg() != nil && fn.Pkg().Path() == lendPath
}
