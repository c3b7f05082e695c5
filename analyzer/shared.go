// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package analyzer

import (
	"go/ast"
	"go/token"
	"go/types"
)

// checkShared reports handles lent under one shared output scope that do not
// provably live exactly as long as each other.
//
// The shared scope lives only as long as the shortest lived handle. Two
// handles qualify when they are stored in locals of the same block, or in
// the same local. Parameters and results are independent of each other and
// of every local, whatever their callers passed. Handles reached through a
// pointer, slice or map cannot be verified and are reported as such.
func (c *checker) checkShared(call engineCall) {
	if !c.isSharedSite(call.site()) {
		return
	}

	var (
		first     *types.Var
		firstExpr ast.Expr
	)

	for _, arg := range c.sharedHandles(call) {
		v := storage(c.pass.TypesInfo, arg)
		if v == nil {
			c.reportf(arg, "cannot verify the scope of handle %s shared in %s", types.ExprString(arg), call.name)

			return
		}

		if first == nil {
			first, firstExpr = v, arg

			continue
		}

		if !c.sameLifetime(first, v) {
			c.reportf(arg, "handles %s and %s have independent scopes and cannot share an output scope in %s",
				types.ExprString(firstExpr), types.ExprString(arg), call.name)

			return
		}
	}
}

// sharedHandles returns the storage expressions of the handles of a
// byPointer engine call.
func (c *checker) sharedHandles(call engineCall) []ast.Expr {
	var hs []ast.Expr

	for _, i := range call.handles {
		arg := ast.Unparen(call.call.Args[i])

		if call.slice {
			lit, ok := arg.(*ast.CompositeLit)
			if !ok {
				c.checkSharedSlice(arg, call)

				continue
			}

			for _, elt := range lit.Elts {
				hs = append(hs, ast.Unparen(elt))
			}

			continue
		}

		if u, ok := arg.(*ast.UnaryExpr); ok && u.Op == token.AND {
			hs = append(hs, ast.Unparen(u.X))

			continue
		}

		// a pointer to a handle stored elsewhere
		hs = append(hs, &ast.StarExpr{Star: arg.Pos(), X: arg})
	}

	return hs
}

// checkSharedSlice accepts a slice of handles held in a plain local, which
// the enclosing block filled itself.
func (c *checker) checkSharedSlice(arg ast.Expr, call engineCall) {
	if v := storage(c.pass.TypesInfo, arg); v != nil && c.isPlainLocal(v) {
		return
	}

	c.reportf(arg, "cannot verify the scopes of the handles in %s shared in %s", types.ExprString(arg), call.name)
}

func (c *checker) sameLifetime(a, b *types.Var) bool {
	if a == b {
		return true
	}

	return c.isPlainLocal(a) && c.isPlainLocal(b) && a.Parent() == b.Parent()
}

// isPlainLocal reports whether v is a local variable that is not a
// parameter or a result.
func (c *checker) isPlainLocal(v *types.Var) bool {
	return isLocal(v) && !c.index.params[v]
}

// storage returns the variable whose memory holds the value expr denotes,
// or nil when that memory is reached through a pointer, slice or map.
func storage(info *types.Info, expr ast.Expr) *types.Var {
	switch e := ast.Unparen(expr).(type) {
	case *ast.Ident:
		v, _ := info.Uses[e].(*types.Var)

		return v

	case *ast.SelectorExpr:
		if id, ok := ast.Unparen(e.X).(*ast.Ident); ok {
			if _, ok := info.Uses[id].(*types.PkgName); ok {
				v, _ := info.Uses[e.Sel].(*types.Var)

				return v
			}
		}

		if sel := info.Selections[e]; sel == nil || sel.Kind() != types.FieldVal || sel.Indirect() {
			return nil
		}

		return storage(info, e.X)

	case *ast.IndexExpr:
		t := info.TypeOf(e.X)
		if t == nil {
			return nil
		}

		if _, ok := t.Underlying().(*types.Array); !ok {
			return nil
		}

		return storage(info, e.X)

	default:
		return nil
	}
}

func (c *checker) isSharedSite(site ast.Expr) bool {
	if site == nil {
		return false
	}

	if isSharedCall(c.pass.TypesInfo, site) {
		return true
	}

	id, ok := ast.Unparen(site).(*ast.Ident)

	return ok && c.index.shared[c.pass.TypesInfo.Uses[id]]
}
