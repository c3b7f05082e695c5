// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package analyzer

import (
	"go/ast"
	"go/token"
	"go/types"

	"code.hybscloud.com/lend/internal/astutil"
)

// checkEscape reports aliases stored in variables declared outside the
// block literal they were lent to.
func (c *checker) checkEscape(call engineCall) {
	block := call.block()
	if block == nil {
		return
	}

	aliases := c.aliases(block)
	if len(aliases) == 0 {
		return
	}

	ast.Inspect(block.Body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.AssignStmt:
			if n.Tok != token.ASSIGN || len(n.Lhs) != len(n.Rhs) {
				return true
			}

			for i, lhs := range n.Lhs {
				alias := c.aliasIn(n.Rhs[i], aliases)
				if alias == nil {
					continue
				}

				root := astutil.Root(lhs)
				if root == nil || root.Name == "_" {
					continue
				}

				obj := c.pass.TypesInfo.Uses[root]
				if obj == nil || (block.Pos() <= obj.Pos() && obj.Pos() < block.End()) {
					continue
				}

				c.reportf(lhs, "alias %s escapes its %s block through %s", alias.Name, call.name, root.Name)
			}

		case *ast.SendStmt:
			if alias := c.aliasIn(n.Value, aliases); alias != nil {
				c.reportf(n, "alias %s escapes its %s block through a channel send", alias.Name, call.name)
			}
		}

		return true
	})
}

// aliases returns the block parameters carrying lent handles.
func (c *checker) aliases(block *ast.FuncLit) map[types.Object]bool {
	aliases := make(map[types.Object]bool)

	for _, field := range block.Type.Params.List {
		for _, name := range field.Names {
			obj := c.pass.TypesInfo.Defs[name]
			if obj == nil || isLendType(obj.Type(), "Exit", "TryExit") {
				continue
			}

			aliases[obj] = true
		}
	}

	return aliases
}

// aliasIn returns an alias expr stores: the alias itself, its address, an
// alias appended to a slice or placed in a composite literal, or an alias
// captured by a function literal.
func (c *checker) aliasIn(expr ast.Expr, aliases map[types.Object]bool) *ast.Ident {
	switch e := ast.Unparen(expr).(type) {
	case *ast.Ident:
		if aliases[c.pass.TypesInfo.Uses[e]] {
			return e
		}

	case *ast.UnaryExpr:
		if e.Op == token.AND {
			return c.aliasIn(e.X, aliases)
		}

	case *ast.CompositeLit:
		for _, elt := range e.Elts {
			if kv, ok := elt.(*ast.KeyValueExpr); ok {
				elt = kv.Value
			}

			if alias := c.aliasIn(elt, aliases); alias != nil {
				return alias
			}
		}

	case *ast.FuncLit:
		return c.captured(e, aliases)

	case *ast.CallExpr:
		fun, ok := ast.Unparen(e.Fun).(*ast.Ident)
		if !ok {
			return nil
		}

		if b, ok := c.pass.TypesInfo.Uses[fun].(*types.Builtin); !ok || b.Name() != "append" || len(e.Args) < 2 {
			return nil
		}

		for _, arg := range e.Args[1:] {
			if alias := c.aliasIn(arg, aliases); alias != nil {
				return alias
			}
		}
	}

	return nil
}

// captured returns the first alias referenced inside lit.
func (c *checker) captured(lit *ast.FuncLit, aliases map[types.Object]bool) *ast.Ident {
	var alias *ast.Ident

	ast.Inspect(lit.Body, func(n ast.Node) bool {
		if alias != nil {
			return false
		}

		if id, ok := n.(*ast.Ident); ok && aliases[c.pass.TypesInfo.Uses[id]] {
			alias = id
		}

		return true
	})

	return alias
}
