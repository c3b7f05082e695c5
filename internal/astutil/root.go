// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package astutil

import "go/ast"

// Root returns the variable an assignable expression ultimately writes to,
// or nil when expr is not rooted in an identifier.
func Root(expr ast.Expr) *ast.Ident {
	for {
		switch e := expr.(type) {
		case *ast.Ident:
			return e

		case *ast.SelectorExpr:
			expr = e.X

		case *ast.IndexExpr:
			expr = e.X

		case *ast.IndexListExpr:
			expr = e.X

		case *ast.StarExpr:
			expr = e.X

		case *ast.ParenExpr:
			expr = e.X

		default:
			return nil
		}
	}
}
