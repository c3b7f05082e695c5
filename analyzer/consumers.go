// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package analyzer

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"
	"slices"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// consumesFact marks a function that lends some of its handle parameters.
// An alias the function returns may outlive the call, so the caller's copy
// of such a handle counts as moved, exactly as if it had been passed to
// the engine directly.
type consumesFact struct {
	// Params lists the consumed parameter positions in increasing order.
	Params []int
}

// AFact implements [analysis.Fact].
func (*consumesFact) AFact() {}

func (f *consumesFact) String() string {
	return fmt.Sprintf("consumes%v", f.Params)
}

// consumer describes a function declaration of the current package.
type consumer struct {
	fn     *types.Func
	params map[*types.Var]int
	body   inspector.Cursor
}

// exportConsumers exports a [consumesFact] for every function of the pass
// that lends one of its parameters, directly or through another consumer.
func exportConsumers(ctx context.Context, p *analysis.Pass, root inspector.Cursor) {
	defer trace.StartRegion(ctx, "consumers").End()

	var decls []consumer

	for cur := range root.Preorder((*ast.FuncDecl)(nil)) {
		decl := cur.Node().(*ast.FuncDecl)
		if decl.Body == nil {
			continue
		}

		fn, ok := p.TypesInfo.Defs[decl.Name].(*types.Func)
		if !ok {
			continue
		}

		params := make(map[*types.Var]int)

		i := 0
		for _, field := range decl.Type.Params.List {
			if len(field.Names) == 0 {
				i++

				continue
			}

			for _, name := range field.Names {
				if v, ok := p.TypesInfo.Defs[name].(*types.Var); ok {
					params[v] = i
				}

				i++
			}
		}

		if len(params) > 0 {
			decls = append(decls, consumer{fn: fn, params: params, body: cur.ChildAt(edge.FuncDecl_Body, -1)})
		}
	}

	// Consumption only grows, so this reaches a fixed point.
	for changed := true; changed; {
		changed = false

		for _, d := range decls {
			var known consumesFact
			p.ImportObjectFact(d.fn, &known)

			if consumed := d.consumed(p); len(consumed) > len(known.Params) {
				p.ExportObjectFact(d.fn, &consumesFact{Params: consumed})
				changed = true
			}
		}
	}
}

// consumed returns the parameter positions d lends.
func (d consumer) consumed(p *analysis.Pass) []int {
	var consumed []int

	for cur := range d.body.Preorder((*ast.CallExpr)(nil)) {
		call, ok := classify(p.TypesInfo, cur.Node().(*ast.CallExpr))
		if !ok {
			call, ok = consumerCall(p, cur.Node().(*ast.CallExpr))
		}

		if !ok || call.slice {
			continue
		}

		for _, i := range call.handles {
			arg := ast.Unparen(call.call.Args[i])

			if call.kind == byPointer {
				u, ok := arg.(*ast.UnaryExpr)
				if !ok || u.Op != token.AND {
					continue
				}

				arg = ast.Unparen(u.X)
			}

			v := handleVar(p.TypesInfo, arg)
			if v == nil {
				continue
			}

			if j, ok := d.params[v]; ok && !slices.Contains(consumed, j) {
				consumed = append(consumed, j)
			}
		}
	}

	slices.Sort(consumed)

	return consumed
}

// consumerCall reports whether call invokes a function carrying a
// [consumesFact].
func consumerCall(p *analysis.Pass, call *ast.CallExpr) (engineCall, bool) {
	fn, ok := typeutil.Callee(p.TypesInfo, call).(*types.Func)
	if !ok {
		return engineCall{}, false
	}

	var fact consumesFact
	if !p.ImportObjectFact(fn.Origin(), &fact) || len(fact.Params) == 0 {
		return engineCall{}, false
	}

	if len(call.Args) <= slices.Max(fact.Params) {
		return engineCall{}, false
	}

	return engineCall{
		engine:   engine{kind: byValue, handles: fact.Params},
		call:     call,
		name:     fn.Name(),
		consumer: true,
	}, true
}
