// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package analyzer

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"code.hybscloud.com/lend/internal/astutil"
	"code.hybscloud.com/lend/internal/config"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// run executes the lendcheck analyzer's pipeline.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("lendcheck: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "LendCheck")
	defer task.End()

	idx := newIndex(ctx, p, in.Root())

	exportConsumers(ctx, p, in.Root())

	var currentFile astutil.CurrentFile

	root, nodeTypes := in.Root(), []ast.Node{
		(*ast.File)(nil),
		(*ast.FuncDecl)(nil),
	}

	root.Inspect(nodeTypes, func(i inspector.Cursor) bool {
		switch node := i.Node().(type) {
		case *ast.File:
			currentFile = astutil.NewCurrentFile(p.Fset, node)
			descend := r.behavior.Enabled(config.IncludeGenerated) || !currentFile.Generated()

			return descend

		case *ast.FuncDecl:
			if node.Body == nil {
				return false
			}

			if !currentFile.Valid() {
				astutil.InternalError(p, node, "Function declaration %s without file info", node.Name.Name)

				return false
			}

			if node.Doc != nil && astutil.CommentHasNoLint(node.Doc.List[len(node.Doc.List)-1]) {
				return false
			}

			c := checker{
				pass:   p,
				file:   currentFile,
				index:  idx,
				checks: r.checks,
			}

			trace.WithRegion(ctx, "checkFunc", func() {
				c.checkFunc(i.ChildAt(edge.FuncDecl_Body, -1))
			})

			return false

		default:
			astutil.InternalError(p, node, "Unexpected node type: %T", node)

			return false
		}
	})

	return nil, nil
}

// index holds pass wide facts the checks consult.
type index struct {
	// refs lists the uses of each variable in source order.
	refs map[types.Object][]*ast.Ident

	// assigned holds identifiers appearing as a plain assignment target.
	assigned map[*ast.Ident]bool

	// shared holds variables ever assigned a shared call site.
	shared map[types.Object]bool

	// params holds the parameters and results of every function.
	params map[*types.Var]bool
}

func newIndex(ctx context.Context, p *analysis.Pass, root inspector.Cursor) *index {
	defer trace.StartRegion(ctx, "index").End()

	idx := &index{
		refs:     make(map[types.Object][]*ast.Ident),
		assigned: make(map[*ast.Ident]bool),
		shared:   make(map[types.Object]bool),
		params:   make(map[*types.Var]bool),
	}

	nodeTypes := []ast.Node{
		(*ast.Ident)(nil),
		(*ast.AssignStmt)(nil),
		(*ast.ValueSpec)(nil),
		(*ast.FuncDecl)(nil),
		(*ast.FuncType)(nil),
	}

	for c := range root.Preorder(nodeTypes...) {
		switch n := c.Node().(type) {
		case *ast.FuncDecl:
			idx.addParams(p.TypesInfo, n.Recv)

		case *ast.FuncType:
			idx.addParams(p.TypesInfo, n.Params)
			idx.addParams(p.TypesInfo, n.Results)

		case *ast.Ident:
			if obj := p.TypesInfo.Uses[n]; obj != nil {
				idx.refs[obj] = append(idx.refs[obj], n)
			}

		case *ast.AssignStmt:
			if n.Tok != token.ASSIGN && n.Tok != token.DEFINE {
				continue
			}

			for i, lhs := range n.Lhs {
				id, ok := ast.Unparen(lhs).(*ast.Ident)
				if !ok {
					continue
				}

				idx.assigned[id] = true

				if len(n.Lhs) == len(n.Rhs) && isSharedCall(p.TypesInfo, n.Rhs[i]) {
					idx.shared[p.TypesInfo.ObjectOf(id)] = true
				}
			}

		case *ast.ValueSpec:
			if len(n.Names) != len(n.Values) {
				continue
			}

			for i, id := range n.Names {
				if isSharedCall(p.TypesInfo, n.Values[i]) {
					idx.shared[p.TypesInfo.Defs[id]] = true
				}
			}
		}
	}

	return idx
}

func (idx *index) addParams(info *types.Info, fields *ast.FieldList) {
	if fields == nil {
		return
	}

	for _, field := range fields.List {
		for _, name := range field.Names {
			if v, ok := info.Defs[name].(*types.Var); ok {
				idx.params[v] = true
			}
		}
	}
}

// checker runs the enabled checks over one function declaration.
type checker struct {
	pass   *analysis.Pass
	file   astutil.CurrentFile
	index  *index
	checks config.Checks
}

func (c *checker) checkFunc(body inspector.Cursor) {
	for cur := range body.Preorder((*ast.CallExpr)(nil)) {
		call, ok := classify(c.pass.TypesInfo, cur.Node().(*ast.CallExpr))
		if !ok {
			call, ok = consumerCall(c.pass, cur.Node().(*ast.CallExpr))
		}

		if !ok {
			continue
		}

		if c.checks.Enabled(config.SharedCheck) && call.kind == byPointer {
			c.checkShared(call)
		}

		if c.checks.Enabled(config.MovedCheck) && call.kind == byValue && !call.slice {
			c.checkMoved(cur, call)
		}

		if c.checks.Enabled(config.EscapeCheck) && !call.consumer {
			c.checkEscape(call)
		}
	}
}

// reportf reports a diagnostic unless its line carries a nolint comment.
func (c *checker) reportf(rng analysis.Range, format string, args ...any) {
	if c.file.NoLintComment(rng.Pos()) {
		return
	}

	c.pass.ReportRangef(rng, format, args...)
}
