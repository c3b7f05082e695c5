// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package analyzer

import (
	"golang.org/x/tools/go/analysis"
)

// Public API constants for the lendcheck analyzer.
const (
	name = "lendcheck"
	doc  = `lendcheck reports lend handles used after they were lent, aliases leaking out of lend blocks, and unsound shared output scopes`
	url  = "https://pkg.go.dev/code.hybscloud.com/lend/analyzer"
)

// New creates a new instance of the lendcheck analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools. For command-line use, the
// pre-configured [Analyzer] variable is typically sufficient.
func New(opts ...Option) *analysis.Analyzer {
	r := makeRunOptions(opts)

	a := r.analyzer()

	registerFlags(&a.Flags, r)

	return a
}

// Analyzer is a pre-configured *[analysis.Analyzer] for checking lend call sites.
var Analyzer = New()
