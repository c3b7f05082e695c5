// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package analyzer

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"code.hybscloud.com/lend/internal/config"
)

// runOptions represent configuration runOptions for the lendcheck analyzer.
type runOptions struct {
	// checks represents the checks to be enabled.
	checks config.Checks

	// behavior holds behavioral options.
	behavior config.BitMask[config.Config]
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions returns the options with every check enabled.
func defaultRunOptions() *runOptions {
	return &runOptions{
		checks: config.NewBitMask(config.AllChecks),
	}
}

// analyzer returns a lendcheck *[analysis.Analyzer] instance.
func (r *runOptions) analyzer() *analysis.Analyzer {
	a := &analysis.Analyzer{
		Name:      name,
		Doc:       doc,
		URL:       url,
		Run:       r.run,
		Requires:  []*analysis.Analyzer{inspect.Analyzer},
		FactTypes: []analysis.Fact{new(consumesFact)},
	}

	return a
}
