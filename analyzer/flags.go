// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package analyzer

import (
	"flag"

	"code.hybscloud.com/lend/internal/config"
)

// registerFlags binds the [runOptions] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *runOptions) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(NewCheckValue(&r.checks, config.SharedCheck), "shared", "check handles lent under a shared output scope")
	flags.Var(NewCheckValue(&r.checks, config.MovedCheck), "moved", "check handles used after being lent")
	flags.Var(NewCheckValue(&r.checks, config.EscapeCheck), "escape", "check aliases stored outside their lend block")
	flags.Var(boolValue[config.Config, *config.BitMask[config.Config]]{&r.behavior, config.IncludeGenerated}, "generated", "check generated files")
}
