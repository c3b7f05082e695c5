// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command lendcheck reports misuse of lend handles.
//
// Usage:
//
//	lendcheck [-shared] [-moved] [-escape] [-generated] packages...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"code.hybscloud.com/lend/analyzer"
)

func main() { singlechecker.Main(analyzer.Analyzer) }
