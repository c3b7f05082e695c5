// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package gclplugin provides golangci-lint plugin integration for the [lendcheck] analyzer.

# Usage

1. Add a file `.custom-gcl.yaml` to your source with:

	---
	version: v2.7.0

	name: golangci-lint
	destination: .

	plugins:
	  - module: code.hybscloud.com/lend
	    import: code.hybscloud.com/lend/gclplugin
	    version: v0.1.0

2. Run `golangci-lint custom` from your project root.

3. Configure the linter in `.golangci.yaml`:

	---
	version: "2"
	linters:
	  default: none
	  enable:
	    - lendcheck
	  settings:
	    custom:
	      lendcheck:
	        type: module
	        description: "lendcheck rejects misuse of lend handles."
	        settings:
	          escape: true
	          shared: true

4. Run the linter:

	./golangci-lint run .

[lendcheck]: https://pkg.go.dev/code.hybscloud.com/lend/analyzer
*/
package gclplugin
