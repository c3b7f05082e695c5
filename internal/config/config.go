// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config holds the flag sets of the lendcheck analyzer.
package config

// Check selects one lendcheck diagnostic family.
type Check uint8

const (
	// SharedCheck reports handles from different scopes lent under one shared output scope.
	SharedCheck Check = 1 << iota

	// MovedCheck reports use of a handle after it was lent by value.
	MovedCheck

	// EscapeCheck reports aliases stored in variables declared outside their block.
	EscapeCheck

	// AllChecks enables every check.
	AllChecks = SharedCheck | MovedCheck | EscapeCheck
)

// Checks is the set of enabled checks.
type Checks = BitMask[Check]

// Config holds behavioral options.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota
)
