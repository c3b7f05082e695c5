// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gclplugin

import "code.hybscloud.com/lend/analyzer"

// Settings represent the configuration options for an instance of the [Plugin].
type Settings struct {
	// Shared enables shared output scope checks.
	Shared *bool `json:"shared,omitzero"`
	// Moved enables use-after-lend checks.
	Moved *bool `json:"moved,omitzero"`
	// Escape enables alias escape checks.
	Escape *bool `json:"escape,omitzero"`
}

// Options converts the settings to a list of [analyzer.Option].
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Shared, analyzer.WithShared)
	opts = appendOption(opts, s.Moved, analyzer.WithMoved)
	opts = appendOption(opts, s.Escape, analyzer.WithEscape)

	return opts
}

func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
