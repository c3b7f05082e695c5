// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package analyzer

import (
	"log/slog"

	"code.hybscloud.com/lend/internal/config"
)

// Option configures specific behavior of a [New] lendcheck analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithShared is an [Option] to configure whether shared scope checks are enabled.
func WithShared(shared bool) Option {
	return checkOption{check: config.SharedCheck, key: "shared", on: shared}
}

// WithMoved is an [Option] to configure whether use-after-lend checks are enabled.
func WithMoved(moved bool) Option {
	return checkOption{check: config.MovedCheck, key: "moved", on: moved}
}

// WithEscape is an [Option] to configure whether alias escape checks are enabled.
func WithEscape(escape bool) Option {
	return checkOption{check: config.EscapeCheck, key: "escape", on: escape}
}

type checkOption struct {
	check config.Check
	key   string
	on    bool
}

func (o checkOption) apply(r *runOptions) {
	r.checks.Set(o.check, o.on)
}

func (o checkOption) LogAttr() slog.Attr {
	return slog.Bool(o.key, o.on)
}
