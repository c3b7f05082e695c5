// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package analyzer

import (
	"strconv"

	"code.hybscloud.com/lend/internal/config"
)

type boolValue[F any, B boolFlag[F]] struct {
	flags B
	value F
}

type boolFlag[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

// NewCheckValue returns a boolean [flag.Value] bound to one check of flags.
func NewCheckValue(flags *config.Checks, check config.Check) interface {
	Set(s string) error
	String() string
	Get() any
	IsBoolFlag() bool
} {
	return boolValue[config.Check, *config.Checks]{flags: flags, value: check}
}

// Set implements [flag.Value].
func (f boolValue[_, B]) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f boolValue[_, B]) String() string {
	var null B
	if f.flags == null {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

// Get implements [flag.Getter].
func (f boolValue[_, B]) Get() any {
	var null B
	if f.flags == null {
		return false
	}

	return f.flags.Enabled(f.value)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f boolValue[_, _]) IsBoolFlag() bool { return true }
