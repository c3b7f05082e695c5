// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lending_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/lend"
	"code.hybscloud.com/lend/lending"
)

// probed yields keys and records every key consumed.
func probed(keys []string, seen *[]string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, k := range keys {
			*seen = append(*seen, k)
			if !yield(k) {
				return
			}
		}
	}
}

func TestGetFirstAvailable(t *testing.T) {
	v := 42
	m := map[string]*int{"b": &v}
	var seen []string

	got := lending.GetFirstAvailable(lend.Own(&m), probed([]string{"a", "b", "c"}, &seen))
	ref, ok := got.Get()
	require.True(t, ok)
	assert.Equal(t, 42, *ref.Get())
	assert.Equal(t, []string{"a", "b"}, seen, "keys after the hit must not be probed")

	ref.Set(43)
	assert.Equal(t, 43, v, "the result must reference the stored value")
}

func TestGetFirstAvailableMissing(t *testing.T) {
	v := 1
	m := map[string]*int{"z": &v}
	got := lending.GetFirstAvailable(lend.Own(&m), slices.Values([]string{"a", "b"}))
	assert.True(t, got.IsNone())
}

func TestGetFirstAvailableReusesHandle(t *testing.T) {
	a, b := 1, 2
	m := map[int]*int{1: &a, 2: &b}
	h := lend.Own(&m)
	for _, tc := range []struct {
		keys []int
		want int
	}{
		{keys: []int{3, 2}, want: 2},
		{keys: []int{1, 2}, want: 1},
	} {
		got, ok := lending.GetFirstAvailable(h, slices.Values(tc.keys)).Get()
		require.True(t, ok)
		assert.Equal(t, tc.want, *got.Get())
	}
}
