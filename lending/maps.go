// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lending

import (
	"iter"

	"code.hybscloud.com/lend"
)

// GetFirstAvailable returns a mutable reference to the value of the first
// key in keys that is present in m, or Nothing when none is. Keys after the
// first hit are not consumed.
func GetFirstAvailable[K comparable, V any](m lend.Mut[map[K]*V], keys iter.Seq[K]) lend.Option[lend.Mut[V]] {
	site := lend.Returning[lend.Option[lend.Mut[V]]]()
	for key := range keys {
		f := lend.Run(site, &m, func(m lend.Mut[map[K]*V], e lend.Exit[lend.Option[lend.Mut[V]], struct{}]) lend.Flow[lend.Option[lend.Mut[V]], struct{}] {
			if v, ok := (*m.Get())[key]; ok {
				return e.Return(lend.Some(lend.OwnAt(v, m.Scope())))
			}
			return e.Skip()
		})
		if r, ok := f.Break(); ok {
			return r
		}
	}
	return lend.Nothing[lend.Mut[V]]()
}
