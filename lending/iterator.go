// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lending

import (
	"iter"

	"code.hybscloud.com/lend"
)

// Iterator is a lending iterator. The item returned by Next is bound to
// scope and borrows from the iterator.
type Iterator[I any] interface {
	Next(scope *lend.Scope) lend.Option[I]
}

// Windows is a lending iterator over overlapping windows of a sequence.
// Each window is the iterator's own buffer, shifted in place by Next.
type Windows[T any] struct {
	next   func() (T, bool)
	stop   func()
	size   int
	data   []T
	filled bool
}

// NewWindows returns the windows of length size over seq.
// Call Close to release seq if the iterator is not drained.
func NewWindows[T any](seq iter.Seq[T], size int) *Windows[T] {
	next, stop := iter.Pull(seq)
	return &Windows[T]{next: next, stop: stop, size: size}
}

// Next implements [Iterator].
// A window of length zero is yielded forever once the sequence has been
// started; a sequence shorter than size yields nothing.
func (w *Windows[T]) Next(scope *lend.Scope) lend.Option[lend.Mut[[]T]] {
	switch {
	case !w.filled:
		data := make([]T, 0, w.size)
		for len(data) < w.size {
			v, ok := w.next()
			if !ok {
				return lend.Nothing[lend.Mut[[]T]]()
			}
			data = append(data, v)
		}
		w.data, w.filled = data, true
	case len(w.data) > 0:
		v, ok := w.next()
		if !ok {
			w.data, w.filled = nil, false
			return lend.Nothing[lend.Mut[[]T]]()
		}
		copy(w.data, w.data[1:])
		w.data[len(w.data)-1] = v
	}
	return lend.Some(lend.OwnAt(&w.data, scope))
}

// Close releases the underlying sequence.
func (w *Windows[T]) Close() {
	w.stop()
}

// NextFiltered returns the first item of it for which keep reports true,
// or Nothing when it is exhausted. Rejected items are never surfaced.
// The returned item is bound to a scope that depends on the scope of it.
//
// The item aliases the iterator's buffer, which the next call overwrites.
// It stays valid until the scope of it is closed, not until it is lent
// again, so advance through a fresh [lend.OwnAt] handle per call and close
// its scope once the item is done with.
func NextFiltered[W any, PW interface {
	*W
	Iterator[I]
}, I any](it lend.Mut[W], keep func(I) bool) lend.Option[I] {
	site := lend.Returning[lend.Option[I]]()
	for {
		f := lend.Run(site, &it, func(it lend.Mut[W], e lend.Exit[lend.Option[I], struct{}]) lend.Flow[lend.Option[I], struct{}] {
			out := PW(it.Get()).Next(it.Scope())
			if item, ok := out.Get(); ok && !keep(item) {
				return e.Skip()
			}
			return e.Return(out)
		})
		if r, ok := f.Break(); ok {
			return r
		}
	}
}

// NextFilteredTry is [NextFiltered] written as a try lend: exhaustion of
// it propagates through the Option shape. Its item has the same lifetime
// as the item of NextFiltered.
func NextFilteredTry[W any, PW interface {
	*W
	Iterator[I]
}, I any](it lend.Mut[W], keep func(I) bool) lend.Option[I] {
	site := lend.Returning[lend.Option[I]]()
	shape := lend.OptionOf[I]()
	for {
		f := lend.TryRun(site, &it, shape, func(it lend.Mut[W], e lend.TryExit[lend.Option[I], I, lend.None, struct{}]) lend.Short[lend.Flow[I, struct{}], lend.None] {
			item, stop, ok := e.Unwrap(PW(it.Get()).Next(it.Scope()))
			if !ok {
				return e.Propagate(stop)
			}
			if keep(item) {
				return e.Return(lend.Some(item))
			}
			return e.Skip()
		})
		if r, ok := f.Break(); ok {
			return r
		}
	}
}
