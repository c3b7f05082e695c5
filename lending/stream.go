// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lending

import (
	"code.hybscloud.com/lend"
)

// Stream is a polled lending stream. PollNext returns Pending when no item
// is available yet; the caller polls again later. A ready item is bound to
// scope and borrows from the stream.
type Stream[I any] interface {
	PollNext(scope *lend.Scope) lend.Poll[lend.Option[I]]
}

// StreamWindows is a lending stream over overlapping windows of a [Source].
// A window is yielded as soon as size items have arrived; each later item
// shifts the window in place.
type StreamWindows[T any] struct {
	src   Source[T]
	size  int
	items []T
}

// NewStreamWindows returns the windows of length size over src.
func NewStreamWindows[T any](src Source[T], size int) *StreamWindows[T] {
	return &StreamWindows[T]{src: src, size: size, items: make([]T, 0, size)}
}

// PollNext implements [Stream].
// Items received before a Pending are kept; polling again resumes the fill.
func (w *StreamWindows[T]) PollNext(scope *lend.Scope) lend.Poll[lend.Option[lend.Mut[[]T]]] {
	for {
		p := w.src.Poll()
		next, ok := p.Get()
		if !ok {
			return lend.Pending[lend.Option[lend.Mut[[]T]]]()
		}
		item, ok := next.Get()
		if !ok {
			w.items = w.items[:0]
			return lend.Ready(lend.Nothing[lend.Mut[[]T]]())
		}
		if len(w.items) < w.size {
			w.items = append(w.items, item)
			if len(w.items) < w.size {
				continue
			}
		} else if len(w.items) > 0 {
			copy(w.items, w.items[1:])
			w.items[len(w.items)-1] = item
		}
		return lend.Ready(lend.Some(lend.OwnAt(&w.items, scope)))
	}
}

// PollNextFiltered polls st until it yields an item for which keep reports
// true, or ends. Pending is returned as soon as st reports it; the stream
// keeps its position and the next call resumes from there.
func PollNextFiltered[S any, PS interface {
	*S
	Stream[I]
}, I any](st lend.Pin[S, lend.Mut[S]], keep func(I) bool) lend.Poll[lend.Option[I]] {
	site := lend.Returning[lend.Poll[lend.Option[I]]]()
	for {
		f := lend.Run(site, &st, func(st lend.Pin[S, lend.Mut[S]], e lend.Exit[lend.Poll[lend.Option[I]], struct{}]) lend.Flow[lend.Poll[lend.Option[I]], struct{}] {
			out, pending, ok := lend.UnwrapReady(e, PS(st.Get()).PollNext(st.Scope()))
			if !ok {
				return pending
			}
			if item, ok := out.Get(); ok && !keep(item) {
				return e.Skip()
			}
			return e.Return(lend.Ready(out))
		})
		if r, ok := f.Break(); ok {
			return r
		}
	}
}

// PollNextFilteredTry is [PollNextFiltered] with a fallible predicate,
// written as a try lend over the Poll[Option[Either]] shape. A predicate
// failure ends the poll with Ready(Some(Left(err))).
func PollNextFilteredTry[S any, PS interface {
	*S
	Stream[I]
}, I any](st lend.Pin[S, lend.Mut[S]], keep func(I) (bool, error)) lend.Poll[lend.Option[lend.Either[error, I]]] {
	site := lend.Returning[lend.Poll[lend.Option[lend.Either[error, I]]]]()
	shape := lend.PollOptionEitherOf[error, I]()
	for {
		f := lend.TryRun(site, &st, shape, func(st lend.Pin[S, lend.Mut[S]], e lend.TryExit[lend.Poll[lend.Option[lend.Either[error, I]]], I, lend.Option[error], struct{}]) lend.Short[lend.Flow[I, struct{}], lend.Option[error]] {
			out, pending, ok := lend.TryUnwrapReady(e, PS(st.Get()).PollNext(st.Scope()))
			if !ok {
				return pending
			}
			item, ok := out.Get()
			if !ok {
				return e.Return(lend.Ready(lend.Nothing[lend.Either[error, I]]()))
			}
			kept, err := keep(item)
			if err != nil {
				return e.Return(lend.Ready(lend.Some(lend.Left[error, I](err))))
			}
			if kept {
				return e.Return(lend.Ready(lend.Some(lend.Right[error](item))))
			}
			return e.Skip()
		})
		if r, ok := f.Break(); ok {
			return r
		}
	}
}
