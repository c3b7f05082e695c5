// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lending

import (
	"code.hybscloud.com/lend"
)

// Source produces owned items by polling: Ready(Some(v)) for an item,
// Ready(Nothing) at the end, Pending when the next item is not there yet.
type Source[T any] interface {
	Poll() lend.Poll[lend.Option[T]]
}

// SliceSource yields the elements of a slice, reporting Pending once before
// each scripted position.
type SliceSource[T any] struct {
	items   []T
	pending map[int]bool
	pos     int
}

// NewSliceSource returns a source over items that is not ready once before
// delivering each element whose index is listed in pendingAt.
func NewSliceSource[T any](items []T, pendingAt ...int) *SliceSource[T] {
	s := &SliceSource[T]{items: items, pending: make(map[int]bool, len(pendingAt))}
	for _, i := range pendingAt {
		s.pending[i] = true
	}
	return s
}

// Poll implements [Source].
func (s *SliceSource[T]) Poll() lend.Poll[lend.Option[T]] {
	if s.pending[s.pos] {
		delete(s.pending, s.pos)
		return lend.Pending[lend.Option[T]]()
	}
	if s.pos >= len(s.items) {
		return lend.Ready(lend.Nothing[T]())
	}
	v := s.items[s.pos]
	s.pos++
	return lend.Ready(lend.Some(v))
}

// ChanSource polls a channel without blocking. An empty channel is Pending;
// a closed and drained channel is the end.
type ChanSource[T any] struct {
	ch <-chan T
}

// NewChanSource returns a source over ch.
func NewChanSource[T any](ch <-chan T) ChanSource[T] {
	return ChanSource[T]{ch: ch}
}

// Poll implements [Source].
func (s ChanSource[T]) Poll() lend.Poll[lend.Option[T]] {
	select {
	case v, ok := <-s.ch:
		if !ok {
			return lend.Ready(lend.Nothing[T]())
		}
		return lend.Ready(lend.Some(v))
	default:
		return lend.Pending[lend.Option[T]]()
	}
}
