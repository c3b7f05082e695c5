// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lending builds lending iterators, lending streams and map lookups
// on top of the lend call-site protocol.
//
// A lending iterator yields items that borrow from the iterator itself:
// an item is bound to the scope passed to Next and must not be used after
// that scope ends. Filtering such an iterator is the canonical conditional
// lend: the iterator is lent to a block once per item, the block keeps the
// first item that satisfies the predicate (break) and gives the iterator back
// otherwise (continue).
//
//   - [Iterator], [Windows]: Lending iterator and a sliding window over an iter.Seq
//   - [NextFiltered], [NextFilteredTry]: First item satisfying a predicate
//   - [Stream], [StreamWindows]: Polled lending stream and its sliding window
//   - [Source], [SliceSource], [ChanSource]: Polled item sources
//   - [PollNextFiltered], [PollNextFilteredTry]: Filtering that forwards Pending
//   - [GetFirstAvailable]: First value found under a sequence of keys
package lending
