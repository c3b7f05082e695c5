package consumer

import (
	"lib"

	"code.hybscloud.com/lend"
)

func block(h lend.Mut[int]) lend.Flow[int, int] {
	return lend.Continue[int](*h.Get())
}

func take(h lend.Mut[int]) lend.Flow[int, lend.Lent[int, lend.Mut[int]]] { // want take:`consumes\[0\]`
	return lend.Borrow(h, block)
}

func consumedLocally() {
	x := 1
	h := lend.Own(&x)
	take(h)
	take(h) // want `handle h is used after being lent to take`
}

func consumed() {
	x := 1
	h := lend.Own(&x)
	first := lib.First(h)
	second := lib.First(h) // want `handle h is used after being lent to First`
	_, _ = first, second
}

func consumedThrough() {
	x := 1
	h := lend.Own(&x)
	lib.Wrap(0, h)
	_ = lib.Peek(h) // want `handle h is used after being lent to Wrap`
}

func peeked() int {
	x := 1
	h := lend.Own(&x)
	_ = lib.Peek(h)
	return lib.Peek(h)
}

func perCallScope() (lend.Mut[int], lend.Mut[int]) {
	x := 1
	s1 := lend.NewScope()
	first := lib.First(lend.OwnAt(&x, s1))
	s2 := lend.NewScope()
	second := lib.First(lend.OwnAt(&x, s2))
	return first, second
}
