package moved

import "code.hybscloud.com/lend"

func block(h lend.Mut[int]) lend.Flow[int, int] {
	return lend.Continue[int](*h.Get())
}

func usedAfter() {
	x := 1
	h := lend.Own(&x)
	f := lend.Borrow(h, block)
	_ = h.Get() // want `handle h is used after being lent to Borrow; assign the handle returned on continue first`
	_ = f
}

func reassigned() int {
	x := 1
	h := lend.Own(&x)
	f := lend.Borrow(h, block)
	if r, ok := f.Break(); ok {
		return r
	}
	l, _ := f.Continue()
	h = l.Handle
	return *h.Get()
}

func inBlock() {
	x := 1
	h := lend.Own(&x)
	f := lend.Borrow(h, func(a lend.Mut[int]) lend.Flow[int, int] {
		return lend.Continue[int](*h.Get()) // want `handle h is used inside its own Borrow block; use the block parameter`
	})
	_ = f
}

func returned() lend.Flow[int, lend.Lent[int, lend.Mut[int]]] {
	x := 1
	h := lend.Own(&x)
	if x > 0 {
		return lend.Borrow(h, block)
	}
	_ = h.Get()
	return lend.Borrow(h, block)
}

func loop() {
	x := 1
	h := lend.Own(&x)
	for range 3 {
		f := lend.Borrow(h, block) // want `handle h is lent to Borrow in a loop without being reassigned`
		_ = f
	}
}

func loopReassigned() int {
	x := 1
	h := lend.Own(&x)
	for range 3 {
		f := lend.Borrow(h, block)
		if r, ok := f.Break(); ok {
			return r
		}
		l, _ := f.Continue()
		h = l.Handle
	}
	return *h.Get()
}

func loopLocal() {
	for i := range 3 {
		h := lend.Own(&i)
		f := lend.Borrow(h, block)
		_ = f
	}
}

func pair() {
	x, y := 1, 2
	a, b := lend.Own(&x), lend.Own(&y)
	f := lend.Borrow2(a, b, func(p, q lend.Mut[int]) lend.Flow[int, int] {
		return lend.Continue[int](*p.Get() + *q.Get())
	})
	_ = f
	_ = b.Get() // want `handle b is used after being lent to Borrow2`
}

func in(s *lend.Scope) {
	x := 1
	h := lend.Own(&x)
	f := lend.BorrowIn(s, h, block)
	_ = f
	_ = h // want `handle h is used after being lent to BorrowIn`
}

func run() int {
	x := 1
	h := lend.Own(&x)
	f := lend.Run(lend.Returning[int](), &h, func(a lend.Mut[int], e lend.Exit[int, int]) lend.Flow[int, int] {
		return e.Continue(*a.Get())
	})
	_ = f
	return *h.Get()
}

func suppressed() {
	x := 1
	h := lend.Own(&x)
	f := lend.Borrow(h, block)
	_ = h.Get() //nolint:lendcheck
	_ = f
}

// leak reads h after lending it.
//
//nolint:lendcheck
func leak() {
	x := 1
	h := lend.Own(&x)
	f := lend.Borrow(h, block)
	_ = h.Get()
	_ = f
}
