package disabled

import "code.hybscloud.com/lend"

func block(h lend.Mut[int]) lend.Flow[int, int] {
	return lend.Continue[int](*h.Get())
}

func sum(a, b lend.Mut[int], e lend.Exit[int, int]) lend.Flow[int, int] {
	return e.Continue(*a.Get() + *b.Get())
}

func misuse() {
	x := 1
	h := lend.Own(&x)
	f := lend.Borrow(h, block)
	_ = h.Get()

	var kept lend.Mut[int]
	lend.Run(lend.Returning[int](), &h, func(a lend.Mut[int], e lend.Exit[int, int]) lend.Flow[int, int] {
		kept = a
		return e.Continue(0)
	})

	if x > 0 {
		y := 2
		b := lend.Own(&y)
		lend.Run2(lend.Returning[int]().Shared(), &h, &b, sum)
	}
	_, _ = f, kept
}
