package escape

import "code.hybscloud.com/lend"

var global lend.Mut[int]

func escapes() {
	x := 1
	h := lend.Own(&x)

	var (
		kept lend.Mut[int]
		all  []lend.Mut[int]
		box  struct{ m lend.Mut[int] }
	)

	ch := make(chan lend.Mut[int], 1)

	f := lend.Run(lend.Returning[int](), &h, func(a lend.Mut[int], e lend.Exit[int, int]) lend.Flow[int, int] {
		kept = a             // want `alias a escapes its Run block through kept`
		all = append(all, a) // want `alias a escapes its Run block through all`
		box.m = a            // want `alias a escapes its Run block through box`
		global = a           // want `alias a escapes its Run block through global`
		ch <- a              // want `alias a escapes its Run block through a channel send`

		local := a
		local = a
		_ = local

		return e.Continue(0)
	})
	_, _, _ = f, kept, all
}

func borrowed() {
	x, y := 1, 2
	var first lend.Mut[int]
	f := lend.Borrow2(lend.Own(&x), lend.Own(&y), func(p, q lend.Mut[int]) lend.Flow[int, int] {
		first = p // want `alias p escapes its Borrow2 block through first`
		return lend.Continue[int](*q.Get())
	})
	_, _ = f, first
}

func exitIgnored() {
	x := 1
	h := lend.Own(&x)

	var exit lend.Exit[int, int]

	f := lend.Run(lend.Returning[int](), &h, func(a lend.Mut[int], e lend.Exit[int, int]) lend.Flow[int, int] {
		exit = e
		return e.Return(*a.Get())
	})
	_, _ = f, exit
}

type holder struct{ m lend.Mut[int] }

func wrapped() {
	x := 1
	h := lend.Own(&x)

	var (
		box holder
		ref *lend.Mut[int]
		fn  func() int
		n   int
	)

	f := lend.Run(lend.Returning[int](), &h, func(a lend.Mut[int], e lend.Exit[int, int]) lend.Flow[int, int] {
		box = holder{m: a}                  // want `alias a escapes its Run block through box`
		ref = &a                            // want `alias a escapes its Run block through ref`
		fn = func() int { return *a.Get() } // want `alias a escapes its Run block through fn`
		n = *a.Get()

		return e.Continue(n)
	})
	_, _, _, _, _ = f, box, ref, fn, n
}
