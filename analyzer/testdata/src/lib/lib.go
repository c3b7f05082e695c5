package lib

import "code.hybscloud.com/lend"

// First lends h and keeps the alias it was lent.
func First(h lend.Mut[int]) lend.Mut[int] {
	f := lend.Run(lend.Returning[lend.Mut[int]](), &h, func(a lend.Mut[int], e lend.Exit[lend.Mut[int], struct{}]) lend.Flow[lend.Mut[int], struct{}] {
		return e.Return(a)
	})
	r, _ := f.Break()
	return r
}

// Wrap lends h through First.
func Wrap(n int, h lend.Mut[int]) lend.Mut[int] {
	if n > 0 {
		return h
	}
	return First(h)
}

// Peek reads h without lending it.
func Peek(h lend.Mut[int]) int {
	return *h.Get()
}
