package shared

import "code.hybscloud.com/lend"

func sum(a, b lend.Mut[int], e lend.Exit[int, int]) lend.Flow[int, int] {
	return e.Continue(*a.Get() + *b.Get())
}

func sum3(a, b, c lend.Mut[int], e lend.Exit[int, int]) lend.Flow[int, int] {
	return e.Continue(*a.Get() + *b.Get() + *c.Get())
}

func sumAll(ps []lend.Mut[int], e lend.Exit[int, int]) lend.Flow[int, int] {
	n := 0
	for _, p := range ps {
		n += *p.Get()
	}
	return e.Continue(n)
}

func sameScope() {
	x, y := 1, 2
	a, b := lend.Own(&x), lend.Own(&y)
	lend.Run2(lend.Returning[int]().Shared(), &a, &b, sum)
}

func differentScopes() {
	x := 1
	a := lend.Own(&x)
	if x > 0 {
		y := 2
		b := lend.Own(&y)
		lend.Run2(lend.Returning[int](), &a, &b, sum)
		lend.Run2(lend.Returning[int]().Shared(), &a, &b, sum) // want `handles a and b have independent scopes and cannot share an output scope in Run2`
	}
}

func siteVariable() {
	site := lend.Returning[int]().Shared()
	x, y, z := 1, 2, 3
	a, b := lend.Own(&x), lend.Own(&y)
	for range 1 {
		c := lend.Own(&z)
		lend.Run3(site, &a, &b, &c, sum3)                   // want `handles a and c have independent scopes and cannot share an output scope in Run3`
		lend.RunAll(site, []lend.Mut[int]{a, b, c}, sumAll) // want `handles a and c have independent scopes and cannot share an output scope in RunAll`
		lend.RunAll(site, []lend.Mut[int]{a, b}, sumAll)
	}
}

func distinctLifetimes(a, b lend.Mut[int]) { // want distinctLifetimes:`consumes\[0 1\]`
	lend.Run2(lend.Returning[struct{}]().Shared(), &a, &b, func(x, y lend.Mut[int], e lend.Exit[struct{}, struct{}]) lend.Flow[struct{}, struct{}] { // want `handles a and b have independent scopes and cannot share an output scope in Run2`
		if *x.Get() == *y.Get() {
			return e.Return(struct{}{})
		}
		return e.Continue(struct{}{})
	})
}

func commonAncestor(c *lend.Scope, a, b lend.Mut[int]) { // want commonAncestor:`consumes\[1 2\]`
	lend.Run2(lend.Returning[struct{}]().Shared(), &a, &b, func(x, y lend.Mut[int], e lend.Exit[struct{}, struct{}]) lend.Flow[struct{}, struct{}] { // want `handles a and b have independent scopes and cannot share an output scope in Run2`
		if *x.Get() < *y.Get() {
			return e.Return(struct{}{})
		}
		return e.Continue(struct{}{})
	})
}

func commonAncestorBorrowedReturn(c *lend.Scope, a, b lend.Mut[int]) lend.Mut[int] { // want commonAncestorBorrowedReturn:`consumes\[1 2\]`
	f := lend.Run2(lend.Returning[lend.Mut[int]]().Shared(), &a, &b, func(x, y lend.Mut[int], e lend.Exit[lend.Mut[int], struct{}]) lend.Flow[lend.Mut[int], struct{}] { // want `handles a and b have independent scopes and cannot share an output scope in Run2`
		if *x.Get() < *y.Get() {
			return e.Return(x)
		}
		return e.Continue(struct{}{})
	})
	if r, ok := f.Break(); ok {
		return r
	}
	return b
}

func paramAndLocal(a lend.Mut[int]) { // want paramAndLocal:`consumes\[0\]`
	y := 2
	b := lend.Own(&y)
	lend.Run2(lend.Returning[int]().Shared(), &a, &b, sum) // want `handles a and b have independent scopes and cannot share an output scope in Run2`
}

type handles struct{ a, b lend.Mut[int] }

func fields() {
	x, y := 1, 2
	var s handles
	s.a, s.b = lend.Own(&x), lend.Own(&y)
	lend.Run2(lend.Returning[int]().Shared(), &s.a, &s.b, sum)

	var arr [2]lend.Mut[int]
	arr[0], arr[1] = lend.Own(&x), lend.Own(&y)
	lend.Run2(lend.Returning[int]().Shared(), &arr[0], &arr[1], sum)
}

func indirect(p *handles, xs []lend.Mut[int]) {
	lend.Run2(lend.Returning[int]().Shared(), &p.a, &p.b, sum)     // want `cannot verify the scope of handle p.a shared in Run2`
	lend.Run2(lend.Returning[int]().Shared(), &xs[0], &xs[1], sum) // want `cannot verify the scope of handle xs\[0\] shared in Run2`

	pa := &p.a
	lend.Run2(lend.Returning[int]().Shared(), pa, &p.b, sum) // want `cannot verify the scope of handle \*pa shared in Run2`
	lend.RunAll(lend.Returning[int]().Shared(), xs, sumAll)  // want `cannot verify the scopes of the handles in xs shared in RunAll`
}

func localSlice() {
	x, y := 1, 2
	hs := []lend.Mut[int]{lend.Own(&x), lend.Own(&y)}
	lend.RunAll(lend.Returning[int]().Shared(), hs, sumAll)
}
