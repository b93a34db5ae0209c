// Copyright (c) 2026 G. Delzanno
//
// MIT License

package bdd

// Operation caches. Each memoized operation owns a private cache keyed by
// the identifiers of its operands; identifiers already encode canonical
// identity, so key comparison never inspects the diagrams themselves.
// Caches grow unbounded until ClearCaches reinitializes them: shrinking a
// cache in the middle of an operation could recompute a sub-result without
// resharing it and lose the asymptotic guarantee of the meld.

// memo is the cache behind one binary operation.
type memo struct {
	table  map[[2]uint64]Node
	hits   int
	misses int
}

func newmemo(size int) *memo {
	return &memo{table: make(map[[2]uint64]Node, size)}
}

// memo1 is the cache behind one unary operation.
type memo1 struct {
	table  map[uint64]Node
	hits   int
	misses int
}

func newmemo1(size int) *memo1 {
	return &memo1{table: make(map[uint64]Node, size)}
}

// memo3 is the cache behind one ternary operation.
type memo3 struct {
	table  map[[3]uint64]Node
	hits   int
	misses int
}

func newmemo3(size int) *memo3 {
	return &memo3{table: make(map[[3]uint64]Node, size)}
}

// openbin is the type of binary operation bodies written in open-recursion
// style: the body receives the memoized version of itself and must use it
// for every recursive call, so that sub-results are shared regardless of
// traversal order.
type openbin func(self func(x, y Node) Node, x, y Node) Node

type openun func(self func(n Node) Node, n Node) Node

type openter func(self func(x, y, z Node) Node, x, y, z Node) Node

// tie closes an open-recursive body over a private cache and returns the
// memoized operation. A cache hit returns immediately without calling the
// body. A nil operand, the mark of an upstream error, propagates without
// being cached.
func tie(m *memo, f openbin) func(x, y Node) Node {
	var g func(x, y Node) Node
	g = func(x, y Node) Node {
		if x == nil || y == nil {
			return nil
		}
		key := [2]uint64{x.id, y.id}
		if res, ok := m.table[key]; ok {
			m.hits++
			return res
		}
		m.misses++
		res := f(g, x, y)
		if res != nil {
			m.table[key] = res
		}
		return res
	}
	return g
}

func tie1(m *memo1, f openun) func(n Node) Node {
	var g func(n Node) Node
	g = func(n Node) Node {
		if n == nil {
			return nil
		}
		if res, ok := m.table[n.id]; ok {
			m.hits++
			return res
		}
		m.misses++
		res := f(g, n)
		if res != nil {
			m.table[n.id] = res
		}
		return res
	}
	return g
}

func tie3(m *memo3, f openter) func(x, y, z Node) Node {
	var g func(x, y, z Node) Node
	g = func(x, y, z Node) Node {
		if x == nil || y == nil || z == nil {
			return nil
		}
		key := [3]uint64{x.id, y.id, z.id}
		if res, ok := m.table[key]; ok {
			m.hits++
			return res
		}
		m.misses++
		res := f(g, x, y, z)
		if res != nil {
			m.table[key] = res
		}
		return res
	}
	return g
}

// OpenBinary is a binary operation over diagrams written in open-recursion
// style, for use with Memoize. The body receives the memoized version of
// itself as self and must call it, not itself, to recurse.
type OpenBinary func(self func(left, right Node) Node, left, right Node) Node

// Memoize returns a memoized version of f backed by a fresh private cache
// that lives as long as the returned function. Every distinct operation
// needs its own Memoize call: caches are keyed on operand identifiers only
// and would otherwise mix the results of different operations.
func (b *BDD) Memoize(f OpenBinary) func(left, right Node) Node {
	g := tie(newmemo(b.cachesize), openbin(f))
	return func(left, right Node) Node {
		if b.checkptr(left) != nil {
			return b.seterror("wrong left operand in call to a memoized operation")
		}
		if b.checkptr(right) != nil {
			return b.seterror("wrong right operand in call to a memoized operation")
		}
		return g(left, right)
	}
}

// cacheinit builds the operation caches and ties each operation body to its
// own. It is called at initialization and by ClearCaches.
func (b *BDD) cacheinit() {
	for op := OPand; op < opCount; op++ {
		m := newmemo(b.cachesize)
		b.applymemo[op] = m
		b.applyops[op] = tie(m, b.applybody(op))
	}
	b.notmemo = newmemo1(b.cachesize)
	b.notop = tie1(b.notmemo, b.notbody)
	b.itememo = newmemo3(b.cachesize)
	b.iteop = tie3(b.itememo, b.itebody)
	b.existmemo = newmemo(b.cachesize)
	b.existop = tie(b.existmemo, b.existbody)
	for op := OPand; op <= OPnand; op++ {
		m := newmemo3(b.cachesize)
		b.appexmemo[op] = m
		b.appexops[op] = tie3(m, b.appexbody(op))
	}
}

// cachestats sums hits and misses over all operation caches.
func (b *BDD) cachestats() (hits, misses int) {
	for _, m := range b.applymemo {
		hits += m.hits
		misses += m.misses
	}
	hits += b.notmemo.hits + b.existmemo.hits + b.itememo.hits
	misses += b.notmemo.misses + b.existmemo.misses + b.itememo.misses
	for _, m := range b.appexmemo {
		hits += m.hits
		misses += m.misses
	}
	return hits, misses
}
