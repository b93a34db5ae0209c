// Copyright (c) 2026 G. Delzanno
//
// MIT License

package bdd

import (
	"testing"
)

// directapply is a plain recursive rendition of Apply, without caches, used
// as an oracle for the memoized operations.
func directapply(b *BDD, op Operator, left, right Node) Node {
	if res, ok := b.applyterm(op, left, right); ok {
		return res
	}
	if isconst(left) && isconst(right) {
		return b.constnode(opres[op][constval(left)][constval(right)])
	}
	switch {
	case left.level == right.level:
		return b.makenode(left.level, directapply(b, op, left.low, right.low), directapply(b, op, left.high, right.high))
	case left.level < right.level:
		return b.makenode(left.level, directapply(b, op, left.low, right), directapply(b, op, left.high, right))
	default:
		return b.makenode(right.level, directapply(b, op, left, right.low), directapply(b, op, left, right.high))
	}
}

func nodecount(t *testing.T, b *BDD, n Node) int {
	acc := 0
	if err := b.Allnodes(func(id, level, low, high int) error {
		acc++
		return nil
	}, n); err != nil {
		t.Fatal(err)
	}
	return acc
}

// TestMemoizedMatchesDirect compares the memoized operations against the
// direct recursion over every pair of minterms and test formulas.
func TestMemoizedMatchesDirect(t *testing.T) {
	b, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	minterm := func(k int) Node {
		res := b.True()
		for v := 0; v < 4; v++ {
			if k&(1<<v) != 0 {
				res = b.And(res, b.Ithvar(v))
			} else {
				res = b.And(res, b.NIthvar(v))
			}
		}
		return res
	}
	funcs := testformulas(b)
	for k := 0; k < 16; k++ {
		funcs = append(funcs, minterm(k))
	}
	for _, op := range []Operator{OPand, OPor, OPxor, OPimp, OPdiff, OPbiimp} {
		for _, x := range funcs {
			for _, y := range funcs {
				if got, want := b.Apply(x, y, op), directapply(b, op, x, y); !b.Equal(got, want) {
					t.Fatalf("memoized %s differs from the direct recursion", op)
				}
			}
		}
	}
	if b.Errored() {
		t.Errorf("unexpected error status: %s", b.Error())
	}
}

// TestChainedXor builds a long chain of exclusive ors twice and checks that
// the second construction is answered entirely from the cache, then that
// combining the two canonical results only visits pairs of vertices.
func TestChainedXor(t *testing.T) {
	b, err := New(16)
	if err != nil {
		t.Fatal(err)
	}
	chain := func() Node {
		res := b.Ithvar(0)
		for i := 1; i < 16; i++ {
			res = b.Xor(res, b.Ithvar(i))
		}
		return res
	}
	x := chain()
	m := b.applymemo[OPxor]
	hits, misses := m.hits, m.misses
	y := chain()
	if m.misses != misses {
		t.Errorf("rebuilding an identical chain caused %d cache misses", m.misses-misses)
	}
	if m.hits != hits+15 {
		t.Errorf("rebuilding an identical chain should be pure cache hits (%d new hits)", m.hits-hits)
	}
	if !b.Equal(x, y) {
		t.Fatalf("two identical chains should share one diagram")
	}
	// x and !x share an aligned structure, so the conjunction stays linear
	// in the sizes of the operands
	z := b.Not(y)
	am := b.applymemo[OPand]
	misses = am.misses
	if res := b.And(x, z); !b.Equal(res, b.False()) {
		t.Fatalf("the conjunction of a function and its negation should be false")
	}
	if bound := nodecount(t, b, x) + nodecount(t, b, z); am.misses-misses > bound {
		t.Errorf("conjunction visited %d pairs, more than the %d bound", am.misses-misses, bound)
	}
}

// TestMemoize checks the contract of the public memoization engine: the
// body is never rerun on a cached pair, and each engine owns a private
// cache.
func TestMemoize(t *testing.T) {
	b, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	calls := 0
	myor := b.Memoize(func(self func(left, right Node) Node, left, right Node) Node {
		calls++
		switch {
		case b.Equal(left, b.True()) || b.Equal(right, b.True()):
			return b.True()
		case b.Equal(left, b.False()):
			return right
		case b.Equal(right, b.False()):
			return left
		case b.Equal(left, right):
			return left
		}
		switch {
		case b.Label(left) == b.Label(right):
			return b.MakeNode(b.Label(left), self(b.Low(left), b.Low(right)), self(b.High(left), b.High(right)))
		case b.Label(left) < b.Label(right):
			return b.MakeNode(b.Label(left), self(b.Low(left), right), self(b.High(left), right))
		default:
			return b.MakeNode(b.Label(right), self(left, b.Low(right)), self(left, b.High(right)))
		}
	})
	f := b.Or(b.And(b.Ithvar(0), b.Ithvar(2)), b.Ithvar(3))
	g := b.Xor(b.Ithvar(1), b.Ithvar(2))
	r1 := myor(f, g)
	if !b.Equal(r1, b.Or(f, g)) {
		t.Fatalf("memoized disjunction differs from Or")
	}
	done := calls
	r2 := myor(f, g)
	if calls != done {
		t.Errorf("the body ran again on a cached pair (%d extra calls)", calls-done)
	}
	if !b.Equal(r1, r2) {
		t.Errorf("cached result differs from the original")
	}
	// a second engine with the same operands must not see the first cache
	myand := b.Memoize(func(self func(left, right Node) Node, left, right Node) Node {
		switch {
		case b.Equal(left, b.False()) || b.Equal(right, b.False()):
			return b.False()
		case b.Equal(left, b.True()):
			return right
		case b.Equal(right, b.True()):
			return left
		case b.Equal(left, right):
			return left
		}
		switch {
		case b.Label(left) == b.Label(right):
			return b.MakeNode(b.Label(left), self(b.Low(left), b.Low(right)), self(b.High(left), b.High(right)))
		case b.Label(left) < b.Label(right):
			return b.MakeNode(b.Label(left), self(b.Low(left), right), self(b.High(left), right))
		default:
			return b.MakeNode(b.Label(right), self(left, b.Low(right)), self(left, b.High(right)))
		}
	})
	if !b.Equal(myand(f, g), b.And(f, g)) {
		t.Errorf("caches are shared across memoized operations")
	}
	if res := myor(nil, f); res != nil || !b.Errored() {
		t.Errorf("a memoized operation should reject nil operands")
	}
}
