// Copyright (c) 2026 G. Delzanno
//
// MIT License

package bdd

import (
	"fmt"
	"math/big"
)

// constnode returns the constant vertex for a truth value.
func (b *BDD) constnode(v int) Node {
	if v == 1 {
		return b.one
	}
	return b.zero
}

// Apply performs all of the basic binary operations on BDD nodes, such as
// AND, OR etc. Left and right are the operands and op is the requested
// operation and must be one of the following:
//
//	Identifier    Description          Truth table
//
//	OPand         logical and          [0,0,0,1]
//	OPxor         logical xor          [0,1,1,0]
//	OPor          logical or           [0,1,1,1]
//	OPnand        logical not-and      [1,1,1,0]
//	OPnor         logical not-or       [1,0,0,0]
//	OPimp         implication          [1,1,0,1]
//	OPbiimp       equivalence          [1,0,0,1]
//	OPdiff        set difference       [0,0,1,0]
//	OPless        less than            [0,1,0,0]
//	OPinvimp      reverse implication  [1,0,1,1]
//
// Each operator is memoized in its own private cache.
func (b *BDD) Apply(left Node, right Node, op Operator) Node {
	if op < OPand || op >= opCount {
		return b.seterror("unauthorized operation (%s) in call to Apply", op)
	}
	if b.checkptr(left) != nil {
		return b.seterror("wrong left operand in call to Apply %s", op)
	}
	if b.checkptr(right) != nil {
		return b.seterror("wrong right operand in call to Apply %s", op)
	}
	return b.applyops[op](left, right)
}

// applyterm lists the absorbing and identity cases of each operator. These
// must be checked before consulting the variable order, both to terminate
// the recursion at the diagram boundary and because a constant operand has
// no variable to compare.
func (b *BDD) applyterm(op Operator, left, right Node) (Node, bool) {
	switch op {
	case OPand:
		if left.id == right.id {
			return left, true
		}
		if isfalse(left) || isfalse(right) {
			return b.zero, true
		}
		if istrue(left) {
			return right, true
		}
		if istrue(right) {
			return left, true
		}
	case OPor:
		if left.id == right.id {
			return left, true
		}
		if istrue(left) || istrue(right) {
			return b.one, true
		}
		if isfalse(left) {
			return right, true
		}
		if isfalse(right) {
			return left, true
		}
	case OPxor:
		if left.id == right.id {
			return b.zero, true
		}
		if isfalse(left) {
			return right, true
		}
		if isfalse(right) {
			return left, true
		}
	case OPnand:
		if isfalse(left) || isfalse(right) {
			return b.one, true
		}
	case OPnor:
		if istrue(left) || istrue(right) {
			return b.zero, true
		}
	case OPimp:
		if isfalse(left) {
			return b.one, true
		}
		if istrue(left) {
			return right, true
		}
		if istrue(right) {
			return b.one, true
		}
		if left.id == right.id {
			return b.one, true
		}
	case OPbiimp:
		if left.id == right.id {
			return b.one, true
		}
		if istrue(left) {
			return right, true
		}
		if istrue(right) {
			return left, true
		}
	case OPdiff:
		if left.id == right.id {
			return b.zero, true
		}
		if istrue(right) || isfalse(left) {
			return b.zero, true
		}
		if isfalse(right) {
			return left, true
		}
	case OPless:
		if left.id == right.id {
			return b.zero, true
		}
		if istrue(left) || isfalse(right) {
			return b.zero, true
		}
		if isfalse(left) {
			return right, true
		}
	case OPinvimp:
		if isfalse(right) {
			return b.one, true
		}
		if istrue(right) {
			return left, true
		}
		if istrue(left) {
			return b.one, true
		}
		if left.id == right.id {
			return b.one, true
		}
	}
	return nil, false
}

// applybody returns the open-recursive body of Apply for one operator:
// terminal cases first, then Shannon expansion on the smallest level of the
// two operands, melded back with makenode.
func (b *BDD) applybody(op Operator) openbin {
	return func(self func(x, y Node) Node, left, right Node) Node {
		if res, ok := b.applyterm(op, left, right); ok {
			return res
		}
		if isconst(left) && isconst(right) {
			return b.constnode(opres[op][constval(left)][constval(right)])
		}
		switch {
		case left.level == right.level:
			return b.makenode(left.level, self(left.low, right.low), self(left.high, right.high))
		case left.level < right.level:
			return b.makenode(left.level, self(left.low, right), self(left.high, right))
		default:
			return b.makenode(right.level, self(left, right.low), self(left, right.high))
		}
	}
}

// Not returns the negation (!n) of expression n. It negates a diagram by
// exchanging all references to the zero-terminal with references to the
// one-terminal and vice versa.
func (b *BDD) Not(n Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror("wrong operand in call to Not")
	}
	return b.notop(n)
}

func (b *BDD) notbody(self func(n Node) Node, n Node) Node {
	if istrue(n) {
		return b.zero
	}
	if isfalse(n) {
		return b.one
	}
	return b.makenode(n.level, self(n.low), self(n.high))
}

// Ite, short for if-then-else operator, computes the BDD for the expression
// [(f & g) | (!f & h)] more efficiently than doing the three operations
// separately.
func (b *BDD) Ite(f, g, h Node) Node {
	if b.checkptr(f) != nil {
		return b.seterror("wrong operand in call to Ite (f)")
	}
	if b.checkptr(g) != nil {
		return b.seterror("wrong operand in call to Ite (g)")
	}
	if b.checkptr(h) != nil {
		return b.seterror("wrong operand in call to Ite (h)")
	}
	return b.iteop(f, g, h)
}

// itelow returns n if p is strictly higher than q or r, otherwise it
// returns n.low. This is used in the ite body to know which node to follow:
// we always follow the smallest node(s).
func itelow(p, q, r int32, n Node) Node {
	if p > q || p > r {
		return n
	}
	return n.low
}

func itehigh(p, q, r int32, n Node) Node {
	if p > q || p > r {
		return n
	}
	return n.high
}

// min3 returns the smallest value between p, q and r.
func min3(p, q, r int32) int32 {
	if p <= q {
		if p <= r { // p <= q && p <= r
			return p
		}
		return r // r < p <= q
	}
	if q <= r { // q < p && q <= r
		return q
	}
	return r // r < q < p
}

func (b *BDD) itebody(self func(f, g, h Node) Node, f, g, h Node) Node {
	switch {
	case istrue(f):
		return g
	case isfalse(f):
		return h
	case g.id == h.id:
		return g
	case istrue(g) && isfalse(h):
		return f
	case isfalse(g) && istrue(h):
		return b.notop(f)
	}
	p, q, r := f.level, g.level, h.level
	low := self(itelow(p, q, r, f), itelow(q, p, r, g), itelow(r, p, q, h))
	high := self(itehigh(p, q, r, f), itehigh(q, p, r, g), itehigh(r, p, q, h))
	return b.makenode(min3(p, q, r), low, high)
}

// Exist returns the existential quantification of n for the variables in
// varset, where varset is a node built with a method such as Makeset.
func (b *BDD) Exist(n, varset Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror("wrong node in call to Exist")
	}
	if b.checkptr(varset) != nil {
		return b.seterror("wrong varset in call to Exist")
	}
	return b.existop(n, varset)
}

// existbody quantifies the cube varset out of n. Results are memoized on
// the pair (n, varset), so the cache can safely serve every varset.
func (b *BDD) existbody(self func(n, varset Node) Node, n, varset Node) Node {
	if isconst(n) || isconst(varset) {
		return n
	}
	if varset.level < n.level {
		// the quantified variable cannot occur in n: levels are strictly
		// increasing along every path
		return self(n, varset.high)
	}
	if varset.level == n.level {
		return b.applyops[OPor](self(n.low, varset.high), self(n.high, varset.high))
	}
	return b.makenode(n.level, self(n.low, varset), self(n.high, varset))
}

// AppEx applies the binary operator op on the two operands left and right
// then performs an existential quantification over the variables in varset,
// where varset is a node computed with an operation such as Makeset. This
// is done in a bottom up manner such that both the apply and the
// quantification are done on the lower nodes before stepping up to the
// higher nodes. This makes AppEx much more efficient than an Apply
// operation followed by a quantification. Note that, when op is a
// conjunction, this operation returns the relational product of two BDDs.
//
// Only operators OPand to OPnand are supported.
func (b *BDD) AppEx(left Node, right Node, op Operator, varset Node) Node {
	if op < OPand || op > OPnand {
		return b.seterror("operator %s not supported in call to AppEx", op)
	}
	if b.checkptr(varset) != nil {
		return b.seterror("wrong varset in call to AppEx")
	}
	if b.checkptr(left) != nil {
		return b.seterror("wrong left operand in call to AppEx %s", op)
	}
	if b.checkptr(right) != nil {
		return b.seterror("wrong right operand in call to AppEx %s", op)
	}
	if isconst(varset) {
		// empty set of variables: a plain Apply
		return b.applyops[op](left, right)
	}
	return b.appexops[op](left, right, varset)
}

func (b *BDD) appexbody(op Operator) openter {
	return func(self func(x, y, z Node) Node, left, right, varset Node) Node {
		if isconst(varset) {
			return b.applyops[op](left, right)
		}
		// operator short circuits, before looking at the variable order;
		// one remaining operand still has to be quantified
		switch op {
		case OPand:
			if isfalse(left) || isfalse(right) {
				return b.zero
			}
			if left.id == right.id || istrue(right) {
				return b.existop(left, varset)
			}
			if istrue(left) {
				return b.existop(right, varset)
			}
		case OPor:
			if istrue(left) || istrue(right) {
				return b.one
			}
			if left.id == right.id || isfalse(right) {
				return b.existop(left, varset)
			}
			if isfalse(left) {
				return b.existop(right, varset)
			}
		case OPxor:
			if left.id == right.id {
				return b.zero
			}
			if isfalse(left) {
				return b.existop(right, varset)
			}
			if isfalse(right) {
				return b.existop(left, varset)
			}
		case OPnand:
			if isfalse(left) || isfalse(right) {
				return b.one
			}
		}
		if isconst(left) && isconst(right) {
			return b.constnode(opres[op][constval(left)][constval(right)])
		}
		m := min(left.level, right.level)
		if varset.level < m {
			// the quantified variable occurs in neither operand
			return self(left, right, varset.high)
		}
		llow, lhigh := left, left
		if left.level == m {
			llow, lhigh = left.low, left.high
		}
		rlow, rhigh := right, right
		if right.level == m {
			rlow, rhigh = right.low, right.high
		}
		if varset.level == m {
			return b.applyops[OPor](self(llow, rlow, varset.high), self(lhigh, rhigh, varset.high))
		}
		return b.makenode(m, self(llow, rlow, varset), self(lhigh, rhigh, varset))
	}
}

// Makeset returns a node corresponding to the conjunction (the cube) of all
// the variables in varset, in their positive form. It is such that
// Scanset(Makeset(a)) == a. It returns the constant false and sets the
// error condition in b if one of the variables is outside the scope of the
// BDD (see documentation for function Ithvar).
func (b *BDD) Makeset(varset []int) Node {
	res := b.one
	for _, level := range varset {
		tmp := b.Apply(res, b.Ithvar(level), OPand)
		if b.error != nil {
			return b.zero
		}
		res = tmp
	}
	return res
}

// Scanset returns the set of variables (levels) found when following the
// high branch of node n. This is the dual of function Makeset. The result
// may be nil if there is an error and it is empty if n is constant.
func (b *BDD) Scanset(n Node) []int {
	if b.checkptr(n) != nil {
		return nil
	}
	if isconst(n) {
		return nil
	}
	res := []int{}
	for ; !isconst(n); n = n.high {
		res = append(res, int(n.level))
	}
	return res
}

// Satcount computes the number of satisfying variable assignments for the
// function denoted by n. We return a result using arbitrary-precision
// arithmetic to avoid possible overflows. The result is zero (and we set
// the error flag of b) if there is an error.
func (b *BDD) Satcount(n Node) *big.Int {
	res := big.NewInt(0)
	if b.checkptr(n) != nil {
		b.seterror("wrong operand in call to Satcount")
		return res
	}
	// We compute 2^level with a bit shift
	res.SetBit(res, int(n.level), 1)
	satc := make(map[uint64]*big.Int)
	return res.Mul(res, b.satcount(n, satc))
}

func (b *BDD) satcount(n Node, satc map[uint64]*big.Int) *big.Int {
	if isconst(n) {
		return big.NewInt(int64(constval(n)))
	}
	// we use satc to memoize the value of satcount for each vertex
	if res, ok := satc[n.id]; ok {
		return res
	}
	res := big.NewInt(0)
	two := big.NewInt(0)
	two.SetBit(two, int(n.low.level-n.level-1), 1)
	res.Add(res, two.Mul(two, b.satcount(n.low, satc)))
	two = big.NewInt(0)
	two.SetBit(two, int(n.high.level-n.level-1), 1)
	res.Add(res, two.Mul(two, b.satcount(n.high, satc)))
	satc[n.id] = res
	return res
}

// Allsat iterates through all legal variable assignments for n and calls
// the function f on each of them. We pass an int slice of length Varnum to
// f where each entry is either 0 if the variable is false, 1 if it is true,
// and -1 if it is a don't care. We stop and return an error if f returns an
// error at some point.
//
// The following is an example of a callback handler that counts the number
// of assignments (such that we do not count don't cares twice):
//
//	acc := new(int)
//	b.Allsat(n, func(varset []int) error {
//		*acc++
//		return nil
//	})
func (b *BDD) Allsat(n Node, f func([]int) error) error {
	if b.checkptr(n) != nil {
		return fmt.Errorf("wrong node in call to Allsat")
	}
	prof := make([]int, b.varnum)
	for k := range prof {
		prof[k] = -1
	}
	return b.allsat(n, prof, f)
}

func (b *BDD) allsat(n Node, prof []int, f func([]int) error) error {
	if istrue(n) {
		return f(prof)
	}
	if isfalse(n) {
		return nil
	}
	if low := n.low; !isfalse(low) {
		prof[n.level] = 0
		for v := low.level - 1; v > n.level; v-- {
			prof[v] = -1
		}
		if err := b.allsat(low, prof, f); err != nil {
			return err
		}
	}
	if high := n.high; !isfalse(high) {
		prof[n.level] = 1
		for v := high.level - 1; v > n.level; v-- {
			prof[v] = -1
		}
		if err := b.allsat(high, prof, f); err != nil {
			return err
		}
	}
	return nil
}

// Allnodes applies function f over all the vertices accessible from the
// nodes in the sequence n..., or all the live vertices of the BDD if n is
// absent. The parameters to f are the id, level, and ids of the low and
// high branches of each vertex. The two constant nodes (True and False)
// always have the ids 0 and 1 respectively.
//
// The order in which vertices are visited is not specified. Like with
// Allsat, we stop the computation and return an error if f returns an error
// at some point.
func (b *BDD) Allnodes(f func(id, level, low, high int) error, n ...Node) error {
	for _, v := range n {
		if b.checkptr(v) != nil {
			return fmt.Errorf("wrong node in call to Allnodes")
		}
	}
	if err := f(int(trueid), int(b.varnum), int(trueid), int(trueid)); err != nil {
		return err
	}
	if err := f(int(falseid), int(b.varnum), int(falseid), int(falseid)); err != nil {
		return err
	}
	if len(n) == 0 {
		for _, v := range b.unique.all() {
			if err := f(int(v.id), int(v.level), int(v.low.id), int(v.high.id)); err != nil {
				return err
			}
		}
		return nil
	}
	seen := make(map[uint64]bool)
	var walk func(v Node) error
	walk = func(v Node) error {
		if isconst(v) || seen[v.id] {
			return nil
		}
		seen[v.id] = true
		if err := f(int(v.id), int(v.level), int(v.low.id), int(v.high.id)); err != nil {
			return err
		}
		if err := walk(v.low); err != nil {
			return err
		}
		return walk(v.high)
	}
	for _, v := range n {
		if err := walk(v); err != nil {
			return err
		}
	}
	return nil
}

// Eval returns the value of the function denoted by n under the given
// assignment, which must bind every variable of the BDD. We return false
// and set the error flag of b if the assignment is too short.
func (b *BDD) Eval(n Node, assignment []bool) bool {
	if b.checkptr(n) != nil {
		b.seterror("wrong node in call to Eval")
		return false
	}
	if len(assignment) < int(b.varnum) {
		b.seterror("assignment too short in call to Eval (%d < %d)", len(assignment), b.varnum)
		return false
	}
	for !isconst(n) {
		if assignment[n.level] {
			n = n.high
		} else {
			n = n.low
		}
	}
	return istrue(n)
}
