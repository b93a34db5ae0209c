// Copyright (c) 2026 G. Delzanno
//
// MIT License

package bdd

import (
	"fmt"

	"go.uber.org/zap"
)

// _MAXVAR is the maximal number of levels in a BDD. We use only the first 21
// bits for encoding levels, like in the BuDDy library.
const _MAXVAR int32 = 0x1FFFFF

// _DEFAULTCACHESIZE is the default initial number of entries in each
// operation cache.
const _DEFAULTCACHESIZE int = 10000

// BDD bundles everything needed to build and combine diagrams over one
// fixed variable order: the unicity table, the identifier counter, the
// literal for each variable, and the operation caches. A BDD is initialized
// once with New and never reset; mixing nodes from two different BDD values
// is a caller error with undefined semantics.
type BDD struct {
	varnum    int32     // number of variables
	varset    [][2]Node // positive and negative literal for each variable
	nextid    uint64    // identifier reserved for the next candidate vertex
	produced  int       // total number of vertices ever interned
	cachesize int       // initial size of the operation caches
	one       Node      // constant true, identifier 0
	zero      Node      // constant false, identifier 1
	unique    *unique   // unicity table

	applymemo [opCount]*memo
	applyops  [opCount]func(x, y Node) Node
	notmemo   *memo1
	notop     func(Node) Node
	itememo   *memo3
	iteop     func(f, g, h Node) Node
	existmemo *memo
	existop   func(n, varset Node) Node
	appexmemo [OPnand + 1]*memo3
	appexops  [OPnand + 1]func(left, right, varset Node) Node

	logger *zap.Logger
	error  // error status, to help chain operations
}

// New initializes a BDD with varnum variables, ordered by their index. The
// options are described with the configuration functions Nodesize,
// Cachesize and Logger.
func New(varnum int, options ...func(*configs)) (*BDD, error) {
	if varnum < 1 || int32(varnum) > _MAXVAR {
		return nil, fmt.Errorf("bad number of variables (%d)", varnum)
	}
	c := makeconfigs(varnum)
	for _, f := range options {
		f(c)
	}
	b := &BDD{
		varnum:    int32(varnum),
		nextid:    2,
		cachesize: c.cachesize,
		unique:    newunique(c.nodesize),
		logger:    c.logger,
	}
	// The two constants are immortal and are never interned. Their branches
	// point back to themselves so that walks need no special case.
	b.one = &vertex{id: trueid, level: b.varnum}
	b.one.low, b.one.high = b.one, b.one
	b.zero = &vertex{id: falseid, level: b.varnum}
	b.zero.low, b.zero.high = b.zero, b.zero
	b.cacheinit()
	// The literals are held by varset for the lifetime of the BDD, so they
	// are never reclaimed.
	b.varset = make([][2]Node, varnum)
	for k := int32(0); k < b.varnum; k++ {
		b.varset[k] = [2]Node{b.makenode(k, b.zero, b.one), b.makenode(k, b.one, b.zero)}
	}
	b.logger.Debug("bdd initialized",
		zap.Int("varnum", varnum),
		zap.Int("nodesize", c.nodesize),
		zap.Int("cachesize", c.cachesize))
	return b, nil
}

// makenode is the sole constructor of internal vertices. It implements the
// two halves of canonicalization: reduction, when both branches denote the
// same function, and interning through the unicity table. The identifier
// counter advances only when the candidate is accepted, which keeps
// identifiers dense.
//
// The caller must guarantee that level strictly precedes the levels of low
// and high; the exported MakeNode checks this.
func (b *BDD) makenode(level int32, low, high Node) Node {
	if low == nil || high == nil {
		return nil
	}
	if low.id == high.id {
		return low
	}
	v := &vertex{id: b.nextid, level: level, low: low, high: high}
	res := b.unique.merge(v)
	if res == Node(v) {
		b.nextid++
		b.produced++
	}
	return res
}

// MakeNode returns the canonical reduced vertex testing variable v, with
// low the branch taken when v is false and high the one taken when it is
// true. Both branches must test strictly greater variables only; violating
// this ordering precondition sets the error status of the BDD and returns
// nil, since a silently unordered diagram would be unsound.
func (b *BDD) MakeNode(v int, low, high Node) Node {
	if b.checkptr(low) != nil {
		return b.seterror("wrong low branch in call to MakeNode (variable %d)", v)
	}
	if b.checkptr(high) != nil {
		return b.seterror("wrong high branch in call to MakeNode (variable %d)", v)
	}
	if v < 0 || int32(v) >= b.varnum {
		return b.seterror("unknown variable (%d) in call to MakeNode", v)
	}
	if int32(v) >= low.level || int32(v) >= high.level {
		return b.seterror("ordering violation in MakeNode: variable %d does not strictly precede its branches (%d, %d)", v, low.level, high.level)
	}
	return b.makenode(int32(v), low, high)
}

// Ithvar returns a node representing the i'th variable on success,
// otherwise we set the error status in the BDD and return the constant
// false. The requested variable must be in the range [0..Varnum).
func (b *BDD) Ithvar(i int) Node {
	if i < 0 || int32(i) >= b.varnum {
		b.seterror("unknown variable (%d) in call to Ithvar", i)
		return b.zero
	}
	return b.varset[i][0]
}

// NIthvar returns a node representing the negation of the i'th variable on
// success. See Ithvar for further info.
func (b *BDD) NIthvar(i int) Node {
	if i < 0 || int32(i) >= b.varnum {
		return b.seterror("unknown variable (%d) in call to NIthvar", i)
	}
	return b.varset[i][1]
}

// Varnum returns the number of defined variables.
func (b *BDD) Varnum() int {
	return int(b.varnum)
}

// Label returns the variable (index) tested by node n. We set the BDD to
// its error state and return -1 if we try to access a constant node.
func (b *BDD) Label(n Node) int {
	if b.checkptr(n) != nil {
		b.seterror("illegal access to node in call to Label")
		return -1
	}
	if isconst(n) {
		b.seterror("try to access label of constant node")
		return -1
	}
	return int(n.level)
}

// Low returns the false branch of node n, or nil if there is an error.
func (b *BDD) Low(n Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror("illegal access to node in call to Low")
	}
	return n.low
}

// High returns the true branch of node n.
func (b *BDD) High(n Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror("illegal access to node in call to High")
	}
	return n.high
}
