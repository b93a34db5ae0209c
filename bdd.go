// Copyright (c) 2026 G. Delzanno
//
// MIT License

package bdd

import (
	"fmt"
)

// And returns the logical 'and' of a sequence of nodes.
func (b *BDD) And(n ...Node) Node {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return b.one
	}
	return b.Apply(n[0], b.And(n[1:]...), OPand)
}

// Or returns the logical 'or' of a sequence of nodes.
func (b *BDD) Or(n ...Node) Node {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return b.zero
	}
	return b.Apply(n[0], b.Or(n[1:]...), OPor)
}

// Xor returns the logical 'exclusive or' between two nodes. It is a
// primitive operator of Apply, not a composition of And, Or and Not.
func (b *BDD) Xor(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPxor)
}

// Imp returns the logical 'implication' between two nodes.
func (b *BDD) Imp(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPimp)
}

// Equiv returns the logical 'bi-implication' between two nodes.
func (b *BDD) Equiv(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPbiimp)
}

// AndExist returns the "relational composition" of two nodes with respect
// to varset, meaning the result of (Exist varset . n1 & n2).
func (b *BDD) AndExist(varset, n1, n2 Node) Node {
	return b.AppEx(n1, n2, OPand, varset)
}

// Equal tests equivalence between nodes. Two nodes that are alive at the
// same time denote the same Boolean function exactly when they carry the
// same identifier.
func (b *BDD) Equal(x, y Node) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	return x.id == y.id
}

// True returns the node for the constant true.
func (b *BDD) True() Node {
	return b.one
}

// False returns the node for the constant false.
func (b *BDD) False() Node {
	return b.zero
}

// From returns a (constant) node from a boolean value.
func (b *BDD) From(v bool) Node {
	if v {
		return b.one
	}
	return b.zero
}

// ClearCaches drops every operation cache. Cached results are the only
// internal references that keep vertices alive, so after a call the
// vertices that no client node reaches become eligible for reclamation and
// their entries leave the unicity table. Never call it from inside an
// Allsat or Allnodes callback.
func (b *BDD) ClearCaches() {
	b.cacheinit()
	b.logger.Debug("operation caches cleared")
}

// Stats returns information about the BDD: the number of vertices ever
// interned, the live entries of the unicity table, and the accumulated
// access, hit and miss counts of the table and of the operation caches.
func (b *BDD) Stats() string {
	live, access, hits, misses, reclaimed := b.unique.snapshot()
	res := fmt.Sprintf("Varnum:     %d\n", b.varnum)
	res += fmt.Sprintf("Produced:   %d\n", b.produced)
	res += fmt.Sprintf("Live:       %d\n", live)
	res += fmt.Sprintf("Reclaimed:  %d\n", reclaimed)
	res += "==============\n"
	res += fmt.Sprintf("Unique Access:  %d\n", access)
	res += fmt.Sprintf("Unique Hit:     %d\n", hits)
	res += fmt.Sprintf("Unique Miss:    %d\n", misses)
	ophits, opmisses := b.cachestats()
	res += fmt.Sprintf("Operator Hits:  %d\n", ophits)
	res += fmt.Sprintf("Operator Miss:  %d", opmisses)
	return res
}
