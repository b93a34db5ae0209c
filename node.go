// Copyright (c) 2026 G. Delzanno
//
// MIT License

package bdd

// vertex is the internal representation of a node of a BDD. A vertex is
// never mutated after creation, which is what makes structural sharing safe
// without synchronization on reads.
type vertex struct {
	id    uint64 // Unique identifier, assigned at creation and never reused
	level int32  // Order of the variable tested by this vertex
	low   Node   // Branch taken when the variable is false
	high  Node   // Branch taken when the variable is true
}

// Node is a reference to a vertex of a BDD. It represents the atomic unit of
// interactions and computations within a BDD. A nil Node marks the result of
// a failed operation; see the Error method of BDD.
type Node *vertex

// Identifiers of the two constant vertices. Constants always have the
// highest level (equal to Varnum), so that level comparisons during a meld
// need no special case for them.
const (
	trueid  uint64 = 0
	falseid uint64 = 1
)

func isconst(n Node) bool { return n.id < 2 }

func istrue(n Node) bool { return n.id == trueid }

func isfalse(n Node) bool { return n.id == falseid }

// constval returns the truth value (0 or 1) denoted by a constant vertex.
// Identifiers cannot be used directly as truth values since True has
// identifier 0.
func constval(n Node) int {
	if n.id == trueid {
		return 1
	}
	return 0
}
