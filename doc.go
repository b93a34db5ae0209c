// Copyright (c) 2026 G. Delzanno
//
// MIT License

/*
Package bdd provides a hash-consed implementation of Reduced Ordered Binary
Decision Diagrams (BDD), a data structure used to efficiently represent
Boolean functions over a fixed set of variables or, equivalently, sets of
Boolean vectors with a fixed size.

# Basics

Each BDD has a fixed number of variables, Varnum, declared when it is
initialized (with New) and each variable is represented by an (integer)
index in the interval [0..Varnum), called a level. The library supports the
creation of multiple BDD with possibly different numbers of variables.

Most operations over a BDD return a Node; that is a reference to a "vertex"
of the diagram that includes a variable level and the low and high branches
for this vertex. Every vertex carries a unique integer identifier, assigned
at creation and never reused, with the convention that 0 is the identifier
of the constant function True and 1 the identifier of False. Because
vertices are interned in a unicity table, two nodes that are alive at the
same time denote the same Boolean function exactly when they carry the same
identifier; this is what makes Equal a constant-time operation.

# Memoization

Binary operations are written in "open recursion" style: the body of an
operation receives the memoized version of itself and uses it for recursive
calls. Each operation owns a private cache keyed by the identifiers of its
operands, so the cost of an Apply is proportional to the number of distinct
pairs of sub-diagrams it can reach, not to the number of paths. The same
mechanism is available to user code through the Memoize method.

# Automatic memory management

The library is written in pure Go. The unicity table holds its entries
weakly: an interned vertex stays in the table for exactly as long as some
node, literal, or operation cache references it, and the entry is discarded
after the runtime reclaims the vertex. A structurally identical vertex
interned later receives a fresh identifier. Operation caches keep their
entries for the lifetime of the BDD; call ClearCaches to drop them and let
the vertices they retain be reclaimed.

A BDD and its caches are not safe for concurrent use. All diagrams are
immutable once constructed, so reads of Nodes can be shared freely.
*/
package bdd
