// Copyright (c) 2026 G. Delzanno
//
// MIT License

package bdd

import (
	"runtime"
	"sync"
	"weak"
)

// ukey is the structural description of a vertex used as key in the unicity
// table. Children appear through their identifiers only; lookup never
// compares diagrams recursively. The low and high fields are distinct map
// key components, so swapping the branches changes the key.
type ukey struct {
	level     int32
	low, high uint64
}

// unique is the unicity ("hash-consing") table. It associates a structural
// description with the canonical vertex carrying it. Entries are weak: the
// table does not by itself keep a vertex alive, and a cleanup registered on
// each interned vertex removes its entry once the runtime has reclaimed it.
//
// Cleanups run on a separate goroutine, hence the mutex. Everything else in
// a BDD is single-threaded.
type unique struct {
	mu        sync.Mutex
	table     map[ukey]weak.Pointer[vertex]
	access    int // lookups in the table
	hits      int // lookups that returned an existing vertex
	misses    int // lookups that stored the candidate
	reclaimed int // entries removed after their vertex was collected
}

func newunique(size int) *unique {
	return &unique{table: make(map[ukey]weak.Pointer[vertex], size)}
}

// merge returns the canonical vertex structurally equal to v if one is still
// alive, and stores v otherwise. The candidate must already carry a fresh
// identifier; the caller learns whether it was accepted by comparing the
// result against it.
func (u *unique) merge(v Node) Node {
	k := ukey{level: v.level, low: v.low.id, high: v.high.id}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.access++
	if w, ok := u.table[k]; ok {
		if res := w.Value(); res != nil {
			u.hits++
			return res
		}
		// The previous vertex for this key was reclaimed but its cleanup
		// has not run yet; the candidate takes over the entry.
	}
	u.misses++
	u.table[k] = weak.Make((*vertex)(v))
	runtime.AddCleanup((*vertex)(v), u.drop, k)
	return v
}

// drop removes the entry for k once its vertex has been reclaimed. A newer
// vertex may have taken over the key in the meantime, in which case the
// entry stays.
func (u *unique) drop(k ukey) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if w, ok := u.table[k]; ok && w.Value() == nil {
		delete(u.table, k)
		u.reclaimed++
	}
}

// all returns the vertices currently alive in the table, in no particular
// order.
func (u *unique) all() []Node {
	u.mu.Lock()
	defer u.mu.Unlock()
	res := make([]Node, 0, len(u.table))
	for _, w := range u.table {
		if v := w.Value(); v != nil {
			res = append(res, v)
		}
	}
	return res
}

func (u *unique) snapshot() (live, access, hits, misses, reclaimed int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.table), u.access, u.hits, u.misses, u.reclaimed
}
