// Copyright (c) 2026 G. Delzanno
//
// MIT License

package bdd

import "go.uber.org/zap"

// configs is used to store the values of the different parameters of the
// BDD.
type configs struct {
	varnum    int         // number of BDD variables
	nodesize  int         // initial capacity of the unicity table
	cachesize int         // initial number of entries in the operation caches
	logger    *zap.Logger // structured logger, no-op by default
}

func makeconfigs(varnum int) *configs {
	// we reserve enough entries to hold the two literals of each variable
	return &configs{
		varnum:    varnum,
		nodesize:  2*varnum + 2,
		cachesize: _DEFAULTCACHESIZE,
		logger:    zap.NewNop(),
	}
}

// Nodesize is a configuration option (function). Used as a parameter in New
// it sets a preferred initial capacity for the unicity table. The table
// grows during computation; the initial capacity only avoids early
// rehashing on workloads whose size is known in advance. By default we make
// room for the two constants and the literals of each variable.
func Nodesize(size int) func(*configs) {
	return func(c *configs) {
		if size >= 2*c.varnum+2 {
			c.nodesize = size
		}
	}
}

// Cachesize is a configuration option (function). Used as a parameter in
// New it sets the initial number of entries in the operation caches. The
// default value is 10 000. Caches grow unbounded until ClearCaches is
// called; the initial size only affects allocation behavior.
func Cachesize(size int) func(*configs) {
	return func(c *configs) {
		if size > 0 {
			c.cachesize = size
		}
	}
}

// Logger is a configuration option (function). Used as a parameter in New
// it sets the structured logger of the BDD. The default logger discards
// everything.
func Logger(l *zap.Logger) func(*configs) {
	return func(c *configs) {
		if l != nil {
			c.logger = l
		}
	}
}
