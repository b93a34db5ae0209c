// Copyright (c) 2026 G. Delzanno
//
// MIT License

package bdd

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	errNilNode  = errors.New("nil node")
	errWrongBDD = errors.New("node does not belong to this BDD")
)

// Error returns the error status of the BDD. We return an empty string if
// there are no errors.
func (b *BDD) Error() string {
	if b.error == nil {
		return ""
	}
	return b.error.Error()
}

// Errored returns true if there was an error during a computation.
func (b *BDD) Errored() bool {
	return b.error != nil
}

// seterror accumulates a contract violation on the error status of the BDD
// and returns nil, the Node marking a failed operation. The nil result
// propagates through subsequent operations, so a whole chain of calls can
// be checked once at the end.
func (b *BDD) seterror(format string, a ...interface{}) Node {
	err := fmt.Errorf(format, a...)
	b.error = multierr.Append(b.error, err)
	b.logger.Error("bdd contract violation", zap.Error(err))
	return nil
}

// checkptr tests the validity of an operand. Nodes built under a BDD with
// more variables than this one are rejected; mixing diagrams built under
// two different variable orders of the same length cannot be detected and
// remains a caller obligation.
func (b *BDD) checkptr(n Node) error {
	if n == nil {
		return errNilNode
	}
	if n.level > b.varnum {
		return errWrongBDD
	}
	return nil
}
