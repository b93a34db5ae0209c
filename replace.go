// Copyright (c) 2026 G. Delzanno
//
// MIT License

package bdd

import "fmt"

// Replacer is the type of association lists used to replace variables in a
// BDD node. Replace returns the image of a level and reports whether the
// level can still be affected; levels above the last renamed one are left
// untouched, which also stops the recursion in Replace.
type Replacer interface {
	Replace(int32) (int32, bool)
}

type replacer struct {
	image []int32 // map the level of old variables to the level of new variables
	last  int32   // last level affected, to speed up computations
}

func (r *replacer) String() string {
	res := fmt.Sprintf("replacer(last: %d)[", r.last)
	first := true
	for k, v := range r.image {
		if k != int(v) {
			if !first {
				res += ", "
			}
			first = false
			res += fmt.Sprintf("%d<-%d", k, v)
		}
	}
	return res + "]"
}

func (r *replacer) Replace(level int32) (int32, bool) {
	if level > r.last {
		return level, false
	}
	return r.image[level], true
}

// NewReplacer returns a Replacer for substituting variable oldvars[k] with
// newvars[k]. Substitution is simultaneous, so the two slices may overlap,
// as in the swap ([0 1], [1 0]), but only when the replacer permutes
// variables among themselves. We return an error otherwise, as well as if
// the two slices do not have the same length or if we find the same index
// twice in either of them. All values must be in [0..Varnum).
func (b *BDD) NewReplacer(oldvars, newvars []int) (Replacer, error) {
	res := &replacer{}
	if len(oldvars) != len(newvars) {
		return nil, fmt.Errorf("unmatched length of slices")
	}
	varnum := b.Varnum()
	support := make([]bool, varnum)
	res.image = make([]int32, varnum)
	for k := range res.image {
		res.image[k] = int32(k)
	}
	for k, v := range oldvars {
		if v < 0 || v >= varnum {
			return nil, fmt.Errorf("invalid variable in oldvars (%d)", v)
		}
		if support[v] {
			return nil, fmt.Errorf("duplicate variable (%d) in oldvars", v)
		}
		if newvars[k] < 0 || newvars[k] >= varnum {
			return nil, fmt.Errorf("invalid variable in newvars (%d)", newvars[k])
		}
		support[v] = true
		res.image[v] = int32(newvars[k])
		if int32(v) > res.last {
			res.last = int32(v)
		}
	}
	target := make([]bool, varnum)
	overlap := false
	for _, v := range newvars {
		if target[v] {
			return nil, fmt.Errorf("duplicate variable (%d) in newvars", v)
		}
		target[v] = true
		if support[v] {
			overlap = true
		}
	}
	// a new variable may also occur in oldvars, as in a swap, but only
	// when the replacer permutes variables among themselves; a permutation
	// mixed with a move to a fresh variable is rejected
	if overlap {
		for _, v := range oldvars {
			if !target[v] {
				return nil, fmt.Errorf("newvars overlaps oldvars but variable (%d) moves to a fresh variable", v)
			}
		}
	}
	return res, nil
}

// Replace takes a Replacer and computes the result of n after replacing old
// variables with new ones. Renaming can move a variable below another one,
// so the result is re-normalized level by level; a renaming that would
// collapse two levels sets the error status of the BDD. The cache for the
// intermediate results is private to each call.
func (b *BDD) Replace(n Node, r Replacer) Node {
	if b.checkptr(n) != nil {
		return b.seterror("wrong operand in call to Replace")
	}
	rec := tie1(newmemo1(b.cachesize), func(self func(Node) Node, n Node) Node {
		image, ok := r.Replace(n.level)
		if !ok {
			return n
		}
		return b.correctify(image, self(n.low), self(n.high))
	})
	return rec(n)
}

// correctify rebuilds a vertex testing level above the two diagrams low and
// high, restoring the ordering invariant that the renaming may have
// broken.
func (b *BDD) correctify(level int32, low, high Node) Node {
	if low == nil || high == nil {
		return nil
	}
	if level < low.level && level < high.level {
		return b.makenode(level, low, high)
	}
	if level == low.level || level == high.level {
		return b.seterror("replace: level %d would collide with one of its branches (%d, %d)", level, low.level, high.level)
	}
	if low.level == high.level {
		return b.makenode(low.level,
			b.correctify(level, low.low, high.low),
			b.correctify(level, low.high, high.high))
	}
	if low.level < high.level {
		return b.makenode(low.level,
			b.correctify(level, low.low, high),
			b.correctify(level, low.high, high))
	}
	return b.makenode(high.level,
		b.correctify(level, low, high.low),
		b.correctify(level, low, high.high))
}
