// Copyright (c) 2026 G. Delzanno
//
// MIT License

package bdd

import "testing"

func TestReplace(t *testing.T) {
	b, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	r, err := b.NewReplacer([]int{0}, []int{1})
	if err != nil {
		t.Fatal(err)
	}
	if !b.Equal(b.Replace(b.Ithvar(0), r), b.Ithvar(1)) {
		t.Errorf("renaming x0 to x1 should turn x0 into x1")
	}
	if !b.Equal(b.Replace(b.Ithvar(2), r), b.Ithvar(2)) {
		t.Errorf("renaming should leave untouched variables alone")
	}
	if !b.Equal(b.Replace(b.True(), r), b.True()) {
		t.Errorf("renaming a constant should be the identity")
	}
	// substitution is simultaneous, so swapping is a single renaming
	swap, err := b.NewReplacer([]int{0, 1}, []int{1, 0})
	if err != nil {
		t.Fatal(err)
	}
	got := b.Replace(b.And(b.Ithvar(0), b.NIthvar(1)), swap)
	want := b.And(b.Ithvar(1), b.NIthvar(0))
	if !b.Equal(got, want) {
		t.Errorf("swapping x0 and x1 in (x0 & !x1) should yield (x1 & !x0)")
	}
	// and so is any permutation of variables, such as a rotation
	rot, err := b.NewReplacer([]int{0, 1, 2}, []int{1, 2, 0})
	if err != nil {
		t.Fatal(err)
	}
	got = b.Replace(b.And(b.Ithvar(0), b.NIthvar(1), b.Ithvar(2)), rot)
	want = b.And(b.Ithvar(1), b.NIthvar(2), b.Ithvar(0))
	if !b.Equal(got, want) {
		t.Errorf("rotating x0 x1 x2 in (x0 & !x1 & x2) should yield (x1 & !x2 & x0)")
	}
	// renaming against a larger move, crossing over an untouched variable
	up, err := b.NewReplacer([]int{0}, []int{3})
	if err != nil {
		t.Fatal(err)
	}
	got = b.Replace(b.Or(b.Ithvar(0), b.And(b.Ithvar(1), b.Ithvar(2))), up)
	want = b.Or(b.Ithvar(3), b.And(b.Ithvar(1), b.Ithvar(2)))
	if !b.Equal(got, want) {
		t.Errorf("moving x0 below x1 and x2 lost the function")
	}
	if b.Errored() {
		t.Errorf("unexpected error status: %s", b.Error())
	}
}

func TestReplaceSemantics(t *testing.T) {
	b, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	r, err := b.NewReplacer([]int{0, 2}, []int{2, 0})
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range testformulas(b) {
		got := b.Replace(f, r)
		for k := 0; k < 16; k++ {
			a := assignment4(k)
			swapped := []bool{a[2], a[1], a[0], a[3]}
			if b.Eval(got, a) != b.Eval(f, swapped) {
				t.Fatalf("renaming disagrees with evaluation under the renamed assignment %v", a)
			}
		}
	}
}

// TestReplaceCollision checks the runtime safety net of Replace: renaming
// into an existing variable is legal as long as the two variables never
// occur in the same diagram, and fails otherwise.
func TestReplaceCollision(t *testing.T) {
	b, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	r, err := b.NewReplacer([]int{0}, []int{1})
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Replace(b.And(b.Ithvar(0), b.Ithvar(2)), r); !b.Equal(got, b.And(b.Ithvar(1), b.Ithvar(2))) {
		t.Errorf("renaming x0 to x1 in (x0 & x2) should yield (x1 & x2)")
	}
	if b.Errored() {
		t.Fatalf("unexpected error status: %s", b.Error())
	}
	// renaming x0 to x1 in a diagram that tests both would collapse two
	// levels
	if got := b.Replace(b.And(b.Ithvar(0), b.Ithvar(1)), r); got != nil || !b.Errored() {
		t.Errorf("a renaming that collapses two levels should set the error status")
	}
}

func TestNewReplacerErrors(t *testing.T) {
	b, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name             string
		oldvars, newvars []int
	}{
		{"unmatched length", []int{0, 1}, []int{2}},
		{"duplicate in oldvars", []int{0, 0}, []int{1, 2}},
		{"invalid oldvar", []int{7}, []int{1}},
		{"invalid newvar", []int{0}, []int{7}},
		{"duplicate in newvars", []int{0, 1}, []int{2, 2}},
		{"permutation mixed with a fresh move", []int{0, 1}, []int{1, 2}},
	}
	for _, c := range cases {
		if _, err := b.NewReplacer(c.oldvars, c.newvars); err == nil {
			t.Errorf("NewReplacer should reject case %q", c.name)
		}
	}
}

func TestReplacerString(t *testing.T) {
	b, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	r, err := b.NewReplacer([]int{0, 1}, []int{1, 0})
	if err != nil {
		t.Fatal(err)
	}
	if s := r.(*replacer).String(); s != "replacer(last: 1)[0<-1, 1<-0]" {
		t.Errorf("unexpected print form: %s", s)
	}
}
