package avl

import "github.com/katalvlaran/lvtree/core"

// rotated reports a rotation to the hook, if any.
func (t *Tree) rotated(kind RotationKind, cause Cause, pivot, root *Node) {
	if t.onRotate != nil {
		t.onRotate(RotationEvent{Kind: kind, Cause: cause, Pivot: pivot.rec.Key, Root: root.rec.Key})
	}
}

// singleRotationForInsert lifts a's d child b above a. Both end up Balanced.
//
//	    a              b
//	   / \            / \
//	  b   z   ==>    x   a
//	 / \                / \
//	x   y              y   z      (d = left)
func (t *Tree) singleRotationForInsert(a *Node, d dir) *Node {
	opp := d.opposite()
	b := a.child[d]

	a.child[d] = b.child[opp]
	b.child[opp] = a
	a.bias = Balanced
	b.bias = Balanced
	t.rotated(Single, ForInsert, a, b)

	return b
}

// doubleRotationForInsert lifts c, the inner grandchild of a, above both a and
// its parent b. a and b split c's former subtrees; c ends up Balanced.
func (t *Tree) doubleRotationForInsert(a *Node, d dir) *Node {
	opp := d.opposite()
	b := a.child[d]
	c := b.child[opp]

	a.child[d] = c.child[opp]
	b.child[opp] = c.child[d]
	c.child[d] = b
	c.child[opp] = a

	if c.bias == lean(d) {
		a.bias = lean(opp)
	} else {
		a.bias = Balanced
	}
	if c.bias == lean(opp) {
		b.bias = lean(d)
	} else {
		b.bias = Balanced
	}
	c.bias = Balanced
	t.rotated(Double, ForInsert, a, c)

	return c
}

// rebalanceForInsert is called on a after its d subtree grew by one level.
// It returns the new subtree root and whether the subtree as a whole grew.
func (t *Tree) rebalanceForInsert(a *Node, d dir) (*Node, bool) {
	opp := d.opposite()
	switch a.bias {
	case lean(opp):
		// the shorter side caught up
		a.bias = Balanced
		return a, false
	case Balanced:
		// still within balance, but taller
		a.bias = lean(d)
		return a, true
	}

	// a already leaned toward d: restore balance, height is back to pre-insert
	b := a.child[d]
	switch b.bias {
	case lean(d):
		// outer grandchild grew
		return t.singleRotationForInsert(a, d), false
	case lean(opp):
		// inner grandchild grew
		return t.doubleRotationForInsert(a, d), false
	}
	panic(&core.InvariantError{
		Op:   "rebalance-insert",
		Key:  b.rec.Key,
		Want: LeansLeft.String() + "|" + LeansRight.String(),
		Got:  b.bias.String(),
	})
}

// singleRotationForDelete lifts b, the opp child of a, after a's d subtree shrank.
// The subtree shrinks unless b was Balanced.
func (t *Tree) singleRotationForDelete(a *Node, d dir) (*Node, bool) {
	opp := d.opposite()
	b := a.child[opp]

	a.child[opp] = b.child[d]
	b.child[d] = a

	shrank := true
	if b.bias == Balanced {
		a.bias = lean(opp)
		b.bias = lean(d)
		shrank = false
	} else {
		a.bias = Balanced
		b.bias = Balanced
	}
	t.rotated(Single, ForDelete, a, b)

	return b, shrank
}

// doubleRotationForDelete lifts c, the inner grandchild on the opp side.
// The subtree always shrinks.
func (t *Tree) doubleRotationForDelete(a *Node, d dir) (*Node, bool) {
	opp := d.opposite()
	b := a.child[opp]
	c := b.child[d]

	a.child[opp] = c.child[d]
	b.child[d] = c.child[opp]
	c.child[d] = a
	c.child[opp] = b

	if c.bias == lean(opp) {
		a.bias = lean(d)
	} else {
		a.bias = Balanced
	}
	if c.bias == lean(d) {
		b.bias = lean(opp)
	} else {
		b.bias = Balanced
	}
	c.bias = Balanced
	t.rotated(Double, ForDelete, a, c)

	return c, true
}

// rebalanceForDelete is called on a after its d subtree shrank by one level.
// It returns the new subtree root and whether the subtree as a whole shrank.
func (t *Tree) rebalanceForDelete(a *Node, d dir) (*Node, bool) {
	opp := d.opposite()
	switch a.bias {
	case Balanced:
		// the other side still holds the height
		a.bias = lean(opp)
		return a, false
	case lean(d):
		// the taller side shrank back
		a.bias = Balanced
		return a, true
	}

	// a leaned away from d and is now two levels off: rotate the opp child up
	b := a.child[opp]
	if b == nil {
		panic(&core.InvariantError{
			Op:   "rebalance-delete",
			Key:  a.rec.Key,
			Want: "non-nil " + lean(opp).String() + " child",
			Got:  "nil",
		})
	}
	if b.bias != lean(d) {
		// b is Balanced or leans away from d
		return t.singleRotationForDelete(a, d)
	}
	// b leans toward d: its inner child must come up

	return t.doubleRotationForDelete(a, d)
}
