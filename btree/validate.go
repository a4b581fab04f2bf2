package btree

import (
	"fmt"

	"github.com/katalvlaran/lvtree/core"
)

// Validate checks every structural invariant of the tree:
//   - all leaves are at the same depth;
//   - the root, when internal, has at least 2 pairs; every other internal node
//     has between (M+1)/2 and M pairs;
//   - bounds after the sentinel strictly increase, and every key under
//     pairs[i] lies in [pairs[i].bound, pairs[i+1].bound);
//   - leaves appear in strictly ascending key order and their count equals Len.
//
// It returns the first violation found as a *core.InvariantError.
func (t *Tree) Validate() error {
	if t.root == nil {
		if t.size != 0 {
			return &core.InvariantError{Op: "validate", Want: "len 0 for empty root", Got: fmt.Sprintf("len %d", t.size)}
		}
		return nil
	}

	v := &validator{tree: t, leafDepth: -1}
	if err := v.check(t.root, 0, nil, nil); err != nil {
		return err
	}
	if v.leaves != t.size {
		return &core.InvariantError{Op: "validate", Want: fmt.Sprintf("len %d", t.size), Got: fmt.Sprintf("%d leaves", v.leaves)}
	}

	return nil
}

type validator struct {
	tree      *Tree
	leafDepth int
	leaves    int
	last      *int
}

// check validates n, whose keys must lie in [lo, hi).
func (v *validator) check(n node, depth int, lo, hi *int) error {
	switch n := n.(type) {
	case *leafNode:
		key := n.rec.Key
		if v.leafDepth == -1 {
			v.leafDepth = depth
		} else if depth != v.leafDepth {
			return &core.InvariantError{Op: "validate", Key: key, Want: fmt.Sprintf("leaf depth %d", v.leafDepth), Got: fmt.Sprintf("depth %d", depth)}
		}
		if (lo != nil && key < *lo) || (hi != nil && key >= *hi) {
			return &core.InvariantError{Op: "validate", Key: key, Want: "key within " + span(lo, hi), Got: fmt.Sprint(key)}
		}
		if v.last != nil && key <= *v.last {
			return &core.InvariantError{Op: "validate", Key: key, Want: fmt.Sprintf("key > %d", *v.last), Got: fmt.Sprint(key)}
		}
		v.last = &key
		v.leaves++

		return nil

	case *internalNode:
		count := len(n.pairs)
		least := v.tree.minPairs()
		if depth == 0 {
			least = 2
		}
		if count < least || count > v.tree.order {
			return &core.InvariantError{
				Op:   "validate",
				Key:  lowestKey(n),
				Want: fmt.Sprintf("%d..%d pairs", least, v.tree.order),
				Got:  fmt.Sprintf("%d pairs", count),
			}
		}
		for i := range n.pairs {
			childLo, childHi := lo, hi
			if i > 0 {
				b := n.pairs[i].bound
				if (lo != nil && b < *lo) || (hi != nil && b >= *hi) || (i > 1 && b <= n.pairs[i-1].bound) {
					return &core.InvariantError{Op: "validate", Key: b, Want: "ascending bound within " + span(lo, hi), Got: fmt.Sprint(b)}
				}
				childLo = &b
			}
			if i+1 < count {
				next := n.pairs[i+1].bound
				childHi = &next
			}
			if err := v.check(n.pairs[i].child, depth+1, childLo, childHi); err != nil {
				return err
			}
		}

		return nil
	}

	return &core.InvariantError{Op: "validate", Want: "leaf or internal node", Got: fmt.Sprintf("%T", n)}
}

func span(lo, hi *int) string {
	l, h := "-inf", "+inf"
	if lo != nil {
		l = fmt.Sprint(*lo)
	}
	if hi != nil {
		h = fmt.Sprint(*hi)
	}

	return "[" + l + ", " + h + ")"
}
