package avl

import (
	"fmt"

	"github.com/katalvlaran/lvtree/core"
)

// Validate checks every structural invariant of the tree:
// strict key ordering, |height(left) − height(right)| ≤ 1 at every node,
// each cached Bias matching the actual height difference, and Len.
// It returns the first violation found as a *core.InvariantError.
func (t *Tree) Validate() error {
	count := 0
	if _, err := validate(t.root, nil, nil, &count); err != nil {
		return err
	}
	if count != t.size {
		return &core.InvariantError{Op: "validate", Want: fmt.Sprintf("len %d", t.size), Got: fmt.Sprintf("%d nodes", count)}
	}

	return nil
}

// validate returns the height of n with every key strictly inside (lo, hi).
func validate(n *Node, lo, hi *int, count *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	*count++

	key := n.rec.Key
	if (lo != nil && key <= *lo) || (hi != nil && key >= *hi) {
		return 0, &core.InvariantError{Op: "validate", Key: key, Want: "key within " + bounds(lo, hi), Got: fmt.Sprint(key)}
	}

	lh, err := validate(n.child[left], lo, &key, count)
	if err != nil {
		return 0, err
	}
	rh, err := validate(n.child[right], &key, hi, count)
	if err != nil {
		return 0, err
	}

	var want Bias
	switch lh - rh {
	case 0:
		want = Balanced
	case 1:
		want = LeansLeft
	case -1:
		want = LeansRight
	default:
		return 0, &core.InvariantError{Op: "validate", Key: key, Want: "|h(l)-h(r)| <= 1", Got: fmt.Sprintf("h(l)=%d h(r)=%d", lh, rh)}
	}
	if n.bias != want {
		return 0, &core.InvariantError{Op: "validate", Key: key, Want: want.String(), Got: n.bias.String()}
	}

	return 1 + max(lh, rh), nil
}

func bounds(lo, hi *int) string {
	l, h := "-inf", "+inf"
	if lo != nil {
		l = fmt.Sprint(*lo)
	}
	if hi != nil {
		h = fmt.Sprint(*hi)
	}

	return "(" + l + ", " + h + ")"
}
