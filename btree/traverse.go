package btree

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtree/core"
)

// Traverse calls visit for every record. Records are stored only in leaves,
// so pre-, in- and post-order all visit the leaves left to right, i.e. in
// ascending key order. An unknown order visits nothing.
func (t *Tree) Traverse(order core.Order, visit core.Visitor) {
	switch order {
	case core.PreOrder, core.InOrder, core.PostOrder:
		walkLeaves(t.root, visit)
	}
}

func walkLeaves(n node, visit core.Visitor) {
	switch n := n.(type) {
	case *internalNode:
		for _, p := range n.pairs {
			walkLeaves(p.child, visit)
		}
	case *leafNode:
		visit(n.rec)
	}
}

// Release detaches every node in post-order and leaves the tree empty.
// The tree may be reused afterwards.
func (t *Tree) Release() {
	release(t.root)
	t.root = nil
	t.size = 0
}

func release(n node) {
	if in, ok := n.(*internalNode); ok {
		for _, p := range in.pairs {
			release(p.child)
		}
		clear(in.pairs)
		in.pairs = nil
	}
}

// Height returns the number of internal hops from the root to any leaf:
// 0 for an empty tree or a single leaf.
func (t *Tree) Height() int {
	h := 0
	for n, ok := t.root.(*internalNode); ok; n, ok = n.pairs[0].child.(*internalNode) {
		h++
	}

	return h
}

// RootBounds returns the bounds of the root's pairs after the sentinel slot,
// or nil when the root is not an internal node.
func (t *Tree) RootBounds() []int {
	in, ok := t.root.(*internalNode)
	if !ok {
		return nil
	}
	out := make([]int, 0, len(in.pairs)-1)
	for _, p := range in.pairs[1:] {
		out = append(out, p.bound)
	}

	return out
}

// Render writes one line per node, children indented under their parent.
// Internal nodes print their bounds with "*" for the sentinel slot.
func (t *Tree) Render(w io.Writer) error {
	return render(w, t.root, 0)
}

func render(w io.Writer, n node, depth int) error {
	indent := strings.Repeat("  ", depth)
	switch n := n.(type) {
	case *internalNode:
		bounds := make([]string, len(n.pairs))
		bounds[0] = "*"
		for i := 1; i < len(n.pairs); i++ {
			bounds[i] = strconv.Itoa(n.pairs[i].bound)
		}
		if _, err := fmt.Fprintf(w, "%s[%s]\n", indent, strings.Join(bounds, " ")); err != nil {
			return err
		}
		for _, p := range n.pairs {
			if err := render(w, p.child, depth+1); err != nil {
				return err
			}
		}
	case *leafNode:
		if _, err := fmt.Fprintf(w, "%s%d, %q\n", indent, n.rec.Key, n.rec.Field); err != nil {
			return err
		}
	}

	return nil
}
