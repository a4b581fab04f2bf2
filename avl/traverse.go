package avl

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvtree/core"
)

// Traverse calls visit for every record in the given order.
// An unknown order visits nothing.
func (t *Tree) Traverse(order core.Order, visit core.Visitor) {
	switch order {
	case core.PreOrder:
		preOrder(t.root, func(n *Node) { visit(n.rec) })
	case core.InOrder:
		inOrder(t.root, func(n *Node) { visit(n.rec) })
	case core.PostOrder:
		postOrder(t.root, func(n *Node) { visit(n.rec) })
	}
}

// PreOrder visits each node before its subtrees.
func (t *Tree) PreOrder(visit core.Visitor) { t.Traverse(core.PreOrder, visit) }

// InOrder visits records in ascending key order.
func (t *Tree) InOrder(visit core.Visitor) { t.Traverse(core.InOrder, visit) }

// PostOrder visits each node after its subtrees.
func (t *Tree) PostOrder(visit core.Visitor) { t.Traverse(core.PostOrder, visit) }

func preOrder(n *Node, fn func(*Node)) {
	if n != nil {
		fn(n)
		preOrder(n.child[left], fn)
		preOrder(n.child[right], fn)
	}
}

func inOrder(n *Node, fn func(*Node)) {
	if n != nil {
		inOrder(n.child[left], fn)
		fn(n)
		inOrder(n.child[right], fn)
	}
}

func postOrder(n *Node, fn func(*Node)) {
	if n != nil {
		postOrder(n.child[left], fn)
		postOrder(n.child[right], fn)
		fn(n)
	}
}

// Release disposes every node in post-order and leaves the tree empty.
// The tree may be reused afterwards.
func (t *Tree) Release() {
	postOrder(t.root, dispose)
	t.root = nil
	t.size = 0
}

// Height returns the number of nodes on the longest root-to-leaf path (0 when empty).
func (t *Tree) Height() int { return height(t.root) }

func height(n *Node) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.child[left]), height(n.child[right]))
}

// Render writes the tree sideways: right subtree on top, one node per line,
// indented by depth.
func (t *Tree) Render(w io.Writer) error {
	return render(w, t.root, 0)
}

func render(w io.Writer, n *Node, depth int) error {
	if n == nil {
		return nil
	}
	if err := render(w, n.child[right], depth+1); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s+-%3d, %q\n", strings.Repeat(" ", depth), n.rec.Key, n.rec.Field); err != nil {
		return err
	}

	return render(w, n.child[left], depth+1)
}
