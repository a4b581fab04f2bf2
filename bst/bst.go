package bst

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvtree/core"
)

// Node is a single BST node. Fields are read through accessors only.
type Node struct {
	rec         core.Record
	left, right *Node
}

// Record returns the record stored in n.
func (n *Node) Record() core.Record { return n.rec }

// Left returns the left child (keys smaller than n), or nil.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child (keys larger than n), or nil.
func (n *Node) Right() *Node { return n.right }

// Tree is an unbalanced binary search tree. The zero value is an empty tree.
// A Tree is not safe for concurrent use.
type Tree struct {
	root *Node
	size int
}

// New returns an empty tree.
func New() *Tree { return &Tree{} }

// Root returns the root node, or nil when the tree is empty.
func (t *Tree) Root() *Node { return t.root }

// Len returns the number of records stored.
func (t *Tree) Len() int { return t.size }

// Put builds a record from key and field and inserts it.
func (t *Tree) Put(key int, field string) error {
	rec, err := core.NewRecord(key, field)
	if err != nil {
		return err
	}

	return t.Insert(rec)
}

// Insert adds rec as a new leaf. Returns core.ErrDuplicateKey if rec.Key is present.
func (t *Tree) Insert(rec core.Record) error {
	link := &t.root
	for *link != nil {
		switch n := *link; {
		case rec.Key < n.rec.Key:
			link = &n.left
		case rec.Key > n.rec.Key:
			link = &n.right
		default:
			return core.DuplicateKey(rec.Key)
		}
	}
	*link = &Node{rec: rec}
	t.size++

	return nil
}

// Delete removes the record with key. Returns core.ErrKeyNotFound if absent.
func (t *Tree) Delete(key int) error {
	root, err := remove(t.root, key)
	if err != nil {
		return err
	}
	t.root = root
	t.size--

	return nil
}

// remove deletes key from the subtree n and returns the new subtree root.
func remove(n *Node, key int) (*Node, error) {
	if n == nil {
		return nil, core.KeyNotFound(key)
	}

	var err error
	switch {
	case key < n.rec.Key:
		n.left, err = remove(n.left, key)
		return n, err
	case key > n.rec.Key:
		n.right, err = remove(n.right, key)
		return n, err
	}

	if n.left == nil {
		return n.right, nil
	}

	// relocate the maximum of the left subtree into n's position
	rest, top := extractMax(n.left)
	top.left, top.right = rest, n.right

	return top, nil
}

// extractMax unlinks the rightmost node of n and returns the remaining subtree and that node.
func extractMax(n *Node) (rest, top *Node) {
	if n.right == nil {
		return n.left, n
	}
	n.right, top = extractMax(n.right)

	return n, top
}

// Search returns the record with key, if present.
func (t *Tree) Search(key int) (core.Record, bool) {
	for n := t.root; n != nil; {
		switch {
		case key == n.rec.Key:
			return n.rec, true
		case key < n.rec.Key:
			n = n.left
		default:
			n = n.right
		}
	}

	return core.Record{}, false
}

// Height returns the number of nodes on the longest root-to-leaf path (0 when empty).
func (t *Tree) Height() int { return height(t.root) }

func height(n *Node) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}

// Traverse calls visit for every record in the given order.
// An unknown order visits nothing.
func (t *Tree) Traverse(order core.Order, visit core.Visitor) {
	walk(t.root, order, visit)
}

func walk(n *Node, order core.Order, visit core.Visitor) {
	if n == nil {
		return
	}
	if order == core.PreOrder {
		visit(n.rec)
	}
	walk(n.left, order, visit)
	if order == core.InOrder {
		visit(n.rec)
	}
	walk(n.right, order, visit)
	if order == core.PostOrder {
		visit(n.rec)
	}
}

// Release unlinks every node in post-order and leaves the tree empty.
func (t *Tree) Release() {
	release(t.root)
	t.root = nil
	t.size = 0
}

func release(n *Node) {
	if n == nil {
		return
	}
	release(n.left)
	release(n.right)
	n.left, n.right = nil, nil
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
	if err := render(w, n.right, depth+1); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s+-%3d, %q\n", strings.Repeat(" ", depth), n.rec.Key, n.rec.Field); err != nil {
		return err
	}

	return render(w, n.left, depth+1)
}
