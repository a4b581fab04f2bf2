package btree

import "github.com/katalvlaran/lvtree/core"

// Delete removes the record with key, rebalancing underfull internal nodes on
// the way back up. Returns core.ErrKeyNotFound (tree unchanged) if key is absent.
func (t *Tree) Delete(key int) error {
	if !t.Contains(key) {
		return core.KeyNotFound(key)
	}

	// 1) Remove the leaf and repair underfull nodes bottom-up.
	t.root = t.deleteFrom(t.root, key)
	// 2) Shrink the height when the root is left with one child.
	if in, ok := t.root.(*internalNode); ok && len(in.pairs) == 1 {
		// root lost its last sibling: the tree shrinks by one level
		t.root = in.pairs[0].child
	}
	t.size--

	return nil
}

// deleteFrom removes key, which must be present under n, and returns the
// node now occupying n's slot (nil when n was the removed leaf).
func (t *Tree) deleteFrom(n node, key int) node {
	in, ok := n.(*internalNode)
	if !ok {
		return nil // the leaf holding key
	}

	i := locate(in, key)
	child := t.deleteFrom(in.pairs[i].child, key)
	if child == nil {
		// the leaf itself went away: drop its pair
		in.pairs = removeAt(in.pairs, i)
		return in
	}
	in.pairs[i].child = child
	// the child may now be one pair short
	if c, ok := child.(*internalNode); ok && len(c.pairs) < t.minPairs() {
		t.rebalance(in, i)
	}

	return in
}

// rebalance restores the minimum size of parent.pairs[i].child, which is one
// pair short, by borrowing from a sibling with spare pairs or merging with one.
func (t *Tree) rebalance(parent *internalNode, i int) {
	least := t.minPairs()
	// 1) A sibling with a spare pair lends it.
	if i > 0 && len(parent.pairs[i-1].child.(*internalNode).pairs) > least {
		borrowFromLeft(parent, i)
		return
	}
	if i+1 < len(parent.pairs) && len(parent.pairs[i+1].child.(*internalNode).pairs) > least {
		borrowFromRight(parent, i)
		return
	}
	// 2) Both neighbours are at the minimum: fuse with one of them.
	if i > 0 {
		merge(parent, i-1)
	} else {
		merge(parent, i)
	}
}

// borrowFromLeft moves the last pair of the left sibling to the front of parent.pairs[i].child.
func borrowFromLeft(parent *internalNode, i int) {
	l := parent.pairs[i-1].child.(*internalNode)
	c := parent.pairs[i].child.(*internalNode)

	moved := l.pairs[len(l.pairs)-1]
	l.pairs = removeAt(l.pairs, len(l.pairs)-1)

	// c's old sentinel becomes a real bound: the separator it had in parent
	c.pairs[0].bound = parent.pairs[i].bound
	c.pairs = insertAt(c.pairs, 0, moved)
	parent.pairs[i].bound = moved.bound
}

// borrowFromRight moves the first pair of the right sibling to the end of parent.pairs[i].child.
func borrowFromRight(parent *internalNode, i int) {
	c := parent.pairs[i].child.(*internalNode)
	r := parent.pairs[i+1].child.(*internalNode)

	// r's sentinel slot has no bound of its own: use the separator in parent
	moved := r.pairs[0]
	moved.bound = parent.pairs[i+1].bound
	c.pairs = append(c.pairs, moved)

	r.pairs = removeAt(r.pairs, 0)
	parent.pairs[i+1].bound = r.pairs[0].bound
}

// merge folds parent.pairs[j+1].child into parent.pairs[j].child and drops the emptied pair.
func merge(parent *internalNode, j int) {
	l := parent.pairs[j].child.(*internalNode)
	r := parent.pairs[j+1].child.(*internalNode)

	// the separator becomes the bound of r's first child
	first := r.pairs[0]
	first.bound = parent.pairs[j+1].bound
	l.pairs = append(l.pairs, first)
	l.pairs = append(l.pairs, r.pairs[1:]...)
	r.pairs = nil

	parent.pairs = removeAt(parent.pairs, j+1)
}
