package btree

import "github.com/katalvlaran/lvtree/core"

// locate returns the largest index i ≥ 1 with n.pairs[i].bound ≤ key,
// or 0 when every bound exceeds key. pairs[0].bound is never read.
func locate(n *internalNode, key int) int {
	low, high := 1, len(n.pairs)-1
	for low <= high {
		middle := (low + high) / 2
		if key < n.pairs[middle].bound {
			high = middle - 1
		} else {
			low = middle + 1
		}
	}

	return high
}

// findLeaf descends from the root to the only leaf that may hold key.
func (t *Tree) findLeaf(key int) *leafNode {
	current := t.root
	for {
		switch n := current.(type) {
		case *internalNode:
			current = n.pairs[locate(n, key)].child
		case *leafNode:
			return n
		default:
			return nil // empty tree
		}
	}
}

// Search returns the record with key, if present.
func (t *Tree) Search(key int) (core.Record, bool) {
	leaf := t.findLeaf(key)
	if leaf == nil || leaf.rec.Key != key {
		return core.Record{}, false
	}

	return leaf.rec, true
}

// Contains reports whether key is present.
func (t *Tree) Contains(key int) bool {
	_, ok := t.Search(key)
	return ok
}

// Put builds a record from key and field and inserts it.
func (t *Tree) Put(key int, field string) error {
	rec, err := core.NewRecord(key, field)
	if err != nil {
		return err
	}

	return t.Insert(rec)
}

// Insert adds rec as a new leaf, splitting full nodes on the way back up.
// Returns core.ErrDuplicateKey (tree unchanged) if rec.Key is already present.
func (t *Tree) Insert(rec core.Record) error {
	if t.root == nil {
		t.root = &leafNode{rec: rec}
		t.size = 1

		return nil
	}
	// every key maps to exactly one leaf: reject duplicates before mutating anything
	if leaf := t.findLeaf(rec.Key); leaf.rec.Key == rec.Key {
		return core.DuplicateKey(rec.Key)
	}

	// descend, attach the leaf, split full nodes on the way back
	self, sibling := t.insertInto(t.root, rec)
	if sibling != nil {
		// root grew: new root with exactly two children
		t.root = &internalNode{pairs: []pair{{bound: lowestKey(self), child: self}, *sibling}}
	} else {
		t.root = self
	}
	t.size++

	return nil
}

// insertInto adds rec under n. It returns the node now occupying n's slot and,
// when n produced a new right neighbour, the pair to attach after that slot.
func (t *Tree) insertInto(n node, rec core.Record) (node, *pair) {
	switch n := n.(type) {
	case *leafNode:
		fresh := &leafNode{rec: rec}
		if rec.Key < n.rec.Key {
			// the lower key keeps the original slot
			return fresh, &pair{bound: n.rec.Key, child: n}
		}

		return n, &pair{bound: rec.Key, child: fresh}

	case *internalNode:
		// 1) Recurse into the routing child.
		i := locate(n, rec.Key)
		self, sibling := t.insertInto(n.pairs[i].child, rec)
		n.pairs[i].child = self
		if sibling == nil {
			return n, nil
		}
		// 2) Take the child's new neighbour right after it.
		n.pairs = insertAt(n.pairs, i+1, *sibling)
		if len(n.pairs) <= t.order {
			return n, nil // still fits
		}

		// 3) Overfull: split and hand the right half to the parent.
		right := t.splitOff(n)
		t.split(n, right, t.root == node(n))

		return n, &pair{bound: right.pairs[0].bound, child: right}
	}

	return n, nil
}

// splitOff moves the pairs after splitIndex of an overfull node n (M+1 pairs)
// into a new node and returns it. n keeps splitIndex+1 pairs.
func (t *Tree) splitOff(n *internalNode) *internalNode {
	keep := t.splitIndex() + 1
	right := &internalNode{pairs: make([]pair, 0, t.order)}
	right.pairs = append(right.pairs, n.pairs[keep:]...)
	clear(n.pairs[keep:])
	n.pairs = n.pairs[:keep]

	return right
}

// split reports a completed split of left into left|right to the hook, if any.
func (t *Tree) split(left, right *internalNode, root bool) {
	if t.onSplit != nil {
		t.onSplit(SplitEvent{
			Bound: right.pairs[0].bound,
			Left:  len(left.pairs),
			Right: len(right.pairs),
			Root:  root,
		})
	}
}

// lowestKey returns the smallest key stored under n.
func lowestKey(n node) int {
	for {
		switch v := n.(type) {
		case *internalNode:
			n = v.pairs[0].child
		case *leafNode:
			return v.rec.Key
		}
	}
}

// insertAt inserts p at index i, shifting later pairs right.
func insertAt(pairs []pair, i int, p pair) []pair {
	pairs = append(pairs, pair{})
	copy(pairs[i+1:], pairs[i:])
	pairs[i] = p

	return pairs
}

// removeAt removes the pair at index i, shifting later pairs left.
func removeAt(pairs []pair, i int) []pair {
	copy(pairs[i:], pairs[i+1:])
	pairs[len(pairs)-1] = pair{}

	return pairs[:len(pairs)-1]
}
