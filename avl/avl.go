package avl

import "github.com/katalvlaran/lvtree/core"

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

// Insert adds rec and rebalances the path back to the root.
// Returns core.ErrDuplicateKey (tree unchanged) if rec.Key is already present.
func (t *Tree) Insert(rec core.Record) (err error) {
	defer recoverInvariant(&err)

	// 1) Descend, attach, and rebalance on the way back up.
	root, _, err := t.insert(t.root, rec)
	if err != nil {
		return err
	}
	t.root = root
	t.size++

	return nil
}

// insert adds rec under n and returns the new subtree root and whether its height grew.
func (t *Tree) insert(n *Node, rec core.Record) (*Node, bool, error) {
	if n == nil {
		// new leaf: the empty subtree grew by one level
		return &Node{rec: rec, bias: Balanced}, true, nil
	}

	// pick the side to descend into
	var d dir
	switch {
	case rec.Key < n.rec.Key:
		d = left
	case rec.Key > n.rec.Key:
		d = right
	default:
		return n, false, core.DuplicateKey(rec.Key)
	}

	child, grew, err := t.insert(n.child[d], rec)
	if err != nil {
		return n, false, err
	}
	n.child[d] = child
	if !grew {
		return n, false, nil // height unchanged: ancestors keep their bias
	}
	// the d side grew: update bias or rotate
	n, grew = t.rebalanceForInsert(n, d)

	return n, grew, nil
}

// Delete removes the record with key and rebalances the path back to the root.
// Returns core.ErrKeyNotFound (tree unchanged) if key is absent.
func (t *Tree) Delete(key int) (err error) {
	defer recoverInvariant(&err)

	root, _, err := t.remove(t.root, key)
	if err != nil {
		return err
	}
	t.root = root
	t.size--

	return nil
}

// remove deletes key under n and returns the new subtree root and whether its height shrank.
func (t *Tree) remove(n *Node, key int) (*Node, bool, error) {
	if n == nil {
		return nil, false, core.KeyNotFound(key)
	}

	if key != n.rec.Key {
		// 1) Keep searching on the matching side.
		d := right
		if key < n.rec.Key {
			d = left
		}
		child, shrank, err := t.remove(n.child[d], key)
		if err != nil {
			return n, false, err
		}
		n.child[d] = child
		if !shrank {
			return n, false, nil
		}
		// the d side lost a level: update bias or rotate
		n, shrank = t.rebalanceForDelete(n, d)

		return n, shrank, nil
	}

	// 2) Found. Without a left subtree the right one takes n's place.
	if n.child[left] == nil {
		r := n.child[right]
		dispose(n)

		return r, true, nil
	}

	// 3) Otherwise the maximum of the left subtree replaces n and
	// inherits its links and bias.
	rest, top, shrank := t.extractMax(n.child[left])
	top.child[left] = rest
	top.child[right] = n.child[right]
	top.bias = n.bias
	dispose(n)
	if !shrank {
		return top, false, nil
	}
	// 4) The left subtree lost a level under the new node.
	top, shrank = t.rebalanceForDelete(top, left)

	return top, shrank, nil
}

// extractMax unlinks the rightmost node under n. It returns the remaining
// subtree, the unlinked node and whether the remaining subtree shrank.
func (t *Tree) extractMax(n *Node) (rest, top *Node, shrank bool) {
	if n.child[right] == nil {
		// n is the maximum: its left subtree (possibly nil) moves up
		return n.child[left], n, true
	}

	n.child[right], top, shrank = t.extractMax(n.child[right])
	if !shrank {
		return n, top, false
	}
	n, shrank = t.rebalanceForDelete(n, right)

	return n, top, shrank
}

// dispose detaches n from its children so no stale links survive removal.
func dispose(n *Node) {
	n.child[left], n.child[right] = nil, nil
}

// Search returns the record with key, if present.
func (t *Tree) Search(key int) (core.Record, bool) {
	n := t.lookup(key)
	if n == nil {
		return core.Record{}, false
	}

	return n.rec, true
}

// Contains reports whether key is present.
func (t *Tree) Contains(key int) bool { return t.lookup(key) != nil }

func (t *Tree) lookup(key int) *Node {
	n := t.root
	for n != nil && n.rec.Key != key {
		if key < n.rec.Key {
			n = n.child[left]
		} else {
			n = n.child[right]
		}
	}

	return n
}

// Min returns the record with the smallest key, if any.
func (t *Tree) Min() (core.Record, bool) { return t.edge(left) }

// Max returns the record with the largest key, if any.
func (t *Tree) Max() (core.Record, bool) { return t.edge(right) }

func (t *Tree) edge(d dir) (core.Record, bool) {
	if t.root == nil {
		return core.Record{}, false
	}
	n := t.root
	for n.child[d] != nil {
		n = n.child[d]
	}

	return n.rec, true
}

// recoverInvariant converts a *core.InvariantError panic raised by the
// rotation logic into the returned error. Any other panic is re-raised.
func recoverInvariant(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if ie, ok := r.(*core.InvariantError); ok {
		*err = ie
		return
	}
	panic(r)
}
