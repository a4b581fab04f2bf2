// Package lvtree is a small family of in-memory ordered indexes over
// integer-keyed records, from a plain binary search tree up to an AVL tree
// and an order-M B-tree.
//
// What is inside?
//
//	core/    — Record, traversal Order, Visitor, sentinel errors
//	bst/     — unbalanced binary search tree (baseline)
//	avl/     — AVL tree: insert/delete with single and double rotations
//	btree/   — order-M B-tree: records in leaves, split on overflow,
//	           borrow/merge on underflow
//	index/   — one Index contract over all of the above, plus a
//	           reference backend built on github.com/google/btree
//	config/  — YAML configuration for the lvtree shell
//
// Every structure shares the same vocabulary:
//
//	Insert(key, field)  — core.ErrDuplicateKey on a present key
//	Search(key)         — (record, found)
//	Delete(key)         — core.ErrKeyNotFound on an absent key
//	Traverse(order, fn) — pre-, in- or post-order visit
//	Release()           — drop every record, keep the index usable
//
// Structural events are observable through hooks instead of logs:
// avl.WithOnRotate and btree.WithOnSplit.
//
// Quick ASCII example (AVL, keys 1 3 2):
//
//	1                2
//	 \              / \
//	  3    ──►     1   3
//	 /
//	2
//
// None of the types are safe for concurrent use; guard them externally.
//
//	go get github.com/katalvlaran/lvtree
package lvtree
