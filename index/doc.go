// Package index puts every ordered structure of lvtree behind one contract,
// Index: insert, search, delete, traverse and release keyed by integers.
//
// Kinds:
//
//   - KindAVL        avl.Tree (height-balanced binary tree).
//   - KindBTree      btree.Tree (order-M B-tree, records in leaves).
//   - KindBST        bst.Tree (unbalanced binary tree).
//   - KindReference  github.com/google/btree, used as an oracle when
//     comparing the hand-written structures and as a baseline in the shell.
//
// Options:
//
//   - WithOrder(m)    branching factor for KindBTree; every other kind
//     ignores it (KindReference keeps a fixed google/btree degree).
//   - WithTrace(fn)   receives one line per rotation (AVL) or split (B-tree).
//
// Errors:
//
//   - ErrUnknownKind  ParseKind or New got an unrecognized kind.
//   - every error of the underlying structure (core.ErrDuplicateKey,
//     core.ErrKeyNotFound, core.ErrFieldTooLarge, btree.ErrBadOrder).
package index
