// Package avl implements a height-balanced (AVL) binary search tree of
// core.Record values.
//
// What:
//
//   - Every node caches a Bias (LeansLeft, Balanced, LeansRight): the sign of
//     height(left) − height(right), which is always in {-1, 0, +1}.
//   - Insert descends to a nil position, attaches a new Balanced leaf and
//     reports growth upward. Each ancestor on the way back runs
//     rebalance-for-insert: an opposite lean absorbs the growth, a balanced node
//     starts leaning and passes the growth on, and an already-leaning node is
//     restored by a single or double rotation after which growth stops.
//   - Delete removes the matching node; a node with a left child is replaced by
//     the maximum node of its left subtree, which inherits both children and the
//     bias. Shrinkage propagates upward through rebalance-for-delete.
//   - Search, Min, Max: standard descent, O(log n) thanks to the height bound.
//   - Traverse: pre-, in- and post-order visitors. In-order yields ascending keys.
//   - Release: post-order teardown, children before parents.
//
// Why:
//
//   - Worst-case O(log n) lookups regardless of insertion order, unlike the
//     plain bst package which degrades to O(n) on sorted input.
//
// Options:
//
//   - WithOnRotate(fn) receives a RotationEvent for every single or double
//     rotation, tagged with its cause (insert or delete) and pivot key.
//
// Complexity:
//
//   - Insert, Delete, Search: O(log n) time; recursion depth ≤ 1.44·log2(n+2).
//   - Traverse, Release, Validate: O(n).
//
// Errors:
//
//   - core.ErrDuplicateKey   Insert of a present key; the tree is unchanged.
//   - core.ErrKeyNotFound    Delete of an absent key; the tree is unchanged.
//   - core.ErrFieldTooLarge  Put with an oversized field.
//   - *core.InvariantError   a bias state that only a corrupted tree can reach.
package avl
