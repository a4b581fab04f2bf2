// Package bst implements an unbalanced binary search tree of core.Record values.
//
// It is the baseline of the tree family in lvtree: the same contract as the
// avl package (insert, delete, search, traversal, release) without any
// rebalancing, so its height depends on insertion order and degrades to a
// linked list for sorted input.
//
// Deleting a node with two children replaces it by the maximum node of its
// left subtree, which is physically relocated into the deleted position.
//
// Complexity:
//
//   - Insert, Delete, Search: O(h), h = height (O(n) worst case).
//   - Traverse, Release:      O(n).
//
// Errors:
//
//   - core.ErrDuplicateKey  Insert of a present key; the tree is unchanged.
//   - core.ErrKeyNotFound   Delete of an absent key; the tree is unchanged.
//   - core.ErrFieldTooLarge Put with an oversized field.
package bst
