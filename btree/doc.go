// Package btree implements an order-M B-tree of core.Record values in which
// records live only in leaves and internal nodes route by bound keys.
//
// What:
//
//   - A node is either a leaf holding exactly one Record, or an internal node
//     holding up to M (bound, child) pairs. pairs[0].bound is a sentinel and is
//     never compared; for i ≥ 1 every key under pairs[i].child lies in
//     [pairs[i].bound, pairs[i+1].bound).
//   - locate: binary search over pairs[1:] for the largest i with bound ≤ key.
//   - Insert: descend with locate to a leaf; the new record becomes a sibling
//     leaf (the lower key keeps the original slot). A parent with room takes
//     the new pair in place; a full parent is split at
//     ceil((M+1)/2) − 1 and hands the new right half to its own parent.
//     A split of the root grows the tree by one level.
//   - Delete (extension): removes a leaf; an internal child left with fewer
//     than (M+1)/2 pairs borrows one pair from a sibling or merges with it.
//     A root with a single child is replaced by that child.
//   - All leaves are always at the same depth.
//
// Options:
//
//   - WithOrder(m)     branching factor M (default 5, minimum 3).
//   - WithOnSplit(fn)  hook invoked with a SplitEvent after each node split.
//
// Complexity:
//
//   - Search, Insert, Delete: O(log_M n) node visits, O(M) work per node.
//   - Traverse, Release, Validate: O(n).
//
// Errors:
//
//   - ErrBadOrder            WithOrder below MinOrder.
//   - core.ErrDuplicateKey   Insert of a present key; the tree is unchanged.
//   - core.ErrKeyNotFound    Delete of an absent key; the tree is unchanged.
//   - core.ErrFieldTooLarge  Put with an oversized field.
package btree
