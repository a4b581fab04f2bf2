// Package core defines the types shared by every ordered index in lvtree:
// the Record payload, the traversal Order and Visitor, and the sentinel
// errors returned by insert, search and delete.
//
// What:
//
//   - Record: an integer Key plus a bounded Field (at most MaxFieldBytes bytes).
//     A Record is a value; once built by NewRecord it is never mutated.
//   - Order: PreOrder, InOrder or PostOrder, selecting where a Visitor runs
//     relative to a node's children.
//   - InvariantError: diagnostic context for a corrupted structure
//     (operation, node key, expected vs. observed state).
//
// Errors:
//
//   - ErrDuplicateKey   insert of a key that is already present.
//   - ErrKeyNotFound    delete of a key that is absent.
//   - ErrFieldTooLarge  Field longer than MaxFieldBytes.
//   - ErrUnknownOrder   ParseOrder got an unrecognized name.
//   - ErrInvariant      wrapped by every *InvariantError.
//
// None of these errors is fatal to the caller: a failed operation leaves the
// index exactly as it was.
package core
