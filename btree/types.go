package btree

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtree/core"
)

const (
	// DefaultOrder is the branching factor used when WithOrder is not given.
	DefaultOrder = 5
	// MinOrder is the smallest branching factor for which a split leaves both
	// halves with at least two children.
	MinOrder = 3
)

// ErrBadOrder indicates WithOrder received a branching factor below MinOrder.
var ErrBadOrder = errors.New("btree: order must be at least 3")

// node is the sum type Internal | Leaf. Code dispatches with a type switch.
type node interface {
	isNode()
}

// pair routes keys ≥ bound to child.
type pair struct {
	bound int
	child node
}

// internalNode holds between 2 and M pairs (at least (M+1)/2 unless it is the root).
type internalNode struct {
	pairs []pair
}

// leafNode holds exactly one record.
type leafNode struct {
	rec core.Record
}

func (*internalNode) isNode() {}
func (*leafNode) isNode()     {}

// SplitEvent describes one split of a full internal node, reported through WithOnSplit.
type SplitEvent struct {
	Bound int  // first bound of the new right node, passed to the parent
	Left  int  // pairs kept by the original node
	Right int  // pairs moved to the new node
	Root  bool // true when the split grew the tree by one level
}

// String renders e as "split at 6 (3|3)" with a " new root" suffix for root splits.
func (e SplitEvent) String() string {
	s := fmt.Sprintf("split at %d (%d|%d)", e.Bound, e.Left, e.Right)
	if e.Root {
		s += " new root"
	}

	return s
}

// Option configures a Tree at construction.
type Option func(*Tree)

// WithOrder sets the branching factor M. New rejects m < MinOrder.
func WithOrder(m int) Option {
	return func(t *Tree) {
		t.order = m
	}
}

// WithOnSplit installs fn as a hook invoked after each internal-node split.
func WithOnSplit(fn func(SplitEvent)) Option {
	return func(t *Tree) {
		t.onSplit = fn
	}
}

// Tree is an order-M B-tree. An empty tree has a nil root.
// A Tree is not safe for concurrent use; each instance is owned by one caller.
type Tree struct {
	root    node
	order   int
	size    int
	onSplit func(SplitEvent)
}

// New returns an empty tree configured by opts.
// Returns ErrBadOrder if the order is below MinOrder.
func New(opts ...Option) (*Tree, error) {
	t := &Tree{order: DefaultOrder}
	for _, opt := range opts {
		opt(t)
	}
	if t.order < MinOrder {
		return nil, fmt.Errorf("%w: got %d", ErrBadOrder, t.order)
	}

	return t, nil
}

// Order returns the branching factor M.
func (t *Tree) Order() int { return t.order }

// Len returns the number of records stored.
func (t *Tree) Len() int { return t.size }

// splitIndex is the last index kept by a node that splits: ceil((M+1)/2) − 1.
func (t *Tree) splitIndex() int { return (t.order+2)/2 - 1 }

// minPairs is the fewest pairs a non-root internal node may hold after an insert-driven split.
func (t *Tree) minPairs() int { return (t.order + 1) / 2 }
