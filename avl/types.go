package avl

import (
	"fmt"

	"github.com/katalvlaran/lvtree/core"
)

// Bias is the cached sign of height(left) − height(right) for a node.
type Bias int8

const (
	// Balanced: both subtrees have the same height.
	Balanced Bias = iota
	// LeansLeft: the left subtree is one level taller.
	LeansLeft
	// LeansRight: the right subtree is one level taller.
	LeansRight
)

// String returns "balanced", "leans-left" or "leans-right".
func (b Bias) String() string {
	switch b {
	case Balanced:
		return "balanced"
	case LeansLeft:
		return "leans-left"
	case LeansRight:
		return "leans-right"
	default:
		return fmt.Sprintf("Bias(%d)", int8(b))
	}
}

// dir indexes Node.child.
type dir int

const (
	left  dir = 0
	right dir = 1
)

func (d dir) opposite() dir { return 1 - d }

// lean returns the Bias of a node whose d subtree is the taller one.
func lean(d dir) Bias {
	if d == left {
		return LeansLeft
	}

	return LeansRight
}

// Node is a single AVL node. Fields are read through accessors only.
type Node struct {
	rec   core.Record
	child [2]*Node // left, right
	bias  Bias
}

// Record returns the record stored in n.
func (n *Node) Record() core.Record { return n.rec }

// Left returns the left child (smaller keys), or nil.
func (n *Node) Left() *Node { return n.child[left] }

// Right returns the right child (larger keys), or nil.
func (n *Node) Right() *Node { return n.child[right] }

// Bias returns the cached balance of n.
func (n *Node) Bias() Bias { return n.bias }

// RotationKind distinguishes single from double rotations.
type RotationKind int

const (
	// Single rotation: the heavy child leans the same way as its parent.
	Single RotationKind = iota
	// Double rotation: the heavy child leans the opposite way.
	Double
)

// String returns "single" or "double".
func (k RotationKind) String() string {
	if k == Double {
		return "double"
	}

	return "single"
}

// Cause records which mutation triggered a rotation.
type Cause int

const (
	// ForInsert marks rotations performed by rebalance-for-insert.
	ForInsert Cause = iota
	// ForDelete marks rotations performed by rebalance-for-delete.
	ForDelete
)

// String returns "insert" or "delete".
func (c Cause) String() string {
	if c == ForDelete {
		return "delete"
	}

	return "insert"
}

// RotationEvent describes one rotation, reported through WithOnRotate.
type RotationEvent struct {
	Kind  RotationKind
	Cause Cause
	Pivot int // key of the subtree root before the rotation
	Root  int // key of the subtree root after the rotation
}

// String renders e as "single rotation for insert at 44 (new root 42)".
func (e RotationEvent) String() string {
	return fmt.Sprintf("%s rotation for %s at %d (new root %d)", e.Kind, e.Cause, e.Pivot, e.Root)
}

// Option configures a Tree at construction.
type Option func(*Tree)

// WithOnRotate installs fn as a hook invoked after every rotation.
// A nil fn disables the hook.
func WithOnRotate(fn func(RotationEvent)) Option {
	return func(t *Tree) {
		t.onRotate = fn
	}
}

// Tree is an AVL tree. The zero value is an empty tree without hooks.
// A Tree is not safe for concurrent use; each instance is owned by one caller.
type Tree struct {
	root     *Node
	size     int
	onRotate func(RotationEvent)
}

// New returns an empty tree configured by opts.
func New(opts ...Option) *Tree {
	t := &Tree{}
	for _, opt := range opts {
		opt(t)
	}

	return t
}
