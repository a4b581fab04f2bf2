package index

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvtree/avl"
	"github.com/katalvlaran/lvtree/bst"
	"github.com/katalvlaran/lvtree/btree"
	"github.com/katalvlaran/lvtree/core"
)

// ErrUnknownKind indicates an unrecognized index kind.
var ErrUnknownKind = errors.New("index: unknown kind")

// Index is the contract shared by every ordered structure.
// Implementations are not safe for concurrent use.
type Index interface {
	// Insert stores {key, field}; core.ErrDuplicateKey if key is present.
	Insert(key int, field string) error
	// Search returns the record with key, if present.
	Search(key int) (core.Record, bool)
	// Delete removes key; core.ErrKeyNotFound if absent.
	Delete(key int) error
	// Traverse visits every record in the given order.
	Traverse(order core.Order, visit core.Visitor)
	// Release drops every record; the index stays usable and empty.
	Release()
	// Len returns the number of records stored.
	Len() int
}

// Renderer is implemented by indexes that can print their shape.
type Renderer interface {
	Render(w io.Writer) error
}

// Validator is implemented by indexes that can check their own invariants.
type Validator interface {
	Validate() error
}

// Kind names an Index implementation.
type Kind string

const (
	KindAVL       Kind = "avl"
	KindBTree     Kind = "btree"
	KindBST       Kind = "bst"
	KindReference Kind = "reference"
)

// Kinds lists every supported kind in display order.
func Kinds() []Kind {
	return []Kind{KindAVL, KindBTree, KindBST, KindReference}
}

// ParseKind maps a case-insensitive name ("avl", "b-tree", "bst", "ref", ...) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "avl":
		return KindAVL, nil
	case "btree", "b-tree":
		return KindBTree, nil
	case "bst", "binary":
		return KindBST, nil
	case "reference", "ref", "google":
		return KindReference, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Options holds construction parameters shared by all kinds.
type Options struct {
	Order int          // B-tree branching factor; 0 keeps the default
	Trace func(string) // receives rotation/split descriptions; nil disables
}

// Option configures New.
type Option func(*Options)

// WithOrder sets the branching factor of KindBTree. Other kinds ignore it;
// KindReference always uses a fixed google/btree degree.
func WithOrder(m int) Option {
	return func(o *Options) { o.Order = m }
}

// WithTrace installs fn to receive one line per structural event.
func WithTrace(fn func(string)) Option {
	return func(o *Options) { o.Trace = fn }
}

// New builds an empty index of the given kind.
func New(kind Kind, opts ...Option) (Index, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}

	switch kind {
	case KindAVL:
		var aopts []avl.Option
		if o.Trace != nil {
			aopts = append(aopts, avl.WithOnRotate(func(e avl.RotationEvent) { o.Trace(e.String()) }))
		}
		return &avlIndex{tree: avl.New(aopts...)}, nil

	case KindBTree:
		var bopts []btree.Option
		if o.Order != 0 {
			bopts = append(bopts, btree.WithOrder(o.Order))
		}
		if o.Trace != nil {
			bopts = append(bopts, btree.WithOnSplit(func(e btree.SplitEvent) { o.Trace(e.String()) }))
		}
		tr, err := btree.New(bopts...)
		if err != nil {
			return nil, err
		}
		return &btreeIndex{tree: tr}, nil

	case KindBST:
		return &bstIndex{tree: bst.New()}, nil

	case KindReference:
		return newReference(), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
}
