package index

import (
	"fmt"
	"io"

	gbtree "github.com/google/btree"

	"github.com/katalvlaran/lvtree/core"
)

// referenceDegree is the google/btree node degree (up to 2*degree-1 items per
// node). It is unrelated to the order of KindBTree.
const referenceDegree = 32

// reference adapts github.com/google/btree to Index. It has no notion of
// pre- or post-order: every order ascends.
type reference struct {
	tree *gbtree.BTreeG[core.Record]
}

func newReference() *reference {
	return &reference{tree: gbtree.NewG(referenceDegree, func(a, b core.Record) bool { return a.Key < b.Key })}
}

func (r *reference) Insert(key int, field string) error {
	rec, err := core.NewRecord(key, field)
	if err != nil {
		return err
	}
	if r.tree.Has(rec) {
		return core.DuplicateKey(key)
	}
	r.tree.ReplaceOrInsert(rec)

	return nil
}

func (r *reference) Search(key int) (core.Record, bool) {
	return r.tree.Get(core.Record{Key: key})
}

func (r *reference) Delete(key int) error {
	if _, ok := r.tree.Delete(core.Record{Key: key}); !ok {
		return core.KeyNotFound(key)
	}

	return nil
}

func (r *reference) Traverse(order core.Order, visit core.Visitor) {
	switch order {
	case core.PreOrder, core.InOrder, core.PostOrder:
		r.tree.Ascend(func(rec core.Record) bool {
			visit(rec)
			return true
		})
	}
}

func (r *reference) Release() { r.tree.Clear(false) }

func (r *reference) Len() int { return r.tree.Len() }

// Render lists the records in ascending order; google/btree does not expose its nodes.
func (r *reference) Render(w io.Writer) error {
	var err error
	r.tree.Ascend(func(rec core.Record) bool {
		_, err = fmt.Fprintln(w, rec)
		return err == nil
	})

	return err
}
