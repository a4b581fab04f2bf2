package index

import (
	"io"

	"github.com/katalvlaran/lvtree/avl"
	"github.com/katalvlaran/lvtree/bst"
	"github.com/katalvlaran/lvtree/btree"
	"github.com/katalvlaran/lvtree/core"
)

type avlIndex struct{ tree *avl.Tree }

func (x *avlIndex) Insert(key int, field string) error            { return x.tree.Put(key, field) }
func (x *avlIndex) Search(key int) (core.Record, bool)            { return x.tree.Search(key) }
func (x *avlIndex) Delete(key int) error                          { return x.tree.Delete(key) }
func (x *avlIndex) Traverse(order core.Order, visit core.Visitor) { x.tree.Traverse(order, visit) }
func (x *avlIndex) Release()                                      { x.tree.Release() }
func (x *avlIndex) Len() int                                      { return x.tree.Len() }
func (x *avlIndex) Render(w io.Writer) error                      { return x.tree.Render(w) }
func (x *avlIndex) Validate() error                               { return x.tree.Validate() }

type btreeIndex struct{ tree *btree.Tree }

func (x *btreeIndex) Insert(key int, field string) error            { return x.tree.Put(key, field) }
func (x *btreeIndex) Search(key int) (core.Record, bool)            { return x.tree.Search(key) }
func (x *btreeIndex) Delete(key int) error                          { return x.tree.Delete(key) }
func (x *btreeIndex) Traverse(order core.Order, visit core.Visitor) { x.tree.Traverse(order, visit) }
func (x *btreeIndex) Release()                                      { x.tree.Release() }
func (x *btreeIndex) Len() int                                      { return x.tree.Len() }
func (x *btreeIndex) Render(w io.Writer) error                      { return x.tree.Render(w) }
func (x *btreeIndex) Validate() error                               { return x.tree.Validate() }

type bstIndex struct{ tree *bst.Tree }

func (x *bstIndex) Insert(key int, field string) error            { return x.tree.Put(key, field) }
func (x *bstIndex) Search(key int) (core.Record, bool)            { return x.tree.Search(key) }
func (x *bstIndex) Delete(key int) error                          { return x.tree.Delete(key) }
func (x *bstIndex) Traverse(order core.Order, visit core.Visitor) { x.tree.Traverse(order, visit) }
func (x *bstIndex) Release()                                      { x.tree.Release() }
func (x *bstIndex) Len() int                                      { return x.tree.Len() }
func (x *bstIndex) Render(w io.Writer) error                      { return x.tree.Render(w) }
