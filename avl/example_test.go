package avl_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvtree/avl"
	"github.com/katalvlaran/lvtree/core"
)

// ExampleTree_Render inserts 1, 3, 2: the third insert unbalances the root and
// a double rotation lifts 2 to the top.
func ExampleTree_Render() {
	tr := avl.New(avl.WithOnRotate(func(e avl.RotationEvent) {
		fmt.Println(e)
	}))
	for _, k := range []int{1, 3, 2} {
		if err := tr.Put(k, "AAAA"); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	fmt.Println("VISUALISING TREE")
	_ = tr.Render(os.Stdout)

	// Output:
	// double rotation for insert at 1 (new root 2)
	// VISUALISING TREE
	//  +-  3, "AAAA"
	// +-  2, "AAAA"
	//  +-  1, "AAAA"
}

// ExampleTree_Delete removes the root of the demo tree and shows the
// remaining keys in ascending order.
func ExampleTree_Delete() {
	tr := avl.New()
	for _, k := range []int{44, 55, 12, 42, 14, 18, 6, 67} {
		_ = tr.Put(k, "AAAA")
	}

	if err := tr.Delete(44); err != nil {
		fmt.Println("error:", err)
	}
	_, found := tr.Search(44)
	fmt.Println("44 found:", found)

	if err := tr.Delete(44); err != nil {
		fmt.Println("error:", err)
	}

	tr.InOrder(func(r core.Record) { fmt.Print(r.Key, " ") })
	fmt.Println()

	// Output:
	// 44 found: false
	// error: core: key not found: 44
	// 6 12 14 18 42 55 67
}
