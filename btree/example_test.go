package btree_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvtree/btree"
)

// ExampleTree_Insert grows an order-5 tree past its first root split.
func ExampleTree_Insert() {
	tr, err := btree.New(btree.WithOnSplit(func(e btree.SplitEvent) {
		fmt.Println(e)
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, k := range []int{4, 1, 3, 0, 2, 5} {
		if err := tr.Put(k, "A"); err != nil {
			fmt.Println("error:", err)
			return
		}
	}
	_ = tr.Render(os.Stdout)

	// Output:
	// split at 3 (3|3) new root
	// [* 3]
	//   [* 1 2]
	//     0, "A"
	//     1, "A"
	//     2, "A"
	//   [* 4 5]
	//     3, "A"
	//     4, "A"
	//     5, "A"
}

// ExampleTree_Search looks up keys in a small tree.
func ExampleTree_Search() {
	tr, _ := btree.New()
	for k, field := range map[int]string{10: "ten", 20: "twenty", 30: "thirty"} {
		_ = tr.Put(k, field)
	}

	for _, k := range []int{20, 25} {
		rec, ok := tr.Search(k)
		fmt.Println(k, ok, rec.Field)
	}

	// Output:
	// 20 true twenty
	// 25 false
}
