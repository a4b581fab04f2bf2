package btree_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvtree/btree"
)

// BenchmarkInsert_Sorted10000 inserts 10,000 ascending keys into an order-5 tree.
func BenchmarkInsert_Sorted10000(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tr, _ := btree.New()
		for k := 0; k < 10000; k++ {
			_ = tr.Put(k, "v")
		}
	}
}

// BenchmarkSearch_Order32 measures lookups in a wide tree built from a random permutation.
func BenchmarkSearch_Order32(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	keys := rng.Perm(10000)
	tr, _ := btree.New(btree.WithOrder(32))
	for _, k := range keys {
		_ = tr.Put(k, "v")
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = tr.Search(keys[i%len(keys)])
	}
}
