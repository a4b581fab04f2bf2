package index_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/btree"
	"github.com/katalvlaran/lvtree/core"
	"github.com/katalvlaran/lvtree/index"
)

func mustNew(t *testing.T, kind index.Kind, opts ...index.Option) index.Index {
	t.Helper()
	idx, err := index.New(kind, opts...)
	require.NoError(t, err)

	return idx
}

func inOrder(idx index.Index) []core.Record {
	var out []core.Record
	idx.Traverse(core.InOrder, func(r core.Record) { out = append(out, r) })

	return out
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]index.Kind{
		"avl": index.KindAVL, "B-Tree": index.KindBTree, "btree": index.KindBTree,
		"bst": index.KindBST, "ref": index.KindReference, " reference ": index.KindReference,
	} {
		got, err := index.ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := index.ParseKind("skiplist")
	assert.ErrorIs(t, err, index.ErrUnknownKind)
	_, err = index.New("skiplist")
	assert.ErrorIs(t, err, index.ErrUnknownKind)
	assert.Len(t, index.Kinds(), 4)
}

func TestNew_BTreeOrder(t *testing.T) {
	_, err := index.New(index.KindBTree, index.WithOrder(2))
	assert.ErrorIs(t, err, btree.ErrBadOrder)
}

// TestContract runs the same scripted session against every kind.
func TestContract(t *testing.T) {
	for _, kind := range index.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			idx := mustNew(t, kind)
			for _, k := range []int{44, 55, 12, 42, 14, 18, 6, 67} {
				require.NoError(t, idx.Insert(k, "AAAA"))
			}
			require.Equal(t, 8, idx.Len())
			require.ErrorIs(t, idx.Insert(42, "BBBB"), core.ErrDuplicateKey)
			require.ErrorIs(t, idx.Insert(1, "this field is far too long to be stored"), core.ErrFieldTooLarge)

			require.NoError(t, idx.Delete(44))
			require.ErrorIs(t, idx.Delete(44), core.ErrKeyNotFound)
			_, ok := idx.Search(44)
			require.False(t, ok)
			rec, ok := idx.Search(55)
			require.True(t, ok)
			require.Equal(t, "AAAA", rec.Field)

			var keys []int
			for _, r := range inOrder(idx) {
				keys = append(keys, r.Key)
			}
			require.Equal(t, []int{6, 12, 14, 18, 42, 55, 67}, keys)

			if r, ok := idx.(index.Renderer); ok {
				var buf bytes.Buffer
				require.NoError(t, r.Render(&buf))
				assert.Contains(t, buf.String(), "55")
			}

			idx.Release()
			require.Equal(t, 0, idx.Len())
			require.Empty(t, inOrder(idx))
		})
	}
}

// TestDifferential replays one random workload on every kind and compares
// each result with the google/btree reference.
func TestDifferential(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	ref := mustNew(t, index.KindReference)
	subjects := map[index.Kind]index.Index{
		index.KindAVL:   mustNew(t, index.KindAVL),
		index.KindBTree: mustNew(t, index.KindBTree, index.WithOrder(4)),
		index.KindBST:   mustNew(t, index.KindBST),
	}

	for step := 0; step < 4000; step++ {
		k := rng.Intn(500)
		switch rng.Intn(4) {
		case 0:
			want := ref.Delete(k)
			for kind, idx := range subjects {
				got := idx.Delete(k)
				require.Equal(t, want == nil, got == nil, "%s delete %d at step %d", kind, k, step)
			}
		case 1:
			want, wok := ref.Search(k)
			for kind, idx := range subjects {
				got, ok := idx.Search(k)
				require.Equal(t, wok, ok, "%s search %d", kind, k)
				require.Equal(t, want, got, "%s search %d", kind, k)
			}
		default:
			field := fmt.Sprintf("f%d", step)
			want := ref.Insert(k, field)
			for kind, idx := range subjects {
				got := idx.Insert(k, field)
				require.Equal(t, want == nil, got == nil, "%s insert %d at step %d", kind, k, step)
			}
		}
	}

	expected := inOrder(ref)
	for kind, idx := range subjects {
		require.Equal(t, ref.Len(), idx.Len(), string(kind))
		require.Equal(t, expected, inOrder(idx), string(kind))
		if v, ok := idx.(index.Validator); ok {
			require.NoError(t, v.Validate(), string(kind))
		}
	}
}

func TestWithTrace(t *testing.T) {
	var lines []string
	trace := index.WithTrace(func(s string) { lines = append(lines, s) })

	avlIdx := mustNew(t, index.KindAVL, trace)
	for _, k := range []int{1, 2, 3} {
		require.NoError(t, avlIdx.Insert(k, "x"))
	}
	require.Equal(t, []string{"single rotation for insert at 1 (new root 2)"}, lines)

	lines = nil
	btIdx := mustNew(t, index.KindBTree, index.WithOrder(3), trace)
	for _, k := range []int{1, 2, 3, 4} {
		require.NoError(t, btIdx.Insert(k, "x"))
	}
	require.Equal(t, []string{"split at 3 (2|2) new root"}, lines)
}

func TestReference_Render(t *testing.T) {
	idx := mustNew(t, index.KindReference)
	require.NoError(t, idx.Insert(2, "b"))
	require.NoError(t, idx.Insert(1, "a"))

	var buf bytes.Buffer
	require.NoError(t, idx.(index.Renderer).Render(&buf))
	assert.Equal(t, "00000001, \"a\"\n00000002, \"b\"\n", buf.String())
}

func TestReference_IgnoresOrder(t *testing.T) {
	// orders that btree.New rejects are irrelevant to the reference backend
	idx := mustNew(t, index.KindReference, index.WithOrder(1))
	for k := 0; k < 200; k++ {
		require.NoError(t, idx.Insert(k, "v"))
	}
	assert.Equal(t, 200, idx.Len())
	rec, ok := idx.Search(150)
	require.True(t, ok)
	assert.Equal(t, core.Record{Key: 150, Field: "v"}, rec)
}
