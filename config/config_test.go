package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/btree"
	"github.com/katalvlaran/lvtree/core"
	"github.com/katalvlaran/lvtree/index"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvtree.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadDefaults(t *testing.T) {
	_, err := Load("/nonexistent/path/lvtree.yaml")
	require.ErrorIs(t, err, fs.ErrNotExist, "explicit missing path must fail")
	assert.Contains(t, err.Error(), "config:")

	chdir(t, t.TempDir()) // no lvtree.yaml in the search paths
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "avl", cfg.Index.Kind)
	assert.Equal(t, btree.DefaultOrder, cfg.Index.Order)
	assert.Equal(t, "lvtree> ", cfg.Shell.Prompt)
	assert.False(t, cfg.Shell.Trace)
	assert.Empty(t, cfg.Seed)
	assert.Equal(t, index.KindAVL, cfg.Kind())
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
index:
  kind: b-tree
  order: 7
shell:
  trace: true
seed:
  - {key: 8, field: A}
  - {key: 3, field: B}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, index.KindBTree, cfg.Kind())
	assert.Equal(t, 7, cfg.Index.Order)
	assert.True(t, cfg.Shell.Trace)
	assert.Equal(t, "lvtree> ", cfg.Shell.Prompt, "missing prompt keeps default")
	assert.Equal(t, []RecordConfig{{Key: 8, Field: "A"}, {Key: 3, Field: "B"}}, cfg.Seed)
}

func TestLoadSearchPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "lvtree.yaml"), []byte("index:\n  kind: bst\n"), 0o644))
	chdir(t, dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, index.KindBST, cfg.Kind())
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]struct {
		yaml string
		want error
	}{
		"unknown kind": {yaml: "index: {kind: skiplist}", want: index.ErrUnknownKind},
		"small order":  {yaml: "index: {order: 2}", want: btree.ErrBadOrder},
		"long field":   {yaml: "seed: [{key: 1, field: '0123456789012345678901234567890123'}]", want: core.ErrFieldTooLarge},
		"dup seed":     {yaml: "seed: [{key: 1, field: a}, {key: 1, field: b}]", want: core.ErrDuplicateKey},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.yaml))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := Load(writeConfig(t, "index: ["))
	require.Error(t, err)
}

func TestLoadSearchPathUnreadable(t *testing.T) {
	dir := t.TempDir()
	// a directory in place of the file exists but cannot be read as one
	require.NoError(t, os.Mkdir(filepath.Join(dir, "lvtree.yaml"), 0o755))
	chdir(t, dir)

	_, err := Load("")
	require.Error(t, err)
	assert.NotErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "config:")
}
