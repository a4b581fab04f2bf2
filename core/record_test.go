package core_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/core"
)

func TestNewRecord_Valid(t *testing.T) {
	rec, err := core.NewRecord(42, "AAAA")
	require.NoError(t, err)
	assert.Equal(t, core.Record{Key: 42, Field: "AAAA"}, rec)
}

func TestNewRecord_FieldBoundary(t *testing.T) {
	_, err := core.NewRecord(1, strings.Repeat("x", core.MaxFieldBytes))
	require.NoError(t, err, "exactly MaxFieldBytes must be accepted")

	_, err = core.NewRecord(1, strings.Repeat("x", core.MaxFieldBytes+1))
	require.ErrorIs(t, err, core.ErrFieldTooLarge)
}

func TestRecord_String(t *testing.T) {
	assert.Equal(t, `00000044, "AAAA"`, core.Record{Key: 44, Field: "AAAA"}.String())
}

func TestParseOrder(t *testing.T) {
	cases := map[string]core.Order{
		"pre":      core.PreOrder,
		"IN":       core.InOrder,
		" post ":   core.PostOrder,
		"in-order": core.InOrder,
	}
	for in, want := range cases {
		got, err := core.ParseOrder(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.NotEmpty(t, got.String())
	}

	_, err := core.ParseOrder("level")
	assert.ErrorIs(t, err, core.ErrUnknownOrder)
	assert.Equal(t, "Order(9)", core.Order(9).String())
}

func TestKeyErrors(t *testing.T) {
	err := core.DuplicateKey(7)
	assert.ErrorIs(t, err, core.ErrDuplicateKey)
	assert.Contains(t, err.Error(), "7")

	err = core.KeyNotFound(8)
	assert.ErrorIs(t, err, core.ErrKeyNotFound)
	assert.Contains(t, err.Error(), "8")
}

func TestInvariantError(t *testing.T) {
	var err error = &core.InvariantError{Op: "rebalance-insert", Key: 3, Want: "left|right", Got: "balanced"}
	assert.ErrorIs(t, err, core.ErrInvariant)

	var ie *core.InvariantError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 3, ie.Key)
	assert.Contains(t, err.Error(), "rebalance-insert")
	assert.Contains(t, err.Error(), "balanced")
}
