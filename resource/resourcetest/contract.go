// Package resourcetest exercises the resource.Manager contract identically
// against every backend (memstore, fsstore, sqlstore), so a single suite of
// assertions proves the three implementations agree.
package resourcetest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koldar/phdtester-go/resource"
)

// Run exercises mgr against the common resource.Manager contract.
func Run(t *testing.T, mgr resource.Manager) {
	t.Helper()
	ctx := context.Background()

	binKey := resource.Key{Path: "runs/1", Name: "stdout", DataType: resource.Binary}
	tabKey := resource.Key{Path: "runs/1", Name: "timings", DataType: resource.Tabular}
	absentKey := resource.Key{Path: "runs/2", Name: "missing", DataType: resource.Binary}

	ok, err := mgr.Contains(ctx, binKey)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = mgr.Get(ctx, absentKey)
	require.True(t, errors.Is(err, resource.ErrResourceNotFound))

	require.NoError(t, mgr.SaveAt(ctx, binKey, []byte("hello world")))
	ok, err = mgr.Contains(ctx, binKey)
	require.NoError(t, err)
	require.True(t, ok)

	content, err := mgr.Get(ctx, binKey)
	require.NoError(t, err)
	require.Equal(t, []byte("hello world"), content)

	head, err := mgr.HeadRaw(ctx, binKey, 5)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), head)

	tail, err := mgr.TailRaw(ctx, binKey, 5)
	require.NoError(t, err)
	require.Equal(t, []byte("world"), tail)

	rows := []resource.Row{
		{"name": "bubble", "ms": "12"},
		{"name": "merge", "ms": "4"},
		{"name": "quick", "ms": "3"},
	}
	require.NoError(t, mgr.SaveRows(ctx, tabKey, rows))

	got, err := mgr.IterateOver(ctx, tabKey)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "bubble", got[0]["name"])

	headRows, err := mgr.Head(ctx, tabKey, 2)
	require.NoError(t, err)
	require.Len(t, headRows, 2)
	require.Equal(t, "bubble", headRows[0]["name"])
	require.Equal(t, "merge", headRows[1]["name"])

	tailRows, err := mgr.Tail(ctx, tabKey, 2)
	require.NoError(t, err)
	require.Len(t, tailRows, 2)
	require.Equal(t, "merge", tailRows[0]["name"])
	require.Equal(t, "quick", tailRows[1]["name"])

	_, err = mgr.IterateOver(ctx, binKey)
	require.True(t, errors.Is(err, resource.ErrResourceTypeUnhandled))

	keys, err := mgr.GetAll(ctx, "runs/1", true, resource.DataType(0), false)
	require.NoError(t, err)
	require.Len(t, keys, 2)

	keys, err = mgr.GetAll(ctx, "", false, resource.Tabular, true)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	require.Equal(t, tabKey.Name, keys[0].Name)

	require.NoError(t, mgr.Remove(ctx, binKey))
	ok, err = mgr.Contains(ctx, binKey)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, mgr.Remove(ctx, absentKey))
}
