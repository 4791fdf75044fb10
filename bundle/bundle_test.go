package bundle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koldar/phdtester-go/bundle"
)

func newSUT() *bundle.Bundle {
	schema := bundle.NewSchema(bundle.StuffUnderTest, "algorithm", "heuristic")
	return bundle.New(schema)
}

func newEnv() *bundle.Bundle {
	schema := bundle.NewSchema(bundle.EnvironmentKind, "size")
	return bundle.New(schema)
}

func TestBundle_SetGet(t *testing.T) {
	b := newSUT()
	require.ErrorIs(t, b.Set("unknown", 1), bundle.ErrUnknownOption)

	require.NoError(t, b.Set("algorithm", "MERGE"))
	v, ok := b.Get("algorithm")
	require.True(t, ok)
	require.Equal(t, "MERGE", v)

	require.True(t, b.IsNull("heuristic"))
}

func TestTestContext_DisjointNames(t *testing.T) {
	stuff := newSUT()
	env := newEnv()
	tc, err := bundle.NewTestContext(stuff, env)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"algorithm", "heuristic", "size"}, tc.Names())
}

func TestTestContext_OverlappingNamesRejected(t *testing.T) {
	stuff := bundle.New(bundle.NewSchema(bundle.StuffUnderTest, "size"))
	env := newEnv()
	_, err := bundle.NewTestContext(stuff, env)
	require.ErrorIs(t, err, bundle.ErrOverlappingNames)
}

func TestTestContext_Equal(t *testing.T) {
	stuff := newSUT()
	env := newEnv()
	tc1, err := bundle.NewTestContext(stuff, env)
	require.NoError(t, err)

	tc2 := tc1.Clone()
	require.True(t, tc1.Equal(tc2))

	require.NoError(t, tc2.Set("algorithm", "BUBBLE"))
	require.False(t, tc1.Equal(tc2))
}

func TestTestContext_Key(t *testing.T) {
	stuff := newSUT()
	env := newEnv()
	tc, err := bundle.NewTestContext(stuff, env)
	require.NoError(t, err)
	require.NoError(t, tc.Set("algorithm", "MERGE"))
	require.NoError(t, tc.Set("size", int64(10)))

	other := tc.Clone()
	require.Equal(t, tc.Key(), other.Key())

	require.NoError(t, other.Set("size", int64(20)))
	require.NotEqual(t, tc.Key(), other.Key())
}
