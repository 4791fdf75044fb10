package mask_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koldar/phdtester-go/bundle"
	"github.com/koldar/phdtester-go/mask"
)

func TestEqualsAndInSet(t *testing.T) {
	eq := mask.NewEquals("MERGE")
	require.True(t, eq.IsCompliant(0, "MERGE", nil))
	require.False(t, eq.IsCompliant(0, "BUBBLE", nil))

	in := mask.NewInSet("MERGE", "BUBBLE")
	require.True(t, in.IsCompliant(0, "BUBBLE", nil))
	require.False(t, in.IsCompliant(0, "QUICK", nil))
}

func TestIsNullAndIsNotNull(t *testing.T) {
	require.True(t, mask.NewIsNull().IsCompliant(0, nil, nil))
	require.False(t, mask.NewIsNull().IsCompliant(0, 1, nil))
	require.True(t, mask.NewIsNotNull().IsCompliant(0, 1, nil))
}

func TestMatchesRegex(t *testing.T) {
	m, err := mask.NewMatchesRegex(`^H\d+$`)
	require.NoError(t, err)
	require.True(t, m.IsCompliant(0, "H1", nil))
	require.False(t, m.IsCompliant(0, "X1", nil))
	require.False(t, m.IsCompliant(0, nil, nil))
}

func TestMatchesRegex_MalformedPatternReturnsRegexError(t *testing.T) {
	_, err := mask.NewMatchesRegex(`(unclosed`)
	require.Error(t, err)
	var regexErr *mask.RegexError
	require.ErrorAs(t, err, &regexErr)
}

func TestConstantOverSet(t *testing.T) {
	schema := bundle.NewSchema(bundle.StuffUnderTest, "algorithm")
	env := bundle.NewSchema(bundle.EnvironmentKind)

	mk := func(v string) *bundle.TestContext {
		sut := bundle.New(schema)
		_ = sut.Set("algorithm", v)
		tc, _ := bundle.NewTestContext(sut, bundle.New(env))
		return tc
	}

	set := []*bundle.TestContext{mk("MERGE"), mk("MERGE")}
	m := mask.NewConstantOverSet("algorithm")
	require.True(t, m.IsCompliant(0, "MERGE", set))

	set2 := []*bundle.TestContext{mk("MERGE"), mk("BUBBLE")}
	require.False(t, m.IsCompliant(0, "MERGE", set2))
}

func TestEqualsTo(t *testing.T) {
	m := mask.NewEqualsTo("target")
	require.False(t, m.IsCompliant(0, "MERGE", nil), "unbound EqualsTo is never compliant")

	m.SetParams(map[string]interface{}{"target": "MERGE"})
	require.True(t, m.IsCompliant(0, "MERGE", nil))
	require.False(t, m.IsCompliant(0, "BUBBLE", nil))
}
