package depgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koldar/phdtester-go/bundle"
	"github.com/koldar/phdtester-go/condition"
	"github.com/koldar/phdtester-go/depgraph"
	"github.com/koldar/phdtester-go/option"
)

func newSortingGraph(t *testing.T) *depgraph.Graph {
	t.Helper()
	b := depgraph.NewBuilder().
		AddChoice(option.UnderTest, "algorithm", "sorting algorithm", option.Str,
			[]interface{}{"BUBBLE", "MERGE"}, nil, false).
		AddValue(option.UnderTest, "heuristic", "merge heuristic", option.Str, nil, false).
		AddValue(option.Environment, "size", "input size", option.Int, nil, false).
		ConstraintOptionValueNeedsOption("algorithm", []interface{}{"MERGE"}, "heuristic")

	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func newContext(t *testing.T, g *depgraph.Graph) *bundle.TestContext {
	t.Helper()
	sut := bundle.New(bundle.NewSchema(bundle.StuffUnderTest, "algorithm", "heuristic"))
	env := bundle.New(bundle.NewSchema(bundle.EnvironmentKind, "size"))
	tc, err := bundle.NewTestContext(sut, env)
	require.NoError(t, err)
	_ = g
	return tc
}

func TestCheck_RelevancePruning_BubbleDoesNotNeedHeuristic(t *testing.T) {
	g := newSortingGraph(t)
	tc := newContext(t, g)
	require.NoError(t, tc.Set("algorithm", "BUBBLE"))
	require.NoError(t, tc.Set("heuristic", "IGNORED"))
	require.NoError(t, tc.Set("size", int64(10)))

	out, ok := g.Check(tc)
	require.True(t, ok)
	v, _ := out.Get("heuristic")
	require.Nil(t, v, "heuristic is not relevant when algorithm is BUBBLE and must be pruned to null")
}

func TestCheck_MergeRequiresHeuristic(t *testing.T) {
	g := newSortingGraph(t)
	tc := newContext(t, g)
	require.NoError(t, tc.Set("algorithm", "MERGE"))
	require.NoError(t, tc.Set("heuristic", nil))
	require.NoError(t, tc.Set("size", int64(10)))

	_, ok := g.Check(tc)
	require.False(t, ok, "MERGE with a null heuristic must fail the IMPORTANT constraint")
}

func TestCheck_MergeWithHeuristicSucceeds(t *testing.T) {
	g := newSortingGraph(t)
	tc := newContext(t, g)
	require.NoError(t, tc.Set("algorithm", "MERGE"))
	require.NoError(t, tc.Set("heuristic", "H1"))
	require.NoError(t, tc.Set("size", int64(10)))

	out, ok := g.Check(tc)
	require.True(t, ok)
	v, _ := out.Get("heuristic")
	require.Equal(t, "H1", v)
}

func TestCheck_EssentialPreFilterRejectsEarly(t *testing.T) {
	bldr := depgraph.NewBuilder().
		AddValue(option.UnderTest, "a", "", option.Int, nil, false).
		AddValue(option.UnderTest, "b", "", option.Int, nil, false).
		ConstraintQuickCannotHappen([]string{"a", "b"}, condition.PredicateFunc(func(eps []condition.Endpoint) bool {
			return eps[0].Value == int64(0) && eps[1].Value == int64(0)
		}))
	g, err := bldr.Build()
	require.NoError(t, err)

	sut := bundle.New(bundle.NewSchema(bundle.StuffUnderTest, "a", "b"))
	env := bundle.New(bundle.NewSchema(bundle.EnvironmentKind))
	tc, err := bundle.NewTestContext(sut, env)
	require.NoError(t, err)
	require.NoError(t, tc.Set("a", int64(0)))
	require.NoError(t, tc.Set("b", int64(0)))

	_, ok := g.Check(tc)
	require.False(t, ok)
}

func TestBuilder_UnknownOptionInConstraintAccumulatesError(t *testing.T) {
	_, err := depgraph.NewBuilder().
		AddValue(option.UnderTest, "a", "", option.Int, nil, false).
		ConstraintOptionValueNeedsOption("a", []interface{}{int64(1)}, "nonexistent").
		Build()
	require.ErrorIs(t, err, depgraph.ErrBuildFailed)
	require.ErrorIs(t, err, depgraph.ErrUnknownOption)
}

func TestBuilder_DuplicateOptionAccumulatesError(t *testing.T) {
	_, err := depgraph.NewBuilder().
		AddValue(option.UnderTest, "a", "", option.Int, nil, false).
		AddValue(option.UnderTest, "a", "", option.Int, nil, false).
		Build()
	require.ErrorIs(t, err, depgraph.ErrDuplicateOption)
}

func TestGraph_OptionsByBelonging(t *testing.T) {
	g := newSortingGraph(t)
	underTest := g.OptionsByBelonging(option.UnderTest)
	require.Len(t, underTest, 2)
	env := g.OptionsByBelonging(option.Environment)
	require.Len(t, env, 1)
	require.Equal(t, "size", env[0].Name)
}
