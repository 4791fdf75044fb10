package enumerator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koldar/phdtester-go/condition"
	"github.com/koldar/phdtester-go/depgraph"
	"github.com/koldar/phdtester-go/enumerator"
	"github.com/koldar/phdtester-go/option"
)

// Scenario 1 (spec.md §8): simple enumeration, no constraints.
func TestStream_SimpleEnumeration(t *testing.T) {
	g, err := depgraph.NewBuilder().
		AddChoice(option.UnderTest, "algorithm", "", option.Str, []interface{}{"BUBBLE", "MERGE"}, nil, false).
		AddValue(option.Environment, "size", "", option.Int, nil, false).
		Build()
	require.NoError(t, err)

	contexts, err := enumerator.Stream(g, enumerator.ValueLists{
		"algorithm": {"BUBBLE", "MERGE"},
		"size":      {int64(10), int64(100)},
	})
	require.NoError(t, err)
	require.Len(t, contexts, 4)

	expect := [][2]interface{}{
		{"BUBBLE", int64(10)}, {"BUBBLE", int64(100)},
		{"MERGE", int64(10)}, {"MERGE", int64(100)},
	}
	for i, want := range expect {
		alg, _ := contexts[i].Get("algorithm")
		size, _ := contexts[i].Get("size")
		require.Equal(t, want[0], alg, "context %d algorithm", i)
		require.Equal(t, want[1], size, "context %d size", i)
	}
}

// Scenario 2 (spec.md §8): relevance pruning collapses duplicates.
func TestStream_RelevancePruningDeduplicates(t *testing.T) {
	g, err := depgraph.NewBuilder().
		AddChoice(option.UnderTest, "algorithm", "", option.Str, []interface{}{"BUBBLE", "MERGE"}, nil, false).
		AddValue(option.UnderTest, "heuristic", "", option.Str, nil, false).
		ConstraintOptionValueNeedsOption("algorithm", []interface{}{"MERGE"}, "heuristic").
		Build()
	require.NoError(t, err)

	contexts, err := enumerator.Stream(g, enumerator.ValueLists{
		"algorithm": {"BUBBLE", "MERGE"},
		"heuristic": {"H1", "H2"},
	})
	require.NoError(t, err)

	// BUBBLE collapses to a single context regardless of heuristic (pruned
	// to null and deduplicated); MERGE keeps one context per heuristic.
	require.Len(t, contexts, 3)

	bubble, _ := contexts[0].Get("algorithm")
	require.Equal(t, "BUBBLE", bubble)
	heuristic, _ := contexts[0].Get("heuristic")
	require.Nil(t, heuristic)
}

// Scenario 3 (spec.md §8): essential-to-run pre-filter.
func TestStream_EssentialPreFilter(t *testing.T) {
	g, err := depgraph.NewBuilder().
		AddValue(option.UnderTest, "a", "", option.Int, nil, false).
		AddValue(option.UnderTest, "b", "", option.Int, nil, false).
		ConstraintQuickWhichHasToHappen([]string{"a", "b"}, condition.PredicateFunc(func(eps []condition.Endpoint) bool {
			return eps[0].Value.(int64) < eps[1].Value.(int64)
		})).
		Build()
	require.NoError(t, err)

	contexts, err := enumerator.Stream(g, enumerator.ValueLists{
		"a": {int64(1), int64(2), int64(3)},
		"b": {int64(1), int64(2), int64(3)},
	})
	require.NoError(t, err)
	require.Len(t, contexts, 3)

	expect := [][2]int64{{1, 2}, {1, 3}, {2, 3}}
	for i, want := range expect {
		a, _ := contexts[i].Get("a")
		b, _ := contexts[i].Get("b")
		require.Equal(t, want[0], a)
		require.Equal(t, want[1], b)
	}
}

func TestStream_MissingValueListErrors(t *testing.T) {
	g, err := depgraph.NewBuilder().
		AddValue(option.UnderTest, "a", "", option.Int, nil, false).
		Build()
	require.NoError(t, err)

	_, err = enumerator.Stream(g, enumerator.ValueLists{})
	require.ErrorIs(t, err, enumerator.ErrMissingValueList)
}

func TestStream_EmptyResultIsLegal(t *testing.T) {
	g, err := depgraph.NewBuilder().
		AddValue(option.UnderTest, "a", "", option.Int, nil, false).
		AddValue(option.UnderTest, "b", "", option.Int, nil, false).
		ConstraintQuickCannotHappen([]string{"a", "b"}, condition.PredicateFunc(func([]condition.Endpoint) bool { return true })).
		Build()
	require.NoError(t, err)

	contexts, err := enumerator.Stream(g, enumerator.ValueLists{
		"a": {int64(1)},
		"b": {int64(2)},
	})
	require.NoError(t, err)
	require.NotNil(t, contexts)
	require.Empty(t, contexts)
}
