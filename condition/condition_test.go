package condition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koldar/phdtester-go/condition"
)

func TestSimplePairCondition(t *testing.T) {
	c := condition.NewSimplePairCondition(true, true, condition.Normal, func(a, b interface{}) bool {
		return a == b
	})
	out := c.Accept(nil, condition.Endpoint{Name: "a", Value: 1}, []condition.Endpoint{{Name: "b", Value: 1}})
	require.Equal(t, condition.SUCCESS, out)

	out = c.Accept(nil, condition.Endpoint{Name: "a", Value: 1}, []condition.Endpoint{{Name: "b", Value: 2}})
	require.Equal(t, condition.REJECT, out)
}

func TestRequiresMapping_NonNullSourceNullSinksIsReject(t *testing.T) {
	c := condition.NewRequiresMapping(false, true, condition.Normal, func(v interface{}) interface{} {
		return v.(string) + "SORT"
	})
	out := c.Accept(nil, condition.Endpoint{Name: "algorithm", Value: "MERGE"}, []condition.Endpoint{{Name: "fullAlgorithm", Value: nil}})
	require.Equal(t, condition.REJECT, out, "a non-null source with all-null sinks must REJECT, not NOT_RELEVANT")
}

func TestRequiresMapping_Success(t *testing.T) {
	c := condition.NewRequiresMapping(false, true, condition.Normal, func(v interface{}) interface{} {
		return v.(string) + "SORT"
	})
	out := c.Accept(nil, condition.Endpoint{Name: "algorithm", Value: "MERGE"}, []condition.Endpoint{{Name: "fullAlgorithm", Value: "MERGESORT"}})
	require.Equal(t, condition.SUCCESS, out)
}

func TestInSetImpliesNotNullSink(t *testing.T) {
	c := condition.NewInSetImpliesNotNullSink(true, true, condition.Important, []interface{}{"MERGE"})

	out := c.Accept(nil, condition.Endpoint{Name: "algorithm", Value: "BUBBLE"}, []condition.Endpoint{{Name: "heuristic", Value: nil}})
	require.Equal(t, condition.NotRelevant, out)

	out = c.Accept(nil, condition.Endpoint{Name: "algorithm", Value: "MERGE"}, []condition.Endpoint{{Name: "heuristic", Value: nil}})
	require.Equal(t, condition.REJECT, out)

	out = c.Accept(nil, condition.Endpoint{Name: "algorithm", Value: "MERGE"}, []condition.Endpoint{{Name: "heuristic", Value: "H1"}})
	require.Equal(t, condition.SUCCESS, out)
}

func TestNeedsToHappenAndCantHappen(t *testing.T) {
	pred := condition.PredicateFunc(func(eps []condition.Endpoint) bool {
		return len(eps) == 2 && eps[0].Value == eps[1].Value
	})

	needs := condition.NewNeedsToHappen(false, true, condition.Normal, pred)
	out := needs.Accept(nil, condition.Endpoint{Value: 1}, []condition.Endpoint{{Value: 1}})
	require.Equal(t, condition.SUCCESS, out)

	cant := condition.NewCantHappen(false, true, condition.Normal, pred)
	out = cant.Accept(nil, condition.Endpoint{Value: 1}, []condition.Endpoint{{Value: 1}})
	require.Equal(t, condition.REJECT, out)
}

func TestPredicateCombinators(t *testing.T) {
	always := condition.PredicateFunc(func([]condition.Endpoint) bool { return true })
	never := condition.PredicateFunc(func([]condition.Endpoint) bool { return false })

	require.True(t, condition.And(always, always).Eval(nil))
	require.False(t, condition.And(always, never).Eval(nil))
	require.True(t, condition.Or(never, always).Eval(nil))
	require.True(t, condition.Not(never).Eval(nil))
}
