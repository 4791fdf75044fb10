package curve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koldar/phdtester-go/curve"
	"github.com/koldar/phdtester-go/funcdict"
)

// Scenario 4 (spec.md §8): functions-dictionary quantization.
func TestQuantizeXAxis(t *testing.T) {
	fd := funcdict.New()
	fd.Update("f", 0.10, 3)
	fd.Update("f", 1.10, 5)
	fd.Update("f", 1.80, 7)
	fd.Update("f", 2.30, 9)

	q := curve.QuantizeXAxis{
		Levels:    []float64{0, 1, 2, 3},
		Merge:     curve.MergeMax,
		SlotValue: curve.SlotValueRight,
	}
	status, out, err := q.AlterCurves(fd)
	require.NoError(t, err)
	require.Equal(t, curve.Unknown, status)

	require.Equal(t, float64(3), out.Get("f", 1))
	require.Equal(t, float64(7), out.Get("f", 2))
	require.Equal(t, float64(9), out.Get("f", 3))
}

// Scenario 5 (spec.md §8): NaN-fill pipeline.
func TestPipeline_NaNFillThenCheck(t *testing.T) {
	fd := funcdict.New()
	fd.Update("f", 0, 1)
	fd.Update("f", 2, 3)
	fd.Update("g", 0, math.NaN())
	fd.Update("g", 2, 5)

	p := curve.NewPipeline(
		curve.ReplaceNaNWithStops{FirstValue: 10},
		curve.CheckNoNaN{},
	)
	out, err := p.Run(fd)
	require.NoError(t, err)
	require.Equal(t, float64(10), out.Get("g", 0))
	require.Equal(t, float64(5), out.Get("g", 2))
}

func TestPipeline_RequireSameXAxisFailsWithoutNormalization(t *testing.T) {
	fd := funcdict.New()
	fd.Update("f", 0, 1)
	fd.Update("f", 2, 3)
	fd.Update("g", 0, 9)

	p := curve.NewPipeline(curve.SortAll{})
	_, err := p.Run(fd)
	require.ErrorIs(t, err, curve.ErrXAxisNotNormalized)
}

func TestReplaceNaNWithPrevious_FailsOnLeadingNaN(t *testing.T) {
	fd := funcdict.New()
	fd.Update("f", 0, math.NaN())
	fd.Update("f", 1, 2)

	_, _, err := curve.ReplaceNaNWithPrevious{}.AlterCurves(fd)
	require.ErrorIs(t, err, curve.ErrLeadingNaN)
}

func TestRemoveSmallFunction(t *testing.T) {
	fd := funcdict.New()
	fd.Update("small", 0, 1)
	fd.Update("big", 0, 100)

	_, out, err := curve.RemoveSmallFunction{Threshold: 10}.AlterCurves(fd)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"big"}, out.FunctionNames())
}

func TestAddCurve(t *testing.T) {
	fd := funcdict.New()
	fd.Update("f", 0, 1)
	fd.Update("f", 1, 2)

	c := curve.AddCurve{CurveName: "double", F: func(_ int, x float64, fd *funcdict.FunctionsDict) float64 {
		return fd.Get("f", x) * 2
	}}
	_, out, err := c.AlterCurves(fd)
	require.NoError(t, err)
	require.Equal(t, float64(2), out.Get("double", 0))
	require.Equal(t, float64(4), out.Get("double", 1))
}
