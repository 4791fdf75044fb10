package curve

import (
	"math"
	"sort"

	"github.com/koldar/phdtester-go/funcdict"
)

// RemoveSmallFunction removes every function whose maximum value (ignoring
// NaN) falls below Threshold (or at-or-below, if Inclusive).
type RemoveSmallFunction struct {
	Threshold float64
	Inclusive bool
}

func (RemoveSmallFunction) RequireSameXAxis() bool { return false }
func (RemoveSmallFunction) Name() string           { return "RemoveSmallFunction" }

func (c RemoveSmallFunction) AlterCurves(fd *funcdict.FunctionsDict) (AbscissaStatus, *funcdict.FunctionsDict, error) {
	out := funcdict.New()
	for name, points := range fd.Items() {
		max := math.Inf(-1)
		for _, p := range points {
			if p.Y > max {
				max = p.Y
			}
		}
		remove := max < c.Threshold || (c.Inclusive && max <= c.Threshold)
		if remove {
			continue
		}
		for _, p := range points {
			out.Update(name, p.X, p.Y)
		}
	}
	return Unknown, out, nil
}

// SortAll independently sorts each function's y values ascending while
// keeping the x positions, destroying cross-function correspondence
// (used for cactus plots). Requires its input to already share one x axis.
type SortAll struct{}

func (SortAll) RequireSameXAxis() bool { return true }
func (SortAll) Name() string           { return "SortAll" }

func (SortAll) AlterCurves(fd *funcdict.FunctionsDict) (AbscissaStatus, *funcdict.FunctionsDict, error) {
	out := funcdict.New()
	axis := fd.XAxisOrdered()
	for _, name := range fd.FunctionNames() {
		values := make([]float64, 0, len(axis))
		for _, x := range axis {
			values = append(values, fd.Get(name, x))
		}
		sort.Float64s(values)
		for i, x := range axis {
			out.Update(name, x, values[i])
		}
	}
	return SameX, out, nil
}
