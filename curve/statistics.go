package curve

import (
	"math"
	"sort"

	"github.com/koldar/phdtester-go/funcdict"
)

// GroupKeyFn derives a grouping key from a serialized function (column)
// name — e.g. stripping a trailing "__seed3" suffix so repeated-trial
// columns land in the same group.
type GroupKeyFn func(name string) string

// StatisticsOfFunctionsPerX groups function columns by GroupKey(name), then
// for each group and each x emits count/min/lower-quantile/median/mean/
// upper-quantile/max as distinct output functions named
// "<group>__<stat>". When ExcludeInvalid is set, ±Inf/NaN inputs are
// skipped rather than propagated into the aggregate.
type StatisticsOfFunctionsPerX struct {
	GroupKey       GroupKeyFn
	LowerQuantile  float64
	UpperQuantile  float64
	ExcludeInvalid bool
}

func (StatisticsOfFunctionsPerX) RequireSameXAxis() bool { return true }
func (StatisticsOfFunctionsPerX) Name() string           { return "StatisticsOfFunctionsPerX" }

func (c StatisticsOfFunctionsPerX) AlterCurves(fd *funcdict.FunctionsDict) (AbscissaStatus, *funcdict.FunctionsDict, error) {
	groups := map[string][]string{}
	for _, name := range fd.FunctionNames() {
		key := c.GroupKey(name)
		groups[key] = append(groups[key], name)
	}

	out := funcdict.New()
	axis := fd.XAxisOrdered()
	for group, members := range groups {
		for _, x := range axis {
			values := make([]float64, 0, len(members))
			for _, name := range members {
				v := fd.Get(name, x)
				if c.ExcludeInvalid && (math.IsNaN(v) || math.IsInf(v, 0)) {
					continue
				}
				values = append(values, v)
			}
			if len(values) == 0 {
				continue
			}
			sort.Float64s(values)
			out.Update(group+"__count", x, float64(len(values)))
			out.Update(group+"__min", x, values[0])
			out.Update(group+"__max", x, values[len(values)-1])
			out.Update(group+"__median", x, quantileOf(values, 0.5))
			out.Update(group+"__mean", x, mean(values))
			out.Update(group+"__lowerQ", x, quantileOf(values, c.LowerQuantile))
			out.Update(group+"__upperQ", x, quantileOf(values, c.UpperQuantile))
		}
	}
	return Unknown, out, nil
}

func mean(sorted []float64) float64 {
	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	return sum / float64(len(sorted))
}

func quantileOf(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
