package curve

import (
	"fmt"
	"sort"

	"github.com/koldar/phdtester-go/funcdict"
)

// MergeFn collapses every value landing in the same bucket into one.
type MergeFn func(values []float64) float64

// MergeMax collapses a bucket to its maximum value.
func MergeMax(values []float64) float64 {
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// MergeMin collapses a bucket to its minimum value.
func MergeMin(values []float64) float64 {
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// SlotValueFn picks a bucket's representative x given its open breakpoint
// (left, exclusive) and closed breakpoint (right, inclusive).
type SlotValueFn func(left, right float64, leftOpen, rightClosed bool) float64

// SlotValueRight is the default SlotValueFn: the bucket's right (closed)
// endpoint.
func SlotValueRight(_, right float64, _, _ bool) float64 { return right }

// QuantizeXAxis buckets each input x into (Levels[i], Levels[i+1]] — any x
// outside every bucket is silently dropped, per SPEC_FULL.md §9's preserved
// Open Question — then collapses each column within a bucket via Merge and
// assigns the bucket its representative x via SlotValue. Always reports
// Unknown, since buckets with no input points produce NaN columns at their
// representative.
type QuantizeXAxis struct {
	Levels    []float64 // ascending breakpoints l0 < l1 < ... < lk
	Merge     MergeFn
	SlotValue SlotValueFn
}

func (QuantizeXAxis) RequireSameXAxis() bool { return false }
func (QuantizeXAxis) Name() string           { return "QuantizeXAxis" }

func (c QuantizeXAxis) AlterCurves(fd *funcdict.FunctionsDict) (AbscissaStatus, *funcdict.FunctionsDict, error) {
	if len(c.Levels) < 2 {
		return Unknown, nil, fmt.Errorf("curve: QuantizeXAxis needs at least two breakpoints")
	}
	slotValue := c.SlotValue
	if slotValue == nil {
		slotValue = SlotValueRight
	}

	reps := make([]float64, len(c.Levels)-1)
	for i := 0; i < len(c.Levels)-1; i++ {
		reps[i] = slotValue(c.Levels[i], c.Levels[i+1], true, true)
	}

	out := funcdict.New()
	for name, points := range fd.Items() {
		buckets := make(map[int][]float64)
		for _, p := range points {
			idx := bucketOf(c.Levels, p.X)
			if idx < 0 {
				continue // falls outside every bucket: dropped
			}
			buckets[idx] = append(buckets[idx], p.Y)
		}
		for idx, values := range buckets {
			out.Update(name, reps[idx], c.Merge(values))
		}
	}
	return Unknown, out, nil
}

// bucketOf returns i such that levels[i] < x <= levels[i+1], or -1 if x
// falls outside every bucket.
func bucketOf(levels []float64, x float64) int {
	i := sort.Search(len(levels), func(i int) bool { return levels[i] >= x })
	// i is the first index with levels[i] >= x. x belongs to bucket i-1
	// (levels[i-1] < x <= levels[i]) unless that's out of range.
	if i == 0 || i >= len(levels) {
		return -1
	}
	return i - 1
}
