package funcdict

import (
	"math"
	"sort"
)

// BoxData is the summary SPEC_FULL.md §4.6's GetStatistics returns: count,
// min, the requested lower/upper quantiles, median, mean, max, and sample
// standard deviation.
type BoxData struct {
	Count          int
	Min            float64
	LowerQuantile  float64
	Median         float64
	Mean           float64
	UpperQuantile  float64
	Max            float64
	Std            float64
}

// GetStatistics computes BoxData over name's non-NaN values.
func (d *FunctionsDict) GetStatistics(name string, lowerQ, upperQ float64) (BoxData, error) {
	values := make([]float64, 0, len(d.columns[name]))
	for _, y := range d.columns[name] {
		values = append(values, y)
	}
	if len(values) == 0 {
		return BoxData{}, ErrNoValidPoints
	}
	sort.Float64s(values)

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	variance := 0.0
	if len(values) > 1 {
		for _, v := range values {
			d := v - mean
			variance += d * d
		}
		variance /= float64(len(values) - 1)
	}

	return BoxData{
		Count:         len(values),
		Min:           values[0],
		Max:           values[len(values)-1],
		Mean:          mean,
		Median:        quantile(values, 0.5),
		LowerQuantile: quantile(values, lowerQ),
		UpperQuantile: quantile(values, upperQ),
		Std:           math.Sqrt(variance),
	}, nil
}

// quantile uses linear interpolation between closest ranks, over an
// already-sorted slice.
func quantile(sorted []float64, q float64) float64 {
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
