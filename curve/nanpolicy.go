package curve

import (
	"math"

	"github.com/koldar/phdtester-go/funcdict"
)

// ReplaceFirstNaN fills, for every function, every gap before its first
// valid value with Value. It does not touch the shared abscissa; the output
// status is SameX only if no gap is left anywhere afterwards (interior and
// trailing gaps are not filled), and Unknown otherwise.
type ReplaceFirstNaN struct{ Value float64 }

func (ReplaceFirstNaN) RequireSameXAxis() bool { return false }
func (ReplaceFirstNaN) Name() string           { return "ReplaceFirstNaN" }

func (c ReplaceFirstNaN) AlterCurves(fd *funcdict.FunctionsDict) (AbscissaStatus, *funcdict.FunctionsDict, error) {
	out := fd.Clone()
	axis := fd.XAxisOrdered()
	for _, name := range fd.FunctionNames() {
		firstValid, err := fd.GetFirstValidX(name)
		if err != nil {
			continue // function has no valid points at all; nothing to anchor to
		}
		for _, x := range axis {
			if x >= firstValid {
				break
			}
			out.Update(name, x, c.Value)
		}
	}
	status := Unknown
	if out.FunctionsShareSameXAxis() {
		status = SameX
	}
	return status, out, nil
}

// ReplaceTailNaN fills every gap after a function's last valid value with
// Value. The output status is SameX only if no gap is left anywhere
// afterwards, and Unknown otherwise.
type ReplaceTailNaN struct{ Value float64 }

func (ReplaceTailNaN) RequireSameXAxis() bool { return false }
func (ReplaceTailNaN) Name() string           { return "ReplaceTailNaN" }

func (c ReplaceTailNaN) AlterCurves(fd *funcdict.FunctionsDict) (AbscissaStatus, *funcdict.FunctionsDict, error) {
	out := fd.Clone()
	axis := fd.XAxisOrdered()
	for _, name := range fd.FunctionNames() {
		lastValid, err := fd.GetLastValidX(name)
		if err != nil {
			continue
		}
		for _, x := range axis {
			if x <= lastValid {
				continue
			}
			out.Update(name, x, c.Value)
		}
	}
	status := Unknown
	if out.FunctionsShareSameXAxis() {
		status = SameX
	}
	return status, out, nil
}

// ReplaceNaNWithPrevious forward-fills every gap with the closest earlier
// valid value. Fails with ErrLeadingNaN if a function's very first cell is a
// gap — there is no previous value to carry forward.
type ReplaceNaNWithPrevious struct{}

func (ReplaceNaNWithPrevious) RequireSameXAxis() bool { return false }
func (ReplaceNaNWithPrevious) Name() string           { return "ReplaceNaNWithPrevious" }

func (ReplaceNaNWithPrevious) AlterCurves(fd *funcdict.FunctionsDict) (AbscissaStatus, *funcdict.FunctionsDict, error) {
	out := fd.Clone()
	axis := fd.XAxisOrdered()
	for _, name := range fd.FunctionNames() {
		var last float64
		haveLast := false
		for _, x := range axis {
			v := fd.Get(name, x)
			if math.IsNaN(v) {
				if !haveLast {
					return Unknown, nil, ErrLeadingNaN
				}
				out.Update(name, x, last)
				continue
			}
			last, haveLast = v, true
		}
	}
	return SameX, out, nil
}

// ReplaceNaNWithStops forward-fills every gap with the closest earlier
// valid value, seeding the very first "stop" with FirstValue so leading gaps
// never fail.
type ReplaceNaNWithStops struct{ FirstValue float64 }

func (ReplaceNaNWithStops) RequireSameXAxis() bool { return false }
func (ReplaceNaNWithStops) Name() string           { return "ReplaceNaNWithStops" }

func (c ReplaceNaNWithStops) AlterCurves(fd *funcdict.FunctionsDict) (AbscissaStatus, *funcdict.FunctionsDict, error) {
	out := fd.Clone()
	axis := fd.XAxisOrdered()
	for _, name := range fd.FunctionNames() {
		last := c.FirstValue
		for _, x := range axis {
			v := fd.Get(name, x)
			if math.IsNaN(v) {
				out.Update(name, x, last)
				continue
			}
			last = v
		}
	}
	return SameX, out, nil
}
