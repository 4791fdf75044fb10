package curve

import (
	"fmt"
	"math"

	"github.com/koldar/phdtester-go/funcdict"
)

// CheckSameXAxis fails if any function has a gap relative to the shared
// abscissa. Never mutates fd.
type CheckSameXAxis struct{}

func (CheckSameXAxis) RequireSameXAxis() bool { return false }
func (CheckSameXAxis) Name() string           { return "CheckSameXAxis" }

func (CheckSameXAxis) AlterCurves(fd *funcdict.FunctionsDict) (AbscissaStatus, *funcdict.FunctionsDict, error) {
	if !fd.FunctionsShareSameXAxis() {
		return Unaltered, nil, fmt.Errorf("%w: functions do not share the same x axis", ErrCheckFailed)
	}
	return Unaltered, fd, nil
}

// CheckNoNaN fails if any (function, x) cell is undefined. Never mutates fd.
type CheckNoNaN struct{}

func (CheckNoNaN) RequireSameXAxis() bool { return false }
func (CheckNoNaN) Name() string           { return "CheckNoNaN" }

func (CheckNoNaN) AlterCurves(fd *funcdict.FunctionsDict) (AbscissaStatus, *funcdict.FunctionsDict, error) {
	for _, name := range fd.FunctionNames() {
		for _, x := range fd.XAxisOrdered() {
			if math.IsNaN(fd.Get(name, x)) {
				return Unaltered, nil, fmt.Errorf("%w: function %q is NaN at x=%v", ErrCheckFailed, name, x)
			}
		}
	}
	return Unaltered, fd, nil
}

// CheckNoInvalidNumbers fails if any cell is NaN or ±Inf. Never mutates fd.
type CheckNoInvalidNumbers struct{}

func (CheckNoInvalidNumbers) RequireSameXAxis() bool { return false }
func (CheckNoInvalidNumbers) Name() string           { return "CheckNoInvalidNumbers" }

func (CheckNoInvalidNumbers) AlterCurves(fd *funcdict.FunctionsDict) (AbscissaStatus, *funcdict.FunctionsDict, error) {
	for _, name := range fd.FunctionNames() {
		for _, x := range fd.XAxisOrdered() {
			v := fd.Get(name, x)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Unaltered, nil, fmt.Errorf("%w: function %q has an invalid value at x=%v", ErrCheckFailed, name, x)
			}
		}
	}
	return Unaltered, fd, nil
}
