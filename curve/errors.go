package curve

import "errors"

// ErrXAxisNotNormalized indicates a changer with RequireSameXAxis()==true
// was entered while the pipeline's AbscissaStatus was not SameX, and no
// normalization stage ran first.
var ErrXAxisNotNormalized = errors.New("curve: changer requires a normalized x axis")

// ErrLeadingNaN indicates ReplaceNaNWithPrevious was asked to fill a
// function whose first cell is already NaN — there is no previous value.
var ErrLeadingNaN = errors.New("curve: function's first value is NaN, nothing to carry forward")

// ErrCheckFailed wraps a validity-check changer's (CheckSameXAxis/CheckNoNaN/
// CheckNoInvalidNumbers) diagnostic.
var ErrCheckFailed = errors.New("curve: validity check failed")
