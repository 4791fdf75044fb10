package funcdict

import "errors"

// ErrUnknownFunction indicates an operation referenced a function name never
// written via Update.
var ErrUnknownFunction = errors.New("funcdict: unknown function")

// ErrNoValidPoints indicates a navigation or statistics query was attempted
// on a function with zero non-NaN points.
var ErrNoValidPoints = errors.New("funcdict: function has no valid points")

// ErrEmptyAbscissa indicates a global navigation query was attempted on a
// dictionary with no rows at all.
var ErrEmptyAbscissa = errors.New("funcdict: abscissa is empty")
