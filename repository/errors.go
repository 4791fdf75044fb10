package repository

import "errors"

// ErrNoMatch indicates QueryByFindingMask found no compliant context.
var ErrNoMatch = errors.New("repository: no context matches the mask")

// ErrAmbiguousMatch indicates QueryByFindingMask found more than one
// compliant context.
var ErrAmbiguousMatch = errors.New("repository: more than one context matches the mask")
