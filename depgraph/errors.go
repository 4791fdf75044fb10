package depgraph

import "errors"

// ErrUnknownOption indicates a constraint builder referenced an option name
// that was never declared with AddFlag/AddChoice/AddValue/AddMultivalue.
// Per SPEC_FULL.md §4.1, this is a build-time error, never a runtime one.
var ErrUnknownOption = errors.New("depgraph: constraint references unknown option")

// ErrDuplicateOption indicates two options were declared with the same
// name.
var ErrDuplicateOption = errors.New("depgraph: duplicate option name")

// ErrEmptyConstraintNames indicates a multi-option constraint
// (ConstraintMultipleNeedsToHappen / ConstraintMultipleCantHappen) was
// built with fewer than two option names.
var ErrEmptyConstraintNames = errors.New("depgraph: constraint needs at least two option names")

// ErrBuildFailed wraps the accumulated build-time errors returned by
// Builder.Build.
var ErrBuildFailed = errors.New("depgraph: build failed")
