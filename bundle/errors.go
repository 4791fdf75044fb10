package bundle

import "errors"

// ErrUnknownOption indicates a bundle was asked to set or get a name its
// schema does not declare.
var ErrUnknownOption = errors.New("bundle: unknown option")

// ErrKindMismatch indicates an operation combined bundles of incompatible
// kinds (e.g. merging two stuff-under-test bundles into one test context).
var ErrKindMismatch = errors.New("bundle: kind mismatch")

// ErrOverlappingNames indicates two bundles declare an overlapping name set
// where the spec requires disjointness (TestContext = stuff-under-test ⨁
// environment).
var ErrOverlappingNames = errors.New("bundle: overlapping option names")
