package mask

import "github.com/koldar/phdtester-go/bundle"

// Option is a single-option compliance predicate usable inside a
// TestContextMask. Implementations must not mutate set.
type Option interface {
	// IsCompliant reports whether actual (the value of this mask-option's
	// option in set[i]) satisfies the mask.
	IsCompliant(i int, actual interface{}, set []*bundle.TestContext) bool
	// SetParams late-binds caller-supplied parameters (e.g. EqualsTo's
	// comparison value). A no-op for mask-options that don't need one.
	SetParams(params map[string]interface{})
	// String renders a short, human-readable description, used in
	// diagnostics when QueryByFindingMask fails.
	String() string
}

// TestContextMask pairs option names with the Option each one must satisfy;
// a name absent from the map is unconstrained. Names with a nil Option (or
// simply never inserted) behave as Ignore.
type TestContextMask map[string]Option
