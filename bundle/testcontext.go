package bundle

// TestContext is a stuff-under-test Bundle has-a'd together with an
// environment Bundle, per SPEC_FULL.md §9's composition-over-inheritance
// redesign note. The two bundles must declare disjoint name sets; a
// TestContext's option names are their union.
type TestContext struct {
	Stuff *Bundle
	Env   *Bundle
}

// NewTestContext builds a TestContext from a stuff-under-test bundle and an
// environment bundle, rejecting schemas that declare overlapping names.
func NewTestContext(stuff, env *Bundle) (*TestContext, error) {
	if stuff.Kind() != StuffUnderTest || env.Kind() != EnvironmentKind {
		return nil, ErrKindMismatch
	}
	seen := make(map[string]struct{}, len(stuff.Names()))
	for _, n := range stuff.Names() {
		seen[n] = struct{}{}
	}
	for _, n := range env.Names() {
		if _, ok := seen[n]; ok {
			return nil, ErrOverlappingNames
		}
	}
	return &TestContext{Stuff: stuff, Env: env}, nil
}

// Names returns every option name the context carries, stuff-under-test
// names first, then environment names, both in schema order.
func (tc *TestContext) Names() []string {
	out := make([]string, 0, len(tc.Stuff.Names())+len(tc.Env.Names()))
	out = append(out, tc.Stuff.Names()...)
	out = append(out, tc.Env.Names()...)
	return out
}

// Get fetches the value for name, searching the stuff-under-test bundle
// before the environment bundle.
func (tc *TestContext) Get(name string) (interface{}, bool) {
	if v, ok := tc.Stuff.Get(name); ok {
		return v, true
	}
	return tc.Env.Get(name)
}

// Set assigns value to name in whichever sub-bundle declares it.
func (tc *TestContext) Set(name string, value interface{}) error {
	if tc.Stuff.Schema().Accepts(name) {
		return tc.Stuff.Set(name, value)
	}
	if tc.Env.Schema().Accepts(name) {
		return tc.Env.Set(name, value)
	}
	return ErrUnknownOption
}

// Clone deep-enough-copies both sub-bundles.
func (tc *TestContext) Clone() *TestContext {
	return &TestContext{Stuff: tc.Stuff.Clone(), Env: tc.Env.Clone()}
}

// Equal reports whether two test contexts hold identical values for every
// option, per SPEC_FULL.md §3: "Two test contexts are equal iff all their
// option values are equal."
func (tc *TestContext) Equal(other *TestContext) bool {
	if other == nil {
		return false
	}
	return tc.Stuff.Equal(other.Stuff) && tc.Env.Equal(other.Env)
}

// Key renders a deterministic, comparable string for use as a Go map key
// (e.g. in enumerator deduplication), built from the sorted-by-schema-order
// name=value pairs.
func (tc *TestContext) Key() string {
	out := make([]byte, 0, 128)
	for _, name := range tc.Names() {
		v, _ := tc.Get(name)
		out = append(out, name...)
		out = append(out, '=')
		out = appendValue(out, v)
		out = append(out, ';')
	}
	return string(out)
}

func appendValue(out []byte, v interface{}) []byte {
	if v == nil {
		return append(out, "<null>"...)
	}
	return append(out, []byte(toString(v))...)
}
