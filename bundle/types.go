package bundle

import (
	"fmt"
	"reflect"
)

// Kind distinguishes the three disjoint bundle flavors named in SPEC_FULL.md
// §3 ("Option bundle"): stuff-under-test, environment, and global-settings.
type Kind int

const (
	StuffUnderTest Kind = iota
	EnvironmentKind
	GlobalSettings
)

func (k Kind) String() string {
	switch k {
	case StuffUnderTest:
		return "STUFF_UNDER_TEST"
	case EnvironmentKind:
		return "ENVIRONMENT"
	case GlobalSettings:
		return "GLOBAL_SETTINGS"
	default:
		return "UNKNOWN"
	}
}

// Schema is the ordered set of option names a Bundle of a given Kind
// accepts, plus the key/value alias maps used when serializing (see package
// bundlecodec). Schema is built once and shared, read-only, by every Bundle
// instance of that kind.
type Schema struct {
	Kind       Kind
	Names      []string          // insertion order; defines bundle iteration order
	KeyAlias   map[string]string // option name -> short synonym
	ValueAlias map[string]string // "name=value" -> short synonym
}

// NewSchema builds a Schema accepting exactly the given names, in order.
func NewSchema(kind Kind, names ...string) *Schema {
	return &Schema{
		Kind:       kind,
		Names:      append([]string(nil), names...),
		KeyAlias:   map[string]string{},
		ValueAlias: map[string]string{},
	}
}

// Accepts reports whether name is a declared option of this schema.
func (s *Schema) Accepts(name string) bool {
	for _, n := range s.Names {
		if n == name {
			return true
		}
	}
	return false
}

// AliasKey registers a short synonym used in place of name when serializing.
func (s *Schema) AliasKey(name, alias string) {
	s.KeyAlias[name] = alias
}

// AliasValue registers a short synonym for the literal "name=value" pair.
func (s *Schema) AliasValue(name string, value interface{}, alias string) {
	s.ValueAlias[aliasValueKey(name, value)] = alias
}

func aliasValueKey(name string, value interface{}) string {
	return name + "=" + toString(value)
}

func toString(v interface{}) string {
	if v == nil {
		return "<nil>"
	}
	if s, ok := v.(string); ok {
		return s
	}
	type stringer interface{ String() string }
	if s, ok := v.(stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}

// Bundle is an ordered name→value-or-null map of one Kind. Values not
// present in the internal map are treated as null, same as values explicitly
// set to nil — both read back as (nil, true) from Get.
type Bundle struct {
	schema *Schema
	values map[string]interface{}
}

// New creates an empty Bundle bound to schema. All declared names start out
// null.
func New(schema *Schema) *Bundle {
	return &Bundle{schema: schema, values: map[string]interface{}{}}
}

// Schema returns the bundle's schema.
func (b *Bundle) Schema() *Schema { return b.schema }

// Kind returns the bundle's kind, delegating to its schema.
func (b *Bundle) Kind() Kind { return b.schema.Kind }

// Names returns the option names this bundle accepts, in schema order.
func (b *Bundle) Names() []string { return b.schema.Names }

// Set assigns value to name. Returns ErrUnknownOption if name isn't declared
// by the bundle's schema. A nil value is permitted (it marks the option
// null for this bundle).
func (b *Bundle) Set(name string, value interface{}) error {
	if !b.schema.Accepts(name) {
		return ErrUnknownOption
	}
	b.values[name] = value
	return nil
}

// Get returns the value assigned to name (nil if never set or explicitly
// null) and whether name is declared at all.
func (b *Bundle) Get(name string) (interface{}, bool) {
	if !b.schema.Accepts(name) {
		return nil, false
	}
	return b.values[name], true
}

// IsNull reports whether name currently holds no value.
func (b *Bundle) IsNull(name string) bool {
	v, ok := b.Get(name)
	return !ok || v == nil
}

// Clone returns a deep-enough copy: a new value map sharing the same
// schema, safe to mutate (e.g. to null out irrelevant options during
// relevance pruning) without affecting the original.
func (b *Bundle) Clone() *Bundle {
	out := New(b.schema)
	for k, v := range b.values {
		out.values[k] = v
	}
	return out
}

// Equal reports whether two bundles of the same schema carry identical
// values for every declared name.
func (b *Bundle) Equal(other *Bundle) bool {
	if other == nil || b.schema != other.schema {
		return false
	}
	for _, name := range b.schema.Names {
		if !reflect.DeepEqual(b.values[name], other.values[name]) {
			return false
		}
	}
	return true
}
