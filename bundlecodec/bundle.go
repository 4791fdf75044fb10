package bundlecodec

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/koldar/phdtester-go/bundle"
)

// dictLabel is the NamedDict name a bundle.Kind serializes under, keeping
// the stuff-under-test and environment halves of a TestContext
// distinguishable once flattened into a single Document.
func dictLabel(k bundle.Kind) string {
	switch k {
	case bundle.StuffUnderTest:
		return "stuff_under_test"
	case bundle.EnvironmentKind:
		return "environment"
	default:
		return "global_settings"
	}
}

// stringify renders a bundle value the way the codec serializes it: scalars
// via fmt.Sprintf, slices as comma-joined elements (the list-literal shape
// the option package's evaluator parses back).
func stringify(v interface{}) string {
	if v == nil {
		return ""
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice {
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts[i] = fmt.Sprintf("%v", rv.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprintf("%v", v)
}

// FromTestContext renders tc into a Document with two named dictionaries,
// "stuff_under_test" and "environment", carrying every non-null option as a
// stringified key/value pair. Key/value aliases declared on tc's schemas
// are copied onto the Document.
func FromTestContext(tc *bundle.TestContext, identifier string, hasIdentifier bool) *Document {
	d := New()
	if hasIdentifier {
		d.WithIdentifier(identifier)
	}
	fillFromBundle(d, tc.Stuff)
	fillFromBundle(d, tc.Env)
	return d
}

func fillFromBundle(d *Document, b *bundle.Bundle) {
	label := dictLabel(b.Kind())
	for _, name := range b.Names() {
		v, _ := b.Get(name)
		if v == nil {
			continue
		}
		d.AddKeyValue(label, name, stringify(v))
	}
	for _, name := range b.Names() {
		if alias, ok := b.Schema().KeyAlias[name]; ok {
			_ = d.SetKeyAlias(name, alias)
		}
	}
	for key, alias := range b.Schema().ValueAlias {
		d.ValueAliases[key] = alias
	}
}

// Flatten collects every key/value pair across every dictionary in d into a
// single map, last-dictionary-wins on name collisions. This is the form a
// CLI driver or manifest loader feeds into a typed per-option parser to
// rebuild a bundle.TestContext.
func (d *Document) Flatten() map[string]string {
	out := map[string]string{}
	for _, dict := range d.Dicts {
		for k, v := range dict.Values {
			out[k] = v
		}
	}
	return out
}
