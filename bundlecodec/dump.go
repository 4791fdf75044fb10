package bundlecodec

import (
	"regexp"
	"sort"
	"strings"
)

// escaper returns a function doubling every occurrence of sep's four
// characters in a string, via a regexp alternation over the (quoted)
// separator runes.
func escaper(sep Separators) func(string) string {
	specials := sep.runes()
	parts := make([]string, len(specials))
	for i, r := range specials {
		parts[i] = regexp.QuoteMeta(string(r))
	}
	re := regexp.MustCompile("[" + strings.Join(parts, "") + "]")
	return func(s string) string {
		return re.ReplaceAllStringFunc(s, func(m string) string { return m + m })
	}
}

// DumpOptions configures Dump's rendering.
type DumpOptions struct {
	Separators    Separators
	UseKeyAlias   bool
	UseValueAlias bool
}

// DefaultDumpOptions mirrors ks001.py's dump_str defaults: default
// separators, both alias kinds applied when available.
func DefaultDumpOptions() DumpOptions {
	return DumpOptions{Separators: DefaultSeparators(), UseKeyAlias: true, UseValueAlias: true}
}

// Dump renders d to its string form. Keys within each dictionary are sorted
// lexicographically, matching the grammar's "ordered set of key-value
// mappings, ordered by key" invariant.
func Dump(d *Document, opts DumpOptions) string {
	escape := escaper(opts.Separators)
	var b strings.Builder
	if d.HasIdentifier {
		b.WriteString(escape(d.Identifier))
	}
	b.WriteRune(opts.Separators.Pipe)
	for _, dict := range d.Dicts {
		if dict.HasName {
			b.WriteString(escape(dict.Name))
			b.WriteRune(opts.Separators.Colon)
		}
		keys := make([]string, 0, len(dict.Values))
		for k := range dict.Values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, key := range keys {
			value := dict.Values[key]
			renderedKey := key
			if opts.UseKeyAlias {
				if alias, ok := d.KeyAliases[key]; ok {
					renderedKey = alias
				}
			}
			renderedValue := value
			if opts.UseValueAlias {
				if alias, ok := d.ValueAliases[key+"="+value]; ok {
					renderedValue = alias
				}
			}
			pairs = append(pairs, escape(renderedKey)+string(opts.Separators.Equal)+escape(renderedValue))
		}
		b.WriteString(strings.Join(pairs, string(opts.Separators.Underscore)))
		b.WriteRune(opts.Separators.Pipe)
	}
	return b.String()
}
