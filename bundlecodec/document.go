package bundlecodec

import "fmt"

// Separators holds the four characters the grammar reserves: colon
// separates a dictionary's label from its key/value pairs, pipe separates
// dictionaries, underscore separates key/value pairs within a dictionary,
// and equal separates a key from its value.
type Separators struct {
	Colon      rune
	Pipe       rune
	Underscore rune
	Equal      rune
}

// DefaultSeparators returns the grammar's default four-character set.
func DefaultSeparators() Separators {
	return Separators{Colon: ':', Pipe: '|', Underscore: '_', Equal: '='}
}

func (s Separators) runes() []rune {
	return []rune{s.Colon, s.Pipe, s.Underscore, s.Equal}
}

// NamedDict is one dictionary entry of a Document: an ordered-by-key set of
// string mappings, optionally labeled.
type NamedDict struct {
	Name    string
	HasName bool
	Values  map[string]string
}

func newDict(name string, hasName bool) *NamedDict {
	return &NamedDict{Name: name, HasName: hasName, Values: map[string]string{}}
}

// Document is the in-memory, ordered-dictionary-list representation a
// serialized bundle parses into (and a Document is what Dump serializes
// from). It mirrors ks001.py's KS001 structure: an optional identifier, key
// and value alias tables, and an ordered list of NamedDicts.
type Document struct {
	Identifier    string
	HasIdentifier bool
	KeyAliases    map[string]string // official name -> alias
	ValueAliases  map[string]string // "name=value" -> alias
	Dicts         []*NamedDict
}

// New creates an empty, identifier-less Document.
func New() *Document {
	return &Document{KeyAliases: map[string]string{}, ValueAliases: map[string]string{}}
}

// WithIdentifier returns d with its identifier set (mutates and returns d,
// matching the teacher's fluent style).
func (d *Document) WithIdentifier(id string) *Document {
	d.Identifier = id
	d.HasIdentifier = true
	return d
}

// SetKeyAlias registers alias as the short form of the official key name.
// Re-registering the same (name, alias) pair is a no-op; registering a
// different alias for an already-aliased name is an error.
func (d *Document) SetKeyAlias(name, alias string) error {
	if existing, ok := d.KeyAliases[name]; ok {
		if existing == alias {
			return nil
		}
		return fmt.Errorf("%w: key %q already aliased to %q", ErrDuplicateAlias, name, existing)
	}
	for k, v := range d.KeyAliases {
		if v == alias && k != name {
			return fmt.Errorf("%w: alias %q already used by key %q", ErrDuplicateAlias, alias, k)
		}
	}
	d.KeyAliases[name] = alias
	return nil
}

// SetValueAlias registers alias as the short form of "name=value".
func (d *Document) SetValueAlias(name, value, alias string) error {
	key := name + "=" + value
	if existing, ok := d.ValueAliases[key]; ok {
		if existing == alias {
			return nil
		}
		return fmt.Errorf("%w: value %q already aliased to %q", ErrDuplicateAlias, key, existing)
	}
	d.ValueAliases[key] = alias
	return nil
}

// Len returns the number of dictionaries in the Document.
func (d *Document) Len() int { return len(d.Dicts) }

// DictAt returns the dictionary at position index.
func (d *Document) DictAt(index int) (*NamedDict, error) {
	if index < 0 || index >= len(d.Dicts) {
		return nil, ErrDictNotFound
	}
	return d.Dicts[index], nil
}

// DictNamed returns the dictionary labeled name.
func (d *Document) DictNamed(name string) (*NamedDict, error) {
	for _, dict := range d.Dicts {
		if dict.HasName && dict.Name == name {
			return dict, nil
		}
	}
	return nil, ErrDictNotFound
}

// addDict appends a new, empty dictionary and returns it.
func (d *Document) addDict(name string, hasName bool) *NamedDict {
	nd := newDict(name, hasName)
	d.Dicts = append(d.Dicts, nd)
	return nd
}

// EnsureNamedDict returns the dictionary labeled name, creating it (empty)
// if absent.
func (d *Document) EnsureNamedDict(name string) *NamedDict {
	if nd, err := d.DictNamed(name); err == nil {
		return nd
	}
	return d.addDict(name, true)
}

// EnsureIndexedDict returns the dictionary at index, creating empty unnamed
// dictionaries up to that position if necessary.
func (d *Document) EnsureIndexedDict(index int) *NamedDict {
	for len(d.Dicts) <= index {
		d.addDict("", false)
	}
	return d.Dicts[index]
}

// AddKeyValue inserts key=value into the dictionary named name (creating it
// if necessary).
func (d *Document) AddKeyValue(name, key, value string) *Document {
	d.EnsureNamedDict(name).Values[key] = value
	return d
}

// AddKeyValueAt inserts key=value into the dictionary at position index
// (creating intermediate unnamed dictionaries if necessary).
func (d *Document) AddKeyValueAt(index int, key, value string) *Document {
	d.EnsureIndexedDict(index).Values[key] = value
	return d
}

// AddEmptyNamedDict adds an empty dictionary labeled name. Only named
// dictionaries may be empty (an unnamed one would be indistinguishable from
// the closing pipe).
func (d *Document) AddEmptyNamedDict(name string) *Document {
	d.EnsureNamedDict(name)
	return d
}

// Clone performs a deep copy of the Document.
func (d *Document) Clone() *Document {
	out := New()
	out.Identifier = d.Identifier
	out.HasIdentifier = d.HasIdentifier
	for k, v := range d.KeyAliases {
		out.KeyAliases[k] = v
	}
	for k, v := range d.ValueAliases {
		out.ValueAliases[k] = v
	}
	for _, dict := range d.Dicts {
		nd := out.addDict(dict.Name, dict.HasName)
		for k, v := range dict.Values {
			nd.Values[k] = v
		}
	}
	return out
}

// Equal reports whether two Documents carry the same identifier and ordered
// dictionary list. Alias tables are not compared.
func (d *Document) Equal(other *Document) bool {
	if other == nil {
		return false
	}
	if d.HasIdentifier != other.HasIdentifier || d.Identifier != other.Identifier {
		return false
	}
	if len(d.Dicts) != len(other.Dicts) {
		return false
	}
	for i, dict := range d.Dicts {
		od := other.Dicts[i]
		if dict.HasName != od.HasName || dict.Name != od.Name {
			return false
		}
		if len(dict.Values) != len(od.Values) {
			return false
		}
		for k, v := range dict.Values {
			if od.Values[k] != v {
				return false
			}
		}
	}
	return true
}
