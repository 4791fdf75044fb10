package bundlecodec

// Merge copies b's dictionaries into a clone of a, carrying over both
// Documents' alias tables: each unnamed dictionary of b is appended, and
// each named one is merged into a's dictionary of the same name (created if
// absent), b's values winning on shared keys. a and b are left unmodified; a's identifier
// is kept, b's is discarded (mirrors ks001.py's KS001.append).
func Merge(a, b *Document) *Document {
	result := a.Clone()
	for name, alias := range b.KeyAliases {
		_ = result.SetKeyAlias(name, alias)
	}
	for key, alias := range b.ValueAliases {
		result.ValueAliases[key] = alias
	}
	for _, dict := range b.Dicts {
		var target *NamedDict
		if dict.HasName {
			target = result.EnsureNamedDict(dict.Name)
		} else {
			target = result.addDict("", false)
		}
		for k, v := range dict.Values {
			target.Values[k] = v
		}
	}
	return result
}

// Contains reports whether every dictionary in needle has a matching
// dictionary in haystack carrying at least the same key/value pairs.
// Labels, identifiers, and positions are ignored; only key/value content
// matters.
func Contains(haystack, needle *Document) bool {
	for _, needleDict := range needle.Dicts {
		found := false
		for _, hayDict := range haystack.Dicts {
			if dictContains(hayDict, needleDict) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func dictContains(hay, needle *NamedDict) bool {
	for k, v := range needle.Values {
		hv, ok := hay.Values[k]
		if !ok || hv != v {
			return false
		}
	}
	return true
}
