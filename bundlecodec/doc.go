// Package bundlecodec implements the external bundle-serialization grammar
// named in SPEC_FULL.md §6 (C11), grounded on the four-separator filename
// format of the original ks001.py: an optional identifier, a pipe-delimited
// sequence of optionally-named dictionaries, each holding an ordered set of
// key=value pairs. Separator characters are escaped by doubling.
//
// The codec only deals in strings: Document values are never type-coerced.
// Typed interpretation (int, float, list literals...) is the job of the
// option package once a Document is bridged back into a bundle.TestContext.
package bundlecodec
