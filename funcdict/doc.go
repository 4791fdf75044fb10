// Package funcdict implements the columnar functions dictionary described
// in SPEC_FULL.md §4.6 (C7): one column per named function, sharing a single
// sorted, deduplicated abscissa; a cell undefined for a given (function, x)
// pair reads back as NaN. Grounded on
// original_source/PhdTester/phdTester/functions.py's DataFrameFunctionsDict,
// reimplemented without a dataframe dependency — the shape it models
// (sparse columns over a shared sorted index) doesn't need one in Go.
package funcdict
