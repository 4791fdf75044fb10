package orchestrator

import "github.com/koldar/phdtester-go/resource"

// RowSignal discriminates the three outcomes a RowExtractor may produce for
// one input record, replacing exception-as-control-flow per spec.md §9:
// "Exception-as-control-flow (row-skip, value-ignore). Replace with a sum
// type Yield<T> | Skip | Stop returned by row extractors."
type RowSignal int

const (
	// RowYield means Value holds a row to keep.
	RowYield RowSignal = iota
	// RowSkip means this record is dropped; extraction continues.
	RowSkip
	// RowStop means extraction ends here; remaining records are not visited.
	RowStop
)

// Yield is the discriminated result a RowExtractor returns for one record:
// exactly one of a produced value (RowYield), a dropped record (RowSkip), or
// an early end to extraction (RowStop — e.g. on a sentinel trailer row).
type Yield[T any] struct {
	Signal RowSignal
	Value  T
}

// Yielded wraps v as a RowYield result.
func Yielded[T any](v T) Yield[T] { return Yield[T]{Signal: RowYield, Value: v} }

// Skip produces a RowSkip result for a type T.
func Skip[T any]() Yield[T] { return Yield[T]{Signal: RowSkip} }

// Stop produces a RowStop result for a type T.
func Stop[T any]() Yield[T] { return Yield[T]{Signal: RowStop} }

// RowExtractor turns one CSV record (paired with the header) into a
// resource.Row. Returning an error wrapping ErrIgnoreRow or ErrValueToIgnore
// is equivalent to returning Skip[resource.Row]() — readCSVRows drops the
// record and continues instead of aborting the whole relocation, per
// spec.md §7's IgnoreRowError/ValueToIgnoreError kinds.
type RowExtractor func(header, record []string) (Yield[resource.Row], error)

// defaultRowExtractor is the column-by-position mapping readCSVRows has
// always done; a nil RowExtractor passed to readCSVRows falls back to it.
func defaultRowExtractor(header, record []string) (Yield[resource.Row], error) {
	row := resource.Row{}
	for i, col := range header {
		if i < len(record) {
			row[col] = record[i]
		}
	}
	return Yielded(row), nil
}
