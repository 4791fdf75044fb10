package funcdict

import (
	"math"
	"sort"
)

// FunctionsDict is the columnar store: one column per function, sharing a
// single sorted, deduplicated abscissa (the union of every x value ever
// written to any function). A cell with no value reads back as NaN.
type FunctionsDict struct {
	abscissa []float64            // sorted, unique
	names    []string             // function insertion order
	columns  map[string]map[float64]float64
}

// New returns an empty FunctionsDict.
func New() *FunctionsDict {
	return &FunctionsDict{columns: map[string]map[float64]float64{}}
}

// Clone returns a deep copy, safe for a changer to mutate without affecting
// the original dictionary a pipeline stage received.
func (d *FunctionsDict) Clone() *FunctionsDict {
	out := New()
	out.abscissa = append([]float64(nil), d.abscissa...)
	out.names = append([]string(nil), d.names...)
	for name, col := range d.columns {
		newCol := make(map[float64]float64, len(col))
		for x, y := range col {
			newCol[x] = y
		}
		out.columns[name] = newCol
	}
	return out
}

// Update writes (x, y) into function name, inserting the column on first
// use and the row on first x. Overwrites any existing value at (name, x). A
// NaN y still registers x on the shared abscissa but leaves (name, x)
// undefined instead of storing it — a function never has a NaN cell, only a
// missing one, so presence in the column map and validity always agree
// (spec.md §4.6: "SAME_X iff no NaN cells").
func (d *FunctionsDict) Update(name string, x, y float64) {
	col, ok := d.columns[name]
	if !ok {
		col = map[float64]float64{}
		d.columns[name] = col
		d.names = append(d.names, name)
	}
	if math.IsNaN(y) {
		if _, hasRow := d.rowIndex(x); !hasRow {
			d.insertAbscissa(x)
		}
		delete(col, x)
		return
	}
	if _, hasRow := d.rowIndex(x); !hasRow {
		d.insertAbscissa(x)
	}
	col[x] = y
}

func (d *FunctionsDict) rowIndex(x float64) (int, bool) {
	i := sort.SearchFloat64s(d.abscissa, x)
	if i < len(d.abscissa) && d.abscissa[i] == x {
		return i, true
	}
	return i, false
}

func (d *FunctionsDict) insertAbscissa(x float64) {
	i := sort.SearchFloat64s(d.abscissa, x)
	d.abscissa = append(d.abscissa, 0)
	copy(d.abscissa[i+1:], d.abscissa[i:])
	d.abscissa[i] = x
}

// RemovePoint sets (name, x) back to undefined, dropping x from the shared
// abscissa if no function is defined there anymore.
func (d *FunctionsDict) RemovePoint(name string, x float64) {
	if col, ok := d.columns[name]; ok {
		d.clearCell(col, x)
	}
}

// clearCell deletes x from col and, if no column has a value at x anymore,
// prunes x from the shared abscissa.
func (d *FunctionsDict) clearCell(col map[float64]float64, x float64) {
	delete(col, x)
	for _, c := range d.columns {
		if _, ok := c[x]; ok {
			return
		}
	}
	if i, ok := d.rowIndex(x); ok {
		d.abscissa = append(d.abscissa[:i], d.abscissa[i+1:]...)
	}
}

// RemoveFunction drops name entirely.
func (d *FunctionsDict) RemoveFunction(name string) {
	delete(d.columns, name)
	for i, n := range d.names {
		if n == name {
			d.names = append(d.names[:i], d.names[i+1:]...)
			break
		}
	}
}

// FunctionNames returns every function name, in insertion order.
func (d *FunctionsDict) FunctionNames() []string {
	return append([]string(nil), d.names...)
}

// XAxisOrdered returns the shared abscissa, sorted ascending.
func (d *FunctionsDict) XAxisOrdered() []float64 {
	return append([]float64(nil), d.abscissa...)
}

// NumberOfPoints returns how many non-NaN cells name has.
func (d *FunctionsDict) NumberOfPoints(name string) int {
	return len(d.columns[name])
}

// MaxFunctionLength returns the largest NumberOfPoints across all functions.
func (d *FunctionsDict) MaxFunctionLength() int {
	max := 0
	for _, n := range d.names {
		if c := len(d.columns[n]); c > max {
			max = c
		}
	}
	return max
}

// GetFirstX returns the smallest abscissa value across the whole
// dictionary.
func (d *FunctionsDict) GetFirstX() (float64, error) {
	if len(d.abscissa) == 0 {
		return 0, ErrEmptyAbscissa
	}
	return d.abscissa[0], nil
}

// GetLastX returns the largest abscissa value across the whole dictionary.
func (d *FunctionsDict) GetLastX() (float64, error) {
	if len(d.abscissa) == 0 {
		return 0, ErrEmptyAbscissa
	}
	return d.abscissa[len(d.abscissa)-1], nil
}

// GetFirstValidX returns the smallest x at which name has a defined value.
func (d *FunctionsDict) GetFirstValidX(name string) (float64, error) {
	for _, x := range d.abscissa {
		if _, ok := d.columns[name][x]; ok {
			return x, nil
		}
	}
	return 0, ErrNoValidPoints
}

// GetLastValidX returns the largest x at which name has a defined value.
func (d *FunctionsDict) GetLastValidX(name string) (float64, error) {
	for i := len(d.abscissa) - 1; i >= 0; i-- {
		x := d.abscissa[i]
		if _, ok := d.columns[name][x]; ok {
			return x, nil
		}
	}
	return 0, ErrNoValidPoints
}

// Get returns the value of name at x, or NaN if undefined.
func (d *FunctionsDict) Get(name string, x float64) float64 {
	if v, ok := d.columns[name][x]; ok {
		return v
	}
	return math.NaN()
}

// FunctionsShareSameXAxis reports whether every function is defined at
// every abscissa value (no NaN cells anywhere).
func (d *FunctionsDict) FunctionsShareSameXAxis() bool {
	for _, name := range d.names {
		if len(d.columns[name]) != len(d.abscissa) {
			return false
		}
	}
	return true
}

// Point is one (x, y) pair of a dense, gap-free function sequence.
type Point struct {
	X, Y float64
}

// Items returns, for every function, its dense sequence of defined points
// in ascending x order (NaN gaps omitted).
func (d *FunctionsDict) Items() map[string][]Point {
	out := make(map[string][]Point, len(d.names))
	for _, name := range d.names {
		pts := make([]Point, 0, len(d.columns[name]))
		for _, x := range d.abscissa {
			if y, ok := d.columns[name][x]; ok {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
		out[name] = pts
	}
	return out
}

// ReplaceInvalidValues replaces every NaN and ±Inf cell across every
// function with value.
func (d *FunctionsDict) ReplaceInvalidValues(value float64) {
	for _, name := range d.names {
		col := d.columns[name]
		for _, x := range d.abscissa {
			if y, ok := col[x]; !ok || math.IsInf(y, 0) {
				col[x] = value
			}
		}
	}
}
