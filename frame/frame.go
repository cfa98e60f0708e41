package frame

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrInvalidArgument reports a call that cannot be satisfied for any
	// input data, such as aligning fewer than two frames.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateIndex reports an outer join over an index with repeated
	// labels.
	ErrDuplicateIndex = errors.New("duplicate index label")
)

// Index constrains the row-key types a frame can carry: timestamps for
// observed series, float64 for numeric grids such as fitted curves.
type Index interface {
	time.Time | float64
}

// Column identifies a frame column by an optional group level and a name.
// Flat frames leave Group empty; Concat fills it with the source key.
type Column struct {
	Group string
	Name  string
}

// Col returns an ungrouped column key.
func Col(name string) Column { return Column{Name: name} }

// String renders the key as "name" or "group.name".
func (c Column) String() string {
	if c.Group == "" {
		return c.Name
	}
	return c.Group + "." + c.Name
}

// Frame is an immutable table of float64 cells over a shared row index.
// Missing cells hold NaN. Constructors and accessors copy their slices, so
// callers never observe mutation of inputs or results.
type Frame[I Index] struct {
	index []I
	cols  []Column
	cells [][]float64 // column-major: cells[col][row]
}

// FromColumns builds a frame from a row index, column keys, and
// column-major cells. Every cell column must match the index length and
// column keys must be unique.
func FromColumns[I Index](index []I, cols []Column, cells [][]float64) (*Frame[I], error) {
	if len(cols) != len(cells) {
		return nil, fmt.Errorf("%w: %d column keys for %d cell columns", ErrInvalidArgument, len(cols), len(cells))
	}
	seen := make(map[Column]struct{}, len(cols))
	for _, c := range cols {
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("%w: duplicate column %s", ErrInvalidArgument, c)
		}
		seen[c] = struct{}{}
	}

	f := &Frame[I]{
		index: append([]I(nil), index...),
		cols:  append([]Column(nil), cols...),
		cells: make([][]float64, len(cells)),
	}
	for j, col := range cells {
		if len(col) != len(index) {
			return nil, fmt.Errorf("%w: column %s has %d cells for %d rows", ErrInvalidArgument, cols[j], len(col), len(index))
		}
		f.cells[j] = append([]float64(nil), col...)
	}
	return f, nil
}

// NewFrame combines series sharing an identical index into one frame, with
// column names taken from the series names.
func NewFrame[I Index](series ...*Series[I]) (*Frame[I], error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: no series given", ErrInvalidArgument)
	}
	var index []I
	cols := make([]Column, len(series))
	cells := make([][]float64, len(series))
	for i, s := range series {
		if s == nil {
			return nil, fmt.Errorf("%w: series %d is nil", ErrInvalidArgument, i)
		}
		if i == 0 {
			index = s.index
		} else if !indexesEqual(index, s.index) {
			return nil, fmt.Errorf("%w: series %q index differs from series %q", ErrInvalidArgument, s.name, series[0].name)
		}
		cols[i] = Col(s.name)
		cells[i] = s.values
	}
	return FromColumns(index, cols, cells)
}

// Len returns the number of rows.
func (f *Frame[I]) Len() int { return len(f.index) }

// NumColumns returns the number of columns.
func (f *Frame[I]) NumColumns() int { return len(f.cols) }

// Index returns a copy of the row index.
func (f *Frame[I]) Index() []I { return append([]I(nil), f.index...) }

// Columns returns a copy of the column keys in frame order.
func (f *Frame[I]) Columns() []Column { return append([]Column(nil), f.cols...) }

// HasColumn reports whether the frame carries the column.
func (f *Frame[I]) HasColumn(c Column) bool { return f.colIndex(c) >= 0 }

// Values returns a copy of one column's cells.
func (f *Frame[I]) Values(c Column) ([]float64, bool) {
	j := f.colIndex(c)
	if j < 0 {
		return nil, false
	}
	return append([]float64(nil), f.cells[j]...), true
}

// Series returns one column as a named series over the frame index.
func (f *Frame[I]) Series(c Column) (*Series[I], bool) {
	j := f.colIndex(c)
	if j < 0 {
		return nil, false
	}
	return &Series[I]{
		name:   c.String(),
		index:  append([]I(nil), f.index...),
		values: append([]float64(nil), f.cells[j]...),
	}, true
}

// At returns the cell at row r of column c, NaN when the column is absent.
func (f *Frame[I]) At(r int, c Column) float64 {
	j := f.colIndex(c)
	if j < 0 {
		return math.NaN()
	}
	return f.cells[j][r]
}

// DropDuplicateIndex removes rows whose index label already appeared,
// keeping the first occurrence.
func (f *Frame[I]) DropDuplicateIndex() *Frame[I] {
	seen := make(map[any]struct{}, len(f.index))
	keep := make([]int, 0, len(f.index))
	for i, ix := range f.index {
		k := indexKey(ix)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keep = append(keep, i)
	}
	return f.takeRows(keep)
}

// ForwardFill propagates the last non-NaN value forward through the named
// columns, or through every column when none are named. Leading missing
// values stay missing. Columns absent from the frame are ignored.
func (f *Frame[I]) ForwardFill(cols ...Column) *Frame[I] {
	out := f.clone()
	for _, j := range f.selectColumns(cols) {
		last := math.NaN()
		column := out.cells[j]
		for i, v := range column {
			if math.IsNaN(v) {
				column[i] = last
			} else {
				last = v
			}
		}
	}
	return out
}

// DropNaN removes rows holding NaN in any of the named columns, or in any
// column at all when none are named. Columns absent from the frame are
// ignored.
func (f *Frame[I]) DropNaN(cols ...Column) *Frame[I] {
	selected := f.selectColumns(cols)
	keep := make([]int, 0, len(f.index))
	for i := range f.index {
		ok := true
		for _, j := range selected {
			if math.IsNaN(f.cells[j][i]) {
				ok = false
				break
			}
		}
		if ok {
			keep = append(keep, i)
		}
	}
	return f.takeRows(keep)
}

// Equal reports whether two frames hold the same index, columns, and cells.
// NaN cells compare equal to each other.
func (f *Frame[I]) Equal(other *Frame[I]) bool {
	if other == nil || len(f.index) != len(other.index) || len(f.cols) != len(other.cols) {
		return false
	}
	if !indexesEqual(f.index, other.index) {
		return false
	}
	for j := range f.cols {
		if f.cols[j] != other.cols[j] {
			return false
		}
		for i := range f.cells[j] {
			if !cellEqual(f.cells[j][i], other.cells[j][i]) {
				return false
			}
		}
	}
	return true
}

func (f *Frame[I]) colIndex(c Column) int {
	for j, col := range f.cols {
		if col == c {
			return j
		}
	}
	return -1
}

// selectColumns resolves column keys to cell positions; an empty request
// selects every column.
func (f *Frame[I]) selectColumns(cols []Column) []int {
	if len(cols) == 0 {
		all := make([]int, len(f.cols))
		for j := range all {
			all[j] = j
		}
		return all
	}
	selected := make([]int, 0, len(cols))
	for _, c := range cols {
		if j := f.colIndex(c); j >= 0 {
			selected = append(selected, j)
		}
	}
	return selected
}

func (f *Frame[I]) clone() *Frame[I] {
	out := &Frame[I]{
		index: append([]I(nil), f.index...),
		cols:  append([]Column(nil), f.cols...),
		cells: make([][]float64, len(f.cells)),
	}
	for j, col := range f.cells {
		out.cells[j] = append([]float64(nil), col...)
	}
	return out
}

// takeRows builds a new frame from the given row positions, in order.
func (f *Frame[I]) takeRows(rows []int) *Frame[I] {
	out := &Frame[I]{
		index: make([]I, len(rows)),
		cols:  append([]Column(nil), f.cols...),
		cells: make([][]float64, len(f.cells)),
	}
	for i, r := range rows {
		out.index[i] = f.index[r]
	}
	for j, col := range f.cells {
		out.cells[j] = make([]float64, len(rows))
		for i, r := range rows {
			out.cells[j][i] = col[r]
		}
	}
	return out
}

func cellEqual(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}
