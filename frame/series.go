package frame

import "fmt"

// Series is an immutable named column of float64 values over a row index.
// Missing values hold NaN.
type Series[I Index] struct {
	name   string
	index  []I
	values []float64
}

// NewSeries builds a series from parallel index and value slices.
func NewSeries[I Index](name string, index []I, values []float64) (*Series[I], error) {
	if len(index) != len(values) {
		return nil, fmt.Errorf("%w: series %q has %d values for %d index entries",
			ErrInvalidArgument, name, len(values), len(index))
	}
	return &Series[I]{
		name:   name,
		index:  append([]I(nil), index...),
		values: append([]float64(nil), values...),
	}, nil
}

// Name returns the series name.
func (s *Series[I]) Name() string { return s.name }

// Len returns the number of entries.
func (s *Series[I]) Len() int { return len(s.index) }

// Index returns a copy of the row index.
func (s *Series[I]) Index() []I { return append([]I(nil), s.index...) }

// Values returns a copy of the values.
func (s *Series[I]) Values() []float64 { return append([]float64(nil), s.values...) }

// At returns the index label and value at position i.
func (s *Series[I]) At(i int) (I, float64) { return s.index[i], s.values[i] }

// Equal reports whether two series hold the same name, index, and values.
// NaN values compare equal to each other.
func (s *Series[I]) Equal(other *Series[I]) bool {
	if other == nil || s.name != other.name || len(s.index) != len(other.index) {
		return false
	}
	if !indexesEqual(s.index, other.index) {
		return false
	}
	for i := range s.values {
		if !cellEqual(s.values[i], other.values[i]) {
			return false
		}
	}
	return true
}
