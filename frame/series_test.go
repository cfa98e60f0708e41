package frame

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeries(t *testing.T) {
	t.Run("builds a series", func(t *testing.T) {
		s, err := NewSeries("close", days(1, 2), []float64{1.5, 2.5})
		require.NoError(t, err)
		assert.Equal(t, "close", s.Name())
		assert.Equal(t, 2, s.Len())

		label, value := s.At(1)
		assert.Equal(t, day(2), label)
		assert.Equal(t, 2.5, value)
	})

	t.Run("rejects length mismatch", func(t *testing.T) {
		_, err := NewSeries("close", days(1, 2), []float64{1})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("copies inputs", func(t *testing.T) {
		values := []float64{1, 2}
		s, err := NewSeries("v", days(1, 2), values)
		require.NoError(t, err)

		values[0] = 99
		assert.Equal(t, []float64{1, 2}, s.Values())

		got := s.Values()
		got[1] = 99
		assert.Equal(t, []float64{1, 2}, s.Values())
	})

	t.Run("float index", func(t *testing.T) {
		s, err := NewSeries("curve", []float64{0, 0.5, 1}, []float64{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0.5, 1}, s.Index())
	})
}

func TestSeriesEqual(t *testing.T) {
	base, err := NewSeries("v", days(1, 2), []float64{1, math.NaN()})
	require.NoError(t, err)

	tests := []struct {
		name   string
		other  *Series[time.Time]
		expect bool
	}{
		{"same values with NaN", mustSeries(t, "v", days(1, 2), []float64{1, math.NaN()}), true},
		{"different name", mustSeries(t, "w", days(1, 2), []float64{1, math.NaN()}), false},
		{"different index", mustSeries(t, "v", days(1, 3), []float64{1, math.NaN()}), false},
		{"different values", mustSeries(t, "v", days(1, 2), []float64{1, 2}), false},
		{"nil series", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, base.Equal(tt.other))
		})
	}
}

func mustSeries(t *testing.T, name string, index []time.Time, values []float64) *Series[time.Time] {
	t.Helper()
	s, err := NewSeries(name, index, values)
	require.NoError(t, err)
	return s
}
