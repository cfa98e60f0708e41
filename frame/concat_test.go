package frame

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcat(t *testing.T) {
	t.Run("empty mapping yields empty frame", func(t *testing.T) {
		got, err := Concat(map[string]*Frame[time.Time]{})
		require.NoError(t, err)
		assert.Equal(t, 0, got.Len())
		assert.Equal(t, 0, got.NumColumns())
	})

	t.Run("keys become column groups", func(t *testing.T) {
		honda := mustFrame(t, days(1, 2), []Column{Col("close"), Col("volume")}, [][]float64{
			{1, 2},
			{10, 20},
		})
		toyota := mustFrame(t, days(1, 2), []Column{Col("close"), Col("volume")}, [][]float64{
			{5, 6},
			{50, 60},
		})

		got, err := Concat(map[string]*Frame[time.Time]{
			"7267 JP": honda,
			"7203 JP": toyota,
		})
		require.NoError(t, err)

		// Keys are processed in sorted order, columns keep their source
		// order within each group.
		assert.Equal(t, []Column{
			{Group: "7203 JP", Name: "close"},
			{Group: "7203 JP", Name: "volume"},
			{Group: "7267 JP", Name: "close"},
			{Group: "7267 JP", Name: "volume"},
		}, got.Columns())

		assert.Equal(t, 6.0, got.At(1, Column{Group: "7203 JP", Name: "close"}))
		assert.Equal(t, 20.0, got.At(1, Column{Group: "7267 JP", Name: "volume"}))
	})

	t.Run("rows outer-join without filling", func(t *testing.T) {
		a := mustFrame(t, days(1, 2), []Column{Col("close")}, [][]float64{{1, 2}})
		b := mustFrame(t, days(2, 3), []Column{Col("close")}, [][]float64{{20, 30}})

		got, err := Concat(map[string]*Frame[time.Time]{"A": a, "B": b})
		require.NoError(t, err)

		assert.Equal(t, days(1, 2, 3), got.Index())

		// Cells a source never observed stay NaN.
		assert.True(t, math.IsNaN(got.At(2, Column{Group: "A", Name: "close"})))
		assert.True(t, math.IsNaN(got.At(0, Column{Group: "B", Name: "close"})))
		assert.Equal(t, 2.0, got.At(1, Column{Group: "A", Name: "close"}))
		assert.Equal(t, 20.0, got.At(1, Column{Group: "B", Name: "close"}))
	})

	t.Run("single key", func(t *testing.T) {
		a := mustFrame(t, days(1), []Column{Col("close")}, [][]float64{{1}})

		got, err := Concat(map[string]*Frame[time.Time]{"A": a})
		require.NoError(t, err)
		assert.Equal(t, []Column{{Group: "A", Name: "close"}}, got.Columns())
		assert.Equal(t, 1.0, got.At(0, Column{Group: "A", Name: "close"}))
	})

	t.Run("identical duplicate indexes pass through", func(t *testing.T) {
		a := mustFrame(t, days(1, 1), []Column{Col("x")}, [][]float64{{1, 2}})
		b := mustFrame(t, days(1, 1), []Column{Col("y")}, [][]float64{{3, 4}})

		got, err := Concat(map[string]*Frame[time.Time]{"A": a, "B": b})
		require.NoError(t, err)
		assert.Equal(t, days(1, 1), got.Index())
		assert.Equal(t, 4.0, got.At(1, Column{Group: "B", Name: "y"}))
	})

	t.Run("duplicate labels cannot reindex", func(t *testing.T) {
		a := mustFrame(t, days(1, 1), []Column{Col("x")}, [][]float64{{1, 2}})
		b := mustFrame(t, days(1, 2), []Column{Col("y")}, [][]float64{{3, 4}})

		_, err := Concat(map[string]*Frame[time.Time]{"A": a, "B": b})
		assert.ErrorIs(t, err, ErrDuplicateIndex)
	})

	t.Run("nil frame", func(t *testing.T) {
		_, err := Concat(map[string]*Frame[time.Time]{"A": nil})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("already grouped columns are rejected", func(t *testing.T) {
		f, err := FromColumns(days(1), []Column{{Group: "X", Name: "close"}}, [][]float64{{1}})
		require.NoError(t, err)

		_, err = Concat(map[string]*Frame[time.Time]{"A": f})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("inputs stay untouched", func(t *testing.T) {
		a := mustFrame(t, days(1), []Column{Col("close")}, [][]float64{{1}})

		_, err := Concat(map[string]*Frame[time.Time]{"A": a})
		require.NoError(t, err)
		assert.Equal(t, []Column{Col("close")}, a.Columns())
	})
}
