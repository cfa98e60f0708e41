package interp

import (
	"fmt"
	"math"

	"github.com/jonahhill/xone/frame"
	"github.com/jonahhill/xone/internal/options"
)

// CurveOptions controls the sampling grid and value bounds of the Curve
// functions. Step is the grid spacing and must be positive; nil bounds are
// unbounded. A zero Kind defaults to a quadratic spline.
type CurveOptions struct {
	Step float64 `validate:"gt=0"`
	Min  *float64
	Max  *float64
	Kind Kind `default:"quadratic" validate:"oneof=linear nearest zero slinear quadratic cubic previous next"`
}

// DefaultCurveOptions returns the conventional curve options: a quadratic
// fit with values clipped below at zero and unbounded above.
func DefaultCurveOptions(step float64) CurveOptions {
	return CurveOptions{Step: step, Min: Bound(0), Kind: Quadratic}
}

// Bound returns a pointer to v for use as a clip bound.
func Bound(v float64) *float64 { return &v }

// Curve fits y over x and resamples the fitted curve on a regular grid
// running from the smallest to the largest x inclusive, spaced by
// opts.Step. Values are clipped to [opts.Min, opts.Max] and the result is
// indexed by the grid points. Fit errors propagate unchanged.
func Curve(x, y []float64, opts CurveOptions) (*frame.Series[float64], error) {
	return curveNamed("", x, y, opts)
}

// CurveSeries is Curve over a named series of y values; the result keeps
// the series name.
func CurveSeries[I frame.Index](x []float64, y *frame.Series[I], opts CurveOptions) (*frame.Series[float64], error) {
	if y == nil {
		return nil, fmt.Errorf("interp: nil series")
	}
	return curveNamed(y.Name(), x, y.Values(), opts)
}

// CurveFrame applies Curve to every column of y independently and
// recombines the fitted curves into one frame over the evaluation grid,
// preserving column order and identity.
func CurveFrame[I frame.Index](x []float64, y *frame.Frame[I], opts CurveOptions) (*frame.Frame[float64], error) {
	if y == nil {
		return nil, fmt.Errorf("interp: nil frame")
	}
	cols := y.Columns()
	if len(cols) == 0 {
		return frame.FromColumns[float64](nil, nil, nil)
	}

	var index []float64
	cells := make([][]float64, len(cols))
	for j, col := range cols {
		values, _ := y.Values(col)
		fitted, err := Curve(x, values, opts)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", col, err)
		}
		if index == nil {
			index = fitted.Index()
		}
		cells[j] = fitted.Values()
	}
	return frame.FromColumns(index, cols, cells)
}

// curveNamed fits, resamples, and clips one set of values.
func curveNamed(name string, x, y []float64, opts CurveOptions) (*frame.Series[float64], error) {
	if err := options.Prepare(&opts); err != nil {
		return nil, fmt.Errorf("interp: %w", err)
	}
	fit, err := New(x, y, opts.Kind)
	if err != nil {
		return nil, err
	}

	lo, hi := x[0], x[0]
	for _, v := range x[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	grid := sampleGrid(lo, hi, opts.Step)
	values := make([]float64, len(grid))
	for i, t := range grid {
		values[i] = clip(fit.Eval(t), opts.Min, opts.Max)
	}
	return frame.NewSeries(name, grid, values)
}

// sampleGrid builds evaluation points from lo to hi inclusive, spaced by
// step. The half-step headroom keeps hi on the grid when (hi-lo)/step
// misses an integer by float rounding.
func sampleGrid(lo, hi, step float64) []float64 {
	n := int(math.Ceil((hi - lo + step/2) / step))
	if n < 1 {
		n = 1
	}
	for n > 1 && lo+float64(n-1)*step > hi+step/2 {
		n--
	}

	grid := make([]float64, n)
	for i := range grid {
		grid[i] = lo + float64(i)*step
	}
	return grid
}

// clip bounds v to [lo, hi]; a nil bound is open and NaN passes through.
func clip(v float64, lo, hi *float64) float64 {
	if lo != nil && v < *lo {
		return *lo
	}
	if hi != nil && v > *hi {
		return *hi
	}
	return v
}
