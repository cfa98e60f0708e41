package interp

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Kind selects the interpolation method fitted over the sample points.
type Kind string

// Interpolation kinds. Zero and Previous hold the sample at or before the
// evaluation point, Next holds the one after, and the remaining kinds fit
// polynomials of increasing order.
const (
	Linear    Kind = "linear"
	Nearest   Kind = "nearest"
	Zero      Kind = "zero"
	SLinear   Kind = "slinear"
	Quadratic Kind = "quadratic"
	Cubic     Kind = "cubic"
	Previous  Kind = "previous"
	Next      Kind = "next"
)

// KindForOrder maps a spline order to its kind: 0 holds the previous value,
// 1 is piecewise linear, 2 and 3 are quadratic and cubic splines.
func KindForOrder(order int) (Kind, error) {
	switch order {
	case 0:
		return Zero, nil
	case 1:
		return SLinear, nil
	case 2:
		return Quadratic, nil
	case 3:
		return Cubic, nil
	}
	return "", fmt.Errorf("%w: spline order %d", ErrUnknownKind, order)
}

// minPoints is the smallest sample count each kind can be fitted from.
var minPoints = map[Kind]int{
	Linear:    2,
	Nearest:   2,
	Zero:      2,
	SLinear:   2,
	Quadratic: 3,
	Cubic:     4,
	Previous:  2,
	Next:      2,
}

var (
	// ErrUnknownKind reports an interpolation kind New does not implement.
	ErrUnknownKind = errors.New("unknown interpolation kind")

	// ErrTooFewPoints reports fewer samples than the kind needs.
	ErrTooFewPoints = errors.New("too few sample points")

	// ErrDuplicateX reports repeated x values, which make the fit singular.
	ErrDuplicateX = errors.New("duplicate x values")
)

// FitError describes why an interpolant could not be fitted.
type FitError struct {
	Kind Kind
	Err  error
}

func (e *FitError) Error() string { return fmt.Sprintf("fit %s: %v", e.Kind, e.Err) }

// Unwrap returns the underlying cause.
func (e *FitError) Unwrap() error { return e.Err }

// Interpolator evaluates a curve fitted over sample points. Evaluation is
// not range-checked: outside the sample domain the polynomial kinds
// extrapolate from their edge segment and the step kinds hold the edge
// sample.
type Interpolator interface {
	Eval(x float64) float64
}

// New fits an interpolant of the given kind over the sample points. The
// pairs may arrive in any x order and are sorted internally. Duplicate or
// NaN x values and sample counts below the kind's minimum fail with a
// *FitError.
func New(x, y []float64, kind Kind) (Interpolator, error) {
	need, ok := minPoints[kind]
	if !ok {
		return nil, &FitError{Kind: kind, Err: ErrUnknownKind}
	}
	if len(x) != len(y) {
		return nil, &FitError{Kind: kind, Err: fmt.Errorf("%d x values for %d y values", len(x), len(y))}
	}
	if len(x) < need {
		return nil, &FitError{Kind: kind, Err: fmt.Errorf("%w: need %d, got %d", ErrTooFewPoints, need, len(x))}
	}

	xs, ys, err := sortSamples(x, y)
	if err != nil {
		return nil, &FitError{Kind: kind, Err: err}
	}

	switch kind {
	case Linear, SLinear:
		return &piecewiseLinear{xs: xs, ys: ys}, nil
	case Nearest, Zero, Previous, Next:
		return &stepper{xs: xs, ys: ys, mode: kind}, nil
	case Quadratic:
		return newQuadratic(xs, ys), nil
	default:
		return newCubic(xs, ys), nil
	}
}

// sortSamples copies the pairs into ascending-x order and rejects NaN and
// duplicate x values.
func sortSamples(x, y []float64) (xs, ys []float64, err error) {
	for i, v := range x {
		if math.IsNaN(v) {
			return nil, nil, fmt.Errorf("x[%d] is NaN", i)
		}
	}

	order := make([]int, len(x))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return x[order[a]] < x[order[b]] })

	xs = make([]float64, len(x))
	ys = make([]float64, len(y))
	for k, i := range order {
		xs[k] = x[i]
		ys[k] = y[i]
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] == xs[i-1] {
			return nil, nil, fmt.Errorf("%w: %v", ErrDuplicateX, xs[i])
		}
	}
	return xs, ys, nil
}

// segment returns the index i of the sample interval [xs[i], xs[i+1]]
// covering t, clamped to the edge intervals outside the domain.
func segment(xs []float64, t float64) int {
	j := sort.SearchFloat64s(xs, t)
	switch {
	case j <= 1:
		return 0
	case j >= len(xs):
		return len(xs) - 2
	}
	return j - 1
}

// piecewiseLinear interpolates linearly between the bracketing samples.
type piecewiseLinear struct {
	xs, ys []float64
}

func (p *piecewiseLinear) Eval(t float64) float64 {
	i := segment(p.xs, t)
	weight := (t - p.xs[i]) / (p.xs[i+1] - p.xs[i])
	return p.ys[i]*(1-weight) + p.ys[i+1]*weight
}

// stepper implements the hold kinds: Zero and Previous carry the sample at
// or before t, Next carries the one at or after, and Nearest picks
// whichever bracketing sample is closer, ties resolving to the lower one.
type stepper struct {
	xs, ys []float64
	mode   Kind
}

func (s *stepper) Eval(t float64) float64 {
	switch s.mode {
	case Next:
		j := sort.SearchFloat64s(s.xs, t)
		if j >= len(s.xs) {
			return s.ys[len(s.ys)-1]
		}
		return s.ys[j]
	case Nearest:
		i := segment(s.xs, t)
		if t-s.xs[i] <= s.xs[i+1]-t {
			return s.ys[i]
		}
		return s.ys[i+1]
	}

	// Zero and Previous hold the sample at or before t.
	j := sort.SearchFloat64s(s.xs, t)
	if j < len(s.xs) && s.xs[j] == t {
		return s.ys[j]
	}
	if j == 0 {
		return s.ys[0]
	}
	return s.ys[j-1]
}
