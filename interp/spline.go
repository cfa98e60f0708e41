package interp

// polySpline evaluates piecewise polynomials in (t - xs[i]) over the sample
// intervals. Outside the domain the edge segment extrapolates.
type polySpline struct {
	xs   []float64
	coef [][4]float64 // per segment: value, slope, quadratic, cubic terms
}

func (p *polySpline) Eval(t float64) float64 {
	i := segment(p.xs, t)
	dx := t - p.xs[i]
	c := p.coef[i]
	return c[0] + dx*(c[1]+dx*(c[2]+dx*c[3]))
}

// newQuadratic fits a piecewise quadratic spline with a continuous first
// derivative. The one spare degree of freedom makes the first two segments
// share their curvature, so data sampled from a single parabola is
// reproduced exactly.
func newQuadratic(xs, ys []float64) *polySpline {
	n := len(xs)
	h, d := spacings(xs, ys)

	// Slopes follow from derivative continuity once the starting slope
	// is fixed.
	z := make([]float64, n)
	z[0] = ((h[1]+2*h[0])*d[0] - h[0]*d[1]) / (h[0] + h[1])
	for i := 0; i < n-1; i++ {
		z[i+1] = 2*d[i] - z[i]
	}

	coef := make([][4]float64, n-1)
	for i := range coef {
		coef[i] = [4]float64{ys[i], z[i], (d[i] - z[i]) / h[i], 0}
	}
	return &polySpline{xs: xs, coef: coef}
}

// newCubic fits a natural cubic spline: curvature is continuous everywhere
// and zero at both ends. The interior curvatures solve a tridiagonal
// system, swept here with the Thomas algorithm.
func newCubic(xs, ys []float64) *polySpline {
	n := len(xs)
	h, d := spacings(xs, ys)

	// Second derivatives m, with m[0] = m[n-1] = 0.
	m := make([]float64, n)
	unknowns := n - 2
	cp := make([]float64, unknowns)
	rp := make([]float64, unknowns)
	for k := 0; k < unknowns; k++ {
		i := k + 1
		diag := 2 * (h[i-1] + h[i])
		rhs := 6 * (d[i] - d[i-1])
		if k == 0 {
			cp[k] = h[i] / diag
			rp[k] = rhs / diag
			continue
		}
		den := diag - h[i-1]*cp[k-1]
		cp[k] = h[i] / den
		rp[k] = (rhs - h[i-1]*rp[k-1]) / den
	}
	for k := unknowns - 1; k >= 0; k-- {
		m[k+1] = rp[k]
		if k+2 < n-1 {
			m[k+1] -= cp[k] * m[k+2]
		}
	}

	coef := make([][4]float64, n-1)
	for i := range coef {
		coef[i] = [4]float64{
			ys[i],
			d[i] - h[i]*(2*m[i]+m[i+1])/6,
			m[i] / 2,
			(m[i+1] - m[i]) / (6 * h[i]),
		}
	}
	return &polySpline{xs: xs, coef: coef}
}

// spacings returns the interval widths and secant slopes of sorted samples.
func spacings(xs, ys []float64) (h, d []float64) {
	h = make([]float64, len(xs)-1)
	d = make([]float64, len(xs)-1)
	for i := range h {
		h[i] = xs[i+1] - xs[i]
		d[i] = (ys[i+1] - ys[i]) / h[i]
	}
	return h, d
}
