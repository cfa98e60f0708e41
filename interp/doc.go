// Package interp fits 1-D interpolants over sample points and resamples
// them onto regular grids, the usual route from sparse market observations
// to a smooth curve.
//
// New builds an Interpolator for one of the classic kinds: piecewise
// linear, nearest sample, previous/next-value holds, and quadratic or
// natural cubic splines:
//
//	fit, err := interp.New(tenors, yields, interp.Cubic)
//	y := fit.Eval(2.5)
//
// The Curve functions wrap fit-and-resample into one call: they evaluate
// the fitted curve from the smallest to the largest sample point on a
// fixed step and clip the values to optional bounds, returning a series
// indexed by the evaluation grid:
//
//	curve, err := interp.Curve(x, y, interp.DefaultCurveOptions(0.25))
//
// CurveFrame fits every column of a frame independently and recombines the
// results, preserving column order.
package interp
