// Package curves adaptively flattens cubic Bézier segments into polylines
// for the scan converter. Unlike the AGG lineage's recursive de Casteljau
// subdivision, the flattener here follows the source this rasterizer was
// distilled from and uses adaptive forward differencing: the cubic's
// parametric coefficients are computed once, then walked with a forward
// difference recurrence, doubling the step count until the curve's second
// difference - a direct measure of how far the chord deviates from the
// true curve over that step - drops under a tolerance derived from the
// device-space error budget.
package curves

import "math"

// Point is a flattener input/output vertex in whatever coordinate space
// the caller is working in (device subpixels, typically).
type Point struct {
	X, Y float64
}

// DefaultMaxLevel bounds the number of step-count doublings the adaptive
// search performs. At 20 doublings a single segment could request up to
// 2^20 steps; this exists purely to guarantee the subdivision halts in
// bounded time even for a degenerate or numerically hostile curve.
const DefaultMaxLevel = 20

// CubicFlattener flattens cubic Bézier segments to a tolerance expressed
// in the same units as the control points (device subpixels). A zero
// value is not usable; construct with NewCubicFlattener.
//
// A flattener is restartable: Flatten never reads or writes anything
// beyond its arguments and return value, so the same instance can flatten
// unrelated segments back to back with no figure-boundary state to reset.
type CubicFlattener struct {
	tolerance float64
	maxLevel  int
}

// NewCubicFlattener builds a flattener whose output deviates from the
// true curve by at most tolerance device units.
func NewCubicFlattener(tolerance float64) *CubicFlattener {
	if tolerance <= 0 {
		tolerance = 1
	}
	return &CubicFlattener{tolerance: tolerance, maxLevel: DefaultMaxLevel}
}

// Flatten returns the polyline approximating the cubic (p0,p1,p2,p3) in
// parameter order, starting at p0 and ending at p3. Consecutive duplicate
// points (in particular a degenerate curve collapsing to a point) are
// never emitted.
func (f *CubicFlattener) Flatten(p0, p1, p2, p3 Point) []Point {
	ax, bx, cx := cubicCoeffs(p0.X, p1.X, p2.X, p3.X)
	ay, by, cy := cubicCoeffs(p0.Y, p1.Y, p2.Y, p3.Y)

	steps := f.chooseStepCount(ax, bx, ay, by)

	out := make([]Point, 0, steps+1)
	out = append(out, p0)

	h := 1.0 / float64(steps)
	h2 := h * h
	h3 := h2 * h

	x, y := p0.X, p0.Y
	d1x, d1y := ax*h3+bx*h2+cx*h, ay*h3+by*h2+cy*h
	d2x, d2y := 6*ax*h3+2*bx*h2, 6*ay*h3+2*by*h2
	d3x, d3y := 6*ax*h3, 6*ay*h3

	last := p0
	for i := 1; i < steps; i++ {
		x += d1x
		y += d1y
		d1x += d2x
		d1y += d2y
		d2x += d3x
		d2y += d3y

		p := Point{x, y}
		if p != last {
			out = append(out, p)
			last = p
		}
	}

	if p3 != last {
		out = append(out, p3)
	}
	return out
}

// cubicCoeffs returns the a,b,c coefficients of the cubic polynomial
// a*t^3 + b*t^2 + c*t + p0 through the four Bézier control ordinates.
// The constant term is p0 itself and is not returned since the walk
// starts from p0 directly.
func cubicCoeffs(p0, p1, p2, p3 float64) (a, b, c float64) {
	a = -p0 + 3*p1 - 3*p2 + p3
	b = 3*p0 - 6*p1 + 3*p2
	c = -3*p0 + 3*p1
	return
}

// chooseStepCount doubles the step count starting from 1 until the
// cubic's second forward difference - evaluated at the resulting step
// size - is small enough that the chord error it implies is within
// tolerance. The classic adaptive-forward-differencing bound relates
// the maximum flatness error to one eighth of the second difference's
// magnitude, so the search target is 8x tolerance.
func (f *CubicFlattener) chooseStepCount(ax, bx, ay, by float64) int {
	threshold := 8 * f.tolerance
	steps := 1
	for level := 0; level < f.maxLevel; level++ {
		h := 1.0 / float64(steps)
		h2 := h * h
		h3 := h2 * h
		d2x := math.Abs(6*ax*h3 + 2*bx*h2)
		d2y := math.Abs(6*ay*h3 + 2*by*h2)
		if d2x <= threshold && d2y <= threshold {
			break
		}
		steps *= 2
	}
	return steps
}
