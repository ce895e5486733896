package rasterizer

import "github.com/gpuraster/gpuraster/internal/basics"

// Sink receives the trapezoid, complex-scan, and parallelogram calls the
// scan converter drives as it sweeps a shape. A sink is borrowed for the
// duration of one Rasterize call; it is never retained across calls.
// Returning a non-nil error aborts the sweep immediately and propagates
// upward without emitting any partial trapezoid-strip trailer.
type Sink interface {
	// AddTrapezoid reports one trapezoid stratum. dxLeft and dxRight are
	// the half-pixel antialias expansion radii along the left and right
	// edges.
	AddTrapezoid(yTop int, xlTop, xrTop float64, yBot int, xlBot, xrBot float64, dxLeft, dxRight float64) error

	// AddComplexScan reports one pixel row's coverage-interval list,
	// walked from first via CoverageCursor.Next until Done.
	AddComplexScan(pixelY int, first CoverageCursor) error

	// AddParallelogram reports a single uniformly-covered quadrilateral:
	// the axis-aligned-rectangle fast path (coverage 255, a single
	// axis-aligned rectangle shape clipped to the clip rectangle) or the
	// trivial all-filler case of an empty shape swept in outside-bounds
	// mode (coverage 0, corners equal to the outside-bounds rectangle).
	// Corners are in winding order.
	AddParallelogram(corners [4]basics.PointD, coverage uint8) error

	// IsEmpty reports whether the sink has accepted any primitive yet.
	IsEmpty() bool
}

// CoverageCursor lets a Sink walk a complex scan's coverage-interval
// list without reaching into the rasterizer's interval arena directly.
type CoverageCursor struct {
	pool *IntervalPool
	idx  intervalIndex
}

// newCoverageCursor wraps a pool and a list head for sink consumption.
func newCoverageCursor(pool *IntervalPool, head intervalIndex) CoverageCursor {
	return CoverageCursor{pool: pool, idx: head}
}

// Done reports whether the cursor has reached the INT_MAX sentinel.
func (c CoverageCursor) Done() bool { return c.pool.Node(c.idx).PixelX == sentinelPixelX }

// PixelX returns the current interval's starting pixel column. Calling
// it once Done is true is a programming error, matching the documented
// "may read pixel_x in any interval except the sentinel" contract.
func (c CoverageCursor) PixelX() int { return c.pool.Node(c.idx).PixelX }

// Coverage returns the current interval's coverage as a raw accumulated
// area in [0, basics.AreaScale]. Rescaling to an 8-bit alpha and
// applying gamma happens downstream, when a Sink encodes the value into
// its output (e.g. a vertex buffer's diffuse channel).
func (c CoverageCursor) Coverage() uint8 { return c.pool.Node(c.idx).Coverage }

// Next returns the cursor for the following interval.
func (c CoverageCursor) Next() CoverageCursor {
	return CoverageCursor{pool: c.pool, idx: c.pool.Node(c.idx).next}
}
