// Package rasterizer implements the active-edge scan converter: the
// edge store, active-edge list, coverage accumulation, and row
// stratification that together turn a flattened path into trapezoid
// and complex-scan output calls.
package rasterizer

// edgeIndex addresses an Edge inside an EdgeStore's arena. indexNone
// marks "no edge" / the end of a list. Using indices instead of
// pointers keeps the active-edge list free of any real graph cycles,
// even though it is threaded as a singly linked list at runtime.
type edgeIndex int32

const indexNone edgeIndex = -1

// Edge is a monotonically descending line segment in device subpixel
// space. X holds the edge's position at the subrow the sweep currently
// occupies; Advance steps it to the next subrow with a Bresenham-style
// DDA so that, after (YBottom-YTop) calls, X lands on the segment's true
// endpoint within half a subpixel.
type Edge struct {
	YTop, YBottom int
	X             int
	WindingDir    int

	dx        int
	errorUp   int
	errorDown int
	errorAcc  int

	next edgeIndex
}

// makeDDA fills in an edge's stepping parameters for a span of
// (yBottom-yTop) subrows running from x at yTop to the implied endpoint
// x+totalDx at yBottom, using floor division so errorUp is always a
// non-negative remainder less than errorDown.
func makeDDA(e *Edge, totalDx, span int) {
	e.dx = totalDx / span
	rem := totalDx % span
	if rem < 0 {
		rem += span
		e.dx--
	}
	e.errorUp = rem
	e.errorDown = span
	e.errorAcc = 0
}

// Advance moves the edge's X to the next subrow.
func (e *Edge) Advance() {
	e.X += e.dx
	e.errorAcc += e.errorUp
	if e.errorAcc >= e.errorDown {
		e.errorAcc -= e.errorDown
		e.X++
	}
}
