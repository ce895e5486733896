// Package raster implements a 2D anti-aliased polygon rasterizer: edge
// generation and adaptive Bézier flattening, active-edge scan
// conversion, and output stratification into trapezoids and complex
// coverage scans.
package raster

import "github.com/gpuraster/gpuraster/internal/basics"

// PointType tags one point of a Figure with a three-value vocabulary of
// its own: start, line, and cubic Bézier point.
type PointType int

const (
	// PointStart begins a new subfigure at this point.
	PointStart PointType = iota
	// PointLine draws a straight segment from the previous point to
	// this one.
	PointLine
	// PointBezier marks one of three consecutive control/end points of
	// a cubic Bézier segment whose start is the preceding point.
	PointBezier
)

// FigurePoint is one point of a Figure's point stream.
type FigurePoint struct {
	X, Y float64
	Type PointType
	// Close is set on a figure's final point when the subfigure should
	// be closed back to its Start point.
	Close bool
}

// FigureIter walks one figure's points in order. It is intentionally
// narrow: a figure is consumed once, front to back, with no random
// access.
type FigureIter interface {
	// Next returns the next point and true, or a zero value and false
	// once the figure is exhausted.
	Next() (FigurePoint, bool)
}

// Shape is the abstract input to Rasterize: a sequence of figures, a
// fill rule, and an optional fast-path hint.
type Shape interface {
	// FigureCount returns how many figures the shape has.
	FigureCount() int

	// Figure returns an iterator over figure i's points.
	Figure(i int) FigureIter

	// FillMode reports the fill rule to classify winding with.
	FillMode() basics.FillingRule

	// IsAxisAlignedRectangle reports whether the shape is exactly one
	// axis-aligned rectangle, letting Rasterize take the parallelogram
	// fast path instead of a full sweep.
	IsAxisAlignedRectangle() bool

	// GetCachedBounds fills bounds with the shape's bounding box, if the
	// shape has one cached, and reports whether it did. Returning false
	// makes Rasterize skip the axis-aligned-rectangle fast path and run
	// the full sweep.
	GetCachedBounds(bounds *RectF) bool
}

// RectF is a bounding box in floating point. Shape.GetCachedBounds
// reports it in the shape's own coordinates, before the world-to-device
// transform is applied.
type RectF struct {
	Left, Top, Right, Bottom float64
}

// SliceFigure is a FigureIter over a pre-built slice of points, useful
// for tests and small embedded shapes.
type SliceFigure struct {
	points []FigurePoint
	pos    int
}

// NewSliceFigure wraps points as a FigureIter.
func NewSliceFigure(points []FigurePoint) *SliceFigure {
	return &SliceFigure{points: points}
}

// Next implements FigureIter.
func (f *SliceFigure) Next() (FigurePoint, bool) {
	if f.pos >= len(f.points) {
		return FigurePoint{}, false
	}
	p := f.points[f.pos]
	f.pos++
	return p, true
}

// PolygonShape is a minimal Shape backed by a fixed list of figures,
// each a slice of FigurePoint, with a single fill rule for the whole
// shape. It has no cached bounds and is never treated as an
// axis-aligned rectangle; use RectangleShape for that fast path.
type PolygonShape struct {
	Figures  [][]FigurePoint
	FillRule basics.FillingRule
}

// FigureCount implements Shape.
func (p *PolygonShape) FigureCount() int { return len(p.Figures) }

// Figure implements Shape.
func (p *PolygonShape) Figure(i int) FigureIter { return NewSliceFigure(p.Figures[i]) }

// FillMode implements Shape.
func (p *PolygonShape) FillMode() basics.FillingRule { return p.FillRule }

// IsAxisAlignedRectangle implements Shape.
func (p *PolygonShape) IsAxisAlignedRectangle() bool { return false }

// GetCachedBounds implements Shape.
func (p *PolygonShape) GetCachedBounds(*RectF) bool { return false }

// RectangleShape is a Shape representing a single axis-aligned
// rectangle, letting Rasterize take the add_parallelogram fast path.
type RectangleShape struct {
	Left, Top, Right, Bottom float64
	FillRule                 basics.FillingRule
}

// FigureCount implements Shape.
func (r *RectangleShape) FigureCount() int { return 1 }

// Figure implements Shape.
func (r *RectangleShape) Figure(int) FigureIter {
	return NewSliceFigure([]FigurePoint{
		{X: r.Left, Y: r.Top, Type: PointStart},
		{X: r.Right, Y: r.Top, Type: PointLine},
		{X: r.Right, Y: r.Bottom, Type: PointLine},
		{X: r.Left, Y: r.Bottom, Type: PointLine, Close: true},
	})
}

// FillMode implements Shape.
func (r *RectangleShape) FillMode() basics.FillingRule { return r.FillRule }

// IsAxisAlignedRectangle implements Shape.
func (r *RectangleShape) IsAxisAlignedRectangle() bool { return true }

// GetCachedBounds implements Shape.
func (r *RectangleShape) GetCachedBounds(bounds *RectF) bool {
	*bounds = RectF{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
	return true
}
