package raster

import (
	"math"

	"github.com/gpuraster/gpuraster/internal/basics"
	"github.com/gpuraster/gpuraster/internal/config"
	"github.com/gpuraster/gpuraster/internal/curves"
	"github.com/gpuraster/gpuraster/internal/rasterizer"
)

// IntRect is a device-space integer pixel rectangle, half-open
// [Left,Right) x [Top,Bottom).
type IntRect struct {
	Left, Top, Right, Bottom int
}

// RasterizeOptions controls optional behavior of a Rasterize call.
type RasterizeOptions struct {
	// EmitOutside, if non-nil, requests that pixels inside it but
	// outside the filled shape also be emitted, with coverage 0.
	EmitOutside *IntRect

	// NeedInside is accepted but not read: Rasterize keeps no sorted
	// state after the call, and the package offers no point-query
	// (HitTest-style) API.
	NeedInside bool
}

// Rasterizer holds the arenas and tunables reused across Rasterize
// calls. The zero value is not valid; use New.
type Rasterizer struct {
	cfg       config.Config
	flattener *curves.CubicFlattener
	converter *rasterizer.ScanConverter
}

// New builds a Rasterizer from cfg. Pass config.Default() for the
// library's defaults.
func New(cfg config.Config) *Rasterizer {
	return &Rasterizer{
		cfg:       cfg,
		flattener: curves.NewCubicFlattener(float64(cfg.FlattenToleranceSubpixels)),
		converter: rasterizer.NewScanConverter(cfg.EdgeArenaBlockSize, cfg.IntervalPoolBlockSize),
	}
}

// deviceLimit bounds the device-space coordinate magnitude (prior to
// the subpixel multiply) that can't possibly overflow.
const deviceLimit = float64(math.MaxInt32) / basics.SubpixelScale / 2

// Rasterize sweeps shape, transformed by worldToDevice, against
// clipRect, driving sink with trapezoid, complex-scan, and
// parallelogram calls. It runs to completion without internal
// suspension; a sink error aborts the sweep and propagates immediately.
func (r *Rasterizer) Rasterize(clipRect IntRect, shape Shape, worldToDevice Matrix3x2, sink Sink, opts RasterizeOptions) error {
	if clipRect.Right < clipRect.Left || clipRect.Bottom < clipRect.Top {
		return ErrInvalidArg
	}

	emitOutside := opts.EmitOutside != nil
	sweepRect := clipRect
	if emitOutside {
		sweepRect = *opts.EmitOutside
	}

	if !emitOutside && shape.FigureCount() == 1 && shape.IsAxisAlignedRectangle() && worldToDevice.IsAxisAligned() {
		var bounds RectF
		if shape.GetCachedBounds(&bounds) {
			return r.rasterizeAxisAlignedRectangle(bounds, worldToDevice, clipRect, sink)
		}
	}

	if shape.FigureCount() == 0 {
		if !emitOutside {
			return nil
		}
		return sink.AddParallelogram(rectCorners(sweepRect), 0)
	}

	r.converter.Reset()

	clipTopSub := sweepRect.Top * basics.SubpixelScale
	clipBottomSub := sweepRect.Bottom * basics.SubpixelScale

	for i := 0; i < shape.FigureCount(); i++ {
		if err := addFigure(shape.Figure(i), worldToDevice, r.flattener, r.converter, clipTopSub, clipBottomSub); err != nil {
			return err
		}
	}

	return r.converter.Sweep(sweepRect.Top, sweepRect.Bottom, sweepRect.Left, sweepRect.Right, shape.FillMode(), emitOutside, sink)
}

// rasterizeAxisAlignedRectangle takes the add_parallelogram fast path: an
// axis-aligned rectangle shape collapses to a single sink call instead of
// a full sweep. The transformed bounds are clipped to clipRect first, so
// the fast path honors the clipping invariant exactly as the general
// sweep does.
func (r *Rasterizer) rasterizeAxisAlignedRectangle(bounds RectF, xform Matrix3x2, clipRect IntRect, sink Sink) error {
	x0, y0 := xform.Transform(bounds.Left, bounds.Top)
	x1, y1 := xform.Transform(bounds.Right, bounds.Bottom)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}

	x0 = math.Max(x0, float64(clipRect.Left))
	y0 = math.Max(y0, float64(clipRect.Top))
	x1 = math.Min(x1, float64(clipRect.Right))
	y1 = math.Min(y1, float64(clipRect.Bottom))

	if x1 <= x0 || y1 <= y0 {
		return nil
	}

	corners := [4]basics.PointD{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}
	return sink.AddParallelogram(corners, 255)
}

func rectCorners(r IntRect) [4]basics.PointD {
	return [4]basics.PointD{
		{X: float64(r.Left), Y: float64(r.Top)},
		{X: float64(r.Right), Y: float64(r.Top)},
		{X: float64(r.Right), Y: float64(r.Bottom)},
		{X: float64(r.Left), Y: float64(r.Bottom)},
	}
}

// toSubpixelPoint transforms (x,y) by xform and scales it into
// floating-point subpixel units, reporting ErrGeometryTooLarge instead
// of silently overflowing.
func toSubpixelPoint(xform Matrix3x2, x, y float64) (curves.Point, error) {
	dx, dy := xform.Transform(x, y)
	if dx > deviceLimit || dx < -deviceLimit || dy > deviceLimit || dy < -deviceLimit {
		return curves.Point{}, ErrGeometryTooLarge
	}
	return curves.Point{X: dx * basics.SubpixelScale, Y: dy * basics.SubpixelScale}, nil
}

// addFigure walks one figure, transforming and flattening it into
// subpixel-space line segments staged onto sc.
func addFigure(fig FigureIter, xform Matrix3x2, flattener *curves.CubicFlattener, sc *rasterizer.ScanConverter, clipTopSub, clipBottomSub int) error {
	emitLine := func(a, b curves.Point) {
		sc.AddSegment(basics.IRound(a.X), basics.IRound(a.Y), basics.IRound(b.X), basics.IRound(b.Y), clipTopSub, clipBottomSub)
	}

	var start, cur curves.Point
	haveStart := false
	var bez []curves.Point

	for {
		fp, ok := fig.Next()
		if !ok {
			break
		}

		p, err := toSubpixelPoint(xform, fp.X, fp.Y)
		if err != nil {
			return err
		}

		switch fp.Type {
		case PointStart:
			start, cur = p, p
			haveStart = true
			bez = bez[:0]
		case PointLine:
			emitLine(cur, p)
			cur = p
		case PointBezier:
			bez = append(bez, p)
			if len(bez) == 3 {
				pts := flattener.Flatten(cur, bez[0], bez[1], bez[2])
				prev := cur
				for _, v := range pts[1:] {
					emitLine(prev, v)
					prev = v
				}
				cur = bez[2]
				bez = bez[:0]
			}
		}

		if fp.Close && haveStart {
			emitLine(cur, start)
			cur = start
		}
	}
	return nil
}
