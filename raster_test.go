package raster

import (
	"testing"

	"github.com/gpuraster/gpuraster/internal/basics"
	"github.com/gpuraster/gpuraster/internal/config"
)

type capturedTrapezoid struct {
	yTop, yBot                 int
	xlTop, xrTop, xlBot, xrBot float64
}

type capturedScan struct {
	pixelY int
	runs   []CoverageInterval
}

// CoverageInterval mirrors internal/rasterizer.CoverageInterval for
// test-local recording; only the fields the sink needs are kept.
type CoverageInterval struct {
	PixelX   int
	Coverage uint8
}

type capturingSink struct {
	trapezoids []capturedTrapezoid
	scans      []capturedScan
	parallelograms []struct {
		corners  [4]basics.PointD
		coverage uint8
	}
}

func (s *capturingSink) AddTrapezoid(yTop int, xlTop, xrTop float64, yBot int, xlBot, xrBot float64, dxLeft, dxRight float64) error {
	s.trapezoids = append(s.trapezoids, capturedTrapezoid{yTop, yBot, xlTop, xrTop, xlBot, xrBot})
	return nil
}

func (s *capturingSink) AddComplexScan(pixelY int, first CoverageCursor) error {
	var runs []CoverageInterval
	for !first.Done() {
		runs = append(runs, CoverageInterval{PixelX: first.PixelX(), Coverage: first.Coverage()})
		first = first.Next()
	}
	s.scans = append(s.scans, capturedScan{pixelY: pixelY, runs: runs})
	return nil
}

func (s *capturingSink) AddParallelogram(corners [4]basics.PointD, coverage uint8) error {
	s.parallelograms = append(s.parallelograms, struct {
		corners  [4]basics.PointD
		coverage uint8
	}{corners, coverage})
	return nil
}

func (s *capturingSink) IsEmpty() bool {
	return len(s.trapezoids) == 0 && len(s.scans) == 0 && len(s.parallelograms) == 0
}

func unitSquareShape(left, top, right, bottom float64, rule basics.FillingRule) *PolygonShape {
	return &PolygonShape{
		FillRule: rule,
		Figures: [][]FigurePoint{{
			{X: left, Y: top, Type: PointStart},
			{X: right, Y: top, Type: PointLine},
			{X: right, Y: bottom, Type: PointLine},
			{X: left, Y: bottom, Type: PointLine, Close: true},
		}},
	}
}

func TestRasterizeUnitSquare(t *testing.T) {
	r := New(config.Default())
	shape := unitSquareShape(10, 10, 30, 30, basics.FillEvenOdd)
	sink := &capturingSink{}

	clip := IntRect{Left: 0, Top: 0, Right: 40, Bottom: 40}
	if err := r.Rasterize(clip, shape, Identity(), sink, RasterizeOptions{}); err != nil {
		t.Fatalf("Rasterize returned error: %v", err)
	}

	if len(sink.scans) != 0 {
		t.Errorf("expected no complex scans for a clean square, got %d", len(sink.scans))
	}
	if len(sink.trapezoids) != 1 {
		t.Fatalf("expected one coalesced trapezoid stratum, got %d", len(sink.trapezoids))
	}
	tr := sink.trapezoids[0]
	if tr.yTop != 10 || tr.yBot != 30 {
		t.Errorf("trapezoid rows = [%d,%d), want [10,30)", tr.yTop, tr.yBot)
	}
	if tr.xlTop != 10 || tr.xrTop != 30 {
		t.Errorf("trapezoid x = {%v %v}, want {10 30}", tr.xlTop, tr.xrTop)
	}
}

func TestRasterizeDegenerateQuadStillFillsSquare(t *testing.T) {
	r := New(config.Default())
	shape := &PolygonShape{
		FillRule: basics.FillEvenOdd,
		Figures: [][]FigurePoint{{
			{X: 10, Y: 10, Type: PointStart},
			{X: 10, Y: 30, Type: PointLine},
			{X: 30, Y: 30, Type: PointLine},
			{X: 30, Y: 10, Type: PointLine},
			{X: 10, Y: 28, Type: PointLine, Close: true},
		}},
	}
	sink := &capturingSink{}

	clip := IntRect{Left: 0, Top: 0, Right: 40, Bottom: 40}
	if err := r.Rasterize(clip, shape, Identity(), sink, RasterizeOptions{}); err != nil {
		t.Fatalf("Rasterize returned error: %v", err)
	}

	if sink.IsEmpty() {
		t.Fatal("expected the degenerate quad to still produce fill output")
	}
}

func TestRasterizeEmptyShapeOutsideBoundsEmitsOneParallelogram(t *testing.T) {
	r := New(config.Default())
	shape := &PolygonShape{FillRule: basics.FillNonZero}
	sink := &capturingSink{}

	clip := IntRect{Left: 0, Top: 0, Right: 100, Bottom: 100}
	opts := RasterizeOptions{EmitOutside: &clip}
	if err := r.Rasterize(clip, shape, Identity(), sink, opts); err != nil {
		t.Fatalf("Rasterize returned error: %v", err)
	}

	if len(sink.parallelograms) != 1 {
		t.Fatalf("expected exactly one parallelogram, got %d", len(sink.parallelograms))
	}
	if sink.parallelograms[0].coverage != 0 {
		t.Errorf("coverage = %d, want 0", sink.parallelograms[0].coverage)
	}
	if len(sink.trapezoids) != 0 || len(sink.scans) != 0 {
		t.Errorf("expected no other sink calls, got %d trapezoids and %d scans", len(sink.trapezoids), len(sink.scans))
	}
}

func TestRasterizeAxisAlignedRectangleFastPath(t *testing.T) {
	r := New(config.Default())
	shape := &RectangleShape{Left: 5, Top: 5, Right: 50, Bottom: 50, FillRule: basics.FillNonZero}
	sink := &capturingSink{}

	clip := IntRect{Left: 0, Top: 0, Right: 50, Bottom: 50}
	if err := r.Rasterize(clip, shape, Identity(), sink, RasterizeOptions{}); err != nil {
		t.Fatalf("Rasterize returned error: %v", err)
	}

	if len(sink.parallelograms) != 1 {
		t.Fatalf("expected exactly one parallelogram for the axis-aligned fast path, got %d", len(sink.parallelograms))
	}
	if sink.parallelograms[0].coverage != 255 {
		t.Errorf("coverage = %d, want 255", sink.parallelograms[0].coverage)
	}
	if len(sink.trapezoids) != 0 || len(sink.scans) != 0 {
		t.Errorf("expected the fast path to skip the sweep entirely")
	}
}

func TestRasterizeAxisAlignedRectangleFastPathClipsToClipRect(t *testing.T) {
	r := New(config.Default())
	shape := &RectangleShape{Left: 0, Top: 0, Right: 100, Bottom: 100, FillRule: basics.FillNonZero}
	sink := &capturingSink{}

	clip := IntRect{Left: 10, Top: 20, Right: 60, Bottom: 70}
	if err := r.Rasterize(clip, shape, Identity(), sink, RasterizeOptions{}); err != nil {
		t.Fatalf("Rasterize returned error: %v", err)
	}

	if len(sink.parallelograms) != 1 {
		t.Fatalf("expected exactly one parallelogram, got %d", len(sink.parallelograms))
	}
	corners := sink.parallelograms[0].corners
	if corners[0].X != 10 || corners[0].Y != 20 || corners[2].X != 60 || corners[2].Y != 70 {
		t.Errorf("parallelogram corners = %v, want clipped to {10,20}-{60,70}", corners)
	}
}

func TestRasterizeAxisAlignedRectangleFastPathDisabledWithEmitOutside(t *testing.T) {
	r := New(config.Default())
	shape := &RectangleShape{Left: 5, Top: 5, Right: 20, Bottom: 20, FillRule: basics.FillNonZero}
	sink := &capturingSink{}

	clip := IntRect{Left: 0, Top: 0, Right: 30, Bottom: 30}
	opts := RasterizeOptions{EmitOutside: &clip}
	if err := r.Rasterize(clip, shape, Identity(), sink, opts); err != nil {
		t.Fatalf("Rasterize returned error: %v", err)
	}

	if len(sink.parallelograms) != 0 {
		t.Errorf("expected the general sweep (not the fast path) when EmitOutside is set, got %d parallelograms", len(sink.parallelograms))
	}
}
