package curves

import "testing"

func TestFlattenStraightLine(t *testing.T) {
	f := NewCubicFlattener(0.25)

	// Control points collinear with the chord: the curve is exactly a
	// line, so the adaptive search should settle on very few steps.
	p0 := Point{0, 0}
	p1 := Point{10, 0}
	p2 := Point{20, 0}
	p3 := Point{30, 0}

	pts := f.Flatten(p0, p1, p2, p3)

	if len(pts) < 2 {
		t.Fatalf("expected at least start and end points, got %d", len(pts))
	}
	if pts[0] != p0 {
		t.Errorf("first point = %v, want %v", pts[0], p0)
	}
	if pts[len(pts)-1] != p3 {
		t.Errorf("last point = %v, want %v", pts[len(pts)-1], p3)
	}
	for _, p := range pts {
		if p.Y != 0 {
			t.Errorf("point %v off the line y=0", p)
		}
	}
}

func TestFlattenDegenerateCollapsesToPoint(t *testing.T) {
	f := NewCubicFlattener(0.25)
	p := Point{5, 5}

	pts := f.Flatten(p, p, p, p)

	if len(pts) != 1 {
		t.Fatalf("expected a single point for a degenerate curve, got %d: %v", len(pts), pts)
	}
	if pts[0] != p {
		t.Errorf("point = %v, want %v", pts[0], p)
	}
}

func TestFlattenCurvedSegmentTighterToleranceSubdividesMore(t *testing.T) {
	p0 := Point{0, 0}
	p1 := Point{0, 50}
	p2 := Point{50, 50}
	p3 := Point{50, 0}

	loose := NewCubicFlattener(4).Flatten(p0, p1, p2, p3)
	tight := NewCubicFlattener(0.1).Flatten(p0, p1, p2, p3)

	if len(tight) <= len(loose) {
		t.Fatalf("tighter tolerance should produce more vertices: loose=%d tight=%d", len(loose), len(tight))
	}
	if tight[0] != p0 || tight[len(tight)-1] != p3 {
		t.Errorf("endpoints not preserved: got first=%v last=%v", tight[0], tight[len(tight)-1])
	}
}

func TestFlattenNeverEmitsConsecutiveDuplicates(t *testing.T) {
	f := NewCubicFlattener(0.25)
	pts := f.Flatten(Point{0, 0}, Point{1, 1}, Point{2, -1}, Point{3, 0})

	for i := 1; i < len(pts); i++ {
		if pts[i] == pts[i-1] {
			t.Fatalf("consecutive duplicate point at index %d: %v", i, pts[i])
		}
	}
}
