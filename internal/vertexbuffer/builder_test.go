package vertexbuffer

import (
	"math"
	"testing"

	raster "github.com/gpuraster/gpuraster"
	"github.com/gpuraster/gpuraster/internal/basics"
	"github.com/gpuraster/gpuraster/internal/rasterizer"
)

func addUnitSquare(sc *rasterizer.ScanConverter, left, top, right, bottom, clipTop, clipBottom int) {
	l, t, r, b := left*basics.SubpixelScale, top*basics.SubpixelScale, right*basics.SubpixelScale, bottom*basics.SubpixelScale
	ct, cb := clipTop*basics.SubpixelScale, clipBottom*basics.SubpixelScale
	sc.AddSegment(l, t, r, t, ct, cb)
	sc.AddSegment(r, t, r, b, ct, cb)
	sc.AddSegment(r, b, l, b, ct, cb)
	sc.AddSegment(l, b, l, t, ct, cb)
}

func TestBuilderTrapezoidRowsProduceEightVertexStrips(t *testing.T) {
	sc := rasterizer.NewScanConverter(256, 256)
	addUnitSquare(sc, 10, 10, 30, 30, 0, 40)

	b := NewBuilder(FormatXYZDUV2)
	if err := sc.Sweep(0, 40, 0, 40, basics.FillNonZero, false, b); err != nil {
		t.Fatalf("Sweep returned error: %v", err)
	}

	if len(b.Batches()) != 1 {
		t.Fatalf("expected 1 coalesced trapezoid batch, got %d", len(b.Batches()))
	}
	for i, batch := range b.Batches() {
		if batch.Topology != TriangleStrip {
			t.Errorf("batch %d: topology = %v, want TriangleStrip", i, batch.Topology)
		}
		if len(batch.Vertices) != 8 {
			t.Fatalf("batch %d: %d vertices, want 8", i, len(batch.Vertices))
		}
		outerDiffuse := math.Float32frombits(batch.Vertices[0].Diffuse)
		innerDiffuse := math.Float32frombits(batch.Vertices[2].Diffuse)
		if outerDiffuse != 0 {
			t.Errorf("batch %d: outer rail diffuse = %v, want 0", i, outerDiffuse)
		}
		if innerDiffuse != 1 {
			t.Errorf("batch %d: inner rail diffuse = %v, want 1", i, innerDiffuse)
		}
	}
}

func TestBuilderAddParallelogramUniformCoverage(t *testing.T) {
	b := NewBuilder(FormatXYZDUV2)
	corners := [4]basics.PointD{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	if err := b.AddParallelogram(corners, 255); err != nil {
		t.Fatalf("AddParallelogram returned error: %v", err)
	}
	if len(b.Batches()) != 1 {
		t.Fatalf("expected 1 batch, got %d", len(b.Batches()))
	}
	batch := b.Batches()[0]
	if len(batch.Vertices) != 4 {
		t.Fatalf("expected 4 vertices for a parallelogram strip, got %d", len(batch.Vertices))
	}
	for _, v := range batch.Vertices {
		if math.Float32frombits(v.Diffuse) != 1 {
			t.Errorf("vertex diffuse = %v, want 1", math.Float32frombits(v.Diffuse))
		}
	}
}

func TestBuilderNoCoverageChannelRejectsTrapezoid(t *testing.T) {
	b := NewBuilder(FormatXYZ)
	err := b.AddTrapezoid(0, 10, 20, 1, 10, 20, 0.5, 0.5)
	if err != raster.ErrNotImplemented {
		t.Fatalf("AddTrapezoid error = %v, want raster.ErrNotImplemented", err)
	}
}

func TestBuilderDiffuseFromCoverageRescalesRawArea(t *testing.T) {
	b := NewBuilder(FormatXYZDUV2)

	if d := b.diffuseFromCoverage(0); d != 0 {
		t.Errorf("diffuseFromCoverage(0) = %v, want 0", d)
	}
	if d := b.diffuseFromCoverage(basics.AreaScale); d != 1 {
		t.Errorf("diffuseFromCoverage(AreaScale) = %v, want 1", d)
	}
	half := b.diffuseFromCoverage(basics.AreaScale / 2)
	if half <= 0 || half >= 1 {
		t.Errorf("diffuseFromCoverage(AreaScale/2) = %v, want strictly between 0 and 1", half)
	}
}

func TestBuilderDiffuseFromCoverageAppliesGamma(t *testing.T) {
	var gamma [256]uint8
	for i := 1; i < len(gamma); i++ {
		gamma[i] = 255 // any nonzero alpha saturates fully opaque
	}

	b := NewBuilder(FormatXYZDUV2)
	b.SetGamma(&gamma)

	if d := b.diffuseFromCoverage(0); d != 0 {
		t.Errorf("diffuseFromCoverage(0) = %v, want 0", d)
	}
	if d := b.diffuseFromCoverage(1); d != 1 {
		t.Errorf("diffuseFromCoverage(1) = %v, want 1 under saturating gamma", d)
	}
}

func TestBuilderSetWaffleRejectedInOutsideBoundsMode(t *testing.T) {
	b := NewBuilder(FormatXYZDUV2)
	b.SetOutsideBoundsMode(true)
	err := b.SetWaffle(WaffleConfig{Axes: []WaffleAxis{{A: 0.01, Period: 1}}})
	if err != ErrWaffleIncompatibleWithOutsideBounds {
		t.Fatalf("SetWaffle error = %v, want ErrWaffleIncompatibleWithOutsideBounds", err)
	}
}

func TestBuilderIsEmpty(t *testing.T) {
	b := NewBuilder(FormatXYZDUV2)
	if !b.IsEmpty() {
		t.Error("a fresh Builder should be empty")
	}
	corners := [4]basics.PointD{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	if err := b.AddParallelogram(corners, 0); err != nil {
		t.Fatalf("AddParallelogram returned error: %v", err)
	}
	if b.IsEmpty() {
		t.Error("a Builder that accepted a primitive should no longer be empty")
	}
}
