package vertexbuffer

import (
	"errors"

	raster "github.com/gpuraster/gpuraster"
	"github.com/gpuraster/gpuraster/internal/basics"
	"github.com/gpuraster/gpuraster/internal/rasterizer"
)

// ErrWaffleIncompatibleWithOutsideBounds is returned by SetWaffle when
// outside-bounds emission is active: waffling partitions a brush-mapped
// interior fill along texture wrap seams, which only applies to actual
// shape fill, never to the zero-coverage filler geometry outside it.
var ErrWaffleIncompatibleWithOutsideBounds = errors.New("vertexbuffer: waffling is incompatible with outside-bounds emission")

// Builder implements internal/rasterizer.Sink (and so, via its type
// alias, the root package's Sink), turning a sweep's trapezoid,
// complex-scan, and parallelogram calls into draw-ready Batches.
type Builder struct {
	format        VertexFormat
	waffle        WaffleConfig
	outsideBounds bool
	gamma         *[256]uint8
	batches       []Batch
}

// NewBuilder returns a Builder targeting the given vertex format.
func NewBuilder(format VertexFormat) *Builder {
	return &Builder{format: format}
}

// SetGamma installs a gamma LUT applied to complex-scan coverage values
// as they're rescaled into the diffuse channel. A nil gamma (the
// default) leaves the rescale untouched.
func (b *Builder) SetGamma(gamma *[256]uint8) {
	b.gamma = gamma
}

// SetOutsideBoundsMode records whether the sweep feeding this Builder
// emits zero-coverage filler geometry, clearing any waffle
// configuration (see ErrWaffleIncompatibleWithOutsideBounds).
func (b *Builder) SetOutsideBoundsMode(enabled bool) {
	b.outsideBounds = enabled
	if enabled {
		b.waffle = WaffleConfig{}
	}
}

// SetWaffle configures texture-wrap-seam partitioning for subsequent
// fill geometry (trapezoids and parallelograms only; complex-scan
// coverage quads are never brush-mapped).
func (b *Builder) SetWaffle(cfg WaffleConfig) error {
	if b.outsideBounds && len(cfg.Axes) > 0 {
		return ErrWaffleIncompatibleWithOutsideBounds
	}
	b.waffle = cfg
	return nil
}

// Batches returns the accumulated draw calls in emission order.
func (b *Builder) Batches() []Batch {
	return b.batches
}

// IsEmpty implements Sink.
func (b *Builder) IsEmpty() bool {
	return len(b.batches) == 0
}

func (b *Builder) requireCoverage() error {
	if !b.format.HasCoverage() {
		return raster.ErrNotImplemented
	}
	return nil
}

// diffuseFromCoverage rescales a raw complex-scan coverage value (an
// accumulated area in [0, basics.AreaScale]) into the [0,1] diffuse
// fraction the fill shader expects, applying the configured gamma LUT
// (if any) at the rescaled 8-bit stage, matching the teacher
// rasterizer's gamma-after-rescale ordering.
func (b *Builder) diffuseFromCoverage(coverage uint8) float32 {
	alpha := basics.ScaleAreaToAlpha(int(coverage))
	if b.gamma != nil {
		alpha = b.gamma[alpha]
	}
	return float32(alpha) / 255
}

// AddTrapezoid implements Sink: it builds the 8-vertex antialiased
// triangle strip described by the two expansion radii, outer rail at
// coverage 0 and inner rail at coverage 1, waffling it first if brush
// wrap partitioning is configured.
func (b *Builder) AddTrapezoid(yTop int, xlTop, xrTop float64, yBot int, xlBot, xrBot float64, dxLeft, dxRight float64) error {
	if err := b.requireCoverage(); err != nil {
		return err
	}

	top, bot := float64(yTop), float64(yBot)
	quad := [8]vtx2{
		{x: xlTop - dxLeft, y: top, carry: vertexCarry{diffuse: 0}},
		{x: xlBot - dxLeft, y: bot, carry: vertexCarry{diffuse: 0}},
		{x: xlTop + dxLeft, y: top, carry: vertexCarry{diffuse: 1}},
		{x: xlBot + dxLeft, y: bot, carry: vertexCarry{diffuse: 1}},
		{x: xrTop - dxRight, y: top, carry: vertexCarry{diffuse: 1}},
		{x: xrBot - dxRight, y: bot, carry: vertexCarry{diffuse: 1}},
		{x: xrTop + dxRight, y: top, carry: vertexCarry{diffuse: 0}},
		{x: xrBot + dxRight, y: bot, carry: vertexCarry{diffuse: 0}},
	}

	if len(b.waffle.Axes) == 0 {
		bb := newBatchBuilder(TriangleStrip)
		for _, v := range quad {
			bb.add(b.toVertex(v))
		}
		b.batches = append(b.batches, bb.freeze())
		return nil
	}

	return b.addWaffledStrip(quad[:])
}

// addWaffledStrip triangulates a strip's quads (adjacent vertex pairs)
// and waffles each resulting triangle along the configured axes,
// emitting one TriangleList batch.
func (b *Builder) addWaffledStrip(strip []vtx2) error {
	bb := newBatchBuilder(TriangleList)
	for i := 0; i+3 < len(strip); i += 2 {
		tris := [][3]vtx2{
			{strip[i], strip[i+1], strip[i+2]},
			{strip[i+1], strip[i+3], strip[i+2]},
		}
		for _, tri := range tris {
			cells := [][3]vtx2{tri}
			for _, ax := range b.waffle.Axes {
				var next [][3]vtx2
				for _, c := range cells {
					cWithU := attachU(c, ax)
					next = waffleTriangle(ax, cWithU, next)
				}
				cells = next
			}
			for _, c := range cells {
				for _, v := range c {
					bb.add(b.toVertex(v))
				}
			}
		}
	}
	b.batches = append(b.batches, bb.freeze())
	return nil
}

func attachU(tri [3]vtx2, ax WaffleAxis) [3]vtx2 {
	var out [3]vtx2
	for i, v := range tri {
		out[i] = v
		out[i].u = ax.uvAt(v.x, v.y)
	}
	return out
}

func (b *Builder) toVertex(v vtx2) Vertex {
	out := Vertex{X: float32(v.x), Y: float32(v.y), Z: v.carry.z, Diffuse: DiffuseBits(v.carry.diffuse)}
	n := b.format.UVCount()
	for i := 0; i < n; i++ {
		out.UV[i][0] = float32(v.carry.uv[i][0])
		out.UV[i][1] = float32(v.carry.uv[i][1])
	}
	return out
}

// AddComplexScan implements Sink: each coverage run becomes a thin
// one-pixel-tall triangle-strip quad at that run's coverage, the
// "near-top triangle strip" workaround for hardware that rasterizes a
// true line-list primitive inconsistently at sub-pixel widths.
func (b *Builder) AddComplexScan(pixelY int, first rasterizer.CoverageCursor) error {
	top, bot := float64(pixelY), float64(pixelY+1)
	cur := first
	for !cur.Done() {
		x0 := cur.PixelX()
		coverage := cur.Coverage()
		next := cur.Next()
		x1 := next.PixelX()
		cur = next

		if coverage == 0 {
			continue
		}
		if err := b.requireCoverage(); err != nil {
			return err
		}

		d := b.diffuseFromCoverage(coverage)
		bb := newBatchBuilder(TriangleStrip)
		bb.add(b.toVertex(vtx2{x: float64(x0), y: top, carry: vertexCarry{diffuse: d}}))
		bb.add(b.toVertex(vtx2{x: float64(x0), y: bot, carry: vertexCarry{diffuse: d}}))
		bb.add(b.toVertex(vtx2{x: float64(x1), y: top, carry: vertexCarry{diffuse: d}}))
		bb.add(b.toVertex(vtx2{x: float64(x1), y: bot, carry: vertexCarry{diffuse: d}}))
		b.batches = append(b.batches, bb.freeze())
	}
	return nil
}

// AddParallelogram implements Sink: a uniform-coverage quad with no
// antialiasing ramp, used by the axis-aligned-rectangle and
// empty-shape fast paths.
func (b *Builder) AddParallelogram(corners [4]basics.PointD, coverage uint8) error {
	d := float32(coverage) / 255
	if d != 0 && d != 1 {
		if err := b.requireCoverage(); err != nil {
			return err
		}
	}

	quad := [4]vtx2{
		{x: corners[0].X, y: corners[0].Y, carry: vertexCarry{diffuse: d}},
		{x: corners[1].X, y: corners[1].Y, carry: vertexCarry{diffuse: d}},
		{x: corners[3].X, y: corners[3].Y, carry: vertexCarry{diffuse: d}},
		{x: corners[2].X, y: corners[2].Y, carry: vertexCarry{diffuse: d}},
	}

	if len(b.waffle.Axes) == 0 {
		bb := newBatchBuilder(TriangleStrip)
		for _, v := range quad {
			bb.add(b.toVertex(v))
		}
		b.batches = append(b.batches, bb.freeze())
		return nil
	}
	return b.addWaffledStrip(quad[:])
}
