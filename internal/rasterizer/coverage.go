package rasterizer

import (
	"math"

	"github.com/gpuraster/gpuraster/internal/basics"
)

// sentinelPixelX terminates every coverage-interval list, matching the
// INT_MAX sentinel in the data model.
const sentinelPixelX = math.MaxInt32

// intervalIndex addresses a CoverageInterval inside an IntervalPool's
// arena. indexNoneInterval marks the absence of a next node, though in
// practice every list ends at a real sentinel node instead.
type intervalIndex int32

const indexNoneInterval intervalIndex = -1

// CoverageInterval is one run of a scanline's coverage-interval list:
// a pixel-x where a new coverage value begins, the coverage itself, and
// the next run. Intervals are maximal: IntervalPool.BuildRuns never
// emits two adjacent intervals with the same Coverage.
type CoverageInterval struct {
	PixelX   int
	Coverage uint8
	next     intervalIndex
}

// Next returns the following interval's index. Callers compare PixelX
// against sentinelPixelX to detect the list's end rather than checking
// the index directly, matching the wire contract.
func (c *CoverageInterval) Next() intervalIndex { return c.next }

// IntervalPool arena-allocates CoverageInterval nodes for one Rasterize
// call. Nodes are never freed individually; Reset drops them all at
// once between calls.
type IntervalPool struct {
	nodes []CoverageInterval
}

// NewIntervalPool creates a pool pre-sized for blockSize nodes.
func NewIntervalPool(blockSize int) *IntervalPool {
	if blockSize <= 0 {
		blockSize = 256
	}
	return &IntervalPool{nodes: make([]CoverageInterval, 0, blockSize)}
}

// Reset discards all nodes but keeps the arena's backing capacity.
func (p *IntervalPool) Reset() { p.nodes = p.nodes[:0] }

// Node returns the node at idx. The pointer is valid until the next
// Reset.
func (p *IntervalPool) Node(idx intervalIndex) *CoverageInterval { return &p.nodes[idx] }

func (p *IntervalPool) alloc(pixelX int, coverage uint8) intervalIndex {
	p.nodes = append(p.nodes, CoverageInterval{PixelX: pixelX, Coverage: coverage, next: indexNoneInterval})
	return intervalIndex(len(p.nodes) - 1)
}

// coverageAccumulator accumulates, for one pixel row, a hit count per
// subpixel column across that row's SubpixelScale subrows. Column i
// reaches SubpixelScale only if every subrow's inside interval covered
// it; folding SubpixelScale consecutive columns then yields one pixel's
// area in [0, AreaScale].
type coverageAccumulator struct {
	colMin, colMax int
	counts         []int
}

func newCoverageAccumulator(colMin, colMax int) *coverageAccumulator {
	if colMax < colMin {
		colMax = colMin
	}
	return &coverageAccumulator{colMin: colMin, colMax: colMax, counts: make([]int, colMax-colMin)}
}

// reset zeroes the accumulator for the next pixel row.
func (c *coverageAccumulator) reset() {
	for i := range c.counts {
		c.counts[i] = 0
	}
}

// addSubrowSpan adds one hit to every subpixel column in [xa, xb),
// clamped to the accumulator's tracked range.
func (c *coverageAccumulator) addSubrowSpan(xa, xb int) {
	if xa < c.colMin {
		xa = c.colMin
	}
	if xb > c.colMax {
		xb = c.colMax
	}
	for x := xa; x < xb; x++ {
		c.counts[x-c.colMin]++
	}
}

// UniformRun builds a coverage-interval list describing a single
// constant-coverage run over [pixelX0, pixelX1), terminated by the
// sentinel. If the range is empty, only the sentinel is returned. It is
// used for outside-bounds filler spans, which carry no real edges.
func (p *IntervalPool) UniformRun(pixelX0, pixelX1 int, coverage uint8) intervalIndex {
	if pixelX1 <= pixelX0 {
		return p.alloc(sentinelPixelX, 0)
	}
	head := p.alloc(pixelX0, coverage)
	p.Node(head).next = p.alloc(sentinelPixelX, 0)
	return head
}

// BuildRuns folds acc's subpixel-column counts into per-pixel coverage
// starting at pixelMin, and appends the resulting maximal runs
// (terminated by the INT_MAX sentinel) to the pool. Coverage values are
// the raw accumulated area in [0, basics.AreaScale]; rescaling to an
// 8-bit alpha and applying gamma is a vertex-buffer-builder concern, not
// this pool's. It returns the head of the new list.
func (p *IntervalPool) BuildRuns(acc *coverageAccumulator, pixelMin int) intervalIndex {
	numPixels := len(acc.counts) / basics.SubpixelScale

	var head, tail intervalIndex = indexNoneInterval, indexNoneInterval
	var last uint8
	haveLast := false

	emit := func(pixelX int, coverage uint8) {
		idx := p.alloc(pixelX, coverage)
		if head == indexNoneInterval {
			head = idx
		} else {
			p.Node(tail).next = idx
		}
		tail = idx
	}

	for i := 0; i < numPixels; i++ {
		area := 0
		base := i * basics.SubpixelScale
		for j := 0; j < basics.SubpixelScale; j++ {
			area += acc.counts[base+j]
		}

		cov := uint8(area)

		if !haveLast || cov != last {
			emit(pixelMin+i, cov)
			last = cov
			haveLast = true
		}
	}

	emit(sentinelPixelX, 0)
	return head
}
