package rasterizer

import (
	"math"

	"github.com/gpuraster/gpuraster/internal/basics"
)

// rowSweepState accumulates what Sweep observed about one pixel row's
// active-edge pair across its SubpixelScale subrows: whether exactly
// two edges were active throughout, whether that pair's identity never
// changed, and whether any edge was inserted or removed mid-row. A row
// qualifies as a trapezoid stratum only when all of these hold.
type rowSweepState struct {
	havePair       bool
	consistentPair bool
	insertedMidRow bool
	removedMidRow  bool

	pairLeft, pairRight                    edgeIndex
	xTopLeft, xTopRight, xBotLeft, xBotRight int
}

// isTrapezoid reports whether the row qualifies as a trapezoid stratum:
// exactly two edges crossed it, forming one inside interval, cleanly
// from the row's top subrow to its bottom subrow.
func (rs rowSweepState) isTrapezoid() bool {
	return rs.havePair && rs.consistentPair && !rs.insertedMidRow && !rs.removedMidRow
}

// trapezoidRun tracks a maximal run of consecutive pixel rows that all
// qualify as trapezoid strata under the same active-edge pair, so the
// whole run becomes a single AddTrapezoid call spanning [yTop, yBot)
// instead of one call per row.
type trapezoidRun struct {
	open                 bool
	pairLeft, pairRight  edgeIndex
	yTop, yBot           int
	xTopLeft, xTopRight  int
	xBotLeft, xBotRight  int
}

// startTrapezoidRun opens a new run at row using rs's pair identity and
// top/bottom X values.
func startTrapezoidRun(row int, rs rowSweepState) trapezoidRun {
	return trapezoidRun{
		open:      true,
		pairLeft:  rs.pairLeft,
		pairRight: rs.pairRight,
		yTop:      row,
		yBot:      row + 1,
		xTopLeft:  rs.xTopLeft,
		xTopRight: rs.xTopRight,
		xBotLeft:  rs.xBotLeft,
		xBotRight: rs.xBotRight,
	}
}

// matches reports whether row's pair identity is the same edge pair this
// run was opened with, so the row can extend the run instead of starting
// a new one.
func (tr trapezoidRun) matches(rs rowSweepState) bool {
	return tr.open && rs.pairLeft == tr.pairLeft && rs.pairRight == tr.pairRight
}

// extend grows the run to include row, updating its bottom edge.
func (tr *trapezoidRun) extend(row int, rs rowSweepState) {
	tr.yBot = row + 1
	tr.xBotLeft = rs.xBotLeft
	tr.xBotRight = rs.xBotRight
}

// flushTrapezoidRun emits tr as a single trapezoid stratum and clears it.
// A run whose left and right rails coincide at both top and bottom is a
// zero-area trapezoid, suppressed per the silent-degeneracy rule.
func (sc *ScanConverter) flushTrapezoidRun(tr *trapezoidRun, sink Sink) error {
	if !tr.open {
		return nil
	}
	defer func() { *tr = trapezoidRun{} }()

	xlTop := FromSubpixel(tr.xTopLeft)
	xrTop := FromSubpixel(tr.xTopRight)
	xlBot := FromSubpixel(tr.xBotLeft)
	xrBot := FromSubpixel(tr.xBotRight)

	if xlTop == xrTop && xlBot == xrBot {
		return nil
	}

	numRows := float64(tr.yBot - tr.yTop)
	dxLeft := expansionRadius((xlBot - xlTop) / numRows)
	dxRight := expansionRadius((xrBot - xrTop) / numRows)
	return sink.AddTrapezoid(tr.yTop, xlTop, xrTop, tr.yBot, xlBot, xrBot, dxLeft, dxRight)
}

// emitTrapezoidFiller reports, in outside-bounds mode, the zero-coverage
// filler spans to either side of one trapezoid row. Filler tracks the
// shape's actual rails for that specific row, so it is emitted per row
// even while the trapezoid itself is coalesced across rows.
func (sc *ScanConverter) emitTrapezoidFiller(row int, rs rowSweepState, clipLeft, clipRight int, sink Sink) error {
	xlTop := FromSubpixel(rs.xTopLeft)
	xrTop := FromSubpixel(rs.xTopRight)
	xlBot := FromSubpixel(rs.xBotLeft)
	xrBot := FromSubpixel(rs.xBotRight)
	return sc.closeStratumFiller(row, xlTop, xrTop, xlBot, xrBot, clipLeft, clipRight, sink)
}

// closeStratumFiller emits the [clip_left, shape_left) and
// [shape_right, clip_right) zero-coverage filler spans for a trapezoid
// row in outside-bounds mode, generalizing the original's two-sided
// PrepareStratumSlow closing to whichever sides actually need it.
func (sc *ScanConverter) closeStratumFiller(row int, xlTop, xrTop, xlBot, xrBot float64, clipLeft, clipRight int, sink Sink) error {
	leftEdge := basics.IMin(basics.IFloor(xlTop), basics.IFloor(xlBot))
	rightEdge := basics.IMax(basics.ICeil(xrTop), basics.ICeil(xrBot))

	if leftEdge > clipLeft {
		head := sc.intervals.UniformRun(clipLeft, leftEdge, 0)
		if err := sink.AddComplexScan(row, newCoverageCursor(sc.intervals, head)); err != nil {
			return err
		}
	}
	if rightEdge < clipRight {
		head := sc.intervals.UniformRun(rightEdge, clipRight, 0)
		if err := sink.AddComplexScan(row, newCoverageCursor(sc.intervals, head)); err != nil {
			return err
		}
	}
	return nil
}

// hasAnyCoverage reports whether any subpixel column accumulated a
// nonzero hit count this row.
func (c *coverageAccumulator) hasAnyCoverage() bool {
	for _, n := range c.counts {
		if n != 0 {
			return true
		}
	}
	return false
}

// expansionRadius returns the half-pixel antialias expansion width for
// an edge whose x moves dxPerRow pixels over one pixel row of height,
// matching a constant-width line expansion along the edge's slope.
func expansionRadius(dxPerRow float64) float64 {
	return 0.5 * math.Sqrt(1+dxPerRow*dxPerRow)
}
