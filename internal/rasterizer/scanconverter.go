package rasterizer

import "github.com/gpuraster/gpuraster/internal/basics"

// span is an inside interval on a single subrow, in subpixel x units.
type span struct{ xa, xb int }

// ScanConverter drives the row sweep: it owns the edge store, active-
// edge list, and coverage-interval pool for one Rasterize call, handing
// each pixel row to stratify.go for classification before invoking the
// Sink.
type ScanConverter struct {
	edges     *EdgeStore
	ael       *ActiveEdgeList
	intervals *IntervalPool

	spanBuf   []span
	insertBuf []edgeIndex
}

// NewScanConverter builds a converter with the given arena block sizes.
func NewScanConverter(edgeBlockSize, intervalBlockSize int) *ScanConverter {
	store := NewEdgeStore(edgeBlockSize)
	return &ScanConverter{
		edges:     store,
		ael:       NewActiveEdgeList(store),
		intervals: NewIntervalPool(intervalBlockSize),
	}
}

// Reset discards all edges, active-edge state, and interval nodes,
// keeping arena capacity for the next call.
func (sc *ScanConverter) Reset() {
	sc.edges.Reset()
	sc.ael.Reset()
	sc.intervals.Reset()
}

// AddSegment stages one clipped, flattened line segment for the sweep.
// Coordinates are in subpixel device space already.
func (sc *ScanConverter) AddSegment(x0, y0, x1, y1, clipTopSub, clipBottomSub int) {
	sc.edges.AddSegment(x0, y0, x1, y1, clipTopSub, clipBottomSub)
}

// Sweep drives pixel rows [clipTop, clipBottom) over pixel columns
// [clipLeft, clipRight), classifying each row and invoking sink
// accordingly. When emitOutside is true, rows and columns the shape
// never touches are still reported, with coverage 0.
func (sc *ScanConverter) Sweep(clipTop, clipBottom, clipLeft, clipRight int, fillRule basics.FillingRule, emitOutside bool, sink Sink) error {
	sc.edges.Finish()
	sc.ael.Reset()

	colMin := clipLeft * basics.SubpixelScale
	colMax := clipRight * basics.SubpixelScale
	acc := newCoverageAccumulator(colMin, colMax)

	var run trapezoidRun

	for row := clipTop; row < clipBottom; row++ {
		rowTopSub := row * basics.SubpixelScale
		rowBotSub := rowTopSub + basics.SubpixelScale

		acc.reset()

		rs := rowSweepState{consistentPair: true}

		for sub := rowTopSub; sub < rowBotSub; sub++ {
			sc.insertBuf = sc.edges.InsertDueAt(sub, sc.insertBuf[:0])
			if len(sc.insertBuf) > 0 {
				if sub != rowTopSub {
					rs.insertedMidRow = true
				}
				for _, idx := range sc.insertBuf {
					sc.ael.Insert(idx)
				}
			}

			sc.recordPairIdentity(sub, rowTopSub, &rs)

			sc.spanBuf = sc.walkSpans(fillRule, sc.spanBuf[:0])
			for _, sp := range sc.spanBuf {
				acc.addSubrowSpan(sp.xa, sp.xb)
			}

			before := sc.ael.Len()
			sc.ael.Advance(sub)
			if sc.ael.Len() != before && sub != rowBotSub-1 {
				rs.removedMidRow = true
			}
			sc.ael.Resort()
		}

		if rs.havePair {
			rs.xBotLeft = sc.edges.Edge(rs.pairLeft).X
			rs.xBotRight = sc.edges.Edge(rs.pairRight).X
		}

		if rs.isTrapezoid() {
			if !run.matches(rs) {
				if err := sc.flushTrapezoidRun(&run, sink); err != nil {
					return err
				}
				run = startTrapezoidRun(row, rs)
			} else {
				run.extend(row, rs)
			}
			if emitOutside {
				if err := sc.emitTrapezoidFiller(row, rs, clipLeft, clipRight, sink); err != nil {
					return err
				}
			}
			continue
		}

		if err := sc.flushTrapezoidRun(&run, sink); err != nil {
			return err
		}

		if !emitOutside && !acc.hasAnyCoverage() {
			continue
		}

		head := sc.intervals.BuildRuns(acc, clipLeft)
		if err := sink.AddComplexScan(row, newCoverageCursor(sc.intervals, head)); err != nil {
			return err
		}
	}

	if err := sc.flushTrapezoidRun(&run, sink); err != nil {
		return err
	}

	return nil
}

// recordPairIdentity captures the active-edge pair at the row's first
// subrow and checks it stays the same head/second edge at every later
// subrow, feeding stratify.go's trapezoid eligibility test.
func (sc *ScanConverter) recordPairIdentity(sub, rowTopSub int, rs *rowSweepState) {
	if sub == rowTopSub {
		if sc.ael.Len() == 2 {
			rs.havePair = true
			rs.pairLeft = sc.ael.Head()
			rs.pairRight = sc.ael.Next(rs.pairLeft)
			rs.xTopLeft = sc.edges.Edge(rs.pairLeft).X
			rs.xTopRight = sc.edges.Edge(rs.pairRight).X
		}
		return
	}
	if rs.havePair {
		if sc.ael.Len() != 2 || sc.ael.Head() != rs.pairLeft || sc.ael.Next(rs.pairLeft) != rs.pairRight {
			rs.consistentPair = false
		}
	}
}

// walkSpans returns the inside intervals on the current subrow,
// appending to out, by walking the active-edge list left to right and
// tracking winding (non-zero) or parity (even-odd).
func (sc *ScanConverter) walkSpans(rule basics.FillingRule, out []span) []span {
	winding := 0
	inside := false
	insideFrom := 0

	cur := sc.ael.Head()
	for cur != indexNone {
		e := sc.edges.Edge(cur)
		x := e.X

		wasInside := inside
		if rule == basics.FillEvenOdd {
			inside = !inside
		} else {
			winding += e.WindingDir
			inside = winding != 0
		}

		if !wasInside && inside {
			insideFrom = x
		} else if wasInside && !inside {
			out = append(out, span{xa: insideFrom, xb: x})
		}

		cur = sc.ael.Next(cur)
	}
	return out
}
