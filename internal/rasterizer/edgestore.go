package rasterizer

import "sort"

// EdgeStore holds every edge generated for one Rasterize call. Edges are
// appended to a flat arena as segments are fed in, then stably sorted by
// YTop once all figures have been walked. The arena is reset, not
// freed, between calls.
type EdgeStore struct {
	edges  []Edge
	sorted []edgeIndex
	cursor int
}

// NewEdgeStore creates a store whose arena is pre-sized for blockSize
// edges; it grows past that as needed.
func NewEdgeStore(blockSize int) *EdgeStore {
	if blockSize <= 0 {
		blockSize = 256
	}
	return &EdgeStore{edges: make([]Edge, 0, blockSize)}
}

// Reset discards all edges but keeps the arena's backing capacity.
func (s *EdgeStore) Reset() {
	s.edges = s.edges[:0]
	s.sorted = s.sorted[:0]
	s.cursor = 0
}

// AddSegment clips (x0,y0)-(x1,y1), both already in subpixel device
// coordinates, against the vertical range [clipTop, clipBottom) and, if
// anything survives, appends one edge to the arena. Horizontal segments
// and segments that collapse to zero rows after clipping are dropped
// silently, per the rasterizer's geometric-degeneracy handling.
func (s *EdgeStore) AddSegment(x0, y0, x1, y1, clipTop, clipBottom int) {
	if y0 == y1 {
		return
	}

	winding := 1
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
		winding = -1
	}

	if y1 <= clipTop || y0 >= clipBottom {
		return
	}

	if y0 < clipTop {
		x0 += muldiv(x1-x0, clipTop-y0, y1-y0)
		y0 = clipTop
	}
	if y1 > clipBottom {
		x1 = x0 + muldiv(x1-x0, clipBottom-y0, y1-y0)
		y1 = clipBottom
	}

	if y0 >= y1 {
		return
	}

	e := Edge{YTop: y0, YBottom: y1, X: x0, WindingDir: winding, next: indexNone}
	makeDDA(&e, x1-x0, y1-y0)
	s.edges = append(s.edges, e)
}

// muldiv computes a*b/c with truncation toward zero in 64-bit
// intermediate precision, avoiding overflow for subpixel-scale
// coordinates multiplied by a clip span.
func muldiv(a, b, c int) int {
	return int(int64(a) * int64(b) / int64(c))
}

// Finish stably sorts all surviving edges by YTop ascending and rewinds
// the sweep cursor to the top, preparing the store for InsertDueAt.
func (s *EdgeStore) Finish() {
	s.sorted = s.sorted[:0]
	for i := range s.edges {
		s.sorted = append(s.sorted, edgeIndex(i))
	}
	sort.SliceStable(s.sorted, func(i, j int) bool {
		return s.edges[s.sorted[i]].YTop < s.edges[s.sorted[j]].YTop
	})
	s.cursor = 0
}

// Len reports how many edges survived clipping.
func (s *EdgeStore) Len() int { return len(s.edges) }

// Edge returns the arena-stored edge at idx. The pointer is valid until
// the next Reset.
func (s *EdgeStore) Edge(idx edgeIndex) *Edge { return &s.edges[idx] }

// InsertDueAt appends to dst the index of every edge whose YTop equals
// row, advancing the sweep cursor past them. Edges sharing a YTop come
// back in store order, matching the "ties unresolved, stable sort
// preserves insertion order" invariant.
func (s *EdgeStore) InsertDueAt(row int, dst []edgeIndex) []edgeIndex {
	for s.cursor < len(s.sorted) && s.edges[s.sorted[s.cursor]].YTop == row {
		dst = append(dst, s.sorted[s.cursor])
		s.cursor++
	}
	return dst
}

// Done reports whether every edge has been handed out by InsertDueAt.
func (s *EdgeStore) Done() bool { return s.cursor >= len(s.sorted) }

// NextYTop returns the YTop of the next not-yet-inserted edge, used by
// the scan converter to skip empty rows. The second return is false
// once the store is exhausted.
func (s *EdgeStore) NextYTop() (int, bool) {
	if s.cursor >= len(s.sorted) {
		return 0, false
	}
	return s.edges[s.sorted[s.cursor]].YTop, true
}
