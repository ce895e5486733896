package vertexbuffer

import "math"

// minWaffleWidthPixels is the narrowest a waffle cell is allowed to get
// before waffling that axis is abandoned in favor of letting the brush
// wrap within a single primitive; below this width the subdivision cost
// outweighs the seam it prevents.
const minWaffleWidthPixels = 0.25

// WaffleAxis configures waffling along one texture-coordinate axis: the
// UV-space-to-pixel mapping (a, b, c such that u = a*x + b*y + c) and
// the wrap period in UV space.
type WaffleAxis struct {
	A, B, C float64
	Period  float64
}

// maxMagnitude is the largest squared (a,b) magnitude a waffle axis may have
// before its cell width drops below minWaffleWidthPixels and waffling
// is skipped for that axis.
var maxMagnitude = 1 / (minWaffleWidthPixels * minWaffleWidthPixels)

// enabled reports whether ax is narrow enough in device space to be
// worth waffling.
func (ax WaffleAxis) enabled() bool {
	mag := ax.A*ax.A + ax.B*ax.B
	return ax.Period > 0 && mag < maxMagnitude
}

// uvAt evaluates the axis's UV coordinate at device point (x, y).
func (ax WaffleAxis) uvAt(x, y float64) float64 {
	return ax.A*x + ax.B*y + ax.C
}

// WaffleConfig names the (up to two) axes a triangle or parallelogram
// should be partitioned along before triangulation, so that no single
// triangle straddles a texture wrap boundary. It is mutually exclusive
// with outside-bounds emission: a shape that needs zero-coverage filler
// geometry outside its fill never also needs wrap-seam partitioning,
// since only brush-mapped interior fills use repeating textures.
type WaffleConfig struct {
	Axes []WaffleAxis
}

// vtx2 is the waffler's working point: device position plus the
// texture coordinate of the axis currently being partitioned.
type vtx2 struct {
	x, y, u float64
	// carry is an opaque payload (the vertex's other UV channels,
	// diffuse, Z) interpolated alongside u.
	carry vertexCarry
}

// vertexCarry is whatever a waffled vertex must interpolate besides
// (x, y) and the axis being partitioned: Z, diffuse, and any UV
// channels not currently being waffled.
type vertexCarry struct {
	z       float32
	diffuse float32
	uv      [maxUV][2]float64
}

func lerpCarry(a, b vertexCarry, t float64) vertexCarry {
	var out vertexCarry
	out.z = float32(float64(a.z) + (float64(b.z)-float64(a.z))*t)
	out.diffuse = float32(float64(a.diffuse) + (float64(b.diffuse)-float64(a.diffuse))*t)
	for i := range out.uv {
		out.uv[i][0] = a.uv[i][0] + (b.uv[i][0]-a.uv[i][0])*t
		out.uv[i][1] = a.uv[i][1] + (b.uv[i][1]-a.uv[i][1])*t
	}
	return out
}

// waffleTriangle splits one triangle along ax's period lines, appending
// the resulting (possibly many) smaller triangles to out. It splits every
// current cell once per crossed grid line, mirroring the original's
// TriangleWaffler.
func waffleTriangle(ax WaffleAxis, tri [3]vtx2, out [][3]vtx2) [][3]vtx2 {
	if !ax.enabled() {
		return append(out, tri)
	}

	umin, umax := tri[0].u, tri[0].u
	for _, v := range tri[1:] {
		umin = math.Min(umin, v.u)
		umax = math.Max(umax, v.u)
	}
	first := math.Floor(umin/ax.Period) + 1
	last := math.Ceil(umax / ax.Period)
	if first >= last {
		return append(out, tri)
	}

	cells := [][3]vtx2{tri}
	for line := first; line < last; line++ {
		boundary := line * ax.Period
		var next [][3]vtx2
		for _, cell := range cells {
			next = append(next, splitTriangleAtU(cell, boundary)...)
		}
		cells = next
	}
	return append(out, cells...)
}

// splitTriangleAtU cuts one triangle against the line u == boundary,
// returning it unchanged when all vertices fall on one side, and
// otherwise three triangles: the lone vertex's corner plus the two that
// tile the remaining quadrilateral.
func splitTriangleAtU(tri [3]vtx2, boundary float64) [][3]vtx2 {
	side := func(v vtx2) int {
		if v.u < boundary {
			return -1
		}
		if v.u > boundary {
			return 1
		}
		return 0
	}
	s := [3]int{side(tri[0]), side(tri[1]), side(tri[2])}

	allSame := (s[0] >= 0) == (s[1] >= 0) && (s[1] >= 0) == (s[2] >= 0)
	if allSame {
		return [][3]vtx2{tri}
	}

	// Rotate so vertex 0 is alone on its side of the boundary.
	idx := [3]int{0, 1, 2}
	for i := 0; i < 3; i++ {
		a, b, c := s[idx[0]], s[idx[1]], s[idx[2]]
		if (a >= 0) != (b >= 0) && (a >= 0) != (c >= 0) {
			break
		}
		idx[0], idx[1], idx[2] = idx[1], idx[2], idx[0]
	}
	v0, v1, v2 := tri[idx[0]], tri[idx[1]], tri[idx[2]]

	p01 := lerpOnU(v0, v1, boundary)
	p02 := lerpOnU(v0, v2, boundary)

	return [][3]vtx2{
		{v0, p01, p02},
		{p01, v1, v2},
		{p01, v2, p02},
	}
}

func lerpOnU(a, b vtx2, boundary float64) vtx2 {
	t := (boundary - a.u) / (b.u - a.u)
	return vtx2{
		x:     a.x + (b.x-a.x)*t,
		y:     a.y + (b.y-a.y)*t,
		u:     boundary,
		carry: lerpCarry(a.carry, b.carry, t),
	}
}
