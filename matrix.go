package raster

// Matrix3x2 is the affine world-to-device transform applied to every
// figure point before rasterization. It is the 2x3 subset of a full
// 3D transform stack; the rest of that stack (viewport, projection,
// 3D rotation) is out of scope for this rasterizer.
type Matrix3x2 struct {
	M11, M12 float64
	M21, M22 float64
	Dx, Dy   float64
}

// Identity returns the transform that leaves points unchanged.
func Identity() Matrix3x2 {
	return Matrix3x2{M11: 1, M22: 1}
}

// Translate returns the transform that offsets points by (dx, dy).
func Translate(dx, dy float64) Matrix3x2 {
	return Matrix3x2{M11: 1, M22: 1, Dx: dx, Dy: dy}
}

// Scale returns the transform that scales points by (sx, sy) about the
// origin.
func Scale(sx, sy float64) Matrix3x2 {
	return Matrix3x2{M11: sx, M22: sy}
}

// Transform applies the affine map to (x, y).
func (m Matrix3x2) Transform(x, y float64) (float64, float64) {
	return m.M11*x + m.M21*y + m.Dx, m.M12*x + m.M22*y + m.Dy
}

// Multiply returns the transform equivalent to applying m first, then
// n, i.e. n.Transform(m.Transform(x, y)).
func (m Matrix3x2) Multiply(n Matrix3x2) Matrix3x2 {
	return Matrix3x2{
		M11: m.M11*n.M11 + m.M12*n.M21,
		M12: m.M11*n.M12 + m.M12*n.M22,
		M21: m.M21*n.M11 + m.M22*n.M21,
		M22: m.M21*n.M12 + m.M22*n.M22,
		Dx:  m.Dx*n.M11 + m.Dy*n.M21 + n.Dx,
		Dy:  m.Dx*n.M12 + m.Dy*n.M22 + n.Dy,
	}
}

// IsAxisAligned reports whether the transform maps axis-aligned
// rectangles to axis-aligned rectangles: scale and translation, or an
// x/y swap (a quarter-turn rotation or reflection), with no shear or
// other rotation.
func (m Matrix3x2) IsAxisAligned() bool {
	return (m.M12 == 0 && m.M21 == 0) || (m.M11 == 0 && m.M22 == 0)
}
