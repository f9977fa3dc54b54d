package gradient

import "math"

// Matrix2D represents a 2D affine transformation matrix.
// Layout: [a, b, c, d, e, f] representing:
// | a  c  e |
// | b  d  f |
// | 0  0  1 |
type Matrix2D [6]float64

// Identity returns the identity matrix.
func Identity() Matrix2D {
	return Matrix2D{1, 0, 0, 1, 0, 0}
}

// Translate returns a translation matrix.
func Translate(tx, ty float64) Matrix2D {
	return Matrix2D{1, 0, 0, 1, tx, ty}
}

// Scale returns a scale matrix.
func Scale(sx, sy float64) Matrix2D {
	return Matrix2D{sx, 0, 0, sy, 0, 0}
}

// Multiply multiplies this matrix by another: result = m * other
// This applies 'other' first, then 'm'.
func (m Matrix2D) Multiply(other Matrix2D) Matrix2D {
	return Matrix2D{
		m[0]*other[0] + m[2]*other[1],        // a
		m[1]*other[0] + m[3]*other[1],        // b
		m[0]*other[2] + m[2]*other[3],        // c
		m[1]*other[2] + m[3]*other[3],        // d
		m[0]*other[4] + m[2]*other[5] + m[4], // e
		m[1]*other[4] + m[3]*other[5] + m[5], // f
	}
}

// TransformPoint applies the matrix to a point.
func (m Matrix2D) TransformPoint(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Determinant returns the determinant of the matrix.
func (m Matrix2D) Determinant() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Invert returns the inverse of the matrix, or Identity if not invertible.
func (m Matrix2D) Invert() Matrix2D {
	det := m.Determinant()
	if det == 0 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix2D{
		m[3] * invDet,
		-m[1] * invDet,
		-m[2] * invDet,
		m[0] * invDet,
		(m[2]*m[5] - m[3]*m[4]) * invDet,
		(m[1]*m[4] - m[0]*m[5]) * invDet,
	}
}

// Viewport is the pixel size of a rendering surface. Point space has x to the
// right and gray level upwards; pixel space has y growing down.
type Viewport struct {
	Width  float64
	Height float64
}

// Empty reports whether the viewport has no area.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Matrix maps point space to pixel space: (x, g) -> (x*w, (1-g)*h).
func (v Viewport) Matrix() Matrix2D {
	return Translate(0, v.Height).Multiply(Scale(v.Width, -v.Height))
}

// ToScreen returns the pixel position of p.
func (v Viewport) ToScreen(p ControlPoint) (float64, float64) {
	return v.Matrix().TransformPoint(p.Position, p.Intensity)
}

// FromScreen returns the point-space coordinates of a pixel position.
func (v Viewport) FromScreen(px, py float64) (position, intensity float64) {
	return v.Matrix().Invert().TransformPoint(px, py)
}

// PixelMetric measures the pixel distance between a point's mapped position
// and the pixel (px, py).
func (v Viewport) PixelMetric(px, py float64) Metric {
	m := v.Matrix()
	return func(p ControlPoint) float64 {
		x, y := m.TransformPoint(p.Position, p.Intensity)
		return math.Hypot(x-px, y-py)
	}
}
