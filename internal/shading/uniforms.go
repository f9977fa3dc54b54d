// Package shading holds the gradient shading stage: the uniform block handed
// to the hardware shader, the shader sources for each back-end, and a CPU
// rasterizer that evaluates the same program per pixel.
package shading

import "github.com/grayramp/grayramp/internal/gradient"

// Uniforms is the fixed-size parameter block of the gradient shader.
// Points holds (position, intensity) pairs; entries at or beyond Count are
// padding and are never read.
type Uniforms struct {
	Resolution [2]float32
	Points     [2 * gradient.MaxPoints]float32
	Count      int
}

// Pack builds the uniform block for a surface of the given size. Points past
// gradient.MaxPoints are dropped.
func Pack(points []gradient.ControlPoint, width, height int) Uniforms {
	u := Uniforms{
		Resolution: [2]float32{float32(width), float32(height)},
	}
	for i, p := range points {
		if i == gradient.MaxPoints {
			break
		}
		u.Points[2*i] = float32(p.Position)
		u.Points[2*i+1] = float32(p.Intensity)
		u.Count++
	}
	return u
}

// ControlPoints unpacks the first Count pairs.
func (u Uniforms) ControlPoints() []gradient.ControlPoint {
	n := min(max(u.Count, 0), gradient.MaxPoints)
	out := make([]gradient.ControlPoint, n)
	for i := range out {
		out[i] = gradient.ControlPoint{
			Position:  float64(u.Points[2*i]),
			Intensity: float64(u.Points[2*i+1]),
		}
	}
	return out
}

// Size returns the resolution as integer pixels.
func (u Uniforms) Size() (width, height int) {
	return int(u.Resolution[0]), int(u.Resolution[1])
}
