package shading

import (
	"image"
	"math"

	"github.com/grayramp/grayramp/internal/gradient"
)

// Rasterizer is a CPU gradient surface. It runs the shading program for every
// pixel centre, the way the fragment shaders do on the GPU.
type Rasterizer struct {
	img *image.Gray
}

// NewRasterizer creates a black surface of the given size.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{img: image.NewGray(image.Rect(0, 0, width, height))}
}

// Size returns the surface size in pixels.
func (r *Rasterizer) Size() (width, height int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the pixel buffer. It is overwritten by the next Shade.
func (r *Rasterizer) Image() *image.Gray {
	return r.img
}

// Shade clears the surface and fills it from the uniform block. The gradient
// only depends on x, so one row is evaluated and copied down.
func (r *Rasterizer) Shade(u Uniforms) {
	clear(r.img.Pix)

	points := u.ControlPoints()
	if len(points) == 0 {
		return
	}

	width, height := r.Size()
	resX := float64(u.Resolution[0])
	if resX <= 0 {
		resX = float64(width)
	}

	row := make([]uint8, width)
	for x := range row {
		gray := gradient.Evaluate(points, (float64(x)+0.5)/resX)
		row[x] = toByte(gray)
	}
	for y := 0; y < height; y++ {
		off := y * r.img.Stride
		copy(r.img.Pix[off:off+width], row)
	}
}

// GrayAt returns the shaded intensity at pixel (x, y) in [0,1].
func (r *Rasterizer) GrayAt(x, y int) float64 {
	return float64(r.img.GrayAt(x, y).Y) / 255
}

func toByte(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 1) * 255))
}
