package overlay

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

const circleSegments = 48

type subpath struct {
	pts    [][2]float64
	circle *Circle
}

// Raster is a headless Canvas backed by an RGBA image and the x/image vector
// rasterizer. Strokes are built from per-segment quads with round joins.
type Raster struct {
	img   *image.RGBA
	paths []subpath
}

// NewRaster creates a transparent overlay surface.
func NewRaster(width, height int) *Raster {
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Size returns the surface size in pixels.
func (r *Raster) Size() (width, height int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the pixel buffer.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

func (r *Raster) Clear() {
	clear(r.img.Pix)
	r.paths = r.paths[:0]
}

func (r *Raster) BeginPath() {
	r.paths = r.paths[:0]
}

func (r *Raster) MoveTo(x, y float64) {
	r.paths = append(r.paths, subpath{pts: [][2]float64{{x, y}}})
}

func (r *Raster) LineTo(x, y float64) {
	if len(r.paths) == 0 || r.paths[len(r.paths)-1].circle != nil {
		r.MoveTo(x, y)
		return
	}
	last := &r.paths[len(r.paths)-1]
	last.pts = append(last.pts, [2]float64{x, y})
}

func (r *Raster) Circle(x, y, radius float64) {
	r.paths = append(r.paths, subpath{circle: &Circle{X: x, Y: y, Radius: radius}})
}

func (r *Raster) Fill(p Paint) {
	z := r.rasterizer()
	for _, sp := range r.paths {
		if sp.circle != nil {
			polygon(z, circlePoints(sp.circle.X, sp.circle.Y, sp.circle.Radius, false))
			continue
		}
		if len(sp.pts) >= 3 {
			polygon(z, sp.pts)
		}
	}
	r.draw(z, p)
}

func (r *Raster) Stroke(p Paint, width float64) {
	if width <= 0 {
		return
	}
	hw := width / 2
	z := r.rasterizer()
	for _, sp := range r.paths {
		if sp.circle != nil {
			c := sp.circle
			polygon(z, circlePoints(c.X, c.Y, c.Radius+hw, false))
			if inner := c.Radius - hw; inner > 0 {
				polygon(z, circlePoints(c.X, c.Y, inner, true))
			}
			continue
		}
		strokePolyline(z, sp.pts, hw)
	}
	r.draw(z, p)
}

func (r *Raster) rasterizer() *vector.Rasterizer {
	w, h := r.Size()
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Over
	return z
}

func (r *Raster) draw(z *vector.Rasterizer, p Paint) {
	z.Draw(r.img, r.img.Bounds(), image.NewUniform(p.NRGBA()), image.Point{})
}

// strokePolyline adds one quad per segment and a disc at every vertex. All
// shapes share a winding so overlaps do not cancel.
func strokePolyline(z *vector.Rasterizer, pts [][2]float64, hw float64) {
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		dx, dy := b[0]-a[0], b[1]-a[1]
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*hw, dx/l*hw
		polygon(z, [][2]float64{
			{a[0] + nx, a[1] + ny},
			{b[0] + nx, b[1] + ny},
			{b[0] - nx, b[1] - ny},
			{a[0] - nx, a[1] - ny},
		})
	}
	for _, p := range pts {
		polygon(z, circlePoints(p[0], p[1], hw, false))
	}
}

// circlePoints approximates a circle. Forward points wind the same way as the
// stroke quads; reversed ones cut holes.
func circlePoints(cx, cy, r float64, reversed bool) [][2]float64 {
	pts := make([][2]float64, circleSegments)
	for i := range pts {
		a := -2 * math.Pi * float64(i) / circleSegments
		if reversed {
			a = -a
		}
		pts[i] = [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return pts
}

func polygon(z *vector.Rasterizer, pts [][2]float64) {
	z.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		z.LineTo(float32(p[0]), float32(p[1]))
	}
	z.ClosePath()
}
