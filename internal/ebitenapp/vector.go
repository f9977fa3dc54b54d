package ebitenapp

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/grayramp/grayramp/internal/overlay"
)

// VectorSurface implements overlay.Canvas on an offscreen image. Fill and
// Stroke tessellate the current path, draw it opaque into a scratch layer and
// composite the layer with the paint's alpha, so overlapping triangles cover
// each pixel once.
type VectorSurface struct {
	img   *ebiten.Image
	layer *ebiten.Image
	path  vector.Path

	vertices []ebiten.Vertex
	indices  []uint16
}

func NewVectorSurface(width, height int) *VectorSurface {
	return &VectorSurface{
		img:   ebiten.NewImage(width, height),
		layer: ebiten.NewImage(width, height),
	}
}

func (s *VectorSurface) Size() (width, height int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *VectorSurface) Image() *ebiten.Image {
	return s.img
}

func (s *VectorSurface) Clear() {
	s.img.Clear()
	s.path = vector.Path{}
}

func (s *VectorSurface) BeginPath() {
	s.path = vector.Path{}
}

func (s *VectorSurface) MoveTo(x, y float64) {
	s.path.MoveTo(float32(x), float32(y))
}

func (s *VectorSurface) LineTo(x, y float64) {
	s.path.LineTo(float32(x), float32(y))
}

func (s *VectorSurface) Circle(x, y, r float64) {
	s.path.MoveTo(float32(x+r), float32(y))
	s.path.Arc(float32(x), float32(y), float32(r), 0, 2*math.Pi, vector.Clockwise)
	s.path.Close()
}

func (s *VectorSurface) Fill(p overlay.Paint) {
	s.vertices, s.indices = s.path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	s.draw(p, ebiten.FillRuleNonZero)
}

func (s *VectorSurface) Stroke(p overlay.Paint, width float64) {
	opts := &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	s.vertices, s.indices = s.path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], opts)
	s.draw(p, ebiten.FillRuleFillAll)
}

// draw renders the tessellated path in the paint's solid colour on the
// scratch layer, then blends the layer onto the surface at the paint's alpha.
func (s *VectorSurface) draw(p overlay.Paint, rule ebiten.FillRule) {
	c := p.NRGBA()
	s.layer.Clear()
	setVertexColors(s.vertices, solid(c))
	s.layer.DrawTriangles(s.vertices, s.indices, emptySubImage, trianglesOptions(rule))
	s.img.DrawImage(s.layer, layerOptions(c))
}

// solid drops the alpha of c. Tessellated vertices must be drawn opaque.
func solid(c color.NRGBA) color.NRGBA {
	c.A = 0xff
	return c
}

func trianglesOptions(rule ebiten.FillRule) *ebiten.DrawTrianglesOptions {
	return &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  rule,
	}
}

func layerOptions(c color.NRGBA) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(c.A) / 0xff)
	return op
}

// setVertexColors paints every vertex with c as straight alpha.
func setVertexColors(vertices []ebiten.Vertex, c color.NRGBA) {
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	b := float32(c.B) / 255
	a := float32(c.A) / 255
	for i := range vertices {
		vertices[i].SrcX = 0
		vertices[i].SrcY = 0
		vertices[i].ColorR = r
		vertices[i].ColorG = g
		vertices[i].ColorB = b
		vertices[i].ColorA = a
	}
}

// emptySubImage is a 1x1 white image used as the triangle source.
var emptySubImage = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()
