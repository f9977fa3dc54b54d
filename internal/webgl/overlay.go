//go:build js && wasm

package webgl

import (
	"fmt"
	"math"
	"syscall/js"

	"github.com/grayramp/grayramp/internal/overlay"
	"github.com/grayramp/grayramp/internal/shading"
)

// OverlayCanvas draws overlay commands through a Canvas2D context.
type OverlayCanvas struct {
	canvas js.Value
	ctx    js.Value
}

func NewOverlayCanvas(canvas js.Value) (*OverlayCanvas, error) {
	if !canvas.Truthy() {
		return nil, fmt.Errorf("overlay canvas: %w", shading.ErrBackendUnavailable)
	}
	ctx := canvas.Call("getContext", "2d")
	if ctx.IsNull() {
		return nil, fmt.Errorf("2d context: %w", shading.ErrBackendUnavailable)
	}
	return &OverlayCanvas{canvas: canvas, ctx: ctx}, nil
}

func (c *OverlayCanvas) Size() (width, height int) {
	return c.canvas.Get("width").Int(), c.canvas.Get("height").Int()
}

func (c *OverlayCanvas) Clear() {
	w, h := c.Size()
	c.ctx.Call("clearRect", 0, 0, w, h)
}

func (c *OverlayCanvas) BeginPath()          { c.ctx.Call("beginPath") }
func (c *OverlayCanvas) MoveTo(x, y float64) { c.ctx.Call("moveTo", x, y) }
func (c *OverlayCanvas) LineTo(x, y float64) { c.ctx.Call("lineTo", x, y) }

func (c *OverlayCanvas) Circle(x, y, r float64) {
	c.ctx.Call("moveTo", x+r, y)
	c.ctx.Call("arc", x, y, r, 0, 2*math.Pi)
}

func (c *OverlayCanvas) Fill(p overlay.Paint) {
	c.ctx.Set("fillStyle", p.CSS())
	c.ctx.Call("fill")
}

func (c *OverlayCanvas) Stroke(p overlay.Paint, width float64) {
	c.ctx.Set("strokeStyle", p.CSS())
	c.ctx.Set("lineWidth", width)
	c.ctx.Call("stroke")
}

// ClientPoint converts a mouse event to pixel coordinates relative to the
// canvas' top-left corner.
func (c *OverlayCanvas) ClientPoint(event js.Value) (x, y float64) {
	rect := c.canvas.Call("getBoundingClientRect")
	x = event.Get("clientX").Float() - rect.Get("left").Float()
	y = event.Get("clientY").Float() - rect.Get("top").Float()
	return x, y
}
