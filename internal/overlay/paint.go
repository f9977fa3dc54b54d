package overlay

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Paint is a straight-alpha colour for fills and strokes. It encodes to JSON
// as a CSS colour string that a Canvas2D context accepts directly.
type Paint struct {
	R, G, B uint8
	A       float64
}

// NewPaint converts a colorful colour and an alpha in [0,1] to a Paint.
func NewPaint(c colorful.Color, alpha float64) Paint {
	r, g, b := c.Clamped().RGB255()
	return Paint{R: r, G: g, B: b, A: min(max(alpha, 0), 1)}
}

// GrayPaint returns the opaque gray whose three channels equal v.
func GrayPaint(v float64) Paint {
	return NewPaint(colorful.Color{R: v, G: v, B: v}, 1)
}

// ParsePaint reads a "#rrggbb" colour.
func ParsePaint(hex string, alpha float64) (Paint, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Paint{}, fmt.Errorf("parse colour %q: %w", hex, err)
	}
	return NewPaint(c, alpha), nil
}

// CSS returns the paint as rgb() or rgba().
func (p Paint) CSS() string {
	if p.A >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", p.R, p.G, p.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", p.R, p.G, p.B, p.A)
}

// NRGBA returns the paint as a non-premultiplied image colour.
func (p Paint) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: uint8(math.Round(p.A * 255))}
}

func (p Paint) MarshalText() ([]byte, error) {
	return []byte(p.CSS()), nil
}
