package overlay

import (
	"testing"

	"github.com/grayramp/grayramp/internal/gradient"
)

func TestRasterMarker(t *testing.T) {
	r := NewRaster(500, 300)
	pts := []gradient.ControlPoint{{Position: 0.4, Intensity: 0.2}}
	Execute(r, Compile(pts, vp, DefaultStyle()))

	img := r.Image()
	if c := img.RGBAAt(200, 240); c.R < 50 || c.R > 52 || c.R != c.G || c.G != c.B || c.A < 254 {
		t.Errorf("marker centre = %+v, want opaque gray 51", c)
	}
	if c := img.RGBAAt(205, 240); c.R < 200 || c.G > 40 {
		t.Errorf("marker rim = %+v, want accent red", c)
	}
	if c := img.RGBAAt(220, 240); c.A != 0 {
		t.Errorf("outside marker = %+v, want transparent", c)
	}
}

func TestRasterGuide(t *testing.T) {
	r := NewRaster(100, 100)
	pts := []gradient.ControlPoint{
		{Position: 0, Intensity: 0.5},
		{Position: 1, Intensity: 0.5},
	}
	Execute(r, Compile(pts, gradient.Viewport{Width: 100, Height: 100}, DefaultStyle()))

	c := r.Image().RGBAAt(50, 49)
	if c.A < 100 || c.A > 160 {
		t.Errorf("guide pixel alpha = %d, want about half", c.A)
	}
	if c := r.Image().RGBAAt(50, 20); c.A != 0 {
		t.Errorf("pixel away from guide = %+v, want transparent", c)
	}
}

func TestRasterClear(t *testing.T) {
	r := NewRaster(50, 50)
	Execute(r, Compile(gradient.DefaultSeed(), gradient.Viewport{Width: 50, Height: 50}, DefaultStyle()))
	Execute(r, Compile(nil, gradient.Viewport{Width: 50, Height: 50}, DefaultStyle()))
	for i, v := range r.Image().Pix {
		if v != 0 {
			t.Fatalf("byte %d = %d after clearing", i, v)
		}
	}
}
