package ebitenapp

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/grayramp/grayramp/internal/engine"
	"github.com/grayramp/grayramp/internal/gradient"
)

// Game drives an engine from Ebitengine's update loop. The first tick draws
// the initial state; afterwards surfaces change only on input.
type Game struct {
	eng      *engine.Engine
	gradient *ShaderSurface
	overlay  *VectorSurface

	width, height int
	drawn         bool
}

// NewGame builds both surfaces at width x height and an engine over points.
func NewGame(points *gradient.PointSet, width, height int, opts engine.Options) (*Game, error) {
	gs, err := NewShaderSurface(width, height)
	if err != nil {
		return nil, err
	}
	vs := NewVectorSurface(width, height)
	return &Game{
		eng:      engine.NewEngine(points, gs, vs, opts),
		gradient: gs,
		overlay:  vs,
		width:    width,
		height:   height,
	}, nil
}

func (g *Game) Engine() *engine.Engine {
	return g.eng
}

func (g *Game) Update() error {
	if !g.drawn {
		g.eng.Redraw()
		g.drawn = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.eng.Clear()
		return nil
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		// Capacity errors are logged by the engine and leave the state as is.
		g.eng.Click(float64(x), float64(y))
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.gradient.Image(), nil)
	screen.DrawImage(g.overlay.Image(), nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
