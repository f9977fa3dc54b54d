package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/grayramp/grayramp/internal/gradient"
	"github.com/grayramp/grayramp/internal/overlay"
	"github.com/grayramp/grayramp/internal/shading"
	"github.com/grayramp/grayramp/internal/typeid"
)

var ErrUnknownPoint = errors.New("unknown point")

// GradientSurface is the hardware-shaded raster. Shade overwrites the whole
// surface from the uniform block.
type GradientSurface interface {
	Size() (width, height int)
	Shade(u shading.Uniforms)
}

// OverlaySurface is the vector surface layered above the gradient. Its size
// is also the coordinate space of incoming clicks.
type OverlaySurface interface {
	overlay.Canvas
	Size() (width, height int)
}

// Action is what a click did to the point set.
type Action int

const (
	ActionNone Action = iota
	ActionAdded
	ActionRemoved
)

func (a Action) String() string {
	switch a {
	case ActionAdded:
		return "added"
	case ActionRemoved:
		return "removed"
	default:
		return "none"
	}
}

// Options configures an Engine. Zero values fall back to the defaults.
type Options struct {
	HitRadius float64 // pixels; default 10
	Style     overlay.Style
	Logger    *slog.Logger
}

// Engine is the editor core. It owns the point set, turns clicks into
// mutations and redraws both surfaces after every mutation. It is driven from
// a single event thread and is not safe for concurrent use.
type Engine struct {
	points   *gradient.PointSet
	gradient GradientSurface
	overlay  OverlaySurface

	hitRadius float64
	style     overlay.Style
	log       *slog.Logger

	// Last overlay command list, kept for debug queries
	commands []overlay.DrawCommand
	frames   int
}

// NewEngine creates an engine over an existing point set and its two surfaces.
// It does not draw; call Redraw once the surfaces are ready.
func NewEngine(points *gradient.PointSet, g GradientSurface, o OverlaySurface, opts Options) *Engine {
	if opts.HitRadius <= 0 {
		opts.HitRadius = 10
	}
	if opts.Style == (overlay.Style{}) {
		opts.Style = overlay.DefaultStyle()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Engine{
		points:    points,
		gradient:  g,
		overlay:   o,
		hitRadius: opts.HitRadius,
		style:     opts.Style,
		log:       opts.Logger,
	}
}

// --- Commands ---

// Click handles a click at overlay pixel (px, py). A click within the hit
// radius of a point removes it; otherwise a point is added there. Adding to a
// full set logs a warning and returns gradient.ErrCapacityExceeded without
// redrawing.
func (e *Engine) Click(px, py float64) (Action, error) {
	vp := e.viewport()
	if vp.Empty() {
		e.log.Warn("click ignored on empty surface", "width", vp.Width, "height", vp.Height)
		return ActionNone, nil
	}

	if removed, ok := e.points.RemoveNear(vp.PixelMetric(px, py), e.hitRadius); ok {
		e.log.Debug("point removed", "id", removed.ID, "x", removed.Position, "gray", removed.Intensity)
		e.Redraw()
		return ActionRemoved, nil
	}

	position, intensity := vp.FromScreen(px, py)
	added, err := e.points.Insert(position, intensity)
	if err != nil {
		e.log.Warn("point not added", "error", err, "max", gradient.MaxPoints, "x", position, "gray", intensity)
		return ActionNone, fmt.Errorf("add point: %w", err)
	}

	e.log.Debug("point added", "id", added.ID, "x", added.Position, "gray", added.Intensity)
	e.Redraw()
	return ActionAdded, nil
}

// Clear removes every point and redraws. It always succeeds.
func (e *Engine) Clear() {
	e.points.Clear()
	e.log.Debug("points cleared")
	e.Redraw()
}

// Redraw shades the gradient surface and then replays the overlay. Both
// surfaces are fully overwritten.
func (e *Engine) Redraw() {
	snapshot := e.points.Snapshot()

	gw, gh := e.gradient.Size()
	e.gradient.Shade(shading.Pack(snapshot, gw, gh))

	e.commands = overlay.Compile(snapshot, e.viewport(), e.style)
	overlay.Execute(e.overlay, e.commands)

	e.frames++
}

// --- Queries ---

// Points returns the current points in position order.
func (e *Engine) Points() []gradient.ControlPoint {
	return e.points.Snapshot()
}

// Point looks up a point by ID. Malformed IDs fail before the lookup.
func (e *Engine) Point(id string) (gradient.ControlPoint, error) {
	if err := typeid.Validate(id, typeid.PrefixPoint); err != nil {
		return gradient.ControlPoint{}, err
	}
	for _, p := range e.points.Snapshot() {
		if p.ID == id {
			return p, nil
		}
	}
	return gradient.ControlPoint{}, fmt.Errorf("point %s: %w", id, ErrUnknownPoint)
}

// PointsJSON returns the current points as JSON.
func (e *Engine) PointsJSON() string {
	data, err := json.Marshal(e.points.Snapshot())
	if err != nil {
		e.log.Error("encode points", "error", err)
		return "[]"
	}
	return string(data)
}

// Render returns the overlay commands of the last redraw as JSON.
func (e *Engine) Render() string {
	if e.commands == nil {
		return "[]"
	}
	result, err := overlay.DrawCommandsToJSON(e.commands)
	if err != nil {
		e.log.Error("encode draw commands", "error", err)
	}
	return result
}

// Frames returns the number of redraws so far.
func (e *Engine) Frames() int {
	return e.frames
}

func (e *Engine) viewport() gradient.Viewport {
	w, h := e.overlay.Size()
	return gradient.Viewport{Width: float64(w), Height: float64(h)}
}
