// Package overlay turns the point set into vector draw commands for the
// overlay surface and replays them on a Canvas.
package overlay

import (
	"encoding/json"

	"github.com/grayramp/grayramp/internal/gradient"
)

// Draw command operations.
const (
	OpClear  = "clear"
	OpPath   = "path"
	OpCircle = "circle"
)

// DrawCommand represents a single drawing operation for the overlay surface.
// The browser receives a list of these and executes them on a Canvas2D context.
type DrawCommand struct {
	Op          string        `json:"op"`                    // "clear", "path", "circle"
	ObjectID    string        `json:"objectId,omitempty"`    // control point for markers
	Path        []PathCommand `json:"path,omitempty"`        // for "path"
	Circle      *Circle       `json:"circle,omitempty"`      // for "circle"
	Fill        *Paint        `json:"fill,omitempty"`        // nil: no fill
	Stroke      *Paint        `json:"stroke,omitempty"`      // nil: no stroke
	StrokeWidth float64       `json:"strokeWidth,omitempty"` // stroke width in pixels
}

// Circle is a marker disc in pixel space.
type Circle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"r"`
}

// PathCommand is one path segment. It encodes like Canvas2D path data:
// ["M", x, y] or ["L", x, y].
type PathCommand struct {
	Verb string
	X, Y float64
}

func (c PathCommand) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{c.Verb, c.X, c.Y})
}

// Compile generates the overlay for points sorted by position: a clear, the
// guide polyline when there are at least two points, then one marker per
// point. Markers are filled with their own gray and outlined in the accent.
func Compile(points []gradient.ControlPoint, vp gradient.Viewport, style Style) []DrawCommand {
	commands := make([]DrawCommand, 0, len(points)+2)
	commands = append(commands, DrawCommand{Op: OpClear})

	if len(points) >= 2 {
		path := make([]PathCommand, 0, len(points))
		for i, p := range points {
			x, y := vp.ToScreen(p)
			verb := "L"
			if i == 0 {
				verb = "M"
			}
			path = append(path, PathCommand{Verb: verb, X: x, Y: y})
		}
		guide := style.Guide
		commands = append(commands, DrawCommand{
			Op:          OpPath,
			Path:        path,
			Stroke:      &guide,
			StrokeWidth: style.LineWidth,
		})
	}

	for _, p := range points {
		x, y := vp.ToScreen(p)
		fill := GrayPaint(p.Intensity)
		accent := style.Accent
		commands = append(commands, DrawCommand{
			Op:          OpCircle,
			ObjectID:    p.ID,
			Circle:      &Circle{X: x, Y: y, Radius: style.MarkerRadius},
			Fill:        &fill,
			Stroke:      &accent,
			StrokeWidth: style.LineWidth,
		})
	}

	return commands
}

// DrawCommandsToJSON serializes draw commands to JSON.
func DrawCommandsToJSON(commands []DrawCommand) (string, error) {
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}
