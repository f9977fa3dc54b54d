package overlay

// Canvas is a 2D vector surface with Canvas2D path semantics: Fill and Stroke
// paint the current path without consuming it, BeginPath starts a new one.
type Canvas interface {
	Clear()
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Circle(x, y, r float64)
	Fill(p Paint)
	Stroke(p Paint, width float64)
}

// Execute replays commands on c in order.
func Execute(c Canvas, commands []DrawCommand) {
	for _, cmd := range commands {
		switch cmd.Op {
		case OpClear:
			c.Clear()
		case OpPath:
			c.BeginPath()
			for _, seg := range cmd.Path {
				if seg.Verb == "M" {
					c.MoveTo(seg.X, seg.Y)
				} else {
					c.LineTo(seg.X, seg.Y)
				}
			}
			paint(c, cmd)
		case OpCircle:
			if cmd.Circle == nil {
				continue
			}
			c.BeginPath()
			c.Circle(cmd.Circle.X, cmd.Circle.Y, cmd.Circle.Radius)
			paint(c, cmd)
		}
	}
}

func paint(c Canvas, cmd DrawCommand) {
	if cmd.Fill != nil {
		c.Fill(*cmd.Fill)
	}
	if cmd.Stroke != nil {
		c.Stroke(*cmd.Stroke, cmd.StrokeWidth)
	}
}
