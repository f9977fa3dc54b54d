package overlay

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/grayramp/grayramp/internal/gradient"
)

var vp = gradient.Viewport{Width: 500, Height: 300}

func TestCompileEmpty(t *testing.T) {
	cmds := Compile(nil, vp, DefaultStyle())
	if len(cmds) != 1 || cmds[0].Op != OpClear {
		t.Fatalf("Compile(nil) = %+v, want a single clear", cmds)
	}
}

func TestCompileSinglePointHasNoGuide(t *testing.T) {
	cmds := Compile([]gradient.ControlPoint{{ID: "pt_a", Position: 0.4, Intensity: 0.2}}, vp, DefaultStyle())
	if len(cmds) != 2 {
		t.Fatalf("got %d commands, want clear + marker", len(cmds))
	}
	if cmds[1].Op != OpCircle {
		t.Fatalf("second command = %q, want circle", cmds[1].Op)
	}
}

func TestCompileSeed(t *testing.T) {
	style := DefaultStyle()
	pts := gradient.DefaultSeed()
	cmds := Compile(pts, vp, style)

	if len(cmds) != 2+len(pts) {
		t.Fatalf("got %d commands, want %d", len(cmds), 2+len(pts))
	}
	if cmds[0].Op != OpClear {
		t.Fatalf("first command = %q, want clear", cmds[0].Op)
	}

	guide := cmds[1]
	if guide.Op != OpPath || guide.Fill != nil || guide.Stroke == nil || *guide.Stroke != style.Guide {
		t.Fatalf("guide = %+v", guide)
	}
	if len(guide.Path) != len(pts) || guide.Path[0].Verb != "M" || guide.Path[1].Verb != "L" {
		t.Fatalf("guide path = %+v", guide.Path)
	}
	if last := guide.Path[len(pts)-1]; math.Abs(last.X-500) > 1e-9 || math.Abs(last.Y-90) > 1e-9 {
		t.Fatalf("last guide vertex = (%v, %v), want (500, 90)", last.X, last.Y)
	}

	for i, p := range pts {
		m := cmds[2+i]
		if m.Op != OpCircle || m.Circle == nil {
			t.Fatalf("marker %d = %+v", i, m)
		}
		x, y := vp.ToScreen(p)
		if m.Circle.X != x || m.Circle.Y != y || m.Circle.Radius != style.MarkerRadius {
			t.Errorf("marker %d circle = %+v, want (%v, %v, r=%v)", i, *m.Circle, x, y, style.MarkerRadius)
		}
		if *m.Fill != GrayPaint(p.Intensity) {
			t.Errorf("marker %d fill = %+v", i, *m.Fill)
		}
		if *m.Stroke != style.Accent || m.StrokeWidth != style.LineWidth {
			t.Errorf("marker %d stroke = %+v w=%v", i, *m.Stroke, m.StrokeWidth)
		}
	}
}

func TestDrawCommandsToJSON(t *testing.T) {
	pts := []gradient.ControlPoint{
		{ID: "pt_a", Position: 0, Intensity: 0.2},
		{ID: "pt_b", Position: 1, Intensity: 1},
	}
	out, err := DrawCommandsToJSON(Compile(pts, vp, DefaultStyle()))
	if err != nil {
		t.Fatal(err)
	}

	var decoded []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON %s: %v", out, err)
	}
	if got := string(decoded[1]["path"]); got != `[["M",0,240],["L",500,0]]` {
		t.Errorf("path = %s", got)
	}
	if got := string(decoded[1]["stroke"]); got != `"rgba(255, 255, 255, 0.5)"` {
		t.Errorf("guide stroke = %s", got)
	}
	if got := string(decoded[2]["fill"]); got != `"rgb(51, 51, 51)"` {
		t.Errorf("marker fill = %s", got)
	}
	if got := string(decoded[2]["objectId"]); got != `"pt_a"` {
		t.Errorf("objectId = %s", got)
	}
	if got := string(decoded[2]["circle"]); got != `{"x":0,"y":240,"r":6}` {
		t.Errorf("circle = %s", got)
	}
	if !strings.Contains(out, `"op":"clear"`) {
		t.Errorf("missing clear in %s", out)
	}
}

type recorder struct{ calls []string }

func (r *recorder) Clear() { r.calls = append(r.calls, "clear") }
func (r *recorder) BeginPath() { r.calls = append(r.calls, "begin") }
func (r *recorder) MoveTo(x, y float64) { r.calls = append(r.calls, "move") }
func (r *recorder) LineTo(x, y float64) { r.calls = append(r.calls, "line") }
func (r *recorder) Circle(x, y, r2 float64) { r.calls = append(r.calls, "circle") }
func (r *recorder) Fill(p Paint) { r.calls = append(r.calls, "fill") }
func (r *recorder) Stroke(p Paint, w float64) {
	r.calls = append(r.calls, "stroke")
}

func TestExecute(t *testing.T) {
	pts := []gradient.ControlPoint{
		{Position: 0.2, Intensity: 0.5},
		{Position: 0.8, Intensity: 0.5},
	}
	var rec recorder
	Execute(&rec, Compile(pts, vp, DefaultStyle()))

	want := "clear begin move line stroke begin circle fill stroke begin circle fill stroke"
	if got := strings.Join(rec.calls, " "); got != want {
		t.Fatalf("calls = %q\nwant    %q", got, want)
	}
}

func TestParseStyle(t *testing.T) {
	s, err := ParseStyle("#ffffff", 0.5, "#ff0000", 2, 6)
	if err != nil {
		t.Fatal(err)
	}
	if s != DefaultStyle() {
		t.Fatalf("ParseStyle = %+v, want default %+v", s, DefaultStyle())
	}

	for _, tt := range []struct {
		name          string
		guide, accent string
		width, radius float64
	}{
		{"bad guide", "white", "#ff0000", 2, 6},
		{"bad accent", "#ffffff", "#zz0000", 2, 6},
		{"zero width", "#ffffff", "#ff0000", 0, 6},
		{"negative radius", "#ffffff", "#ff0000", 2, -1},
	} {
		if _, err := ParseStyle(tt.guide, 0.5, tt.accent, tt.width, tt.radius); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestPaint(t *testing.T) {
	if got := GrayPaint(0.2).CSS(); got != "rgb(51, 51, 51)" {
		t.Errorf("GrayPaint(0.2) = %s", got)
	}
	if got := GrayPaint(1.5); got != (Paint{R: 255, G: 255, B: 255, A: 1}) {
		t.Errorf("GrayPaint clamps to %+v", got)
	}
	if got := (Paint{R: 255, G: 255, B: 255, A: 0.5}).NRGBA().A; got != 128 {
		t.Errorf("alpha byte = %d, want 128", got)
	}
}
