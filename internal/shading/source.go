package shading

import (
	"fmt"

	"github.com/grayramp/grayramp/internal/gradient"
)

// VertexGLSL draws a full-viewport quad from clip-space positions.
const VertexGLSL = `attribute vec4 a_position;
void main() {
	gl_Position = a_position;
}
`

// FullscreenQuad is two triangles covering clip space.
var FullscreenQuad = []float32{
	-1, 1, 1, 1, -1, -1,
	-1, -1, 1, 1, 1, -1,
}

// Uniform names shared by the GLSL program.
const (
	AttribPosition    = "a_position"
	UniformResolution = "u_resolution"
	UniformPoints     = "u_points"
	UniformNumPoints  = "u_numPoints"
)

// FragmentGLSL is the WebGL 1 fragment shader. It mirrors gradient.Evaluate:
// black for no points, flat ends, smoothstep between neighbours and zero-width
// pairs skipped.
var FragmentGLSL = fmt.Sprintf(`precision mediump float;
#define MAX_POINTS %d
uniform vec2 u_resolution;
uniform vec2 u_points[MAX_POINTS];
uniform int u_numPoints;

void main() {
	if (u_numPoints == 0) {
		gl_FragColor = vec4(0.0, 0.0, 0.0, 1.0);
		return;
	}

	float x = gl_FragCoord.x / u_resolution.x;
	vec2 first = u_points[0];
	vec2 last = u_points[0];
	for (int i = 1; i < MAX_POINTS; i++) {
		if (i < u_numPoints) {
			last = u_points[i];
		}
	}

	float gray = first.y;
	if (x >= last.x) {
		gray = last.y;
	} else if (x > first.x) {
		for (int i = 0; i < MAX_POINTS - 1; i++) {
			if (i < u_numPoints - 1) {
				vec2 a = u_points[i];
				vec2 b = u_points[i + 1];
				if (b.x > a.x && x >= a.x && x <= b.x) {
					float t = (x - a.x) / (b.x - a.x);
					gray = mix(a.y, b.y, smoothstep(0.0, 1.0, t));
					break;
				}
			}
		}
	}

	gl_FragColor = vec4(gray, gray, gray, 1.0);
}
`, gradient.MaxPoints)

// Kage uniform names.
const (
	KageResolution = "Resolution"
	KagePoints     = "Points"
	KageCount      = "Count"
)

// FragmentKage is the Ebitengine version of FragmentGLSL. Count is a float
// uniform and the loops carry constant bounds, as Kage requires.
var FragmentKage = fmt.Sprintf(`//kage:unit pixels
package main

var Resolution vec2
var Points [%[1]d]vec2
var Count float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	if Count < 0.5 {
		return vec4(0, 0, 0, 1)
	}

	x := dst.x / Resolution.x
	first := Points[0]
	last := Points[0]
	for i := 1; i < %[1]d; i++ {
		if float(i) < Count {
			last = Points[i]
		}
	}

	gray := first.y
	if x >= last.x {
		gray = last.y
	} else if x > first.x {
		done := false
		for i := 0; i < %[1]d-1; i++ {
			if !done && float(i+1) < Count {
				a := Points[i]
				b := Points[i+1]
				if b.x > a.x && x >= a.x && x <= b.x {
					t := (x - a.x) / (b.x - a.x)
					gray = mix(a.y, b.y, smoothstep(0, 1, t))
					done = true
				}
			}
		}
	}

	return vec4(gray, gray, gray, 1)
}
`, gradient.MaxPoints)

// KageUniforms converts the uniform block to the map Ebitengine expects.
func (u Uniforms) KageUniforms() map[string]any {
	return map[string]any{
		KageResolution: u.Resolution[:],
		KagePoints:     u.Points[:],
		KageCount:      float32(u.Count),
	}
}
