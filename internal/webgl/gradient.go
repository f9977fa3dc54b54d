//go:build js && wasm

// Package webgl binds the editor surfaces to browser canvases: a WebGL
// context runs the gradient shader, a Canvas2D context draws the overlay.
package webgl

import (
	"fmt"
	"syscall/js"

	"github.com/grayramp/grayramp/internal/shading"
)

// GradientCanvas shades a <canvas> element with the gradient program.
type GradientCanvas struct {
	canvas  js.Value
	gl      js.Value
	program js.Value

	resolution js.Value
	points     js.Value
	count      js.Value

	// Reused upload buffer for the point array
	pointData js.Value
}

// NewGradientCanvas acquires a WebGL context on canvas, builds the gradient
// program and uploads the full-screen quad. It fails with
// shading.ErrBackendUnavailable when the browser has no WebGL, and with a
// *shading.BuildError when the program does not build.
func NewGradientCanvas(canvas js.Value) (*GradientCanvas, error) {
	if !canvas.Truthy() {
		return nil, fmt.Errorf("gradient canvas: %w", shading.ErrBackendUnavailable)
	}
	gl := canvas.Call("getContext", "webgl")
	if gl.IsNull() {
		return nil, fmt.Errorf("webgl context: %w", shading.ErrBackendUnavailable)
	}

	program, err := createProgram(gl, shading.VertexGLSL, shading.FragmentGLSL)
	if err != nil {
		return nil, err
	}
	gl.Call("useProgram", program)

	c := &GradientCanvas{
		canvas:     canvas,
		gl:         gl,
		program:    program,
		resolution: gl.Call("getUniformLocation", program, shading.UniformResolution),
		points:     gl.Call("getUniformLocation", program, shading.UniformPoints),
		count:      gl.Call("getUniformLocation", program, shading.UniformNumPoints),
		pointData:  js.Global().Get("Float32Array").New(len(shading.Uniforms{}.Points)),
	}

	arrayBuffer := gl.Get("ARRAY_BUFFER")
	gl.Call("bindBuffer", arrayBuffer, gl.Call("createBuffer"))
	gl.Call("bufferData", arrayBuffer, float32Array(shading.FullscreenQuad), gl.Get("STATIC_DRAW"))

	pos := gl.Call("getAttribLocation", program, shading.AttribPosition).Int()
	gl.Call("vertexAttribPointer", pos, 2, gl.Get("FLOAT"), false, 0, 0)
	gl.Call("enableVertexAttribArray", pos)

	return c, nil
}

// Size returns the canvas backing-store size in pixels.
func (c *GradientCanvas) Size() (width, height int) {
	return c.canvas.Get("width").Int(), c.canvas.Get("height").Int()
}

// Shade clears the canvas and draws the quad with u bound.
func (c *GradientCanvas) Shade(u shading.Uniforms) {
	gl := c.gl
	w, h := c.Size()
	gl.Call("viewport", 0, 0, w, h)
	gl.Call("clearColor", 0, 0, 0, 1)
	gl.Call("clear", gl.Get("COLOR_BUFFER_BIT"))

	gl.Call("uniform2f", c.resolution, u.Resolution[0], u.Resolution[1])
	for i, v := range u.Points {
		c.pointData.SetIndex(i, v)
	}
	gl.Call("uniform1i", c.count, u.Count)
	gl.Call("uniform2fv", c.points, c.pointData)
	gl.Call("drawArrays", gl.Get("TRIANGLES"), 0, 6)
}

func createProgram(gl js.Value, vsSrc, fsSrc string) (js.Value, error) {
	vs, err := createShader(gl, gl.Get("VERTEX_SHADER"), "vertex", vsSrc)
	if err != nil {
		return js.Null(), err
	}
	defer gl.Call("deleteShader", vs)
	fs, err := createShader(gl, gl.Get("FRAGMENT_SHADER"), "fragment", fsSrc)
	if err != nil {
		return js.Null(), err
	}
	defer gl.Call("deleteShader", fs)

	prog := gl.Call("createProgram")
	gl.Call("attachShader", prog, vs)
	gl.Call("attachShader", prog, fs)
	gl.Call("linkProgram", prog)
	if !gl.Call("getProgramParameter", prog, gl.Get("LINK_STATUS")).Truthy() {
		log := gl.Call("getProgramInfoLog", prog).String()
		gl.Call("deleteProgram", prog)
		return js.Null(), &shading.BuildError{Stage: "program", Log: log, Err: shading.ErrProgramLink}
	}
	return prog, nil
}

func createShader(gl, typ js.Value, stage, src string) (js.Value, error) {
	sh := gl.Call("createShader", typ)
	if sh.IsNull() {
		return js.Null(), &shading.BuildError{Stage: stage, Err: shading.ErrShaderCompile}
	}
	gl.Call("shaderSource", sh, src)
	gl.Call("compileShader", sh)
	if !gl.Call("getShaderParameter", sh, gl.Get("COMPILE_STATUS")).Truthy() {
		log := gl.Call("getShaderInfoLog", sh).String()
		gl.Call("deleteShader", sh)
		return js.Null(), &shading.BuildError{Stage: stage, Log: log, Err: shading.ErrShaderCompile}
	}
	return sh, nil
}

func float32Array(data []float32) js.Value {
	arr := js.Global().Get("Float32Array").New(len(data))
	for i, v := range data {
		arr.SetIndex(i, v)
	}
	return arr
}
