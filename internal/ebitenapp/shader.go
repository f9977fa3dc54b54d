// Package ebitenapp runs the editor as an Ebitengine game: the gradient is a
// Kage shader, the overlay is tessellated with the vector package.
package ebitenapp

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/grayramp/grayramp/internal/shading"
)

// ShaderSurface is an offscreen image filled by the gradient shader.
type ShaderSurface struct {
	img    *ebiten.Image
	shader *ebiten.Shader
	op     ebiten.DrawRectShaderOptions
}

// NewShaderSurface compiles the gradient shader. A compile failure is
// returned as a *shading.BuildError wrapping shading.ErrShaderCompile.
func NewShaderSurface(width, height int) (*ShaderSurface, error) {
	s, err := ebiten.NewShader([]byte(shading.FragmentKage))
	if err != nil {
		return nil, &shading.BuildError{Stage: "fragment", Log: err.Error(), Err: shading.ErrShaderCompile}
	}
	return &ShaderSurface{
		img:    ebiten.NewImage(width, height),
		shader: s,
	}, nil
}

func (s *ShaderSurface) Size() (width, height int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Shade overwrites the image with the gradient for u.
func (s *ShaderSurface) Shade(u shading.Uniforms) {
	w, h := s.Size()
	s.img.Clear()
	s.op.Uniforms = u.KageUniforms()
	s.img.DrawRectShader(w, h, s.shader, &s.op)
}

func (s *ShaderSurface) Image() *ebiten.Image {
	return s.img
}
