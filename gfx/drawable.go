package gfx

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/hexaflex/chess2d/quad"
	"github.com/hexaflex/chess2d/shader"
)

// Drawable is anything that renders itself with a projection matrix.
type Drawable interface {
	Draw(projection mgl32.Mat4)
}

// UniformFunc uploads program specific uniforms before a draw call.
type UniformFunc func(shader.Setter) error

// Rect draws a position-only unit quad placed at Rect.
type Rect struct {
	Rect     mgl32.Vec4  // x, y, width, height in pixels.
	Angle    float32     // Rotation around the center, in degrees.
	Program  *Program    // Program to draw with.
	Mesh     *Mesh       // Unit quad laid out for Program.
	Uniforms UniformFunc // Optional.
}

var _ Drawable = &Rect{}

// Draw sets mvp = projection * model and draws the quad.
func (r *Rect) Draw(projection mgl32.Mat4) {
	r.Program.Use()
	if !r.bind(projection) {
		return
	}
	r.Mesh.Draw()
}

// bind uploads the custom uniforms and the mvp matrix.
func (r *Rect) bind(projection mgl32.Mat4) bool {
	if r.Uniforms != nil {
		if err := r.Uniforms(r.Program); err != nil {
			log.Println(r.Program.Name(), err)
			return false
		}
	}

	r.Program.SetMat4(quad.UniformMVP, projection.Mul4(quad.Model(r.Rect, r.Angle)))
	return true
}

// Sprite draws a textured unit quad placed at Rect.
type Sprite struct {
	Rect
	Texture *Texture
}

var _ Drawable = &Sprite{}

// Draw binds the texture to unit 0 and draws the quad.
func (s *Sprite) Draw(projection mgl32.Mat4) {
	s.Program.Use()
	s.Texture.Bind(0)
	s.Program.SetInt(quad.UniformTexture, 0)

	if !s.bind(projection) {
		return
	}
	s.Mesh.Draw()
}
