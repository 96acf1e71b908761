// Package quad implements the textured-quad program: a vertex stage that
// maps a unit quad through a model-view-projection matrix and a fragment
// stage that samples a 2D texture.
//
// Transform, Sampler and Texture are CPU equivalents of the two stages.
package quad

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one interleaved quad vertex.
type Vertex struct {
	Position mgl32.Vec2
	TexCoord mgl32.Vec2
}

// UnitQuad lists the corners of the unit square as two triangles.
var UnitQuad = [6]mgl32.Vec2{
	{0, 1}, {1, 1}, {1, 0},
	{0, 1}, {0, 0}, {1, 0},
}

// Transform returns the clip space position of p: mvp · (p.x, p.y, 0, 1).
func Transform(p mgl32.Vec2, mvp mgl32.Mat4) mgl32.Vec4 {
	return mvp.Mul4x1(mgl32.Vec4{p[0], p[1], 0, 1})
}

// Vertices returns the unit quad with texture coordinates covering the pixel
// rectangle texRect (x, y, w, h) of an image with the given size. Image rows
// grow downwards, so the top edge of the quad samples row texRect.y.
func Vertices(texRect mgl32.Vec4, width, height float32) [6]Vertex {
	x0 := texRect[0] / width
	x1 := (texRect[0] + texRect[2]) / width
	y0 := texRect[1] / height
	y1 := (texRect[1] + texRect[3]) / height

	var out [6]Vertex
	for i, p := range UnitQuad {
		out[i].Position = p
		out[i].TexCoord = mgl32.Vec2{x0 + p[0]*(x1-x0), y1 - p[1]*(y1-y0)}
	}
	return out
}

// Flatten interleaves vertices as position.xy, texCoord.xy.
func Flatten(vs []Vertex) []float32 {
	out := make([]float32, 0, len(vs)*4)
	for _, v := range vs {
		out = append(out, v.Position[0], v.Position[1], v.TexCoord[0], v.TexCoord[1])
	}
	return out
}

// Model returns the model matrix placing the unit quad at rect (x, y, w, h),
// rotated by angle degrees around the rectangle's center.
func Model(rect mgl32.Vec4, angle float32) mgl32.Mat4 {
	x, y, w, h := rect[0], rect[1], rect[2], rect[3]
	model := mgl32.Translate3D(x, y, 0)

	if isNormal(angle) {
		model = model.
			Mul4(mgl32.Translate3D(0.5*w, 0.5*h, 0)).
			Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(angle))).
			Mul4(mgl32.Translate3D(-0.5*w, -0.5*h, 0))
	}

	return model.Mul4(mgl32.Scale3D(w, h, 1))
}

// isNormal returns true if v is neither zero, subnormal, infinite nor NaN.
func isNormal(v float32) bool {
	a := math.Abs(float64(v))
	return a >= 0x1p-126 && !math.IsInf(a, 0) && !math.IsNaN(a)
}
