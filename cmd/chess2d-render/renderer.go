package main

import (
	"context"
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/hexaflex/chess2d/chess"
	"github.com/hexaflex/chess2d/quad"
	"github.com/hexaflex/chess2d/raster"
	"github.com/hexaflex/chess2d/theme"
	"github.com/hexaflex/chess2d/ui"
)

// Renderer draws game positions the way the interactive client does, on the
// CPU.
type Renderer struct {
	Theme     *theme.Theme
	Sheet     image.Image  // Piece sprite sheet. Nil draws the board only.
	Size      int          // Edge of the board in pixels. Rounded down to a multiple of 8.
	BlackView bool         // Rotate the board by 180 degrees.
	Pool      *raster.Pool // Optional. Nil uses a temporary pool per draw call.
}

// Render draws g and returns the image.
func (r *Renderer) Render(ctx context.Context, g *chess.Game) (*image.NRGBA, error) {
	square := r.Size / 8
	size := square * 8

	u := r.Theme.BoardUniforms()
	u.SideSize = int32(square)
	if err := u.Validate(); err != nil {
		return nil, errors.Wrapf(err, "board size %d", r.Size)
	}

	fb := raster.NewFramebuffer(size, size)
	fb.Clear(r.Theme.Window.ClearColor.Vec4(1))

	vp := raster.FullViewport(fb)
	projection := mgl32.Ortho(0, float32(size), 0, float32(size), -1, 1)
	opts := []raster.Option{raster.WithPool(r.Pool), raster.WithBlend(raster.AlphaBlend)}

	c := ui.NewController(ui.Layout{SquareSize: square, BlackView: r.BlackView})
	c.SetGame(g)

	var (
		tex   *quad.Texture
		atlas ui.Atlas
		lod   float32
	)

	if r.Sheet != nil {
		tex = quad.NewTexture(r.Sheet, true)
		w, _ := tex.Size()
		atlas = ui.NewAtlas(float32(w) / 6)
		lod = float32(math.Log2(float64(atlas.Cell) / float64(square)))
	}

	for i, it := range ui.Scene(c) {
		mvp := projection.Mul4(quad.Model(it.Rect, 0))

		var (
			verts []raster.ClipVertex
			fn    raster.FragmentFunc
		)

		switch it.Kind {
		case ui.ItemBoard:
			verts = clipVertices(mvp, quad.Vertices(mgl32.Vec4{0, 0, 1, 1}, 1, 1))
			fn = func(f raster.Fragment) mgl32.Vec4 {
				return u.Fragment(f.X, f.Y)
			}

		case ui.ItemPiece:
			if tex == nil {
				continue
			}

			w, h := tex.Size()
			verts = clipVertices(mvp, quad.Vertices(atlas.Rect(it.Piece), float32(w), float32(h)))
			fn = func(f raster.Fragment) mgl32.Vec4 {
				return quad.DefaultSampler.SampleLevel(tex, f.UV, lod)
			}
		}

		if err := raster.DrawTriangles(ctx, fb, vp, verts, fn, opts...); err != nil {
			return nil, errors.Wrapf(err, "item %d", i)
		}
	}

	return fb.Image(), nil
}

// clipVertices runs the quad vertex stage over vs.
func clipVertices(mvp mgl32.Mat4, vs [6]quad.Vertex) []raster.ClipVertex {
	out := make([]raster.ClipVertex, len(vs))
	for i, v := range vs {
		out[i] = raster.ClipVertex{
			Position: quad.Transform(v.Position, mvp),
			TexCoord: v.TexCoord,
		}
	}
	return out
}
