package raster

import (
	"context"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// ClipVertex is the output of a vertex stage.
type ClipVertex struct {
	Position mgl32.Vec4 // Clip space position.
	TexCoord mgl32.Vec2
}

// Viewport maps normalized device coordinates to window coordinates.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// FullViewport returns a viewport covering all of fb.
func FullViewport(fb *Framebuffer) Viewport {
	return Viewport{Width: fb.Width, Height: fb.Height}
}

// window returns the window coordinate of clip space position p.
func (vp Viewport) window(p mgl32.Vec4) mgl32.Vec2 {
	return mgl32.Vec2{
		float32(vp.X) + (p[0]/p[3]+1)*0.5*float32(vp.Width),
		float32(vp.Y) + (p[1]/p[3]+1)*0.5*float32(vp.Height),
	}
}

// triangle holds the setup state of one counter-clockwise triangle.
type triangle struct {
	p       [3]mgl32.Vec2 // Window positions.
	invW    [3]float32    // 1/w per vertex.
	uvw     [3]mgl32.Vec2 // TexCoord/w per vertex.
	area    float32
	topLeft [3]bool // Edge i runs from vertex i+1 to i+2.
}

// setup prepares v for scan conversion. It reports false for degenerate
// triangles and for triangles with a vertex at or behind the eye, which
// would need clipping.
func setup(vp Viewport, v []ClipVertex) (*triangle, bool) {
	var t triangle

	for i := range 3 {
		w := v[i].Position[3]
		if !(w > 0) {
			return nil, false
		}

		t.p[i] = vp.window(v[i].Position)
		t.invW[i] = 1 / w
		t.uvw[i] = v[i].TexCoord.Mul(t.invW[i])
	}

	t.area = edge(t.p[0], t.p[1], t.p[2])
	if t.area == 0 {
		return nil, false
	}

	// No culling: flip clockwise triangles so one inside test serves both.
	if t.area < 0 {
		t.p[1], t.p[2] = t.p[2], t.p[1]
		t.invW[1], t.invW[2] = t.invW[2], t.invW[1]
		t.uvw[1], t.uvw[2] = t.uvw[2], t.uvw[1]
		t.area = -t.area
	}

	for i := range 3 {
		a, b := t.p[(i+1)%3], t.p[(i+2)%3]
		dx, dy := b[0]-a[0], b[1]-a[1]
		t.topLeft[i] = dy < 0 || (dy == 0 && dx < 0)
	}

	return &t, true
}

// edge returns twice the signed area of (a, b, p); positive when p lies to
// the left of a->b.
func edge(a, b, p mgl32.Vec2) float32 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}

// bounds returns the pixel rectangle [x0,x1) x [y0,y1) covering t, clipped
// to fb.
func (t *triangle) bounds(fb *Framebuffer) (x0, y0, x1, y1 int) {
	minX := min(t.p[0][0], t.p[1][0], t.p[2][0])
	maxX := max(t.p[0][0], t.p[1][0], t.p[2][0])
	minY := min(t.p[0][1], t.p[1][1], t.p[2][1])
	maxY := max(t.p[0][1], t.p[1][1], t.p[2][1])

	x0 = max(int(math.Floor(float64(minX))), 0)
	y0 = max(int(math.Floor(float64(minY))), 0)
	x1 = min(int(math.Ceil(float64(maxX))), fb.Width)
	y1 = min(int(math.Ceil(float64(maxY))), fb.Height)
	return
}

// scan shades the covered pixels of row y in [x0, x1).
func (t *triangle) scan(fb *Framebuffer, y, x0, x1 int, fn FragmentFunc, blend Blend) {
	fy := float32(y) + 0.5

	for x := x0; x < x1; x++ {
		p := mgl32.Vec2{float32(x) + 0.5, fy}

		var l [3]float32
		inside := true

		for i := range 3 {
			e := edge(t.p[(i+1)%3], t.p[(i+2)%3], p)
			if e < 0 || (e == 0 && !t.topLeft[i]) {
				inside = false
				break
			}
			l[i] = e / t.area
		}

		if !inside {
			continue
		}

		iw := l[0]*t.invW[0] + l[1]*t.invW[1] + l[2]*t.invW[2]
		uv := t.uvw[0].Mul(l[0]).Add(t.uvw[1].Mul(l[1])).Add(t.uvw[2].Mul(l[2])).Mul(1 / iw)

		i := y*fb.Width + x
		fb.Pix[i] = blend.apply(fn(Fragment{X: p[0], Y: p[1], UV: uv}), fb.Pix[i])
	}
}

// DrawTriangles rasterizes a triangle list into fb. Each covered pixel gets
// exactly one invocation of fn per triangle, with perspective-correct texture
// coordinates. Pixels on an edge shared by two triangles belong to exactly
// one of them.
func DrawTriangles(ctx context.Context, fb *Framebuffer, vp Viewport, verts []ClipVertex, fn FragmentFunc, opts ...Option) error {
	if len(verts)%3 != 0 {
		return errors.Errorf("vertex count %d is not a multiple of 3", len(verts))
	}

	o := makeOptions(opts)
	p, release := o.acquire()
	defer release()

	for i := 0; i < len(verts); i += 3 {
		t, ok := setup(vp, verts[i:i+3])
		if !ok {
			Logger().Debug("raster: triangle skipped", "index", i/3)
			continue
		}

		x0, y0, x1, y1 := t.bounds(fb)
		if x0 >= x1 || y0 >= y1 {
			continue
		}

		err := o.rows(ctx, p, y0, y1, func(y int) {
			t.scan(fb, y, x0, x1, fn, o.blend)
		})

		if err != nil {
			return errors.Wrapf(err, "triangle %d", i/3)
		}
	}

	return nil
}
