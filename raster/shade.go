package raster

import (
	"context"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultBand is the number of rows handed to a worker at a time.
const DefaultBand = 16

// Fragment holds the per-invocation inputs of a fragment function.
type Fragment struct {
	X, Y float32    // Window coordinate of the pixel center.
	UV   mgl32.Vec2 // Interpolated texture coordinate.
}

// FragmentFunc computes the color of one fragment. It must be a pure
// function of its input: invocations run concurrently and in no order.
type FragmentFunc func(f Fragment) mgl32.Vec4

type options struct {
	pool    *Pool
	workers int
	band    int
	blend   Blend
}

// Option configures Shade and DrawTriangles.
type Option func(*options)

// WithPool runs work on p instead of a temporary pool.
func WithPool(p *Pool) Option {
	return func(o *options) { o.pool = p }
}

// WithWorkers sets the size of the temporary pool.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithBand sets the number of rows per task.
func WithBand(rows int) Option {
	return func(o *options) {
		if rows > 0 {
			o.band = rows
		}
	}
}

// WithBlend sets the blend mode. The default is Replace.
func WithBlend(b Blend) Option {
	return func(o *options) { o.blend = b }
}

func makeOptions(opts []Option) *options {
	o := &options{band: DefaultBand, blend: Replace}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// acquire returns the pool to use and a function releasing it.
func (o *options) acquire() (*Pool, func()) {
	if o.pool != nil {
		return o.pool, func() {}
	}
	p := NewPool(o.workers)
	return p, p.Close
}

// rows calls fn for every row in [y0, y1), in bands spread over p.
// Bands never overlap, so fn may write its own row without locking.
func (o *options) rows(ctx context.Context, p *Pool, y0, y1 int, fn func(y int)) error {
	var tasks []func()

	for y := y0; y < y1; y += o.band {
		lo, hi := y, min(y+o.band, y1)
		tasks = append(tasks, func() {
			for row := lo; row < hi; row++ {
				fn(row)
			}
		})
	}

	return p.Run(ctx, tasks)
}

// Shade invokes fn once for every pixel of fb and blends the result into
// it. The fragment UV spans [0,1] over the whole framebuffer.
func Shade(ctx context.Context, fb *Framebuffer, fn FragmentFunc, opts ...Option) error {
	o := makeOptions(opts)
	p, release := o.acquire()
	defer release()

	w := float32(fb.Width)
	h := float32(fb.Height)

	return o.rows(ctx, p, 0, fb.Height, func(y int) {
		fy := float32(y) + 0.5

		for x := 0; x < fb.Width; x++ {
			fx := float32(x) + 0.5
			i := y*fb.Width + x
			src := fn(Fragment{X: fx, Y: fy, UV: mgl32.Vec2{fx / w, fy / h}})
			fb.Pix[i] = o.blend.apply(src, fb.Pix[i])
		}
	})
}
