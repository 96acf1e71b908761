package quad

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Filter selects how texels are combined.
type Filter int

// Known filters.
const (
	Nearest Filter = iota
	Linear
)

// Wrap selects how coordinates outside [0,1] are resolved.
type Wrap int

// Known wrap modes.
const (
	Repeat Wrap = iota
	ClampToEdge
	MirroredRepeat
)

// Sampler holds the sampling state normally configured on the host side.
type Sampler struct {
	Min   Filter // Filter when minifying (lod > 0).
	Mag   Filter // Filter when magnifying (lod <= 0).
	Mip   Filter // Filter between mip levels. Ignored for single-level textures.
	WrapS Wrap
	WrapT Wrap
}

// DefaultSampler matches the texture state of the GL host: trilinear filtering
// and edge clamping.
var DefaultSampler = Sampler{Min: Linear, Mag: Linear, Mip: Linear, WrapS: ClampToEdge, WrapT: ClampToEdge}

// Sample samples the base level of t at uv.
func (s Sampler) Sample(t *Texture, uv mgl32.Vec2) mgl32.Vec4 {
	return s.SampleLevel(t, uv, 0)
}

// SampleLevel samples t at uv with the given level of detail, the log2 of the
// texel to pixel ratio. A NaN lod samples the base level. An empty texture
// samples as transparent black.
func (s Sampler) SampleLevel(t *Texture, uv mgl32.Vec2, lod float32) mgl32.Vec4 {
	if !(lod > 0) || t.Levels() == 1 {
		return s.sample(t, 0, uv, s.Mag)
	}

	maxLevel := float32(t.Levels() - 1)
	if lod > maxLevel {
		lod = maxLevel
	}

	if s.Mip == Nearest {
		return s.sample(t, int(lod+0.5), uv, s.Min)
	}

	l0 := int(lod)
	l1 := min(l0+1, t.Levels()-1)
	f := lod - float32(l0)

	a := s.sample(t, l0, uv, s.Min)
	b := s.sample(t, l1, uv, s.Min)
	return lerp(a, b, f)
}

func (s Sampler) sample(t *Texture, lvl int, uv mgl32.Vec2, f Filter) mgl32.Vec4 {
	l := t.levels[lvl]
	if l.width == 0 || l.height == 0 {
		return mgl32.Vec4{}
	}

	u := uv[0] * float32(l.width)
	v := uv[1] * float32(l.height)

	if f == Nearest {
		x := wrap(s.WrapS, floor(u), l.width)
		y := wrap(s.WrapT, floor(v), l.height)
		return l.texels[y*l.width+x]
	}

	// Texel centers sit at half-integer coordinates.
	u -= 0.5
	v -= 0.5
	x0, y0 := floor(u), floor(v)
	fx := u - float32(x0)
	fy := v - float32(y0)

	xa := wrap(s.WrapS, x0, l.width)
	xb := wrap(s.WrapS, x0+1, l.width)
	ya := wrap(s.WrapT, y0, l.height)
	yb := wrap(s.WrapT, y0+1, l.height)

	top := lerp(l.texels[ya*l.width+xa], l.texels[ya*l.width+xb], fx)
	bottom := lerp(l.texels[yb*l.width+xa], l.texels[yb*l.width+xb], fx)
	return lerp(top, bottom, fy)
}

// Fragment is the CPU form of the quad fragment stage: the texel at uv.
func Fragment(t *Texture, s Sampler, uv mgl32.Vec2) mgl32.Vec4 {
	return s.Sample(t, uv)
}

// wrap resolves texel index i for a dimension of size n.
func wrap(w Wrap, i, n int) int {
	switch w {
	case ClampToEdge:
		return min(max(i, 0), n-1)
	case MirroredRepeat:
		m := mod(i, 2*n)
		if m >= n {
			m = 2*n - 1 - m
		}
		return m
	}
	return mod(i, n)
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func floor(v float32) int {
	return int(math.Floor(float64(v)))
}

func lerp(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return a.Add(b.Sub(a).Mul(t))
}
