package quad

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"
)

// Texture is a CPU copy of a 2D texture with an optional mip chain.
// Texels are straight (non-premultiplied) RGBA in [0,1]. Row 0 is the
// first image row, at texture coordinate t = 0.
type Texture struct {
	levels []*level
}

type level struct {
	width, height int
	texels        []mgl32.Vec4
}

// NewTexture copies img into a texture. With mipmaps set, it also builds
// every half-size level down to 1x1.
func NewTexture(img image.Image, mipmaps bool) *Texture {
	src := toNRGBA(img)
	t := &Texture{levels: []*level{newLevel(src)}}

	if !mipmaps {
		return t
	}

	for w, h := src.Rect.Dx(), src.Rect.Dy(); w > 1 || h > 1; {
		w = max(w/2, 1)
		h = max(h/2, 1)

		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(dst, dst.Rect, src, src.Rect, xdraw.Src, nil)
		t.levels = append(t.levels, newLevel(dst))
		src = dst
	}

	return t
}

// Size returns the dimensions of the base level.
func (t *Texture) Size() (int, int) {
	return t.levels[0].width, t.levels[0].height
}

// Levels returns the number of mip levels, including the base level.
func (t *Texture) Levels() int {
	return len(t.levels)
}

// Texel returns the texel at (x, y) of the given level. Coordinates must be
// in range.
func (t *Texture) Texel(lvl, x, y int) mgl32.Vec4 {
	l := t.levels[lvl]
	return l.texels[y*l.width+x]
}

func newLevel(img *image.NRGBA) *level {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	l := &level{width: w, height: h, texels: make([]mgl32.Vec4, w*h)}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.NRGBAAt(img.Rect.Min.X+x, img.Rect.Min.Y+y)
			l.texels[y*w+x] = mgl32.Vec4{
				float32(c.R) / 255,
				float32(c.G) / 255,
				float32(c.B) / 255,
				float32(c.A) / 255,
			}
		}
	}

	return l
}

// toNRGBA returns img as a zero-origin NRGBA image.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}

	r := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	xdraw.Draw(dst, dst.Rect, img, r.Min, xdraw.Src)
	return dst
}

// ToColor converts a [0,1] RGBA vector to an 8-bit straight alpha color,
// clamping out of range components.
func ToColor(v mgl32.Vec4) color.NRGBA {
	return color.NRGBA{R: unorm8(v[0]), G: unorm8(v[1]), B: unorm8(v[2]), A: unorm8(v[3])}
}

func unorm8(v float32) uint8 {
	switch {
	case !(v > 0): // Also catches NaN.
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
