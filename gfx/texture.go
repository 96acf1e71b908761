package gfx

import (
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
	xdraw "golang.org/x/image/draw"
)

// Texture is a mipmapped RGBA8 texture.
type Texture struct {
	img *image.NRGBA
	id  uint32
}

var _ Resource = &Texture{}

// NewTexture creates a texture holding a copy of img. It is uploaded by Startup.
func NewTexture(img image.Image) *Texture {
	r := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	xdraw.Draw(dst, dst.Rect, img, r.Min, xdraw.Src)
	return &Texture{img: dst}
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (int, int) {
	return t.img.Rect.Dx(), t.img.Rect.Dy()
}

// Startup uploads the image and builds its mip chain.
func (t *Texture) Startup() error {
	w, h := t.Size()

	gl.GenTextures(1, &t.id)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(t.img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return nil
}

// Shutdown deletes the texture.
func (t *Texture) Shutdown() error {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
	return nil
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}
