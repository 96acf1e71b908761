// Package raster is a software host for the shader programs. It evaluates
// fragment functions over a framebuffer in parallel, the way a GPU invokes a
// fragment stage once per covered pixel.
//
// Window coordinates follow GL conventions: the origin is the bottom-left
// corner and fragment positions sit at pixel centers.
package raster

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/hexaflex/chess2d/quad"
)

// Framebuffer is an RGBA color target. Row 0 is the bottom row.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []mgl32.Vec4
}

// NewFramebuffer creates a cleared framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]mgl32.Vec4, width*height),
	}
}

// Clear sets every pixel to c.
func (fb *Framebuffer) Clear(c mgl32.Vec4) {
	for i := range fb.Pix {
		fb.Pix[i] = c
	}
}

// At returns the pixel at (x, y).
func (fb *Framebuffer) At(x, y int) mgl32.Vec4 {
	return fb.Pix[y*fb.Width+x]
}

// Set writes the pixel at (x, y).
func (fb *Framebuffer) Set(x, y int, c mgl32.Vec4) {
	fb.Pix[y*fb.Width+x] = c
}

// Image converts the framebuffer to an 8-bit image with the usual top-down
// row order.
func (fb *Framebuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))

	for y := 0; y < fb.Height; y++ {
		row := fb.Height - 1 - y
		for x := 0; x < fb.Width; x++ {
			img.SetNRGBA(x, row, quad.ToColor(fb.At(x, y)))
		}
	}

	return img
}

// Blend selects how fragment output is combined with the framebuffer.
type Blend int

// Known blend modes.
const (
	// Replace writes the fragment color as is.
	Replace Blend = iota

	// AlphaBlend computes src*src.a + dst*(1-src.a) on all four channels.
	AlphaBlend
)

func (b Blend) apply(src, dst mgl32.Vec4) mgl32.Vec4 {
	if b == Replace {
		return src
	}
	a := src[3]
	return src.Mul(a).Add(dst.Mul(1 - a))
}
