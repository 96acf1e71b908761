// Package board implements the checkerboard program: a fragment stage that
// splits the screen into alternating light and dark squares.
//
// The Go functions in this package evaluate exactly what the GLSL program
// computes on the GPU, so software hosts and tests share one definition.
package board

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/hexaflex/chess2d/shader"
)

// ErrSideSize is returned for a square size that is not positive.
var ErrSideSize = errors.New("side size must be positive")

// Uniforms defines the values bound to the board program for one draw call.
type Uniforms struct {
	BlackView  bool       // Invert the color of every square.
	WhiteColor mgl32.Vec3 // Color of even squares.
	BlackColor mgl32.Vec3 // Color of odd squares.
	Opacity    float32    // Output alpha. Passed through unclamped.
	SideSize   int32      // Square edge in pixels.
}

// Validate reports whether u can be bound. Opacity is never checked;
// out-of-range values are the caller's business.
func (u Uniforms) Validate() error {
	if u.SideSize <= 0 {
		return errors.Wrapf(ErrSideSize, "side_size %d", u.SideSize)
	}
	return nil
}

// Apply validates u and uploads every uniform through s.
func (u Uniforms) Apply(s shader.Setter) error {
	if err := u.Validate(); err != nil {
		return err
	}

	s.SetBool(UniformBlackView, u.BlackView)
	s.SetVec3(UniformWhiteColor, u.WhiteColor)
	s.SetVec3(UniformBlackColor, u.BlackColor)
	s.SetFloat(UniformOpacity, u.Opacity)
	s.SetInt(UniformSideSize, u.SideSize)
	return nil
}

// Classify returns true if pixel (x, y) falls on a black square.
func (u Uniforms) Classify(x, y int) bool {
	return Parity(x, y, int(u.SideSize), u.BlackView)
}

// Fragment returns the output color for the fragment at window coordinate
// (fx, fy). Coordinates are floored to the pixel grid first.
func (u Uniforms) Fragment(fx, fy float32) mgl32.Vec4 {
	x := int(math.Floor(float64(fx)))
	y := int(math.Floor(float64(fy)))

	if u.Classify(x, y) {
		return u.BlackColor.Vec4(u.Opacity)
	}
	return u.WhiteColor.Vec4(u.Opacity)
}

// Parity returns the square parity of pixel (x, y) for squares of the given
// size: the XOR of the row and column parities, flipped once more when
// blackView is set. True means odd, which is drawn in the black color.
//
// sideSize must be positive.
func Parity(x, y, sideSize int, blackView bool) bool {
	px := floorMod(floorDiv(x, sideSize), 2)
	py := floorMod(floorDiv(y, sideSize), 2)

	p := px ^ py
	if blackView {
		p ^= 1
	}
	return p == 1
}

// floorDiv divides a by b, rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns a modulo b with the sign of b.
func floorMod(a, b int) int {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
