// Package ui implements the interactive part of the game: mapping pointer
// input to board squares, selection and dragging of pieces, pawn promotion
// and the list of things to draw each frame.
//
// All output rectangles use a bottom-left origin with y growing upwards, to
// match the orthographic projection the hosts draw with. Pointer input uses
// the window convention: top-left origin, y growing downwards.
package ui

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/hexaflex/chess2d/chess"
)

// Layout places the board in the bottom-left corner of a window.
type Layout struct {
	SquareSize int  // Edge of one square in pixels.
	BlackView  bool // Draw the board rotated by 180 degrees.
	Height     int  // Window height in pixels. Zero means the window fits the board.
}

// Size returns the edge of the whole board in pixels.
func (l Layout) Size() int {
	return 8 * l.SquareSize
}

// WindowHeight returns the height of the window the board is drawn in.
func (l Layout) WindowHeight() int {
	if l.Height > 0 {
		return l.Height
	}
	return l.Size()
}

// flip converts a top-down window y coordinate to a bottom-up one.
func (l Layout) flip(y float64) float64 {
	return float64(l.WindowHeight()) - y
}

// Square returns the board square under window pixel (x, y).
func (l Layout) Square(x, y float64) (chess.Position, bool) {
	size := float64(l.Size())
	up := l.flip(y)
	if l.SquareSize <= 0 || x < 0 || x >= size || up <= 0 || up > size {
		return chess.Position{}, false
	}

	s := float64(l.SquareSize)
	p := chess.Position{
		X: int8(math.Floor(x / s)),
		Y: 7 - int8(math.Floor((size-up)/s)),
	}

	return l.orient(p), true
}

// Origin returns the bottom-left corner of square p.
func (l Layout) Origin(p chess.Position) mgl32.Vec2 {
	p = l.orient(p)
	s := float32(l.SquareSize)
	return mgl32.Vec2{float32(p.X) * s, float32(p.Y) * s}
}

// Rect returns the rectangle (x, y, w, h) covered by square p.
func (l Layout) Rect(p chess.Position) mgl32.Vec4 {
	o := l.Origin(p)
	s := float32(l.SquareSize)
	return mgl32.Vec4{o[0], o[1], s, s}
}

// Cursor returns the bottom-left corner of a square sized rectangle centered
// on window pixel (x, y).
func (l Layout) Cursor(x, y float64) mgl32.Vec2 {
	s := float32(l.SquareSize)
	return mgl32.Vec2{
		float32(x) - s/2,
		float32(l.flip(y)) - s/2,
	}
}

// orient maps between board and screen squares. It is its own inverse.
func (l Layout) orient(p chess.Position) chess.Position {
	if l.BlackView {
		return chess.Position{X: 7 - p.X, Y: 7 - p.Y}
	}
	return p
}

// Slot is one choice in the promotion picker.
type Slot struct {
	Kind chess.Kind
	Rect mgl32.Vec4
}

var promotionKinds = [4]chess.Kind{chess.Bishop, chess.Knight, chess.Rook, chess.Queen}

// PromotionSlots returns the picker shown while a promotion is pending: a
// column of half-size squares along the left edge, stacked from the
// middle of the board upwards.
func (l Layout) PromotionSlots() [4]Slot {
	s := float32(l.SquareSize)

	var out [4]Slot
	for i, k := range promotionKinds {
		out[i] = Slot{
			Kind: k,
			Rect: mgl32.Vec4{0, s * (3 + 0.5*float32(i)), s / 2, s / 2},
		}
	}
	return out
}

// PromotionAt returns the picker slot under window pixel (x, y).
func (l Layout) PromotionAt(x, y float64) (chess.Kind, bool) {
	px := float32(x)
	py := float32(l.flip(y))

	for _, slot := range l.PromotionSlots() {
		r := slot.Rect
		if px >= r[0] && px < r[0]+r[2] && py > r[1] && py <= r[1]+r[3] {
			return slot.Kind, true
		}
	}

	return 0, false
}
