package ui

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/hexaflex/chess2d/chess"
)

// CellSize is the edge of one piece in the default sprite sheet.
const CellSize = 480

// Atlas locates piece sprites in a sheet of two rows: black pieces on top,
// white below, each row ordered Bishop, King, Knight, Pawn, Queen, Rook.
type Atlas struct {
	Cell float32
}

// DefaultAtlas returns the layout of the bundled sprite sheet.
func DefaultAtlas() Atlas {
	return Atlas{Cell: CellSize}
}

// NewAtlas returns an atlas whose cells are cell pixels wide.
func NewAtlas(cell float32) Atlas {
	return Atlas{Cell: cell}
}

var atlasColumn = map[chess.Kind]float32{
	chess.Bishop: 0,
	chess.King:   1,
	chess.Knight: 2,
	chess.Pawn:   3,
	chess.Queen:  4,
	chess.Rook:   5,
}

// Size returns the expected size of the whole sheet.
func (a Atlas) Size() (width, height float32) {
	return 6 * a.Cell, 2 * a.Cell
}

// Rect returns the pixel rectangle (x, y, w, h) of p in the sheet. The y
// axis grows downwards, like image rows.
func (a Atlas) Rect(p chess.Piece) mgl32.Vec4 {
	var y float32
	if p.Color == chess.White {
		y = a.Cell
	}
	return mgl32.Vec4{atlasColumn[p.Kind] * a.Cell, y, a.Cell, a.Cell}
}
