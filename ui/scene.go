package ui

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/hexaflex/chess2d/chess"
)

// ItemKind identifies what an Item draws.
type ItemKind uint8

// Known item kinds.
const (
	ItemBoard ItemKind = iota
	ItemPiece
)

// Item is one entry of the draw list.
type Item struct {
	Kind  ItemKind
	Rect  mgl32.Vec4  // x, y, w, h with a bottom-left origin.
	Piece chess.Piece // Valid for ItemPiece.
}

// Scene returns everything to draw for the current state of c, back to
// front: the board, the pieces at rest, the dragged piece and, while a
// promotion is pending, the picker.
func Scene(c *Controller) []Item {
	l := c.Layout
	size := float32(l.Size())
	g := c.Game()

	items := []Item{{Kind: ItemBoard, Rect: mgl32.Vec4{0, 0, size, size}}}

	squares := make([]chess.Position, 0, len(g.Board))
	for pos := range g.Board {
		squares = append(squares, pos)
	}
	slices.SortFunc(squares, func(a, b chess.Position) int {
		if a.Y != b.Y {
			return int(a.Y) - int(b.Y)
		}
		return int(a.X) - int(b.X)
	})

	selected, dragging := c.Selected()
	for _, pos := range squares {
		if dragging && pos == selected {
			continue
		}
		items = append(items, Item{Kind: ItemPiece, Rect: l.Rect(pos), Piece: g.Board[pos]})
	}

	if dragging {
		d := c.Drag()
		s := float32(l.SquareSize)
		items = append(items, Item{
			Kind:  ItemPiece,
			Rect:  mgl32.Vec4{d[0], d[1], s, s},
			Piece: g.Board[selected],
		})
	}

	if at, ok := c.Pending(); ok {
		color := g.Board[at].Color
		for _, slot := range l.PromotionSlots() {
			items = append(items, Item{
				Kind:  ItemPiece,
				Rect:  slot.Rect,
				Piece: chess.Piece{Kind: slot.Kind, Color: color},
			})
		}
	}

	return items
}
