package chess

import (
	"fmt"
	"strings"
)

// Board maps occupied squares to their pieces.
type Board map[Position]Piece

// Castling holds the remaining castling rights of one side.
type Castling struct {
	KingSide  bool
	QueenSide bool
}

// Game is a complete position: the pieces, the side to move, castling rights
// and the pawn that may be captured en passant.
type Game struct {
	Board    Board
	Castling map[Color]Castling
	ToMove   Color

	// EnPassant is the square of a pawn that just advanced two squares.
	// Nil if the previous move was anything else.
	EnPassant *Position
}

// NewGame returns the standard starting position with white to move.
func NewGame() *Game {
	g := &Game{
		Board: make(Board, 32),
		Castling: map[Color]Castling{
			White: {KingSide: true, QueenSide: true},
			Black: {KingSide: true, QueenSide: true},
		},
		ToMove: White,
	}

	back := [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x := int8(0); x < 8; x++ {
		g.Board[Position{x, 0}] = Piece{back[x], White}
		g.Board[Position{x, 1}] = Piece{Pawn, White}
		g.Board[Position{x, 6}] = Piece{Pawn, Black}
		g.Board[Position{x, 7}] = Piece{back[x], Black}
	}

	return g
}

// Clone returns a deep copy of g.
func (g *Game) Clone() *Game {
	c := &Game{
		Board:    make(Board, len(g.Board)),
		Castling: make(map[Color]Castling, len(g.Castling)),
		ToMove:   g.ToMove,
	}

	for pos, p := range g.Board {
		c.Board[pos] = p
	}

	for color, cs := range g.Castling {
		c.Castling[color] = cs
	}

	if g.EnPassant != nil {
		ep := *g.EnPassant
		c.EnPassant = &ep
	}

	return c
}

// King returns the square of the king of the given color.
func (g *Game) King(c Color) (Position, bool) {
	for pos, p := range g.Board {
		if p.Kind == King && p.Color == c {
			return pos, true
		}
	}
	return Position{}, false
}

func (g *Game) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "To move: %v\n", g.ToMove)
	fmt.Fprintf(&sb, "Castling: white %+v, black %+v\n", g.Castling[White], g.Castling[Black])
	if g.EnPassant != nil {
		fmt.Fprintf(&sb, "En passant: %v\n", *g.EnPassant)
	}

	sb.WriteString("  a b c d e f g h\n")
	for y := int8(7); y >= 0; y-- {
		fmt.Fprintf(&sb, "%d ", y+1)
		for x := int8(0); x < 8; x++ {
			if p, ok := g.Board[Position{x, y}]; ok {
				sb.WriteString(p.String())
			} else {
				sb.WriteByte('+')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
