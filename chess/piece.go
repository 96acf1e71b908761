// Package chess implements the rules of chess: the starting position, legal
// move generation including castling and en passant, move application and
// pawn promotion.
package chess

import (
	"fmt"

	"github.com/pkg/errors"
)

// Color identifies a side.
type Color uint8

// Known colors.
const (
	White Color = iota
	Black
)

// Opposite returns the other side.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return fmt.Sprintf("Color(%d)", c)
}

// Kind identifies a piece type.
type Kind uint8

// Known piece kinds.
const (
	King Kind = iota
	Queen
	Bishop
	Knight
	Rook
	Pawn
)

var kindNames = [...]string{"King", "Queen", "Bishop", "Knight", "Rook", "Pawn"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Piece is a colored piece.
type Piece struct {
	Kind  Kind
	Color Color
}

var glyphs = [2][6]string{
	{"♔", "♕", "♗", "♘", "♖", "♙"},
	{"♚", "♛", "♝", "♞", "♜", "♟"},
}

func (p Piece) String() string {
	if int(p.Color) < len(glyphs) && int(p.Kind) < len(glyphs[0]) {
		return glyphs[p.Color][p.Kind]
	}
	return fmt.Sprintf("Piece(%v, %v)", p.Kind, p.Color)
}

// Position is a board square. X is the file (0 = a), Y the rank (0 = 1).
type Position struct {
	X, Y int8
}

// Valid returns true if p is on the board.
func (p Position) Valid() bool {
	return p.X >= 0 && p.X < 8 && p.Y >= 0 && p.Y < 8
}

// Add returns p offset by (dx, dy).
func (p Position) Add(dx, dy int8) Position {
	return Position{p.X + dx, p.Y + dy}
}

func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}
	return string([]byte{'a' + byte(p.X), '1' + byte(p.Y)})
}

// ParsePosition parses a square in algebraic notation, like "e4".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Position{}, errors.Errorf("invalid square %q", s)
	}
	return Position{int8(s[0] - 'a'), int8(s[1] - '1')}, nil
}
