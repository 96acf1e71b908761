package chess

import (
	"github.com/pkg/errors"
)

// Known error values.
var (
	ErrIllegalMove = errors.New("illegal move")
	ErrNoPromotion = errors.New("no promotion pending")
)

// Apply plays from -> to for the side to move and returns the resulting
// game. g is left untouched. If the move brings a pawn to its last rank, the
// returned position is that pawn's square; the caller must call Promote
// before handing the game to the opponent's input.
func Apply(g *Game, from, to Position) (*Game, *Position, error) {
	if !GenerateMoves(g).Contains(from, to) {
		return nil, nil, errors.Wrapf(ErrIllegalMove, "%v %v -> %v", g.ToMove, from, to)
	}

	next := g.Clone()
	p := next.Board[from]
	ep := next.EnPassant
	next.EnPassant = nil

	// Captured rooks on their home corner take the opponent's rights along.
	if q, ok := next.Board[to]; ok && q.Kind == Rook {
		revokeCorner(next, q.Color, to)
	}

	switch p.Kind {
	case King:
		if d := to.X - from.X; d == 2 || d == -2 {
			castle(next, from.Y, d > 0)
		}
		next.Castling[p.Color] = Castling{}

	case Rook:
		revokeCorner(next, p.Color, from)

	case Pawn:
		if ep != nil && to.X != from.X && to == ep.Add(0, forward(p.Color)) {
			if _, ok := next.Board[to]; !ok {
				delete(next.Board, *ep)
			}
		}

		if d := to.Y - from.Y; d == 2 || d == -2 {
			target := to
			next.EnPassant = &target
		}
	}

	delete(next.Board, from)
	next.Board[to] = p
	next.ToMove = g.ToMove.Opposite()

	if p.Kind == Pawn && to.Y == lastRank(p.Color) {
		promote := to
		return next, &promote, nil
	}

	return next, nil, nil
}

// castle moves the rook that belongs to a castling king move on rank y.
func castle(g *Game, y int8, kingSide bool) {
	from, to := Position{0, y}, Position{3, y}
	if kingSide {
		from, to = Position{7, y}, Position{5, y}
	}

	if r, ok := g.Board[from]; ok {
		delete(g.Board, from)
		g.Board[to] = r
	}
}

// revokeCorner clears the castling right tied to a rook on pos.
func revokeCorner(g *Game, c Color, pos Position) {
	if pos.Y != homeRank(c) {
		return
	}

	rights := g.Castling[c]
	switch pos.X {
	case 0:
		rights.QueenSide = false
	case 7:
		rights.KingSide = false
	default:
		return
	}
	g.Castling[c] = rights
}

// Promote replaces the pawn on at with a piece of the given kind.
func Promote(g *Game, at Position, kind Kind) error {
	p, ok := g.Board[at]
	if !ok || p.Kind != Pawn || at.Y != lastRank(p.Color) {
		return errors.Wrapf(ErrNoPromotion, "at %v", at)
	}

	switch kind {
	case Queen, Rook, Bishop, Knight:
	default:
		return errors.Errorf("pawn cannot promote to %v", kind)
	}

	g.Board[at] = Piece{kind, p.Color}
	return nil
}

// Outcome describes the state of a game.
type Outcome uint8

// Known outcomes.
const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
)

func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// InCheck returns true if the side to move is in check.
func (g *Game) InCheck() bool {
	return inCheck(g.Board, g.ToMove)
}

// Outcome reports whether the side to move has any legal move left. On
// checkmate the winner is the side that made the last move.
func (g *Game) Outcome() Outcome {
	if GenerateMoves(g).Count() > 0 {
		return Ongoing
	}
	if g.InCheck() {
		return Checkmate
	}
	return Stalemate
}
