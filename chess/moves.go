package chess

import "slices"

// Moves maps each movable piece's square to its legal destinations, sorted
// by rank and then file.
type Moves map[Position][]Position

// Contains returns true if moving from -> to is listed.
func (m Moves) Contains(from, to Position) bool {
	return slices.Contains(m[from], to)
}

// Count returns the total number of moves.
func (m Moves) Count() int {
	var n int
	for _, to := range m {
		n += len(to)
	}
	return n
}

func (m Moves) add(from, to Position) {
	if !m.Contains(from, to) {
		m[from] = append(m[from], to)
	}
}

type offset [2]int8

var (
	straight = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonal = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	around   = append(append([]offset{}, straight...), diagonal...)
	jumps    = []offset{{-2, 1}, {-2, -1}, {2, 1}, {2, -1}, {1, -2}, {1, 2}, {-1, -2}, {-1, 2}}
)

// forward returns the direction pawns of color c move in.
func forward(c Color) int8 {
	if c == White {
		return 1
	}
	return -1
}

// homeRank returns the rank the pieces of c start on.
func homeRank(c Color) int8 {
	if c == White {
		return 0
	}
	return 7
}

// pawnRank returns the rank the pawns of c start on.
func pawnRank(c Color) int8 {
	return homeRank(c) + forward(c)
}

// lastRank returns the rank on which pawns of c promote.
func lastRank(c Color) int8 {
	return homeRank(c.Opposite())
}

// slide adds squares along each direction until the board edge or the first
// piece. An opposing piece is included, an own piece is not.
func slide(b Board, pos Position, c Color, dirs []offset, out map[Position]bool) {
	for _, d := range dirs {
		for p := pos.Add(d[0], d[1]); p.Valid(); p = p.Add(d[0], d[1]) {
			if q, ok := b[p]; ok {
				if q.Color != c {
					out[p] = true
				}
				break
			}
			out[p] = true
		}
	}
}

// step adds every on-board target not occupied by an own piece.
func step(b Board, pos Position, c Color, offsets []offset, out map[Position]bool) {
	for _, o := range offsets {
		p := pos.Add(o[0], o[1])
		if !p.Valid() {
			continue
		}
		if q, ok := b[p]; ok && q.Color == c {
			continue
		}
		out[p] = true
	}
}

// attacks adds the squares attacked by the piece at pos.
func attacks(b Board, pos Position, out map[Position]bool) {
	p, ok := b[pos]
	if !ok {
		return
	}

	switch p.Kind {
	case King:
		step(b, pos, p.Color, around, out)
	case Queen:
		slide(b, pos, p.Color, around, out)
	case Bishop:
		slide(b, pos, p.Color, diagonal, out)
	case Knight:
		step(b, pos, p.Color, jumps, out)
	case Rook:
		slide(b, pos, p.Color, straight, out)
	case Pawn:
		dy := forward(p.Color)
		step(b, pos, p.Color, []offset{{-1, dy}, {1, dy}}, out)
	}
}

// attacked returns every square attacked by the given side.
func attacked(b Board, by Color) map[Position]bool {
	out := make(map[Position]bool)
	for pos, p := range b {
		if p.Color == by {
			attacks(b, pos, out)
		}
	}
	return out
}

// inCheck returns true if the king of c is attacked. A side without a king
// is never in check.
func inCheck(b Board, c Color) bool {
	for pos, p := range b {
		if p.Kind == King && p.Color == c {
			return attacked(b, c.Opposite())[pos]
		}
	}
	return false
}

// candidates returns the squares the piece at pos can move to, ignoring
// king safety, castling and en passant.
func candidates(b Board, pos Position) map[Position]bool {
	p := b[pos]
	out := make(map[Position]bool)

	if p.Kind != Pawn {
		attacks(b, pos, out)
		return out
	}

	dy := forward(p.Color)
	one := pos.Add(0, dy)
	if _, ok := b[one]; !ok && one.Valid() {
		out[one] = true

		two := pos.Add(0, 2*dy)
		if _, ok := b[two]; !ok && pos.Y == pawnRank(p.Color) {
			out[two] = true
		}
	}

	captures := make(map[Position]bool)
	attacks(b, pos, captures)
	for sq := range captures {
		if _, ok := b[sq]; ok {
			out[sq] = true
		}
	}

	return out
}

// safe returns true if the mover's king is not attacked after moving the
// piece on from to to and removing the piece on captured, if any.
func safe(b Board, from, to Position, captured *Position) bool {
	next := make(Board, len(b))
	for pos, p := range b {
		next[pos] = p
	}

	p := next[from]
	delete(next, from)
	if captured != nil {
		delete(next, *captured)
	}
	next[to] = p

	return !inCheck(next, p.Color)
}

// GenerateMoves returns all legal moves for the side to move.
func GenerateMoves(g *Game) Moves {
	moves := make(Moves)

	for from, p := range g.Board {
		if p.Color != g.ToMove {
			continue
		}
		for to := range candidates(g.Board, from) {
			if safe(g.Board, from, to, nil) {
				moves.add(from, to)
			}
		}
	}

	enPassantMoves(g, moves)
	castlingMoves(g, moves)

	for from := range moves {
		slices.SortFunc(moves[from], func(a, b Position) int {
			if a.Y != b.Y {
				return int(a.Y) - int(b.Y)
			}
			return int(a.X) - int(b.X)
		})
	}

	return moves
}

// enPassantMoves adds captures of a pawn that just advanced two squares.
func enPassantMoves(g *Game, moves Moves) {
	if g.EnPassant == nil {
		return
	}

	ep := *g.EnPassant
	if victim, ok := g.Board[ep]; !ok || victim.Kind != Pawn || victim.Color == g.ToMove {
		return
	}

	to := ep.Add(0, forward(g.ToMove))
	if _, ok := g.Board[to]; ok || !to.Valid() {
		return
	}

	for _, dx := range []int8{-1, 1} {
		from := ep.Add(dx, 0)
		if !from.Valid() {
			continue
		}

		p, ok := g.Board[from]
		if !ok || p.Kind != Pawn || p.Color != g.ToMove {
			continue
		}

		if safe(g.Board, from, to, &ep) {
			moves.add(from, to)
		}
	}
}

// castlingMoves adds castling king moves. The king may not be in check, and
// may not pass through or land on an attacked square.
func castlingMoves(g *Game, moves Moves) {
	rights, ok := g.Castling[g.ToMove]
	if !ok || (!rights.KingSide && !rights.QueenSide) {
		return
	}

	y := homeRank(g.ToMove)
	king := Position{4, y}
	if p, ok := g.Board[king]; !ok || p != (Piece{King, g.ToMove}) {
		return
	}

	threats := attacked(g.Board, g.ToMove.Opposite())
	if threats[king] {
		return
	}

	side := func(rookX int8, empty, passed []int8, to int8) {
		if p, ok := g.Board[Position{rookX, y}]; !ok || p != (Piece{Rook, g.ToMove}) {
			return
		}
		for _, x := range empty {
			if _, ok := g.Board[Position{x, y}]; ok {
				return
			}
		}
		for _, x := range passed {
			if threats[Position{x, y}] {
				return
			}
		}
		moves.add(king, Position{to, y})
	}

	if rights.KingSide {
		side(7, []int8{5, 6}, []int8{5, 6}, 6)
	}

	if rights.QueenSide {
		side(0, []int8{1, 2, 3}, []int8{2, 3}, 2)
	}
}
