package ui

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/hexaflex/chess2d/chess"
)

// Button identifies a pointer button.
type Button uint8

// Known buttons.
const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Controller turns pointer events into moves on a game.
type Controller struct {
	Layout Layout

	// Logf receives a line for every rejected input and every finished
	// game. Nil discards them.
	Logf func(format string, args ...any)

	game     *chess.Game
	moves    chess.Moves
	outcome  chess.Outcome
	selected *chess.Position
	pending  *chess.Position
	drag     mgl32.Vec2
}

// NewController returns a controller for a new game.
func NewController(l Layout) *Controller {
	c := &Controller{Layout: l}
	c.Reset()
	return c
}

// Reset starts a new game.
func (c *Controller) Reset() {
	c.SetGame(chess.NewGame())
}

// SetGame replaces the current position with g.
func (c *Controller) SetGame(g *chess.Game) {
	c.game = g
	c.selected = nil
	c.pending = nil
	c.advance()
}

// Game returns the current position.
func (c *Controller) Game() *chess.Game {
	return c.game
}

// Moves returns the legal moves in the current position. It is empty while
// a promotion is pending.
func (c *Controller) Moves() chess.Moves {
	return c.moves
}

// Outcome returns the state of the game.
func (c *Controller) Outcome() chess.Outcome {
	return c.outcome
}

// Selected returns the square of the piece being dragged.
func (c *Controller) Selected() (chess.Position, bool) {
	if c.selected == nil {
		return chess.Position{}, false
	}
	return *c.selected, true
}

// Drag returns the bottom-left corner of the dragged piece.
func (c *Controller) Drag() mgl32.Vec2 {
	return c.drag
}

// Pending returns the square of a pawn waiting for promotion.
func (c *Controller) Pending() (chess.Position, bool) {
	if c.pending == nil {
		return chess.Position{}, false
	}
	return *c.pending, true
}

// Flip toggles the black view.
func (c *Controller) Flip() {
	c.Layout.BlackView = !c.Layout.BlackView
}

// Click handles a button press at window pixel (x, y).
//
// With nothing selected, a single left click on a piece of the side to move
// picks it up. With a piece selected, clicking a legal destination plays the
// move, clicking the piece again drops it and clicking another own piece
// picks that one up instead. While a promotion is pending only the picker
// reacts.
func (c *Controller) Click(x, y float64, button Button, double bool) {
	if c.pending != nil {
		c.PickPromotion(x, y)
		return
	}

	if c.outcome != chess.Ongoing {
		return
	}

	pos, onBoard := c.Layout.Square(x, y)

	if c.selected != nil {
		from := *c.selected
		c.selected = nil

		if !onBoard || pos == from {
			return
		}

		if c.moves.Contains(from, pos) {
			c.play(from, pos)
			return
		}

		if p, ok := c.game.Board[pos]; !ok || p.Color != c.game.ToMove {
			c.logf("cannot move %v from %v to %v", c.game.Board[from], from, pos)
		}
	}

	if double || button != ButtonLeft || !onBoard {
		return
	}

	if p, ok := c.game.Board[pos]; !ok || p.Color != c.game.ToMove {
		return
	}

	c.selected = &pos
	c.drag = c.Layout.Cursor(x, y)
}

// Motion moves the dragged piece, if any, to window pixel (x, y).
func (c *Controller) Motion(x, y float64) {
	if c.selected != nil {
		c.drag = c.Layout.Cursor(x, y)
	}
}

// PickPromotion completes a pending promotion if (x, y) hits a picker slot.
func (c *Controller) PickPromotion(x, y float64) bool {
	if c.pending == nil {
		return false
	}

	kind, ok := c.Layout.PromotionAt(x, y)
	if !ok {
		return false
	}

	if err := chess.Promote(c.game, *c.pending, kind); err != nil {
		c.logf("%v", err)
		return false
	}

	c.pending = nil
	c.advance()
	return true
}

func (c *Controller) play(from, to chess.Position) {
	next, promote, err := chess.Apply(c.game, from, to)
	if err != nil {
		c.logf("%v", err)
		return
	}

	c.game = next
	if promote != nil {
		c.pending = promote
		c.moves = nil
		return
	}

	c.advance()
}

// advance regenerates the legal moves and updates the outcome.
func (c *Controller) advance() {
	c.moves = chess.GenerateMoves(c.game)
	c.outcome = chess.Ongoing

	if c.moves.Count() > 0 {
		return
	}

	if c.game.InCheck() {
		c.outcome = chess.Checkmate
		c.logf("%v; %v wins", c.outcome, c.game.ToMove.Opposite())
	} else {
		c.outcome = chess.Stalemate
		c.logf("%v", c.outcome)
	}
}

func (c *Controller) logf(format string, args ...any) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}
