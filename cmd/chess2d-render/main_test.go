package main

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/hexaflex/chess2d/chess"
	"github.com/hexaflex/chess2d/quad"
	"github.com/hexaflex/chess2d/raster"
	"github.com/hexaflex/chess2d/theme"
)

func TestSplitMoves(t *testing.T) {
	have := splitMoves(" e2e4, e7e5\tg1f3,,")
	if len(have) != 3 || have[0] != "e2e4" || have[2] != "g1f3" {
		t.Fatalf("unexpected split: %q", have)
	}
}

func TestPlayMoves(t *testing.T) {
	g, err := playMoves(chess.NewGame(), []string{"e2e4", "e7e5", "g1f3"})
	if err != nil {
		t.Fatal(err)
	}

	if g.ToMove != chess.Black || g.Board[chess.Position{X: 5, Y: 2}].Kind != chess.Knight {
		t.Fatalf("unexpected position:\n%v", g)
	}

	for _, bad := range [][]string{{"e2e5"}, {"e2"}, {"z2e4"}, {"e2e4q"}} {
		if _, err := playMoves(chess.NewGame(), bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestPlayPromotion(t *testing.T) {
	start := func() *chess.Game {
		return &chess.Game{
			Board: chess.Board{
				{X: 4, Y: 0}: {Kind: chess.King, Color: chess.White},
				{X: 7, Y: 7}: {Kind: chess.King, Color: chess.Black},
				{X: 0, Y: 6}: {Kind: chess.Pawn, Color: chess.White},
			},
			ToMove: chess.White,
		}
	}

	tests := []struct {
		move string
		want chess.Kind
	}{
		{"a7a8", chess.Queen},
		{"a7a8n", chess.Knight},
		{"a7a8r", chess.Rook},
	}

	for _, tt := range tests {
		g, err := playMoves(start(), []string{tt.move})
		if err != nil {
			t.Fatalf("%s: %v", tt.move, err)
		}

		if have := g.Board[chess.Position{X: 0, Y: 7}]; have.Kind != tt.want {
			t.Fatalf("%s: promotion mismatch:\nwant: %v\nhave: %v", tt.move, tt.want, have.Kind)
		}
	}

	if _, err := playMoves(start(), []string{"a7a8k"}); err == nil {
		t.Fatalf("expected error for a king promotion")
	}
}

// testSheet returns a 6x2 sheet of solid 8 pixel cells with a unique color each.
func testSheet() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 48, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 48; x++ {
			img.SetNRGBA(x, y, cellColor(x/8, y/8))
		}
	}
	return img
}

func cellColor(col, row int) color.NRGBA {
	return color.NRGBA{R: uint8(40 * col), G: uint8(255 * row), B: 100, A: 255}
}

func TestRenderBoard(t *testing.T) {
	th := theme.Default()
	r := Renderer{Theme: th, Size: 64}

	img, err := r.Render(context.Background(), chess.NewGame())
	if err != nil {
		t.Fatal(err)
	}

	if img.Rect.Dx() != 64 || img.Rect.Dy() != 64 {
		t.Fatalf("size mismatch: %v", img.Rect)
	}

	white := quad.ToColor(th.Board.WhiteColor.Vec4(1))
	black := quad.ToColor(th.Board.BlackColor.Vec4(1))

	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 63, white}, // a1, bottom-left
		{8, 63, black}, // b1
		{0, 0, black},  // a8, top-left
		{63, 0, white}, // h8
		{36, 35, black},
	}

	for _, tt := range tests {
		if have := img.NRGBAAt(tt.x, tt.y); have != tt.want {
			t.Fatalf("pixel (%d, %d) mismatch:\nwant: %v\nhave: %v", tt.x, tt.y, tt.want, have)
		}
	}
}

func TestRenderPieces(t *testing.T) {
	pool := raster.NewPool(3)
	defer pool.Close()

	r := Renderer{Theme: theme.Default(), Sheet: testSheet(), Size: 64, Pool: pool}

	img, err := r.Render(context.Background(), chess.NewGame())
	if err != nil {
		t.Fatal(err)
	}

	// White rook on a1, black king on e8.
	if have, want := img.NRGBAAt(4, 59), cellColor(5, 1); have != want {
		t.Fatalf("a1 mismatch:\nwant: %v\nhave: %v", want, have)
	}

	if have, want := img.NRGBAAt(36, 4), cellColor(1, 0); have != want {
		t.Fatalf("e8 mismatch:\nwant: %v\nhave: %v", want, have)
	}

	r.BlackView = true
	img, err = r.Render(context.Background(), chess.NewGame())
	if err != nil {
		t.Fatal(err)
	}

	if have, want := img.NRGBAAt(60, 3), cellColor(5, 1); have != want {
		t.Fatalf("flipped a1 mismatch:\nwant: %v\nhave: %v", want, have)
	}
}
