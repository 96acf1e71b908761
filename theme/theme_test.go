package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/hexaflex/chess2d/board"
)

func TestDefault(t *testing.T) {
	th := Default()
	if err := th.Validate(); err != nil {
		t.Fatal(err)
	}

	u := th.BoardUniforms()
	want := board.Uniforms{
		WhiteColor: mgl32.Vec3{0.98, 0.96, 0.89},
		BlackColor: mgl32.Vec3{1, 0.38, 0.38},
		Opacity:    1,
		SideSize:   96,
	}

	if u != want {
		t.Fatalf("uniform mismatch:\nwant: %+v\nhave: %+v", want, u)
	}
}

func TestParseOverlay(t *testing.T) {
	th, err := Parse([]byte(`
board:
  black_color: [0, 0, 0]
  side_size: 50
  opacity: 1.5
window:
  fps: 30
`))
	if err != nil {
		t.Fatal(err)
	}

	if th.Board.BlackColor != (RGB{0, 0, 0}) || th.Board.SideSize != 50 || th.Board.Opacity != 1.5 {
		t.Fatalf("board mismatch: %+v", th.Board)
	}

	if th.Board.WhiteColor != Default().Board.WhiteColor {
		t.Fatalf("unnamed value lost its default: %v", th.Board.WhiteColor)
	}

	if th.Window.FPS != 30 || th.Window.Width != 768 {
		t.Fatalf("window mismatch: %+v", th.Window)
	}
}

func TestParseEmpty(t *testing.T) {
	th, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}

	if th.Board != Default().Board {
		t.Fatalf("board mismatch: %+v", th.Board)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		"board:\n  side_size: 0\n",
		"board:\n  side_size: -4\n",
		"window:\n  width: 0\n",
		"window:\n  fps: -1\n",
		"board:\n  colour: [1, 1, 1]\n",
		"board: [",
	}

	for _, tt := range tests {
		if _, err := Parse([]byte(tt)); err == nil {
			t.Fatalf("expected error for %q", tt)
		}
	}

	_, err := Parse([]byte("board:\n  side_size: 0\n"))
	if errors.Cause(err) != board.ErrSideSize {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")

	want := Default()
	want.Board.BlackView = true
	want.Sprites = "pieces.png"

	data, err := want.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	have, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if *have != *want {
		t.Fatalf("theme mismatch:\nwant: %+v\nhave: %+v", want, have)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for a missing file")
	}
}
