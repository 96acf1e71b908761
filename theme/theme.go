// Package theme loads the appearance settings of the game from a YAML file.
//
// A theme file only needs to name the values it changes:
//
//	board:
//	  white_color: [0.9, 0.9, 0.9]
//	  side_size: 64
//	window:
//	  width: 512
//	  height: 512
//
// Everything not named keeps the value from Default.
package theme

import (
	"bytes"
	"io"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/hexaflex/chess2d/board"
)

// RGB is a color with components in [0, 1].
type RGB [3]float32

// Vec3 returns c as a vector.
func (c RGB) Vec3() mgl32.Vec3 {
	return mgl32.Vec3(c)
}

// Vec4 returns c with the given alpha.
func (c RGB) Vec4(alpha float32) mgl32.Vec4 {
	return mgl32.Vec4{c[0], c[1], c[2], alpha}
}

// Board holds the checkerboard settings.
type Board struct {
	WhiteColor RGB     `yaml:"white_color"`
	BlackColor RGB     `yaml:"black_color"`
	Opacity    float32 `yaml:"opacity"`
	SideSize   int32   `yaml:"side_size"`
	BlackView  bool    `yaml:"black_view"`
}

// Window holds the window settings.
type Window struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	FPS        int `yaml:"fps"`
	ClearColor RGB `yaml:"clear_color"`
}

// Theme defines all appearance settings.
type Theme struct {
	Board  Board  `yaml:"board"`
	Window Window `yaml:"window"`

	// Sprites is the path of the piece sprite sheet. Relative paths are
	// resolved against the working directory.
	Sprites string `yaml:"sprites"`
}

// Default returns the built-in theme.
func Default() *Theme {
	return &Theme{
		Board: Board{
			WhiteColor: RGB{0.98, 0.96, 0.89},
			BlackColor: RGB{1, 0.38, 0.38},
			Opacity:    1,
			SideSize:   96,
		},
		Window: Window{
			Width:      768,
			Height:     768,
			FPS:        60,
			ClearColor: RGB{0.3, 0.3, 0.5},
		},
		Sprites: "resources/textures/spritesheet.png",
	}
}

// Load reads the theme file at path.
func Load(path string) (*Theme, error) {
	log.Println("loading", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	t, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	return t, nil
}

// Parse decodes a theme document on top of Default. Unknown keys are
// rejected.
func Parse(data []byte) (*Theme, error) {
	t := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(t); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode theme")
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate checks that t can be used to open a window and draw the board.
func (t *Theme) Validate() error {
	if err := t.BoardUniforms().Validate(); err != nil {
		return err
	}

	if t.Window.Width <= 0 || t.Window.Height <= 0 {
		return errors.Errorf("invalid window size %dx%d", t.Window.Width, t.Window.Height)
	}

	if t.Window.FPS <= 0 {
		return errors.Errorf("invalid frame rate %d", t.Window.FPS)
	}

	return nil
}

// BoardUniforms returns the board program inputs described by t.
func (t *Theme) BoardUniforms() board.Uniforms {
	return board.Uniforms{
		BlackView:  t.Board.BlackView,
		WhiteColor: t.Board.WhiteColor.Vec3(),
		BlackColor: t.Board.BlackColor.Vec3(),
		Opacity:    t.Board.Opacity,
		SideSize:   t.Board.SideSize,
	}
}

// Marshal encodes t as YAML.
func (t *Theme) Marshal() ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(t); err != nil {
		return nil, errors.Wrap(err, "encode theme")
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
