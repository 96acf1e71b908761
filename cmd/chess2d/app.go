package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	_ "image/jpeg"
	_ "image/png"

	"github.com/hexaflex/chess2d/board"
	"github.com/hexaflex/chess2d/chess"
	"github.com/hexaflex/chess2d/gfx"
	"github.com/hexaflex/chess2d/quad"
	"github.com/hexaflex/chess2d/shader"
	"github.com/hexaflex/chess2d/theme"
	"github.com/hexaflex/chess2d/ui"
)

// App defines application context.
type App struct {
	config       *Config                   // Application configuration.
	theme        *theme.Theme              // Colors, sizes and asset paths.
	window       *glfw.Window              // OpenGL/GLFW context.
	controller   *ui.Controller            // Game state and input handling.
	resources    gfx.Resources             // Everything living on the GPU.
	board        *gfx.Rect                 // Checkerboard.
	sprites      *gfx.Texture              // Piece sprite sheet.
	quadProgram  *gfx.Program              // Program drawing pieces.
	pieces       map[chess.Piece]*gfx.Mesh // Quad per piece, cut from the sheet.
	projection   mgl32.Mat4                // Window pixels to clip space.
	clicks       ClickCounter              // Multi-click detection.
	frames       FrameCounter              // Measured frame rate.
	titleUpdated time.Time                 // Value used to periodically update window title.
	lastRendered time.Time                 // Last time a frame was rendered.
}

// NewApp creates a new application instance using the given configuration.
func NewApp(config *Config) *App {
	var a App
	a.config = config
	a.pieces = make(map[chess.Piece]*gfx.Mesh, 12)
	return &a
}

// Run runs the application and does not return until it is finished
// or an error occured during initialization.
func (a *App) Run() error {
	if err := a.loadTheme(); err != nil {
		return err
	}

	sheet, err := loadImage(a.theme.Sprites)
	if err != nil {
		return err
	}

	if err := a.initGL(); err != nil {
		return err
	}

	defer a.dispose()

	log.Println(Version())
	printHelp()

	a.initScene(sheet)
	if err := a.resources.Startup(); err != nil {
		return err
	}

	now := time.Now()
	a.frames.Reset(now)
	a.titleUpdated = now

	for !a.window.ShouldClose() {
		a.mainLoop()
	}

	return nil
}

// loadTheme loads the configured theme and applies command line overrides.
func (a *App) loadTheme() error {
	a.theme = theme.Default()

	if a.config.Theme != "" {
		t, err := theme.Load(a.config.Theme)
		if err != nil {
			return err
		}
		a.theme = t
	}

	if a.config.Sprites != "" {
		a.theme.Sprites = a.config.Sprites
	}

	if a.config.FPS > 0 {
		a.theme.Window.FPS = a.config.FPS
	}

	return a.theme.Validate()
}

// mainLoop performs all main loop operations.
func (a *App) mainLoop() {
	frame := time.Second / time.Duration(a.theme.Window.FPS)
	if wait := frame - time.Since(a.lastRendered); wait > 0 {
		time.Sleep(wait)
	}

	a.lastRendered = time.Now()
	a.render()
	a.window.SwapBuffers()
	a.frames.Tick()

	// Periodically update the window title to show the current frame rate.
	if time.Since(a.titleUpdated) >= time.Second*2 {
		now := time.Now()
		a.titleUpdated = now
		a.window.SetTitle(fmt.Sprintf("%s %s - %s", AppName, AppVersion, prettyRate(a.frames.Rate(now))))
		a.frames.Reset(now)
	}

	glfw.PollEvents()
}

// render draws the current scene.
func (a *App) render() {
	cc := a.theme.Window.ClearColor
	gl.ClearColor(cc[0], cc[1], cc[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	sprite := gfx.Sprite{
		Rect:    gfx.Rect{Program: a.quadProgram},
		Texture: a.sprites,
	}

	for _, it := range ui.Scene(a.controller) {
		switch it.Kind {
		case ui.ItemBoard:
			a.board.Rect = it.Rect
			a.board.Draw(a.projection)
		case ui.ItemPiece:
			sprite.Rect.Rect = it.Rect
			sprite.Mesh = a.pieces[it.Piece]
			sprite.Draw(a.projection)
		}
	}
}

// dispose ensures openGL/GLFW and other resources are cleaned up.
func (a *App) dispose() {
	if err := a.resources.Shutdown(); err != nil {
		log.Println(err)
	}

	if a.window != nil {
		a.window.Destroy()
		a.window = nil
	}

	glfw.Terminate()
}

func (a *App) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	switch key {
	case glfw.KeyEscape:
		a.window.SetShouldClose(true)
	case glfw.KeyF1:
		printHelp()
	case glfw.KeyF:
		a.controller.Flip()
	case glfw.KeyR:
		log.Println("new game")
		a.controller.Reset()
	}
}

func (a *App) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	b, ok := mapButton(button)
	if !ok {
		return
	}

	x, y := a.window.GetCursorPos()
	n := a.clicks.Press(b, x, y, time.Now())
	a.controller.Click(x, y, b, n%2 == 0)
}

func (a *App) cursorPosCallback(_ *glfw.Window, x, y float64) {
	a.controller.Motion(x, y)
}

// initGL initializes GLFW and openGL.
func (a *App) initGL() error {
	err := glfw.Init()
	if err != nil {
		return errors.Wrapf(err, "glfw.Init failed")
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	width, height := a.theme.Window.Width, a.theme.Window.Height
	a.window, err = glfw.CreateWindow(width, height, AppName, nil, nil)
	if err != nil {
		a.dispose()
		return errors.Wrapf(err, "glfw.CreateWindow failed")
	}

	a.window.MakeContextCurrent()
	a.window.SetKeyCallback(a.keyCallback)
	a.window.SetMouseButtonCallback(a.mouseButtonCallback)
	a.window.SetCursorPosCallback(a.cursorPosCallback)

	glfw.SwapInterval(0)

	err = gl.Init()
	if err != nil {
		a.dispose()
		return errors.Wrapf(err, "gl.Init failed")
	}

	fbw, fbh := a.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	a.projection = mgl32.Ortho(0, float32(width), 0, float32(height), -1, 1)
	return nil
}

// initScene creates the GPU resources and the game controller.
func (a *App) initScene(sheet image.Image) {
	boardProgram := gfx.NewProgram(board.Program)
	a.quadProgram = gfx.NewProgram(quad.Program)
	boardMesh := gfx.NewRectMesh("board", board.Program)
	a.sprites = gfx.NewTexture(sheet)

	a.resources.Add(boardProgram, a.quadProgram, boardMesh, a.sprites)

	uniforms := a.theme.BoardUniforms()
	a.board = &gfx.Rect{
		Program: boardProgram,
		Mesh:    boardMesh,
		Uniforms: func(s shader.Setter) error {
			return uniforms.Apply(s)
		},
	}

	w, h := a.sprites.Size()
	atlas := ui.NewAtlas(float32(w) / 6)
	if aw, ah := atlas.Size(); int(aw) != w || int(ah) != h {
		log.Printf("sprite sheet is %dx%d; expected %.0fx%.0f", w, h, aw, ah)
	}

	for _, color := range []chess.Color{chess.White, chess.Black} {
		for kind := chess.King; kind <= chess.Pawn; kind++ {
			p := chess.Piece{Kind: kind, Color: color}
			m := gfx.NewQuadMesh(p.String(), atlas.Rect(p), float32(w), float32(h))
			a.pieces[p] = m
			a.resources.Add(m)
		}
	}

	a.controller = ui.NewController(ui.Layout{
		SquareSize: int(a.theme.Board.SideSize),
		BlackView:  a.config.BlackView,
		Height:     a.theme.Window.Height,
	})
	a.controller.Logf = log.Printf
}

// loadImage loads an image from disk.
func loadImage(path string) (image.Image, error) {
	log.Println("loading", path)

	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer fd.Close()

	img, _, err := image.Decode(fd)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	return img, nil
}

// printHelp writes a short overview of supported shortcut keys to stdout.
func printHelp() {
	var sb strings.Builder
	sb.WriteString("shortcut keys:\n")
	sb.WriteString(" ESC      Exit the game.\n")
	sb.WriteString(" F1       Display this help.\n")
	sb.WriteString(" F        Flip the board.\n")
	sb.WriteString(" R        Start a new game.\n")
	sb.WriteString("mouse:\n")
	sb.WriteString(" click a piece, then click its destination. Click it again to put it back.")
	log.Println(sb.String())
}
