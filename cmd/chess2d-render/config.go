package main

import (
	"flag"
	"fmt"
	"os"
)

// Config defines program configuration.
type Config struct {
	Output    string // PNG file to write. Leave empty for stdout.
	Size      int    // Edge of the rendered board in pixels.
	BlackView bool   // Render the board from black's side.
	Theme     string // Path to a theme file. Empty uses the built-in theme.
	Sprites   string // Sprite sheet. Overrides the theme; "-" renders the board only.
	Workers   int    // Number of render workers. Zero uses one per CPU.
	Moves     string // Moves to play from the starting position, like "e2e4,e7e5".
	Verbose   bool   // Log rasterizer details to stderr.
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.Output = "board.png"
	c.Size = 768

	flag.Usage = func() {
		fmt.Printf("%s [options]\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.StringVar(&c.Output, "out", c.Output, "File path to write output to. Leave empty to use stdout.")
	flag.IntVar(&c.Size, "size", c.Size, "Edge of the image in pixels. Rounded down to a multiple of 8.")
	flag.BoolVar(&c.BlackView, "black-view", c.BlackView, "Render the board from black's side.")
	flag.StringVar(&c.Theme, "theme", c.Theme, "Path to a YAML theme file.")
	flag.StringVar(&c.Sprites, "sprites", c.Sprites, "Path to the piece sprite sheet. Use - to skip pieces.")
	flag.IntVar(&c.Workers, "workers", c.Workers, "Number of render workers. 0 uses one per CPU.")
	flag.StringVar(&c.Moves, "moves", c.Moves, "Comma separated moves to play first, like e2e4,e7e5. Append q, r, b or n to promote.")
	flag.BoolVar(&c.Verbose, "v", c.Verbose, "Log rasterizer details to stderr.")
	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	if flag.NArg() > 0 || c.Size < 8 {
		flag.Usage()
		os.Exit(1)
	}

	return &c
}
