package main

import (
	"flag"
	"fmt"
	"os"
)

// Config defines program configuration.
type Config struct {
	Theme     string // Path to a theme file. Empty uses the built-in theme.
	Sprites   string // Path to the sprite sheet. Overrides the theme.
	BlackView bool   // Start with black at the bottom of the window.
	FPS       int    // Frame rate cap. Overrides the theme when positive.
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config

	flag.Usage = func() {
		fmt.Printf("%s [options]\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.StringVar(&c.Theme, "theme", c.Theme, "Path to a YAML theme file.")
	flag.StringVar(&c.Sprites, "sprites", c.Sprites, "Path to the piece sprite sheet.")
	flag.BoolVar(&c.BlackView, "black-view", c.BlackView, "Show the board from black's side.")
	flag.IntVar(&c.FPS, "fps", c.FPS, "Frame rate cap.")
	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	return &c
}
