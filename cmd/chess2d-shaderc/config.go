package main

import (
	"flag"
	"fmt"
	"os"
)

// Config defines program configuration.
type Config struct {
	Programs []string // Names of the programs to build. Empty builds all of them.
	Output   string   // Directory to write <name>.spv files to.
	DumpGLSL bool     // Print the GLSL stages to stdout instead of building.
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.Output = "."

	flag.Usage = func() {
		fmt.Printf("%s [options] [program...]\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.StringVar(&c.Output, "out", c.Output, "Output directory.")
	flag.BoolVar(&c.DumpGLSL, "glsl", c.DumpGLSL, "Print the GLSL sources of the selected programs to stdout.")
	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	c.Programs = flag.Args()
	return &c
}
