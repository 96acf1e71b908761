package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	_ "image/jpeg"

	"github.com/hexaflex/chess2d/chess"
	"github.com/hexaflex/chess2d/raster"
	"github.com/hexaflex/chess2d/theme"
)

func main() {
	config := parseArgs()

	if config.Verbose {
		raster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	th, err := loadTheme(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sheet := loadSheet(config, th)

	game, err := playMoves(chess.NewGame(), splitMoves(config.Moves))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	pool := raster.NewPool(config.Workers)
	defer pool.Close()

	r := Renderer{
		Theme:     th,
		Sheet:     sheet,
		Size:      config.Size,
		BlackView: config.BlackView,
		Pool:      pool,
	}

	img, err := r.Render(context.Background(), game)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	out, close := makeWriter(config)
	defer close()

	if err := png.Encode(out, img); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadTheme loads the configured theme, or the built-in one.
func loadTheme(c *Config) (*theme.Theme, error) {
	if c.Theme == "" {
		return theme.Default(), nil
	}
	return theme.Load(c.Theme)
}

// loadSheet loads the sprite sheet. It returns nil if pieces should not be
// drawn. A missing default sheet is not an error.
func loadSheet(c *Config, th *theme.Theme) image.Image {
	path := c.Sprites
	switch path {
	case "-":
		return nil
	case "":
		path = th.Sprites
	}

	img, err := loadImage(path)
	if err == nil {
		return img
	}

	if c.Sprites == "" && errors.Is(err, os.ErrNotExist) {
		log.Println("no sprite sheet; rendering the board only")
		return nil
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
	return nil
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

// makeWriter creates an output writer and a cleanup function for it.
func makeWriter(c *Config) (io.Writer, func()) {
	if c.Output == "" {
		return os.Stdout, func() {}
	}

	dir, _ := filepath.Split(c.Output)
	if dir != "" {
		if err := os.MkdirAll(dir, 0744); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	fd, err := os.Create(c.Output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return fd, func() { fd.Close() }
}
