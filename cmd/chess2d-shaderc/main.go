package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/hexaflex/chess2d/board"
	"github.com/hexaflex/chess2d/quad"
	"github.com/hexaflex/chess2d/shader"
)

// programs lists every program this tool knows, by name.
var programs = []*shader.Program{board.Program, quad.Program}

func main() {
	config := parseArgs()

	selected, err := selectPrograms(config.Programs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if config.DumpGLSL {
		dumpGLSL(os.Stdout, selected)
		return
	}

	for _, p := range selected {
		path, err := buildSPIRV(config.Output, p)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(path)
	}
}

// selectPrograms returns the programs with the given names, or all of them
// if names is empty.
func selectPrograms(names []string) ([]*shader.Program, error) {
	if len(names) == 0 {
		return programs, nil
	}

	out := make([]*shader.Program, 0, len(names))

outer:
	for _, name := range names {
		for _, p := range programs {
			if p.Name == name {
				out = append(out, p)
				continue outer
			}
		}
		return nil, errors.Errorf("unknown program %q", name)
	}

	return out, nil
}

// dumpGLSL writes a human readable version of the GLSL stages of each program.
func dumpGLSL(w io.Writer, list []*shader.Program) {
	for _, p := range list {
		fmt.Fprintf(w, "// %s.vert\n%s\n", p.Name, p.Vertex)
		fmt.Fprintf(w, "// %s.frag\n%s\n", p.Name, p.Fragment)
	}
}

// buildSPIRV compiles p and writes it to dir/<name>.spv. It returns the
// path of the written file.
func buildSPIRV(dir string, p *shader.Program) (string, error) {
	words, err := shader.Compile(p)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, p.Name+".spv")
	w, close, err := makeWriter(path)
	if err != nil {
		return "", err
	}

	defer close()

	if _, err := w.Write(shader.Bytes(words)); err != nil {
		return "", errors.Wrapf(err, "write %s", path)
	}

	return path, nil
}

// makeWriter creates an output writer and a cleanup function for it.
func makeWriter(path string) (io.Writer, func(), error) {
	dir, _ := filepath.Split(path)
	if dir != "" {
		if err := os.MkdirAll(dir, 0744); err != nil {
			return nil, nil, err
		}
	}

	fd, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return fd, func() { fd.Close() }, nil
}
