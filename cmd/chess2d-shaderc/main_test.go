package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hexaflex/chess2d/shader"
)

func TestSelectPrograms(t *testing.T) {
	all, err := selectPrograms(nil)
	if err != nil || len(all) != 2 {
		t.Fatalf("unexpected selection: %v %v", all, err)
	}

	one, err := selectPrograms([]string{"quad"})
	if err != nil || len(one) != 1 || one[0].Name != "quad" {
		t.Fatalf("unexpected selection: %v %v", one, err)
	}

	if _, err := selectPrograms([]string{"board", "sky"}); err == nil {
		t.Fatalf("expected error for an unknown program")
	}
}

func TestDumpGLSL(t *testing.T) {
	var buf bytes.Buffer
	dumpGLSL(&buf, programs)

	for _, want := range []string{"// board.vert", "// board.frag", "// quad.vert", "// quad.frag", "#version 330 core"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("dump is missing %q", want)
		}
	}
}

func TestBuildSPIRV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "spv")

	for _, p := range programs {
		path, err := buildSPIRV(dir, p)
		if err != nil {
			if strings.Contains(err.Error(), "not yet implemented") || strings.Contains(err.Error(), "not supported") {
				t.Skipf("naga feature not yet implemented: %v", err)
			}
			t.Fatal(err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}

		if len(data) < 4 || binary.LittleEndian.Uint32(data) != shader.SPIRVMagic {
			t.Fatalf("%s: missing SPIR-V magic", path)
		}
	}
}
