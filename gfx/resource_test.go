package gfx

import (
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/hexaflex/chess2d/board"
	"github.com/hexaflex/chess2d/quad"
)

type fakeResource struct {
	name    string
	fail    bool
	journal *[]string
}

func (f *fakeResource) Name() string { return f.name }

func (f *fakeResource) Startup() error {
	*f.journal = append(*f.journal, "+"+f.name)
	if f.fail {
		return errors.New("boom")
	}
	return nil
}

func (f *fakeResource) Shutdown() error {
	*f.journal = append(*f.journal, "-"+f.name)
	if f.fail {
		return errors.New("boom")
	}
	return nil
}

func TestResources(t *testing.T) {
	var journal []string
	var rs Resources
	rs.Add(
		&fakeResource{name: "a", journal: &journal},
		&fakeResource{name: "b", fail: true, journal: &journal},
		&fakeResource{name: "c", journal: &journal},
	)

	err := rs.Startup()
	set, ok := err.(ErrorSet)
	if !ok || set.Len() != 1 {
		t.Fatalf("unexpected startup error: %v", err)
	}

	if !strings.Contains(set.Error(), "fakeResource(b)") {
		t.Fatalf("error does not name the resource: %q", set.Error())
	}

	if err := rs.Shutdown(); err == nil {
		t.Fatalf("expected shutdown error")
	}

	want := "+a +b +c -c -b -a"
	if have := strings.Join(journal, " "); have != want {
		t.Fatalf("order mismatch:\nwant: %s\nhave: %s", want, have)
	}
}

func TestMeshLayout(t *testing.T) {
	m := NewRectMesh("board", board.Program)
	if m.Count() != 6 {
		t.Fatalf("rect vertex count:\nwant: %d\nhave: %d", 6, m.Count())
	}

	m = NewQuadMesh("piece", [4]float32{0, 0, 480, 480}, 2880, 960)
	if m.Count() != 6 {
		t.Fatalf("quad vertex count:\nwant: %d\nhave: %d", 6, m.Count())
	}

	if len(m.data) != 6*int(quad.Program.Stride()/4) {
		t.Fatalf("quad data size mismatch: %d", len(m.data))
	}
}
