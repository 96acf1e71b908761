package board

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/hexaflex/chess2d/shader"
)

var (
	white = mgl32.Vec3{0.98, 0.96, 0.89}
	black = mgl32.Vec3{1, 0.38, 0.38}
)

func TestTwoByTwoBoard(t *testing.T) {
	for _, v := range []struct {
		BlackView bool
		X0, Y0    int
		X1, Y1    int
		Want      bool
	}{
		{false, 0, 0, 49, 49, false},
		{false, 50, 0, 99, 49, true},
		{false, 0, 50, 49, 99, true},
		{false, 50, 50, 99, 99, false},
		{true, 0, 0, 49, 49, true},
		{true, 50, 0, 99, 49, false},
		{true, 50, 50, 99, 99, true},
	} {
		for y := v.Y0; y <= v.Y1; y++ {
			for x := v.X0; x <= v.X1; x++ {
				if have := Parity(x, y, 50, v.BlackView); have != v.Want {
					t.Fatalf("pixel (%d, %d) black_view=%v:\nwant: %v\nhave: %v",
						x, y, v.BlackView, v.Want, have)
				}
			}
		}
	}
}

func TestPeriodic(t *testing.T) {
	for _, s := range []int{1, 2, 3, 7, 50, 96} {
		for y := -3 * s; y < 3*s; y++ {
			for x := -3 * s; x < 3*s; x++ {
				p := Parity(x, y, s, false)
				if Parity(x+2*s, y, s, false) != p || Parity(x, y+2*s, s, false) != p {
					t.Fatalf("side %d: pixel (%d, %d) is not periodic", s, x, y)
				}
			}
		}
	}
}

func TestBlackViewInverts(t *testing.T) {
	for _, s := range []int{1, 5, 96} {
		for y := -2 * s; y < 2*s; y++ {
			for x := -2 * s; x < 2*s; x++ {
				if Parity(x, y, s, true) == Parity(x, y, s, false) {
					t.Fatalf("side %d: pixel (%d, %d) not inverted", s, x, y)
				}
			}
		}
	}
}

func TestNegativeCoordinates(t *testing.T) {
	// The square left of the origin must have the opposite color of the one
	// right of it, with no seam of doubled squares at 0.
	const s = 10

	for x := -s; x < 0; x++ {
		if !Parity(x, 0, s, false) {
			t.Fatalf("pixel (%d, 0): want black", x)
		}
	}

	for x := -2 * s; x < -s; x++ {
		if Parity(x, 0, s, false) {
			t.Fatalf("pixel (%d, 0): want white", x)
		}
	}
}

func TestSinglePixelSquares(t *testing.T) {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := (x+y)%2 == 1
			if have := Parity(x, y, 1, false); have != want {
				t.Fatalf("pixel (%d, %d):\nwant: %v\nhave: %v", x, y, want, have)
			}
		}
	}
}

func TestFragmentOpacity(t *testing.T) {
	u := Uniforms{WhiteColor: white, BlackColor: black, Opacity: 0.5, SideSize: 50}

	for _, v := range []struct {
		X, Y float32
		Want mgl32.Vec4
	}{
		{0.5, 0.5, white.Vec4(0.5)},
		{50.5, 0.5, black.Vec4(0.5)},
		{75.5, 75.5, white.Vec4(0.5)},
	} {
		have := u.Fragment(v.X, v.Y)
		if have != v.Want {
			t.Fatalf("fragment (%v, %v):\nwant: %v\nhave: %v", v.X, v.Y, v.Want, have)
		}
	}

	// Out of range opacity is passed through unclamped.
	u.Opacity = 1.5
	if have := u.Fragment(0, 0)[3]; have != 1.5 {
		t.Fatalf("alpha mismatch:\nwant: %v\nhave: %v", 1.5, have)
	}
}

func TestValidate(t *testing.T) {
	for i, v := range []struct {
		SideSize int32
		Fail     bool
	}{
		{-1, true},
		{0, true},
		{1, false},
		{96, false},
	} {
		err := Uniforms{SideSize: v.SideSize}.Validate()
		if (err != nil) != v.Fail {
			t.Fatalf("test %d: unexpected result %v", i, err)
		}

		if err != nil && errors.Cause(err) != ErrSideSize {
			t.Fatalf("test %d: unexpected error %v", i, err)
		}
	}
}

type recorder map[string]interface{}

func (r recorder) SetBool(name string, v bool)       { r[name] = v }
func (r recorder) SetInt(name string, v int32)       { r[name] = v }
func (r recorder) SetFloat(name string, v float32)   { r[name] = v }
func (r recorder) SetVec3(name string, v mgl32.Vec3) { r[name] = v }
func (r recorder) SetMat4(name string, v mgl32.Mat4) { r[name] = v }

var _ shader.Setter = recorder{}

func TestApply(t *testing.T) {
	u := Uniforms{BlackView: true, WhiteColor: white, BlackColor: black, Opacity: 0.75, SideSize: 96}
	r := recorder{}

	if err := u.Apply(r); err != nil {
		t.Fatal(err)
	}

	want := recorder{
		UniformBlackView:  true,
		UniformWhiteColor: white,
		UniformBlackColor: black,
		UniformOpacity:    float32(0.75),
		UniformSideSize:   int32(96),
	}

	for name, w := range want {
		if r[name] != w {
			t.Fatalf("uniform %s:\nwant: %v\nhave: %v", name, w, r[name])
		}

		// Every uploaded name must be declared by the program.
		if _, ok := Program.Uniform(name); !ok {
			t.Fatalf("uniform %s is not declared", name)
		}
	}

	r = recorder{}
	u.SideSize = 0
	if err := u.Apply(r); err == nil || len(r) > 0 {
		t.Fatalf("expected invalid uniforms to be rejected before upload")
	}
}
