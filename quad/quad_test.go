package quad

import (
	"image"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/hexaflex/chess2d/shader"
)

func TestTransform(t *testing.T) {
	// Scale by (2, 3) and translate by (10, 20, 5).
	m := mgl32.Translate3D(10, 20, 5).Mul4(mgl32.Scale3D(2, 3, 4))

	have := Transform(mgl32.Vec2{1, 2}, m)
	want := mgl32.Vec4{12, 26, 5, 1}
	if !have.ApproxEqual(want) {
		t.Fatalf("transform mismatch:\nwant: %v\nhave: %v", want, have)
	}

	if want := m.Mul4x1(mgl32.Vec4{1, 2, 0, 1}); have != want {
		t.Fatalf("transform must equal M·(x, y, 0, 1):\nwant: %v\nhave: %v", want, have)
	}

	// The third matrix column only ever meets a zero z component.
	n := m
	n.SetCol(2, mgl32.Vec4{100, 200, 300, 400})
	if other := Transform(mgl32.Vec2{1, 2}, n); other != have {
		t.Fatalf("input z is not treated as 0:\nwant: %v\nhave: %v", have, other)
	}
}

func TestTransformOrtho(t *testing.T) {
	proj := mgl32.Ortho(0, 768, 0, 768, -1, 1)
	mvp := proj.Mul4(Model(mgl32.Vec4{96, 192, 96, 96}, 0))

	for _, v := range []struct {
		In   mgl32.Vec2
		Want mgl32.Vec4
	}{
		{mgl32.Vec2{0, 0}, mgl32.Vec4{-0.75, -0.5, 0, 1}},
		{mgl32.Vec2{1, 1}, mgl32.Vec4{-0.5, -0.25, 0, 1}},
	} {
		have := Transform(v.In, mvp)
		if !have.ApproxEqualThreshold(v.Want, 1e-6) {
			t.Fatalf("vertex %v:\nwant: %v\nhave: %v", v.In, v.Want, have)
		}
	}
}

func TestModelRotation(t *testing.T) {
	m := Model(mgl32.Vec4{0, 0, 10, 10}, 180)

	// A half turn around the center maps the origin corner to the far corner.
	have := Transform(mgl32.Vec2{0, 0}, m)
	want := mgl32.Vec4{10, 10, 0, 1}
	if !have.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("rotation mismatch:\nwant: %v\nhave: %v", want, have)
	}

	if Model(mgl32.Vec4{1, 2, 3, 4}, 1e-45) != Model(mgl32.Vec4{1, 2, 3, 4}, 0) {
		t.Fatalf("subnormal angles must not rotate")
	}
}

func TestVertices(t *testing.T) {
	vs := Vertices(mgl32.Vec4{480, 0, 480, 480}, 2880, 960)

	want := [6]mgl32.Vec2{
		{1.0 / 6, 0}, {2.0 / 6, 0}, {2.0 / 6, 0.5},
		{1.0 / 6, 0}, {1.0 / 6, 0.5}, {2.0 / 6, 0.5},
	}

	for i, v := range vs {
		if v.Position != UnitQuad[i] {
			t.Fatalf("vertex %d position:\nwant: %v\nhave: %v", i, UnitQuad[i], v.Position)
		}
		if !v.TexCoord.ApproxEqual(want[i]) {
			t.Fatalf("vertex %d texcoord:\nwant: %v\nhave: %v", i, want[i], v.TexCoord)
		}
	}

	if have := len(Flatten(vs[:])); have != 24 {
		t.Fatalf("flattened size:\nwant: %d\nhave: %d", 24, have)
	}
}

// checker returns a 2x2 image: red, green / blue, white.
func checker() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(1, 1, color.NRGBA{255, 255, 255, 255})
	return img
}

func TestSampleNearest(t *testing.T) {
	tex := NewTexture(checker(), false)
	s := Sampler{Min: Nearest, Mag: Nearest}

	for _, v := range []struct {
		UV   mgl32.Vec2
		Wrap Wrap
		Want mgl32.Vec4
	}{
		{mgl32.Vec2{0.25, 0.25}, Repeat, mgl32.Vec4{1, 0, 0, 1}},
		{mgl32.Vec2{0.75, 0.25}, Repeat, mgl32.Vec4{0, 1, 0, 1}},
		{mgl32.Vec2{0.25, 0.75}, Repeat, mgl32.Vec4{0, 0, 1, 1}},
		{mgl32.Vec2{1.25, 0.25}, Repeat, mgl32.Vec4{1, 0, 0, 1}},
		{mgl32.Vec2{-0.25, 0.25}, Repeat, mgl32.Vec4{0, 1, 0, 1}},
		{mgl32.Vec2{1.25, 0.25}, ClampToEdge, mgl32.Vec4{0, 1, 0, 1}},
		{mgl32.Vec2{-3, 0.25}, ClampToEdge, mgl32.Vec4{1, 0, 0, 1}},
		{mgl32.Vec2{1.25, 0.25}, MirroredRepeat, mgl32.Vec4{0, 1, 0, 1}},
		{mgl32.Vec2{1.75, 0.25}, MirroredRepeat, mgl32.Vec4{1, 0, 0, 1}},
	} {
		s.WrapS, s.WrapT = v.Wrap, v.Wrap
		if have := Fragment(tex, s, v.UV); have != v.Want {
			t.Fatalf("sample %v (wrap %d):\nwant: %v\nhave: %v", v.UV, v.Wrap, v.Want, have)
		}
	}
}

func TestSampleLinear(t *testing.T) {
	tex := NewTexture(checker(), false)
	s := Sampler{Min: Linear, Mag: Linear, WrapS: ClampToEdge, WrapT: ClampToEdge}

	// The exact center blends all four texels equally.
	have := s.Sample(tex, mgl32.Vec2{0.5, 0.5})
	want := mgl32.Vec4{0.5, 0.5, 0.5, 1}
	if !have.ApproxEqual(want) {
		t.Fatalf("center sample:\nwant: %v\nhave: %v", want, have)
	}

	// Texel centers return the texel unchanged.
	have = s.Sample(tex, mgl32.Vec2{0.25, 0.25})
	want = mgl32.Vec4{1, 0, 0, 1}
	if !have.ApproxEqual(want) {
		t.Fatalf("texel center sample:\nwant: %v\nhave: %v", want, have)
	}
}

func TestMipChain(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	tex := NewTexture(img, true)
	if have := tex.Levels(); have != 4 {
		t.Fatalf("level count:\nwant: %d\nhave: %d", 4, have)
	}

	if w, h := tex.Size(); w != 8 || h != 4 {
		t.Fatalf("base size: %dx%d", w, h)
	}

	// A uniform image stays uniform at every level and any lod.
	for _, lod := range []float32{0, 0.5, 1, 2.5, 10} {
		have := DefaultSampler.SampleLevel(tex, mgl32.Vec2{0.3, 0.6}, lod)
		if !have.ApproxEqualThreshold(mgl32.Vec4{1, 1, 1, 1}, 1e-2) {
			t.Fatalf("lod %v: unexpected sample %v", lod, have)
		}
	}
}

func TestSampleDegenerate(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	tex := NewTexture(img, true)
	nan := float32(math.NaN())
	if have := DefaultSampler.SampleLevel(tex, mgl32.Vec2{0.5, 0.5}, nan); !have.ApproxEqual(mgl32.Vec4{1, 1, 1, 1}) {
		t.Fatalf("NaN lod: unexpected sample %v", have)
	}

	empty := NewTexture(image.NewNRGBA(image.Rect(0, 0, 0, 0)), true)
	for _, s := range []Sampler{DefaultSampler, {WrapS: Repeat, WrapT: Repeat}} {
		if have := s.SampleLevel(empty, mgl32.Vec2{0.5, 0.5}, 2); have != (mgl32.Vec4{}) {
			t.Fatalf("empty texture: unexpected sample %v", have)
		}
	}

	// The default sampler clamps like the GL host.
	pair := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	pair.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	pair.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	if have := DefaultSampler.Sample(NewTexture(pair, false), mgl32.Vec2{1.25, 0.5}); !have.ApproxEqual(mgl32.Vec4{0, 1, 0, 1}) {
		t.Fatalf("clamped sample mismatch:\nwant: %v\nhave: %v", mgl32.Vec4{0, 1, 0, 1}, have)
	}
}

func TestToColor(t *testing.T) {
	have := ToColor(mgl32.Vec4{-1, 0.5, 2, 1})
	want := color.NRGBA{0, 128, 255, 255}
	if have != want {
		t.Fatalf("color mismatch:\nwant: %v\nhave: %v", want, have)
	}
}

func TestProgramCompiles(t *testing.T) {
	if _, ok := Program.Attribute("texCoord"); !ok {
		t.Fatalf("texCoord attribute is not declared")
	}

	words, err := shader.Compile(Program)
	if err != nil {
		if strings.Contains(err.Error(), "not yet implemented") || strings.Contains(err.Error(), "not supported") {
			t.Skipf("naga feature not yet implemented: %v", err)
		}
		t.Fatal(err)
	}

	if words[0] != shader.SPIRVMagic {
		t.Fatalf("invalid SPIR-V magic: 0x%08x", words[0])
	}
}
