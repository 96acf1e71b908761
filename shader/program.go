// Package shader describes the host-facing interface of a GPU program:
// its stage sources and the uniforms and vertex attributes a host has to
// bind before issuing a draw call.
package shader

import "github.com/go-gl/mathgl/mgl32"

// UniformType identifies the type of a uniform slot.
type UniformType int

// Known uniform types.
const (
	Bool UniformType = iota
	Int
	Float
	Vec3
	Mat4
	Sampler2D
)

func (t UniformType) String() string {
	switch t {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case Vec3:
		return "vec3"
	case Mat4:
		return "mat4"
	case Sampler2D:
		return "sampler2D"
	}
	return "unknown"
}

// Uniform describes a named, typed uniform slot.
type Uniform struct {
	Name string
	Type UniformType
}

// Attribute describes a vertex attribute bound by location.
type Attribute struct {
	Name     string
	Location uint32
	Size     int32 // Number of float components.
}

// Program holds the sources and the binding interface of a shader program.
type Program struct {
	Name       string      // Short name, used for logging and output file names.
	Vertex     string      // GLSL vertex stage.
	Fragment   string      // GLSL fragment stage.
	WGSL       string      // WGSL rendition with vs_main and fs_main entry points.
	Uniforms   []Uniform   // Uniforms the host must bind.
	Attributes []Attribute // Vertex attributes, by location.
}

// Uniform returns the uniform with the given name.
func (p *Program) Uniform(name string) (Uniform, bool) {
	for _, u := range p.Uniforms {
		if u.Name == name {
			return u, true
		}
	}
	return Uniform{}, false
}

// Attribute returns the attribute with the given name.
func (p *Program) Attribute(name string) (Attribute, bool) {
	for _, a := range p.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// Stride returns the size in bytes of one interleaved vertex.
func (p *Program) Stride() int32 {
	var n int32
	for _, a := range p.Attributes {
		n += a.Size
	}
	return n * 4
}

// Offset returns the byte offset of the attribute at the given location
// within one interleaved vertex. Attributes are laid out in location order.
func (p *Program) Offset(location uint32) int {
	var n int
	for _, a := range p.Attributes {
		if a.Location < location {
			n += int(a.Size)
		}
	}
	return n * 4
}

// Setter uploads uniform values by name.
type Setter interface {
	SetBool(name string, v bool)
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec3(name string, v mgl32.Vec3)
	SetMat4(name string, v mgl32.Mat4)
}
