// Package gfx hosts shader programs on an OpenGL 3.3 core context: it
// compiles and links them, uploads textures and vertex data and issues
// draw calls.
//
// Everything except Model-style pure helpers requires a current GL context
// on the calling thread.
package gfx

import (
	"log"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/hexaflex/chess2d/shader"
)

// Program is a linked GL program with cached uniform locations.
type Program struct {
	desc      *shader.Program
	id        uint32
	locations map[string]int32
}

var (
	_ shader.Setter = &Program{}
	_ Resource      = &Program{}
)

// NewProgram creates a program for desc. It is compiled by Startup.
func NewProgram(desc *shader.Program) *Program {
	return &Program{desc: desc}
}

// Name returns the program name.
func (p *Program) Name() string {
	return p.desc.Name
}

// Startup compiles and links the program and caches the location of
// every uniform it declares.
func (p *Program) Startup() error {
	id, err := linkProgram(p.desc.Vertex, p.desc.Fragment)
	if err != nil {
		return errors.Wrapf(err, "program %s", p.desc.Name)
	}

	p.id = id
	p.locations = make(map[string]int32, len(p.desc.Uniforms))

	for _, u := range p.desc.Uniforms {
		loc := gl.GetUniformLocation(id, glStr(u.Name))
		if loc < 0 {
			// Unused uniforms are optimized away by the driver.
			log.Println("program", p.desc.Name, "uniform", u.Name, "is inactive")
		}
		p.locations[u.Name] = loc
	}

	return nil
}

// Shutdown deletes the program.
func (p *Program) Shutdown() error {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
	return nil
}

// Use makes p the current program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// location returns the cached location for name, or -1, which GL ignores.
func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	return -1
}

// SetBool sets a bool uniform. p must be in use.
func (p *Program) SetBool(name string, v bool) {
	var n int32
	if v {
		n = 1
	}
	gl.Uniform1i(p.location(name), n)
}

// SetInt sets an int or sampler uniform. p must be in use.
func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.location(name), v)
}

// SetFloat sets a float uniform. p must be in use.
func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

// SetVec3 sets a vec3 uniform. p must be in use.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3fv(p.location(name), 1, &v[0])
}

// SetMat4 sets a mat4 uniform. p must be in use.
func (p *Program) SetMat4(name string, v mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &v[0])
}
