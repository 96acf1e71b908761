package gfx

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/hexaflex/chess2d/quad"
	"github.com/hexaflex/chess2d/shader"
)

// Mesh is interleaved triangle list vertex data laid out for a program.
type Mesh struct {
	name   string
	layout *shader.Program
	data   []float32
	count  int32
	vao    uint32
	vbo    uint32
}

var _ Resource = &Mesh{}

// NewMesh creates a mesh whose vertices follow the attribute layout of the
// given program. It is uploaded by Startup.
func NewMesh(name string, layout *shader.Program, data []float32) *Mesh {
	return &Mesh{
		name:   name,
		layout: layout,
		data:   data,
		count:  int32(len(data)*4) / layout.Stride(),
	}
}

// NewQuadMesh creates a unit quad for the textured-quad program, cut from
// the pixel rectangle texRect of a sheet with the given size.
func NewQuadMesh(name string, texRect mgl32.Vec4, width, height float32) *Mesh {
	vs := quad.Vertices(texRect, width, height)
	return NewMesh(name, quad.Program, quad.Flatten(vs[:]))
}

// NewRectMesh creates a position-only unit quad for layout.
func NewRectMesh(name string, layout *shader.Program) *Mesh {
	data := make([]float32, 0, len(quad.UnitQuad)*2)
	for _, p := range quad.UnitQuad {
		data = append(data, p[0], p[1])
	}
	return NewMesh(name, layout, data)
}

// Name returns the mesh name.
func (m *Mesh) Name() string {
	return m.name
}

// Count returns the number of vertices.
func (m *Mesh) Count() int32 {
	return m.count
}

// Startup creates the vertex array and uploads the vertex data.
func (m *Mesh) Startup() error {
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.data)*4, gl.Ptr(m.data), gl.STATIC_DRAW)

	stride := m.layout.Stride()
	for _, a := range m.layout.Attributes {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointer(a.Location, a.Size, gl.FLOAT, false, stride, gl.PtrOffset(m.layout.Offset(a.Location)))
	}

	gl.BindVertexArray(0)
	return nil
}

// Shutdown deletes the vertex array and buffer.
func (m *Mesh) Shutdown() error {
	if m.vao != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao, m.vbo = 0, 0
	}
	return nil
}

// Draw issues the draw call. The caller binds program and textures.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
}
