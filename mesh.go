package glint

import (
	"fmt"

	"github.com/glint-gfx/glint/driver"
)

// Mesh is an uploaded 2D vertex buffer, optionally indexed, ready to
// draw. Vertices are plain xy positions bound to attribute 0.
//
// Like Program, a Mesh belongs to the rendering context of the thread
// that created it.
type Mesh struct {
	d       driver.Driver
	vao     driver.VertexArray
	vbo     driver.Buffer
	ibo     driver.Buffer
	count   int32
	indexed bool
}

// Hardcoded demo geometry, xy pairs in clip space.
var (
	triangleVertices = []float32{
		-0.5, -0.5,
		0.0, 0.5,
		0.5, -0.5,
	}

	quadVertices = []float32{
		-0.5, -0.5,
		0.5, -0.5,
		0.5, 0.5,
		-0.5, 0.5,
	}

	quadIndices = []uint32{
		0, 1, 2,
		2, 3, 0,
	}
)

// NewTriangle uploads the demo triangle and draws it unindexed.
func NewTriangle(d driver.Driver) (*Mesh, error) {
	return newMesh(d, triangleVertices, nil)
}

// NewQuad uploads the demo quad as four vertices plus an index buffer.
func NewQuad(d driver.Driver) (*Mesh, error) {
	return newMesh(d, quadVertices, quadIndices)
}

// NewMesh uploads arbitrary xy vertex data. Pass nil indices for an
// unindexed mesh.
func NewMesh(d driver.Driver, vertices []float32, indices []uint32) (*Mesh, error) {
	if len(vertices) == 0 || len(vertices)%2 != 0 {
		return nil, fmt.Errorf("glint: vertex data must be non-empty xy pairs, got %d floats", len(vertices))
	}
	return newMesh(d, vertices, indices)
}

func newMesh(d driver.Driver, vertices []float32, indices []uint32) (*Mesh, error) {
	m := &Mesh{d: d}

	steps := []struct {
		call string
		fn   func()
	}{
		{"GenVertexArrays()", func() { m.vao = d.CreateVertexArray() }},
		{"BindVertexArray()", func() { d.BindVertexArray(m.vao) }},
		{"GenBuffers(vertex)", func() { m.vbo = d.CreateBuffer() }},
		{"BindBuffer(ARRAY_BUFFER)", func() { d.BindBuffer(driver.ArrayBuffer, m.vbo) }},
		{"BufferData(ARRAY_BUFFER)", func() {
			d.BufferDataFloat32(driver.ArrayBuffer, vertices, driver.StaticDraw)
		}},
		{"EnableVertexAttribArray(0)", func() { d.EnableVertexAttribArray(0) }},
		{"VertexAttribPointer(0)", func() {
			d.VertexAttribPointer(0, 2, driver.Float, false, 2*4, 0)
		}},
	}
	for _, step := range steps {
		if err := Check(d, step.call, step.fn); err != nil {
			m.release()
			return nil, err
		}
	}

	if len(indices) > 0 {
		err := Check(d, "BufferData(ELEMENT_ARRAY_BUFFER)", func() {
			m.ibo = d.CreateBuffer()
			d.BindBuffer(driver.ElementArrayBuffer, m.ibo)
			d.BufferDataUint32(driver.ElementArrayBuffer, indices, driver.StaticDraw)
		})
		if err != nil {
			m.release()
			return nil, err
		}
		m.indexed = true
		m.count = int32(len(indices))
	} else {
		m.count = int32(len(vertices) / 2)
	}

	return m, nil
}

// Bind makes the mesh's vertex state current.
func (m *Mesh) Bind() error {
	return Check(m.d, "BindVertexArray()", func() { m.d.BindVertexArray(m.vao) })
}

// Draw binds the mesh and issues its draw call: DrawElements when an
// index buffer was uploaded, DrawArrays otherwise.
func (m *Mesh) Draw() error {
	if err := m.Bind(); err != nil {
		return err
	}
	if m.indexed {
		return Check(m.d, "DrawElements()", func() {
			m.d.DrawElements(driver.Triangles, m.count, driver.UnsignedInt, 0)
		})
	}
	return Check(m.d, "DrawArrays()", func() {
		m.d.DrawArrays(driver.Triangles, 0, m.count)
	})
}

// Delete releases the mesh's buffers and vertex array. Further calls are
// no-ops.
func (m *Mesh) Delete() error {
	if m.vao == 0 && m.vbo == 0 && m.ibo == 0 {
		return nil
	}
	return Check(m.d, "DeleteMesh()", func() { m.release() })
}

func (m *Mesh) release() {
	if m.ibo != 0 {
		m.d.DeleteBuffer(m.ibo)
		m.ibo = 0
	}
	if m.vbo != 0 {
		m.d.DeleteBuffer(m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		m.d.DeleteVertexArray(m.vao)
		m.vao = 0
	}
}
