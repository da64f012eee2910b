package opengl

import "github.com/go-gl/gl/v3.3-core/gl"

const (
	bytesFloat32       = 4
	bytesUint32        = 4
	vertexPositionSize = 3 // x,y,z
)

// QuadVertices is a unit-half quad centred on the origin.
var QuadVertices = []float32{
	-0.5, 0.5, 0.0, // top left
	0.5, 0.5, 0.0, // top right
	0.5, -0.5, 0.0, // bottom right
	-0.5, -0.5, 0.0, // bottom left
}

// QuadIndices draws QuadVertices as two triangles.
var QuadIndices = []uint32{
	0, 1, 2,
	2, 3, 0,
}

// Mesh is an indexed, position-only mesh held in a vertex array object.
// Attribute 0 is a vec3 position.
type Mesh struct {
	vao, vbo uint32
	ebo      uint32
	count    int32
}

// NewMesh uploads vertices (three floats each) and indices to the GPU.
func NewMesh(vertices []float32, indices []uint32) *Mesh {
	m := &Mesh{count: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*bytesFloat32, gl.Ptr(vertices), gl.STATIC_DRAW)

	// The element buffer binding is recorded in the VAO.
	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*bytesUint32, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, vertexPositionSize, gl.FLOAT, false, vertexPositionSize*bytesFloat32, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return m
}

// Count returns the number of indices drawn.
func (m *Mesh) Count() int32 { return m.count }

// Draw binds the vertex array and issues an indexed triangle draw.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers.
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
