package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/shader"
)

var (
	// Whitesmoke is the default clear colour.
	Whitesmoke = mgl32.Vec4{0.9375, 0.9375, 0.9375, 1}

	// Lilac is the default shape colour.
	Lilac = mgl32.Vec4{0.784, 0.635, 0.784, 1}
)

// Uniform names the demo shaders read.
const (
	UniformYDelta = "yDelta"
	UniformTint   = "tint"
	UniformModel  = "model"
)

// Scene draws a single mesh with a shader program each frame.
type Scene struct {
	Mesh  *Mesh
	Clear mgl32.Vec4
	Tint  mgl32.Vec4
	Model mgl32.Mat4 // applied before the yDelta offset
}

// NewScene returns a scene for mesh with the default colours.
func NewScene(mesh *Mesh) *Scene {
	return &Scene{
		Mesh:  mesh,
		Clear: Whitesmoke,
		Tint:  Lilac,
		Model: mgl32.Ident4(),
	}
}

// Draw renders one frame: clear, activate p, push uniforms, draw the mesh.
// Presenting the frame and polling events are left to the caller.
func (s *Scene) Draw(p *shader.Program, yDelta float32) {
	gl.ClearColor(s.Clear[0], s.Clear[1], s.Clear[2], s.Clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	s.apply(p, yDelta)

	s.Mesh.Draw()
}

// apply activates p and pushes the per-frame uniforms.
func (s *Scene) apply(p *shader.Program, yDelta float32) {
	p.Use()
	p.SetMat4(UniformModel, s.Model)
	p.SetFloat(UniformYDelta, yDelta)
	p.SetVec4(UniformTint, s.Tint)
}
