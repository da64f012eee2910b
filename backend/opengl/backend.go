// Package opengl provides the OpenGL 3.3 core backend for the shader package,
// plus the mesh, scene and window input pieces the demo host renders with.
package opengl

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/shader"
)

// maxDrainedErrors bounds Error's loop; a lost context can report forever.
const maxDrainedErrors = 16

// Backend implements shader.Backend on the OpenGL context current on the
// calling thread. gl.Init must have succeeded before any method is called.
type Backend struct{}

var _ shader.Backend = (*Backend)(nil)

// New returns a backend for the current context.
func New() *Backend {
	return &Backend{}
}

func shaderType(kind shader.Kind) uint32 {
	switch kind {
	case shader.Fragment:
		return gl.FRAGMENT_SHADER
	default:
		return gl.VERTEX_SHADER
	}
}

// CreateShader allocates a vertex or fragment shader object.
func (b *Backend) CreateShader(kind shader.Kind) shader.Handle {
	return shader.Handle(gl.CreateShader(shaderType(kind)))
}

// DeleteShader releases a shader object.
func (b *Backend) DeleteShader(h shader.Handle) {
	gl.DeleteShader(uint32(h))
}

// ShaderSource uploads src as the shader's only source string.
func (b *Backend) ShaderSource(h shader.Handle, src *shader.Source) {
	csource, free := gl.Strs(src.CString())
	gl.ShaderSource(uint32(h), 1, csource, nil)
	free()
}

// CompileShader compiles the uploaded source.
func (b *Backend) CompileShader(h shader.Handle) {
	gl.CompileShader(uint32(h))
}

// ShaderCompiled reports GL_COMPILE_STATUS.
func (b *Backend) ShaderCompiled(h shader.Handle) bool {
	var status int32
	gl.GetShaderiv(uint32(h), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

// ShaderInfoLog copies at most len(buf)-1 bytes of the compile log into buf,
// NUL-terminated by GL, and returns the number of bytes written without the
// terminator.
func (b *Backend) ShaderInfoLog(h shader.Handle, buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	var n int32
	gl.GetShaderInfoLog(uint32(h), int32(len(buf)), &n, &buf[0])
	return int(n)
}

// CreateProgram allocates a program object.
func (b *Backend) CreateProgram() shader.Handle {
	return shader.Handle(gl.CreateProgram())
}

// DeleteProgram releases a program object.
func (b *Backend) DeleteProgram(h shader.Handle) {
	gl.DeleteProgram(uint32(h))
}

// AttachShader attaches sh to program.
func (b *Backend) AttachShader(program, sh shader.Handle) {
	gl.AttachShader(uint32(program), uint32(sh))
}

// LinkProgram links the attached shaders.
func (b *Backend) LinkProgram(h shader.Handle) {
	gl.LinkProgram(uint32(h))
}

// ProgramLinked reports GL_LINK_STATUS.
func (b *Backend) ProgramLinked(h shader.Handle) bool {
	var status int32
	gl.GetProgramiv(uint32(h), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

// ProgramInfoLog is ShaderInfoLog for the link log.
func (b *Backend) ProgramInfoLog(h shader.Handle, buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	var n int32
	gl.GetProgramInfoLog(uint32(h), int32(len(buf)), &n, &buf[0])
	return int(n)
}

// UseProgram makes h the current program.
func (b *Backend) UseProgram(h shader.Handle) {
	gl.UseProgram(uint32(h))
}

// UniformLocation returns the location of the named uniform in h, or -1
// when the program has no active uniform of that name.
func (b *Backend) UniformLocation(h shader.Handle, name string) int32 {
	return gl.GetUniformLocation(uint32(h), gl.Str(name+"\x00"))
}

// Uniform1i sets an int or bool uniform of the current program.
// Like every Uniform* setter here, GL ignores a location of -1.
func (b *Backend) Uniform1i(loc int32, v int32) { gl.Uniform1i(loc, v) }

// Uniform1f sets a float uniform of the current program.
func (b *Backend) Uniform1f(loc int32, v float32) { gl.Uniform1f(loc, v) }

// Uniform2f sets a vec2 uniform of the current program.
func (b *Backend) Uniform2f(loc int32, x, y float32) { gl.Uniform2f(loc, x, y) }

// Uniform3f sets a vec3 uniform of the current program.
func (b *Backend) Uniform3f(loc int32, x, y, z float32) {
	gl.Uniform3f(loc, x, y, z)
}

// Uniform4f sets a vec4 uniform of the current program.
func (b *Backend) Uniform4f(loc int32, x, y, z, w float32) {
	gl.Uniform4f(loc, x, y, z, w)
}

// UniformMatrix4 uploads m in mgl32's column-major order.
func (b *Backend) UniformMatrix4(loc int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

// Error drains glGetError and returns the collected codes as GLError values,
// joined, or nil when no error was pending.
func (b *Backend) Error() error {
	var errs []error
	for i := 0; i < maxDrainedErrors; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		errs = append(errs, GLError(code))
	}
	return errors.Join(errs...)
}

// GLError is an OpenGL error code.
type GLError uint32

var glErrorNames = map[GLError]string{
	0x500: "GL_INVALID_ENUM",
	0x501: "GL_INVALID_VALUE",
	0x502: "GL_INVALID_OPERATION",
	0x503: "GL_STACK_OVERFLOW",
	0x504: "GL_STACK_UNDERFLOW",
	0x505: "GL_OUT_OF_MEMORY",
	0x506: "GL_INVALID_FRAMEBUFFER_OPERATION",
	0x507: "GL_CONTEXT_LOST",
}

// Error returns the symbolic GL name, or the hex code when it is unknown.
func (e GLError) Error() string {
	if name, ok := glErrorNames[e]; ok {
		return name
	}
	return fmt.Sprintf("GL_ERROR UNKNOWN: %#x", uint32(e))
}
