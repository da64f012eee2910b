package shader

import "github.com/go-gl/mathgl/mgl32"

// Handle is an opaque backend identifier for a shader or program object.
type Handle uint32

// Kind selects the pipeline stage a shader object is compiled for.
type Kind int

const (
	Vertex Kind = iota
	Fragment
)

func (k Kind) String() string {
	switch k {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Backend is the graphics API surface the pipeline depends on.
// Every Unit and Program receives it explicitly; there is no ambient context.
// Implementations are not safe for concurrent use and must be called from the
// thread that owns the graphics context.
type Backend interface {
	CreateShader(kind Kind) Handle
	DeleteShader(shader Handle)
	// ShaderSource uploads a NUL-terminated source.
	ShaderSource(shader Handle, src *Source)
	CompileShader(shader Handle)
	ShaderCompiled(shader Handle) bool
	// ShaderInfoLog copies at most len(buf) bytes of the log into buf and
	// returns the number of bytes written, excluding any terminator.
	ShaderInfoLog(shader Handle, buf []byte) int

	CreateProgram() Handle
	DeleteProgram(program Handle)
	AttachShader(program, shader Handle)
	LinkProgram(program Handle)
	ProgramLinked(program Handle) bool
	ProgramInfoLog(program Handle, buf []byte) int
	UseProgram(program Handle)

	// UniformLocation returns -1 for names the program does not use.
	UniformLocation(program Handle, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform2f(location int32, x, y float32)
	Uniform3f(location int32, x, y, z float32)
	Uniform4f(location int32, x, y, z, w float32)
	UniformMatrix4(location int32, m mgl32.Mat4)

	// Error drains the backend's error state and returns nil when it is clean.
	Error() error
}
