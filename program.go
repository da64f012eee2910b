package shader

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked vertex/fragment shader pair.
type Program struct {
	backend      Backend
	handle       Handle
	vertexPath   string
	fragmentPath string
	setupOK      bool
	errs         []error
	deleted      bool
	cfg          config
}

// NewProgram builds a program from a vertex and a fragment source file.
//
// Construction never fails outright. Each load, compile or link failure is
// written to the diagnostic sink as it happens and lowers the setup flag;
// check SetupOK before rendering with the program. Linking is attempted even
// when a shader failed to compile. The intermediate shader objects are
// deleted once linking has been attempted.
func NewProgram(b Backend, vertexPath, fragmentPath string, opts ...Option) *Program {
	return newProgram(b, vertexPath, fragmentPath, applyOptions(opts))
}

func newProgram(b Backend, vertexPath, fragmentPath string, cfg config) *Program {
	p := &Program{
		backend:      b,
		handle:       b.CreateProgram(),
		vertexPath:   vertexPath,
		fragmentPath: fragmentPath,
		setupOK:      true,
		cfg:          cfg,
	}

	vert := newUnit(b, Vertex, vertexPath, cfg)
	defer vert.Delete()
	frag := newUnit(b, Fragment, fragmentPath, cfg)
	defer frag.Delete()

	for _, u := range []*Unit{vert, frag} {
		if err := u.Compile(); err != nil {
			p.fail("Shader Setup", err)
		}
	}

	b.AttachShader(p.handle, vert.ID())
	b.AttachShader(p.handle, frag.ID())
	b.LinkProgram(p.handle)

	if !b.ProgramLinked(p.handle) {
		buf := make([]byte, cfg.logSize)
		n := b.ProgramInfoLog(p.handle, buf)
		p.fail("Program Linking", &LinkError{Log: string(buf[:n])})
	}

	return p
}

func (p *Program) fail(stage string, err error) {
	p.setupOK = false
	p.errs = append(p.errs, err)

	var text string
	var ce *CompileError
	var le *LinkError
	switch {
	case errors.As(err, &ce):
		text = ce.Log
	case errors.As(err, &le):
		text = le.Log
	default:
		text = err.Error()
	}
	fmt.Fprintf(p.cfg.diag, "Error [%s]:\n%s\n", stage, text)
}

// SetupOK reports whether both shaders loaded and compiled and the program
// linked.
func (p *Program) SetupOK() bool { return p.setupOK }

// Err returns every setup failure joined, or nil.
func (p *Program) Err() error { return errors.Join(p.errs...) }

// ID returns the backend program handle.
func (p *Program) ID() Handle { return p.handle }

// Paths returns the vertex and fragment source paths.
func (p *Program) Paths() (vertex, fragment string) {
	return p.vertexPath, p.fragmentPath
}

// Use makes this the current program. It does nothing after Delete.
// It does not check SetupOK; rendering with a program that failed setup
// draws nothing useful.
func (p *Program) Use() {
	if p.deleted {
		return
	}
	p.backend.UseProgram(p.handle)
}

// Rebuild constructs a new program from the same files and options.
// The receiver is left untouched.
func (p *Program) Rebuild() *Program {
	return newProgram(p.backend, p.vertexPath, p.fragmentPath, p.cfg)
}

// Delete releases the program handle. Subsequent calls do nothing.
func (p *Program) Delete() {
	if p.deleted {
		return
	}
	p.deleted = true
	p.backend.DeleteProgram(p.handle)
}

// Deleted reports whether Delete has been called.
func (p *Program) Deleted() bool { return p.deleted }

// Uniform setters look the location up on every call and forward a
// location of -1 (unknown name) to the backend, which ignores it.
// They apply to the current program, so call Use first. After Delete they
// do nothing.

func (p *Program) uniform(name string, upload func(loc int32)) {
	if p.deleted {
		return
	}
	upload(p.backend.UniformLocation(p.handle, name))
}

// SetBool sets a bool uniform.
func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.uniform(name, func(loc int32) { p.backend.Uniform1i(loc, i) })
}

// SetInt sets an int uniform.
func (p *Program) SetInt(name string, v int32) {
	p.uniform(name, func(loc int32) { p.backend.Uniform1i(loc, v) })
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	p.uniform(name, func(loc int32) { p.backend.Uniform1f(loc, v) })
}

// SetVec2 sets a vec2 uniform.
func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	p.uniform(name, func(loc int32) { p.backend.Uniform2f(loc, v[0], v[1]) })
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	p.uniform(name, func(loc int32) { p.backend.Uniform3f(loc, v[0], v[1], v[2]) })
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	p.uniform(name, func(loc int32) { p.backend.Uniform4f(loc, v[0], v[1], v[2], v[3]) })
}

// SetMat4 sets a mat4 uniform (column-major).
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	p.uniform(name, func(loc int32) { p.backend.UniformMatrix4(loc, m) })
}
