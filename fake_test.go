package shader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const validVertex = `#version 330 core
layout (location = 0) in vec3 aPos;

uniform float yDelta;

void main() {
    gl_Position = vec4(aPos.x, aPos.y + yDelta, aPos.z, 1.0);
}
`

const validFragment = `#version 330 core
out vec4 FragColor;

uniform vec4 tint;
uniform bool useTint;

void main() {
    FragColor = vec4(0.784, 0.635, 0.784, 1.0);
}
`

// missing semicolon on line 8
const brokenFragment = `#version 330 core
out vec4 FragColor;

uniform vec4 tint;
uniform bool useTint;

void main() {
    FragColor = vec4(0.784, 0.635, 0.784, 1.0)
}
`

type fakeShader struct {
	kind     Kind
	src      string
	compiled bool
	log      string
	deleted  int
}

type fakeProgram struct {
	attached []Handle
	linked   bool
	log      string
	uniforms map[string]int32
	deleted  int
}

type uniformCall struct {
	location int32
	value    any
}

// fakeBackend records calls and enforces a small subset of GL rules. It
// "compiles" GLSL by requiring every statement line to end in ';', '{' or '}'.
type fakeBackend struct {
	next     Handle
	shaders  map[Handle]*fakeShader
	programs map[Handle]*fakeProgram
	current  Handle
	errs     []string

	compiles int
	lookups  []string
	uniforms []uniformCall
	draws    int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		shaders:  make(map[Handle]*fakeShader),
		programs: make(map[Handle]*fakeProgram),
	}
}

func (f *fakeBackend) alloc() Handle {
	f.next++
	return f.next
}

func (f *fakeBackend) fault(code string) { f.errs = append(f.errs, code) }

func (f *fakeBackend) shader(h Handle) *fakeShader {
	s, ok := f.shaders[h]
	if !ok || s.deleted > 0 {
		f.fault("GL_INVALID_VALUE")
		return nil
	}
	return s
}

func (f *fakeBackend) program(h Handle) *fakeProgram {
	p, ok := f.programs[h]
	if !ok || p.deleted > 0 {
		f.fault("GL_INVALID_VALUE")
		return nil
	}
	return p
}

func (f *fakeBackend) CreateShader(kind Kind) Handle {
	h := f.alloc()
	f.shaders[h] = &fakeShader{kind: kind}
	return h
}

func (f *fakeBackend) DeleteShader(h Handle) {
	s, ok := f.shaders[h]
	if !ok {
		f.fault("GL_INVALID_VALUE")
		return
	}
	s.deleted++
}

func (f *fakeBackend) ShaderSource(h Handle, src *Source) {
	s := f.shader(h)
	if s == nil {
		return
	}
	b := src.Bytes()
	if len(b) == 0 || b[len(b)-1] != 0 {
		f.fault("unterminated source")
		return
	}
	s.src = src.Text()
}

func (f *fakeBackend) CompileShader(h Handle) {
	s := f.shader(h)
	if s == nil {
		return
	}
	f.compiles++
	s.compiled, s.log = checkSyntax(s.src)
}

func checkSyntax(src string) (bool, string) {
	for i, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		if !strings.ContainsAny(line[len(line)-1:], ";{}") {
			return false, fmt.Sprintf("0:%d(1): error: syntax error, unexpected '}', expecting ';'", i+1)
		}
	}
	return true, ""
}

func (f *fakeBackend) ShaderCompiled(h Handle) bool {
	s := f.shader(h)
	return s != nil && s.compiled
}

func (f *fakeBackend) ShaderInfoLog(h Handle, buf []byte) int {
	s := f.shader(h)
	if s == nil {
		return 0
	}
	return copy(buf, s.log)
}

func (f *fakeBackend) CreateProgram() Handle {
	h := f.alloc()
	f.programs[h] = &fakeProgram{}
	return h
}

func (f *fakeBackend) DeleteProgram(h Handle) {
	p, ok := f.programs[h]
	if !ok {
		f.fault("GL_INVALID_VALUE")
		return
	}
	p.deleted++
	if f.current == h {
		f.current = 0
	}
}

func (f *fakeBackend) AttachShader(program, shader Handle) {
	p := f.program(program)
	if p == nil || f.shader(shader) == nil {
		return
	}
	p.attached = append(p.attached, shader)
}

func (f *fakeBackend) LinkProgram(h Handle) {
	p := f.program(h)
	if p == nil {
		return
	}
	p.linked = false
	p.uniforms = make(map[string]int32)
	if len(p.attached) != 2 {
		p.log = "error: program needs a vertex and a fragment shader"
		return
	}
	for _, sh := range p.attached {
		s := f.shaders[sh]
		if !s.compiled {
			p.log = "error: linking with uncompiled/unspecialized shader"
			return
		}
		for _, line := range strings.Split(s.src, "\n") {
			fields := strings.Fields(strings.TrimSuffix(strings.TrimSpace(line), ";"))
			if len(fields) == 3 && fields[0] == "uniform" {
				if _, ok := p.uniforms[fields[2]]; !ok {
					p.uniforms[fields[2]] = int32(len(p.uniforms))
				}
			}
		}
	}
	p.linked = true
	p.log = ""
}

func (f *fakeBackend) ProgramLinked(h Handle) bool {
	p := f.program(h)
	return p != nil && p.linked
}

func (f *fakeBackend) ProgramInfoLog(h Handle, buf []byte) int {
	p := f.program(h)
	if p == nil {
		return 0
	}
	return copy(buf, p.log)
}

func (f *fakeBackend) UseProgram(h Handle) {
	if f.program(h) == nil {
		return
	}
	f.current = h
}

func (f *fakeBackend) UniformLocation(h Handle, name string) int32 {
	f.lookups = append(f.lookups, name)
	p := f.program(h)
	if p == nil || !p.linked {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeBackend) uniform(loc int32, v any) {
	f.uniforms = append(f.uniforms, uniformCall{location: loc, value: v})
	if loc == -1 {
		return
	}
	if f.current == 0 {
		f.fault("GL_INVALID_OPERATION")
	}
}

func (f *fakeBackend) Uniform1i(loc int32, v int32)         { f.uniform(loc, v) }
func (f *fakeBackend) Uniform1f(loc int32, v float32)       { f.uniform(loc, v) }
func (f *fakeBackend) Uniform2f(loc int32, x, y float32)    { f.uniform(loc, mgl32.Vec2{x, y}) }
func (f *fakeBackend) Uniform3f(loc int32, x, y, z float32) { f.uniform(loc, mgl32.Vec3{x, y, z}) }
func (f *fakeBackend) Uniform4f(loc int32, x, y, z, w float32) {
	f.uniform(loc, mgl32.Vec4{x, y, z, w})
}
func (f *fakeBackend) UniformMatrix4(loc int32, m mgl32.Mat4) { f.uniform(loc, m) }

// drawElements stands in for the host's draw call.
func (f *fakeBackend) drawElements() {
	p, ok := f.programs[f.current]
	if f.current == 0 || !ok || !p.linked {
		f.fault("GL_INVALID_OPERATION")
		return
	}
	f.draws++
}

func (f *fakeBackend) Error() error {
	if len(f.errs) == 0 {
		return nil
	}
	err := errors.New(strings.Join(f.errs, ", "))
	f.errs = nil
	return err
}

// liveShaders counts shader objects not yet deleted.
func (f *fakeBackend) liveShaders() int {
	n := 0
	for _, s := range f.shaders {
		if s.deleted == 0 {
			n++
		}
	}
	return n
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
