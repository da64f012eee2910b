package shader

import "fmt"

// constErr is an error that can be declared as a constant.
type constErr string

func (e constErr) Error() string { return string(e) }

const (
	// ErrFileOpen indicates that a shader source file could not be opened.
	ErrFileOpen constErr = "failed to open shader source"

	// ErrFileRead indicates that a shader source file was opened but could
	// not be read in full.
	ErrFileRead constErr = "failed to read shader source"

	// ErrCompile indicates that the backend rejected a shader's source.
	ErrCompile constErr = "failed to compile shader"

	// ErrLink indicates that the backend rejected a program.
	ErrLink constErr = "failed to link program"
)

// LoadError reports a failed source load.
type LoadError struct {
	Op   string // "open" or "read"
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns both the sentinel for the failing step and the
// underlying cause, so errors.Is matches ErrFileOpen as well as fs.ErrNotExist.
func (e *LoadError) Unwrap() []error {
	if e.Op == "open" {
		return []error{ErrFileOpen, e.Err}
	}
	return []error{ErrFileRead, e.Err}
}

// CompileError carries the backend's diagnostic log for a rejected shader.
type CompileError struct {
	Kind Kind
	Path string
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%v (%s shader %s): %s", ErrCompile, e.Kind, e.Path, e.Log)
}

func (e *CompileError) Unwrap() error { return ErrCompile }

// LinkError carries the backend's diagnostic log for a rejected program.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("%v: %s", ErrLink, e.Log)
}

func (e *LinkError) Unwrap() error { return ErrLink }
