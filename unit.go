package shader

import (
	"fmt"

	"github.com/docker/go-units"
)

// Unit owns a single backend shader object and the source it compiles.
type Unit struct {
	backend  Backend
	handle   Handle
	kind     Kind
	path     string
	source   *Source
	loadErr  error
	compiled bool
	deleted  bool
	cfg      config
}

// NewUnit allocates a shader object of the given kind and loads its source
// from path.
//
// A load failure does not prevent construction: the unit keeps its handle,
// LoadOK reports false and Compile returns the load error.
func NewUnit(b Backend, kind Kind, path string, opts ...Option) *Unit {
	return newUnit(b, kind, path, applyOptions(opts))
}

func newUnit(b Backend, kind Kind, path string, cfg config) *Unit {
	u := &Unit{
		backend: b,
		handle:  b.CreateShader(kind),
		kind:    kind,
		path:    path,
		cfg:     cfg,
	}

	src, err := LoadSource(path)
	if err != nil {
		u.loadErr = err
		return u
	}
	u.source = src

	if cfg.verbose {
		fmt.Fprintf(cfg.diag, "Loaded %s shader %s (%s)\n",
			kind, path, units.HumanSize(float64(src.Len()-1)))
	}
	return u
}

// ID returns the backend handle.
func (u *Unit) ID() Handle { return u.handle }

// Kind returns the pipeline stage of the unit.
func (u *Unit) Kind() Kind { return u.kind }

// Path returns the file the source was loaded from.
func (u *Unit) Path() string { return u.path }

// LoadOK reports whether the source file was loaded.
func (u *Unit) LoadOK() bool { return u.source != nil && u.loadErr == nil }

// LoadErr returns the error from loading the source, if any.
func (u *Unit) LoadErr() error { return u.loadErr }

// Compiled reports whether the last Compile succeeded.
func (u *Unit) Compiled() bool { return u.compiled }

// Source returns the owned source buffer, or nil if loading failed or the
// unit was deleted.
func (u *Unit) Source() *Source { return u.source }

// Compile submits the source to the backend compiler.
//
// It returns the load error without touching the backend when the source
// was never loaded, and a *CompileError holding the (possibly truncated)
// backend log when compilation fails.
func (u *Unit) Compile() error {
	u.compiled = false
	if u.deleted {
		return fmt.Errorf("compile %s shader %s: unit deleted", u.kind, u.path)
	}
	if !u.LoadOK() {
		return u.loadErr
	}

	u.backend.ShaderSource(u.handle, u.source)
	u.backend.CompileShader(u.handle)
	if u.backend.ShaderCompiled(u.handle) {
		u.compiled = true
		return nil
	}

	buf := make([]byte, u.cfg.logSize)
	n := u.backend.ShaderInfoLog(u.handle, buf)
	return &CompileError{Kind: u.kind, Path: u.path, Log: string(buf[:n])}
}

// Delete releases the source buffer and then the backend handle.
// Subsequent calls do nothing.
func (u *Unit) Delete() {
	if u.deleted {
		return
	}
	u.deleted = true
	u.compiled = false

	if u.source != nil {
		u.source.Release()
		u.source = nil
	}
	u.backend.DeleteShader(u.handle)
}
