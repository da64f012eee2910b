package shader

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestUnit_CompileValid(t *testing.T) {
	fb := newFakeBackend()
	path := writeFile(t, t.TempDir(), "v.glsl", validVertex)

	u := NewUnit(fb, Vertex, path)
	defer u.Delete()

	if !u.LoadOK() {
		t.Fatalf("Expected source to load, got %v", u.LoadErr())
	}
	if err := u.Compile(); err != nil {
		t.Fatalf("Expected compile to succeed, got %v", err)
	}
	if !u.Compiled() {
		t.Error("Expected Compiled() after successful compile")
	}
	if fb.shaders[u.ID()].kind != Vertex {
		t.Errorf("Expected vertex shader object, got %v", fb.shaders[u.ID()].kind)
	}
	if fb.shaders[u.ID()].src != validVertex {
		t.Error("Expected backend to receive the file contents")
	}
}

func TestUnit_CompileInvalid(t *testing.T) {
	fb := newFakeBackend()
	path := writeFile(t, t.TempDir(), "f.glsl", brokenFragment)

	u := NewUnit(fb, Fragment, path)
	defer u.Delete()

	err := u.Compile()
	if !errors.Is(err, ErrCompile) {
		t.Fatalf("Expected ErrCompile, got %v", err)
	}

	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected *CompileError, got %T", err)
	}
	if ce.Kind != Fragment || ce.Path != path {
		t.Errorf("Unexpected error fields: %+v", ce)
	}
	if !strings.Contains(ce.Log, "0:8(1)") {
		t.Errorf("Expected log to point at line 8, got %q", ce.Log)
	}
	if u.Compiled() {
		t.Error("Expected Compiled() to be false")
	}
}

func TestUnit_LogTruncated(t *testing.T) {
	fb := newFakeBackend()
	path := writeFile(t, t.TempDir(), "f.glsl", brokenFragment)

	u := NewUnit(fb, Fragment, path, WithLogSize(8))
	defer u.Delete()

	var ce *CompileError
	if err := u.Compile(); !errors.As(err, &ce) {
		t.Fatalf("Expected *CompileError, got %v", err)
	}
	if len(ce.Log) != 8 {
		t.Errorf("Expected log truncated to 8 bytes, got %q", ce.Log)
	}
}

func TestUnit_MissingSource(t *testing.T) {
	fb := newFakeBackend()

	u := NewUnit(fb, Vertex, filepath.Join(t.TempDir(), "missing.glsl"))

	if u.LoadOK() {
		t.Error("Expected LoadOK() to be false")
	}
	if u.ID() == 0 {
		t.Error("Expected a shader handle even when loading fails")
	}

	err := u.Compile()
	if !errors.Is(err, ErrFileOpen) {
		t.Errorf("Expected ErrFileOpen from Compile, got %v", err)
	}
	if fb.compiles != 0 {
		t.Errorf("Expected no backend compile, got %d", fb.compiles)
	}

	u.Delete()
	if fb.shaders[u.ID()].deleted != 1 {
		t.Errorf("Expected handle released once, got %d", fb.shaders[u.ID()].deleted)
	}
	if err := fb.Error(); err != nil {
		t.Errorf("Unexpected backend error: %v", err)
	}
}

func TestUnit_DoubleDelete(t *testing.T) {
	fb := newFakeBackend()
	path := writeFile(t, t.TempDir(), "v.glsl", validVertex)

	u := NewUnit(fb, Vertex, path)
	src := u.Source()
	if src == nil {
		t.Fatal("Expected unit to own a source")
	}

	u.Delete()
	u.Delete()

	if got := fb.shaders[u.ID()].deleted; got != 1 {
		t.Errorf("Expected DeleteShader once, got %d", got)
	}
	if !src.Released() {
		t.Error("Expected source released by Delete")
	}
	if u.Source() != nil {
		t.Error("Expected unit to drop its source")
	}
	if err := fb.Error(); err != nil {
		t.Errorf("Unexpected backend error: %v", err)
	}

	if err := u.Compile(); err == nil {
		t.Error("Expected Compile after Delete to fail")
	}
	if fb.compiles != 0 {
		t.Errorf("Expected no backend compile after Delete, got %d", fb.compiles)
	}
}

func TestUnit_VerboseReport(t *testing.T) {
	fb := newFakeBackend()
	path := writeFile(t, t.TempDir(), "v.glsl", "void main() {\n}\n")

	var diag bytes.Buffer
	u := NewUnit(fb, Vertex, path, WithVerbose(true), WithDiagnostics(&diag))
	defer u.Delete()

	out := diag.String()
	if !strings.Contains(out, "Loaded vertex shader") || !strings.Contains(out, "16B") {
		t.Errorf("Unexpected verbose report: %q", out)
	}
}
