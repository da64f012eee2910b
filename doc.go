/*
Package shader loads, compiles and links GLSL shader programs from source
files against an explicit graphics backend.

# Overview

The pipeline has three steps, each owning what it creates:

	LoadSource   file -> *Source (NUL-terminated, single owner)
	Unit         *Source -> compiled shader object
	Program      vertex Unit + fragment Unit -> linked program

Failures never panic and never abort construction. A Program records every
load, compile and link failure, writes each one to its diagnostic sink as it
is discovered, and lowers a single setup flag. The caller decides what to do
when SetupOK returns false.

# Quick Start

	backend := opengl.New() // after gl.Init on the render thread

	prog := shader.NewProgram(backend, "resources/basicvertex.glsl", "resources/basicfragment.glsl")
	defer prog.Delete()
	if !prog.SetupOK() {
	    return prog.Err()
	}

	for !window.ShouldClose() {
	    prog.Use()
	    prog.SetFloat("yDelta", yDelta)
	    // bind vertex array, draw, swap, poll
	}

# Ownership

  - A Source belongs to whoever loaded it. A Unit takes the Source it loads
    and releases it in Delete.
  - A Unit's shader handle is created in NewUnit and released exactly once by
    Delete; further Delete calls are no-ops.
  - A Program deletes both of its Units once linking has been attempted. The
    linked program keeps its own copy of the compiled code in the backend.
  - A Program's handle is released exactly once by Delete.

# Backend

Every Unit and Program is given a Backend rather than relying on an implicit
current context. Backend calls are not goroutine-safe; all of them must run on
the thread that owns the graphics context. The backend/opengl package provides
the OpenGL 3.3 core implementation.

# Uniforms

SetBool, SetInt, SetFloat, SetVec2, SetVec3, SetVec4 and SetMat4 look up the
uniform location on every call. A name the program does not use resolves to
location -1, which the backend ignores; this is not an error.

# Hot Reload

A Watcher reports edits to the shader files without touching the backend.
A Reloader polls it on the render thread and swaps in a rebuilt Program only
when the rebuild passes setup, so a broken edit keeps the last good program on
screen:

	w, _ := shader.NewWatcher(vertPath, fragPath)
	defer w.Close()
	r := shader.NewReloader(prog, w)

	for !window.ShouldClose() {
	    r.Poll()
	    r.Program().Use()
	    // ...
	}

# Diagnostics

Failure reports go to os.Stderr unless WithDiagnostics is given:

	Error [Shader Setup]:
	0:7(1): error: syntax error, unexpected '}'

	Error [Program Linking]:
	error: linking with uncompiled/unspecialized shader
*/
package shader
