package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowInput handles the demo's window input through GLFW.
//
// Escape closes the window, R requests a shader reload, and framebuffer
// resizes update the GL viewport.
type WindowInput struct {
	window *glfw.Window
	reload bool
}

// NewWindowInput installs the key and framebuffer callbacks on window.
func NewWindowInput(window *glfw.Window) *WindowInput {
	in := &WindowInput{window: window}

	window.SetKeyCallback(in.keyCallback)
	window.SetFramebufferSizeCallback(in.framebufferSizeCallback)

	return in
}

// Update polls the keys that act while held. Call once per frame.
func (in *WindowInput) Update() {
	if in.window.GetKey(glfw.KeyEscape) == glfw.Press {
		in.window.SetShouldClose(true)
	}
}

// ReloadRequested reports whether R was pressed since the last call.
func (in *WindowInput) ReloadRequested() bool {
	r := in.reload
	in.reload = false
	return r
}

func (in *WindowInput) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyR && action == glfw.Press {
		in.reload = true
	}
}

func (in *WindowInput) framebufferSizeCallback(w *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}
