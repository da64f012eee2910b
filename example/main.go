// Example opens a window and renders a bobbing quad with a shader program
// loaded from resources/.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Press R to reload the shaders, Escape to quit. With -watch the shaders are
// reloaded whenever their files change; a broken edit keeps the last working
// program on screen.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/dc0d/onexit"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/shader"
	"github.com/go-theft-auto/shader/backend/opengl"
)

const (
	windowWidth  = 480
	windowHeight = 480
	windowTitle  = "GL Demo 2"
)

var errSetup = errors.New("shader program setup failed")

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	vertPath := flag.String("vert", "example/resources/basicvertex.glsl", "vertex shader source")
	fragPath := flag.String("frag", "example/resources/basicfragment.glsl", "fragment shader source")
	watch := flag.Bool("watch", false, "reload shaders when their files change")
	verbose := flag.Bool("v", false, "report shader loads and GL errors")
	flag.Parse()

	if err := run(*vertPath, *fragPath, *watch, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(vertPath, fragPath string, watch, verbose bool) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	backend := opengl.New()

	mesh := opengl.NewMesh(opengl.QuadVertices, opengl.QuadIndices)
	defer mesh.Delete()

	program := shader.NewProgram(backend, vertPath, fragPath, shader.WithVerbose(verbose))
	if !program.SetupOK() {
		program.Delete()
		fmt.Fprintln(os.Stderr, "Error [Shader Check]:\nCheck for program setup failed.")
		return errSetup
	}

	var watcher *shader.Watcher
	if watch {
		watcher, err = shader.NewWatcher(vertPath, fragPath)
		if err != nil {
			program.Delete()
			return fmt.Errorf("watch shaders: %w", err)
		}
		onexit.Register(func() { watcher.Close() })
		defer watcher.Close()
	}

	reloader := shader.NewReloader(program, watcher)
	defer func() { reloader.Program().Delete() }()

	input := opengl.NewWindowInput(window)
	scene := opengl.NewScene(mesh)

	glfw.SwapInterval(1) // vsync
	gl.Viewport(0, 0, windowWidth, windowHeight)

	var yDelta float32
	for !window.ShouldClose() {
		input.Update()

		if input.ReloadRequested() {
			reloader.Request()
		}
		if reloader.Poll() && verbose {
			fmt.Fprintln(os.Stderr, "Reloaded shaders")
		}
		if watcher != nil {
			if err := watcher.Err(); err != nil {
				fmt.Fprintln(os.Stderr, "watch shaders:", err)
			}
		}

		scene.Draw(reloader.Program(), yDelta)

		if err := backend.Error(); err != nil && verbose {
			fmt.Fprintln(os.Stderr, "gl:", err)
		}

		window.SwapBuffers()

		yDelta = float32(math.Sin(glfw.GetTime())) / 2

		glfw.PollEvents()
	}

	return nil
}
