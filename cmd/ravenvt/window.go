package main

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/javanhut/ravenvt/assets"
)

func init() {
	// GLFW and the GL context it creates must be driven from one OS thread.
	runtime.LockOSThread()
}

// appWindow wraps a GLFW window with its OpenGL context.
type appWindow struct {
	win    *glfw.Window
	width  int
	height int
}

func newAppWindow(width, height int, title string) (*appWindow, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("ravenvt: init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("ravenvt: create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("ravenvt: init gl: %w", err)
	}

	glfw.SwapInterval(1)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	if icons := assets.RenderIconSizes(); len(icons) > 0 {
		win.SetIcon(icons)
	}

	return &appWindow{win: win, width: width, height: height}, nil
}

func (w *appWindow) shouldClose() bool { return w.win.ShouldClose() }

func (w *appWindow) swap() { w.win.SwapBuffers() }

func (w *appWindow) framebufferSize() (int, int) { return w.win.GetFramebufferSize() }

func (w *appWindow) destroy() {
	w.win.Destroy()
	glfw.Terminate()
}
