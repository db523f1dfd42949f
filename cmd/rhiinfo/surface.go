// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package main

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gviegas/rhi/rhi"
)

// surface implements rhi.Surface using a GLFW window.
type surface struct {
	win *glfw.Window
}

func (s surface) MakeContextCurrent() { s.win.MakeContextCurrent() }
func (s surface) SwapBuffers() { s.win.SwapBuffers() }
func (s surface) SwapInterval(n int) { glfw.SwapInterval(n) }
func (s surface) FramebufferSize() (int, int) { return s.win.GetFramebufferSize() }

// windowHandle returns the handle of win for rhi.Context
// and rhi.Device.CreateSwapChain.
func windowHandle(win *glfw.Window) rhi.WindowHandle {
	return rhi.WindowHandle{
		NativeWindowHandle: uintptr(win.Handle()),
		Surface:            surface{win},
	}
}

// newWindow creates a window with a core profile context.
// It must be called from the main thread.
func newWindow(cfg *rhi.Config) (*glfw.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}
	return glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
}

func procAddress(name string) unsafe.Pointer { return glfw.GetProcAddress(name) }
