// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package opengl

import (
	"fmt"

	"github.com/gviegas/rhi/rhi"
)

// swapChain implements rhi.SwapChain.
// It renders into the default framebuffer of the window's
// context.
type swapChain struct {
	rhi.ResourceBase
	d      *Device
	pass   rhi.RenderPass
	win    rhi.WindowHandle
	width  int
	height int
}

// CreateSwapChain creates a new swap chain that presents
// to win.Surface.
func (d *Device) CreateSwapChain(pass rhi.RenderPass, win rhi.WindowHandle) (rhi.SwapChain, error) {
	if pass == nil {
		return nil, fmt.Errorf("%w: swap chain without a render pass", rhi.ErrInvalidDescriptor)
	}
	if win.Surface == nil {
		return nil, fmt.Errorf("%w: swap chain without a surface", rhi.ErrInvalidDescriptor)
	}
	sc := &swapChain{
		d:    d,
		pass: pass,
		win:  win,
	}
	sc.ResizeBuffers()
	pass.AddRef()
	sc.InitResource(d, rhi.RSwapChain, &d.stats, sc.destroy)
	d.log.Debug("opengl: swap chain created", "width", sc.width, "height", sc.height)
	return sc, nil
}

func (sc *swapChain) destroy() {
	sc.pass.Release()
	sc.pass = nil
}

// Present swaps the window's buffers.
func (sc *swapChain) Present() { sc.win.Surface.SwapBuffers() }

// ResizeBuffers updates the size from the window's
// framebuffer.
func (sc *swapChain) ResizeBuffers() {
	sc.width, sc.height = sc.win.Surface.FramebufferSize()
}

// SetVerticalSynchronizationInterval sets the swap interval.
func (sc *swapChain) SetVerticalSynchronizationInterval(n int) { sc.win.Surface.SwapInterval(n) }

// Window returns the swap chain's window.
func (sc *swapChain) Window() rhi.WindowHandle { return sc.win }

func (sc *swapChain) RenderPass() rhi.RenderPass { return sc.pass }
func (sc *swapChain) Width() int { return sc.width }
func (sc *swapChain) Height() int { return sc.height }
