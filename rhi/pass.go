// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package rhi

// RenderPass is the interface that describes the attachments
// of render targets that pipelines render into.
type RenderPass interface {
	Resource

	NumberOfColorAttachments() int
	ColorAttachmentFormats() []TextureFormat
	// DepthStencilAttachmentFormat returns FormatUnknown
	// if the pass has no depth/stencil attachment.
	DepthStencilAttachmentFormat() TextureFormat
	NumberOfMultisamples() int
}

// RenderTarget is the interface implemented by resources
// that can be set with SetGraphicsRenderTarget.
type RenderTarget interface {
	Resource

	// RenderPass returns the pass the target conforms to.
	RenderPass() RenderPass

	// Width returns the width of the target in pixels.
	Width() int

	// Height returns the height of the target in pixels.
	Height() int
}

// FramebufferAttachment identifies a texture subresource
// to render into.
type FramebufferAttachment struct {
	Texture     Texture
	MipmapIndex int
	LayerIndex  int
}

// Framebuffer is the interface that defines an off-screen
// render target.
// It holds a reference to its render pass and to every
// attached texture.
type Framebuffer interface {
	RenderTarget

	ColorAttachments() []FramebufferAttachment
	DepthStencilAttachment() *FramebufferAttachment
}

// Surface is the interface that a window system provides to
// present rendered images. It is an external collaborator;
// rhi only calls it.
type Surface interface {
	// MakeContextCurrent makes the surface's native
	// context current on the calling thread.
	MakeContextCurrent()

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// SwapInterval sets the number of vertical blanks to
	// wait before swapping buffers.
	SwapInterval(n int)

	// FramebufferSize returns the size of the surface's
	// default framebuffer in pixels.
	FramebufferSize() (width, height int)
}

// WindowHandle identifies the window that a swap chain
// presents to.
type WindowHandle struct {
	NativeWindowHandle uintptr
	Surface            Surface
}

// SwapChain is the interface that defines the presentable
// render target of a window.
type SwapChain interface {
	RenderTarget

	// Present presents the current back buffer.
	Present()

	// ResizeBuffers updates the swap chain's size from
	// its window.
	ResizeBuffers()

	// SetVerticalSynchronizationInterval sets the number
	// of vertical blanks to wait per Present.
	SetVerticalSynchronizationInterval(n int)

	// Window returns the swap chain's window.
	Window() WindowHandle
}
