// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package rhi

// TextureFormat is the type of texel formats.
type TextureFormat int

// Texture formats.
const (
	FormatUnknown TextureFormat = iota
	R8
	R8G8B8A8
	R8G8B8A8SRGB
	B8G8R8A8
	R11G11B10F
	R16G16B16A16F
	R32G32B32A32F
	R32UInt
	D32Float
)

// IsDepth returns whether f is a depth format.
func (f TextureFormat) IsDepth() bool { return f == D32Float }

// Size returns the size in bytes of one texel.
func (f TextureFormat) Size() int {
	switch f {
	case R8:
		return 1
	case R8G8B8A8, R8G8B8A8SRGB, B8G8R8A8, R11G11B10F, R32UInt, D32Float:
		return 4
	case R16G16B16A16F:
		return 8
	case R32G32B32A32F:
		return 16
	}
	return 0
}

// TextureFlags is a bitmask of texture options.
type TextureFlags int

// Texture flags.
const (
	// Generate the mipmap chain from the base level data.
	GenerateMipmaps TextureFlags = 1 << iota
	// Allow use as a framebuffer attachment.
	TextureRenderTarget
	// Allow use as a shader resource.
	TextureShaderResource
)

// TextureUsage is the type of texture usage hints.
type TextureUsage int

// Texture usages.
const (
	UsageDefault TextureUsage = iota
	UsageImmutable
	UsageDynamic
	UsageStaging
)

// Texture is the interface implemented by every texture
// resource.
type Texture interface {
	Resource

	// TextureFormat returns the texel format.
	TextureFormat() TextureFormat

	// NumberOfMipmaps returns the number of mipmap levels.
	NumberOfMipmaps() int

	// NumberOfMultisamples returns the sample count.
	NumberOfMultisamples() int
}

// Texture1D is the interface that defines a 1D texture.
type Texture1D interface {
	Texture
	Width() int
}

// Texture2D is the interface that defines a 2D texture.
type Texture2D interface {
	Texture
	Width() int
	Height() int
}

// Texture2DArray is the interface that defines an array of
// 2D textures.
type Texture2DArray interface {
	Texture
	Width() int
	Height() int
	NumberOfSlices() int
}

// Texture3D is the interface that defines a 3D texture.
type Texture3D interface {
	Texture
	Width() int
	Height() int
	Depth() int
}

// TextureCube is the interface that defines a cube texture.
type TextureCube interface {
	Texture
	Width() int
	Height() int
}

// TextureManager is the interface that creates textures.
// data may be nil. Otherwise it holds tightly packed texels
// for the base mipmap level (and every slice or face, in
// order).
type TextureManager interface {
	CreateTexture1D(width int, format TextureFormat, data []byte, flags TextureFlags, usage TextureUsage) (Texture1D, error)
	CreateTexture2D(width, height int, format TextureFormat, data []byte, flags TextureFlags, usage TextureUsage, samples int) (Texture2D, error)
	CreateTexture2DArray(width, height, slices int, format TextureFormat, data []byte, flags TextureFlags, usage TextureUsage) (Texture2DArray, error)
	CreateTexture3D(width, height, depth int, format TextureFormat, data []byte, flags TextureFlags, usage TextureUsage) (Texture3D, error)
	CreateTextureCube(width, height int, format TextureFormat, data []byte, flags TextureFlags, usage TextureUsage) (TextureCube, error)
}

// MipmapCount returns the number of levels of a complete
// mipmap chain for the given dimensions.
func MipmapCount(width, height, depth int) int {
	n := max(width, height, depth)
	c := 1
	for n > 1 {
		n >>= 1
		c++
	}
	return c
}
