// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package rhi

// FillMode is the type of triangle fill modes.
type FillMode int

// Fill modes.
const (
	FillSolid FillMode = iota
	FillWireframe
)

// CullMode is the type of face culling modes.
type CullMode int

// Cull modes.
const (
	CullNone CullMode = iota
	CullFront
	CullBack
)

// RasterizerState defines the rasterization state of a
// graphics pipeline.
type RasterizerState struct {
	FillMode              FillMode
	CullMode              CullMode
	FrontCounterClockwise bool
	DepthBias             int32
	DepthBiasClamp        float32
	SlopeScaledDepthBias  float32
	DepthClipEnable       bool
	MultisampleEnable     bool
	AntialiasedLineEnable bool
	ScissorEnable         bool
}

// DefaultRasterizerState returns solid filling, back face
// culling, clockwise front faces and depth clipping.
func DefaultRasterizerState() RasterizerState {
	return RasterizerState{
		FillMode:        FillSolid,
		CullMode:        CullBack,
		DepthClipEnable: true,
	}
}

// ComparisonFunc is the type of comparison functions.
type ComparisonFunc int

// Comparison functions.
const (
	CmpNever ComparisonFunc = iota
	CmpLess
	CmpEqual
	CmpLessEqual
	CmpGreater
	CmpNotEqual
	CmpGreaterEqual
	CmpAlways
)

// StencilOp is the type of stencil operations.
type StencilOp int

// Stencil operations.
const (
	StencilKeep StencilOp = iota
	StencilZero
	StencilReplace
	StencilIncrSat
	StencilDecrSat
	StencilInvert
	StencilIncr
	StencilDecr
)

// DepthStencilOpDesc defines the stencil test for one face.
type DepthStencilOpDesc struct {
	StencilFailOp      StencilOp
	StencilDepthFailOp StencilOp
	StencilPassOp      StencilOp
	StencilFunc        ComparisonFunc
}

// DepthStencilState defines the depth/stencil state of a
// graphics pipeline.
type DepthStencilState struct {
	DepthEnable      bool
	DepthWriteMask   bool
	DepthFunc        ComparisonFunc
	StencilEnable    bool
	StencilReadMask  uint8
	StencilWriteMask uint8
	FrontFace        DepthStencilOpDesc
	BackFace         DepthStencilOpDesc
}

// DefaultDepthStencilState returns depth test and writes
// enabled with a less-than comparison and stencil disabled.
func DefaultDepthStencilState() DepthStencilState {
	op := DepthStencilOpDesc{
		StencilFailOp:      StencilKeep,
		StencilDepthFailOp: StencilKeep,
		StencilPassOp:      StencilKeep,
		StencilFunc:        CmpAlways,
	}
	return DepthStencilState{
		DepthEnable:      true,
		DepthWriteMask:   true,
		DepthFunc:        CmpLess,
		StencilReadMask:  0xff,
		StencilWriteMask: 0xff,
		FrontFace:        op,
		BackFace:         op,
	}
}

// Blend is the type of blend factors.
type Blend int

// Blend factors.
const (
	BlendZero Blend = iota
	BlendOne
	BlendSrcColor
	BlendInvSrcColor
	BlendSrcAlpha
	BlendInvSrcAlpha
	BlendDestAlpha
	BlendInvDestAlpha
	BlendDestColor
	BlendInvDestColor
	BlendSrcAlphaSat
	BlendFactor
	BlendInvBlendFactor
)

// BlendOp is the type of blend operations.
type BlendOp int

// Blend operations.
const (
	BlendOpAdd BlendOp = iota
	BlendOpSubtract
	BlendOpRevSubtract
	BlendOpMin
	BlendOpMax
)

// ColorWriteEnable is a color channel write mask.
type ColorWriteEnable uint8

// Color write masks.
const (
	ColorWriteRed ColorWriteEnable = 1 << iota
	ColorWriteGreen
	ColorWriteBlue
	ColorWriteAlpha
	ColorWriteAll ColorWriteEnable = 1<<iota - 1
)

// MaxRenderTargets is the maximum number of simultaneous
// color render targets.
const MaxRenderTargets = 8

// RenderTargetBlendDesc defines blending for one render
// target.
type RenderTargetBlendDesc struct {
	BlendEnable           bool
	SrcBlend              Blend
	DestBlend             Blend
	BlendOp               BlendOp
	SrcBlendAlpha         Blend
	DestBlendAlpha        Blend
	BlendOpAlpha          BlendOp
	RenderTargetWriteMask ColorWriteEnable
}

// BlendState defines the color blend state of a graphics
// pipeline. If IndependentBlendEnable is false, only
// RenderTargets[0] is used.
type BlendState struct {
	AlphaToCoverageEnable  bool
	IndependentBlendEnable bool
	RenderTargets          [MaxRenderTargets]RenderTargetBlendDesc
}

// DefaultBlendState returns blending disabled with all color
// channels written.
func DefaultBlendState() BlendState {
	var s BlendState
	for i := range s.RenderTargets {
		s.RenderTargets[i] = RenderTargetBlendDesc{
			SrcBlend:              BlendOne,
			DestBlend:             BlendZero,
			BlendOp:               BlendOpAdd,
			SrcBlendAlpha:         BlendOne,
			DestBlendAlpha:        BlendZero,
			BlendOpAlpha:          BlendOpAdd,
			RenderTargetWriteMask: ColorWriteAll,
		}
	}
	return s
}

// Filter is the type of sampler filters.
type Filter int

// Filters.
// The Min/Mag/Mip parts select point or linear filtering
// for minification, magnification and mipmap selection.
const (
	FilterMinMagMipPoint Filter = iota
	FilterMinMagPointMipLinear
	FilterMinPointMagLinearMipPoint
	FilterMinPointMagMipLinear
	FilterMinLinearMagMipPoint
	FilterMinLinearMagPointMipLinear
	FilterMinMagLinearMipPoint
	FilterMinMagMipLinear
	FilterAnisotropic
	FilterComparisonMinMagMipPoint
	FilterComparisonMinMagMipLinear
	FilterComparisonAnisotropic
)

// IsComparison returns whether f performs depth comparison.
func (f Filter) IsComparison() bool { return f >= FilterComparisonMinMagMipPoint }

// Linear returns whether minification, magnification and
// mipmap selection use linear filtering.
func (f Filter) Linear() (minify, magnify, mipmap bool) {
	switch f {
	case FilterAnisotropic, FilterComparisonAnisotropic, FilterComparisonMinMagMipLinear:
		return true, true, true
	case FilterComparisonMinMagMipPoint:
		return false, false, false
	}
	return f&4 != 0, f&2 != 0, f&1 != 0
}

// IsAnisotropic returns whether f uses anisotropic filtering.
func (f Filter) IsAnisotropic() bool {
	return f == FilterAnisotropic || f == FilterComparisonAnisotropic
}

// TextureAddressMode is the type of texture addressing modes.
type TextureAddressMode int

// Texture address modes.
const (
	AddressWrap TextureAddressMode = iota
	AddressMirror
	AddressClamp
	AddressBorder
	AddressMirrorOnce
)

// SamplerStateDescriptor describes a sampler state.
type SamplerStateDescriptor struct {
	Filter         Filter
	AddressU       TextureAddressMode
	AddressV       TextureAddressMode
	AddressW       TextureAddressMode
	MipLODBias     float32
	MaxAnisotropy  int
	ComparisonFunc ComparisonFunc
	BorderColor    [4]float32
	MinLOD         float32
	MaxLOD         float32
}

// DefaultSamplerState returns trilinear filtering with
// clamped addressing and the full mipmap range.
func DefaultSamplerState() SamplerStateDescriptor {
	return SamplerStateDescriptor{
		Filter:         FilterMinMagMipLinear,
		AddressU:       AddressClamp,
		AddressV:       AddressClamp,
		AddressW:       AddressClamp,
		MaxAnisotropy:  16,
		ComparisonFunc: CmpNever,
		MinLOD:         -3.402823466e+38,
		MaxLOD:         3.402823466e+38,
	}
}

// SamplerState is the interface that defines a sampler
// state object.
type SamplerState interface {
	Resource

	// Descriptor returns the sampler's descriptor.
	Descriptor() SamplerStateDescriptor
}
