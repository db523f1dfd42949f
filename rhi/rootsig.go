// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package rhi

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// DescriptorRangeType is the kind of resource that a
// descriptor range binds.
type DescriptorRangeType int

// Descriptor range types.
const (
	// Shader resource view (textures, texture buffers).
	RangeSRV DescriptorRangeType = iota
	// Unordered access view (read/write resources).
	RangeUAV
	// Uniform buffer view.
	RangeUBV
	// Sampler state.
	RangeSampler
)

func (t DescriptorRangeType) String() string {
	switch t {
	case RangeSRV:
		return "SRV"
	case RangeUAV:
		return "UAV"
	case RangeUBV:
		return "UBV"
	case RangeSampler:
		return "Sampler"
	}
	return fmt.Sprintf("DescriptorRangeType(%d)", int(t))
}

// ShaderVisibility indicates which shader stages can access
// a root parameter or descriptor range.
type ShaderVisibility int

// Shader visibilities.
const (
	VisibilityAll ShaderVisibility = iota
	VisibilityVertex
	VisibilityTessellationControl
	VisibilityTessellationEvaluation
	VisibilityGeometry
	VisibilityFragment
	VisibilityCompute
	VisibilityAllGraphics
)

// MaxShaderRegisterName is the maximum length, in bytes, of
// DescriptorRange.BaseShaderRegisterName.
const MaxShaderRegisterName = 31

// DescriptorRange describes a contiguous group of bindings of
// the same kind within a descriptor table.
type DescriptorRange struct {
	Type                DescriptorRangeType
	NumberOfDescriptors int
	// BaseShaderRegister is the native binding base (e.g.,
	// the texture unit for SRVs and samplers).
	BaseShaderRegister int
	RegisterSpace      int
	// BaseShaderRegisterName is the name of the resource as
	// declared in shader source. Backends without explicit
	// binding points use it to look resources up at program
	// link time.
	BaseShaderRegisterName string
	ShaderVisibility       ShaderVisibility
	// ResourceType is the expected type of the resource bound
	// to the range.
	ResourceType ResourceType
}

// NewDescriptorRange returns a DescriptorRange.
func NewDescriptorRange(typ DescriptorRangeType, count, baseRegister int, name string, vis ShaderVisibility, res ResourceType) DescriptorRange {
	return DescriptorRange{
		Type:                   typ,
		NumberOfDescriptors:    count,
		BaseShaderRegister:     baseRegister,
		BaseShaderRegisterName: name,
		ShaderVisibility:       vis,
		ResourceType:           res,
	}
}

// RootParameterType is the type of a root parameter.
type RootParameterType int

// Root parameter types.
const (
	ParamDescriptorTable RootParameterType = iota
	ParamConstants32Bit
	ParamUBV
	ParamSRV
	ParamUAV
)

// RootConstants describes inline 32-bit constants.
type RootConstants struct {
	ShaderRegister   int
	RegisterSpace    int
	NumberOf32BitVal int
}

// RootDescriptor describes an inline descriptor.
type RootDescriptor struct {
	ShaderRegister int
	RegisterSpace  int
}

// RootParameter is a slot of a root signature.
// For ParamDescriptorTable, DescriptorRanges holds the
// table's ranges in declaration order.
type RootParameter struct {
	Type             RootParameterType
	DescriptorRanges []DescriptorRange
	Constants        RootConstants
	Descriptor       RootDescriptor
	ShaderVisibility ShaderVisibility
}

// DescriptorTableParameter returns a descriptor table root
// parameter holding a copy of ranges.
func DescriptorTableParameter(ranges ...DescriptorRange) RootParameter {
	return RootParameter{
		Type:             ParamDescriptorTable,
		DescriptorRanges: append([]DescriptorRange(nil), ranges...),
	}
}

// ConstantsParameter returns an inline constants root
// parameter.
func ConstantsParameter(register, count int, vis ShaderVisibility) RootParameter {
	return RootParameter{
		Type:             ParamConstants32Bit,
		Constants:        RootConstants{ShaderRegister: register, NumberOf32BitVal: count},
		ShaderVisibility: vis,
	}
}

// StaticSampler is a sampler baked into a root signature.
type StaticSampler struct {
	SamplerStateDescriptor
	ShaderRegister   int
	RegisterSpace    int
	ShaderVisibility ShaderVisibility
}

// RootSignatureFlags is a bitmask of root signature options.
type RootSignatureFlags int

// Root signature flags.
const (
	AllowInputAssemblerInputLayout RootSignatureFlags = 1 << iota
	DenyVertexShaderRootAccess
	DenyTessellationControlShaderRootAccess
	DenyTessellationEvaluationShaderRootAccess
	DenyGeometryShaderRootAccess
	DenyFragmentShaderRootAccess
	AllowStreamOutput
	RootSignatureFlagsNone RootSignatureFlags = 0
)

// RootSignatureDescriptor describes the binding layout of a
// root signature.
// Parameter indices are the positions in Parameters; they
// are what client code passes to CreateResourceGroup and
// to the SetGraphicsResourceGroup command.
type RootSignatureDescriptor struct {
	Parameters     []RootParameter
	StaticSamplers []StaticSampler
	Flags          RootSignatureFlags
}

// Clone returns a deep copy of d.
// The copy shares no backing arrays with d.
func (d *RootSignatureDescriptor) Clone() *RootSignatureDescriptor {
	c := new(RootSignatureDescriptor)
	if err := copier.CopyWithOption(c, d, copier.Option{DeepCopy: true}); err != nil {
		panic("rhi: cannot copy root signature descriptor: " + err.Error())
	}
	return c
}

// Validate checks that d is well formed.
// The error wraps ErrInvalidDescriptor.
func (d *RootSignatureDescriptor) Validate() error {
	for i := range d.Parameters {
		p := &d.Parameters[i]
		switch p.Type {
		case ParamDescriptorTable:
			if len(p.DescriptorRanges) == 0 {
				return fmt.Errorf("%w: parameter %d: empty descriptor table", ErrInvalidDescriptor, i)
			}
			for j := range p.DescriptorRanges {
				r := &p.DescriptorRanges[j]
				if r.NumberOfDescriptors < 1 {
					return fmt.Errorf("%w: parameter %d range %d: no descriptors", ErrInvalidDescriptor, i, j)
				}
				if len(r.BaseShaderRegisterName) > MaxShaderRegisterName {
					return fmt.Errorf("%w: parameter %d range %d: name too long", ErrInvalidDescriptor, i, j)
				}
				if r.Type == RangeSampler && r.ResourceType != RSamplerState {
					return fmt.Errorf("%w: parameter %d range %d: sampler range of type %v", ErrInvalidDescriptor, i, j, r.ResourceType)
				}
			}
		case ParamConstants32Bit, ParamUBV, ParamSRV, ParamUAV:
			if len(p.DescriptorRanges) != 0 {
				return fmt.Errorf("%w: parameter %d: ranges in non-table parameter", ErrInvalidDescriptor, i)
			}
		default:
			return fmt.Errorf("%w: parameter %d: unknown type %d", ErrInvalidDescriptor, i, p.Type)
		}
	}
	return nil
}

// RootSignature is the interface that defines how shader
// resources are organized into root parameters.
type RootSignature interface {
	Resource

	// Descriptor returns the root signature's own copy of
	// the descriptor it was created from.
	// It must not be modified.
	Descriptor() *RootSignatureDescriptor

	// CreateResourceGroup creates a resource group that
	// binds resources to the root parameter identified by
	// rootParameterIndex.
	// resources must be non-empty and contain no nil
	// entries; they are matched to the parameter's
	// descriptor ranges in order. samplers is either empty
	// or parallel to resources, with nil entries for slots
	// that need no sampler.
	// The group takes a reference to every resource and
	// every non-nil sampler.
	// Violating these preconditions panics.
	CreateResourceGroup(rootParameterIndex int, resources []Resource, samplers []SamplerState) ResourceGroup
}

// ResourceGroup is the interface that defines a set of
// resources bound to one root parameter of a root signature.
type ResourceGroup interface {
	Resource

	// RootSignature returns the root signature that
	// created the group.
	RootSignature() RootSignature

	// RootParameterIndex returns the index of the root
	// parameter that the group satisfies.
	RootParameterIndex() int

	// Resources returns the grouped resources, in the
	// order given at creation.
	Resources() []Resource

	// SamplerStates returns the sampler states parallel
	// to Resources. It may be nil, and its entries may be
	// nil.
	SamplerStates() []SamplerState
}
