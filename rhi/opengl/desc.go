// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package opengl

import (
	"fmt"

	"github.com/gviegas/rhi/rhi"
)

// rootSignature implements rhi.RootSignature.
type rootSignature struct {
	rhi.ResourceBase
	d    *Device
	desc *rhi.RootSignatureDescriptor
	// uboBase[i] is the uniform block binding of the
	// first UBV range of parameter i.
	uboBase []int
}

// CreateRootSignature creates a new root signature from a
// copy of desc.
func (d *Device) CreateRootSignature(desc *rhi.RootSignatureDescriptor) (rhi.RootSignature, error) {
	if desc == nil {
		return nil, fmt.Errorf("%w: nil root signature descriptor", rhi.ErrInvalidDescriptor)
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	rs := &rootSignature{
		d:    d,
		desc: desc.Clone(),
	}
	rs.uboBase = make([]int, len(rs.desc.Parameters)+1)
	for i, p := range rs.desc.Parameters {
		rs.uboBase[i+1] = rs.uboBase[i] + countUBVRanges(&p)
	}
	rs.InitResource(d, rhi.RRootSignature, &d.stats, nil)
	return rs, nil
}

// countUBVRanges returns the number of UBV ranges in p.
// Only descriptor tables have ranges.
func countUBVRanges(p *rhi.RootParameter) (n int) {
	if p.Type != rhi.ParamDescriptorTable {
		return
	}
	for _, r := range p.DescriptorRanges {
		if r.Type == rhi.RangeUBV {
			n++
		}
	}
	return
}

// Descriptor returns the root signature's copy of the
// descriptor.
func (rs *rootSignature) Descriptor() *rhi.RootSignatureDescriptor { return rs.desc }

// uniformBlockBase returns the uniform block binding of the
// first UBV range of parameter index. It is the number of
// UBV ranges in all parameters that precede index.
func (rs *rootSignature) uniformBlockBase(index int) int { return rs.uboBase[index] }

// CreateResourceGroup creates a new resource group.
func (rs *rootSignature) CreateResourceGroup(rootParameterIndex int, resources []rhi.Resource, samplers []rhi.SamplerState) rhi.ResourceGroup {
	params := rs.desc.Parameters
	switch {
	case rootParameterIndex < 0 || rootParameterIndex >= len(params):
		panic(fmt.Sprintf("opengl: root parameter index %d out of range [0, %d)", rootParameterIndex, len(params)))
	case len(resources) == 0:
		panic("opengl: resource group with no resources")
	case len(samplers) != 0 && len(samplers) != len(resources):
		panic(fmt.Sprintf("opengl: %d samplers for %d resources", len(samplers), len(resources)))
	}
	p := &params[rootParameterIndex]
	if p.Type == rhi.ParamDescriptorTable && len(resources) != len(p.DescriptorRanges) {
		panic(fmt.Sprintf("opengl: %d resources for %d descriptor ranges", len(resources), len(p.DescriptorRanges)))
	}
	for i, r := range resources {
		if r == nil {
			panic(fmt.Sprintf("opengl: nil resource at slot %d", i))
		}
	}

	rg := &resourceGroup{
		rs:        rs,
		index:     rootParameterIndex,
		resources: append([]rhi.Resource(nil), resources...),
		ubo:       make([]int, len(resources)),
	}
	if len(samplers) != 0 {
		rg.samplers = append([]rhi.SamplerState(nil), samplers...)
	}
	next := rs.uniformBlockBase(rootParameterIndex)
	for i := range rg.ubo {
		if p.Type == rhi.ParamDescriptorTable && p.DescriptorRanges[i].Type == rhi.RangeUBV {
			rg.ubo[i] = next
			next++
		} else {
			rg.ubo[i] = -1
		}
	}
	for _, r := range rg.resources {
		r.AddRef()
	}
	for _, s := range rg.samplers {
		if s != nil {
			s.AddRef()
		}
	}
	rs.AddRef()
	rg.InitResource(rs.d, rhi.RResourceGroup, &rs.d.stats, rg.destroy)
	return rg
}

// resourceGroup implements rhi.ResourceGroup.
type resourceGroup struct {
	rhi.ResourceBase
	rs        *rootSignature
	index     int
	resources []rhi.Resource
	samplers  []rhi.SamplerState
	// Parallel to resources.
	// -1 for slots that are not uniform buffers.
	ubo []int
}

func (rg *resourceGroup) destroy() {
	for _, r := range rg.resources {
		r.Release()
	}
	for _, s := range rg.samplers {
		if s != nil {
			s.Release()
		}
	}
	rg.resources = nil
	rg.samplers = nil
	rg.rs.Release()
}

// RootSignature returns the root signature that created rg.
func (rg *resourceGroup) RootSignature() rhi.RootSignature { return rg.rs }

// RootParameterIndex returns the root parameter index.
func (rg *resourceGroup) RootParameterIndex() int { return rg.index }

// Resources returns the grouped resources.
func (rg *resourceGroup) Resources() []rhi.Resource { return rg.resources }

// SamplerStates returns the sampler states.
func (rg *resourceGroup) SamplerStates() []rhi.SamplerState { return rg.samplers }

// uniformBlockBindingIndices returns the uniform block
// binding of each resource, or -1 for slots that are not
// uniform buffers.
func (rg *resourceGroup) uniformBlockBindingIndices() []int { return rg.ubo }

// samplerAt returns the sampler of slot i, or nil.
func (rg *resourceGroup) samplerAt(i int) rhi.SamplerState {
	if i < len(rg.samplers) {
		return rg.samplers[i]
	}
	return nil
}
