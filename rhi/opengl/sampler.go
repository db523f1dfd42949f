// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gviegas/rhi/rhi"
)

// samplerState implements rhi.SamplerState.
type samplerState struct {
	rhi.ResourceBase
	d    *Device
	id   uint32
	desc rhi.SamplerStateDescriptor
}

// CreateSamplerState creates a new sampler state.
func (d *Device) CreateSamplerState(desc *rhi.SamplerStateDescriptor) (rhi.SamplerState, error) {
	if desc == nil {
		return nil, fmt.Errorf("%w: nil sampler descriptor", rhi.ErrInvalidDescriptor)
	}
	if desc.Filter < rhi.FilterMinMagMipPoint || desc.Filter > rhi.FilterComparisonAnisotropic {
		return nil, fmt.Errorf("%w: sampler filter %d", rhi.ErrInvalidDescriptor, desc.Filter)
	}
	f := d.gl
	s := &samplerState{
		d:    d,
		id:   f.GenSampler(),
		desc: *desc,
	}
	minFilter, magFilter := convFilter(desc.Filter)
	f.SamplerParameteri(s.id, gl.TEXTURE_MIN_FILTER, minFilter)
	f.SamplerParameteri(s.id, gl.TEXTURE_MAG_FILTER, magFilter)
	f.SamplerParameteri(s.id, gl.TEXTURE_WRAP_S, convAddressMode(desc.AddressU))
	f.SamplerParameteri(s.id, gl.TEXTURE_WRAP_T, convAddressMode(desc.AddressV))
	f.SamplerParameteri(s.id, gl.TEXTURE_WRAP_R, convAddressMode(desc.AddressW))
	f.SamplerParameterf(s.id, gl.TEXTURE_LOD_BIAS, desc.MipLODBias)
	f.SamplerParameterf(s.id, gl.TEXTURE_MIN_LOD, desc.MinLOD)
	f.SamplerParameterf(s.id, gl.TEXTURE_MAX_LOD, desc.MaxLOD)
	f.SamplerParameterfv(s.id, gl.TEXTURE_BORDER_COLOR, desc.BorderColor[:])
	if desc.Filter.IsComparison() {
		f.SamplerParameteri(s.id, gl.TEXTURE_COMPARE_MODE, gl.COMPARE_REF_TO_TEXTURE)
		f.SamplerParameteri(s.id, gl.TEXTURE_COMPARE_FUNC, int32(convCmpFunc(desc.ComparisonFunc)))
	}
	if desc.Filter.IsAnisotropic() && d.exts[extTextureFilterAnisotropic] {
		n := min(max(desc.MaxAnisotropy, 1), d.caps.MaximumAnisotropy)
		f.SamplerParameterf(s.id, gl.TEXTURE_MAX_ANISOTROPY, float32(n))
	}
	s.InitResource(d, rhi.RSamplerState, &d.stats, s.destroy)
	return s, nil
}

func (s *samplerState) destroy() {
	s.d.gl.DeleteSampler(s.id)
	s.id = 0
}

// Descriptor returns the sampler's descriptor.
func (s *samplerState) Descriptor() rhi.SamplerStateDescriptor { return s.desc }
