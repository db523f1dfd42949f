// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package opengl

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

const (
	extDirectStateAccess, extDirectStateAccessS               = iota, "GL_ARB_direct_state_access"
	extMultiBind, extMultiBindS                               = iota, "GL_ARB_multi_bind"
	extClipControl, extClipControlS                           = iota, "GL_ARB_clip_control"
	extTessellationShader, extTessellationShaderS             = iota, "GL_ARB_tessellation_shader"
	extComputeShader, extComputeShaderS                       = iota, "GL_ARB_compute_shader"
	extDebugOutput, extDebugOutputS                           = iota, "GL_KHR_debug"
	extSeamlessCubeMap, extSeamlessCubeMapS                   = iota, "GL_ARB_seamless_cube_map"
	extTimerQuery, extTimerQueryS                             = iota, "GL_ARB_timer_query"
	extBaseInstance, extBaseInstanceS                         = iota, "GL_ARB_base_instance"
	extCopyImage, extCopyImageS                               = iota, "GL_ARB_copy_image"
	extViewportArray, extViewportArrayS                       = iota, "GL_ARB_viewport_array"
	extDrawIndirect, extDrawIndirectS                         = iota, "GL_ARB_draw_indirect"
	extMultiDrawIndirect, extMultiDrawIndirectS               = iota, "GL_ARB_multi_draw_indirect"
	extSeparateShaderObjects, extSeparateShaderObjectsS       = iota, "GL_ARB_separate_shader_objects"
	extShaderImageLoadStore, extShaderImageLoadStoreS         = iota, "GL_ARB_shader_image_load_store"
	extTextureFilterAnisotropic, extTextureFilterAnisotropicS = iota, "GL_ARB_texture_filter_anisotropic"

	extN = iota
)

// extNames maps ext* constants to extension strings.
var extNames = [extN]string{
	extDirectStateAccessS,
	extMultiBindS,
	extClipControlS,
	extTessellationShaderS,
	extComputeShaderS,
	extDebugOutputS,
	extSeamlessCubeMapS,
	extTimerQueryS,
	extBaseInstanceS,
	extCopyImageS,
	extViewportArrayS,
	extDrawIndirectS,
	extMultiDrawIndirectS,
	extSeparateShaderObjectsS,
	extShaderImageLoadStoreS,
	extTextureFilterAnisotropicS,
}

// extCore is the GL version, as major*10 + minor, in which
// each extension became core functionality.
var extCore = [extN]int{
	extDirectStateAccess:        45,
	extMultiBind:                44,
	extClipControl:              45,
	extTessellationShader:       40,
	extComputeShader:            43,
	extDebugOutput:              43,
	extSeamlessCubeMap:          32,
	extTimerQuery:               33,
	extBaseInstance:             42,
	extCopyImage:                43,
	extViewportArray:            41,
	extDrawIndirect:             40,
	extMultiDrawIndirect:        43,
	extSeparateShaderObjects:    41,
	extShaderImageLoadStore:     42,
	extTextureFilterAnisotropic: 46,
}

// probeExts sets the flags of the extensions that the
// context supports, either as core functionality of its
// version or through the extension string list.
// It is called once, at device creation.
func probeExts(f glFuncs, version int) (exts [extN]bool) {
	for i := range exts {
		exts[i] = version >= extCore[i]
	}
	n := f.GetInteger(gl.NUM_EXTENSIONS)
	for i := range uint32(max(n, 0)) {
		s := f.GetStringi(gl.EXTENSIONS, i)
		for j, name := range extNames {
			if s == name {
				exts[j] = true
				break
			}
		}
		// Widely exposed before the ARB version.
		if s == "GL_EXT_texture_filter_anisotropic" {
			exts[extTextureFilterAnisotropic] = true
		}
	}
	return
}
