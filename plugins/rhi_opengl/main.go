// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Command rhi_opengl is the OpenGL backend built as a
// loadable library:
//
//	go build -buildmode=plugin -o librhi_opengl.so ./plugins/rhi_opengl
//
// rhi.PluginLoader looks up CreateRHIDeviceInstance in it.
package main

import (
	"github.com/gviegas/rhi/rhi"
	"github.com/gviegas/rhi/rhi/opengl"
)

// CreateRHIDeviceInstance creates a new OpenGL device.
func CreateRHIDeviceInstance(ctx *rhi.Context) (rhi.Device, error) {
	return opengl.CreateRHIDeviceInstance(ctx)
}

func main() {}
