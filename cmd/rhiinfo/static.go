// Copyright 2024 Gustavo C. Viegas. All rights reserved.

//go:build !rhi_plugin

package main

// Built with the rhi_plugin tag, the backend is loaded from
// librhi_opengl instead.
import _ "github.com/gviegas/rhi/rhi/opengl"
