// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package rhi defines a render hardware interface: a set of
// backend-agnostic types for creating GPU resources, describing
// how shaders access them and recording commands that a backend
// translates into native graphics API calls.
//
// Backends implement the Device interface and make themselves
// available either by calling Register from init (when linked
// into the program) or by exporting a CreateRHIDeviceInstance
// function from a dynamically loaded library (see Loader).
package rhi

import (
	"errors"
	"sync"
)

// ErrBackendNotFound means that no backend with a given name
// was registered and no library implementing it could be
// located.
var ErrBackendNotFound = errors.New("rhi: backend not found")

// ErrSymbolNotFound means that a backend library was found,
// but it does not export a usable device factory.
var ErrSymbolNotFound = errors.New("rhi: backend factory symbol not found")

// ErrNoDevice means that the backend could not create a
// device (e.g., the native API version is too old).
var ErrNoDevice = errors.New("rhi: no suitable device")

// ErrInvalidDescriptor means that a descriptor passed to a
// create call is malformed.
var ErrInvalidDescriptor = errors.New("rhi: invalid descriptor")

// ErrShaderCompile means that the native shader compiler
// rejected a shader source.
var ErrShaderCompile = errors.New("rhi: shader compilation failed")

// ErrProgramLink means that shaders could not be linked into
// a program.
var ErrProgramLink = errors.New("rhi: program linking failed")

// ErrIncompleteFramebuffer means that the native API reports
// a framebuffer as incomplete.
var ErrIncompleteFramebuffer = errors.New("rhi: incomplete framebuffer")

// ErrUnsupported means that the backend does not support the
// requested functionality.
var ErrUnsupported = errors.New("rhi: not supported")

// ErrNotMappable means that a resource cannot be mapped into
// host memory.
var ErrNotMappable = errors.New("rhi: resource not mappable")

// ErrQueryUnavailable means that a query result was requested
// for a query that has not been issued since the last reset.
var ErrQueryUnavailable = errors.New("rhi: query result unavailable")

// Backend is the interface that statically linked backends
// register to become available through NewDevice.
type Backend interface {
	// Name returns the name of the backend (e.g., "opengl").
	// It must be unique among registered backends.
	Name() string

	// CreateDevice creates a new device.
	CreateDevice(ctx *Context) (Device, error)
}

// Backends returns the registered backends.
func Backends() []Backend {
	mu.Lock()
	defer mu.Unlock()
	b := make([]Backend, len(backends))
	copy(b, backends)
	return b
}

// Register registers a Backend.
// Backend implementations are expected to call Register
// exactly once, from an init function.
// If a backend with the same name has already been
// registered, it will be replaced by b.
func Register(b Backend) {
	mu.Lock()
	defer mu.Unlock()
	for i := range backends {
		if backends[i].Name() == b.Name() {
			backends[i] = b
			Logger().Warn("rhi: backend replaced", "name", b.Name())
			return
		}
	}
	backends = append(backends, b)
	Logger().Debug("rhi: backend registered", "name", b.Name())
}

// lookupBackend returns the registered backend named name,
// or nil if there is none.
func lookupBackend(name string) Backend {
	mu.Lock()
	defer mu.Unlock()
	for _, b := range backends {
		if b.Name() == name {
			return b
		}
	}
	return nil
}

var (
	mu       sync.Mutex
	backends = make([]Backend, 0, 1)
)

// NewDevice creates a device using the backend named name.
// Registered backends take precedence. If none matches and
// ld is not nil, ld is asked to locate the backend library.
// Failures are logged and returned; the device is nil in
// that case.
func NewDevice(ctx *Context, name string, ld Loader) (Device, error) {
	log := ctx.Log()
	var create DeviceFactory
	if b := lookupBackend(name); b != nil {
		create = b.CreateDevice
	} else if ld != nil {
		f, err := ld.Load(name)
		if err != nil {
			log.Error("rhi: cannot load backend", "name", name, "err", err)
			return nil, err
		}
		create = f
	} else {
		log.Error("rhi: backend not registered", "name", name)
		return nil, ErrBackendNotFound
	}
	dev, err := create(ctx)
	if err != nil {
		log.Error("rhi: cannot create device", "name", name, "err", err)
		return nil, err
	}
	if dev == nil {
		log.Error("rhi: backend returned nil device", "name", name)
		return nil, ErrNoDevice
	}
	log.Info("rhi: device created", "name", dev.Name())
	return dev, nil
}
