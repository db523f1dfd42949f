// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package rhi

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"plugin"
	"runtime"
)

// DeviceFactory creates a device.
// Dynamically loaded backends export one under the name
// FactorySymbol.
type DeviceFactory func(ctx *Context) (Device, error)

// FactorySymbol is the name of the function that backend
// libraries export.
const FactorySymbol = "CreateRHIDeviceInstance"

// Loader is the interface that locates backends that are not
// linked into the program.
type Loader interface {
	// Load returns the factory of the backend named name.
	// It returns an error wrapping ErrBackendNotFound if
	// no library for the backend exists, and one wrapping
	// ErrSymbolNotFound if the library does not export a
	// usable FactorySymbol.
	Load(name string) (DeviceFactory, error)
}

// LibraryName returns the file name of the library that
// implements the backend named name on the current
// platform (e.g., "librhi_opengl.so").
func LibraryName(name string) string { return libraryName(runtime.GOOS, name) }

func libraryName(goos, name string) string {
	switch goos {
	case "windows":
		return "rhi_" + name + ".dll"
	case "darwin", "ios":
		return "librhi_" + name + ".dylib"
	}
	return "librhi_" + name + ".so"
}

// symbolTable is the subset of *plugin.Plugin that
// PluginLoader uses.
type symbolTable interface {
	Lookup(name string) (plugin.Symbol, error)
}

func openPlugin(path string) (symbolTable, error) { return plugin.Open(path) }

// PluginLoader is a Loader that opens backend libraries with
// the plugin package.
// Libraries must be built with -buildmode=plugin against the
// same version of this package.
type PluginLoader struct {
	// SearchPaths are the directories searched, in order.
	// If empty, DefaultSearchPaths is used.
	SearchPaths []string

	open func(path string) (symbolTable, error)
}

// DefaultSearchPaths returns the directory of the running
// executable followed by the working directory.
func DefaultSearchPaths() []string {
	var s []string
	if exe, err := os.Executable(); err == nil {
		s = append(s, filepath.Dir(exe))
	}
	return append(s, ".")
}

// Load implements Loader.
func (l *PluginLoader) Load(name string) (DeviceFactory, error) {
	paths := l.SearchPaths
	if len(paths) == 0 {
		paths = DefaultSearchPaths()
	}
	open := l.open
	if open == nil {
		open = openPlugin
	}
	file := LibraryName(name)
	for _, dir := range paths {
		path := filepath.Join(dir, file)
		if _, err := os.Stat(path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				Logger().Debug("rhi: cannot stat backend library", "path", path, "err", err)
			}
			continue
		}
		lib, err := open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrBackendNotFound, path, err)
		}
		sym, err := lib.Lookup(FactorySymbol)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSymbolNotFound, path, err)
		}
		f := factoryOf(sym)
		if f == nil {
			return nil, fmt.Errorf("%w: %s: %s has type %T", ErrSymbolNotFound, path, FactorySymbol, sym)
		}
		Logger().Info("rhi: backend library loaded", "name", name, "path", path)
		return f, nil
	}
	return nil, fmt.Errorf("%w: %s not in %v", ErrBackendNotFound, file, paths)
}

// factoryOf converts a looked up symbol into a
// DeviceFactory. Exported functions are looked up as
// function values and exported variables as pointers.
func factoryOf(sym plugin.Symbol) DeviceFactory {
	switch f := sym.(type) {
	case func(*Context) (Device, error):
		return f
	case DeviceFactory:
		return f
	case *func(*Context) (Device, error):
		if f != nil && *f != nil {
			return *f
		}
	case *DeviceFactory:
		if f != nil && *f != nil {
			return *f
		}
	}
	return nil
}
