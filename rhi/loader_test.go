// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package rhi

import (
	"errors"
	"os"
	"path/filepath"
	"plugin"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLibrary map[string]plugin.Symbol

func (l fakeLibrary) Lookup(name string) (plugin.Symbol, error) {
	if s, ok := l[name]; ok {
		return s, nil
	}
	return nil, errors.New("symbol " + name + " not found")
}

func TestLibraryName(t *testing.T) {
	for _, x := range [...]struct{ goos, want string }{
		{"linux", "librhi_opengl.so"},
		{"freebsd", "librhi_opengl.so"},
		{"windows", "rhi_opengl.dll"},
		{"darwin", "librhi_opengl.dylib"},
	} {
		assert.Equal(t, x.want, libraryName(x.goos, "opengl"), x.goos)
	}
}

// testLoader creates a directory containing an empty file
// named after the backend library and returns a loader that
// opens it as lib.
func testLoader(t *testing.T, name string, lib symbolTable, openErr error) (*PluginLoader, *[]string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, LibraryName(name)), nil, 0o644))
	var opened []string
	return &PluginLoader{
		SearchPaths: []string{t.TempDir(), dir},
		open: func(path string) (symbolTable, error) {
			opened = append(opened, path)
			return lib, openErr
		},
	}, &opened
}

func TestPluginLoader(t *testing.T) {
	created := 0
	f := func(*Context) (Device, error) { created++; return nil, nil }
	ld, opened := testLoader(t, "fake", fakeLibrary{FactorySymbol: f}, nil)

	df, err := ld.Load("fake")
	require.NoError(t, err)
	require.NotNil(t, df)
	require.Len(t, *opened, 1)
	assert.Equal(t, LibraryName("fake"), filepath.Base((*opened)[0]))
	df(nil)
	assert.Equal(t, 1, created)
}

func TestPluginLoaderVariable(t *testing.T) {
	var f DeviceFactory = func(*Context) (Device, error) { return nil, ErrNoDevice }
	ld, _ := testLoader(t, "var", fakeLibrary{FactorySymbol: &f}, nil)
	df, err := ld.Load("var")
	require.NoError(t, err)
	_, err = df(nil)
	assert.ErrorIs(t, err, ErrNoDevice)
}

func TestPluginLoaderErrors(t *testing.T) {
	ld, opened := testLoader(t, "present", fakeLibrary{}, nil)
	_, err := ld.Load("absent")
	assert.ErrorIs(t, err, ErrBackendNotFound)
	assert.Empty(t, *opened)

	_, err = ld.Load("present")
	assert.ErrorIs(t, err, ErrSymbolNotFound)

	ld, _ = testLoader(t, "typed", fakeLibrary{FactorySymbol: func() {}}, nil)
	_, err = ld.Load("typed")
	assert.ErrorIs(t, err, ErrSymbolNotFound)

	var nilf *DeviceFactory
	ld, _ = testLoader(t, "nilvar", fakeLibrary{FactorySymbol: nilf}, nil)
	_, err = ld.Load("nilvar")
	assert.ErrorIs(t, err, ErrSymbolNotFound)

	ld, _ = testLoader(t, "broken", nil, errors.New("plugin was built with a different version"))
	_, err = ld.Load("broken")
	assert.ErrorIs(t, err, ErrBackendNotFound)
}
