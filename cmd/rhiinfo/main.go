// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Command rhiinfo creates a device and prints its
// capabilities.
//
// Usage:
//
//	rhiinfo [-config file] [-backend name] [-frames n]
//
// The configuration is read from ~/.config/rhi/rhi.toml
// unless -config is given. If that file does not exist, the
// default configuration is used. With -frames, rhiinfo also
// clears and presents n frames in its window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"reflect"
	"runtime"
	"text/tabwriter"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gviegas/rhi/rhi"
)

const defaultConfigFile = "~/.config/rhi/rhi.toml"

func init() {
	// GLFW and the GL context are bound to the main thread.
	runtime.LockOSThread()
}

func main() {
	cfgFile := flag.String("config", "", "configuration `file`")
	backend := flag.String("backend", "", "backend `name` (overrides the configuration)")
	frames := flag.Int("frames", 0, "number of frames to present")
	flag.Parse()

	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rhiinfo:", err)
		os.Exit(2)
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	lvl, _ := cfg.Level()
	rhi.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))

	if err := run(&cfg, *frames); err != nil {
		fmt.Fprintln(os.Stderr, "rhiinfo:", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration file at path.
// An empty path means defaultConfigFile, which need not
// exist.
func loadConfig(path string) (rhi.Config, error) {
	if path != "" {
		return rhi.LoadConfigFile(path)
	}
	cfg, err := rhi.LoadConfigFile(defaultConfigFile)
	if errors.Is(err, fs.ErrNotExist) {
		return rhi.DefaultConfig(), nil
	}
	return cfg, err
}

func run(cfg *rhi.Config, frames int) error {
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()
	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	ctx := &rhi.Context{
		Window:      windowHandle(win),
		Debug:       cfg.Debug,
		ProcAddress: procAddress,
	}
	dev, err := rhi.NewDevice(ctx, cfg.Backend, cfg.Loader())
	if err != nil {
		return err
	}
	defer dev.Close()

	printInfo(dev)
	if frames > 0 {
		return present(dev, cfg, frames)
	}
	return nil
}

// printInfo writes the device's capabilities to standard
// output, one per line.
func printInfo(dev rhi.Device) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "Backend\t%s\n", dev.Name())
	if v, ok := dev.(interface{ Version() (int, int) }); ok {
		major, minor := v.Version()
		fmt.Fprintf(w, "Version\t%d.%d\n", major, minor)
	}
	caps := dev.Capabilities()
	rv := reflect.ValueOf(caps)
	for i := range rv.NumField() {
		fmt.Fprintf(w, "%s\t%v\n", rv.Type().Field(i).Name, rv.Field(i).Interface())
	}
	if e, ok := dev.(interface{ Extensions() []string }); ok {
		for _, s := range e.Extensions() {
			fmt.Fprintf(w, "Extension\t%s\n", s)
		}
	}
	w.Flush()
}

// present clears and presents frames in the device's
// window.
func present(dev rhi.Device, cfg *rhi.Config, frames int) error {
	caps := dev.Capabilities()
	pass, err := dev.CreateRenderPass([]rhi.TextureFormat{caps.PreferredSwapChainColorTextureFormat}, caps.PreferredSwapChainDepthStencilFormat, 1)
	if err != nil {
		return err
	}
	defer pass.Release()
	sc, err := dev.CreateSwapChain(pass, dev.Context().Window)
	if err != nil {
		return err
	}
	defer sc.Release()
	sc.SetVerticalSynchronizationInterval(cfg.VSyncInterval)

	var cb rhi.CommandBuffer
	for i := range frames {
		glfw.PollEvents()
		if win := glfwWindow(dev); win != nil && win.ShouldClose() {
			break
		}
		sc.ResizeBuffers()
		if !dev.BeginScene() {
			return errors.New("device closed")
		}
		t := float32(i) / float32(frames)
		cb.BeginDebugEvent("frame")
		cb.SetGraphicsRenderTarget(sc)
		cb.SetGraphicsViewportAndScissorRectangle(0, 0, sc.Width(), sc.Height())
		cb.ClearGraphics(rhi.ClearColorDepth, [4]float32{t, 0.2, 1 - t, 1}, 1, 0)
		cb.EndDebugEvent()
		dev.Submit(&cb)
		cb.Clear()
		dev.EndScene()
		sc.Present()
	}
	return nil
}

// glfwWindow returns the window of dev's context.
func glfwWindow(dev rhi.Device) *glfw.Window {
	if s, ok := dev.Context().Window.Surface.(surface); ok {
		return s.win
	}
	return nil
}
