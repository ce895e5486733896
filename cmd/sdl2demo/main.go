//go:build sdl2
// +build sdl2

// Command sdl2demo windows a handful of shapes through the rasterizer
// and the vertex-buffer builder, software-blits the resulting batches
// to an RGBA buffer, and presents them via SDL2 each frame.
package main

import (
	"fmt"
	"log"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	raster "github.com/gpuraster/gpuraster"
	"github.com/gpuraster/gpuraster/internal/basics"
	"github.com/gpuraster/gpuraster/internal/config"
	"github.com/gpuraster/gpuraster/internal/vertexbuffer"
)

const (
	windowWidth  = 640
	windowHeight = 480
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("gpuraster demo", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		windowWidth, windowHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA32), sdl.TEXTUREACCESS_STREAMING, int32(windowWidth), int32(windowHeight))
	if err != nil {
		return fmt.Errorf("create texture: %w", err)
	}
	defer texture.Destroy()

	frame := newFrameBuffer(windowWidth, windowHeight)
	shapes := demoShapes()

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				running = false
			}
		}
		if keys := sdl.GetKeyboardState(); keys[sdl.SCANCODE_ESCAPE] != 0 {
			running = false
		}

		frame.clear()
		for _, shape := range shapes {
			if err := rasterizeShape(frame, shape); err != nil {
				return fmt.Errorf("rasterize shape: %w", err)
			}
		}

		if err := texture.Update(nil, unsafe.Pointer(&frame.pixels[0]), frame.pitch()); err != nil {
			return fmt.Errorf("update texture: %w", err)
		}
		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()
		sdl.Delay(16)
	}
	return nil
}

// demoShapes builds a small fixed scene: one star-shaped polygon and
// one axis-aligned rectangle, enough to exercise the trapezoid,
// complex-scan, and parallelogram-fast-path sink calls in one frame.
func demoShapes() []raster.Shape {
	star := &raster.PolygonShape{
		FillRule: basics.FillNonZero,
		Figures: [][]raster.FigurePoint{{
			{X: 160, Y: 60, Type: raster.PointStart},
			{X: 200, Y: 180, Type: raster.PointLine},
			{X: 320, Y: 180, Type: raster.PointLine},
			{X: 220, Y: 250, Type: raster.PointLine},
			{X: 260, Y: 360, Type: raster.PointLine},
			{X: 160, Y: 290, Type: raster.PointLine},
			{X: 60, Y: 360, Type: raster.PointLine},
			{X: 100, Y: 250, Type: raster.PointLine},
			{X: 0, Y: 180, Type: raster.PointLine},
			{X: 120, Y: 180, Type: raster.PointLine, Close: true},
		}},
	}
	rect := &raster.RectangleShape{Left: 380, Top: 80, Right: 560, Bottom: 220, FillRule: basics.FillNonZero}
	return []raster.Shape{star, rect}
}

func rasterizeShape(frame *frameBuffer, shape raster.Shape) error {
	r := raster.New(config.Default())
	builder := vertexbuffer.NewBuilder(vertexbuffer.FormatXYZDUV2)

	clip := raster.IntRect{Left: 0, Top: 0, Right: windowWidth, Bottom: windowHeight}
	if err := r.Rasterize(clip, shape, raster.Identity(), builder, raster.RasterizeOptions{}); err != nil {
		return err
	}

	for _, batch := range builder.Batches() {
		frame.blitBatch(batch)
	}
	return nil
}
