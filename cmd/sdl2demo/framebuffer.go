//go:build sdl2
// +build sdl2

package main

import (
	"math"

	"github.com/gpuraster/gpuraster/internal/vertexbuffer"
)

// frameBuffer is a software RGBA8888 buffer the demo blits rasterizer
// output into before handing it to SDL2's streaming texture. Coverage
// geometry doesn't need a GPU to demonstrate; this stands in for the
// vertex/pixel shader pair a real renderer would bind.
type frameBuffer struct {
	w, h   int
	pixels []byte // 4 bytes per pixel, RGBA order
}

func newFrameBuffer(w, h int) *frameBuffer {
	return &frameBuffer{w: w, h: h, pixels: make([]byte, w*h*4)}
}

func (f *frameBuffer) pitch() int { return f.w * 4 }

func (f *frameBuffer) clear() {
	for i := range f.pixels {
		f.pixels[i] = 0
	}
}

// blend writes a white pixel at (x, y) scaled by coverage in [0,1],
// additively, so overlapping triangles within one batch accumulate
// correctly at shared antialiasing rails.
func (f *frameBuffer) blend(x, y int, coverage float32) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h || coverage <= 0 {
		return
	}
	if coverage > 1 {
		coverage = 1
	}
	i := (y*f.w + x) * 4
	add := func(channel int) {
		v := float32(f.pixels[i+channel]) + coverage*255
		if v > 255 {
			v = 255
		}
		f.pixels[i+channel] = byte(v)
	}
	add(0)
	add(1)
	add(2)
	f.pixels[i+3] = 255
}

// blitBatch rasterizes every triangle in batch with a simple CPU
// barycentric fill, reading each vertex's Diffuse channel as coverage.
func (f *frameBuffer) blitBatch(batch vertexbuffer.Batch) {
	switch batch.Topology {
	case vertexbuffer.TriangleStrip:
		for i := 0; i+2 < len(batch.Vertices); i++ {
			a, b, c := batch.Vertices[i], batch.Vertices[i+1], batch.Vertices[i+2]
			if i%2 == 1 {
				b, c = c, b
			}
			f.fillTriangle(a, b, c)
		}
	case vertexbuffer.TriangleList:
		for i := 0; i+2 < len(batch.Vertices); i += 3 {
			f.fillTriangle(batch.Vertices[i], batch.Vertices[i+1], batch.Vertices[i+2])
		}
	}
}

func (f *frameBuffer) fillTriangle(a, b, c vertexbuffer.Vertex) {
	minX := int(math.Floor(float64(min3(a.X, b.X, c.X))))
	maxX := int(math.Ceil(float64(max3(a.X, b.X, c.X))))
	minY := int(math.Floor(float64(min3(a.Y, b.Y, c.Y))))
	maxY := int(math.Ceil(float64(max3(a.Y, b.Y, c.Y))))

	area := edgeFn(a, b, c)
	if area == 0 {
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := vertexbuffer.Vertex{X: float32(x) + 0.5, Y: float32(y) + 0.5}
			w0 := edgeFn(b, c, p)
			w1 := edgeFn(c, a, p)
			w2 := edgeFn(a, b, p)
			if (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0) {
				w0, w1, w2 = w0/area, w1/area, w2/area
				coverage := w0*diffuseOf(a) + w1*diffuseOf(b) + w2*diffuseOf(c)
				f.blend(x, y, coverage)
			}
		}
	}
}

func diffuseOf(v vertexbuffer.Vertex) float32 {
	return math.Float32frombits(v.Diffuse)
}

func edgeFn(a, b, c vertexbuffer.Vertex) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
