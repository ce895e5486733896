// Package config provides tunable defaults for the rasterizer core.
// There is no package-level global: callers build a Config value (usually
// from Default) and pass it to raster.New, rather than binding to flags or
// environment variables. The rasterizer is a pure computation, not a
// service, so its knobs are plain Go values set by the embedding
// application.
package config

// DefaultEdgeArenaBlockSize is the number of edges allocated per arena block
// in the edge store (internal/rasterizer). Larger blocks amortize
// allocation cost for complex paths at the expense of peak memory for
// simple ones.
const DefaultEdgeArenaBlockSize = 256

// DefaultIntervalPoolBlockSize is the number of coverage intervals
// allocated per arena block in the coverage buffer.
const DefaultIntervalPoolBlockSize = 256

// DefaultFlattenToleranceSubpixels bounds the maximum deviation the
// Bézier flattener (internal/curves) allows between the true curve and
// its polyline approximation, expressed in subpixel units (see
// internal/basics.SubpixelScale). The spec's ¼-pixel tolerance is
// SubpixelScale/4 in this unit.
const DefaultFlattenToleranceSubpixels = 2

// Config holds process-wide tunables for a Rasterizer. Zero value is
// not valid; use Default() and override selected fields.
type Config struct {
	// EdgeArenaBlockSize is the edge store's arena block size in edges.
	EdgeArenaBlockSize int

	// IntervalPoolBlockSize is the coverage buffer's arena block size
	// in intervals.
	IntervalPoolBlockSize int

	// FlattenToleranceSubpixels overrides the Bézier flattening
	// tolerance. Smaller values subdivide more aggressively.
	FlattenToleranceSubpixels int

	// RetainNavigation is carried on the struct but not read by the
	// rasterizer: arenas are reset at the start of every Rasterize call
	// either way, and no point-query (HitTest-style) API exists.
	RetainNavigation bool
}

// Default returns the configuration used when none is supplied.
func Default() Config {
	return Config{
		EdgeArenaBlockSize:        DefaultEdgeArenaBlockSize,
		IntervalPoolBlockSize:     DefaultIntervalPoolBlockSize,
		FlattenToleranceSubpixels: DefaultFlattenToleranceSubpixels,
		RetainNavigation:          false,
	}
}

// LinearGamma returns an identity gamma table, useful as a starting
// point for callers who want to tweak only part of the curve before
// passing it to a vertexbuffer.Builder's SetGamma.
func LinearGamma() [256]uint8 {
	var g [256]uint8
	for i := range g {
		g[i] = uint8(i)
	}
	return g
}
