package raster

import "github.com/gpuraster/gpuraster/internal/rasterizer"

// Sink is the output contract the scan converter drives: a stream of
// trapezoid, complex-scan, and parallelogram calls describing an
// anti-aliased fill. See internal/rasterizer.Sink for the full method
// docs; it is aliased here so callers never need to import the
// internal package directly.
type Sink = rasterizer.Sink

// CoverageCursor walks one complex scan's coverage-interval list.
type CoverageCursor = rasterizer.CoverageCursor
