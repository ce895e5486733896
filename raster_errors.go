package raster

import (
	"errors"

	"github.com/gpuraster/gpuraster/internal/rasterizer"
)

// ErrGeometryTooLarge is returned when a transformed device coordinate
// overflows the subpixel fixed-point range. It is the single fatal
// input error the fixed-point substrate reports; it is never silently
// wrapped or clamped.
var ErrGeometryTooLarge = rasterizer.ErrGeometryTooLarge

// ErrInvalidArg is a precondition error: returned synchronously, before
// any sink call or state mutation.
var ErrInvalidArg = errors.New("raster: invalid argument")

// ErrOutOfMemory is a resource error. The rasterizer guarantees no
// output past the last sink call it successfully made, but does not
// roll that call back.
var ErrOutOfMemory = errors.New("raster: out of memory")

// ErrNotImplemented is returned by a Sink (typically a vertex-buffer
// builder) asked to produce output a given vertex format cannot carry,
// such as coverage geometry through a format with no diffuse channel.
var ErrNotImplemented = errors.New("raster: not implemented for this configuration")
