package rasterizer

import (
	"errors"

	"github.com/gpuraster/gpuraster/internal/basics"
)

// ErrGeometryTooLarge is returned when a device coordinate, multiplied
// by basics.SubpixelScale, would overflow the signed integer range used
// for subpixel arithmetic. It is the single fatal input error the
// fixed-point substrate reports; callers check for it before scaling a
// coordinate themselves (see the root package's toSubpixelPoint).
var ErrGeometryTooLarge = errors.New("rasterizer: geometry too large for subpixel fixed point")

// FromSubpixel converts a subpixel-quantized coordinate back to device
// space.
func FromSubpixel(v int) float64 {
	return float64(v) / basics.SubpixelScale
}
