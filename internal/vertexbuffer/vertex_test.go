package vertexbuffer

import (
	"math"
	"testing"
)

func TestVertexFormatUVCount(t *testing.T) {
	cases := map[VertexFormat]int{
		FormatXYZ:     0,
		FormatXYZDUV2: 1,
		FormatXYZDUV6: 3,
		FormatXYZDUV8: 4,
	}
	for format, want := range cases {
		if got := format.UVCount(); got != want {
			t.Errorf("%v.UVCount() = %d, want %d", format, got, want)
		}
	}
}

func TestVertexFormatHasCoverage(t *testing.T) {
	if FormatXYZ.HasCoverage() {
		t.Error("FormatXYZ should have no diffuse channel")
	}
	if !FormatXYZDUV2.HasCoverage() {
		t.Error("FormatXYZDUV2 should have a diffuse channel")
	}
}

func TestDiffuseBitsSentinels(t *testing.T) {
	if DiffuseBits(0) != 0x00000000 {
		t.Errorf("DiffuseBits(0) = %#x, want 0x00000000", DiffuseBits(0))
	}
	if DiffuseBits(1) != 0x3f800000 {
		t.Errorf("DiffuseBits(1) = %#x, want 0x3f800000", DiffuseBits(1))
	}
	if math.Float32frombits(DiffuseBits(0.5)) != 0.5 {
		t.Errorf("DiffuseBits(0.5) does not round-trip to 0.5")
	}
}
