package terrain

import (
	"math"
	"testing"
)

func TestHeightmapAt(t *testing.T) {
	hm := NewHeightmap(2, []float32{1, 2, 3, 4})

	tests := []struct {
		i, j int
		want float32
	}{
		{0, 0, 1},
		{1, 0, 2},
		{0, 1, 3},
		{1, 1, 4},
	}
	for _, tt := range tests {
		if got := hm.At(tt.i, tt.j); got != tt.want {
			t.Errorf("At(%d,%d) = %g, want %g", tt.i, tt.j, got, tt.want)
		}
	}
}

func TestHeightmapAtClamped(t *testing.T) {
	hm := NewHeightmap(2, []float32{1, 2, 3, 4})

	tests := []struct {
		i, j int
		want float32
	}{
		{-1, -1, 1}, // clamps to (0,0)
		{2, 0, 2},   // clamps to (1,0)
		{-1, 2, 3},  // clamps to (0,1)
		{5, 5, 4},   // clamps to (1,1)
		{1, 1, 4},   // in range, untouched
	}
	for _, tt := range tests {
		if got := hm.AtClamped(tt.i, tt.j); got != tt.want {
			t.Errorf("AtClamped(%d,%d) = %g, want %g", tt.i, tt.j, got, tt.want)
		}
	}
}

func TestHeightmapNoDataAt(t *testing.T) {
	hm := NewHeightmap(2, []float32{1, float32(math.NaN()), 3, 4})

	if hm.NoDataAt(0, 0) {
		t.Error("valid sample reported as no-data")
	}
	if !hm.NoDataAt(1, 0) {
		t.Error("NaN sample not reported as no-data")
	}
	// Out-of-range coordinates clamp onto the NaN edge sample.
	if !hm.NoDataAt(2, -1) {
		t.Error("clamped coordinate should reach the NaN sample")
	}
}
