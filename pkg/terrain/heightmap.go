package terrain

import (
	"fmt"
	"math"
)

// Heightmap is a row-major square grid of elevation samples.
// NaN marks a sample with no data. The grid is read-only once handed to the
// builders; callers must not mutate it while a build is in flight.
type Heightmap struct {
	Resolution int
	Samples    []float32
}

// NewHeightmap wraps samples as a Heightmap.
// Panics if resolution < 2 or the sample count does not match: a mismatched
// grid is a caller bug, not a runtime condition.
func NewHeightmap(resolution int, samples []float32) Heightmap {
	if resolution < 2 {
		panic(fmt.Sprintf("terrain: resolution must be >= 2, got %d", resolution))
	}
	if len(samples) != resolution*resolution {
		panic(fmt.Sprintf("terrain: expected %d samples for resolution %d, got %d",
			resolution*resolution, resolution, len(samples)))
	}
	return Heightmap{Resolution: resolution, Samples: samples}
}

// At returns the sample at column i, row j.
func (h Heightmap) At(i, j int) float32 {
	return h.Samples[j*h.Resolution+i]
}

// AtClamped returns the sample at (i, j) with both coordinates clamped into
// the grid. Skirt vertices use this to reuse the nearest edge sample.
func (h Heightmap) AtClamped(i, j int) float32 {
	return h.At(clampi(i, 0, h.Resolution-1), clampi(j, 0, h.Resolution-1))
}

// NoDataAt reports whether the clamped sample at (i, j) is missing.
func (h Heightmap) NoDataAt(i, j int) bool {
	return math.IsNaN(float64(h.AtClamped(i, j)))
}

func clampi(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
