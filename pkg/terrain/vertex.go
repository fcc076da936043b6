package terrain

import "math"

// noDataHeight replaces NaN elevations in the vertex buffer. The value itself
// never shows up on screen: every triangle touching a no-data sample is
// degenerated by BuildIndexData. It only has to be finite so the GPU never
// sees NaN.
const noDataHeight = 0

// BuildVertexData builds the interleaved vertex buffer for one tile.
//
// The tile spans a unit square in X/Z centered at the origin, with texture
// coordinates spanning [0,1]. Vertices cover the expanded grid: the core
// resolution x resolution samples plus a skirt ring whose vertices sit at the
// planar position of the nearest edge sample, dropped by skirtHeight. Rows run
// along Z (outer) and columns along X (inner), 8 floats per vertex.
//
// Normals are the (0,1,0) placeholder.
// TODO: derive per-vertex normals from neighboring samples.
func BuildVertexData(resolution int, skirtHeight float32, heights []float32) []float32 {
	hm := NewHeightmap(resolution, heights)

	data := make([]float32, 0, VertexCount(resolution)*VertexFloats)

	const w, h = 1.0, 1.0
	x0 := float32(-w / 2)
	z0 := float32(-h / 2)
	dx := float32(w) / float32(resolution-1)
	dz := float32(h) / float32(resolution-1)
	du := 1.0 / float32(resolution-1)
	dv := 1.0 / float32(resolution-1)

	for j := -1; j <= resolution; j++ {
		jBound := clampi(j, 0, resolution-1)
		z := z0 + float32(jBound)*dz
		v := float32(jBound) * dv

		for i := -1; i <= resolution; i++ {
			iBound := clampi(i, 0, resolution-1)
			x := x0 + float32(iBound)*dx
			u := float32(iBound) * du

			var height float32
			if i == iBound && j == jBound {
				height = hm.At(iBound, jBound)
			} else {
				// Skirt vertex: hang straight down from the tile edge.
				height = hm.At(iBound, jBound) - skirtHeight
			}
			if math.IsNaN(float64(height)) {
				height = noDataHeight
			}

			data = append(data,
				x, height, z, // position
				u, v, // texture coordinates
				0, 1, 0, // normal (up placeholder)
			)
		}
	}

	return data
}
