package terrain

import (
	"fmt"
	"math"
)

// BuildIndexData builds the triangle index buffer for one tile, matching the
// vertex ordering of BuildVertexData.
//
// Every quad of the expanded grid contributes two triangles with a fixed
// diagonal split. A quad whose four corners touch a no-data sample (after
// clamping skirt coordinates back into the core grid) instead contributes two
// degenerate triangles: one vertex index repeated three times. That keeps the
// buffer at its fixed, resolution-determined size while guaranteeing the quad
// is never rasterized and never picked.
func BuildIndexData(resolution int, heights []float32) []uint32 {
	hm := NewHeightmap(resolution, heights)

	numVertices := ExpandedSize(resolution)
	if uint64(IndexCount(resolution)) > math.MaxUint32 {
		panic(fmt.Sprintf("terrain: resolution %d overflows 32-bit indices", resolution))
	}

	indices := make([]uint32, 0, IndexCount(resolution))

	for j := 0; j < numVertices-1; j++ {
		rowStart := uint32(j * numVertices)
		nextRowStart := uint32((j + 1) * numVertices)

		for i := 0; i < numVertices-1; i++ {
			if quadHasNoData(hm, i, j) {
				// Two invalid triangles in place of the quad.
				anchor := rowStart + uint32(i)
				indices = append(indices,
					anchor, anchor, anchor,
					anchor, anchor, anchor,
				)
				continue
			}

			topLeft := rowStart + uint32(i)
			topRight := topLeft + 1
			bottomLeft := nextRowStart + uint32(i)
			bottomRight := bottomLeft + 1

			indices = append(indices,
				topLeft, bottomLeft, topRight,
				bottomLeft, bottomRight, topRight,
			)
		}
	}

	return indices
}

// quadHasNoData reports whether any corner of the quad at expanded-grid
// position (i, j) maps to a missing core sample. Expanded coordinates are
// shifted by the skirt ring, so corner (i, j) reads core sample (i-1, j-1)
// clamped into the grid.
func quadHasNoData(hm Heightmap, i, j int) bool {
	return hm.NoDataAt(i-1, j-1) ||
		hm.NoDataAt(i, j-1) ||
		hm.NoDataAt(i-1, j) ||
		hm.NoDataAt(i, j)
}
