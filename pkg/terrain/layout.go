// Package terrain builds renderable triangle meshes from DEM heightmap tiles.
//
// A tile is a resolution x resolution grid of float32 elevation samples
// (NaN = no data). The builder produces an interleaved vertex buffer and a
// uint32 index buffer over an expanded grid that adds a one-vertex skirt ring
// around the tile, hiding seams between neighboring tiles without stitching.
package terrain

// Interleaved vertex layout shared by the builders, the byte views handed to
// the renderer, and ray picking. Position, texture coordinate and normal are
// packed as 8 float32 per vertex.
const (
	VertexFloats = 8 // 3 position + 2 texcoord + 3 normal

	// Byte stride and attribute offsets for GPU attribute setup.
	VertexStride   = VertexFloats * 4
	PositionOffset = 0
	TexCoordOffset = 3 * 4
	NormalOffset   = 5 * 4
)

// ExpandedSize returns the vertex-grid side length for a tile of the given
// resolution, including the skirt ring.
func ExpandedSize(resolution int) int {
	return resolution + 2
}

// VertexCount returns the number of vertices in a tile's vertex buffer.
func VertexCount(resolution int) int {
	n := ExpandedSize(resolution)
	return n * n
}

// IndexCount returns the number of indices in a tile's index buffer:
// two triangles for every quad of the expanded grid.
func IndexCount(resolution int) int {
	quads := ExpandedSize(resolution) - 1
	return 3 * 2 * quads * quads
}
