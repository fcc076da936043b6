package terrain

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/aurora3d/terratile/pkg/picking"
)

// TileGeometry holds the finished mesh buffers for one DEM tile.
//
// Both buffers are produced once by NewTileGeometry and never change; a new
// heightmap means a new TileGeometry. The same buffers back both rendering
// (via the byte views) and ray picking, so the two can never disagree about
// the mesh. Concurrent reads are safe.
type TileGeometry struct {
	resolution  int
	skirtHeight float32
	vertexData  []float32
	indexData   []uint32
	bounds      picking.AABB
}

// NewTileGeometry builds the vertex and index buffers for a tile.
// Panics on invalid resolution or a mismatched heights slice, like the
// underlying builders.
func NewTileGeometry(resolution int, skirtHeight float32, heights []float32) *TileGeometry {
	g := &TileGeometry{
		resolution:  resolution,
		skirtHeight: skirtHeight,
		vertexData:  BuildVertexData(resolution, skirtHeight, heights),
		indexData:   BuildIndexData(resolution, heights),
	}
	g.bounds = computeBounds(g.vertexData)
	return g
}

// Resolution returns the core grid side length.
func (g *TileGeometry) Resolution() int { return g.resolution }

// SkirtHeight returns the skirt drop the tile was built with.
func (g *TileGeometry) SkirtHeight() float32 { return g.skirtHeight }

// VertexData returns the interleaved vertex buffer. Callers must not mutate it.
func (g *TileGeometry) VertexData() []float32 { return g.vertexData }

// IndexData returns the triangle index buffer. Callers must not mutate it.
func (g *TileGeometry) IndexData() []uint32 { return g.indexData }

// TriangleCount returns the number of triangles, degenerate ones included.
func (g *TileGeometry) TriangleCount() int { return len(g.indexData) / 3 }

// Bounds returns the object-space bounding box of the tile mesh, useful as a
// coarse pre-test before the per-triangle RayIntersection walk.
func (g *TileGeometry) Bounds() picking.AABB { return g.bounds }

// VertexBytes returns the vertex buffer packed as little-endian bytes with
// the VertexStride layout, ready for GPU upload by the host renderer.
func (g *TileGeometry) VertexBytes() []byte {
	out := make([]byte, len(g.vertexData)*4)
	for i, f := range g.vertexData {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(f))
	}
	return out
}

// IndexBytes returns the index buffer packed as little-endian uint32 bytes.
func (g *TileGeometry) IndexBytes() []byte {
	out := make([]byte, len(g.indexData)*4)
	for i, idx := range g.indexData {
		binary.LittleEndian.PutUint32(out[i*4:], idx)
	}
	return out
}

// position reads the object-space position of vertex v from the interleaved
// buffer.
func (g *TileGeometry) position(v uint32) mgl32.Vec3 {
	base := int(v) * VertexFloats
	return mgl32.Vec3{g.vertexData[base], g.vertexData[base+1], g.vertexData[base+2]}
}

// RayIntersection walks every triangle of the tile, transforms it by
// worldTransform and returns the intersection point closest to the ray
// origin, or false when nothing is hit.
//
// This walk is specific to the buffers built by this package (8-float vertex
// stride, consecutive index triples); it is not a general mesh intersector.
// Degenerate no-data triangles cannot report a hit. Complexity is linear in
// the triangle count; tiles are small enough that no spatial index is needed.
func (g *TileGeometry) RayIntersection(ray picking.Ray, worldTransform mgl32.Mat4) (mgl32.Vec3, bool) {
	var closest mgl32.Vec3
	minDistance := float32(-1)

	for tri := 0; tri+2 < len(g.indexData); tri += 3 {
		a := mgl32.TransformCoordinate(g.position(g.indexData[tri]), worldTransform)
		b := mgl32.TransformCoordinate(g.position(g.indexData[tri+1]), worldTransform)
		c := mgl32.TransformCoordinate(g.position(g.indexData[tri+2]), worldTransform)

		_, t, ok := ray.IntersectTriangle(a, b, c)
		if !ok {
			continue
		}

		pt := ray.Point(t * ray.Distance)
		distance := ray.ProjectedDistance(pt)

		// Keep only the first intersection along the ray.
		if minDistance < 0 || distance < minDistance {
			minDistance = distance
			closest = pt
		}
	}

	return closest, minDistance >= 0
}

func computeBounds(vertexData []float32) picking.AABB {
	bounds := picking.AABB{
		Min: mgl32.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: mgl32.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
	for base := 0; base+2 < len(vertexData); base += VertexFloats {
		bounds.Extend(mgl32.Vec3{vertexData[base], vertexData[base+1], vertexData[base+2]})
	}
	return bounds
}
