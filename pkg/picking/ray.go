// Package picking provides ray casting primitives for terrain picking.
package picking

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-6

// Ray represents a ray in 3D space.
// Direction must be normalized; Distance is the maximum travel distance and
// scales the parametric t returned by the intersection tests.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
	Distance  float32
}

// NewRay builds a ray from origin towards direction, normalizing it.
func NewRay(origin, direction mgl32.Vec3, distance float32) Ray {
	if l := direction.Len(); l > 0 {
		direction = direction.Mul(1 / l)
	}
	return Ray{Origin: origin, Direction: direction, Distance: distance}
}

// Point returns the point at the given distance along the ray.
func (r Ray) Point(dist float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(dist))
}

// ProjectedDistance returns the signed distance of p from the ray origin,
// projected onto the ray direction.
func (r Ray) ProjectedDistance(p mgl32.Vec3) float32 {
	return p.Sub(r.Origin).Dot(r.Direction)
}

// IntersectTriangle tests the ray against triangle (a, b, c) using the
// Moller-Trumbore algorithm over the segment [Origin, Origin+Direction*Distance].
//
// On a hit it returns the barycentric coordinates (u, v, w) of the
// intersection and the parametric t scaled so that the hit point is
// r.Point(t * r.Distance). Degenerate (zero-area) triangles never intersect:
// their edge cross product vanishes, which the determinant guard rejects
// before any division can produce NaN.
func (r Ray) IntersectTriangle(a, b, c mgl32.Vec3) (uvw mgl32.Vec3, t float32, ok bool) {
	travel := r.Direction.Mul(r.Distance)

	edge1 := b.Sub(a)
	edge2 := c.Sub(a)

	h := travel.Cross(edge2)
	det := edge1.Dot(h)
	if det > -epsilon && det < epsilon {
		// Parallel to the triangle plane, or the triangle has no area.
		return mgl32.Vec3{}, 0, false
	}

	inv := 1 / det
	s := r.Origin.Sub(a)
	u := inv * s.Dot(h)
	if u < 0 || u > 1 {
		return mgl32.Vec3{}, 0, false
	}

	q := s.Cross(edge1)
	v := inv * travel.Dot(q)
	if v < 0 || u+v > 1 {
		return mgl32.Vec3{}, 0, false
	}

	t = inv * edge2.Dot(q)
	if t < epsilon || t > 1 {
		// Behind the origin, or past the ray's travel distance.
		return mgl32.Vec3{}, 0, false
	}

	return mgl32.Vec3{1 - u - v, u, v}, t, true
}

// IntersectPlaneY intersects the ray with a horizontal plane at the given Y
// level. Returns the intersection point and whether it lies ahead of the
// origin.
func (r Ray) IntersectPlaneY(planeY float32) (mgl32.Vec3, bool) {
	if gomath.Abs(float64(r.Direction.Y())) < epsilon {
		return mgl32.Vec3{}, false // parallel to the plane
	}

	t := (planeY - r.Origin.Y()) / r.Direction.Y()
	if t < 0 {
		return mgl32.Vec3{}, false // behind the origin
	}
	return r.Point(t), true
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewAABB creates an AABB from two opposite corners, swapping axes as needed
// so that Min <= Max holds componentwise.
func NewAABB(min, max mgl32.Vec3) AABB {
	for i := 0; i < 3; i++ {
		if min[i] > max[i] {
			min[i], max[i] = max[i], min[i]
		}
	}
	return AABB{Min: min, Max: max}
}

// Extend grows the box to contain p.
func (b *AABB) Extend(p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// IntersectAABB tests the ray against a bounding box using the slab method.
// Returns the entry distance, or the exit distance when the origin is inside
// the box.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		if r.Direction[axis] != 0 {
			t1 := (box.Min[axis] - r.Origin[axis]) / r.Direction[axis]
			t2 := (box.Max[axis] - r.Origin[axis]) / r.Direction[axis]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
		} else if r.Origin[axis] < box.Min[axis] || r.Origin[axis] > box.Max[axis] {
			return 0, false
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
