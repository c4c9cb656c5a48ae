package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// HitRecord is the nearest intersection of a ray with the scene
type HitRecord struct {
	T      float64   // Ray parameter of the hit
	Point  core.Vec3 // Point of intersection
	Normal core.Vec3 // Unit surface normal, already flipped for inverted shapes
	Object *Object   // The object that was hit
}

// NearestHit finds the closest object along the ray with t > core.Epsilon.
// When two objects are hit at the same distance the one declared first wins.
func (s *Scene) NearestHit(ray core.Ray) (HitRecord, bool) {
	var best HitRecord
	found := false
	closest := math.Inf(1)

	for i := range s.objects {
		obj := &s.objects[i]
		// Search slightly past the current best so ties are seen and resolved here
		hit, ok := obj.Shape.Hit(ray, core.Epsilon, closest+core.TieTolerance)
		if !ok {
			continue
		}
		if found && hit.T >= closest-core.TieTolerance {
			continue
		}
		best = HitRecord{T: hit.T, Point: hit.Point, Normal: hit.Normal, Object: obj}
		closest = hit.T
		found = true
	}

	return best, found
}

// Occluded reports whether any object blocks the ray before maxDistance.
// maxDistance may be +Inf for lights at infinity.
func (s *Scene) Occluded(ray core.Ray, maxDistance float64) bool {
	for i := range s.objects {
		if _, ok := s.objects[i].Shape.Hit(ray, core.Epsilon, maxDistance); ok {
			return true
		}
	}
	return false
}
