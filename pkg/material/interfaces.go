package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection.
// Records are transient: built per intersection test and consumed by the integrator.
type HitRecord struct {
	T        float64   // Parameter t along the ray
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // (Point - center) / radius; points inward for negative radius spheres
	Material *Material // Material of the hit object, shared with the shape
}
