package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// scatterMetal reflects the normalized incoming direction and perturbs it by fuzz.
// A sphere sample is drawn even when fuzz is zero so the random stream does not depend on fuzz.
func scatterMetal(albedo core.Vec3, fuzz float64, rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := Reflect(rayIn.Direction.Normalize(), hit.Normal)
	reflected = reflected.Add(core.RandomInUnitSphere(sampler).Multiply(fuzz))

	// Only scatter if the ray is above the surface
	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: albedo,
	}, true
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
