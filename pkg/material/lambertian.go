package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// scatterLambertian bounces toward a random point in the unit sphere tangent to the hit point
func scatterLambertian(albedo core.Vec3, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	target := hit.Point.Add(hit.Normal).Add(core.RandomInUnitSphere(sampler))
	scatterDirection := target.Subtract(hit.Point)

	// Directions grazing or entering the surface are absorbed
	if scatterDirection.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: albedo,
	}, true
}
