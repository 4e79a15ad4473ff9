package material

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// scatterDielectric chooses between reflection and refraction with Schlick's approximation.
// Dielectrics never absorb and always attenuate by 1.0.
func scatterDielectric(refractiveIndex float64, rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)
	direction := rayIn.Direction
	dirDotN := direction.Dot(hit.Normal)
	lengthSq := direction.LengthSquared()

	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	if dirDotN > 0 {
		// Exiting the material (from glass to air)
		outwardNormal = hit.Normal.Negate()
		niOverNt = refractiveIndex
		cosine = refractiveIndex * dirDotN / lengthSq
	} else {
		// Entering the material (from air to glass)
		outwardNormal = hit.Normal
		niOverNt = 1.0 / refractiveIndex
		cosine = -dirDotN / lengthSq
	}

	refracted, canRefract := Refract(direction, outwardNormal, niOverNt)
	reflectance := Schlick(cosine, refractiveIndex)

	// Always consume exactly one draw, even under total internal reflection
	u := sampler.Get1D()

	var scatterDirection core.Vec3
	if canRefract && u > reflectance {
		scatterDirection = refracted
	} else {
		scatterDirection = Reflect(direction, hit.Normal)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: attenuation,
	}, true
}

// Refract bends v through a surface with normal n using Snell's law.
// It returns false on total internal reflection.
func Refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1.0-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	return uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).Subtract(n.Multiply(math.Sqrt(discriminant))), true
}

// Schlick approximates the Fresnel reflectance for a given cosine and refractive index
func Schlick(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
