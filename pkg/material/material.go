package material

import (
	"fmt"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Kind tags the material variant
type Kind int

const (
	KindLambertian Kind = iota
	KindMetal
	KindDielectric
)

// String returns the name used in scene files
func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a scene file name to a Kind
func ParseKind(name string) (Kind, error) {
	switch name {
	case "lambertian", "diffuse":
		return KindLambertian, nil
	case "metal":
		return KindMetal, nil
	case "dielectric", "glass":
		return KindDielectric, nil
	default:
		return 0, fmt.Errorf("unknown material type %q", name)
	}
}

// Material is a closed variant over lambertian, metal and dielectric surfaces.
// Materials are immutable once built and shared by pointer between shapes.
type Material struct {
	Kind            Kind
	Albedo          core.Vec3 // Lambertian and metal reflectance
	Fuzz            float64   // Metal only: 0.0 = perfect mirror, 1.0 = very fuzzy
	RefractiveIndex float64   // Dielectric only
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Material {
	return &Material{Kind: KindLambertian, Albedo: albedo}
}

// NewMetal creates a new metal material. Fuzz is clamped to [0,1].
func NewMetal(albedo core.Vec3, fuzz float64) *Material {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Material{Kind: KindMetal, Albedo: albedo, Fuzz: fuzz}
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Material {
	return &Material{Kind: KindDielectric, RefractiveIndex: refractiveIndex}
}

// Scatter decides how rayIn continues after hitting the surface described by hit.
// It returns false when the ray is absorbed.
func (m *Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.Kind {
	case KindLambertian:
		return scatterLambertian(m.Albedo, hit, sampler)
	case KindMetal:
		return scatterMetal(m.Albedo, m.Fuzz, rayIn, hit, sampler)
	case KindDielectric:
		return scatterDielectric(m.RefractiveIndex, rayIn, hit, sampler)
	default:
		panic(fmt.Sprintf("material: unhandled kind %v", m.Kind))
	}
}

// String describes the material for logs and scene listings
func (m *Material) String() string {
	switch m.Kind {
	case KindMetal:
		return fmt.Sprintf("metal(albedo=%v, fuzz=%.2f)", m.Albedo, m.Fuzz)
	case KindDielectric:
		return fmt.Sprintf("dielectric(ior=%.2f)", m.RefractiveIndex)
	default:
		return fmt.Sprintf("%s(albedo=%v)", m.Kind, m.Albedo)
	}
}
