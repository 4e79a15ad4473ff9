package scene

import (
	"math/rand"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewRandomScene creates a 22x22 field of small random spheres on a grey ground, seen from
// (3,3,2) through a wide aperture focused on (0,0,-1). Layout and materials are drawn from their
// own generator seeded with seed.
func NewRandomScene(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene {
	lookFrom := core.NewVec3(3, 3, 2)
	lookAt := core.NewVec3(0, 0, -1)
	cameraConfig := renderer.CameraConfig{
		Center:        lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   2.0,
		Aperture:      2.0,
		FocusDistance: lookFrom.Subtract(lookAt).Length(),
	}

	s := newScene("random", cameraConfig, cameraOverrides)
	addRandomField(s, rand.New(rand.NewSource(seed)))
	return s
}

// NewCoverScene is the random field plus three large glass, diffuse and metal spheres, framed
// from (13,2,3) with a narrow aperture.
func NewCoverScene(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   2.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	s := newScene("cover", cameraConfig, cameraOverrides)
	addRandomField(s, rand.New(rand.NewSource(seed)))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}

// addRandomField adds the ground and the small spheres. Cells landing within 0.9 (squared) of
// (4,0.2,0) are left empty.
func addRandomField(s *Scene, random *rand.Rand) {
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	clearing := core.NewVec3(4, 0.2, 0)
	glass := material.NewDielectric(1.5)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())

			if center.Subtract(clearing).LengthSquared() <= 0.9 {
				continue
			}

			var mat *material.Material
			switch {
			case chooseMat < 0.8:
				albedo := core.NewVec3(random.Float64(), random.Float64(), random.Float64())
				mat = material.NewLambertian(albedo.Square())
			case chooseMat < 0.95:
				albedo := core.NewVec3(
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
				)
				mat = material.NewMetal(albedo, 0.5*random.Float64())
			default:
				mat = glass
			}

			s.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}
}
