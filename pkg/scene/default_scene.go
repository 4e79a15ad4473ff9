package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// originCamera is the fixed 2:1 camera at the origin looking down -z
func originCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 2.0,
	}
}

// NewSingleSphereScene creates one diffuse sphere resting on a large ground sphere
func NewSingleSphereScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := newScene("single", originCamera(), cameraOverrides)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
	)

	return s
}

// NewDefaultScene creates the three material scene: a diffuse sphere between a gold mirror
// and a hollow glass bubble, on a yellow ground
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := newScene("default", originCamera(), cameraOverrides)
	addThreeMaterialSpheres(s)
	return s
}

// NewFocusScene frames the default spheres from above with a wide aperture, focused on the
// center sphere
func NewFocusScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(3, 3, 2),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20.0,
		AspectRatio: 2.0,
		Aperture:    2.0,
	}

	s := newScene("focus", cameraConfig, cameraOverrides)
	addThreeMaterialSpheres(s)
	return s
}

func addThreeMaterialSpheres(s *Scene) {
	glass := material.NewDielectric(1.5)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)),
		// Hollow bubble: the inverted inner sphere shares the glass material
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
	)
}
