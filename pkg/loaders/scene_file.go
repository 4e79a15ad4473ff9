package loaders

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

var (
	// ErrUnknownMaterial is returned when a sphere references a material name that is not declared
	ErrUnknownMaterial = errors.New("unknown material")
	// ErrInvalidSphere is returned for spheres with a zero radius
	ErrInvalidSphere = errors.New("invalid sphere")
	// ErrInvalidMaterial is returned for materials with out of range parameters
	ErrInvalidMaterial = errors.New("invalid material")
)

// Vec is a JSON triple [x, y, z]
type Vec [3]float64

// Vec3 converts the triple to a vector
func (v Vec) Vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// CameraSpec describes the camera of a scene file
type CameraSpec struct {
	LookFrom      Vec     `json:"lookFrom"`
	LookAt        Vec     `json:"lookAt"`
	Up            *Vec    `json:"up,omitempty"` // defaults to +y
	VFov          float64 `json:"vfov"`
	Aperture      float64 `json:"aperture,omitempty"`
	FocusDistance float64 `json:"focusDistance,omitempty"` // 0 focuses on lookAt
}

// BackgroundSpec describes the sky gradient
type BackgroundSpec struct {
	Top    Vec `json:"top"`
	Bottom Vec `json:"bottom"`
}

// MaterialSpec describes one named material
type MaterialSpec struct {
	Type            string  `json:"type"` // lambertian, metal or dielectric
	Albedo          Vec     `json:"albedo"`
	Fuzz            float64 `json:"fuzz,omitempty"`
	RefractiveIndex float64 `json:"refractiveIndex,omitempty"`
}

// SphereSpec places a sphere with a named material
type SphereSpec struct {
	Center   Vec     `json:"center"`
	Radius   float64 `json:"radius"` // negative for an inverted shell
	Material string  `json:"material"`
}

// SceneFile is the parsed form of a JSON scene description
type SceneFile struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	Camera      CameraSpec              `json:"camera"`
	Background  *BackgroundSpec         `json:"background,omitempty"` // defaults to the white to blue sky
	Materials   map[string]MaterialSpec `json:"materials"`
	Spheres     []SphereSpec            `json:"spheres"`
}

// LoadSceneFile reads and parses a JSON scene file
func LoadSceneFile(filename string) (*SceneFile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	sceneFile, err := ParseSceneFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return sceneFile, nil
}

// ParseSceneFile decodes a JSON scene description. Unknown fields are rejected.
func ParseSceneFile(r io.Reader) (*SceneFile, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var sceneFile SceneFile
	if err := decoder.Decode(&sceneFile); err != nil {
		return nil, err
	}
	return &sceneFile, nil
}

// BuildMaterials creates one shared material per declared name
func (sf *SceneFile) BuildMaterials() (map[string]*material.Material, error) {
	// Sorted so error reporting is stable
	names := make([]string, 0, len(sf.Materials))
	for name := range sf.Materials {
		names = append(names, name)
	}
	sort.Strings(names)

	materials := make(map[string]*material.Material, len(names))
	for _, name := range names {
		mat, err := sf.Materials[name].Build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = mat
	}
	return materials, nil
}

// Build converts the spec to a material
func (ms MaterialSpec) Build() (*material.Material, error) {
	kind, err := material.ParseKind(ms.Type)
	if err != nil {
		return nil, err
	}

	switch kind {
	case material.KindLambertian:
		return material.NewLambertian(ms.Albedo.Vec3()), nil
	case material.KindMetal:
		if ms.Fuzz < 0 || ms.Fuzz > 1 {
			return nil, fmt.Errorf("%w: fuzz %g outside [0,1]", ErrInvalidMaterial, ms.Fuzz)
		}
		return material.NewMetal(ms.Albedo.Vec3(), ms.Fuzz), nil
	default:
		if ms.RefractiveIndex <= 0 {
			return nil, fmt.Errorf("%w: refractive index must be positive, got %g", ErrInvalidMaterial, ms.RefractiveIndex)
		}
		return material.NewDielectric(ms.RefractiveIndex), nil
	}
}

// BuildShapes creates the spheres in file order, sharing materials by pointer
func (sf *SceneFile) BuildShapes(materials map[string]*material.Material) ([]geometry.Shape, error) {
	shapes := make([]geometry.Shape, 0, len(sf.Spheres))
	for i, spec := range sf.Spheres {
		mat, ok := materials[spec.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: %w %q", i, ErrUnknownMaterial, spec.Material)
		}
		if spec.Radius == 0 {
			return nil, fmt.Errorf("sphere %d: %w: radius must be non-zero", i, ErrInvalidSphere)
		}
		shapes = append(shapes, geometry.NewSphere(spec.Center.Vec3(), spec.Radius, mat))
	}
	return shapes, nil
}
