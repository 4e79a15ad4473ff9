package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/loaders"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewFileScene creates a scene from a JSON scene file
func NewFileScene(path string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	sceneFile, err := loaders.LoadSceneFile(path)
	if err != nil {
		return nil, err
	}
	return newSceneFromFile(sceneFile, path, cameraOverrides)
}

func newSceneFromFile(sceneFile *loaders.SceneFile, path string, cameraOverrides []renderer.CameraConfig) (*Scene, error) {
	name := sceneFile.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	s := newScene(name, convertCamera(sceneFile.Camera), cameraOverrides)

	if bg := sceneFile.Background; bg != nil {
		s.Background = integrator.Background{Top: bg.Top.Vec3(), Bottom: bg.Bottom.Vec3()}
	}

	materials, err := sceneFile.BuildMaterials()
	if err != nil {
		return nil, fmt.Errorf("failed to convert materials: %w", err)
	}

	shapes, err := sceneFile.BuildShapes(materials)
	if err != nil {
		return nil, fmt.Errorf("failed to convert spheres: %w", err)
	}
	s.Add(shapes...)

	return s, nil
}

// convertCamera maps the file camera onto a camera config with a 2:1 default aspect
func convertCamera(spec loaders.CameraSpec) renderer.CameraConfig {
	up := core.NewVec3(0, 1, 0)
	if spec.Up != nil {
		up = spec.Up.Vec3()
	}

	vfov := spec.VFov
	if vfov == 0 {
		vfov = 90.0
	}

	return renderer.CameraConfig{
		Center:        spec.LookFrom.Vec3(),
		LookAt:        spec.LookAt.Vec3(),
		Up:            up,
		VFov:          vfov,
		AspectRatio:   2.0,
		Aperture:      spec.Aperture,
		FocusDistance: spec.FocusDistance,
	}
}
