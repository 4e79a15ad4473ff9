package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// createTestWorld creates a single diffuse sphere one unit down the -z axis
func createTestWorld() *geometry.World {
	lambertian := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertian)
	return geometry.NewWorld(sphere)
}

func newTestIntegrator() *PathTracingIntegrator {
	return NewPathTracingIntegrator(DefaultConfig(), DefaultBackground())
}

// skyColor is the background formula written out by hand
func skyColor(direction core.Vec3) core.Vec3 {
	t := 0.5 * (direction.Normalize().Y + 1.0)
	return core.NewVec3(
		(1.0-t)*1.0+t*0.5,
		(1.0-t)*1.0+t*0.7,
		(1.0-t)*1.0+t*1.0,
	)
}

func TestPathTracing_EmptyWorldReturnsBackground(t *testing.T) {
	integrator := newTestIntegrator()
	world := geometry.NewWorld()
	sampler := core.NewSeededSampler(42)

	directions := []core.Vec3{
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, -1, 0),
		core.NewVec3(0, 0, -1),
		core.NewVec3(1, 2, 3),
		core.NewVec3(-0.2, -7, 0.1),
	}

	for _, dir := range directions {
		for _, depth := range []int{0, 1, 49, 50, 1000} {
			ray := core.NewRay(core.NewVec3(0, 0, 0), dir)
			got := integrator.RayColor(ray, world, sampler, depth)
			expected := skyColor(dir)
			if !got.ApproxEquals(expected, 1e-12) {
				t.Errorf("Direction %v depth %d: expected %v, got %v", dir, depth, expected, got)
			}
		}
	}
}

func TestPathTracing_BackgroundExtremes(t *testing.T) {
	bg := DefaultBackground()

	up := bg.Color(core.NewRay(core.Vec3{}, core.NewVec3(0, 5, 0)))
	if !up.ApproxEquals(core.NewVec3(0.5, 0.7, 1.0), 1e-12) {
		t.Errorf("Expected sky blue straight up, got %v", up)
	}

	down := bg.Color(core.NewRay(core.Vec3{}, core.NewVec3(0, -5, 0)))
	if !down.ApproxEquals(core.NewVec3(1, 1, 1), 1e-12) {
		t.Errorf("Expected white straight down, got %v", down)
	}
}

func TestPathTracing_DepthLimitReturnsBlack(t *testing.T) {
	integrator := newTestIntegrator()
	world := createTestWorld()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	for _, depth := range []int{50, 51, 100} {
		got := integrator.RayColor(ray, world, core.NewConstantSampler(0.5), depth)
		if got != (core.Vec3{}) {
			t.Errorf("Expected black at depth %d, got %v", depth, got)
		}
	}

	// One bounce below the limit still gathers light
	got := integrator.RayColor(ray, world, core.NewConstantSampler(0.5), 49)
	if got == (core.Vec3{}) {
		t.Error("Expected non-black color at depth 49")
	}
}

func TestPathTracing_AbsorptionReturnsBlack(t *testing.T) {
	// Fully fuzzy metal struck at a grazing angle
	metal := material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 1.0)
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, metal))
	ray := core.NewRay(core.NewVec3(-5, 0, 0.9), core.NewVec3(1, 0, 0))

	// Perturbation (0, 0, -0.95) pushes the reflection below the surface
	perturb := []core.Vec3{core.NewVec3(0.5, 0.5, 0.025)}

	hit, ok := world.ClosestHit(ray, 0.001, math.MaxFloat64)
	if !ok {
		t.Fatal("Expected the ray to hit the sphere")
	}
	if _, scattered := metal.Scatter(ray, *hit, core.NewSequenceSampler(nil, nil, perturb)); scattered {
		t.Fatal("Test setup: expected the metal to absorb this ray")
	}

	got := newTestIntegrator().RayColor(ray, world, core.NewSequenceSampler(nil, nil, perturb), 0)
	if got != (core.Vec3{}) {
		t.Errorf("Expected black for an absorbed ray, got %v", got)
	}
}

func TestPathTracing_AttenuationMultipliesBackground(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.6, 0.2)
	metal := material.NewMetal(albedo, 0.3)
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, -2), 1.0, metal))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Constant 0.5 maps to the zero perturbation, so the reflection is a perfect mirror along +z
	got := newTestIntegrator().RayColor(ray, world, core.NewConstantSampler(0.5), 0)
	expected := albedo.MultiplyVec(skyColor(core.NewVec3(0, 0, 1)))

	if !got.ApproxEquals(expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestPathTracing_SingleSphereTrace(t *testing.T) {
	integrator := newTestIntegrator()
	world := createTestWorld()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	sampler := core.NewConstantSampler(0.5)

	// Hit at (0,0,-0.5), diffuse bounce straight along the normal, escape toward +z
	got := integrator.RayColor(ray, world, sampler, 0)
	expected := core.NewVec3(0.075, 0.17, 0.5)
	if !got.ApproxEquals(expected, 1e-12) {
		t.Errorf("Expected linear %v, got %v", expected, got)
	}

	encoded := core.GammaEncode(got)
	expectedEncoded := core.NewVec3(0.27386, 0.41231, 0.70711)
	if !encoded.ApproxEquals(expectedEncoded, 1e-5) {
		t.Errorf("Expected gamma encoded %v, got %v", expectedEncoded, encoded)
	}

	if _, _, n3D := sampler.Draws(); n3D != 1 {
		t.Errorf("Expected exactly one sphere sample, got %d", n3D)
	}
}

func TestPathTracing_Reproducible(t *testing.T) {
	integrator := newTestIntegrator()
	glass := material.NewDielectric(1.5)
	world := createTestWorld()
	world.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0))))
	world.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, glass))

	first := core.NewSeededSampler(7)
	second := core.NewSeededSampler(7)

	for i := 0; i < 200; i++ {
		dir := core.NewVec3(float64(i%20)/10-1, float64(i/20)/10-0.5, -1)
		ray := core.NewRay(core.NewVec3(0, 0, 0), dir)
		a := integrator.RayColor(ray, world, first, 0)
		b := integrator.RayColor(ray, world, second, 0)
		if !a.Equals(b) {
			t.Fatalf("Ray %d: same seed produced %v and %v", i, a, b)
		}
	}
}
