package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	// Perpendicular distance from the center to the ray line is 2 > radius
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	intervals := [][2]float64{
		{0.001, 1000.0},
		{-1000.0, 1000.0},
		{-math.MaxFloat64, math.MaxFloat64},
		{0, 1},
	}

	for _, iv := range intervals {
		if hit, isHit := sphere.Hit(ray, iv[0], iv[1]); isHit {
			t.Errorf("Expected miss for interval %v, but got hit at t=%f", iv, hit.T)
		}
	}
}

func TestSphere_Hit_SymmetricRoots(t *testing.T) {
	center := core.NewVec3(0, 0, -5)
	sphere := NewSphere(center, 1.0, nil)

	tests := []struct {
		name      string
		direction core.Vec3
		near, far float64
	}{
		{"unit direction", core.NewVec3(0, 0, -1), 4.0, 6.0},
		{"unnormalized direction", core.NewVec3(0, 0, -2), 2.0, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.direction)

			nearHit, ok := sphere.Hit(ray, 0.001, 1000.0)
			if !ok {
				t.Fatal("Expected near hit")
			}
			// Skipping past the near root exposes the far one
			farHit, ok := sphere.Hit(ray, nearHit.T+1e-6, 1000.0)
			if !ok {
				t.Fatal("Expected far hit")
			}

			if math.Abs(nearHit.T-tt.near) > 1e-9 || math.Abs(farHit.T-tt.far) > 1e-9 {
				t.Errorf("Expected roots %f and %f, got %f and %f", tt.near, tt.far, nearHit.T, farHit.T)
			}

			// Hit points are symmetric about the center along the ray axis
			mid := nearHit.Point.Add(farHit.Point).Multiply(0.5)
			if !mid.ApproxEquals(center, 1e-9) {
				t.Errorf("Expected roots symmetric about %v, midpoint was %v", center, mid)
			}
		})
	}
}

func TestSphere_Hit_OutwardNormals(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2.5, nil)

	directions := []core.Vec3{
		core.NewVec3(0, 0, -1),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0.3, -0.4, 0.8),
		core.NewVec3(-2, 1, 0.5),
	}

	for _, dir := range directions {
		// Start outside the sphere and aim at its center
		origin := sphere.Center.Subtract(dir.Normalize().Multiply(10))
		ray := core.NewRay(origin, dir)

		hit, ok := sphere.Hit(ray, 0.001, 1000.0)
		if !ok {
			t.Fatalf("Expected hit for direction %v", dir)
		}
		if math.Abs(hit.Normal.Length()-1.0) > 1e-9 {
			t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
		}
		if hit.Normal.Dot(hit.Point.Subtract(sphere.Center)) <= 0 {
			t.Errorf("Normal %v should point away from the center", hit.Normal)
		}
	}
}

func TestSphere_Hit_NegativeRadiusNormalPointsInward(t *testing.T) {
	glass := material.NewDielectric(1.5)
	sphere := NewSphere(core.NewVec3(0, 0, 0), -1.0, glass)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	hit, ok := sphere.Hit(ray, 0.001, 1000.0)
	if !ok {
		t.Fatal("Negative radius sphere should still be hit")
	}

	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected t=1, got %f", hit.T)
	}
	expectedNormal := core.NewVec3(0, 0, -1)
	if !hit.Normal.ApproxEquals(expectedNormal, 1e-9) {
		t.Errorf("Expected inward normal %v, got %v", expectedNormal, hit.Normal)
	}
	if hit.Material != glass {
		t.Error("Hit record should reference the sphere's material")
	}
}

func TestSphere_Hit_TangentIsMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	// Grazes the sphere at exactly one point: discriminant is zero
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	if hit, isHit := sphere.Hit(ray, 0.001, 1000.0); isHit {
		t.Errorf("Expected tangent ray to miss, got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	tests := []struct {
		name       string
		tMin, tMax float64
		expectHit  bool
		expectedT  float64
	}{
		{"tMax before sphere", 0.001, 0.5, false, 0},
		{"tMin past sphere", 3.5, 1000.0, false, 0},
		{"near root", 0.001, 1000.0, true, 1.0},
		{"inside: far root", 1.5, 1000.0, true, 3.0},
		{"boundary is exclusive", 1.0, 3.0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(ray, tt.tMin, tt.tMax)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if isHit && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
		})
	}
}
