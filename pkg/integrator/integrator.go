package integrator

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the linear radiance carried back along ray.
	// depth is the number of bounces already taken (0 for camera rays).
	RayColor(ray core.Ray, world *geometry.World, sampler core.Sampler, depth int) core.Vec3
}

// Config controls path termination and intersection bounds
type Config struct {
	MaxDepth int     // Hits at or beyond this depth return black
	TMin     float64 // Lower intersection bound, avoids self-intersection acne
	TMax     float64 // Upper intersection bound
}

// DefaultConfig returns the reference termination settings
func DefaultConfig() Config {
	return Config{
		MaxDepth: 50,
		TMin:     0.001,
		TMax:     math.MaxFloat64,
	}
}

// Background is a vertical gradient returned for rays that escape the scene
type Background struct {
	Top    core.Vec3 // Color for straight-up rays
	Bottom core.Vec3 // Color for straight-down rays
}

// DefaultBackground returns the white to sky blue gradient
func DefaultBackground() Background {
	return Background{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color returns the gradient color for the ray direction. Only the y component matters.
func (b Background) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return b.Bottom.Lerp(b.Top, t)
}
