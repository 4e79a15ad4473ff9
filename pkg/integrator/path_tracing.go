package integrator

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// PathTracingIntegrator implements recursive unidirectional path tracing
type PathTracingIntegrator struct {
	config     Config
	background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config, background Background) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config:     config,
		background: background,
	}
}

// RayColor returns the linear, unclamped radiance for ray.
// Escaping rays return the background regardless of depth. A hit at or past MaxDepth
// returns black, as does an absorbed ray.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world *geometry.World, sampler core.Sampler, depth int) core.Vec3 {
	hit, isHit := world.ClosestHit(ray, pt.config.TMin, pt.config.TMax)
	if !isHit {
		return pt.background.Color(ray)
	}

	// Bounce limit reached: no more light is gathered
	if depth >= pt.config.MaxDepth {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	return scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, sampler, depth+1))
}
