package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// World is an ordered collection of shapes searched by linear scan
type World struct {
	Shapes []Shape
}

// NewWorld creates a world from shapes in the given order
func NewWorld(shapes ...Shape) *World {
	return &World{Shapes: shapes}
}

// Add appends shapes to the world
func (w *World) Add(shapes ...Shape) {
	w.Shapes = append(w.Shapes, shapes...)
}

// Len returns the number of shapes
func (w *World) Len() int {
	return len(w.Shapes)
}

// ClosestHit returns the nearest intersection in (tMin, tMax) across all shapes.
// Each shape is queried with the interval narrowed to the closest hit so far, so a later
// shape only replaces an earlier hit when it is strictly nearer.
func (w *World) ClosestHit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range w.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
