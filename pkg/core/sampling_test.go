package core

import (
	"math/rand"
	"testing"
)

func TestRandomInUnitDisk_InsideDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 10000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Sample %d outside unit disk: %v", i, p)
		}
		if p.Z != 0 {
			t.Fatalf("Disk sample %d should have Z=0, got %f", i, p.Z)
		}
	}
}

func TestRandomInUnitSphere_InsideSphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(7)))

	for i := 0; i < 10000; i++ {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Sample %d outside unit sphere: %v", i, p)
		}
	}
}

func TestRandomInUnitSphere_Rejection(t *testing.T) {
	// First draw maps to corner (1,1,1) and must be rejected, second maps to (0,0,0)
	sampler := NewSequenceSampler(nil, nil, []Vec3{
		NewVec3(1, 1, 1),
		NewVec3(0.5, 0.5, 0.5),
	})

	p := RandomInUnitSphere(sampler)
	if !p.Equals(NewVec3(0, 0, 0)) {
		t.Errorf("Expected rejected corner then origin, got %v", p)
	}
	if _, _, n3 := sampler.Draws(); n3 != 2 {
		t.Errorf("Expected 2 draws, got %d", n3)
	}
}

func TestRandomInUnitDisk_RejectsBoundary(t *testing.T) {
	// (1, 0.5) maps to (1, 0) which lies on the boundary and is rejected
	sampler := NewSequenceSampler(nil, []Vec2{
		NewVec2(1, 0.5),
		NewVec2(0.75, 0.5),
	}, nil)

	p := RandomInUnitDisk(sampler)
	if !p.ApproxEquals(NewVec3(0.5, 0, 0), 1e-12) {
		t.Errorf("Expected (0.5,0,0), got %v", p)
	}
}

func TestRandomSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(99)
	b := NewSeededSampler(99)

	for i := 0; i < 100; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatalf("Samplers with the same seed diverged at draw %d", i)
		}
	}
}

func TestSequenceSampler_Cycles(t *testing.T) {
	s := NewSequenceSampler([]float64{0.1, 0.2}, nil, nil)
	got := []float64{s.Get1D(), s.Get1D(), s.Get1D()}
	expected := []float64{0.1, 0.2, 0.1}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Draw %d: expected %f, got %f", i, expected[i], got[i])
		}
	}

	if v := s.Get3D(); !v.Equals(NewVec3(0.5, 0.5, 0.5)) {
		t.Errorf("Empty 3D dimension should default to 0.5, got %v", v)
	}
}
