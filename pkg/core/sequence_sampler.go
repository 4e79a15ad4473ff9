package core

// SequenceSampler replays predetermined values, cycling through each dimension independently.
// It makes a render trace exactly reproducible by hand.
type SequenceSampler struct {
	values1D []float64
	values2D []Vec2
	values3D []Vec3
	index1D  int
	index2D  int
	index3D  int
}

// NewSequenceSampler creates a sampler with predetermined values for each dimension.
// An empty slice makes that dimension return 0.5 in every component.
func NewSequenceSampler(values1D []float64, values2D []Vec2, values3D []Vec3) *SequenceSampler {
	return &SequenceSampler{
		values1D: values1D,
		values2D: values2D,
		values3D: values3D,
	}
}

// NewConstantSampler returns a sampler that yields value in every component of every draw
func NewConstantSampler(value float64) *SequenceSampler {
	return NewSequenceSampler(
		[]float64{value},
		[]Vec2{NewVec2(value, value)},
		[]Vec3{NewVec3(value, value, value)},
	)
}

// Get1D returns the next predetermined 1D value
func (s *SequenceSampler) Get1D() float64 {
	if len(s.values1D) == 0 {
		return 0.5
	}
	val := s.values1D[s.index1D%len(s.values1D)]
	s.index1D++
	return val
}

// Get2D returns the next predetermined 2D value
func (s *SequenceSampler) Get2D() Vec2 {
	if len(s.values2D) == 0 {
		return NewVec2(0.5, 0.5)
	}
	val := s.values2D[s.index2D%len(s.values2D)]
	s.index2D++
	return val
}

// Get3D returns the next predetermined 3D value
func (s *SequenceSampler) Get3D() Vec3 {
	if len(s.values3D) == 0 {
		return NewVec3(0.5, 0.5, 0.5)
	}
	val := s.values3D[s.index3D%len(s.values3D)]
	s.index3D++
	return val
}

// Draws returns how many values were taken from each dimension
func (s *SequenceSampler) Draws() (n1D, n2D, n3D int) {
	return s.index1D, s.index2D, s.index3D
}
