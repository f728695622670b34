package verlet

import (
	"math"

	"github.com/physkit/verletsim/vecn"
)

// Spring is a Hookean constraint toward restLength, with an optional
// force cap (0 disables the cap).
type Spring[V vecn.Vector[V]] struct {
	constraintBase[V]
	restLength float32
	strength   float32
	forceCap   float32
}

func newSpring[V vecn.Vector[V]](a, b *Particle[V], strength, restLength float32) *Spring[V] {
	return &Spring[V]{
		constraintBase: newConstraintBase[V](a, b, ConstraintSpring),
		strength:       strength,
		restLength:     restLength,
	}
}

func (s *Spring[V]) RestLength() float32 { return s.restLength }
func (s *Spring[V]) SetRestLength(l float32) *Spring[V] {
	s.restLength = l
	return s
}

func (s *Spring[V]) Strength() float32 { return s.strength }
func (s *Spring[V]) SetStrength(k float32) *Spring[V] {
	s.strength = k
	return s
}

// ForceCap returns the force magnitude cap; 0 means uncapped.
func (s *Spring[V]) ForceCap() float32 { return s.forceCap }
func (s *Spring[V]) SetForceCap(cap float32) *Spring[V] {
	s.forceCap = cap
	return s
}

func (s *Spring[V]) Solve() {
	d := s.b.Position().Sub(s.a.Position())
	l2 := d.LengthSquared()
	if l2 == 0 {
		return
	}
	invSum := s.a.InvMass() + s.b.InvMass()
	if invSum == 0 {
		return
	}
	l := float32(math.Sqrt(float64(l2)))

	force := s.strength * (l - s.restLength) / (l * invSum)
	f := d.Scale(force)
	if s.forceCap > 0 {
		f = f.Limit(s.forceCap)
	}

	if s.a.IsFree() {
		s.a.MoveBy(f.Scale(s.a.InvMass()), false)
	}
	if s.b.IsFree() {
		s.b.MoveBy(f.Negate().Scale(s.b.InvMass()), false)
	}
}
