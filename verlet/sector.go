package verlet

import (
	"math"

	"github.com/physkit/verletsim/vecn"
)

// Sector is one bucket of the broad-phase grid: an append-only list
// of particle references for the current frame. World clears every
// sector at the end of the frame and reuses the slice's backing array
// on the next one.
type Sector[V vecn.Vector[V]] struct {
	particles []*Particle[V]
}

func (s *Sector[V]) add(p *Particle[V]) {
	s.particles = append(s.particles, p)
}

func (s *Sector[V]) clear() {
	s.particles = s.particles[:0]
}

// Particles returns the sector's current inhabitants. The returned
// slice is only valid for the current frame.
func (s *Sector[V]) Particles() []*Particle[V] { return s.particles }

// checkCollisions runs sphere-sphere contact resolution over every
// unordered pair currently in the sector.
func (s *Sector[V]) checkCollisions() {
	n := len(s.particles)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			resolveCollision(s.particles[i], s.particles[j])
		}
	}
}

// resolveCollision applies the sphere-sphere contact rule between a
// and b, returning whether a contact was resolved.
func resolveCollision[V vecn.Vector[V]](a, b *Particle[V]) bool {
	if !a.HasCollision() || !b.HasCollision() {
		return false
	}
	if a.HasPassiveCollision() && b.HasPassiveCollision() {
		return false
	}
	if a.CollisionPlane()&b.CollisionPlane() == 0 {
		return false
	}

	rest := a.Radius() + b.Radius()
	d := b.Position().Sub(a.Position())
	l2 := d.LengthSquared()
	if l2 >= rest*rest {
		return false
	}
	if l2 == 0 {
		// Exactly coincident centers: no direction to push along.
		return false
	}
	invSum := a.InvMass() + b.InvMass()
	if invSum == 0 {
		return false
	}

	l := float32(math.Sqrt(float64(l2)))
	force := (l - rest) / (l * invSum)
	f := d.Scale(force)

	if a.IsFree() {
		a.MoveBy(f.Scale(a.InvMass()), false)
	}
	if b.IsFree() {
		b.MoveBy(f.Negate().Scale(b.InvMass()), false)
	}

	a.collidedWithParticle(b, f)
	b.collidedWithParticle(a, f.Negate())
	return true
}
