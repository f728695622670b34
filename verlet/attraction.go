package verlet

import "github.com/physkit/verletsim/vecn"

// Attraction is an inverse-square pairwise force scaled by the two
// particles' masses. Unlike Spring, the force is never normalized by
// distance again after the L² divide, so the effective acceleration
// still falls off with distance -- this is the defined behavior, not
// an oversight.
type Attraction[V vecn.Vector[V]] struct {
	constraintBase[V]
	strength float32
}

func newAttraction[V vecn.Vector[V]](a, b *Particle[V], strength float32) *Attraction[V] {
	return &Attraction[V]{
		constraintBase: newConstraintBase[V](a, b, ConstraintAttraction),
		strength:       strength,
	}
}

func (a *Attraction[V]) Strength() float32 { return a.strength }
func (a *Attraction[V]) SetStrength(k float32) *Attraction[V] {
	a.strength = k
	return a
}

func (c *Attraction[V]) Solve() {
	d := c.b.Position().Sub(c.a.Position())
	l2 := d.LengthSquared()
	if l2 == 0 {
		return
	}
	force := c.strength * c.a.Mass() * c.b.Mass() / l2
	f := d.Scale(force)

	if c.a.IsFree() {
		c.a.MoveBy(f.Scale(c.a.InvMass()), false)
	}
	if c.b.IsFree() {
		c.b.MoveBy(f.Negate().Scale(c.b.InvMass()), false)
	}
}
