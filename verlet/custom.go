package verlet

import "github.com/physkit/verletsim/vecn"

// Custom is the open escape hatch for constraint kinds the engine
// doesn't otherwise model: it carries a caller-supplied SolveFunc
// instead of a built-in force law, so a new relation never requires a
// new type satisfying the whole Constraint interface from scratch.
type Custom[V vecn.Vector[V]] struct {
	constraintBase[V]

	// SolveFunc is called by Solve. A nil SolveFunc makes Solve a
	// no-op.
	SolveFunc func(a, b *Particle[V])
}

func newCustom[V vecn.Vector[V]](a, b *Particle[V], solve func(a, b *Particle[V])) *Custom[V] {
	return &Custom[V]{
		constraintBase: newConstraintBase[V](a, b, ConstraintCustom),
		SolveFunc:      solve,
	}
}

func (c *Custom[V]) Solve() {
	if c.SolveFunc != nil {
		c.SolveFunc(c.a, c.b)
	}
}
