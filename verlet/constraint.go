package verlet

import (
	"github.com/google/uuid"
	"github.com/physkit/verletsim/vecn"
)

// ConstraintType tags the three constraint shapes the pipeline knows
// about. It also fixes the deterministic order World visits constraint
// groups in during relaxation.
type ConstraintType int

const (
	ConstraintCustom ConstraintType = iota
	ConstraintSpring
	ConstraintAttraction
)

func (t ConstraintType) String() string {
	switch t {
	case ConstraintCustom:
		return "custom"
	case ConstraintSpring:
		return "spring"
	case ConstraintAttraction:
		return "attraction"
	default:
		return "unknown"
	}
}

// Constraint is the common contract for anything that projects two
// particles toward satisfying some relation. Three shapes exist
// (Custom, Spring, Attraction); rather than an open class hierarchy,
// Custom is the escape hatch for caller-defined relations, carrying a
// user-supplied solve function instead of requiring a new type.
type Constraint[V vecn.Vector[V]] interface {
	ID() uuid.UUID
	A() *Particle[V]
	B() *Particle[V]
	Type() ConstraintType

	Enabled() bool
	SetEnabled(bool)

	Kill()
	IsDead() bool

	MinDistance() float32
	SetMinDistance(float32)
	MaxDistance() float32
	SetMaxDistance(float32)

	// ShouldSolve reports whether the pipeline should call Solve this
	// sweep: the constraint is enabled, at least one end is free, and
	// the current separation lies within the min/max gate (a zero
	// bound disables that side of the gate).
	ShouldSolve() bool

	// Solve displaces A and/or B to satisfy the constraint, honoring
	// IsFree on each end. It must never touch oldPos: the resulting
	// displacement only becomes velocity on the next integration step.
	Solve()
}

// constraintBase implements everything every Constraint needs except
// Solve, so Spring, Attraction, and Custom only add their own force
// law on top of it.
type constraintBase[V vecn.Vector[V]] struct {
	id      uuid.UUID
	a, b    *Particle[V]
	kind    ConstraintType
	enabled bool
	dead    bool

	minDist, minDist2 float32
	maxDist, maxDist2 float32
}

func newConstraintBase[V vecn.Vector[V]](a, b *Particle[V], kind ConstraintType) constraintBase[V] {
	return constraintBase[V]{
		id:      uuid.New(),
		a:       a,
		b:       b,
		kind:    kind,
		enabled: true,
	}
}

func (c *constraintBase[V]) ID() uuid.UUID        { return c.id }
func (c *constraintBase[V]) A() *Particle[V]      { return c.a }
func (c *constraintBase[V]) B() *Particle[V]      { return c.b }
func (c *constraintBase[V]) Type() ConstraintType { return c.kind }

func (c *constraintBase[V]) Enabled() bool      { return c.enabled }
func (c *constraintBase[V]) SetEnabled(v bool)  { c.enabled = v }

func (c *constraintBase[V]) Kill()        { c.dead = true }
func (c *constraintBase[V]) IsDead() bool {
	return c.dead || c.a == nil || c.b == nil || c.a.IsDead() || c.b.IsDead()
}

func (c *constraintBase[V]) MinDistance() float32 { return c.minDist }
func (c *constraintBase[V]) SetMinDistance(d float32) {
	c.minDist = d
	c.minDist2 = d * d
}

func (c *constraintBase[V]) MaxDistance() float32 { return c.maxDist }
func (c *constraintBase[V]) SetMaxDistance(d float32) {
	c.maxDist = d
	c.maxDist2 = d * d
}

// ShouldSolve is only worth evaluating if the constraint is on and at
// least one end is free.
func (c *constraintBase[V]) ShouldSolve() bool {
	if !c.enabled || (c.a.IsFixed() && c.b.IsFixed()) {
		return false
	}
	if c.minDist == 0 && c.maxDist == 0 {
		return true
	}
	delta := c.b.Position().Sub(c.a.Position())
	l2 := delta.LengthSquared()

	minOK := c.minDist == 0 || l2 > c.minDist2
	maxOK := c.maxDist == 0 || l2 < c.maxDist2
	return minOK && maxOK
}
