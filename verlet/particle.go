package verlet

import (
	"github.com/google/uuid"
	"github.com/physkit/verletsim/vecn"
)

// Particle is a point mass tracked by Verlet integration: its velocity
// is never stored directly, only implied by pos - oldPos.
//
// Every setter returns the particle itself so callers can chain, e.g.
//
//	p.SetMass(2).SetBounce(0.8).SetRadius(4).EnableCollision().MakeFree()
type Particle[V vecn.Vector[V]] struct {
	id uuid.UUID

	pos    V
	oldPos V

	mass    float32
	invMass float32
	drag    float32
	bounce  float32
	radius  float32

	isFixed          bool
	collisionEnabled bool
	passiveCollision bool
	isDead           bool
	collisionPlane   uint32

	// Data is opaque storage a host can use to attach its own entity
	// (a render handle, a game-object id) to a particle.
	Data any

	// OnCollideParticle and OnCollideEdge are the particle's collision
	// hooks. Both default to nil (a no-op), matching the source's
	// empty virtual overrides. They are invoked by the World after a
	// contact is resolved and must not add or remove entities.
	OnCollideParticle func(other *Particle[V], impulse V)
	OnCollideEdge     func(impulse V)

	// OnUpdate is called once per integration step, after the
	// particle's position has been advanced for the frame (the
	// particle's own "update()" hook). See also World.AddUpdater for
	// a world-level registry that applies across many particles.
	OnUpdate func(p *Particle[V])
}

func newParticle[V vecn.Vector[V]](pos V, mass, drag float32) *Particle[V] {
	p := &Particle[V]{
		id:               uuid.New(),
		pos:              pos,
		oldPos:           pos,
		bounce:           1,
		radius:           15,
		collisionEnabled: true,
		collisionPlane:   ^uint32(0),
	}
	p.SetDrag(drag)
	p.SetMass(mass)
	return p
}

// ID is a stable handle distinguishing this particle from whatever
// gets allocated into its arena slot after it is reaped; it never
// changes across the particle's lifetime.
func (p *Particle[V]) ID() uuid.UUID { return p.id }

func (p *Particle[V]) Position() V    { return p.pos }
func (p *Particle[V]) OldPosition() V { return p.oldPos }

// setPosOld sets pos and oldPos independently, for use by World's
// world-edge clamp step, which needs to write a bounce-modified old
// position that is neither "translate both" (MoveBy preserveVelocity)
// nor "reset to rest" (Teleport).
func (p *Particle[V]) setPosOld(pos, oldPos V) {
	p.pos = pos
	p.oldPos = oldPos
}

// SetOldPosition overwrites the old position directly, bypassing the
// velocity-preserving semantics of MoveBy/MoveTo. Mostly useful for
// replay (see verlet/recorder) and tests.
func (p *Particle[V]) SetOldPosition(old V) *Particle[V] {
	p.oldPos = old
	return p
}

func (p *Particle[V]) Mass() float32    { return p.mass }
func (p *Particle[V]) InvMass() float32 { return p.invMass }

// SetMass clamps m up to massEpsilon so InvMass stays finite.
func (p *Particle[V]) SetMass(m float32) *Particle[V] {
	if m < massEpsilon {
		m = massEpsilon
	}
	p.mass = m
	p.invMass = 1 / m
	return p
}

func (p *Particle[V]) Drag() float32 { return p.drag }

func (p *Particle[V]) SetDrag(d float32) *Particle[V] {
	p.drag = d
	return p
}

func (p *Particle[V]) Bounce() float32 { return p.bounce }

func (p *Particle[V]) SetBounce(b float32) *Particle[V] {
	p.bounce = b
	return p
}

func (p *Particle[V]) Radius() float32 { return p.radius }

func (p *Particle[V]) SetRadius(r float32) *Particle[V] {
	p.radius = r
	return p
}

func (p *Particle[V]) CollisionPlane() uint32 { return p.collisionPlane }

func (p *Particle[V]) SetCollisionPlane(mask uint32) *Particle[V] {
	p.collisionPlane = mask
	return p
}

func (p *Particle[V]) HasCollision() bool { return p.collisionEnabled }

func (p *Particle[V]) EnableCollision() *Particle[V] {
	p.collisionEnabled = true
	return p
}

func (p *Particle[V]) DisableCollision() *Particle[V] {
	p.collisionEnabled = false
	return p
}

func (p *Particle[V]) HasPassiveCollision() bool { return p.passiveCollision }

func (p *Particle[V]) EnablePassiveCollision() *Particle[V] {
	p.passiveCollision = true
	return p
}

func (p *Particle[V]) DisablePassiveCollision() *Particle[V] {
	p.passiveCollision = false
	return p
}

func (p *Particle[V]) IsFixed() bool { return p.isFixed }
func (p *Particle[V]) IsFree() bool  { return !p.isFixed }

func (p *Particle[V]) MakeFixed() *Particle[V] {
	p.isFixed = true
	return p
}

// MakeFree unfixes the particle and reseats oldPos to pos, so velocity
// is zero at the moment of unfixing rather than whatever it was the
// last time the particle moved while fixed.
func (p *Particle[V]) MakeFree() *Particle[V] {
	p.oldPos = p.pos
	p.isFixed = false
	return p
}

// Enable is EnableCollision + MakeFree.
func (p *Particle[V]) Enable() *Particle[V] {
	p.EnableCollision()
	p.MakeFree()
	return p
}

// Disable is DisableCollision + MakeFixed.
func (p *Particle[V]) Disable() *Particle[V] {
	p.DisableCollision()
	p.MakeFixed()
	return p
}

// MoveTo translates the particle so pos becomes target. When
// preserveVelocity is true, oldPos is translated by the same delta so
// velocity is unchanged; otherwise oldPos is left in place, so the
// implicit velocity for the next step becomes the translation vector.
func (p *Particle[V]) MoveTo(target V, preserveVelocity bool) *Particle[V] {
	return p.MoveBy(target.Sub(p.pos), preserveVelocity)
}

func (p *Particle[V]) MoveBy(offset V, preserveVelocity bool) *Particle[V] {
	p.pos = p.pos.Add(offset)
	if preserveVelocity {
		p.oldPos = p.oldPos.Add(offset)
	}
	return p
}

// Teleport sets pos directly and, since at-rest is the only sane
// default for a position nobody integrated into, resets oldPos to the
// same value so the particle resumes with zero velocity. Used by
// recorder replay and by tests seeding particle positions directly.
func (p *Particle[V]) Teleport(pos V) *Particle[V] {
	p.pos = pos
	p.oldPos = pos
	return p
}

// SetVelocity sets oldPos = pos - v, so Velocity() returns v exactly.
func (p *Particle[V]) SetVelocity(v V) *Particle[V] {
	p.oldPos = p.pos.Sub(v)
	return p
}

// AddVelocity adds v to the implicit velocity: oldPos -= v.
func (p *Particle[V]) AddVelocity(v V) *Particle[V] {
	p.oldPos = p.oldPos.Sub(v)
	return p
}

func (p *Particle[V]) Velocity() V { return p.pos.Sub(p.oldPos) }

func (p *Particle[V]) Kill() *Particle[V] {
	p.isDead = true
	return p
}

func (p *Particle[V]) IsDead() bool { return p.isDead }

// collidedWithParticle invokes the particle's collision hook, if set.
func (p *Particle[V]) collidedWithParticle(other *Particle[V], impulse V) {
	if p.OnCollideParticle != nil {
		p.OnCollideParticle(other, impulse)
	}
}

// collidedWithEdgeOfWorld invokes the particle's edge-collision hook,
// if set.
func (p *Particle[V]) collidedWithEdgeOfWorld(impulse V) {
	if p.OnCollideEdge != nil {
		p.OnCollideEdge(impulse)
	}
}

// Snapshot copies the particle's physical state (position, the
// velocity-bearing old position, mass, flags) without aliasing the
// original. Hooks are not copied: a snapshot is a data record, not a
// live entity. Apart from the hooks and the opaque Data value (which
// the snapshot shares with the original rather than cloning),
// Particle has no pointer or slice fields, so a plain value copy is
// enough for the physical state; see verlet/recorder for the
// exported wire-record shape used when this state crosses a package
// or process boundary (there, github.com/jinzhu/copier does the
// field-by-field copy, since the record type is a distinct struct).
func (p *Particle[V]) Snapshot() Particle[V] {
	out := *p
	out.OnCollideParticle = nil
	out.OnCollideEdge = nil
	out.OnUpdate = nil
	return out
}
