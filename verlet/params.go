package verlet

import "github.com/physkit/verletsim/vecn"

// massEpsilon is the smallest mass SetMass will accept; anything
// lower is clamped up to it so invMass stays finite.
const massEpsilon = 1e-5

// Parameters is a plain mutable aggregate of world-wide simulation
// settings. World embeds one and exposes the same fluent setters so
// callers rarely need to touch Parameters directly, but it is exported
// so a host can build one independently (see verlet/config) and hand
// it to a World.
type Parameters[V vecn.Vector[V]] struct {
	timeStep, timeStep2 float32
	drag                float32
	numIterations       int

	collisionEnabled bool

	doGravity bool
	gravity   V

	doWorldEdges bool
	worldMin     V
	worldMax     V
	worldSize    V

	// sectorCount holds a per-axis bucket count, stored as a vector of
	// integers-as-float32 so it shares the dimension-generic plumbing
	// with every other per-axis field.
	sectorCount V
}

// NewParameters returns a Parameters with the source engine's
// defaults: timeStep 1e-5, drag 0.99, 20 solver iterations, collision
// and world edges disabled, zero gravity, one sector per axis.
func NewParameters[V vecn.Vector[V]]() *Parameters[V] {
	p := &Parameters[V]{
		timeStep:      1e-5,
		drag:          0.99,
		numIterations: 20,
	}
	p.timeStep2 = p.timeStep * p.timeStep
	p.sectorCount = uniformVector[V](1)
	return p
}

func uniformVector[V vecn.Vector[V]](val float32) V {
	var v V
	for i := 0; i < v.Dim(); i++ {
		v = v.SetComponent(i, val)
	}
	return v
}

func (p *Parameters[V]) TimeStep() float32  { return p.timeStep }
func (p *Parameters[V]) TimeStep2() float32 { return p.timeStep2 }

func (p *Parameters[V]) SetTimeStep(t float32) *Parameters[V] {
	p.timeStep = t
	p.timeStep2 = t * t
	return p
}

func (p *Parameters[V]) Drag() float32 { return p.drag }

func (p *Parameters[V]) SetDrag(d float32) *Parameters[V] {
	p.drag = d
	return p
}

func (p *Parameters[V]) NumIterations() int { return p.numIterations }

func (p *Parameters[V]) SetNumIterations(n int) *Parameters[V] {
	if n < 0 {
		n = 0
	}
	p.numIterations = n
	return p
}

func (p *Parameters[V]) IsCollisionEnabled() bool { return p.collisionEnabled }

func (p *Parameters[V]) EnableCollision() *Parameters[V] {
	p.collisionEnabled = true
	return p
}

func (p *Parameters[V]) DisableCollision() *Parameters[V] {
	p.collisionEnabled = false
	return p
}

func (p *Parameters[V]) DoGravity() bool { return p.doGravity }
func (p *Parameters[V]) Gravity() V      { return p.gravity }

// SetGravityScalar sets gravity to (0, gy, 0...) -- the Y axis only,
// matching the source's scalar overload.
func (p *Parameters[V]) SetGravityScalar(gy float32) *Parameters[V] {
	var g V
	g = g.SetComponent(1, gy)
	return p.SetGravityVector(g)
}

func (p *Parameters[V]) SetGravityVector(g V) *Parameters[V] {
	p.gravity = g
	p.doGravity = g.LengthSquared() > 0
	return p
}

func (p *Parameters[V]) DoWorldEdges() bool { return p.doWorldEdges }
func (p *Parameters[V]) WorldMin() V        { return p.worldMin }
func (p *Parameters[V]) WorldMax() V        { return p.worldMax }
func (p *Parameters[V]) WorldSize() V       { return p.worldSize }

func (p *Parameters[V]) SetWorldMin(min V) *Parameters[V] {
	p.worldMin = min
	p.refreshWorldSize()
	return p
}

func (p *Parameters[V]) SetWorldMax(max V) *Parameters[V] {
	p.worldMax = max
	p.refreshWorldSize()
	return p
}

func (p *Parameters[V]) SetWorldBounds(min, max V) *Parameters[V] {
	p.worldMin = min
	p.worldMax = max
	p.refreshWorldSize()
	return p
}

// ClearWorldBounds disables world-edge clamping. Collision also turns
// off: bucketing has nothing meaningful to map onto without bounds.
func (p *Parameters[V]) ClearWorldBounds() *Parameters[V] {
	p.doWorldEdges = false
	p.collisionEnabled = false
	return p
}

func (p *Parameters[V]) refreshWorldSize() {
	p.worldSize = p.worldMax.Sub(p.worldMin)
	p.doWorldEdges = true
}

func (p *Parameters[V]) SectorCount() V { return p.sectorCount }

// setSectorCount is unexported: World owns rebuilding the sector grid
// whenever the count changes, so the public setters live on World
// (see World.SetSectorCount / SetSectorCountPerAxis).
func (p *Parameters[V]) setSectorCount(counts V) {
	dim := counts.Dim()
	for i := 0; i < dim; i++ {
		if counts.Component(i) < 1 {
			counts = counts.SetComponent(i, 1)
		}
	}
	p.sectorCount = counts
}
