package verlet

import (
	"github.com/physkit/verletsim/vecn"
	"github.com/physkit/verletsim/verlet/solver"
)

// World owns every particle, constraint, and sector in a simulation
// and runs the per-frame pipeline: reap -> integrate -> world edges ->
// bucket -> reap constraints -> relax -> resolve contacts.
type World[V vecn.Vector[V]] struct {
	params *Parameters[V]

	particles []*Particle[V]
	// constraints is keyed by type so the pipeline can visit groups in
	// the fixed order (Custom, Spring, Attraction) the spec requires.
	constraints map[ConstraintType][]Constraint[V]

	sectors      []*Sector[V]
	sectorCounts []int // cached int form of params.sectorCount, rebuilt on SetSectorCount*

	relaxer solver.Relaxer

	updaters          []registeredUpdater[V]
	nextUpdaterHandle UpdaterHandle

	frameNum int

	particleCapHint   int
	customCapHint     int
	springCapHint     int
	attractionCapHint int
}

// NewWorld returns an empty world with default Parameters and a
// single sector (one bucket per axis), using GaussSeidel relaxation.
func NewWorld[V vecn.Vector[V]]() *World[V] {
	w := &World[V]{
		params: NewParameters[V](),
		constraints: map[ConstraintType][]Constraint[V]{
			ConstraintCustom:     nil,
			ConstraintSpring:     nil,
			ConstraintAttraction: nil,
		},
		relaxer: solver.GaussSeidel{},
	}
	w.rebuildSectors()
	return w
}

// Params exposes the world's Parameters for read access; prefer the
// fluent setters on World for mutation so sector-grid rebuilds stay in
// sync with sectorCount changes.
func (w *World[V]) Params() *Parameters[V] { return w.params }

func (w *World[V]) FrameNum() int { return w.frameNum }

// SetRelaxer overrides the default Gauss-Seidel relaxation strategy.
func (w *World[V]) SetRelaxer(r solver.Relaxer) { w.relaxer = r }

// ---- factories -------------------------------------------------------

// MakeParticle creates, registers, and returns a new particle.
func (w *World[V]) MakeParticle(pos V, mass, drag float32) *Particle[V] {
	p := newParticle[V](pos, mass, drag)
	return w.AddParticle(p)
}

// AddParticle registers an externally constructed particle.
func (w *World[V]) AddParticle(p *Particle[V]) *Particle[V] {
	if cap(w.particles) == 0 && w.particleCapHint > 0 {
		grown := make([]*Particle[V], 0, w.particleCapHint)
		w.particles = append(grown, w.particles...)
	}
	w.particles = append(w.particles, p)
	return p
}

// MakeSpring creates a spring between a and b, or returns nil if
// a == b.
func (w *World[V]) MakeSpring(a, b *Particle[V], strength, restLength float32) *Spring[V] {
	if a == b {
		log.Warn("verlet: rejected spring with a == b")
		return nil
	}
	s := newSpring[V](a, b, strength, restLength)
	w.addConstraint(s)
	return s
}

// MakeAttraction creates an attraction between a and b, or returns nil
// if a == b.
func (w *World[V]) MakeAttraction(a, b *Particle[V], strength float32) *Attraction[V] {
	if a == b {
		log.Warn("verlet: rejected attraction with a == b")
		return nil
	}
	at := newAttraction[V](a, b, strength)
	w.addConstraint(at)
	return at
}

// MakeCustom creates a Custom constraint between a and b with the
// given solve function, or returns nil if a == b.
func (w *World[V]) MakeCustom(a, b *Particle[V], solve func(a, b *Particle[V])) *Custom[V] {
	if a == b {
		log.Warn("verlet: rejected custom constraint with a == b")
		return nil
	}
	c := newCustom[V](a, b, solve)
	w.addConstraint(c)
	return c
}

// AddConstraint registers an externally constructed constraint.
func (w *World[V]) AddConstraint(c Constraint[V]) Constraint[V] {
	w.addConstraint(c)
	return c
}

func (w *World[V]) addConstraint(c Constraint[V]) {
	t := c.Type()
	list := w.constraints[t]
	if len(list) == 0 {
		if hint := w.capHintFor(t); hint > 0 && cap(list) == 0 {
			list = make([]Constraint[V], 0, hint)
		}
	}
	w.constraints[t] = append(list, c)
}

func (w *World[V]) capHintFor(t ConstraintType) int {
	switch t {
	case ConstraintCustom:
		return w.customCapHint
	case ConstraintSpring:
		return w.springCapHint
	case ConstraintAttraction:
		return w.attractionCapHint
	default:
		return 0
	}
}

// ---- queries -----------------------------------------------------

func (w *World[V]) NumParticles() int { return len(w.particles) }

// GetParticle returns the i'th particle, or nil if i is out of range.
func (w *World[V]) GetParticle(i int) *Particle[V] {
	if i < 0 || i >= len(w.particles) {
		return nil
	}
	return w.particles[i]
}

func (w *World[V]) NumConstraints(t ConstraintType) int { return len(w.constraints[t]) }
func (w *World[V]) NumCustomConstraints() int           { return len(w.constraints[ConstraintCustom]) }
func (w *World[V]) NumSprings() int                     { return len(w.constraints[ConstraintSpring]) }
func (w *World[V]) NumAttractions() int                 { return len(w.constraints[ConstraintAttraction]) }

// GetSpring returns the i'th registered spring, or nil if i is out of
// range or the i'th constraint of that type isn't a *Spring[V].
func (w *World[V]) GetSpring(i int) *Spring[V] {
	list := w.constraints[ConstraintSpring]
	if i < 0 || i >= len(list) {
		return nil
	}
	s, _ := list[i].(*Spring[V])
	return s
}

// GetAttraction returns the i'th registered attraction, or nil if out
// of range.
func (w *World[V]) GetAttraction(i int) *Attraction[V] {
	list := w.constraints[ConstraintAttraction]
	if i < 0 || i >= len(list) {
		return nil
	}
	a, _ := list[i].(*Attraction[V])
	return a
}

// FindConstraint returns the first live constraint of type t with a
// as one of its two ends, or nil.
func (w *World[V]) FindConstraint(a *Particle[V], t ConstraintType) Constraint[V] {
	for _, c := range w.constraints[t] {
		if c.IsDead() {
			continue
		}
		if c.A() == a || c.B() == a {
			return c
		}
	}
	return nil
}

// FindConstraintBetween returns the first live constraint of type t
// whose {A,B} set (unordered) matches {a,b}, or nil.
func (w *World[V]) FindConstraintBetween(a, b *Particle[V], t ConstraintType) Constraint[V] {
	for _, c := range w.constraints[t] {
		if c.IsDead() {
			continue
		}
		if (c.A() == a && c.B() == b) || (c.A() == b && c.B() == a) {
			return c
		}
	}
	return nil
}

// ---- configuration --------------------------------------------------

func (w *World[V]) SetTimeStep(t float32) *World[V]       { w.params.SetTimeStep(t); return w }
func (w *World[V]) SetDrag(d float32) *World[V]           { w.params.SetDrag(d); return w }
func (w *World[V]) SetNumIterations(n int) *World[V]      { w.params.SetNumIterations(n); return w }
func (w *World[V]) EnableCollision() *World[V]            { w.params.EnableCollision(); return w }
func (w *World[V]) DisableCollision() *World[V]           { w.params.DisableCollision(); return w }
func (w *World[V]) SetGravityScalar(gy float32) *World[V] { w.params.SetGravityScalar(gy); return w }
func (w *World[V]) SetGravityVector(g V) *World[V]        { w.params.SetGravityVector(g); return w }
func (w *World[V]) SetWorldMin(min V) *World[V]           { w.params.SetWorldMin(min); return w }
func (w *World[V]) SetWorldMax(max V) *World[V]           { w.params.SetWorldMax(max); return w }
func (w *World[V]) SetWorldBounds(min, max V) *World[V]   { w.params.SetWorldBounds(min, max); return w }
func (w *World[V]) ClearWorldBounds() *World[V]           { w.params.ClearWorldBounds(); return w }

// SetSectorCount builds an n-per-axis uniform grid and rebuilds the
// sector vector.
func (w *World[V]) SetSectorCount(n int) *World[V] {
	w.params.setSectorCount(uniformVector[V](float32(n)))
	w.rebuildSectors()
	return w
}

// SetSectorCountPerAxis allows independent per-axis resolution and
// rebuilds the sector vector.
func (w *World[V]) SetSectorCountPerAxis(counts V) *World[V] {
	w.params.setSectorCount(counts)
	w.rebuildSectors()
	return w
}

func (w *World[V]) SetParticleCapacity(n int) *World[V]         { w.particleCapHint = n; return w }
func (w *World[V]) SetCustomConstraintCapacity(n int) *World[V] { w.customCapHint = n; return w }
func (w *World[V]) SetSpringCapacity(n int) *World[V]           { w.springCapHint = n; return w }
func (w *World[V]) SetAttractionCapacity(n int) *World[V]       { w.attractionCapHint = n; return w }

// Clear drops all particles and constraints and clears sector
// contents, but retains sector grid dimensions.
func (w *World[V]) Clear() {
	w.particles = nil
	for t := range w.constraints {
		w.constraints[t] = nil
	}
	for _, s := range w.sectors {
		s.clear()
	}
}

func (w *World[V]) rebuildSectors() {
	counts := w.params.SectorCount()
	dim := counts.Dim()
	w.sectorCounts = make([]int, dim)
	total := 1
	for i := 0; i < dim; i++ {
		n := int(counts.Component(i))
		if n < 1 {
			n = 1
		}
		w.sectorCounts[i] = n
		total *= n
	}
	w.sectors = make([]*Sector[V], total)
	for i := range w.sectors {
		w.sectors[i] = &Sector[V]{}
	}
}

// Sectors exposes the grid for inspection/testing.
func (w *World[V]) Sectors() []*Sector[V] { return w.sectors }
