package verlet

import (
	"math"

	"github.com/physkit/verletsim/vecn"
	"github.com/physkit/verletsim/verlet/solver"
)

// Update runs one full frame of the pipeline: reap dead particles,
// integrate, clamp to world edges, bucket into sectors, reap dead
// constraints, relax constraints, resolve sector contacts. frameNum is
// stored as FrameNum() and handed to recorder.Recorder.Record by
// callers that want per-frame snapshots; the core pipeline itself does
// not interpret it.
func (w *World[V]) Update(frameNum int) {
	w.frameNum = frameNum

	w.reapDeadParticles()

	for _, p := range w.particles {
		if p.IsFree() {
			w.integrate(p)
		}
	}

	for _, p := range w.particles {
		w.applyUpdaters(p)
	}

	if w.params.DoWorldEdges() {
		for _, p := range w.particles {
			if p.IsFree() {
				w.clampToWorldEdges(p)
			}
		}
	}

	if w.params.IsCollisionEnabled() {
		w.bucketParticles()
	}

	w.reapDeadConstraints()

	w.relaxer.Relax(worldView[V]{w}, w.params.NumIterations())

	if w.params.IsCollisionEnabled() {
		for _, s := range w.sectors {
			s.checkCollisions()
			s.clear()
		}
	}
}

func (w *World[V]) reapDeadParticles() {
	if len(w.particles) == 0 {
		return
	}
	live := w.particles[:0]
	for _, p := range w.particles {
		if p.IsDead() {
			log.Debug("verlet: reaping dead particle")
			continue
		}
		live = append(live, p)
	}
	w.particles = live
}

func (w *World[V]) reapDeadConstraints() {
	for t, list := range w.constraints {
		if len(list) == 0 {
			continue
		}
		live := list[:0]
		for _, c := range list {
			if c.IsDead() {
				log.Debug("verlet: reaping dead constraint")
				continue
			}
			live = append(live, c)
		}
		w.constraints[t] = live
	}
}

func (w *World[V]) integrate(p *Particle[V]) {
	if w.params.DoGravity() {
		p.AddVelocity(w.params.Gravity())
	}

	cur := p.Position()
	vel := p.Position().Sub(p.OldPosition())
	worldDrag := w.params.Drag()
	newPos := cur.Add(vel.Scale(worldDrag * p.Drag()))
	p.setPosOld(newPos, cur)

	if p.OnUpdate != nil {
		p.OnUpdate(p)
	}
}

// clampToWorldEdges enforces pos[i] in [worldMin[i]+radius,
// worldMax[i]-radius], reflecting and damping velocity on the clamped
// axis by the particle's bounce.
func (w *World[V]) clampToWorldEdges(p *Particle[V]) {
	pos := p.Position()
	oldPos := p.OldPosition()
	dim := pos.Dim()
	radius := p.Radius()
	bounce := p.Bounce()

	newPos := pos
	newOldPos := oldPos
	collided := false

	for i := 0; i < dim; i++ {
		min := w.params.WorldMin().Component(i) + radius
		max := w.params.WorldMax().Component(i) - radius
		vel := pos.Component(i) - oldPos.Component(i)

		if pos.Component(i) < min {
			newPos = newPos.SetComponent(i, min)
			newOldPos = newOldPos.SetComponent(i, min+vel*bounce)
			collided = true
		} else if pos.Component(i) > max {
			newPos = newPos.SetComponent(i, max)
			newOldPos = newOldPos.SetComponent(i, max+vel*bounce)
			collided = true
		}
	}

	if !collided {
		return
	}

	velBefore := pos.Sub(oldPos)
	velAfter := newPos.Sub(newOldPos)
	p.setPosOld(newPos, newOldPos)
	p.collidedWithEdgeOfWorld(velAfter.Sub(velBefore))
}

// mapRangeClamped linearly maps v from [inMin,inMax] to
// [outMin,outMax], clamping the result to that output range.
func mapRangeClamped(v, inMin, inMax, outMin, outMax float32) float32 {
	if inMax == inMin {
		return outMin
	}
	t := (v - inMin) / (inMax - inMin)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return outMin + t*(outMax-outMin)
}

// bucketParticles assigns every live particle into every sector its
// bounding sphere overlaps. The source places each particle into
// exactly one sector via a broken flattening formula, which misses
// contacts at sector borders; this maps a particle's [-radius,+radius]
// range on every axis and inserts it into the resulting cartesian
// product of sector coordinates, so a particle straddling a border is
// visible to both sides of it.
func (w *World[V]) bucketParticles() {
	for _, p := range w.particles {
		w.bucketParticle(p)
	}
}

func (w *World[V]) bucketParticle(p *Particle[V]) {
	pos := p.Position()
	radius := p.Radius()
	dim := pos.Dim()

	lo := make([]int, dim)
	hi := make([]int, dim)

	for i := 0; i < dim; i++ {
		count := w.sectorCounts[i]
		min := w.params.WorldMin().Component(i)
		max := w.params.WorldMax().Component(i)

		loVal := mapRangeClamped(pos.Component(i)-radius, min, max, 0, float32(count-1))
		hiVal := mapRangeClamped(pos.Component(i)+radius, min, max, 0, float32(count-1))

		loIdx := int(math.Floor(float64(loVal)))
		hiIdx := int(math.Ceil(float64(hiVal)))
		if hiIdx >= count {
			hiIdx = count - 1
		}
		if loIdx < 0 {
			loIdx = 0
		}
		lo[i], hi[i] = loIdx, hiIdx
	}

	coord := append([]int(nil), lo...)
	for {
		w.sectors[w.flattenIndex(coord)].add(p)

		i := dim - 1
		for i >= 0 {
			coord[i]++
			if coord[i] <= hi[i] {
				break
			}
			coord[i] = lo[i]
			i--
		}
		if i < 0 {
			break
		}
	}
}

// flattenIndex turns per-axis sector coordinates into a 1-D index
// using the standard row-major form idx = ((c0*N1+c1)*N2+c2); the
// source instead multiplies by a hardcoded sectorCount[1] on every
// axis, with the actual flattening math commented out, so it always
// resolves to sector 0.
func (w *World[V]) flattenIndex(coord []int) int {
	idx := 0
	for i, c := range coord {
		idx = idx*w.sectorCounts[i] + c
	}
	return idx
}

// worldView adapts *World[V] to solver.WorldView, translating each
// typed Constraint[V] group into the solver package's narrower,
// non-generic Constraint interface.
type worldView[V vecn.Vector[V]] struct {
	w *World[V]
}

func (wv worldView[V]) ConstraintGroups() [][]solver.Constraint {
	order := []ConstraintType{ConstraintCustom, ConstraintSpring, ConstraintAttraction}
	groups := make([][]solver.Constraint, 0, len(order))
	for _, t := range order {
		list := wv.w.constraints[t]
		group := make([]solver.Constraint, len(list))
		for i, c := range list {
			group[i] = c
		}
		groups = append(groups, group)
	}
	return groups
}
