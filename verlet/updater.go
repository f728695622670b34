package verlet

import "github.com/physkit/verletsim/vecn"

// Updater is an external per-world plug-in invoked once per
// integration step for every eligible particle. Grounded in
// original_source/.../MSAPhysicsParticleUpdater.h, whose
// ParticleUpdaterT/ParticleUpdatableT pair lets a world accumulate a
// list of updater objects rather than overriding a single hook; the
// distilled spec only gestures at a single per-particle "update()"
// hook (see Particle.OnUpdate), so this registry is the full-width
// version of the same idea applied across many particles at once.
type Updater[V vecn.Vector[V]] interface {
	// Update is called once per integration step for each eligible
	// particle. It may call MoveBy, AddVelocity, and similar mutators
	// on p, but must not add or remove entities from the World.
	Update(p *Particle[V])

	// IgnoreFixedParticles reports whether World should skip fixed
	// particles when applying this updater. The source defaults this
	// to true.
	IgnoreFixedParticles() bool
}

// UpdaterFunc adapts a plain function to the Updater interface, always
// skipping fixed particles (the source's default).
type UpdaterFunc[V vecn.Vector[V]] func(p *Particle[V])

func (f UpdaterFunc[V]) Update(p *Particle[V])       { f(p) }
func (f UpdaterFunc[V]) IgnoreFixedParticles() bool { return true }

// UpdaterHandle identifies a registered Updater for later removal.
// Updater implementations are frequently funcs (see UpdaterFunc),
// which are not comparable with ==, so registration is tracked by
// handle rather than by value identity.
type UpdaterHandle int

type registeredUpdater[V vecn.Vector[V]] struct {
	handle  UpdaterHandle
	updater Updater[V]
}

// AddUpdater registers u with the world and returns a handle usable
// with RemoveUpdater. Updaters run in registration order, after each
// particle's own OnUpdate hook.
func (w *World[V]) AddUpdater(u Updater[V]) UpdaterHandle {
	w.nextUpdaterHandle++
	h := w.nextUpdaterHandle
	w.updaters = append(w.updaters, registeredUpdater[V]{handle: h, updater: u})
	return h
}

// RemoveUpdater removes the updater registered under h, if any, and
// reports whether it found one.
func (w *World[V]) RemoveUpdater(h UpdaterHandle) bool {
	for i, r := range w.updaters {
		if r.handle == h {
			w.updaters = append(w.updaters[:i], w.updaters[i+1:]...)
			return true
		}
	}
	return false
}

func (w *World[V]) applyUpdaters(p *Particle[V]) {
	for _, r := range w.updaters {
		if p.IsFixed() && r.updater.IgnoreFixedParticles() {
			continue
		}
		r.updater.Update(p)
	}
}
