package verlet

import (
	"testing"

	"github.com/physkit/verletsim/vecn"
	"github.com/stretchr/testify/assert"
)

func TestAddUpdaterRunsInRegistrationOrder(t *testing.T) {
	w := NewWorld[vecn.Vector2]()
	p := w.MakeParticle(vecn.Zero2(), 1, 1)

	var order []int
	w.AddUpdater(UpdaterFunc[vecn.Vector2](func(p *Particle[vecn.Vector2]) { order = append(order, 1) }))
	w.AddUpdater(UpdaterFunc[vecn.Vector2](func(p *Particle[vecn.Vector2]) { order = append(order, 2) }))

	w.applyUpdaters(p)
	assert.Equal(t, []int{1, 2}, order)
}

func TestRemoveUpdaterByHandle(t *testing.T) {
	w := NewWorld[vecn.Vector2]()
	p := w.MakeParticle(vecn.Zero2(), 1, 1)

	calls := 0
	h := w.AddUpdater(UpdaterFunc[vecn.Vector2](func(p *Particle[vecn.Vector2]) { calls++ }))

	assert.True(t, w.RemoveUpdater(h))
	w.applyUpdaters(p)
	assert.Equal(t, 0, calls)

	assert.False(t, w.RemoveUpdater(h), "removing twice reports not-found")
}

func TestUpdaterFuncIgnoresFixedParticlesByDefault(t *testing.T) {
	w := NewWorld[vecn.Vector2]()
	fixed := w.MakeParticle(vecn.Zero2(), 1, 1)
	fixed.MakeFixed()

	calls := 0
	w.AddUpdater(UpdaterFunc[vecn.Vector2](func(p *Particle[vecn.Vector2]) { calls++ }))

	w.applyUpdaters(fixed)
	assert.Equal(t, 0, calls)
}

type alwaysRunUpdater struct {
	calls *int
}

func (u alwaysRunUpdater) Update(p *Particle[vecn.Vector2]) { *u.calls++ }
func (u alwaysRunUpdater) IgnoreFixedParticles() bool       { return false }

func TestCustomUpdaterCanOptIntoFixedParticles(t *testing.T) {
	w := NewWorld[vecn.Vector2]()
	fixed := w.MakeParticle(vecn.Zero2(), 1, 1)
	fixed.MakeFixed()

	calls := 0
	w.AddUpdater(alwaysRunUpdater{calls: &calls})

	w.applyUpdaters(fixed)
	assert.Equal(t, 1, calls)
}

func TestUpdatersRunOnBothFreeAndFixedParticlesDuringUpdate(t *testing.T) {
	w := NewWorld[vecn.Vector2]()
	free := w.MakeParticle(vecn.Zero2(), 1, 1)
	fixed := w.MakeParticle(vecn.NewVector2(5, 5), 1, 1)
	fixed.MakeFixed()

	var seen []*Particle[vecn.Vector2]
	alwaysCalls := 0
	w.AddUpdater(alwaysRunUpdater{calls: &alwaysCalls})
	w.AddUpdater(UpdaterFunc[vecn.Vector2](func(p *Particle[vecn.Vector2]) { seen = append(seen, p) }))

	w.Update(0)

	assert.Equal(t, 2, alwaysCalls, "an updater that opts in runs on the free and the fixed particle")
	assert.Contains(t, seen, free)
	assert.NotContains(t, seen, fixed, "the plain UpdaterFunc still skips fixed particles")
}
