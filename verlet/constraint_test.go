package verlet

import (
	"testing"

	"github.com/physkit/verletsim/vecn"
	"github.com/stretchr/testify/assert"
)

func TestShouldSolveRejectsBothFixed(t *testing.T) {
	a := newParticle[vecn.Vector2](vecn.Zero2(), 1, 1)
	b := newParticle[vecn.Vector2](vecn.NewVector2(1, 0), 1, 1)
	a.MakeFixed()
	b.MakeFixed()

	s := newSpring[vecn.Vector2](a, b, 1, 1)
	assert.False(t, s.ShouldSolve())
}

func TestShouldSolveRejectsDisabled(t *testing.T) {
	a := newParticle[vecn.Vector2](vecn.Zero2(), 1, 1)
	b := newParticle[vecn.Vector2](vecn.NewVector2(1, 0), 1, 1)
	s := newSpring[vecn.Vector2](a, b, 1, 1)
	s.SetEnabled(false)
	assert.False(t, s.ShouldSolve())
}

func TestShouldSolveHonorsMinMaxGate(t *testing.T) {
	a := newParticle[vecn.Vector2](vecn.Zero2(), 1, 1)
	b := newParticle[vecn.Vector2](vecn.NewVector2(5, 0), 1, 1)
	s := newSpring[vecn.Vector2](a, b, 1, 1)

	assert.True(t, s.ShouldSolve(), "no bounds set means always solve")

	s.SetMinDistance(10)
	assert.False(t, s.ShouldSolve(), "separation 5 is not > minDist 10")

	s.SetMinDistance(0)
	s.SetMaxDistance(3)
	assert.False(t, s.ShouldSolve(), "separation 5 is not < maxDist 3")

	s.SetMaxDistance(100)
	assert.True(t, s.ShouldSolve())
}

func TestConstraintIsDeadWhenEitherParticipantDies(t *testing.T) {
	a := newParticle[vecn.Vector2](vecn.Zero2(), 1, 1)
	b := newParticle[vecn.Vector2](vecn.NewVector2(1, 0), 1, 1)
	s := newSpring[vecn.Vector2](a, b, 1, 1)

	assert.False(t, s.IsDead())
	b.Kill()
	assert.True(t, s.IsDead())
}

func TestConstraintKillIsIndependentOfParticipants(t *testing.T) {
	a := newParticle[vecn.Vector2](vecn.Zero2(), 1, 1)
	b := newParticle[vecn.Vector2](vecn.NewVector2(1, 0), 1, 1)
	s := newSpring[vecn.Vector2](a, b, 1, 1)

	s.Kill()
	assert.True(t, s.IsDead())
	assert.False(t, a.IsDead())
}

func TestCustomConstraintSolveFunc(t *testing.T) {
	a := newParticle[vecn.Vector2](vecn.Zero2(), 1, 1)
	b := newParticle[vecn.Vector2](vecn.NewVector2(1, 0), 1, 1)

	called := false
	c := newCustom[vecn.Vector2](a, b, func(a, b *Particle[vecn.Vector2]) {
		called = true
	})
	c.Solve()
	assert.True(t, called)
}

func TestCustomConstraintNilSolveFuncIsNoop(t *testing.T) {
	a := newParticle[vecn.Vector2](vecn.Zero2(), 1, 1)
	b := newParticle[vecn.Vector2](vecn.NewVector2(1, 0), 1, 1)
	c := newCustom[vecn.Vector2](a, b, nil)
	assert.NotPanics(t, func() { c.Solve() })
}
