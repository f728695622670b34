package verlet

import (
	"testing"

	"github.com/physkit/verletsim/vecn"
	"github.com/stretchr/testify/assert"
)

func TestSpringRestLengthIsStable(t *testing.T) {
	a := newParticle[vecn.Vector2](vecn.Zero2(), 1, 1)
	b := newParticle[vecn.Vector2](vecn.NewVector2(10, 0), 1, 1)
	s := newSpring[vecn.Vector2](a, b, 0.5, 10)

	for i := 0; i < 50; i++ {
		s.Solve()
	}

	sep := b.Position().Sub(a.Position()).LengthSquared()
	assert.InDelta(t, 100, sep, 1e-2)
}

func TestSpringZeroStrengthNeverMoves(t *testing.T) {
	a := newParticle[vecn.Vector2](vecn.Zero2(), 1, 1)
	b := newParticle[vecn.Vector2](vecn.NewVector2(25, 0), 1, 1)
	s := newSpring[vecn.Vector2](a, b, 0, 10)

	s.Solve()

	assert.Equal(t, vecn.Zero2(), a.Position())
	assert.Equal(t, vecn.NewVector2(25, 0), b.Position())
}

func TestSpringDoesNothingAtZeroDistance(t *testing.T) {
	a := newParticle[vecn.Vector2](vecn.NewVector2(3, 3), 1, 1)
	b := newParticle[vecn.Vector2](vecn.NewVector2(3, 3), 1, 1)
	s := newSpring[vecn.Vector2](a, b, 5, 1)

	assert.NotPanics(t, func() { s.Solve() })
	assert.Equal(t, vecn.NewVector2(3, 3), a.Position())
}

func TestSpringRespectsFixedEnds(t *testing.T) {
	a := newParticle[vecn.Vector2](vecn.Zero2(), 1, 1)
	a.MakeFixed()
	b := newParticle[vecn.Vector2](vecn.NewVector2(20, 0), 1, 1)
	s := newSpring[vecn.Vector2](a, b, 1, 10)

	s.Solve()
	assert.Equal(t, vecn.Zero2(), a.Position(), "fixed end never moves")
}

func TestSpringForceCapLimitsDisplacement(t *testing.T) {
	a := newParticle[vecn.Vector2](vecn.Zero2(), 1, 1)
	b := newParticle[vecn.Vector2](vecn.NewVector2(1000, 0), 1, 1)
	uncapped := newSpring[vecn.Vector2](a, b, 10, 10)
	uncapped.Solve()
	uncappedMove := a.Position().LengthSquared()

	a2 := newParticle[vecn.Vector2](vecn.Zero2(), 1, 1)
	b2 := newParticle[vecn.Vector2](vecn.NewVector2(1000, 0), 1, 1)
	capped := newSpring[vecn.Vector2](a2, b2, 10, 10)
	capped.SetForceCap(1)
	capped.Solve()
	cappedMove := a2.Position().LengthSquared()

	assert.Less(t, cappedMove, uncappedMove)
}
