package verlet

import (
	"testing"

	"github.com/physkit/verletsim/vecn"
	"github.com/stretchr/testify/assert"
)

func TestAttractionPullsParticlesTogether(t *testing.T) {
	a := newParticle[vecn.Vector2](vecn.Zero2(), 1, 1)
	b := newParticle[vecn.Vector2](vecn.NewVector2(10, 0), 1, 1)
	at := newAttraction[vecn.Vector2](a, b, 1)

	before := b.Position().Sub(a.Position()).LengthSquared()
	at.Solve()
	after := b.Position().Sub(a.Position()).LengthSquared()

	assert.Less(t, after, before)
}

func TestAttractionDoesNothingAtZeroDistance(t *testing.T) {
	a := newParticle[vecn.Vector2](vecn.NewVector2(4, 4), 1, 1)
	b := newParticle[vecn.Vector2](vecn.NewVector2(4, 4), 1, 1)
	at := newAttraction[vecn.Vector2](a, b, 1)

	assert.NotPanics(t, func() { at.Solve() })
	assert.Equal(t, vecn.NewVector2(4, 4), a.Position())
}

func TestAttractionRespectsFixedEnds(t *testing.T) {
	a := newParticle[vecn.Vector2](vecn.Zero2(), 1, 1)
	b := newParticle[vecn.Vector2](vecn.NewVector2(10, 0), 1, 1)
	b.MakeFixed()
	at := newAttraction[vecn.Vector2](a, b, 1)

	at.Solve()
	assert.Equal(t, vecn.NewVector2(10, 0), b.Position())
}
