package recorder

import (
	"path/filepath"
	"testing"

	"github.com/physkit/verletsim/vecn"
	"github.com/physkit/verletsim/verlet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildWorld() *verlet.World[vecn.Vector2] {
	w := verlet.NewWorld[vecn.Vector2]()
	a := w.MakeParticle(vecn.NewVector2(1, 2), 3, 0.9)
	a.SetRadius(5).SetBounce(0.5).SetCollisionPlane(0b0101)
	b := w.MakeParticle(vecn.NewVector2(-4, 7), 1, 1)
	b.MakeFixed()
	return w
}

func TestRecordThenLoadRoundTrips(t *testing.T) {
	w := buildWorld()
	r := New[vecn.Vector2](filepath.Join(t.TempDir(), "frame"))

	require.NoError(t, r.Record(w, 3))

	records, err := r.Load(3)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, vecn.NewVector2(1, 2), records[0].Position)
	assert.Equal(t, float32(3), records[0].Mass)
	assert.Equal(t, float32(5), records[0].Radius)
	assert.Equal(t, float32(0.5), records[0].Bounce)
	assert.Equal(t, uint32(0b0101), records[0].CollisionPlane)
	assert.Equal(t, uint8(flagCollisionEnabled), records[0].Flags)

	assert.Equal(t, uint8(flagFixed|flagCollisionEnabled), records[1].Flags)
}

func TestLoadMissingFrameReturnsError(t *testing.T) {
	r := New[vecn.Vector2](filepath.Join(t.TempDir(), "frame"))
	_, err := r.Load(99)
	assert.Error(t, err)
}

func TestReplayResetsVelocityToZero(t *testing.T) {
	w := buildWorld()
	a := w.GetParticle(0)
	a.SetVelocity(vecn.NewVector2(10, 10))

	r := New[vecn.Vector2](filepath.Join(t.TempDir(), "frame"))
	require.NoError(t, r.Record(w, 0))

	a.MoveBy(vecn.NewVector2(50, 50), true)
	require.NoError(t, r.Replay(w, 0))

	assert.Equal(t, vecn.NewVector2(1, 2), a.Position())
	assert.Equal(t, vecn.Zero2(), a.Velocity(), "replay resets the particle to rest")
}

func TestReplayStopsAtShorterParticleCount(t *testing.T) {
	w := buildWorld()
	r := New[vecn.Vector2](filepath.Join(t.TempDir(), "frame"))
	require.NoError(t, r.Record(w, 0))

	smaller := verlet.NewWorld[vecn.Vector2]()
	smaller.MakeParticle(vecn.Zero2(), 1, 1)

	assert.NotPanics(t, func() { _ = r.Replay(smaller, 0) })
}

func TestCaptureAndRestoreInitialState(t *testing.T) {
	w := buildWorld()
	saved := CaptureInitialState[vecn.Vector2](w)

	a := w.GetParticle(0)
	a.MoveBy(vecn.NewVector2(100, 100), false)

	RestoreInitialState[vecn.Vector2](w, saved)
	assert.Equal(t, vecn.NewVector2(1, 2), a.Position())
}

func TestRestoreInitialStateDoesNotMutateSavedSlice(t *testing.T) {
	w := buildWorld()
	saved := CaptureInitialState[vecn.Vector2](w)
	originalPos := saved[0].Position

	a := w.GetParticle(0)
	a.MoveBy(vecn.NewVector2(9, 9), false)
	RestoreInitialState[vecn.Vector2](w, saved)

	a.MoveBy(vecn.NewVector2(9, 9), false)
	RestoreInitialState[vecn.Vector2](w, saved)

	assert.Equal(t, originalPos, saved[0].Position, "restoring twice must not drift the baseline")
}
