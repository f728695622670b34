package vecn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vector2
		wantAdd  Vector2
		wantSub  Vector2
		wantNeg  Vector2
	}{
		{
			name:    "positive components",
			a:       NewVector2(1, 2),
			b:       NewVector2(3, 4),
			wantAdd: NewVector2(4, 6),
			wantSub: NewVector2(-2, -2),
			wantNeg: NewVector2(-1, -2),
		},
		{
			name:    "zero vector",
			a:       Zero2(),
			b:       NewVector2(5, -5),
			wantAdd: NewVector2(5, -5),
			wantSub: NewVector2(-5, 5),
			wantNeg: Zero2(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantAdd, tt.a.Add(tt.b))
			assert.Equal(t, tt.wantSub, tt.a.Sub(tt.b))
			assert.Equal(t, tt.wantNeg, tt.a.Negate())
		})
	}
}

func TestVector2Indexing(t *testing.T) {
	v := NewVector2(1, 2)
	v[0] = 9
	assert.Equal(t, float32(9), v.Component(0))
	assert.Equal(t, float32(2), v[1])
}

func TestVector2LengthSquared(t *testing.T) {
	v := NewVector2(3, 4)
	assert.Equal(t, float32(25), v.LengthSquared())
}

func TestVector2Limit(t *testing.T) {
	v := NewVector2(3, 4) // length 5
	assert.Equal(t, v, v.Limit(0), "max <= 0 means no cap")
	assert.Equal(t, v, v.Limit(10), "under the cap is unchanged")

	limited := v.Limit(2.5)
	assert.InDelta(t, 2.5*2.5, limited.LengthSquared(), 1e-4)
}

func TestVector2SetComponent(t *testing.T) {
	v := NewVector2(1, 1)
	v2 := v.SetComponent(1, 7)
	assert.Equal(t, float32(7), v2.Component(1))
	assert.Equal(t, 2, v2.Dim())
}
