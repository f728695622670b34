package vecn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3Arithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, 5, 6)

	assert.Equal(t, NewVector3(5, 7, 9), a.Add(b))
	assert.Equal(t, NewVector3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, NewVector3(-1, -2, -3), a.Negate())
	assert.Equal(t, NewVector3(2, 4, 6), a.Scale(2))
}

func TestVector3LengthSquaredAndLimit(t *testing.T) {
	v := NewVector3(2, 3, 6) // length 7
	assert.Equal(t, float32(49), v.LengthSquared())

	limited := v.Limit(3.5)
	assert.InDelta(t, 3.5*3.5, limited.LengthSquared(), 1e-3)
	assert.Equal(t, v, v.Limit(-1), "non-positive max disables the cap")
}

func TestVector3Dim(t *testing.T) {
	assert.Equal(t, 3, Zero3().Dim())
}
