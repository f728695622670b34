package vecn

import "math"

// Vector2 is a 2-D vector backed by a plain array, so callers can read
// and write components directly (v[0], v[1]) in addition to using the
// Vector[T] interface methods.
type Vector2 [2]float32

// NewVector2 builds a vector from its components.
func NewVector2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Zero2 returns the zero vector. Equivalent to the zero value of
// Vector2, provided as a named constructor for readability at call
// sites that build vectors generically.
func Zero2() Vector2 {
	return Vector2{}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v[0] + o[0], v[1] + o[1]}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v[0] - o[0], v[1] - o[1]}
}

func (v Vector2) Negate() Vector2 {
	return Vector2{-v[0], -v[1]}
}

func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{v[0] * s, v[1] * s}
}

func (v Vector2) LengthSquared() float32 {
	return v[0]*v[0] + v[1]*v[1]
}

// Limit rescales v so its length does not exceed max. max <= 0 means
// no cap.
func (v Vector2) Limit(max float32) Vector2 {
	if max <= 0 {
		return v
	}
	l2 := v.LengthSquared()
	if l2 <= max*max {
		return v
	}
	scale := max / float32(math.Sqrt(float64(l2)))
	return v.Scale(scale)
}

func (v Vector2) Dim() int { return 2 }

func (v Vector2) Component(i int) float32 { return v[i] }

func (v Vector2) SetComponent(i int, val float32) Vector2 {
	v[i] = val
	return v
}
