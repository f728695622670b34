package vecn

import "math"

// Vector3 is a 3-D vector backed by a plain array, so callers can read
// and write components directly (v[0], v[1], v[2]) in addition to
// using the Vector[T] interface methods.
type Vector3 [3]float32

// NewVector3 builds a vector from its components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3() Vector3 {
	return Vector3{}
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

func (v Vector3) Negate() Vector3 {
	return Vector3{-v[0], -v[1], -v[2]}
}

func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vector3) LengthSquared() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func (v Vector3) Limit(max float32) Vector3 {
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

func (v Vector3) Dim() int { return 3 }

func (v Vector3) Component(i int) float32 { return v[i] }

func (v Vector3) SetComponent(i int, val float32) Vector3 {
	v[i] = val
	return v
}
