// Package vecn defines the minimal vector contract the verlet world
// requires from its position/velocity/force type, plus two concrete,
// array-backed implementations for 2-D and 3-D use.
//
// Vector math itself is a host concern: a caller is free to satisfy
// Vector[T] with its own type (see vecn/mgladapter for an adapter onto
// go-gl/mathgl) instead of using Vector2/Vector3.
package vecn

// Vector is the contract verlet.World[V] needs from its numeric vector
// type: component-wise arithmetic, a squared length (cheap, avoids the
// sqrt on every distance check), and a magnitude cap. T is the
// concrete vector type itself (F-bounded: Vector2 implements
// Vector[Vector2]), so every method returns the same concrete type
// rather than the interface.
type Vector[T any] interface {
	Add(T) T
	Sub(T) T
	Negate() T
	Scale(s float32) T
	LengthSquared() float32
	Limit(max float32) T

	// Dim is the compile-time dimension (2 or 3) of the vector.
	Dim() int

	// Component and SetComponent give generic code indexed access
	// without requiring every instantiation of T to share a single
	// array core type. Concrete types (Vector2, Vector3) also support
	// native v[i] / v[i] = x indexing since they are plain arrays.
	Component(i int) float32
	SetComponent(i int, v float32) T
}
