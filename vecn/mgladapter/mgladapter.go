// Package mgladapter adapts github.com/go-gl/mathgl's float32 vector
// types onto the vecn.Vector[T] contract, so a host that already uses
// mathgl for its rendering math (as Gekko3D-gekko and gogl do) can
// hand its own vectors straight to verlet.World[T] instead of
// converting to/from vecn.Vector2/Vector3 every frame.
package mgladapter

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec2 wraps mgl32.Vec2 to satisfy vecn.Vector[Vec2].
type Vec2 mgl32.Vec2

func FromMgl32Vec2(v mgl32.Vec2) Vec2 { return Vec2(v) }
func (v Vec2) Mgl32() mgl32.Vec2      { return mgl32.Vec2(v) }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2(mgl32.Vec2(v).Add(mgl32.Vec2(o))) }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2(mgl32.Vec2(v).Sub(mgl32.Vec2(o))) }
func (v Vec2) Negate() Vec2    { return Vec2(mgl32.Vec2(v).Mul(-1)) }
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2(mgl32.Vec2(v).Mul(s))
}
func (v Vec2) LengthSquared() float32 { return mgl32.Vec2(v).Dot(mgl32.Vec2(v)) }
func (v Vec2) Limit(max float32) Vec2 {
	if max <= 0 {
		return v
	}
	l2 := v.LengthSquared()
	if l2 <= max*max {
		return v
	}
	return v.Scale(max / float32(math.Sqrt(float64(l2))))
}
func (v Vec2) Dim() int                  { return 2 }
func (v Vec2) Component(i int) float32   { return v[i] }
func (v Vec2) SetComponent(i int, x float32) Vec2 {
	v[i] = x
	return v
}

// Vec3 wraps mgl32.Vec3 to satisfy vecn.Vector[Vec3].
type Vec3 mgl32.Vec3

func FromMgl32Vec3(v mgl32.Vec3) Vec3 { return Vec3(v) }
func (v Vec3) Mgl32() mgl32.Vec3      { return mgl32.Vec3(v) }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3(mgl32.Vec3(v).Add(mgl32.Vec3(o))) }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3(mgl32.Vec3(v).Sub(mgl32.Vec3(o))) }
func (v Vec3) Negate() Vec3    { return Vec3(mgl32.Vec3(v).Mul(-1)) }
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3(mgl32.Vec3(v).Mul(s))
}
func (v Vec3) LengthSquared() float32 { return mgl32.Vec3(v).Dot(mgl32.Vec3(v)) }
func (v Vec3) Limit(max float32) Vec3 {
	if max <= 0 {
		return v
	}
	l2 := v.LengthSquared()
	if l2 <= max*max {
		return v
	}
	return v.Scale(max / float32(math.Sqrt(float64(l2))))
}
func (v Vec3) Dim() int                  { return 3 }
func (v Vec3) Component(i int) float32   { return v[i] }
func (v Vec3) SetComponent(i int, x float32) Vec3 {
	v[i] = x
	return v
}
