package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Resolve returns the smallest translation that moves a out of b, or the
// zero vector when they do not overlap. Ties favour X, then Y, then Z.
func (a AABB) Resolve(b AABB) rl.Vector3 {
	if !a.Intersects(b) {
		return rl.Vector3Zero()
	}

	var push rl.Vector3
	best := float32(math.Inf(1))
	for i := 0; i < 3; i++ {
		if up := axis(b.Max, i) - axis(a.Min, i); up < best {
			best, push = up, axisVector(i, up)
		}
		if down := axis(a.Max, i) - axis(b.Min, i); down < best {
			best, push = down, axisVector(i, -down)
		}
	}
	return push
}

// Translate returns the box moved by offset.
func (a AABB) Translate(offset rl.Vector3) AABB {
	return AABB{
		Min: rl.Vector3Add(a.Min, offset),
		Max: rl.Vector3Add(a.Max, offset),
	}
}

// Center returns the midpoint of the box.
func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

// axis returns component i (0 X, 1 Y, 2 Z) of v.
func axis(v rl.Vector3, i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

// axisVector returns a vector with value on axis i and zero elsewhere.
func axisVector(i int, value float32) rl.Vector3 {
	switch i {
	case 0:
		return rl.Vector3{X: value}
	case 1:
		return rl.Vector3{Y: value}
	}
	return rl.Vector3{Z: value}
}
