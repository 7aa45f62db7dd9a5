package physics

import (
	"math"

	"sevenlights/internal/components"
	"sevenlights/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// minRayDirection is the shortest direction vector accepted by Raycast.
const minRayDirection = 1e-6

// Raycast returns the closest blocking hit along the ray within maxDistance.
// Trigger colliders, inactive objects and ignore (with its children) are
// skipped. A non-positive distance or a zero direction never hits.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, ignore *engine.GameObject) (RaycastHit, bool) {
	if maxDistance <= 0 || rl.Vector3Length(direction) < minRayDirection {
		return RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)

	closest := RaycastHit{Distance: maxDistance}
	hit := false
	for _, obj := range p.Objects {
		if !blocks(obj, ignore) {
			continue
		}
		// Shrinking the range keeps only hits nearer than the best so far
		if h, ok := raycastObject(obj, origin, direction, closest.Distance); ok {
			closest = h
			closest.GameObject = obj
			hit = true
		}
	}
	return closest, hit
}

// raycastObject tests the solid colliders of obj against a unit-direction ray.
func raycastObject(obj *engine.GameObject, origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	best := RaycastHit{Distance: maxDistance}
	found := false

	if box := engine.GetComponent[*components.BoxCollider](obj); box != nil && !box.IsTrigger {
		if t, normal, ok := rayAABB(origin, direction, ColliderAABB(box)); ok && t <= best.Distance {
			best = RaycastHit{Point: pointAt(origin, direction, t), Normal: normal, Distance: t}
			found = true
		}
	}
	if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil && !sphere.IsTrigger {
		center := sphere.GetCenter()
		if t, ok := raySphere(origin, direction, center, sphere.GetWorldRadius()); ok && t <= best.Distance {
			point := pointAt(origin, direction, t)
			best = RaycastHit{Point: point, Normal: rl.Vector3Normalize(rl.Vector3Subtract(point, center)), Distance: t}
			found = true
		}
	}
	return best, found
}

// rayAABB intersects a ray with box using slabs. It returns the entry
// distance and face normal, or the exit when the ray starts inside.
func rayAABB(origin, direction rl.Vector3, box AABB) (float32, rl.Vector3, bool) {
	tNear, tFar := float32(math.Inf(-1)), float32(math.Inf(1))
	var nearNormal, farNormal rl.Vector3

	for i := 0; i < 3; i++ {
		o, d := axis(origin, i), axis(direction, i)
		lo, hi := axis(box.Min, i), axis(box.Max, i)
		if d == 0 {
			if o < lo || o > hi {
				return 0, rl.Vector3{}, false
			}
			continue
		}

		t1, t2 := (lo-o)/d, (hi-o)/d
		enter := float32(-1) // entering through the min face
		if t1 > t2 {
			t1, t2 = t2, t1
			enter = 1
		}
		if t1 > tNear {
			tNear, nearNormal = t1, axisVector(i, enter)
		}
		if t2 < tFar {
			tFar, farNormal = t2, axisVector(i, -enter)
		}
		if tNear > tFar {
			return 0, rl.Vector3{}, false
		}
	}

	switch {
	case tFar < 0:
		return 0, rl.Vector3{}, false
	case tNear >= 0:
		return tNear, nearNormal, true
	default:
		return tFar, farNormal, true
	}
}

// raySphere returns the first non-negative hit distance of a unit ray.
func raySphere(origin, direction, center rl.Vector3, radius float32) (float32, bool) {
	oc := rl.Vector3Subtract(origin, center)
	b := rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	root := float32(math.Sqrt(float64(disc)))
	if t := -b - root; t >= 0 {
		return t, true
	}
	if t := -b + root; t >= 0 {
		return t, true
	}
	return 0, false
}

func pointAt(origin, direction rl.Vector3, t float32) rl.Vector3 {
	return rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
