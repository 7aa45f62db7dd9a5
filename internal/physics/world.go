package physics

import (
	"sevenlights/internal/components"
	"sevenlights/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PhysicsWorld tracks every object carrying a collider and answers ray and
// overlap queries against them. Objects are never simulated here; movement
// belongs to controllers.
type PhysicsWorld struct {
	Objects []*engine.GameObject
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		Objects: make([]*engine.GameObject, 0),
	}
}

// AddObject registers g if it has a collider. Returns false otherwise.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) bool {
	if !hasCollider(g) {
		return false
	}
	for _, obj := range p.Objects {
		if obj == g {
			return true
		}
	}
	p.Objects = append(p.Objects, g)
	return true
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	for i, obj := range p.Objects {
		if obj == g {
			p.Objects = append(p.Objects[:i], p.Objects[i+1:]...)
			return
		}
	}
}

func hasCollider(g *engine.GameObject) bool {
	return engine.GetComponent[*components.BoxCollider](g) != nil ||
		engine.GetComponent[*components.SphereCollider](g) != nil
}

// blocks reports whether obj takes part in queries made on behalf of ignore.
func blocks(obj, ignore *engine.GameObject) bool {
	if !obj.Active || obj.Destroyed() {
		return false
	}
	return ignore == nil || !obj.IsSelfOrDescendantOf(ignore)
}

// ColliderAABB returns the world-space box of obj's BoxCollider.
func ColliderAABB(box *components.BoxCollider) AABB {
	size := box.GetWorldSize()
	size = rl.Vector3{X: abs(size.X), Y: abs(size.Y), Z: abs(size.Z)}
	return NewAABBFromCenter(box.GetCenter(), size)
}

// ResolveBody pushes body out of every solid box collider except those on
// ignore, returning the total correction applied.
func (p *PhysicsWorld) ResolveBody(body AABB, ignore *engine.GameObject) (AABB, rl.Vector3) {
	var total rl.Vector3
	for _, obj := range p.Objects {
		if !blocks(obj, ignore) {
			continue
		}
		box := engine.GetComponent[*components.BoxCollider](obj)
		if box == nil || box.IsTrigger {
			continue
		}
		push := body.Resolve(ColliderAABB(box))
		if push == (rl.Vector3{}) {
			continue
		}
		body = body.Translate(push)
		total = rl.Vector3Add(total, push)
	}
	return body, total
}
