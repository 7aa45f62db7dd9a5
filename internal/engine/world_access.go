package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies.
type WorldAccess interface {
	GetCollidableObjects() []*GameObject
	SpawnObject(g *GameObject)
	Destroy(g *GameObject)
	// Raycast returns the closest blocking hit within maxDistance.
	// ignore and its children never count as hits; it may be nil.
	Raycast(origin, direction rl.Vector3, maxDistance float32, ignore *GameObject) (RaycastResult, bool)
}

// Destroy removes g from its world. Without a world it is only dropped
// from its scene, which is enough to invalidate every GameObjectRef to it.
func Destroy(g *GameObject) {
	if g == nil || g.destroyed {
		return
	}
	if g.Scene != nil && g.Scene.World != nil {
		g.Scene.World.Destroy(g)
		return
	}
	if g.Scene != nil {
		g.Scene.RemoveGameObject(g)
	}
	markTreeDestroyed(g)
}

func markTreeDestroyed(g *GameObject) {
	for _, child := range g.Children {
		markTreeDestroyed(child)
	}
	g.MarkDestroyed()
}
