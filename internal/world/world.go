package world

import (
	"log"

	"sevenlights/internal/engine"
	"sevenlights/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	FloorSize float32 = 40.0
	FloorY    float32 = 0.0
)

// World owns the scene and the collider registry and implements
// engine.WorldAccess for scripts.
type World struct {
	Scene       *engine.Scene
	Physics     *physics.PhysicsWorld
	PlayerStart rl.Vector3
}

var _ engine.WorldAccess = (*World)(nil)

func New() *World {
	w := &World{
		Scene:       engine.NewScene("Main"),
		Physics:     physics.NewPhysicsWorld(),
		PlayerStart: rl.Vector3{X: 0, Y: 0, Z: 6},
	}
	w.Scene.World = w
	return w
}

// SpawnObject adds g (and its children) to the scene and physics.
// The object is started if the scene is already running.
func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.Physics.AddObject(g)
	for _, child := range g.Children {
		w.SpawnObject(child)
	}
	if w.Scene.Started() {
		g.Start()
	}
}

// Destroy removes g and its children from the world and releases their
// resources. Destroying twice is a no-op.
func (w *World) Destroy(g *engine.GameObject) {
	if g == nil || g.Destroyed() {
		return
	}
	for _, child := range append([]*engine.GameObject(nil), g.Children...) {
		w.Destroy(child)
	}
	for _, c := range g.Components() {
		if u, ok := c.(engine.Unloader); ok {
			u.Unload()
		}
	}
	w.Physics.RemoveObject(g)
	w.Scene.RemoveGameObject(g)
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	g.MarkDestroyed()
	log.Printf("World: destroyed %s", g.Name)
}

func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, ignore *engine.GameObject) (engine.RaycastResult, bool) {
	hit, ok := w.Physics.Raycast(origin, direction, maxDistance, ignore)
	if !ok {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{
		GameObject: hit.GameObject,
		Point:      hit.Point,
		Normal:     hit.Normal,
		Distance:   hit.Distance,
	}, true
}

// GetCollidableObjects returns all objects registered with physics
func (w *World) GetCollidableObjects() []*engine.GameObject {
	return w.Physics.Objects
}

func (w *World) Start() {
	w.Scene.Start()
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}
