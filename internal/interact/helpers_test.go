package interact

import (
	"sevenlights/internal/components"
	"sevenlights/internal/engine"
	"sevenlights/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// testWorld is a minimal engine.WorldAccess backed by the real physics queries.
type testWorld struct {
	scene    *engine.Scene
	physics  *physics.PhysicsWorld
	raycasts int
}

func newTestWorld() *testWorld {
	w := &testWorld{
		scene:   engine.NewScene("Test"),
		physics: physics.NewPhysicsWorld(),
	}
	w.scene.World = w
	return w
}

func (w *testWorld) GetCollidableObjects() []*engine.GameObject { return w.physics.Objects }

func (w *testWorld) SpawnObject(g *engine.GameObject) {
	w.scene.AddGameObject(g)
	w.physics.AddObject(g)
}

func (w *testWorld) Destroy(g *engine.GameObject) {
	w.physics.RemoveObject(g)
	w.scene.RemoveGameObject(g)
	g.MarkDestroyed()
}

func (w *testWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, ignore *engine.GameObject) (engine.RaycastResult, bool) {
	w.raycasts++
	hit, ok := w.physics.Raycast(origin, direction, maxDistance, ignore)
	return engine.RaycastResult{
		GameObject: hit.GameObject,
		Point:      hit.Point,
		Normal:     hit.Normal,
		Distance:   hit.Distance,
	}, ok
}

// fakeController looks from Eye along Dir.
type fakeController struct {
	engine.BaseComponent
	Local bool
	Eye   rl.Vector3
	Dir   rl.Vector3
}

func (f *fakeController) IsLocalPlayer() bool { return f.Local }

func (f *fakeController) PlayerViewPoint() (rl.Vector3, rl.Vector3) { return f.Eye, f.Dir }

// pickup behaves like a scripts.Item without importing it.
type pickup struct {
	engine.BaseComponent
	name string
	uses int
}

func (p *pickup) OnUsed(user *Character) {
	p.uses++
	user.AddItemToInventory(p.name)
	engine.Destroy(p.GetGameObject())
}

type sinkLine struct {
	text     string
	duration float32
	color    rl.Color
}

type recordingSink struct {
	lines []sinkLine
}

func (s *recordingSink) AddMessage(text string, duration float32, color rl.Color) {
	s.lines = append(s.lines, sinkLine{text, duration, color})
}

// spawnPlayer adds a player at the origin looking down +Z.
func spawnPlayer(w *testWorld) (*engine.GameObject, *Character, *fakeController) {
	player := engine.NewGameObject("Player")
	player.AddComponent(components.NewBoxCollider(rl.Vector3{X: 0.6, Y: 1.8, Z: 0.6}))
	ctrl := &fakeController{Local: true, Dir: rl.Vector3{Z: 1}}
	player.AddComponent(ctrl)
	ch := NewCharacter()
	player.AddComponent(ch)
	w.SpawnObject(player)
	return player, ch, ctrl
}

func spawnPickup(w *testWorld, name string, z float32) (*engine.GameObject, *pickup) {
	g := engine.NewGameObject(name)
	g.Transform.Position = rl.Vector3{Z: z}
	g.AddComponent(components.NewBoxCollider(rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}))
	p := &pickup{name: name}
	g.AddComponent(p)
	w.SpawnObject(g)
	return g, p
}

func spawnWall(w *testWorld, z float32) *engine.GameObject {
	g := engine.NewGameObject("Wall")
	g.Transform.Position = rl.Vector3{Z: z}
	g.AddComponent(components.NewBoxCollider(rl.Vector3{X: 2, Y: 2, Z: 0.2}))
	w.SpawnObject(g)
	return g
}
