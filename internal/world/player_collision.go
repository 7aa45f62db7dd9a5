package world

import (
	"sevenlights/internal/components"
	"sevenlights/internal/engine"
	"sevenlights/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlayerCollision keeps an FPS pawn on the floor and out of solid boxes.
// Add it after the FPSController and before anything that reads the
// viewpoint, so focus traces start from the corrected position.
type PlayerCollision struct {
	engine.BaseComponent
}

func (p *PlayerCollision) Update(deltaTime float32) {
	g := p.GetGameObject()
	if g == nil || g.Scene == nil {
		return
	}
	w, ok := g.Scene.World.(*World)
	if !ok {
		return
	}

	fps := engine.GetComponent[*components.FPSController](g)
	collider := engine.GetComponent[*components.BoxCollider](g)
	if fps == nil || collider == nil {
		return
	}

	feetY := g.Transform.Position.Y - fps.EyeHeight
	if feetY <= FloorY {
		g.Transform.Position.Y = FloorY + fps.EyeHeight
		fps.Velocity.Y = 0
		fps.Grounded = true
	} else {
		fps.Grounded = false
	}

	// Body box: feet at position - eye height
	center := rl.Vector3{
		X: g.Transform.Position.X,
		Y: g.Transform.Position.Y - fps.EyeHeight + collider.Size.Y/2,
		Z: g.Transform.Position.Z,
	}
	body := physics.NewAABBFromCenter(center, collider.Size)

	_, pushOut := w.Physics.ResolveBody(body, g)
	if pushOut == (rl.Vector3{}) {
		return
	}
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, pushOut)
	if pushOut.Y > 0 {
		fps.Velocity.Y = 0
		fps.Grounded = true
	}
	if pushOut.Y < 0 && fps.Velocity.Y > 0 {
		fps.Velocity.Y = 0
	}
}
