package world

import (
	"sevenlights/internal/components"
	"sevenlights/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Draw renders the floor and every ModelRenderer. Call inside BeginMode3D.
func (w *World) Draw() {
	rl.DrawPlane(rl.Vector3{Y: FloorY}, rl.Vector2{X: FloorSize, Y: FloorSize}, rl.LightGray)
	rl.DrawGrid(int32(FloorSize), 1.0)

	for _, g := range w.Scene.GameObjects {
		if renderer := engine.GetComponent[*components.ModelRenderer](g); renderer != nil {
			renderer.Draw()
		}
	}
}

// Unload releases every renderer still in the scene.
func (w *World) Unload() {
	for _, g := range w.Scene.GameObjects {
		for _, c := range g.Components() {
			if u, ok := c.(engine.Unloader); ok {
				u.Unload()
			}
		}
	}
}
