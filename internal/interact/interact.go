// Package interact implements the first-person "use" mechanic: every tick
// the player's Character traces a ray from its viewpoint to find the usable
// object under the crosshair, and a use input invokes that object.
package interact

import (
	"sevenlights/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Usable is implemented by components on world objects that react to the
// player's use input. OnUsed may mutate the user and may destroy its own
// object; it runs at most once per use trigger.
type Usable interface {
	OnUsed(user *Character)
}

// AsUsable returns the Usable component of g, if any.
func AsUsable(g *engine.GameObject) (Usable, bool) {
	if g == nil || g.Destroyed() {
		return nil, false
	}
	u := engine.FindComponent[Usable](g)
	return u, u != nil
}

// Controller is the control authority of a pawn. The viewpoint is only
// meaningful while IsLocalPlayer is true.
type Controller interface {
	IsLocalPlayer() bool
	PlayerViewPoint() (position, direction rl.Vector3)
}

// MessageSink receives transient on-screen diagnostic text.
type MessageSink interface {
	AddMessage(text string, duration float32, color rl.Color)
}
