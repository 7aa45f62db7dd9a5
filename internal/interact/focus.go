package interact

import (
	"log"

	"sevenlights/internal/engine"
)

// FocusTracker remembers which usable object the owner is aiming at.
// The focus is a weak reference: a destroyed object stops resolving
// immediately, even before the next Update.
type FocusTracker struct {
	MaxDistance float32
	// OnFocusChanged fires with the new focus (nil when lost).
	OnFocusChanged engine.Event[*engine.GameObject]

	focus engine.GameObjectRef
}

// Update recomputes the focus for owner. Without local control authority
// no ray is cast and the focus is cleared.
func (t *FocusTracker) Update(owner *engine.GameObject, ctrl Controller) {
	if owner == nil || ctrl == nil || !ctrl.IsLocalPlayer() {
		t.setFocus(nil)
		return
	}
	if owner.Scene == nil || owner.Scene.World == nil {
		t.setFocus(nil)
		return
	}

	origin, direction := ctrl.PlayerViewPoint()
	hit, ok := owner.Scene.World.Raycast(origin, direction, t.MaxDistance, owner)
	if !ok || hit.GameObject == nil || hit.GameObject.IsSelfOrDescendantOf(owner) {
		t.setFocus(nil)
		return
	}
	if _, usable := AsUsable(hit.GameObject); !usable {
		t.setFocus(nil)
		return
	}
	t.setFocus(hit.GameObject)
}

func (t *FocusTracker) setFocus(g *engine.GameObject) {
	next := engine.RefTo(g)
	if next == t.focus {
		return
	}
	t.focus = next
	if g != nil {
		log.Printf("Interact: focus -> %s", g.Name)
	}
	t.OnFocusChanged.Invoke(g)
}

// Focused resolves the current focus in scene. It returns nil when nothing
// is focused or the focused object no longer exists.
func (t *FocusTracker) Focused(scene *engine.Scene) *engine.GameObject {
	g := t.focus.Get(scene)
	if _, ok := AsUsable(g); !ok {
		return nil
	}
	return g
}

// Clear drops the current focus.
func (t *FocusTracker) Clear() {
	t.setFocus(nil)
}
