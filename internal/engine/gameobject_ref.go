package engine

// GameObjectRef is a weak, non-owning reference to a GameObject by UID.
// It never keeps an object alive: once the object leaves its scene the
// reference resolves to nil, and since UIDs are not reused it stays nil.
type GameObjectRef struct {
	UID uint64 // 0 = none
}

// RefTo returns a reference to g, or an empty reference for nil.
func RefTo(g *GameObject) GameObjectRef {
	var r GameObjectRef
	r.Set(g)
	return r
}

// Get resolves the reference to the live GameObject.
// Returns nil if the reference is empty, the scene is nil, or the object is gone.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	g := scene.FindByUID(r.UID)
	if g == nil || g.destroyed {
		return nil
	}
	return g
}

// IsValid returns true if the reference points to something (UID != 0).
// It doesn't check whether the GameObject still exists.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

// Set points the reference at g. Pass nil to clear it.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}
