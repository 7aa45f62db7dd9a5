package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	// World is set by the owning world so scripts can raycast and destroy.
	World   WorldAccess
	uidMap  map[uint64]*GameObject
	started bool
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

// RemoveGameObject removes g and all of its children from the scene.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	delete(s.uidMap, g.UID)
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			return
		}
	}
}

// FindByUID returns the live object with the given UID, or nil.
func (s *Scene) FindByUID(uid uint64) *GameObject {
	if uid == 0 {
		return nil
	}
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	s.started = true
	for _, g := range s.GameObjects {
		g.Start()
	}
}

// Started reports whether Start has run.
func (s *Scene) Started() bool {
	return s.started
}

// Update ticks every object. It iterates over a snapshot so objects may be
// spawned or destroyed from inside a component's Update.
func (s *Scene) Update(deltaTime float32) {
	objects := make([]*GameObject, len(s.GameObjects))
	copy(objects, s.GameObjects)
	for _, g := range objects {
		g.Update(deltaTime)
	}
}
