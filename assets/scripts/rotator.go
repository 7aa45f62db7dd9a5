package scripts

import (
	"math"

	"sevenlights/internal/engine"
)

// Rotator spins a pickup around Y and bobs it above its start height so
// items stand out from the level geometry.
type Rotator struct {
	engine.BaseComponent
	Speed     float32 // degrees per second
	BobHeight float32
	BobSpeed  float32 // cycles per second

	baseY   float32
	elapsed float32
}

func (r *Rotator) Start() {
	if g := r.GetGameObject(); g != nil {
		r.baseY = g.Transform.Position.Y
	}
}

func (r *Rotator) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil {
		return
	}
	g.Transform.Rotation.Y = float32(math.Mod(float64(g.Transform.Rotation.Y+r.Speed*deltaTime), 360))

	if r.BobHeight != 0 {
		r.elapsed += deltaTime
		phase := 2 * math.Pi * float64(r.BobSpeed*r.elapsed)
		g.Transform.Position.Y = r.baseY + r.BobHeight*float32(math.Sin(phase))
	}
}

func init() {
	engine.RegisterScript("Rotator", rotatorFactory, rotatorSerializer)
}

func rotatorFactory(props map[string]any) engine.Component {
	getFloat := func(key string, fallback float32) float32 {
		if v, ok := props[key].(float64); ok {
			return float32(v)
		}
		return fallback
	}
	return &Rotator{
		Speed:     getFloat("speed", 90),
		BobHeight: getFloat("bobHeight", 0),
		BobSpeed:  getFloat("bobSpeed", 0.5),
	}
}

func rotatorSerializer(c engine.Component) map[string]any {
	r, ok := c.(*Rotator)
	if !ok {
		return nil
	}
	return map[string]any{
		"speed":     r.Speed,
		"bobHeight": r.BobHeight,
		"bobSpeed":  r.BobSpeed,
	}
}
