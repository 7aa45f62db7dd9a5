package components

import (
	"math"

	"sevenlights/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Camera struct {
	engine.BaseComponent
	FOV        float32
	Projection rl.CameraProjection
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        70.0,
		Projection: rl.CameraPerspective,
	}
}

// GetRaylibCamera builds the render camera from the first LookProvider on
// this object or one of its parents.
func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()

	var lookProvider engine.LookProvider
	for obj := g; obj != nil; obj = obj.Parent {
		if lp := engine.FindComponent[engine.LookProvider](obj); lp != nil {
			lookProvider = lp
			break
		}
	}

	var forward rl.Vector3
	if lookProvider != nil {
		forward = lookProvider.GetLookDirection()
	} else {
		yawRad := float64(g.WorldRotation().Y) * math.Pi / 180
		forward = rl.Vector3{
			X: float32(-math.Sin(yawRad)),
			Z: float32(-math.Cos(yawRad)),
		}
	}

	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, forward),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
