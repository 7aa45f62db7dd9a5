package components

import (
	"math"

	"sevenlights/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FPSController drives a first-person pawn from mouse and keyboard and
// provides its viewpoint. Only a Local controller reads input or reports a
// viewpoint; remote and AI pawns keep the component but leave Local off.
type FPSController struct {
	engine.BaseComponent
	Yaw          float32
	Pitch        float32
	MoveSpeed    float32
	LookSpeed    float32
	Velocity     rl.Vector3
	Gravity      float32
	JumpStrength float32
	Grounded     bool
	// EyeHeight is the drop from the transform (the eye) to the feet.
	EyeHeight float32
	Local     bool
}

func NewFPSController() *FPSController {
	return &FPSController{
		Yaw:          -90.0,
		Pitch:        0.0,
		MoveSpeed:    6.0,
		LookSpeed:    0.1,
		Gravity:      20.0,
		JumpStrength: 8.0,
		EyeHeight:    1.7,
		Local:        true,
	}
}

func (f *FPSController) Update(deltaTime float32) {
	g := f.GetGameObject()
	if g == nil || !f.Local {
		return
	}

	mouseDelta := rl.GetMouseDelta()
	f.Yaw += mouseDelta.X * f.LookSpeed
	f.Pitch -= mouseDelta.Y * f.LookSpeed
	f.Pitch = clampPitch(f.Pitch)

	forward, right := f.getDirections()

	var moveDir rl.Vector3
	if rl.IsKeyDown(rl.KeyW) {
		moveDir = rl.Vector3Add(moveDir, forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		moveDir = rl.Vector3Subtract(moveDir, forward)
	}
	if rl.IsKeyDown(rl.KeyA) {
		moveDir = rl.Vector3Add(moveDir, right)
	}
	if rl.IsKeyDown(rl.KeyD) {
		moveDir = rl.Vector3Subtract(moveDir, right)
	}
	if rl.Vector3Length(moveDir) > 0 {
		moveDir = rl.Vector3Normalize(moveDir)
	}

	f.Velocity.X = moveDir.X * f.MoveSpeed
	f.Velocity.Z = moveDir.Z * f.MoveSpeed

	if rl.IsKeyPressed(rl.KeySpace) && f.Grounded {
		f.Velocity.Y = f.JumpStrength
		f.Grounded = false
	}
	if !f.Grounded {
		f.Velocity.Y -= f.Gravity * deltaTime
	}

	g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(f.Velocity, deltaTime))
}

func clampPitch(p float32) float32 {
	if p > 89 {
		return 89
	}
	if p < -89 {
		return -89
	}
	return p
}

// getDirections returns the horizontal forward and right vectors
func (f *FPSController) getDirections() (forward, right rl.Vector3) {
	yawRad := float64(f.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Z: float32(-math.Cos(yawRad)),
	}
	return
}

func (f *FPSController) GetLookDirection() rl.Vector3 {
	yawRad := float64(f.Yaw) * math.Pi / 180
	pitchRad := float64(f.Pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

// IsLocalPlayer reports whether this pawn is driven by local input.
func (f *FPSController) IsLocalPlayer() bool {
	return f.Local && f.GetGameObject() != nil
}

// PlayerViewPoint returns the eye position and unit look direction.
// The pawn's transform already sits at eye level; EyeHeight is the
// distance down to its feet.
func (f *FPSController) PlayerViewPoint() (position, direction rl.Vector3) {
	g := f.GetGameObject()
	if g == nil {
		return rl.Vector3{}, rl.Vector3{}
	}
	return g.WorldPosition(), f.GetLookDirection()
}
