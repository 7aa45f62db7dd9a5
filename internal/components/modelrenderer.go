package components

import (
	"sevenlights/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelRenderer draws a generated mesh for its GameObject. The model is
// owned by the renderer and released when the object is destroyed.
type ModelRenderer struct {
	engine.BaseComponent
	MeshType string    // "cube", "sphere" or "plane"
	MeshSize []float32 // cube: x,y,z; sphere: radius; plane: width,length
	Color    rl.Color
	// Highlight draws a wireframe over the model, e.g. while focused.
	Highlight bool

	model  rl.Model
	loaded bool
}

func NewModelRenderer(meshType string, meshSize []float32, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		MeshType: meshType,
		MeshSize: meshSize,
		Color:    color,
	}
}

// Start uploads the mesh. Without a window (tests, headless tools) it is a no-op.
func (m *ModelRenderer) Start() {
	if m.loaded || !rl.IsWindowReady() {
		return
	}
	mesh, ok := m.genMesh()
	if !ok {
		return
	}
	m.model = rl.LoadModelFromMesh(mesh)
	m.loaded = true
}

func (m *ModelRenderer) genMesh() (rl.Mesh, bool) {
	switch m.MeshType {
	case "cube":
		if len(m.MeshSize) >= 3 {
			return rl.GenMeshCube(m.MeshSize[0], m.MeshSize[1], m.MeshSize[2]), true
		}
	case "sphere":
		if len(m.MeshSize) >= 1 {
			return rl.GenMeshSphere(m.MeshSize[0], 16, 16), true
		}
	case "plane":
		if len(m.MeshSize) >= 2 {
			return rl.GenMeshPlane(m.MeshSize[0], m.MeshSize[1], 1, 1), true
		}
	}
	return rl.Mesh{}, false
}

func (m *ModelRenderer) Loaded() bool {
	return m.loaded
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active || !m.loaded {
		return
	}

	scale := g.WorldScale()
	rot := g.WorldRotation()
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(
		rl.MatrixRotateX(rot.X*rl.Deg2rad),
		rl.MatrixRotateY(rot.Y*rl.Deg2rad)),
		rl.MatrixRotateZ(rot.Z*rl.Deg2rad))
	pos := g.WorldPosition()

	// scale -> rotate -> translate
	m.model.Transform = rl.MatrixMultiply(
		rl.MatrixMultiply(rl.MatrixScale(scale.X, scale.Y, scale.Z), rotMatrix),
		rl.MatrixTranslate(pos.X, pos.Y, pos.Z))

	rl.DrawModel(m.model, rl.Vector3Zero(), 1.0, m.Color)
	if m.Highlight {
		rl.DrawModelWires(m.model, rl.Vector3Zero(), 1.0, rl.Yellow)
	}
}

// Unload implements engine.Unloader
func (m *ModelRenderer) Unload() {
	if !m.loaded {
		return
	}
	rl.UnloadModel(m.model)
	m.loaded = false
}
