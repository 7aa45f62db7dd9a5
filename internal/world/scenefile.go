package world

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"sevenlights/internal/components"
	"sevenlights/internal/engine"
	"sevenlights/internal/palette"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// --- JSON types ---

type SceneFile struct {
	PlayerStart *[3]float32 `json:"playerStart,omitempty"`
	Objects     []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type modelRendererDef struct {
	Type     string    `json:"type"`
	Mesh     string    `json:"mesh"`
	MeshSize []float32 `json:"meshSize"`
	Color    string    `json:"color"`
}

type boxColliderDef struct {
	Type      string     `json:"type"`
	Size      [3]float32 `json:"size"`
	Offset    [3]float32 `json:"offset,omitempty"`
	IsTrigger bool       `json:"isTrigger,omitempty"`
}

type sphereColliderDef struct {
	Type      string  `json:"type"`
	Radius    float32 `json:"radius"`
	IsTrigger bool    `json:"isTrigger,omitempty"`
}

type scriptDef struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

//go:embed scene.schema.json
var sceneSchemaSource string

var sceneSchema = jsonschema.MustCompileString("scene.schema.json", sceneSchemaSource)

// --- Loading ---

// ParseScene validates data against the scene schema and decodes it.
func ParseScene(data []byte) (SceneFile, error) {
	var sf SceneFile

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return sf, fmt.Errorf("parse scene: %w", err)
	}
	if err := sceneSchema.Validate(doc); err != nil {
		return sf, fmt.Errorf("validate scene: %w", err)
	}
	if err := json.Unmarshal(data, &sf); err != nil {
		return sf, fmt.Errorf("parse scene: %w", err)
	}
	return sf, nil
}

// LoadScene reads a scene file and spawns its objects into the world.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	sf, err := ParseScene(data)
	if err != nil {
		return err
	}
	w.Instantiate(sf)
	log.Printf("World: loaded %d objects from %s", len(sf.Objects), path)
	return nil
}

// Instantiate spawns every object of sf.
func (w *World) Instantiate(sf SceneFile) {
	if sf.PlayerStart != nil {
		p := *sf.PlayerStart
		w.PlayerStart = rl.Vector3{X: p[0], Y: p[1], Z: p[2]}
	}

	for _, objDef := range sf.Objects {
		g := engine.NewGameObject(objDef.Name)
		g.Tags = objDef.Tags
		g.Transform.Position = rl.Vector3{X: objDef.Position[0], Y: objDef.Position[1], Z: objDef.Position[2]}
		g.Transform.Rotation = rl.Vector3{X: objDef.Rotation[0], Y: objDef.Rotation[1], Z: objDef.Rotation[2]}

		// Default scale to 1 if zero
		if objDef.Scale != [3]float32{} {
			g.Transform.Scale = rl.Vector3{X: objDef.Scale[0], Y: objDef.Scale[1], Z: objDef.Scale[2]}
		}

		for _, raw := range objDef.Components {
			var header componentHeader
			if err := json.Unmarshal(raw, &header); err != nil {
				continue
			}

			switch header.Type {
			case "ModelRenderer":
				loadModelRenderer(g, raw)
			case "BoxCollider":
				loadBoxCollider(g, raw)
			case "SphereCollider":
				loadSphereCollider(g, raw)
			case "Script":
				loadScript(g, raw)
			}
		}

		w.SpawnObject(g)
	}
}

func loadModelRenderer(g *engine.GameObject, raw json.RawMessage) {
	var def modelRendererDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	g.AddComponent(components.NewModelRenderer(def.Mesh, def.MeshSize, palette.Lookup(def.Color)))
}

func loadBoxCollider(g *engine.GameObject, raw json.RawMessage) {
	var def boxColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	col := components.NewBoxCollider(rl.Vector3{X: def.Size[0], Y: def.Size[1], Z: def.Size[2]})
	col.Offset = rl.Vector3{X: def.Offset[0], Y: def.Offset[1], Z: def.Offset[2]}
	col.IsTrigger = def.IsTrigger
	g.AddComponent(col)
}

func loadSphereCollider(g *engine.GameObject, raw json.RawMessage) {
	var def sphereColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	col := components.NewSphereCollider(def.Radius)
	col.IsTrigger = def.IsTrigger
	g.AddComponent(col)
}

func loadScript(g *engine.GameObject, raw json.RawMessage) {
	var def scriptDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	comp := engine.CreateScript(def.Name, def.Props)
	if comp == nil {
		log.Printf("World: unknown script %q on %s", def.Name, g.Name)
		return
	}
	g.AddComponent(comp)
}
