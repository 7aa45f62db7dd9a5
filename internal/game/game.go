package game

import (
	"fmt"
	"log"
	"time"

	_ "sevenlights/assets/scripts"
	"sevenlights/internal/capture"
	"sevenlights/internal/components"
	"sevenlights/internal/config"
	"sevenlights/internal/engine"
	"sevenlights/internal/hud"
	"sevenlights/internal/input"
	"sevenlights/internal/interact"
	"sevenlights/internal/palette"
	"sevenlights/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// noticeDuration is how long pickup and screenshot notices stay on the HUD.
const noticeDuration = 2.0

type Game struct {
	Config    config.Config
	World     *world.World
	Player    *engine.GameObject
	Character *interact.Character
	HUD       *hud.HUD
	Bindings  *input.Bindings

	highlighted      engine.GameObjectRef
	captureRequested bool
}

func New(cfg config.Config) (*Game, error) {
	bindings, err := input.NewBindings(cfg.Bindings())
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	h := hud.New(hud.NewMessageLog())
	h.HelpLines = []string{
		"WASD to move, Space to jump, Mouse to look",
		fmt.Sprintf("%s to use, %s to list inventory", bindings.KeyName(input.ActionUse), bindings.KeyName(input.ActionInventory)),
		fmt.Sprintf("%s for a screenshot", bindings.KeyName(input.ActionScreenshot)),
	}
	return &Game{
		Config:   cfg,
		World:    world.New(),
		HUD:      h,
		Bindings: bindings,
	}, nil
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(g.Config.Window.Width, g.Config.Window.Height, g.Config.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.Config.Window.TargetFPS)
	rl.DisableCursor()

	// Renderers upload their meshes in Start, so the GL context must exist
	if err := g.Setup(); err != nil {
		return err
	}
	defer g.World.Unload()

	for !rl.WindowShouldClose() {
		g.Update(rl.GetFrameTime())
		g.Draw()
	}
	return nil
}

// Setup loads the level, spawns the player and starts the scene.
func (g *Game) Setup() error {
	if g.Config.Scene != "" {
		if err := g.World.LoadScene(g.Config.Scene); err != nil {
			return err
		}
	} else if err := g.World.LoadDefaultScene(); err != nil {
		return err
	}

	g.createPlayer()
	g.World.Start()
	log.Printf("Game: ready with %d objects", len(g.World.Scene.GameObjects))
	return nil
}

func (g *Game) createPlayer() {
	cfg := g.Config.Player

	start := g.World.PlayerStart
	if len(cfg.Spawn) == 3 {
		start = rl.Vector3{X: cfg.Spawn[0], Y: cfg.Spawn[1], Z: cfg.Spawn[2]}
	}

	g.Player = engine.NewGameObject("Player")
	g.Player.Tags = []string{"player"}
	g.Player.Transform.Position = rl.Vector3{X: start.X, Y: start.Y + cfg.EyeHeight, Z: start.Z}

	// Component order is the tick order: move, resolve collisions, then trace focus
	fps := components.NewFPSController()
	fps.EyeHeight = cfg.EyeHeight
	fps.MoveSpeed = cfg.MoveSpeed
	fps.LookSpeed = cfg.LookSpeed
	g.Player.AddComponent(fps)

	g.Player.AddComponent(components.NewBoxCollider(rl.Vector3{X: 0.6, Y: 1.8, Z: 0.6}))
	g.Player.AddComponent(&world.PlayerCollision{})
	g.Player.AddComponent(components.NewCamera())

	ch := interact.NewCharacter()
	ch.MaxUseDistance = cfg.MaxUseDistance
	ch.Messages = g.HUD.Log
	ch.MessageDuration = g.Config.Messages.DurationSeconds
	ch.MessageColor = palette.Lookup(g.Config.Messages.Color)
	ch.Focus.OnFocusChanged.AddListener(g.onFocusChanged)
	ch.OnItemAdded.AddListener(func(name string) {
		g.HUD.Log.AddMessage("Picked up "+name, noticeDuration, rl.Gold)
	})
	g.Player.AddComponent(ch)
	g.Character = ch

	g.World.SpawnObject(g.Player)
}

// onFocusChanged moves the wireframe highlight to the new focus.
func (g *Game) onFocusChanged(focused *engine.GameObject) {
	if prev := g.highlighted.Get(g.World.Scene); prev != nil {
		if r := engine.GetComponent[*components.ModelRenderer](prev); r != nil {
			r.Highlight = false
		}
	}
	g.highlighted.Set(focused)
	if focused == nil {
		return
	}
	if r := engine.GetComponent[*components.ModelRenderer](focused); r != nil {
		r.Highlight = true
	}
}

// Update advances one frame. Input actions run after the scene update so
// they see this frame's focus.
func (g *Game) Update(deltaTime float32) {
	g.World.Update(deltaTime)
	g.HUD.Update(deltaTime)
	g.handleInput()
}

func (g *Game) handleInput() {
	if g.Character == nil {
		return
	}
	if g.Bindings.Pressed(input.ActionUse) {
		g.Character.OnUse()
	}
	if g.Bindings.Pressed(input.ActionInventory) {
		if len(g.Character.ShowInventory()) == 0 {
			g.HUD.Log.AddMessage("Inventory is empty", g.Config.Messages.DurationSeconds, rl.Gray)
		}
	}
	if g.Bindings.Pressed(input.ActionScreenshot) {
		g.captureRequested = true
	}
}

// saveScreenshot grabs the last presented frame.
func (g *Game) saveScreenshot() {
	img := rl.LoadImageFromScreen()
	defer rl.UnloadImage(img)

	path := capture.FileName(g.Config.Capture.Dir, time.Now())
	if err := capture.Save(path, img.ToImage(), g.Config.Capture.MaxSize); err != nil {
		log.Printf("Game: screenshot failed: %v", err)
		return
	}
	log.Printf("Game: saved screenshot %s", path)
	g.HUD.Log.AddMessage("Saved "+path, noticeDuration, rl.SkyBlue)
}

func (g *Game) Draw() {
	cam := engine.GetComponent[*components.Camera](g.Player)
	if cam == nil {
		return
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(cam.GetRaylibCamera())
	g.World.Draw()
	rl.EndMode3D()

	g.HUD.Draw(g.Character.Focused(), g.Bindings.KeyName(input.ActionUse), len(g.Character.Inventory()))
	rl.EndDrawing()

	if g.captureRequested {
		g.captureRequested = false
		g.saveScreenshot()
	}
}
