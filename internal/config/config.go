package config

import (
	"errors"
	"fmt"
	"os"

	"sevenlights/internal/input"
	"sevenlights/internal/palette"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window   Window   `yaml:"window"`
	Player   Player   `yaml:"player"`
	Messages Messages `yaml:"messages"`
	Input    Input    `yaml:"input"`
	Capture  Capture  `yaml:"capture"`

	// Scene is a scene JSON path; empty loads the built-in level.
	Scene string `yaml:"scene"`
}

type Window struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

type Player struct {
	MaxUseDistance float32 `yaml:"max_use_distance"`
	EyeHeight      float32 `yaml:"eye_height"`
	MoveSpeed      float32 `yaml:"move_speed"`
	LookSpeed      float32 `yaml:"look_speed"`

	// Spawn overrides the scene's player start when set.
	Spawn []float32 `yaml:"spawn"`
}

type Messages struct {
	DurationSeconds float32 `yaml:"duration_seconds"`
	Color           string  `yaml:"color"`
}

type Input struct {
	Use        string `yaml:"use"`
	Inventory  string `yaml:"inventory"`
	Screenshot string `yaml:"screenshot"`
}

type Capture struct {
	Dir string `yaml:"dir"`
	// MaxSize caps the longest side of saved screenshots; 0 keeps full size.
	MaxSize int `yaml:"max_size"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "Seven Lights",
			TargetFPS: 120,
		},
		Player: Player{
			MaxUseDistance: 4.0,
			EyeHeight:      1.7,
			MoveSpeed:      5.0,
			LookSpeed:      0.1,
		},
		Messages: Messages{
			DurationSeconds: 5.0,
			Color:           "Red",
		},
		Input: Input{
			Use:        "E",
			Inventory:  "I",
			Screenshot: "F12",
		},
		Capture: Capture{
			Dir:     "screenshots",
			MaxSize: 1280,
		},
	}
}

// Load reads a YAML file on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Player.MaxUseDistance <= 0 {
		return fmt.Errorf("player.max_use_distance must be positive, got %v", c.Player.MaxUseDistance)
	}
	if c.Player.EyeHeight < 0 {
		return fmt.Errorf("player.eye_height must not be negative, got %v", c.Player.EyeHeight)
	}
	if len(c.Player.Spawn) != 0 && len(c.Player.Spawn) != 3 {
		return fmt.Errorf("player.spawn needs 3 values, got %d", len(c.Player.Spawn))
	}
	if c.Messages.DurationSeconds <= 0 {
		return fmt.Errorf("messages.duration_seconds must be positive, got %v", c.Messages.DurationSeconds)
	}
	if _, ok := palette.ByName(c.Messages.Color); !ok {
		return fmt.Errorf("messages.color: unknown color %q", c.Messages.Color)
	}
	if _, ok := input.KeyByName(c.Input.Use); !ok {
		return fmt.Errorf("input.use: unknown key %q", c.Input.Use)
	}
	if _, ok := input.KeyByName(c.Input.Inventory); !ok {
		return fmt.Errorf("input.inventory: unknown key %q", c.Input.Inventory)
	}
	if _, ok := input.KeyByName(c.Input.Screenshot); !ok {
		return fmt.Errorf("input.screenshot: unknown key %q", c.Input.Screenshot)
	}
	if c.Capture.MaxSize < 0 {
		return fmt.Errorf("capture.max_size must not be negative, got %d", c.Capture.MaxSize)
	}
	return nil
}

// Bindings returns the action map for input.NewBindings.
func (c Config) Bindings() map[string]string {
	return map[string]string{
		input.ActionUse:        c.Input.Use,
		input.ActionInventory:  c.Input.Inventory,
		input.ActionScreenshot: c.Input.Screenshot,
	}
}
