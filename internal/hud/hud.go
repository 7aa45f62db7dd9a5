package hud

import (
	"fmt"

	"sevenlights/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	crosshairSize = 8
	lineHeight    = 22
	fontSize      = 20
)

var (
	colorCrosshair      = rl.NewColor(230, 230, 230, 200)
	colorCrosshairFocus = rl.NewColor(255, 200, 40, 255)
	colorPanelBg        = rl.NewColor(20, 20, 30, 200)
	colorPanelText      = rl.NewColor(240, 240, 245, 255)
)

// HUD draws the crosshair, the focused object label, the message log
// and the controls help.
type HUD struct {
	Log       *MessageLog
	HelpLines []string

	styled bool
}

func New(log *MessageLog) *HUD {
	return &HUD{Log: log}
}

func (h *HUD) Update(deltaTime float32) {
	if h.Log != nil {
		h.Log.Update(deltaTime)
	}
}

// FocusLabel is the text shown under the crosshair for a focused object.
func FocusLabel(focused *engine.GameObject, useKey string) string {
	if focused == nil {
		return ""
	}
	return fmt.Sprintf("[%s] %s", useKey, focused.Name)
}

func (h *HUD) applyStyle() {
	if h.styled {
		return
	}
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorPanelBg))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorPanelText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 18)
	h.styled = true
}

// Draw renders the overlay. Call between BeginDrawing and EndDrawing,
// outside any 3D mode.
func (h *HUD) Draw(focused *engine.GameObject, useKey string, inventoryCount int) {
	h.applyStyle()

	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	cx, cy := screenW/2, screenH/2

	cross := colorCrosshair
	if focused != nil {
		cross = colorCrosshairFocus
	}
	rl.DrawLine(cx-crosshairSize, cy, cx+crosshairSize, cy, cross)
	rl.DrawLine(cx, cy-crosshairSize, cx, cy+crosshairSize, cross)

	if label := FocusLabel(focused, useKey); label != "" {
		width := float32(rl.MeasureText(label, fontSize) + 24)
		bounds := rl.Rectangle{X: float32(cx) - width/2, Y: float32(cy + 20), Width: width, Height: 28}
		gui.Panel(bounds, "")
		gui.Label(rl.Rectangle{X: bounds.X + 12, Y: bounds.Y, Width: width - 24, Height: bounds.Height}, label)
	}

	y := int32(10)
	for _, line := range h.HelpLines {
		rl.DrawText(line, 10, y, fontSize, rl.DarkGray)
		y += lineHeight
	}
	rl.DrawText(fmt.Sprintf("Items: %d", inventoryCount), 10, y, fontSize, rl.DarkGray)
	rl.DrawFPS(screenW-90, 10)

	if h.Log == nil {
		return
	}
	messages := h.Log.Messages()
	y = screenH - 10 - int32(len(messages))*lineHeight
	for _, m := range messages {
		rl.DrawText(m.Text, 10, y, fontSize, fadeOut(m.Color, m.Remaining))
		y += lineHeight
	}
}

// fadeOut fades a message during its last second.
func fadeOut(c rl.Color, remaining float32) rl.Color {
	if remaining >= 1 {
		return c
	}
	if remaining <= 0 {
		c.A = 0
		return c
	}
	c.A = uint8(float32(c.A) * remaining)
	return c
}
