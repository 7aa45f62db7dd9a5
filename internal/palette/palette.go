// Package palette names the raylib colors usable from scene files and config.
package palette

import rl "github.com/gen2brain/raylib-go/raylib"

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"SkyBlue":   rl.SkyBlue,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

// ByName reports the color for name. Names are case-sensitive.
func ByName(name string) (rl.Color, bool) {
	c, ok := colorByName[name]
	return c, ok
}

// Lookup maps a color name to a raylib color, defaulting to white.
func Lookup(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}
