// Package input maps named actions to keys and reports press edges.
package input

import (
	"fmt"
	"sort"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Actions understood by the game loop.
const (
	ActionUse        = "use"
	ActionInventory  = "inventory"
	ActionScreenshot = "screenshot"
)

var keyByName = map[string]int32{
	"A": rl.KeyA, "B": rl.KeyB, "C": rl.KeyC, "D": rl.KeyD, "E": rl.KeyE,
	"F": rl.KeyF, "G": rl.KeyG, "H": rl.KeyH, "I": rl.KeyI, "J": rl.KeyJ,
	"K": rl.KeyK, "L": rl.KeyL, "M": rl.KeyM, "N": rl.KeyN, "O": rl.KeyO,
	"P": rl.KeyP, "Q": rl.KeyQ, "R": rl.KeyR, "S": rl.KeyS, "T": rl.KeyT,
	"U": rl.KeyU, "V": rl.KeyV, "W": rl.KeyW, "X": rl.KeyX, "Y": rl.KeyY,
	"Z": rl.KeyZ,
	"TAB":   rl.KeyTab,
	"ENTER": rl.KeyEnter,
	"SPACE": rl.KeySpace,
	"F1":    rl.KeyF1,
	"F2":    rl.KeyF2,
	"F3":    rl.KeyF3,
	"F4":    rl.KeyF4,
	"F5":    rl.KeyF5,
	"F6":    rl.KeyF6,
	"F7":    rl.KeyF7,
	"F8":    rl.KeyF8,
	"F9":    rl.KeyF9,
	"F10":   rl.KeyF10,
	"F11":   rl.KeyF11,
	"F12":   rl.KeyF12,
}

// KeyByName resolves a key name such as "E" or "Tab" (case-insensitive).
func KeyByName(name string) (int32, bool) {
	key, ok := keyByName[strings.ToUpper(strings.TrimSpace(name))]
	return key, ok
}

// KeyNames lists every accepted key name.
func KeyNames() []string {
	names := make([]string, 0, len(keyByName))
	for name := range keyByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bindings maps action names to keys.
type Bindings struct {
	keys  map[string]int32
	names map[string]string

	// IsKeyPressed reports a press edge for a key. Defaults to rl.IsKeyPressed.
	IsKeyPressed func(key int32) bool
}

// NewBindings builds bindings from action -> key name pairs.
func NewBindings(actions map[string]string) (*Bindings, error) {
	b := &Bindings{
		keys:         make(map[string]int32, len(actions)),
		names:        make(map[string]string, len(actions)),
		IsKeyPressed: rl.IsKeyPressed,
	}
	for action, name := range actions {
		if err := b.Bind(action, name); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Bind maps action to the named key, replacing any previous binding.
func (b *Bindings) Bind(action, keyName string) error {
	key, ok := KeyByName(keyName)
	if !ok {
		return fmt.Errorf("unknown key %q for action %q", keyName, action)
	}
	b.keys[action] = key
	b.names[action] = strings.ToUpper(strings.TrimSpace(keyName))
	return nil
}

// Pressed reports whether the action's key went down this frame.
// Unbound actions are never pressed.
func (b *Bindings) Pressed(action string) bool {
	key, ok := b.keys[action]
	if !ok || b.IsKeyPressed == nil {
		return false
	}
	return b.IsKeyPressed(key)
}

// KeyName returns the key name bound to action, or "" if unbound.
func (b *Bindings) KeyName(action string) string {
	return b.names[action]
}
