package interact

import (
	"log"

	"sevenlights/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultMaxUseDistance  = 4.0
	DefaultMessageDuration = 5.0
)

// Character is the player-side half of the use mechanic. It sits on the
// pawn next to a Controller component, tracks the focused usable object
// every tick and owns the pawn's inventory.
type Character struct {
	engine.BaseComponent
	MaxUseDistance float32
	// Messages receives the inventory listing. It is set by the game only
	// while a window exists.
	Messages        MessageSink
	MessageDuration float32
	MessageColor    rl.Color

	Focus       FocusTracker
	OnItemAdded engine.Event[string]

	inventory Inventory
}

func NewCharacter() *Character {
	return &Character{
		MaxUseDistance:  DefaultMaxUseDistance,
		MessageDuration: DefaultMessageDuration,
		MessageColor:    rl.Red,
	}
}

func (c *Character) Update(deltaTime float32) {
	c.CheckForUsable()
}

// Controller returns the control authority on the same object, or nil.
func (c *Character) Controller() Controller {
	return engine.FindComponent[Controller](c.GetGameObject())
}

// CheckForUsable recomputes the focused usable object.
func (c *Character) CheckForUsable() {
	c.Focus.MaxDistance = c.MaxUseDistance
	c.Focus.Update(c.GetGameObject(), c.Controller())
}

// Focused returns the usable object under the crosshair, or nil.
func (c *Character) Focused() *engine.GameObject {
	g := c.GetGameObject()
	if g == nil {
		return nil
	}
	return c.Focus.Focused(g.Scene)
}

// OnUse invokes the focused object. It is a no-op without a focus or
// without a controller.
func (c *Character) OnUse() {
	target := c.Focused()
	if target == nil || c.Controller() == nil {
		return
	}
	usable, ok := AsUsable(target)
	if !ok {
		return
	}
	usable.OnUsed(c)
	if target.Destroyed() {
		c.Focus.Clear()
	}
}

// AddItemToInventory appends name to the inventory.
func (c *Character) AddItemToInventory(name string) {
	c.inventory.Add(name)
	log.Printf("Interact: picked up %q (%d items)", name, c.inventory.Len())
	c.OnItemAdded.Invoke(name)
}

// Inventory returns a copy of the carried item names in pickup order.
func (c *Character) Inventory() []string {
	return c.inventory.Items()
}

// ItemCount returns how many carried items are called name.
func (c *Character) ItemCount(name string) int {
	return c.inventory.Count(name)
}

// ShowInventory posts one line per item to the message sink and returns
// the lines. The inventory is not modified.
func (c *Character) ShowInventory() []string {
	lines := c.inventory.Lines()
	if c.Messages == nil {
		for _, line := range lines {
			log.Printf("Interact: %s", line)
		}
		return lines
	}
	for _, line := range lines {
		c.Messages.AddMessage(line, c.MessageDuration, c.MessageColor)
	}
	return lines
}
