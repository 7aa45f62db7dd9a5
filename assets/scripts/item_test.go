package scripts

import (
	"reflect"
	"testing"

	"sevenlights/internal/components"
	"sevenlights/internal/engine"
	"sevenlights/internal/interact"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type localController struct {
	engine.BaseComponent
}

func (l *localController) IsLocalPlayer() bool { return true }

func (l *localController) PlayerViewPoint() (rl.Vector3, rl.Vector3) {
	return rl.Vector3{}, rl.Vector3{Z: 1}
}

func TestItemOnUsedAddsNameThenDestroys(t *testing.T) {
	scene := engine.NewScene("Test")
	player := engine.NewGameObject("Player")
	ch := interact.NewCharacter()
	player.AddComponent(ch)
	scene.AddGameObject(player)

	obj := engine.NewGameObject("KeyPickup")
	obj.AddComponent(components.NewModelRenderer("cube", []float32{0.3, 0.3, 0.3}, rl.Gold))
	item := NewItem("Key")
	obj.AddComponent(item)
	scene.AddGameObject(obj)

	// The item must still be alive when the inventory is updated.
	var aliveDuringAdd bool
	ch.OnItemAdded.AddListener(func(string) { aliveDuringAdd = !obj.Destroyed() })

	item.OnUsed(ch)

	if !reflect.DeepEqual(ch.Inventory(), []string{"Key"}) {
		t.Errorf("Expected [Key], got %v", ch.Inventory())
	}
	if !aliveDuringAdd {
		t.Error("Inventory should be updated before the item is destroyed")
	}
	if !obj.Destroyed() || scene.FindByUID(obj.UID) != nil {
		t.Error("Item should be destroyed after use")
	}
	if !item.Used() {
		t.Error("Item should report Used after pickup")
	}
}

func TestItemUsedOnlyOnce(t *testing.T) {
	ch := interact.NewCharacter()
	obj := engine.NewGameObject("Pickup")
	item := NewItem("Coin")
	obj.AddComponent(item)

	item.OnUsed(ch)
	item.OnUsed(ch)

	if len(ch.Inventory()) != 1 {
		t.Errorf("Second use should be a no-op, got %v", ch.Inventory())
	}
}

func TestItemEmptyNameByDefault(t *testing.T) {
	ch := interact.NewCharacter()
	obj := engine.NewGameObject("Pickup")
	item := &Item{}
	obj.AddComponent(item)

	item.OnUsed(ch)

	if !reflect.DeepEqual(ch.Inventory(), []string{""}) {
		t.Errorf("Expected one empty entry, got %v", ch.Inventory())
	}
}

func TestItemIsUsable(t *testing.T) {
	obj := engine.NewGameObject("Pickup")
	item := NewItem("Key")
	obj.AddComponent(item)

	u, ok := interact.AsUsable(obj)
	if !ok || u != item {
		t.Error("Item should satisfy interact.Usable")
	}
}

func TestItemScriptRegistration(t *testing.T) {
	c := engine.CreateScript("Item", map[string]any{"itemName": "Lamp"})
	item, ok := c.(*Item)
	if !ok {
		t.Fatalf("Expected *Item, got %T", c)
	}
	if item.ItemName != "Lamp" {
		t.Errorf("Expected ItemName Lamp, got %q", item.ItemName)
	}

	name, props, ok := engine.SerializeScript(item)
	if !ok || name != "Item" || props["itemName"] != "Lamp" {
		t.Errorf("Unexpected serialization %s %v", name, props)
	}
}

func TestItemPickedUpThroughCharacter(t *testing.T) {
	scene := engine.NewScene("Test")
	player := engine.NewGameObject("Player")
	player.AddComponent(&localController{})
	ch := interact.NewCharacter()
	player.AddComponent(ch)
	scene.AddGameObject(player)

	obj := engine.NewGameObject("KeyPickup")
	obj.Transform.Position = rl.Vector3{Z: 2}
	obj.AddComponent(components.NewBoxCollider(rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}))
	obj.AddComponent(NewItem("Key"))
	scene.AddGameObject(obj)

	// No world is attached, so the character cannot raycast and never focuses.
	ch.Update(0.016)
	ch.OnUse()

	if len(ch.Inventory()) != 0 || obj.Destroyed() {
		t.Error("Without a world nothing should be picked up")
	}
}
