package interact

import (
	"reflect"
	"testing"

	"sevenlights/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestFocusWithinRange(t *testing.T) {
	w := newTestWorld()
	_, ch, _ := spawnPlayer(w)
	key, _ := spawnPickup(w, "Key", 2)

	ch.Update(0.016)

	if ch.Focused() != key {
		t.Errorf("Expected focus on Key, got %v", ch.Focused())
	}
}

func TestFocusBeyondRange(t *testing.T) {
	w := newTestWorld()
	_, ch, _ := spawnPlayer(w)
	ch.MaxUseDistance = 3
	spawnPickup(w, "Key", 10)

	ch.Update(0.016)

	if ch.Focused() != nil {
		t.Error("Objects beyond MaxUseDistance should not be focused")
	}
}

func TestFocusBlockedByWall(t *testing.T) {
	w := newTestWorld()
	_, ch, _ := spawnPlayer(w)
	spawnWall(w, 1.5)
	spawnPickup(w, "Key", 3)

	ch.Update(0.016)

	if ch.Focused() != nil {
		t.Errorf("A non-usable blocker should hide the item, focused %v", ch.Focused())
	}
}

func TestFocusNearestUsableBlocksFarther(t *testing.T) {
	w := newTestWorld()
	_, ch, _ := spawnPlayer(w)
	near, _ := spawnPickup(w, "Near", 1.5)
	spawnPickup(w, "Far", 3)

	ch.Update(0.016)

	if ch.Focused() != near {
		t.Errorf("Expected the nearer usable object, got %v", ch.Focused())
	}
}

func TestFocusNeverSelf(t *testing.T) {
	w := newTestWorld()
	player, ch, ctrl := spawnPlayer(w)
	// The player itself is usable; the ray starts inside its collider.
	player.AddComponent(&pickup{name: "Self"})

	for _, dir := range []rl.Vector3{{Z: 1}, {Z: -1}, {Y: 1}, {X: 1, Y: -1}} {
		ctrl.Dir = dir
		ch.Update(0.016)
		if ch.Focused() == player {
			t.Fatalf("Focus must never be the character itself (dir %v)", dir)
		}
	}
}

func TestFocusClearedWhenTargetLeaves(t *testing.T) {
	w := newTestWorld()
	_, ch, ctrl := spawnPlayer(w)
	spawnPickup(w, "Key", 2)

	ch.Update(0.016)
	if ch.Focused() == nil {
		t.Fatal("Expected initial focus")
	}

	ctrl.Dir = rl.Vector3{Z: -1}
	ch.Update(0.016)
	if ch.Focused() != nil {
		t.Error("Focus should clear as soon as the aim moves away")
	}
}

func TestFocusWithoutControllerSkipsRaycast(t *testing.T) {
	w := newTestWorld()
	player := engine.NewGameObject("Bot")
	ch := NewCharacter()
	player.AddComponent(ch)
	w.SpawnObject(player)
	spawnPickup(w, "Key", 2)

	ch.Update(0.016)

	if w.raycasts != 0 {
		t.Errorf("No raycast expected without a controller, got %d", w.raycasts)
	}
	if ch.Focused() != nil {
		t.Error("Character without controller should not focus anything")
	}

	ch.OnUse()
	if len(ch.Inventory()) != 0 {
		t.Error("Use without controller must not change the inventory")
	}
}

func TestFocusClearedOnAuthorityLoss(t *testing.T) {
	w := newTestWorld()
	_, ch, ctrl := spawnPlayer(w)
	spawnPickup(w, "Key", 2)

	ch.Update(0.016)
	if ch.Focused() == nil {
		t.Fatal("Expected initial focus")
	}

	ctrl.Local = false
	before := w.raycasts
	ch.Update(0.016)

	if w.raycasts != before {
		t.Error("Non-local controller should not raycast")
	}
	if ch.Focused() != nil {
		t.Error("Focus should be cleared when local control is lost")
	}
}

func TestUseWithoutFocusLeavesInventory(t *testing.T) {
	w := newTestWorld()
	_, ch, _ := spawnPlayer(w)

	ch.Update(0.016)
	ch.OnUse()

	if len(ch.Inventory()) != 0 {
		t.Errorf("Expected empty inventory, got %v", ch.Inventory())
	}
}

func TestUsePicksUpKey(t *testing.T) {
	w := newTestWorld()
	_, ch, _ := spawnPlayer(w)
	key, p := spawnPickup(w, "Key", 2)

	ch.Update(0.016)
	ch.OnUse()

	if !reflect.DeepEqual(ch.Inventory(), []string{"Key"}) {
		t.Errorf("Expected [Key], got %v", ch.Inventory())
	}
	if !key.Destroyed() || w.scene.FindByUID(key.UID) != nil {
		t.Error("Used item should be removed from the world")
	}
	if ch.Focused() != nil {
		t.Error("Focus should not survive the destruction of its target")
	}

	ch.Update(0.016)
	if ch.Focused() != nil {
		t.Error("Destroyed item must not be refocused")
	}

	ch.OnUse()
	if p.uses != 1 {
		t.Errorf("Expected exactly one use, got %d", p.uses)
	}
}

func TestUseInSequencePreservesOrder(t *testing.T) {
	w := newTestWorld()
	_, ch, _ := spawnPlayer(w)
	spawnPickup(w, "A", 1.5)
	spawnPickup(w, "B", 3)

	ch.Update(0.016)
	ch.OnUse()
	ch.Update(0.016)
	ch.OnUse()

	if !reflect.DeepEqual(ch.Inventory(), []string{"A", "B"}) {
		t.Errorf("Expected [A B], got %v", ch.Inventory())
	}
}

func TestUseIgnoresTargetDestroyedAfterTick(t *testing.T) {
	w := newTestWorld()
	_, ch, _ := spawnPlayer(w)
	key, p := spawnPickup(w, "Key", 2)

	ch.Update(0.016)
	w.Destroy(key)
	ch.OnUse()

	if p.uses != 0 || len(ch.Inventory()) != 0 {
		t.Error("An object destroyed after the focus tick must not be used")
	}
}

func TestDuplicateItemsKept(t *testing.T) {
	ch := NewCharacter()
	ch.AddItemToInventory("Coin")
	ch.AddItemToInventory("Coin")

	if ch.ItemCount("Coin") != 2 {
		t.Errorf("Expected two Coin entries, got %v", ch.Inventory())
	}
}

func TestShowInventoryIsIdempotent(t *testing.T) {
	ch := NewCharacter()
	sink := &recordingSink{}
	ch.Messages = sink
	ch.AddItemToInventory("Key")
	ch.AddItemToInventory("Lamp")

	first := ch.ShowInventory()
	second := ch.ShowInventory()

	want := []string{"Item: Key", "Item: Lamp"}
	if !reflect.DeepEqual(first, want) || !reflect.DeepEqual(second, want) {
		t.Errorf("Unexpected listings %v / %v", first, second)
	}
	if !reflect.DeepEqual(ch.Inventory(), []string{"Key", "Lamp"}) {
		t.Errorf("ShowInventory must not mutate the inventory, got %v", ch.Inventory())
	}
	if len(sink.lines) != 4 {
		t.Fatalf("Expected 4 sink messages, got %d", len(sink.lines))
	}
	if sink.lines[0].duration != DefaultMessageDuration || sink.lines[0].color != rl.Red {
		t.Errorf("Unexpected message style %+v", sink.lines[0])
	}
}

func TestShowInventoryWithoutSink(t *testing.T) {
	ch := NewCharacter()
	ch.AddItemToInventory("Key")

	lines := ch.ShowInventory()
	if !reflect.DeepEqual(lines, []string{"Item: Key"}) {
		t.Errorf("Unexpected lines %v", lines)
	}
}

func TestOnItemAddedEvent(t *testing.T) {
	ch := NewCharacter()
	var got []string
	ch.OnItemAdded.AddListener(func(name string) { got = append(got, name) })

	ch.AddItemToInventory("Key")

	if !reflect.DeepEqual(got, []string{"Key"}) {
		t.Errorf("Expected OnItemAdded(Key), got %v", got)
	}
}
