package scripts

import (
	"fmt"

	"sevenlights/internal/engine"
	"sevenlights/internal/interact"
)

// Item is a pickup. Using it adds ItemName to the user's inventory and then
// destroys the item's GameObject together with its renderer and collider.
type Item struct {
	engine.BaseComponent
	ItemName string
	used     bool
}

func NewItem(name string) *Item {
	return &Item{ItemName: name}
}

// OnUsed implements interact.Usable
func (i *Item) OnUsed(user *interact.Character) {
	if i.used || user == nil {
		return
	}
	i.used = true

	// The name is copied into the inventory before the item goes away.
	user.AddItemToInventory(i.ItemName)
	fmt.Printf("Item: %q picked up\n", i.ItemName)

	engine.Destroy(i.GetGameObject())
}

// Used reports whether the item has already been picked up.
func (i *Item) Used() bool {
	return i.used
}

func init() {
	engine.RegisterScript("Item", itemFactory, itemSerializer)
}

func itemFactory(props map[string]any) engine.Component {
	item := &Item{}
	if v, ok := props["itemName"].(string); ok {
		item.ItemName = v
	}
	return item
}

func itemSerializer(c engine.Component) map[string]any {
	item, ok := c.(*Item)
	if !ok {
		return nil
	}
	return map[string]any{
		"itemName": item.ItemName,
	}
}
