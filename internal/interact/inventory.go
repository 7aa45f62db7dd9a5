package interact

import "fmt"

// Inventory is an ordered list of item names. Duplicates are kept: picking
// up two items with the same name yields two entries.
type Inventory struct {
	items []string
}

func (inv *Inventory) Add(name string) {
	inv.items = append(inv.items, name)
}

// Items returns a copy of the entries in pickup order.
func (inv *Inventory) Items() []string {
	out := make([]string, len(inv.items))
	copy(out, inv.items)
	return out
}

func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Count returns how many entries equal name.
func (inv *Inventory) Count(name string) int {
	n := 0
	for _, item := range inv.items {
		if item == name {
			n++
		}
	}
	return n
}

// Lines renders one "Item: <name>" line per entry.
func (inv *Inventory) Lines() []string {
	lines := make([]string, len(inv.items))
	for i, item := range inv.items {
		lines[i] = fmt.Sprintf("Item: %s", item)
	}
	return lines
}
