package scripts

import (
	"fmt"

	"sevenlights/internal/engine"
	"sevenlights/internal/interact"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Lock blocks the way until used by a character carrying RequiredItem.
// Opening it destroys its GameObject; the key stays in the inventory.
type Lock struct {
	engine.BaseComponent
	RequiredItem string
	opened       bool
}

func NewLock(requiredItem string) *Lock {
	return &Lock{RequiredItem: requiredItem}
}

// OnUsed implements interact.Usable
func (l *Lock) OnUsed(user *interact.Character) {
	if l.opened || user == nil {
		return
	}
	g := l.GetGameObject()
	if g == nil {
		return
	}

	if l.RequiredItem != "" && user.ItemCount(l.RequiredItem) == 0 {
		msg := fmt.Sprintf("%s is locked. Requires %s", g.Name, l.RequiredItem)
		if user.Messages != nil {
			user.Messages.AddMessage(msg, user.MessageDuration, rl.Orange)
		}
		fmt.Println(msg)
		return
	}

	l.opened = true
	fmt.Printf("Lock: %s opened\n", g.Name)
	engine.Destroy(g)
}

func (l *Lock) Opened() bool {
	return l.opened
}

func init() {
	engine.RegisterScript("Lock", lockFactory, lockSerializer)
}

func lockFactory(props map[string]any) engine.Component {
	lock := &Lock{}
	if v, ok := props["requiredItem"].(string); ok {
		lock.RequiredItem = v
	}
	return lock
}

func lockSerializer(c engine.Component) map[string]any {
	lock, ok := c.(*Lock)
	if !ok {
		return nil
	}
	return map[string]any{
		"requiredItem": lock.RequiredItem,
	}
}
