package engine

// ListenerID identifies a registered listener so it can be removed later.
type ListenerID int

// Event is a multi-cast event carrying one argument.
// Listeners run in registration order on the caller's goroutine.
type Event[T any] struct {
	listeners []eventListener[T]
	nextID    ListenerID
}

type eventListener[T any] struct {
	id ListenerID
	fn func(T)
}

// AddListener registers a callback and returns its ID. Nil callbacks are ignored.
func (e *Event[T]) AddListener(callback func(T)) ListenerID {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, eventListener[T]{id: e.nextID, fn: callback})
	return e.nextID
}

// RemoveListener unregisters the listener with the given ID.
func (e *Event[T]) RemoveListener(id ListenerID) {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

func (e *Event[T]) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls all registered listeners with arg
func (e *Event[T]) Invoke(arg T) {
	for _, l := range e.listeners {
		l.fn(arg)
	}
}

func (e *Event[T]) ListenerCount() int {
	return len(e.listeners)
}
