package hud

import (
	"sevenlights/internal/interact"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultMaxMessages caps how many lines the log keeps on screen.
const DefaultMaxMessages = 8

// Message is one timed line of on-screen text.
type Message struct {
	Text      string
	Color     rl.Color
	Remaining float32
}

// MessageLog is a transient on-screen message sink. Messages expire
// after their duration; the oldest is dropped once the log is full.
type MessageLog struct {
	MaxMessages int

	messages []Message
}

var _ interact.MessageSink = (*MessageLog)(nil)

func NewMessageLog() *MessageLog {
	return &MessageLog{MaxMessages: DefaultMaxMessages}
}

// AddMessage implements interact.MessageSink. Non-positive durations
// are ignored.
func (l *MessageLog) AddMessage(text string, duration float32, color rl.Color) {
	if duration <= 0 {
		return
	}
	l.messages = append(l.messages, Message{Text: text, Color: color, Remaining: duration})
	if l.MaxMessages > 0 && len(l.messages) > l.MaxMessages {
		l.messages = append(l.messages[:0], l.messages[len(l.messages)-l.MaxMessages:]...)
	}
}

// Update ages every message by deltaTime and drops the expired ones.
func (l *MessageLog) Update(deltaTime float32) {
	kept := l.messages[:0]
	for _, m := range l.messages {
		m.Remaining -= deltaTime
		if m.Remaining > 0 {
			kept = append(kept, m)
		}
	}
	l.messages = kept
}

// Messages returns the live messages, oldest first.
func (l *MessageLog) Messages() []Message {
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}

func (l *MessageLog) Len() int {
	return len(l.messages)
}

func (l *MessageLog) Clear() {
	l.messages = nil
}
