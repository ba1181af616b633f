package session

import (
	"fmt"
	"time"
)

type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Message is one line of the user-visible message panel.
type Message struct {
	Time  time.Time
	Level Level
	Text  string
}

func (m Message) String() string {
	return fmt.Sprintf("%s [%s] %s", m.Time.Format("15:04:05"), m.Level, m.Text)
}

// MessageLog keeps messages in arrival order and notifies subscribers on append.
type MessageLog struct {
	messages    []Message
	subscribers []func(Message)
	now         func() time.Time
}

func NewMessageLog() *MessageLog {
	return &MessageLog{now: time.Now}
}

func (l *MessageLog) Add(level Level, text string) Message {
	msg := Message{Time: l.now(), Level: level, Text: text}
	l.messages = append(l.messages, msg)
	for _, fn := range l.subscribers {
		fn(msg)
	}
	return msg
}

func (l *MessageLog) Subscribe(fn func(Message)) {
	l.subscribers = append(l.subscribers, fn)
}

// All returns a copy of every message so far.
func (l *MessageLog) All() []Message {
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}

func (l *MessageLog) Len() int {
	return len(l.messages)
}
