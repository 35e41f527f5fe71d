package feed

import (
	"strings"
	"time"

	"github.com/killallgit/otto/pkg/agent"
)

// Message is one entry in the response feed. Messages are never mutated
// after they are appended.
type Message struct {
	Text      string
	Err       bool
	Timestamp time.Time
}

func NewMessage(text string) Message {
	return Message{
		Text:      text,
		Timestamp: time.Now(),
	}
}

func NewErrorMessage(text string) Message {
	return Message{
		Text:      text,
		Err:       true,
		Timestamp: time.Now(),
	}
}

func fromEvent(ev agent.Event) Message {
	return Message{
		Text:      ev.Text,
		Err:       ev.Err,
		Timestamp: time.Now(),
	}
}

func (m Message) IsEmpty() bool {
	return strings.TrimSpace(m.Text) == ""
}
