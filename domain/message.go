// Package domain contains core concepts of the assistant.
// This file defines Message records and related rules.
// Only user-authored messages are mutable.
package domain

import (
	"time"

	"github.com/google/uuid"
)

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message represents one entry of the conversation timeline.
type Message struct {
	ID      uuid.UUID `json:"id"`
	Content string    `json:"text"`
	Sender  Sender    `json:"sender"`
	At      time.Time `json:"timestamp"`
}

// NewMessage allocates a time-ordered identifier (UUIDv7) so that ids
// sort in creation order even across restarts.
func NewMessage(content string, sender Sender, at time.Time) Message {
	return Message{
		ID:      uuid.Must(uuid.NewV7()),
		Content: content,
		Sender:  sender,
		At:      at,
	}
}

// Editable reports whether the editing contract applies to this message.
func (m Message) Editable() bool {
	return m.Sender == SenderUser
}
