package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatEvent is a persisted message fanned out to live room members.
type ChatEvent struct {
	MessageID  int64     `json:"message_id"`
	Message    string    `json:"message"`
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Timestamp  time.Time `json:"timestamp"`
	IsRead     bool      `json:"is_read"`
}

// ChatMessage converts the event into its history representation.
func (e ChatEvent) ChatMessage() ChatMessage {
	return ChatMessage{
		ID:         e.MessageID,
		Message:    e.Message,
		SenderID:   e.SenderID,
		ReceiverID: e.ReceiverID,
		Timestamp:  e.Timestamp,
		IsRead:     e.IsRead,
	}
}
