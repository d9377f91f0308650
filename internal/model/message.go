package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Message is a stored direct message. Body holds the encrypted payload and
// Key the per-message key material.
type Message struct {
	ID                int64
	SenderID          uuid.UUID
	ReceiverID        uuid.UUID
	Body              string
	Key               string
	IsRead            bool
	DeletedBySender   bool
	DeletedByReceiver bool
	CreatedAt         time.Time
}

// MessageStore persists direct messages.
type MessageStore interface {
	Create(ctx context.Context, msg Message) (Message, error)
	// MarkRead flips is_read for every unread message from sender to receiver
	// and returns the number of rows changed.
	MarkRead(ctx context.Context, senderID, receiverID uuid.UUID) (int64, error)
	// DeleteForParty sets the requester's deletion flag and removes the row
	// when both flags end up set. It reports whether the row was removed.
	DeleteForParty(ctx context.Context, messageID int64, requesterID uuid.UUID) (bool, error)
	ListVisible(ctx context.Context, viewerID, otherID uuid.UUID, limit, offset int) ([]Message, error)
	CountVisible(ctx context.Context, viewerID, otherID uuid.UUID) (int, error)
}

// ChatMessage is a decrypted message as returned to clients.
type ChatMessage struct {
	ID         int64     `json:"message_id"`
	Message    string    `json:"message"`
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Timestamp  time.Time `json:"timestamp"`
	IsRead     bool      `json:"is_read"`
}

// HistoryPage is one window of a conversation, oldest first.
type HistoryPage struct {
	Messages   []ChatMessage `json:"messages"`
	HasMore    bool          `json:"has_more"`
	TotalCount int           `json:"total_count"`
}

// InboundMessage is what a live client sends.
type InboundMessage struct {
	Message    string    `json:"message"`
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
}
