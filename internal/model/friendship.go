package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "pending"
	FriendRequestAccepted FriendRequestStatus = "accepted"
	FriendRequestRejected FriendRequestStatus = "rejected"
)

// FriendRequest is a directed request from requester to receiver.
type FriendRequest struct {
	ID          int64
	RequesterID uuid.UUID
	ReceiverID  uuid.UUID
	Status      FriendRequestStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FriendSummary is one row of a user's friends list.
type FriendSummary struct {
	Friend      User
	LastMessage *Message
	UnreadCount int
}

// FriendListItem is a decrypted friends list row.
type FriendListItem struct {
	Friend      UserProfile  `json:"friend"`
	LastMessage *ChatMessage `json:"last_message,omitempty"`
	UnreadCount int          `json:"unread_count"`
}

// FriendStore persists friend requests and the symmetric friendship edges.
type FriendStore interface {
	CreateRequest(ctx context.Context, requesterID, receiverID uuid.UUID) (FriendRequest, error)
	GetRequest(ctx context.Context, id int64) (FriendRequest, error)
	GetRequestBetween(ctx context.Context, requesterID, receiverID uuid.UUID) (FriendRequest, error)
	ReopenRequest(ctx context.Context, id int64) (FriendRequest, error)
	// AcceptRequest marks a pending request accepted and inserts both
	// (requester, receiver) and (receiver, requester) edges atomically.
	AcceptRequest(ctx context.Context, id int64) (FriendRequest, error)
	RejectRequest(ctx context.Context, id int64) (FriendRequest, error)
	ListIncoming(ctx context.Context, receiverID uuid.UUID) ([]FriendRequest, error)
	AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error)
	ListFriends(ctx context.Context, userID uuid.UUID) ([]FriendSummary, error)
}
