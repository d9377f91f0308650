package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines read operations for users owned by the identity service.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	// FindByContact matches the unique handle, e-mail or phone number.
	FindByContact(ctx context.Context, query string) (User, error)
}

// User is the public profile of an account.
type User struct {
	ID          uuid.UUID
	Handle      string
	DisplayName string
	Email       string
	Phone       string
	AvatarKey   string
	CreatedAt   time.Time
}

// UserProfile is a user as shown to another user.
type UserProfile struct {
	ID          uuid.UUID `json:"id"`
	Handle      string    `json:"handle"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	IsFriend    bool      `json:"is_friend"`
}
