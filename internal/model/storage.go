package model

import "context"

// AvatarStorage resolves avatar object keys to URLs clients can fetch.
type AvatarStorage interface {
	AvatarURL(ctx context.Context, key string) (string, error)
}
