package service

import (
	"context"

	"github.com/dtroode/habiro-server/internal/logger"
	"github.com/dtroode/habiro-server/internal/model"
)

// avatarURL resolves key to a fetchable URL. Failures degrade to no avatar.
func avatarURL(ctx context.Context, storage model.AvatarStorage, key string, logger *logger.Logger) string {
	if storage == nil || key == "" {
		return ""
	}
	url, err := storage.AvatarURL(ctx, key)
	if err != nil {
		logger.Warn("Avatar: failed to resolve url", "key", key, "error", err)
		return ""
	}
	return url
}
