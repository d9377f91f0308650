package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/habiro-server/internal/mocks"
	"github.com/dtroode/habiro-server/internal/testutil"
)

func TestTokenService_GetUserID(t *testing.T) {
	userID := uuid.New()

	manager := servermocks.NewTokenManager(t)
	manager.On("ParseAccessToken", "good").Return(userID, nil).Once()
	manager.On("ParseAccessToken", "bad").Return(uuid.Nil, assert.AnError).Once()

	svc := NewTokenService(manager, testutil.MakeNoopLogger())

	got, err := svc.GetUserID(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	_, err = svc.GetUserID(context.Background(), "bad")
	assert.ErrorIs(t, err, assert.AnError)
}
