package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/habiro-server/internal/logger"
	"github.com/dtroode/habiro-server/internal/model"
	"github.com/dtroode/habiro-server/internal/vault"
)

// Friends manages friend requests and the friendship graph.
type Friends struct {
	users   model.UserStore
	graph   model.FriendStore
	avatars model.AvatarStorage
	vault   *vault.Vault
	logger  *logger.Logger
}

func NewFriends(
	users model.UserStore,
	graph model.FriendStore,
	avatars model.AvatarStorage,
	vault *vault.Vault,
	logger *logger.Logger,
) *Friends {
	return &Friends{
		users:   users,
		graph:   graph,
		avatars: avatars,
		vault:   vault,
		logger:  logger,
	}
}

// SearchUser finds another user by handle, e-mail or phone number.
func (s *Friends) SearchUser(ctx context.Context, viewerID uuid.UUID, query string) (model.UserProfile, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return model.UserProfile{}, fmt.Errorf("%w: empty search query", model.ErrInvalidArgument)
	}

	user, err := s.users.FindByContact(ctx, q)
	if errors.Is(err, model.ErrNotFound) {
		return model.UserProfile{}, model.ErrNotFound
	}
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to find user: %w", err)
	}

	if user.ID == viewerID {
		return model.UserProfile{}, fmt.Errorf("%w: cannot add yourself", model.ErrInvalidParticipant)
	}

	isFriend, err := s.graph.AreFriends(ctx, viewerID, user.ID)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to check friendship: %w", err)
	}

	return s.profile(ctx, user, isFriend), nil
}

// SendRequest asks receiverID to become a friend of viewerID. A pending
// request in the opposite direction is accepted instead, and a previously
// rejected request is re-opened.
func (s *Friends) SendRequest(ctx context.Context, viewerID, receiverID uuid.UUID) (model.FriendRequest, error) {
	if receiverID == uuid.Nil || receiverID == viewerID {
		return model.FriendRequest{}, fmt.Errorf("%w: cannot send a friend request to yourself", model.ErrInvalidParticipant)
	}

	if _, err := s.users.GetByID(ctx, receiverID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.FriendRequest{}, model.ErrNotFound
		}
		return model.FriendRequest{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	friends, err := s.graph.AreFriends(ctx, viewerID, receiverID)
	if err != nil {
		return model.FriendRequest{}, fmt.Errorf("failed to check friendship: %w", err)
	}
	if friends {
		return model.FriendRequest{}, fmt.Errorf("%w: already friends", model.ErrAlreadyExists)
	}

	reverse, err := s.graph.GetRequestBetween(ctx, receiverID, viewerID)
	switch {
	case err == nil && reverse.Status == model.FriendRequestPending:
		s.logger.Info("Friends service: mutual request, accepting",
			"request_id", reverse.ID,
			"requester_id", receiverID,
			"receiver_id", viewerID)
		accepted, err := s.graph.AcceptRequest(ctx, reverse.ID)
		if err != nil {
			return model.FriendRequest{}, fmt.Errorf("failed to accept friend request: %w", err)
		}
		return accepted, nil
	case err != nil && !errors.Is(err, model.ErrNotFound):
		return model.FriendRequest{}, fmt.Errorf("failed to get friend request: %w", err)
	}

	existing, err := s.graph.GetRequestBetween(ctx, viewerID, receiverID)
	switch {
	case err == nil && existing.Status == model.FriendRequestRejected:
		reopened, err := s.graph.ReopenRequest(ctx, existing.ID)
		if err != nil {
			return model.FriendRequest{}, fmt.Errorf("failed to reopen friend request: %w", err)
		}
		return reopened, nil
	case err == nil:
		return model.FriendRequest{}, fmt.Errorf("%w: friend request already sent", model.ErrAlreadyExists)
	case !errors.Is(err, model.ErrNotFound):
		return model.FriendRequest{}, fmt.Errorf("failed to get friend request: %w", err)
	}

	req, err := s.graph.CreateRequest(ctx, viewerID, receiverID)
	if err != nil {
		return model.FriendRequest{}, fmt.Errorf("failed to create friend request: %w", err)
	}

	s.logger.Info("Friends service: request sent",
		"request_id", req.ID,
		"requester_id", viewerID,
		"receiver_id", receiverID)

	return req, nil
}

// AcceptRequest accepts a pending request addressed to viewerID.
func (s *Friends) AcceptRequest(ctx context.Context, viewerID uuid.UUID, requestID int64) (model.FriendRequest, error) {
	if _, err := s.pendingFor(ctx, viewerID, requestID); err != nil {
		return model.FriendRequest{}, err
	}

	req, err := s.graph.AcceptRequest(ctx, requestID)
	if err != nil {
		return model.FriendRequest{}, fmt.Errorf("failed to accept friend request: %w", err)
	}

	s.logger.Info("Friends service: request accepted", "request_id", requestID, "receiver_id", viewerID)
	return req, nil
}

// RejectRequest rejects a pending request addressed to viewerID.
func (s *Friends) RejectRequest(ctx context.Context, viewerID uuid.UUID, requestID int64) (model.FriendRequest, error) {
	if _, err := s.pendingFor(ctx, viewerID, requestID); err != nil {
		return model.FriendRequest{}, err
	}

	req, err := s.graph.RejectRequest(ctx, requestID)
	if err != nil {
		return model.FriendRequest{}, fmt.Errorf("failed to reject friend request: %w", err)
	}

	s.logger.Info("Friends service: request rejected", "request_id", requestID, "receiver_id", viewerID)
	return req, nil
}

func (s *Friends) pendingFor(ctx context.Context, viewerID uuid.UUID, requestID int64) (model.FriendRequest, error) {
	req, err := s.graph.GetRequest(ctx, requestID)
	if errors.Is(err, model.ErrNotFound) {
		return model.FriendRequest{}, model.ErrNotFound
	}
	if err != nil {
		return model.FriendRequest{}, fmt.Errorf("failed to get friend request: %w", err)
	}

	if req.ReceiverID != viewerID {
		return model.FriendRequest{}, fmt.Errorf("%w: only the receiver can answer a friend request", model.ErrUnauthorized)
	}
	if req.Status != model.FriendRequestPending {
		return model.FriendRequest{}, model.ErrRequestNotPending
	}

	return req, nil
}

// ListRequests returns pending requests addressed to viewerID.
func (s *Friends) ListRequests(ctx context.Context, viewerID uuid.UUID) ([]model.FriendRequest, error) {
	requests, err := s.graph.ListIncoming(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friend requests: %w", err)
	}
	return requests, nil
}

// ListFriends returns the viewer's friends with the latest visible message
// and unread count, most recently active first.
func (s *Friends) ListFriends(ctx context.Context, viewerID uuid.UUID) ([]model.FriendListItem, error) {
	summaries, err := s.graph.ListFriends(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}

	items := make([]model.FriendListItem, 0, len(summaries))
	for _, summary := range summaries {
		item := model.FriendListItem{
			Friend:      s.profile(ctx, summary.Friend, true),
			UnreadCount: summary.UnreadCount,
		}
		if m := summary.LastMessage; m != nil {
			item.LastMessage = &model.ChatMessage{
				ID:         m.ID,
				Message:    s.vault.Reveal(*m),
				SenderID:   m.SenderID,
				ReceiverID: m.ReceiverID,
				Timestamp:  m.CreatedAt,
				IsRead:     m.IsRead,
			}
		}
		items = append(items, item)
	}

	return items, nil
}

func (s *Friends) profile(ctx context.Context, user model.User, isFriend bool) model.UserProfile {
	return model.UserProfile{
		ID:          user.ID,
		Handle:      user.Handle,
		DisplayName: user.DisplayName,
		AvatarURL:   avatarURL(ctx, s.avatars, user.AvatarKey, s.logger),
		IsFriend:    isFriend,
	}
}
