package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dtroode/habiro-server/internal/hub"
	"github.com/dtroode/habiro-server/internal/logger"
	"github.com/dtroode/habiro-server/internal/metrics"
	"github.com/dtroode/habiro-server/internal/model"
	"github.com/dtroode/habiro-server/internal/room"
	"github.com/dtroode/habiro-server/internal/vault"
)

const (
	DefaultHistoryPageSize  = 50
	DefaultMaxPageSize      = 200
	DefaultMaxMessageLength = 4096
)

// ChatOptions bounds history windows and message sizes.
type ChatOptions struct {
	DefaultPageSize  int
	MaxPageSize      int
	MaxMessageLength int
}

func (o ChatOptions) withDefaults() ChatOptions {
	if o.DefaultPageSize <= 0 {
		o.DefaultPageSize = DefaultHistoryPageSize
	}
	if o.MaxPageSize <= 0 {
		o.MaxPageSize = DefaultMaxPageSize
	}
	if o.DefaultPageSize > o.MaxPageSize {
		o.DefaultPageSize = o.MaxPageSize
	}
	if o.MaxMessageLength <= 0 {
		o.MaxMessageLength = DefaultMaxMessageLength
	}
	return o
}

// Chat orchestrates direct messaging: persistence through the vault,
// read state, per-party deletion, history and live fanout.
type Chat struct {
	users    model.UserStore
	graph    model.FriendStore
	messages model.MessageStore
	vault    *vault.Vault
	hub      *hub.Hub
	opts     ChatOptions
	logger   *logger.Logger
}

func NewChat(
	users model.UserStore,
	graph model.FriendStore,
	messages model.MessageStore,
	vault *vault.Vault,
	hub *hub.Hub,
	opts ChatOptions,
	logger *logger.Logger,
) *Chat {
	return &Chat{
		users:    users,
		graph:    graph,
		messages: messages,
		vault:    vault,
		hub:      hub,
		opts:     opts.withDefaults(),
		logger:   logger,
	}
}

// DeriveRoom returns the room token for a conversation with a friend.
func (s *Chat) DeriveRoom(ctx context.Context, viewerID, friendID uuid.UUID) (string, error) {
	pair, err := room.NewPair(viewerID, friendID)
	if err != nil {
		return "", err
	}

	if _, err := s.users.GetByID(ctx, friendID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("failed to get user by id: %w", err)
	}

	if err := s.requireFriends(ctx, viewerID, friendID); err != nil {
		return "", err
	}

	return pair.Token(), nil
}

// Join registers a live subscription for viewerID in the room. The caller
// must Leave the subscription when the connection ends.
func (s *Chat) Join(ctx context.Context, viewerID uuid.UUID, roomToken string) (*hub.Subscription, error) {
	pair, err := s.authorizeRoom(viewerID, roomToken)
	if err != nil {
		return nil, err
	}

	other, _ := pair.Other(viewerID)
	if err := s.requireFriends(ctx, viewerID, other); err != nil {
		return nil, err
	}

	return s.hub.Join(pair.Token(), viewerID), nil
}

// Send persists an inbound message and then fans it out to the room.
func (s *Chat) Send(ctx context.Context, viewerID uuid.UUID, roomToken string, in model.InboundMessage) (model.ChatEvent, error) {
	pair, err := room.Parse(roomToken)
	if err != nil {
		return model.ChatEvent{}, err
	}

	if strings.TrimSpace(in.Message) == "" {
		return model.ChatEvent{}, fmt.Errorf("%w: message is empty", model.ErrInvalidArgument)
	}
	if utf8.RuneCountInString(in.Message) > s.opts.MaxMessageLength {
		return model.ChatEvent{}, fmt.Errorf("%w: message exceeds %d characters", model.ErrInvalidArgument, s.opts.MaxMessageLength)
	}

	if in.SenderID != viewerID || !pair.Includes(viewerID) {
		return model.ChatEvent{}, fmt.Errorf("%w: cannot send as another user", model.ErrUnauthorized)
	}
	other, _ := pair.Other(viewerID)
	if in.ReceiverID != other {
		return model.ChatEvent{}, fmt.Errorf("%w: receiver is not in this room", model.ErrUnauthorized)
	}

	if err := s.requireFriends(ctx, viewerID, other); err != nil {
		return model.ChatEvent{}, err
	}

	body, key, err := s.vault.Encrypt(in.Message)
	if err != nil {
		return model.ChatEvent{}, fmt.Errorf("failed to encrypt message: %w", err)
	}

	msg, err := s.messages.Create(ctx, model.Message{
		SenderID:   viewerID,
		ReceiverID: other,
		Body:       body,
		Key:        key,
	})
	if err != nil {
		return model.ChatEvent{}, fmt.Errorf("failed to save message: %w", err)
	}
	metrics.MessagesStoredTotal.WithLabelValues("direct").Inc()
	metrics.MessagesCiphertextBytes.Observe(float64(len(body)))

	// Replying means the sender has seen what the other party wrote.
	if _, err := s.messages.MarkRead(ctx, other, viewerID); err != nil {
		s.logger.Warn("Chat service: failed to mark messages read",
			"sender_id", other,
			"receiver_id", viewerID,
			"error", err)
	}

	event := model.ChatEvent{
		MessageID:  msg.ID,
		Message:    in.Message,
		SenderID:   msg.SenderID,
		ReceiverID: msg.ReceiverID,
		Timestamp:  msg.CreatedAt,
		IsRead:     msg.IsRead,
	}

	delivery := s.hub.Broadcast(pair.Token(), event)
	s.logger.Debug("Chat service: message sent",
		"message_id", msg.ID,
		"room", pair.Token(),
		"delivered", delivery.Delivered,
		"dropped", delivery.Dropped)

	return event, nil
}

// FetchHistory returns one page of the conversation visible to viewerID,
// oldest first, and marks the other party's messages read.
func (s *Chat) FetchHistory(ctx context.Context, viewerID uuid.UUID, roomToken string, page, pageSize int) (model.HistoryPage, error) {
	pair, err := s.authorizeRoom(viewerID, roomToken)
	if err != nil {
		return model.HistoryPage{}, err
	}
	other, _ := pair.Other(viewerID)

	if page < 1 {
		page = 1
	}
	switch {
	case pageSize < 1:
		pageSize = s.opts.DefaultPageSize
	case pageSize > s.opts.MaxPageSize:
		pageSize = s.opts.MaxPageSize
	}

	total, err := s.messages.CountVisible(ctx, viewerID, other)
	if err != nil {
		return model.HistoryPage{}, fmt.Errorf("failed to count messages: %w", err)
	}

	offset := (page - 1) * pageSize
	var stored []model.Message
	if offset < total {
		stored, err = s.messages.ListVisible(ctx, viewerID, other, pageSize, offset)
		if err != nil {
			return model.HistoryPage{}, fmt.Errorf("failed to list messages: %w", err)
		}
	}

	messages := make([]model.ChatMessage, len(stored))
	for i, m := range stored {
		messages[len(stored)-1-i] = model.ChatMessage{
			ID:         m.ID,
			Message:    s.vault.Reveal(m),
			SenderID:   m.SenderID,
			ReceiverID: m.ReceiverID,
			Timestamp:  m.CreatedAt,
			IsRead:     m.IsRead,
		}
	}

	if _, err := s.messages.MarkRead(ctx, other, viewerID); err != nil {
		s.logger.Warn("Chat service: failed to mark history read",
			"sender_id", other,
			"receiver_id", viewerID,
			"error", err)
	}
	metrics.MessageHistoryFetchedTotal.Inc()

	return model.HistoryPage{
		Messages:   messages,
		HasMore:    total > page*pageSize,
		TotalCount: total,
	}, nil
}

// MarkRead marks every unread message from otherID to viewerID as read.
func (s *Chat) MarkRead(ctx context.Context, viewerID, otherID uuid.UUID) (int64, error) {
	if _, err := room.NewPair(viewerID, otherID); err != nil {
		return 0, err
	}

	n, err := s.messages.MarkRead(ctx, otherID, viewerID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark messages read: %w", err)
	}
	return n, nil
}

// DeleteMessage hides a message from viewerID. It reports whether the
// message was removed for good because the other party had deleted it too.
func (s *Chat) DeleteMessage(ctx context.Context, viewerID uuid.UUID, messageID int64) (bool, error) {
	if messageID <= 0 {
		return false, model.ErrNotFound
	}

	purged, err := s.messages.DeleteForParty(ctx, messageID, viewerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrUnauthorized) {
			return false, err
		}
		return false, fmt.Errorf("failed to delete message: %w", err)
	}

	s.logger.Info("Chat service: message deleted",
		"message_id", messageID,
		"user_id", viewerID,
		"purged", purged)

	return purged, nil
}

func (s *Chat) authorizeRoom(viewerID uuid.UUID, roomToken string) (room.Pair, error) {
	pair, err := room.Parse(roomToken)
	if err != nil {
		return room.Pair{}, err
	}
	if !pair.Includes(viewerID) {
		return room.Pair{}, fmt.Errorf("%w: not a participant of this room", model.ErrUnauthorized)
	}
	return pair, nil
}

func (s *Chat) requireFriends(ctx context.Context, a, b uuid.UUID) error {
	ok, err := s.graph.AreFriends(ctx, a, b)
	if err != nil {
		return fmt.Errorf("failed to check friendship: %w", err)
	}
	if !ok {
		return model.ErrNotFriends
	}
	return nil
}
