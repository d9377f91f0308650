package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dtroode/habiro-server/internal/logger"
	"github.com/dtroode/habiro-server/internal/model"
	"github.com/dtroode/habiro-server/pkg/socialpb"
)

// FriendsService defines friend graph operations.
type FriendsService interface {
	SearchUser(ctx context.Context, viewerID uuid.UUID, query string) (model.UserProfile, error)
	SendRequest(ctx context.Context, viewerID, receiverID uuid.UUID) (model.FriendRequest, error)
	AcceptRequest(ctx context.Context, viewerID uuid.UUID, requestID int64) (model.FriendRequest, error)
	RejectRequest(ctx context.Context, viewerID uuid.UUID, requestID int64) (model.FriendRequest, error)
	ListRequests(ctx context.Context, viewerID uuid.UUID) ([]model.FriendRequest, error)
	ListFriends(ctx context.Context, viewerID uuid.UUID) ([]model.FriendListItem, error)
}

// ChatService defines direct messaging operations.
type ChatService interface {
	DeriveRoom(ctx context.Context, viewerID, friendID uuid.UUID) (string, error)
	FetchHistory(ctx context.Context, viewerID uuid.UUID, roomToken string, page, pageSize int) (model.HistoryPage, error)
	Send(ctx context.Context, viewerID uuid.UUID, roomToken string, in model.InboundMessage) (model.ChatEvent, error)
	MarkRead(ctx context.Context, viewerID, otherID uuid.UUID) (int64, error)
	DeleteMessage(ctx context.Context, viewerID uuid.UUID, messageID int64) (bool, error)
}

// RankingService defines leaderboard operations.
type RankingService interface {
	Leaderboard(ctx context.Context, viewerID uuid.UUID, window model.RankingWindow, page int) (model.Leaderboard, error)
}

var _ socialpb.SocialServer = (*Social)(nil)

// Social handles gRPC endpoints of the Social service.
type Social struct {
	socialpb.UnimplementedSocialServer

	friends        FriendsService
	chat           ChatService
	ranking        RankingService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewSocial creates a new Social handler.
func NewSocial(
	friends FriendsService,
	chat ChatService,
	ranking RankingService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Social {
	return &Social{
		friends:        friends,
		chat:           chat,
		ranking:        ranking,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Social) SearchUser(ctx context.Context, req *socialpb.SearchUserRequest) (*socialpb.SearchUserResponse, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := h.friends.SearchUser(ctx, userID, req.GetQuery())
	if err != nil {
		h.logFailure("search user", userID, err)
		return nil, handleError(err)
	}

	return &socialpb.SearchUserResponse{User: toProtoProfile(profile)}, nil
}

func (h *Social) SendFriendRequest(ctx context.Context, req *socialpb.SendFriendRequestRequest) (*socialpb.FriendRequestResponse, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	receiverID, err := uuid.Parse(req.GetReceiverId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid receiver ID")
	}

	fr, err := h.friends.SendRequest(ctx, userID, receiverID)
	if err != nil {
		h.logFailure("send friend request", userID, err)
		return nil, handleError(err)
	}

	return &socialpb.FriendRequestResponse{Request: toProtoFriendRequest(fr)}, nil
}

func (h *Social) AcceptFriendRequest(ctx context.Context, req *socialpb.AnswerFriendRequestRequest) (*socialpb.FriendRequestResponse, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	fr, err := h.friends.AcceptRequest(ctx, userID, req.GetRequestId())
	if err != nil {
		h.logFailure("accept friend request", userID, err)
		return nil, handleError(err)
	}

	return &socialpb.FriendRequestResponse{Request: toProtoFriendRequest(fr)}, nil
}

func (h *Social) RejectFriendRequest(ctx context.Context, req *socialpb.AnswerFriendRequestRequest) (*socialpb.FriendRequestResponse, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	fr, err := h.friends.RejectRequest(ctx, userID, req.GetRequestId())
	if err != nil {
		h.logFailure("reject friend request", userID, err)
		return nil, handleError(err)
	}

	return &socialpb.FriendRequestResponse{Request: toProtoFriendRequest(fr)}, nil
}

func (h *Social) ListFriendRequests(ctx context.Context, _ *socialpb.ListFriendRequestsRequest) (*socialpb.ListFriendRequestsResponse, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := h.friends.ListRequests(ctx, userID)
	if err != nil {
		h.logFailure("list friend requests", userID, err)
		return nil, handleError(err)
	}

	resp := &socialpb.ListFriendRequestsResponse{Requests: make([]*socialpb.FriendRequest, 0, len(requests))}
	for _, fr := range requests {
		resp.Requests = append(resp.Requests, toProtoFriendRequest(fr))
	}
	return resp, nil
}

func (h *Social) ListFriends(ctx context.Context, _ *socialpb.ListFriendsRequest) (*socialpb.ListFriendsResponse, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	friends, err := h.friends.ListFriends(ctx, userID)
	if err != nil {
		h.logFailure("list friends", userID, err)
		return nil, handleError(err)
	}

	resp := &socialpb.ListFriendsResponse{Friends: make([]*socialpb.FriendListItem, 0, len(friends))}
	for _, item := range friends {
		pbItem := &socialpb.FriendListItem{
			Friend:      toProtoProfile(item.Friend),
			UnreadCount: int32(item.UnreadCount),
		}
		if item.LastMessage != nil {
			pbItem.LastMessage = toProtoMessage(*item.LastMessage)
		}
		resp.Friends = append(resp.Friends, pbItem)
	}
	return resp, nil
}

func (h *Social) DeriveRoom(ctx context.Context, req *socialpb.DeriveRoomRequest) (*socialpb.DeriveRoomResponse, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	friendID, err := uuid.Parse(req.GetFriendId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid friend ID")
	}

	token, err := h.chat.DeriveRoom(ctx, userID, friendID)
	if err != nil {
		h.logFailure("derive room", userID, err)
		return nil, handleError(err)
	}

	return &socialpb.DeriveRoomResponse{Room: token}, nil
}

func (h *Social) FetchHistory(ctx context.Context, req *socialpb.FetchHistoryRequest) (*socialpb.FetchHistoryResponse, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	page, err := h.chat.FetchHistory(ctx, userID, req.GetRoom(), int(req.GetPage()), int(req.GetPageSize()))
	if err != nil {
		h.logFailure("fetch history", userID, err)
		return nil, handleError(err)
	}

	resp := &socialpb.FetchHistoryResponse{
		Messages:   make([]*socialpb.ChatMessage, 0, len(page.Messages)),
		HasMore:    page.HasMore,
		TotalCount: int32(page.TotalCount),
	}
	for _, msg := range page.Messages {
		resp.Messages = append(resp.Messages, toProtoMessage(msg))
	}
	return resp, nil
}

func (h *Social) SendMessage(ctx context.Context, req *socialpb.SendMessageRequest) (*socialpb.SendMessageResponse, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	receiverID, err := uuid.Parse(req.GetReceiverId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid receiver ID")
	}

	event, err := h.chat.Send(ctx, userID, req.GetRoom(), model.InboundMessage{
		Message:    req.GetMessage(),
		SenderID:   userID,
		ReceiverID: receiverID,
	})
	if err != nil {
		h.logFailure("send message", userID, err)
		return nil, handleError(err)
	}

	return &socialpb.SendMessageResponse{Message: toProtoMessage(event.ChatMessage())}, nil
}

func (h *Social) MarkRead(ctx context.Context, req *socialpb.MarkReadRequest) (*socialpb.MarkReadResponse, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	friendID, err := uuid.Parse(req.GetFriendId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid friend ID")
	}

	n, err := h.chat.MarkRead(ctx, userID, friendID)
	if err != nil {
		h.logFailure("mark read", userID, err)
		return nil, handleError(err)
	}

	return &socialpb.MarkReadResponse{Updated: n}, nil
}

func (h *Social) DeleteMessage(ctx context.Context, req *socialpb.DeleteMessageRequest) (*socialpb.DeleteMessageResponse, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	purged, err := h.chat.DeleteMessage(ctx, userID, req.GetMessageId())
	if err != nil {
		h.logFailure("delete message", userID, err)
		return nil, handleError(err)
	}

	return &socialpb.DeleteMessageResponse{Deleted: true, Purged: purged}, nil
}

func (h *Social) Leaderboard(ctx context.Context, req *socialpb.LeaderboardRequest) (*socialpb.LeaderboardResponse, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	window, err := model.ParseRankingWindow(req.GetWindow())
	if err != nil {
		return nil, handleError(err)
	}

	board, err := h.ranking.Leaderboard(ctx, userID, window, int(req.GetPage()))
	if err != nil {
		h.logFailure("leaderboard", userID, err)
		return nil, handleError(err)
	}

	resp := &socialpb.LeaderboardResponse{
		Window:      string(board.Window),
		Page:        int32(board.Page),
		Entries:     make([]*socialpb.RankingEntry, 0, len(board.Top)),
		TotalRanked: int32(board.TotalRanked),
	}
	for _, entry := range board.Top {
		resp.Entries = append(resp.Entries, toProtoRankingEntry(entry))
	}
	if board.CurrentUser != nil {
		resp.CurrentUser = toProtoRankingEntry(*board.CurrentUser)
	}
	return resp, nil
}

func (h *Social) extractUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	userID, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, status.Error(codes.Unauthenticated, "missing authorization token")
	}
	return userID, nil
}

func (h *Social) logFailure(op string, userID uuid.UUID, err error) {
	h.logger.Error("Social handler: "+op+" failed",
		"user_id", userID,
		"error", err.Error())
}

func toProtoProfile(p model.UserProfile) *socialpb.UserProfile {
	return &socialpb.UserProfile{
		Id:          p.ID.String(),
		Handle:      p.Handle,
		DisplayName: p.DisplayName,
		AvatarUrl:   p.AvatarURL,
		IsFriend:    p.IsFriend,
	}
}

func toProtoFriendRequest(fr model.FriendRequest) *socialpb.FriendRequest {
	return &socialpb.FriendRequest{
		Id:          fr.ID,
		RequesterId: fr.RequesterID.String(),
		ReceiverId:  fr.ReceiverID.String(),
		Status:      string(fr.Status),
		CreatedAt:   toProtoTime(fr.CreatedAt),
		UpdatedAt:   toProtoTime(fr.UpdatedAt),
	}
}

func toProtoMessage(m model.ChatMessage) *socialpb.ChatMessage {
	return &socialpb.ChatMessage{
		MessageId:  m.ID,
		Message:    m.Message,
		SenderId:   m.SenderID.String(),
		ReceiverId: m.ReceiverID.String(),
		Timestamp:  toProtoTime(m.Timestamp),
		IsRead:     m.IsRead,
	}
}

func toProtoRankingEntry(e model.RankingEntry) *socialpb.RankingEntry {
	return &socialpb.RankingEntry{
		Rank:           int32(e.Rank),
		UserId:         e.UserID.String(),
		FullName:       e.FullName,
		TotalTasks:     int32(e.TotalTasks),
		CompletedTasks: int32(e.CompletedTasks),
		CompletionRate: e.CompletionRate,
		JoinedAt:       toProtoTime(e.JoinedAt),
		ProfilePicUrl:  e.AvatarURL,
	}
}

// toProtoTime leaves unset times unset rather than encoding year 1.
func toProtoTime(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}
