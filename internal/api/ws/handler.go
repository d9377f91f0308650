package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/dtroode/habiro-server/internal/api/grpc/middleware"
	"github.com/dtroode/habiro-server/internal/hub"
	"github.com/dtroode/habiro-server/internal/logger"
	"github.com/dtroode/habiro-server/internal/model"
)

// ChatSession is the part of the chat service a live connection drives.
type ChatSession interface {
	Join(ctx context.Context, viewerID uuid.UUID, roomToken string) (*hub.Subscription, error)
	Send(ctx context.Context, viewerID uuid.UUID, roomToken string, in model.InboundMessage) (model.ChatEvent, error)
	MarkRead(ctx context.Context, viewerID, otherID uuid.UUID) (int64, error)
}

// TokenService resolves user ID from bearer tokens.
type TokenService interface {
	GetUserID(ctx context.Context, token string) (uuid.UUID, error)
}

// Options tunes connection keepalive and inbound limits.
type Options struct {
	WriteTimeout      time.Duration
	PongTimeout       time.Duration
	PingInterval      time.Duration
	MaxMessageBytes   int64
	MessagesPerSecond float64
	MessageBurst      int
}

func (o Options) withDefaults() Options {
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = 10 * time.Second
	}
	if o.PongTimeout <= 0 {
		o.PongTimeout = 60 * time.Second
	}
	if o.PingInterval <= 0 || o.PingInterval >= o.PongTimeout {
		o.PingInterval = o.PongTimeout * 9 / 10
	}
	if o.MaxMessageBytes <= 0 {
		o.MaxMessageBytes = 16 << 10
	}
	if o.MessagesPerSecond <= 0 {
		o.MessagesPerSecond = 5
	}
	if o.MessageBurst <= 0 {
		o.MessageBurst = 10
	}
	return o
}

// errorFrame is written back when an inbound message is rejected.
type errorFrame struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Handler upgrades chat requests and runs one session per connection.
type Handler struct {
	chat     ChatSession
	tokens   TokenService
	upgrader websocket.Upgrader
	opts     Options
	logger   *logger.Logger
}

func NewHandler(chat ChatSession, tokens TokenService, opts Options, logger *logger.Logger) *Handler {
	return &Handler{
		chat:   chat,
		tokens: tokens,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Clients are native apps and authenticate with a bearer token.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		opts:   opts.withDefaults(),
		logger: logger,
	}
}

// ServeChat handles GET /ws/chat/{room}. Authentication and room membership
// are checked before the upgrade so failures surface as plain HTTP errors.
func (h *Handler) ServeChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	roomToken := chi.URLParam(r, "room")

	token := tokenFromRequest(r)
	if token == "" {
		http.Error(w, "missing authorization token", http.StatusUnauthorized)
		return
	}
	userID, err := h.tokens.GetUserID(ctx, token)
	if err != nil || userID == uuid.Nil {
		http.Error(w, "invalid authorization token", http.StatusUnauthorized)
		return
	}

	sub, err := h.chat.Join(ctx, userID, roomToken)
	if err != nil {
		status, frame := classify(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("WS handler: join failed", "user_id", userID, "error", err)
		}
		http.Error(w, frame.Error, status)
		return
	}
	defer sub.Leave()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("WS handler: upgrade failed", "user_id", userID, "error", err)
		return
	}
	defer conn.Close()

	h.logger.Info("WS handler: joined room", "user_id", userID, "room", sub.Room())
	s := &session{
		handler: h,
		conn:    conn,
		sub:     sub,
		userID:  userID,
		room:    sub.Room(),
		replies: make(chan errorFrame, 8),
	}
	s.run(ctx)
	h.logger.Info("WS handler: left room", "user_id", sub.UserID(), "room", sub.Room())
}

type session struct {
	handler    *Handler
	conn       *websocket.Conn
	sub        *hub.Subscription
	userID     uuid.UUID
	room       string
	replies    chan errorFrame
	writerDone chan struct{}
}

func (s *session) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.writerDone = make(chan struct{})
	go func() {
		defer close(s.writerDone)
		s.writePump(ctx)
		// Unblocks the read pump when the writer gives up first.
		_ = s.conn.Close()
	}()

	s.readPump(ctx)
	cancel()
	<-s.writerDone
}

func (s *session) readPump(ctx context.Context) {
	opts := s.handler.opts
	s.conn.SetReadLimit(opts.MaxMessageBytes)
	_ = s.conn.SetReadDeadline(time.Now().Add(opts.PongTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(opts.PongTimeout))
	})

	limiter := rate.NewLimiter(rate.Limit(opts.MessagesPerSecond), opts.MessageBurst)

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.handler.logger.Debug("WS handler: connection dropped", "user_id", s.userID, "error", err)
			}
			return
		}

		if !limiter.Allow() {
			s.reply(ctx, errorFrame{Error: "too many messages", Code: "rate_limited"})
			continue
		}

		var in model.InboundMessage
		if err := json.Unmarshal(data, &in); err != nil {
			s.reply(ctx, errorFrame{Error: "malformed message", Code: "invalid_argument"})
			continue
		}

		if _, err := s.handler.chat.Send(ctx, s.userID, s.room, in); err != nil {
			status, frame := classify(err)
			if status == http.StatusInternalServerError {
				s.handler.logger.Error("WS handler: send failed", "user_id", s.userID, "error", err)
			}
			s.reply(ctx, frame)
		}
	}
}

// reply queues frame for the writer. It gives up once the writer is gone so
// the read pump can observe the closed socket and return.
func (s *session) reply(ctx context.Context, frame errorFrame) {
	select {
	case s.replies <- frame:
	case <-s.writerDone:
	case <-ctx.Done():
	}
}

func (s *session) writePump(ctx context.Context) {
	opts := s.handler.opts
	ticker := time.NewTicker(opts.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.writeClose(websocket.CloseNormalClosure, "")
			return

		case event, ok := <-s.sub.Events():
			if !ok {
				// The hub evicted this subscriber for falling behind.
				s.writeClose(websocket.CloseTryAgainLater, "too slow")
				return
			}
			if event.ReceiverID == s.userID && !event.IsRead {
				if _, err := s.handler.chat.MarkRead(ctx, s.userID, event.SenderID); err != nil {
					s.handler.logger.Warn("WS handler: failed to mark delivered message read", "user_id", s.userID, "error", err)
				} else {
					event.IsRead = true
				}
			}
			if err := s.writeJSON(event); err != nil {
				return
			}

		case frame := <-s.replies:
			if err := s.writeJSON(frame); err != nil {
				return
			}

		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(opts.WriteTimeout))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (s *session) writeJSON(v any) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(s.handler.opts.WriteTimeout))
	return s.conn.WriteJSON(v)
}

func (s *session) writeClose(code int, text string) {
	_ = s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(code, text),
		time.Now().Add(s.handler.opts.WriteTimeout))
}

func tokenFromRequest(r *http.Request) string {
	if token := middleware.BearerToken(r.Header.Get("Authorization")); token != "" {
		return token
	}
	return r.URL.Query().Get("token")
}

func classify(err error) (int, errorFrame) {
	switch {
	case errors.Is(err, model.ErrInvalidRoom),
		errors.Is(err, model.ErrInvalidParticipant),
		errors.Is(err, model.ErrInvalidArgument):
		return http.StatusBadRequest, errorFrame{Error: err.Error(), Code: "invalid_argument"}
	case errors.Is(err, model.ErrUnauthorized),
		errors.Is(err, model.ErrNotFriends):
		return http.StatusForbidden, errorFrame{Error: err.Error(), Code: "permission_denied"}
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, errorFrame{Error: "not found", Code: "not_found"}
	default:
		return http.StatusInternalServerError, errorFrame{Error: "internal server error", Code: "internal"}
	}
}
