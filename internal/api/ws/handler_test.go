package ws

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/habiro-server/internal/hub"
	"github.com/dtroode/habiro-server/internal/mocks"
	"github.com/dtroode/habiro-server/internal/model"
	"github.com/dtroode/habiro-server/internal/room"
	"github.com/dtroode/habiro-server/internal/service"
	"github.com/dtroode/habiro-server/internal/testutil"
	"github.com/dtroode/habiro-server/internal/vault"
)

type liveEnv struct {
	server   *httptest.Server
	hub      *hub.Hub
	graph    *mocks.FriendStore
	messages *mocks.MessageStore
	tokens   *mocks.TokenService
	alice    uuid.UUID
	bob      uuid.UUID
	room     string
}

func newLiveEnv(t *testing.T, friends bool, opts Options) *liveEnv {
	t.Helper()
	log := testutil.MakeNoopLogger()

	env := &liveEnv{
		hub:      hub.New(4, 8, log),
		graph:    mocks.NewFriendStore(t),
		messages: mocks.NewMessageStore(t),
		tokens:   mocks.NewTokenService(t),
		alice:    uuid.New(),
		bob:      uuid.New(),
	}
	token, err := room.Resolve(env.alice, env.bob)
	require.NoError(t, err)
	env.room = token

	env.tokens.On("GetUserID", mock.Anything, "alice-token").Return(env.alice, nil).Maybe()
	env.tokens.On("GetUserID", mock.Anything, "bob-token").Return(env.bob, nil).Maybe()
	env.tokens.On("GetUserID", mock.Anything, "expired").Return(uuid.Nil, errors.New("token is expired")).Maybe()
	env.graph.On("AreFriends", mock.Anything, mock.Anything, mock.Anything).Return(friends, nil).Maybe()

	chat := service.NewChat(
		mocks.NewUserStore(t),
		env.graph,
		env.messages,
		vault.New(vault.NewXChaCha(), log),
		env.hub,
		service.ChatOptions{MaxMessageLength: 64},
		log,
	)
	handler := NewHandler(chat, env.tokens, opts, log)
	env.server = httptest.NewServer(NewRouter(handler, nil, 1000))
	t.Cleanup(env.server.Close)

	return env
}

func (e *liveEnv) url(roomToken string) string {
	return "ws" + strings.TrimPrefix(e.server.URL, "http") + "/ws/chat/" + roomToken
}

func (e *liveEnv) dial(t *testing.T, bearer string) *websocket.Conn {
	t.Helper()
	header := http.Header{"Authorization": {"Bearer " + bearer}}
	conn, resp, err := websocket.DefaultDialer.Dial(e.url(e.room), header)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readJSON[T any](t *testing.T, conn *websocket.Conn) T {
	t.Helper()
	var v T
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	require.NoError(t, conn.ReadJSON(&v))
	return v
}

func TestServeChat_RejectsBeforeUpgrade(t *testing.T) {
	tests := []struct {
		name    string
		friends bool
		room    func(env *liveEnv) string
		header  http.Header
		status  int
	}{
		{
			name:    "missing token",
			friends: true,
			room:    func(env *liveEnv) string { return env.room },
			status:  http.StatusUnauthorized,
		},
		{
			name:    "invalid token",
			friends: true,
			room:    func(env *liveEnv) string { return env.room },
			header:  http.Header{"Authorization": {"Bearer expired"}},
			status:  http.StatusUnauthorized,
		},
		{
			name:    "malformed room",
			friends: true,
			room:    func(*liveEnv) string { return "not-a-room" },
			header:  http.Header{"Authorization": {"Bearer alice-token"}},
			status:  http.StatusBadRequest,
		},
		{
			name:    "outsider",
			friends: true,
			room: func(env *liveEnv) string {
				token, _ := room.Resolve(env.bob, uuid.New())
				return token
			},
			header: http.Header{"Authorization": {"Bearer alice-token"}},
			status: http.StatusForbidden,
		},
		{
			name:    "not friends",
			friends: false,
			room:    func(env *liveEnv) string { return env.room },
			header:  http.Header{"Authorization": {"Bearer alice-token"}},
			status:  http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newLiveEnv(t, tt.friends, Options{})

			conn, resp, err := websocket.DefaultDialer.Dial(env.url(tt.room(env)), tt.header)
			if conn != nil {
				_ = conn.Close()
			}
			require.ErrorIs(t, err, websocket.ErrBadHandshake)
			require.NotNil(t, resp)
			defer resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Zero(t, env.hub.Members(env.room))
		})
	}
}

func TestServeChat_TokenFromQuery(t *testing.T) {
	env := newLiveEnv(t, true, Options{})

	conn, resp, err := websocket.DefaultDialer.Dial(env.url(env.room)+"?token=bob-token", nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	defer conn.Close()

	assert.Equal(t, 1, env.hub.Members(env.room))
}

func TestServeChat_ExchangeMarksDeliveredRead(t *testing.T) {
	env := newLiveEnv(t, true, Options{})
	sentAt := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)

	env.messages.On("Create", mock.Anything, mock.MatchedBy(func(m model.Message) bool {
		return m.SenderID == env.alice && m.ReceiverID == env.bob && m.Body != "hi bob"
	})).Return(func(_ context.Context, m model.Message) (model.Message, error) {
		m.ID = 42
		m.CreatedAt = sentAt
		return m, nil
	}).Once()
	// Reply-implies-read from Send, then delivery-implies-read for bob.
	env.messages.On("MarkRead", mock.Anything, env.bob, env.alice).Return(int64(0), nil).Once()
	env.messages.On("MarkRead", mock.Anything, env.alice, env.bob).Return(int64(1), nil).Once()

	aliceConn := env.dial(t, "alice-token")
	bobConn := env.dial(t, "bob-token")
	require.Equal(t, 2, env.hub.Members(env.room))

	require.NoError(t, aliceConn.WriteJSON(model.InboundMessage{
		Message:    "hi bob",
		SenderID:   env.alice,
		ReceiverID: env.bob,
	}))

	gotBob := readJSON[model.ChatEvent](t, bobConn)
	assert.Equal(t, int64(42), gotBob.MessageID)
	assert.Equal(t, "hi bob", gotBob.Message)
	assert.Equal(t, env.alice, gotBob.SenderID)
	assert.True(t, gotBob.Timestamp.Equal(sentAt))
	assert.True(t, gotBob.IsRead)

	gotAlice := readJSON[model.ChatEvent](t, aliceConn)
	assert.Equal(t, int64(42), gotAlice.MessageID)
	assert.False(t, gotAlice.IsRead)
}

func TestServeChat_ErrorFrames(t *testing.T) {
	env := newLiveEnv(t, true, Options{})
	conn := env.dial(t, "alice-token")

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	frame := readJSON[errorFrame](t, conn)
	assert.Equal(t, "invalid_argument", frame.Code)

	require.NoError(t, conn.WriteJSON(model.InboundMessage{Message: "   ", SenderID: env.alice, ReceiverID: env.bob}))
	frame = readJSON[errorFrame](t, conn)
	assert.Equal(t, "invalid_argument", frame.Code)

	require.NoError(t, conn.WriteJSON(model.InboundMessage{Message: "spoof", SenderID: env.bob, ReceiverID: env.alice}))
	frame = readJSON[errorFrame](t, conn)
	assert.Equal(t, "permission_denied", frame.Code)

	// The session survives rejected messages.
	assert.Equal(t, 1, env.hub.Members(env.room))
}

func TestServeChat_RateLimited(t *testing.T) {
	env := newLiveEnv(t, true, Options{MessagesPerSecond: 0.01, MessageBurst: 1})
	conn := env.dial(t, "alice-token")

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{")))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{")))

	assert.Equal(t, "invalid_argument", readJSON[errorFrame](t, conn).Code)
	assert.Equal(t, "rate_limited", readJSON[errorFrame](t, conn).Code)
}

func TestServeChat_DisconnectLeavesRoom(t *testing.T) {
	env := newLiveEnv(t, true, Options{})
	conn := env.dial(t, "alice-token")
	require.Equal(t, 1, env.hub.Members(env.room))

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")))
	_ = conn.Close()

	assert.Eventually(t, func() bool {
		return env.hub.Members(env.room) == 0
	}, 3*time.Second, 10*time.Millisecond)
}

func TestServeChat_StalledReaderLeavesRoom(t *testing.T) {
	env := newLiveEnv(t, true, Options{WriteTimeout: 200 * time.Millisecond})

	// The client never reads, so the server's error frames back up until
	// the write deadline fires and the writer gives up.
	dialer := websocket.Dialer{
		HandshakeTimeout: 3 * time.Second,
		NetDialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			conn, err := (&net.Dialer{}).DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			if tcp, ok := conn.(*net.TCPConn); ok {
				_ = tcp.SetReadBuffer(1024)
			}
			return conn, nil
		},
	}
	header := http.Header{"Authorization": {"Bearer alice-token"}}
	conn, resp, err := dialer.Dial(env.url(env.room), header)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, 1, env.hub.Members(env.room))

	frame := []byte(`{"message":""}`)
	deadline := time.Now().Add(30 * time.Second)
	var writeErr error
	for time.Now().Before(deadline) {
		_ = conn.SetWriteDeadline(time.Now().Add(2 * time.Second))
		if writeErr = conn.WriteMessage(websocket.TextMessage, frame); writeErr != nil {
			break
		}
	}
	require.Error(t, writeErr, "server never stopped accepting frames")
	_ = conn.Close()

	assert.Eventually(t, func() bool {
		return env.hub.Members(env.room) == 0
	}, 5*time.Second, 20*time.Millisecond)
}

func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		header string
		query  string
		want   string
	}{
		{name: "bearer header", header: "Bearer abc", want: "abc"},
		{name: "case insensitive scheme", header: "bearer abc", want: "abc"},
		{name: "raw header", header: "abc", want: "abc"},
		{name: "query fallback", query: "?token=xyz", want: "xyz"},
		{name: "header wins", header: "Bearer abc", query: "?token=xyz", want: "abc"},
		{name: "nothing", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/ws/chat/room"+tt.query, nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, tokenFromRequest(r))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{model.ErrInvalidRoom, http.StatusBadRequest, "invalid_argument"},
		{model.ErrInvalidArgument, http.StatusBadRequest, "invalid_argument"},
		{model.ErrNotFriends, http.StatusForbidden, "permission_denied"},
		{model.ErrUnauthorized, http.StatusForbidden, "permission_denied"},
		{model.ErrNotFound, http.StatusNotFound, "not_found"},
		{errors.New("db down"), http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		status, frame := classify(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.Equal(t, tt.code, frame.Code, tt.err.Error())
	}
	_, frame := classify(errors.New("db password leaked"))
	assert.Equal(t, "internal server error", frame.Error)
}
