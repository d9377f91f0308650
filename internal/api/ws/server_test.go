package ws

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/habiro-server/internal/mocks"
)

func startHTTPServer(t *testing.T, handler http.Handler) (*HTTPServer, string, chan error) {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	security := mocks.NewSecurityLayer(t)
	security.On("Listen", "tcp", "127.0.0.1:0").Return(listener, nil).Once()

	srv := NewHTTPServer(handler, "127.0.0.1:0")
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(security) }()

	return srv, listener.Addr().String(), errCh
}

func TestHTTPServer_StartStop(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	srv, addr, errCh := startHTTPServer(t, handler)
	assert.Equal(t, "127.0.0.1:0", srv.Address())

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 3*time.Second, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not return after stop")
	}
}

func TestHTTPServer_ListenError(t *testing.T) {
	security := mocks.NewSecurityLayer(t)
	security.On("Listen", "tcp", ":1").Return(nil, errors.New("address in use")).Once()

	srv := NewHTTPServer(http.NotFoundHandler(), ":1")
	err := srv.Start(security)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

func TestHTTPServer_StopClosesLiveConnections(t *testing.T) {
	upgrader := websocket.Upgrader{}
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		<-r.Context().Done()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutdown"),
			time.Now().Add(time.Second))
	})
	srv, addr, _ := startHTTPServer(t, handler)

	var conn *websocket.Conn
	require.Eventually(t, func() bool {
		c, resp, err := websocket.DefaultDialer.Dial("ws://"+addr+"/", nil)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		conn = c
		return true
	}, 3*time.Second, 20*time.Millisecond)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), strings.TrimSpace(err.Error()))
}
