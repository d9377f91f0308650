package ws

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dtroode/habiro-server/internal/model"
)

var _ model.Server = (*HTTPServer)(nil)

// HTTPServer runs the live channel. Stop also ends hijacked WebSocket
// connections, which http.Server.Shutdown does not track.
type HTTPServer struct {
	server *http.Server
	addr   string
	cancel context.CancelFunc
}

func NewHTTPServer(handler http.Handler, addr string) *HTTPServer {
	base, cancel := context.WithCancel(context.Background())
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return base },
	}
	srv.RegisterOnShutdown(cancel)

	return &HTTPServer{server: srv, addr: addr, cancel: cancel}
}

// Start serves on the configured address using the provided security layer.
func (s *HTTPServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	defer s.cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown http server: %w", err)
	}
	return nil
}

func (s *HTTPServer) Address() string {
	return s.addr
}
