package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

const defaultTimeout = time.Second * 60

// HTTPServer wraps net/http with listener-ready signalling and a bounded
// graceful shutdown, so that a lifecycle manager can start and stop it
// deterministically.
type HTTPServer struct {
	addr            *net.TCPAddr
	listener        *net.TCPListener
	server          *http.Server
	shutdownTimeout time.Duration
	closed          chan struct{}
	onReady         func(net.Addr)
}

type Option func(*HTTPServer)

func WithShutdownTimeout(timeout time.Duration) Option {
	return func(s *HTTPServer) {
		s.shutdownTimeout = timeout
	}
}

func WithReadTimeout(timeout time.Duration) Option {
	return func(s *HTTPServer) {
		s.server.ReadTimeout = timeout
		s.server.ReadHeaderTimeout = timeout
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(s *HTTPServer) {
		s.server.WriteTimeout = timeout
	}
}

func WithHandler(handler http.Handler) Option {
	return func(s *HTTPServer) {
		s.server.Handler = handler
	}
}

// WithReadySignal registers a callback invoked with the bound address
// once the listener is accepting connections.
func WithReadySignal(cb func(net.Addr)) Option {
	return func(s *HTTPServer) {
		s.onReady = cb
	}
}

func New(addr string, opts ...Option) (*HTTPServer, error) {
	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, err
	}
	server := &HTTPServer{
		addr: tcpAddr,
		server: &http.Server{ // nolint: gosec
			Addr:              addr,
			ReadTimeout:       defaultTimeout,
			ReadHeaderTimeout: defaultTimeout,
			WriteTimeout:      defaultTimeout,
		},
		shutdownTimeout: defaultTimeout,
		closed:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(server)
	}
	return server, nil
}

func (s *HTTPServer) ListenAndServe() error {
	listener, err := net.ListenTCP("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener
	defer listener.Close()

	if s.onReady != nil {
		s.onReady(listener.Addr())
	}

	fatal := make(chan error, 1)
	go func() {
		if serveErr := s.server.Serve(listener); serveErr != nil {
			fatal <- serveErr
		}
	}()

	select {
	case err := <-fatal:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-s.closed:
		return nil
	}
}

func (s *HTTPServer) ListenAddr() net.Addr {
	return s.listener.Addr()
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	close(s.closed)
	stopCtx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(stopCtx); err != nil {
		return fmt.Errorf("http server: shutdown %s: %w", s.addr, err)
	}
	return nil
}
