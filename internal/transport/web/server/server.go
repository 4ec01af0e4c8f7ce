package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/nairobell/feed/internal/domain"
	"golang.org/x/crypto/acme/autocert"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	TLSDisabled       bool
	TLSDisabledPort   int
	AutocertHostnames []string
	Router            http.Handler
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	var listener net.Listener
	if s.TLSDisabled {
		l, err := net.Listen("tcp", fmt.Sprintf(":%d", s.TLSDisabledPort))
		if err != nil {
			return fmt.Errorf("listening on port [%d]: %w", s.TLSDisabledPort, err)
		}
		listener = l
	} else {
		listener = autocert.NewListener(s.AutocertHostnames...)
	}

	srv := &http.Server{
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return domain.ContextWithLogger(context.Background(), logger)
		},
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "http server listening", "address", listener.Addr().String())
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
