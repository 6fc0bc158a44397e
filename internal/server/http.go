package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/ks-server/internal/logger"
)

type httpServer struct {
	name string

	server   *http.Server
	listener net.Listener

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// listen binds the listening socket so that bind errors surface before
// serving starts.
func (h *httpServer) listen() error {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("%s server listen on %s: %w", h.name, h.server.Addr, err)
	}
	h.listener = listener
	return nil
}

func (h *httpServer) serve() error {
	h.logger.Info().Str("address", h.listener.Addr().String()).Msgf("Launching %s server", h.name)

	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server serve: %w", h.name, err)
	}
	return nil
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msgf("%s server Shutdown", h.name)
	}
	// a listener that was bound but never served is not tracked by http.Server
	if h.listener != nil {
		_ = h.listener.Close()
	}
}
