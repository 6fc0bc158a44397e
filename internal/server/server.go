package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/ks-server/internal/config"
	"github.com/MKhiriev/ks-server/internal/handler"
	"github.com/MKhiriev/ks-server/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type server struct {
	httpServer    *httpServer
	metricsServer *httpServer
	logger        *logger.Logger
}

// NewServer creates the lookup server bound to address and, when
// metrics.Address is set, a separate metrics listener.
func NewServer(handlers *handler.Handlers, address string, cfg config.Server, metrics config.Metrics, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHandlers
	}
	if address == "" {
		return nil, errNoServerAddress
	}

	servers := &server{
		httpServer: newHTTPServer("HTTP", address, handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}

	if metrics.Address != "" {
		servers.metricsServer = newHTTPServer("metrics", metrics.Address, newMetricsRouter(), cfg, logger)
	}

	return servers, nil
}

func newHTTPServer(name, address string, handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		name: name,
		server: &http.Server{
			Addr:         address,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

func newMetricsRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return router
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	for _, srv := range s.servers() {
		srv.Shutdown()
	}
}

func (s *server) servers() []*httpServer {
	servers := []*httpServer{s.httpServer}
	if s.metricsServer != nil {
		servers = append(servers, s.metricsServer)
	}
	return servers
}

func (s *server) run(ctx context.Context) error {
	servers := s.servers()

	for _, srv := range servers {
		if err := srv.listen(); err != nil {
			s.Shutdown()
			return err
		}
	}

	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		srv := srv
		go func() {
			errCh <- srv.serve()
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return runErr
}
