// Package grpc предоставляет gRPC сервер проверки здоровья сервиса заметок.
package grpc

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"mynote/internal/mynote/config"
	"mynote/pkg/logger"
)

// ServiceName - имя сервиса в протоколе grpc.health.v1.
const ServiceName = "mynote"

// DefaultCheckInterval используется, если период проверки не задан.
const DefaultCheckInterval = 10 * time.Second

const probeTimeout = 3 * time.Second

// Константы для логирования.
const (
	LogServerStarting = "starting gRPC health server"
	LogServerStarted  = "gRPC health server started"
	LogServerStopping = "stopping gRPC health server"
	LogServerStopped  = "gRPC health server stopped"
	LogProbeFailed    = "health probe failed"
	ErrServerStart    = "failed to start gRPC server"
)

// Probe проверяет доступность зависимости.
type Probe func(ctx context.Context) error

// Server представляет gRPC сервер со службой здоровья.
type Server struct {
	cfg    *config.GRPCConfig
	server *grpc.Server
	health *health.Server
	probes map[string]Probe

	mu       sync.Mutex
	listener net.Listener
	done     chan struct{}
	stopOnce sync.Once
}

// New создает новый экземпляр gRPC сервера.
// probes проверяются при старте, затем каждые cfg.CheckInterval до Stop.
func New(cfg *config.GRPCConfig, probes map[string]Probe) *Server {
	server := grpc.NewServer()
	healthServer := health.NewServer()

	healthpb.RegisterHealthServer(server, healthServer)
	reflection.Register(server)

	return &Server{
		cfg:    cfg,
		server: server,
		health: healthServer,
		probes: probes,
		done:   make(chan struct{}),
	}
}

// Start запускает gRPC сервер.
func (s *Server) Start(ctx context.Context) error {
	log := logger.Log(ctx)
	address := s.cfg.GetAddress()

	log.Info(ctx, LogServerStarting, zap.String("address", address))

	listener, err := net.Listen("tcp", address)
	if err != nil {
		log.Error(ctx, ErrServerStart, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrServerStart, err)
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	s.Refresh(ctx)

	go func() {
		if err := s.server.Serve(listener); err != nil {
			log.Error(ctx, ErrServerStart, zap.Error(err))
		}
	}()
	go s.watch(ctx)

	log.Info(ctx, LogServerStarted, zap.String("address", listener.Addr().String()))
	return nil
}

// Refresh выполняет проверки и обновляет статус сервиса.
func (s *Server) Refresh(ctx context.Context) {
	log := logger.Log(ctx)
	status := healthpb.HealthCheckResponse_SERVING

	for name, probe := range s.probes {
		probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		err := probe(probeCtx)
		cancel()
		if err != nil {
			log.Warn(ctx, LogProbeFailed, zap.String("probe", name), zap.Error(err))
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// watch повторяет проверки по таймеру, пока сервер не остановлен.
func (s *Server) watch(ctx context.Context) {
	interval := s.cfg.CheckInterval
	if interval <= 0 {
		interval = DefaultCheckInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}

// Addr возвращает адрес, на котором слушает сервер, или пустую строку до Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop переводит сервис в NOT_SERVING и останавливает gRPC сервер.
func (s *Server) Stop(ctx context.Context) {
	log := logger.Log(ctx)

	log.Info(ctx, LogServerStopping)
	s.stopOnce.Do(func() { close(s.done) })
	s.health.Shutdown()
	s.server.GracefulStop()
	log.Info(ctx, LogServerStopped)
}
