package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/critter-arena/internal/catalog"
	"github.com/KirkDiggler/critter-arena/internal/config"
	"github.com/KirkDiggler/critter-arena/internal/handlers/arena/v1alpha1"
	"github.com/KirkDiggler/critter-arena/internal/orchestrators/arena"
	"github.com/KirkDiggler/critter-arena/internal/pkg/idgen"
)

const shutdownTimeout = 30 * time.Second

var (
	grpcPort  int
	storeName string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the Critter Arena gRPC server backed by the configured profile store.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port, overrides CRITTER_ARENA_PORT")
	serverCmd.Flags().StringVar(&storeName, "store", "", "profile store (redis, sqlite, memory), overrides CRITTER_ARENA_STORE")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = grpcPort
	}
	if cmd.Flags().Changed("store") {
		cfg.Store = storeName
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	arenaService, err := arena.NewOrchestrator(&arena.Config{
		ProfileRepo: st.profiles,
		BattleLog:   st.battleLog,
		Catalog:     catalog.Default(),
		IDGenerator: idgen.NewUUID("battle"),
	})
	if err != nil {
		return fmt.Errorf("failed to create arena orchestrator: %w", err)
	}

	arenaHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		ArenaService: arenaService,
	})
	if err != nil {
		return fmt.Errorf("failed to create arena handler: %w", err)
	}

	srv := newGRPCServer(logger)
	v1alpha1.RegisterArenaServiceServer(srv, arenaHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.InfoContext(gCtx, "grpc server starting",
			"port", cfg.Port,
			"store", cfg.Store,
			"battle_log", st.battleLog != nil)
		if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("shutting down grpc server")
		healthServer.Shutdown()
		gracefulStop(srv, shutdownTimeout)
		return nil
	})

	return g.Wait()
}

func newGRPCServer(logger *slog.Logger) *grpc.Server {
	logFunc := grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		logger.Log(ctx, slog.Level(level), msg, fields...)
	})
	recoveryHandler := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		slog.ErrorContext(ctx, "recovered from handler panic", "panic", p)
		return status.Error(codes.Internal, "internal error")
	})

	return grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logFunc),
			grpc_recovery.UnaryServerInterceptor(recoveryHandler),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logFunc),
			grpc_recovery.StreamServerInterceptor(recoveryHandler),
		),
	)
}

func gracefulStop(srv *grpc.Server, timeout time.Duration) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-time.After(timeout):
		slog.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("server stopped gracefully")
	}
}
