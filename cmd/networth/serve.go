package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	grpclib "google.golang.org/grpc"

	grpcadapter "github.com/simaogato/networth/internal/adapter/grpc"
	"github.com/simaogato/networth/internal/config"
	"github.com/simaogato/networth/internal/log"
	"github.com/simaogato/networth/internal/usecase/tracker"
)

// serve runs the gRPC API until ctx is done or SIGINT/SIGTERM is received,
// then stops gracefully
func serve(ctx context.Context, cfg *config.Config, svc *tracker.TrackerService, logger *log.Logger) error {
	logger = logger.WithComponent(log.ComponentGRPC)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPCAddr, err)
	}

	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(logger),
			grpcadapter.AuthInterceptor(cfg.APIToken),
		),
	)

	server := grpcadapter.NewServer(svc)
	server.SnapshotLimit = cfg.SnapshotDisplayLimit
	grpcadapter.RegisterNetWorthServiceServer(grpcServer, server)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("gRPC server listening", "addr", lis.Addr().String(), "service", grpcadapter.ServiceName)
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpclib.ErrServerStopped) {
			return fmt.Errorf("failed to serve gRPC server: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down gracefully", log.FieldOperation, log.OpShutdown)
		grpcServer.GracefulStop()
		logger.Info("gRPC server stopped", log.FieldOperation, log.OpShutdown)
		return nil
	})

	return g.Wait()
}
